/*
Copyright 2020 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package extract maps source values of arbitrary types onto the scalar
// domains the tick calculator understands.
package extract

import (
	"io"
	"reflect"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/sets"

	"sigs.k8s.io/tickrange/ticks"
)

// Func projects one source value onto a scalar.  It returns false if the
// value isn't of the type it was registered for.
type Func func(v interface{}) (decimal.Decimal, bool)

// Entry is everything needed to lay out an axis for one source type.
type Entry struct {
	Type    reflect.Type
	Domain  ticks.Domain
	Catalog ticks.Catalog
	Extract Func
}

// Builder collects registrations.  Build it once during startup; the
// resulting Registry is read-only.
type Builder struct {
	// Log is handed to the built Registry.
	Log logrus.FieldLogger

	simple map[reflect.Type]Entry
	custom map[reflect.Type]Entry
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		simple: make(map[reflect.Type]Entry),
		custom: make(map[reflect.Type]Entry),
	}
}

// RegisterSimple registers a default entry.  A custom entry for the same type
// wins over it, regardless of registration order.
func (b *Builder) RegisterSimple(e Entry) {
	b.simple[e.Type] = e
}

// RegisterCustom registers an entry that overrides any simple entry for the
// same type.
func (b *Builder) RegisterCustom(e Entry) {
	b.custom[e.Type] = e
}

// Build freezes the registrations into a Registry.
func (b *Builder) Build() *Registry {
	r := &Registry{
		entries: make(map[reflect.Type]Entry, len(b.simple)+len(b.custom)),
		log:     b.Log,
	}
	if r.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		r.log = l
	}
	for t, e := range b.simple {
		r.entries[t] = e
	}
	for t, e := range b.custom {
		if _, ok := r.entries[t]; ok {
			r.log.Debugf("custom tick manager for %v replaces the simple one", t)
		}
		r.entries[t] = e
	}
	return r
}

// Registry maps source types to their entries.  It is never modified after
// Build, so it's safe for concurrent use.
type Registry struct {
	entries map[reflect.Type]Entry
	log     logrus.FieldLogger
}

// Lookup returns the entry for t.  A missing entry is a configuration error;
// it's logged and reported as false.
func (r *Registry) Lookup(t reflect.Type) (Entry, bool) {
	e, ok := r.entries[t]
	if !ok {
		r.log.Errorf("no tick manager registered for type %v", t)
	}
	return e, ok
}

// Types lists the registered type names, sorted.
func (r *Registry) Types() []string {
	names := sets.NewString()
	for t := range r.entries {
		names.Insert(t.String())
	}
	return names.List()
}

// Extract converts values, all of which must be of type t, preserving their
// order.  It fails if t isn't registered or any value isn't a t.
func (r *Registry) Extract(t reflect.Type, values []interface{}) ([]decimal.Decimal, bool) {
	e, ok := r.Lookup(t)
	if !ok {
		return nil, false
	}
	return e.extractAll(r.log, values)
}

func (e Entry) extractAll(log logrus.FieldLogger, values []interface{}) ([]decimal.Decimal, bool) {
	res := make([]decimal.Decimal, len(values))
	for i, v := range values {
		d, ok := e.Extract(v)
		if !ok {
			log.Errorf("value %d (%T) cannot be extracted as %v", i, v, e.Type)
			return nil, false
		}
		res[i] = d
	}
	return res, true
}

// Calculator returns a calculator for the entry's domain and catalog.
func (e Entry) Calculator(maxTicks uint, log logrus.FieldLogger) ticks.Calculator {
	return ticks.Calculator{
		Domain:   e.Domain,
		Catalog:  e.Catalog,
		MaxTicks: maxTicks,
		Log:      log,
	}
}

// Evaluate extracts values as type t and lays out their extent.  It fails on
// a configuration error, an extraction failure, or an empty collection.
func (r *Registry) Evaluate(t reflect.Type, values []interface{}, maxTicks uint) (*ticks.Result, bool) {
	e, ok := r.Lookup(t)
	if !ok {
		return nil, false
	}
	scalars, ok := e.extractAll(r.log, values)
	if !ok {
		return nil, false
	}
	res := e.Calculator(maxTicks, r.log).EvaluateAll(scalars)
	if res == nil {
		r.log.Infof("no %v values to lay out", t)
		return nil, false
	}
	return res, true
}
