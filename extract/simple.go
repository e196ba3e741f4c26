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

package extract

import (
	"math"
	"math/big"
	"reflect"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"sigs.k8s.io/tickrange/ticks"
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// For builds an entry for source type T from a typed projection.  A nil
// catalog means the domain's default.
func For[T any](domain ticks.Domain, catalog ticks.Catalog, project func(T) (decimal.Decimal, bool)) Entry {
	return Entry{
		Type:    typeOf[T](),
		Domain:  domain,
		Catalog: catalog,
		Extract: func(v interface{}) (decimal.Decimal, bool) {
			typed, ok := v.(T)
			if !ok {
				return decimal.Decimal{}, false
			}
			return project(typed)
		},
	}
}

func fromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(f), true
}

func fromInt[T int | int8 | int16 | int32 | int64](v T) (decimal.Decimal, bool) {
	return decimal.NewFromInt(int64(v)), true
}

func fromUint[T uint | uint8 | uint16 | uint32 | uint64](v T) (decimal.Decimal, bool) {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(v)), 0), true
}

// RegisterDefaults registers simple entries for the built-in numeric types,
// decimal.Decimal and time.Time (as month numbers).
func RegisterDefaults(b *Builder) {
	b.RegisterSimple(For(ticks.Continuous, nil, fromFloat))
	b.RegisterSimple(For(ticks.Continuous, nil, func(f float32) (decimal.Decimal, bool) {
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat32(f), true
	}))
	b.RegisterSimple(For(ticks.Continuous, nil, func(d decimal.Decimal) (decimal.Decimal, bool) {
		return d, true
	}))

	b.RegisterSimple(For(ticks.Integer, nil, fromInt[int]))
	b.RegisterSimple(For(ticks.Integer, nil, fromInt[int8]))
	b.RegisterSimple(For(ticks.Integer, nil, fromInt[int16]))
	b.RegisterSimple(For(ticks.Integer, nil, fromInt[int32]))
	b.RegisterSimple(For(ticks.Integer, nil, fromInt[int64]))
	b.RegisterSimple(For(ticks.Integer, nil, fromUint[uint]))
	b.RegisterSimple(For(ticks.Integer, nil, fromUint[uint8]))
	b.RegisterSimple(For(ticks.Integer, nil, fromUint[uint16]))
	b.RegisterSimple(For(ticks.Integer, nil, fromUint[uint32]))
	b.RegisterSimple(For(ticks.Integer, nil, fromUint[uint64]))

	b.RegisterSimple(For(ticks.Month, nil, func(t time.Time) (decimal.Decimal, bool) {
		return decimal.NewFromInt(ticks.MonthNumber(t)), true
	}))
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns the process-wide registry of simple entries.  It's
// built on first use and never changes afterwards.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		b := NewBuilder()
		RegisterDefaults(b)
		defaultRegistry = b.Build()
	})
	return defaultRegistry
}

// Values extracts a typed collection through the entry registered for T.
func Values[T any](r *Registry, values []T) ([]decimal.Decimal, bool) {
	return r.Extract(typeOf[T](), boxed(values))
}

// Evaluate lays out the extent of a typed collection through the entry
// registered for T.
func Evaluate[T any](r *Registry, values []T, maxTicks uint) (*ticks.Result, bool) {
	return r.Evaluate(typeOf[T](), boxed(values), maxTicks)
}

// EvaluateBy lays out the extent of records projected through project,
// bypassing the registry.
func EvaluateBy[R any](calc ticks.Calculator, records []R, project func(R) decimal.Decimal) *ticks.Result {
	scalars := make([]decimal.Decimal, len(records))
	for i, rec := range records {
		scalars[i] = project(rec)
	}
	return calc.EvaluateAll(scalars)
}

func boxed[T any](values []T) []interface{} {
	res := make([]interface{}, len(values))
	for i, v := range values {
		res[i] = v
	}
	return res
}
