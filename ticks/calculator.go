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

package ticks

import (
	"io"
	"math"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Calculator picks a nice axis layout for a data range.  The zero value
// lays out continuous values with the default catalog and no tick cap.
//
// A Calculator is never modified by Evaluate, so one may be shared between
// goroutines.
type Calculator struct {
	Domain Domain

	// Catalog overrides DefaultCatalog(Domain) if non-empty.
	Catalog Catalog

	// MaxTicks excludes layouts with more minor ticks than this.  Zero means
	// unconstrained.
	MaxTicks uint

	// Log receives diagnostics.  Nil discards them.
	Log logrus.FieldLogger
}

// Result is the outcome of one evaluation.
type Result struct {
	// Min and Max are the (sorted) input bounds.
	Min, Max decimal.Decimal

	Exponents ExponentRange

	// Alternatives are all candidate ticks considered, ordered by exponent
	// then catalog order.
	Alternatives []ScaledTick
	// Layouts holds the rounded layout of each alternative, in the same
	// order.
	Layouts []RangeParameters

	// BestFit is nil if no layout satisfies the constraints.
	BestFit *RangeParameters
}

var discard = func() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

func (c Calculator) log() logrus.FieldLogger {
	if c.Log == nil {
		return discard
	}
	return c.Log
}

func (c Calculator) catalog() Catalog {
	if len(c.Catalog) > 0 {
		return c.Catalog
	}
	return DefaultCatalog(c.Domain)
}

// Evaluate computes every candidate layout for [min, max] and picks the best
// one.  min and max may be given in either order.
func (c Calculator) Evaluate(min, max decimal.Decimal) *Result {
	if min.GreaterThan(max) {
		min, max = max, min
	}
	log := c.log().WithField("domain", c.Domain.String())

	res := &Result{
		Min:       min,
		Max:       max,
		Exponents: NewExponentRange(min, max),
	}
	res.Alternatives = candidatesFor(c.Domain, c.catalog(), min, max)
	if len(res.Alternatives) == 0 {
		log.Infof("no tick candidates for range [%v, %v]", min, max)
		return res
	}

	rounder := c.Domain.Rounder()
	res.Layouts = make([]RangeParameters, len(res.Alternatives))
	for i, alt := range res.Alternatives {
		res.Layouts[i] = layout(rounder, alt, min, max)
	}

	res.BestFit = c.bestFit(log, res.Layouts)
	if res.BestFit == nil {
		log.Infof("no layout for range [%v, %v] fits within %d ticks", min, max, c.MaxTicks)
	}
	return res
}

// maxTickCount is the largest tick count a layout can record.  One less than
// the largest uint, so that the count of tick values always fits as well.
var maxTickCount = decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(math.MaxUint-1)), 0)

// layout rounds [min, max] outward to the tick.
func layout(rounder Rounder, tick ScaledTick, min, max decimal.Decimal) RangeParameters {
	width := tick.Size()
	start, downOK := rounder.RoundDown(min, width)
	end, upOK := rounder.RoundUp(max, width)
	span := end.Sub(start)
	count := span.Div(width).Round(0)

	res := RangeParameters{
		RangeStart:     start,
		RangeEnd:       end,
		MinorTickWidth: width,
		Tick:           tick,
		Inactive:       min.Sub(start).Add(end.Sub(max)),
		Aligned:        downOK && upOK && span.Mod(width).IsZero(),
		Countable:      !count.GreaterThan(maxTickCount),
	}
	if res.Countable {
		res.MinorTickCount = uint(count.BigInt().Uint64())
	}
	return res
}

// bestFit returns the layout with the smallest inactive region among those
// under the tick cap.  Ties go to fewer ticks, then the finer width, then the
// earlier alternative.
func (c Calculator) bestFit(log logrus.FieldLogger, layouts []RangeParameters) *RangeParameters {
	var best *RangeParameters
	for i := range layouts {
		l := &layouts[i]
		if !l.Aligned {
			log.Debugf("skipping %v: rounding could not align [%v, %v]", l.Tick, l.RangeStart, l.RangeEnd)
			continue
		}
		if !l.Countable {
			log.Debugf("skipping %v: too many ticks to count in [%v, %v]", l.Tick, l.RangeStart, l.RangeEnd)
			continue
		}
		if c.MaxTicks > 0 && l.MinorTickCount > c.MaxTicks {
			continue
		}
		if best == nil || betterFit(l, best) {
			best = l
		}
	}
	if best == nil {
		return nil
	}
	fit := *best
	return &fit
}

func betterFit(a, b *RangeParameters) bool {
	if cmp := a.Inactive.Cmp(b.Inactive); cmp != 0 {
		return cmp < 0
	}
	if a.MinorTickCount != b.MinorTickCount {
		return a.MinorTickCount < b.MinorTickCount
	}
	return a.MinorTickWidth.LessThan(b.MinorTickWidth)
}

// EvaluateFloat evaluates a float range.  NaN and infinite bounds produce a
// Result with no alternatives.
func (c Calculator) EvaluateFloat(min, max float64) *Result {
	if !finite(min) || !finite(max) {
		c.log().Errorf("cannot lay out non-finite range [%v, %v]", min, max)
		return &Result{}
	}
	return c.Evaluate(decimal.NewFromFloat(min), decimal.NewFromFloat(max))
}

// EvaluateInt evaluates an integer range.
func (c Calculator) EvaluateInt(min, max int64) *Result {
	return c.Evaluate(decimal.NewFromInt(min), decimal.NewFromInt(max))
}

// EvaluateTime evaluates the month numbers of two times.  The Calculator
// should be in the Month domain.
func (c Calculator) EvaluateTime(min, max time.Time) *Result {
	return c.EvaluateInt(MonthNumber(min), MonthNumber(max))
}

// EvaluateAll evaluates the extent of values.  It returns nil if values is
// empty.
func (c Calculator) EvaluateAll(values []decimal.Decimal) *Result {
	min, max, ok := Extent(values)
	if !ok {
		return nil
	}
	return c.Evaluate(min, max)
}

// Extent returns the smallest and largest of values.
func Extent(values []decimal.Decimal) (min, max decimal.Decimal, ok bool) {
	if len(values) == 0 {
		return min, max, false
	}
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v.LessThan(min) {
			min = v
		}
		if v.GreaterThan(max) {
			max = v
		}
	}
	return min, max, true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
