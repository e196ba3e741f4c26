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
	"github.com/aclements/go-moremath/vec"
	"github.com/shopspring/decimal"
)

// RangeParameters is a complete axis layout for one candidate tick.
type RangeParameters struct {
	RangeStart     decimal.Decimal
	RangeEnd       decimal.Decimal
	MinorTickWidth decimal.Decimal
	MinorTickCount uint

	// Tick is the candidate this layout was rounded to.
	Tick ScaledTick
	// Inactive is how much of [RangeStart, RangeEnd] lies outside the data.
	Inactive decimal.Decimal
	// Aligned is false if rounding fell back to an unrounded boundary or the
	// span isn't a multiple of the width.
	Aligned bool
	// Countable is false if there are more ticks than a uint holds.
	// MinorTickCount is zero then, and the layout is never a best fit.
	Countable bool
}

// Ticks returns the value of every minor tick, from RangeStart to RangeEnd
// inclusive.  That's MinorTickCount+1 values, so check the count before
// enumerating a layout that wasn't capped.
func (p RangeParameters) Ticks() []decimal.Decimal {
	if !p.Countable {
		return nil
	}
	return p.stepped(p.MinorTickWidth, p.MinorTickCount+1)
}

func (p RangeParameters) perMajor() uint {
	if p.Tick.NumberPerMajor <= 1 {
		return 1
	}
	return p.Tick.NumberPerMajor
}

// IsMajor reports whether the i'th tick (counting from RangeStart) is a major
// tick.
func (p RangeParameters) IsMajor(i int) bool {
	return uint(i)%p.perMajor() == 0
}

// MajorTickCount is the number of ticks that fall on major grid lines.
func (p RangeParameters) MajorTickCount() uint {
	if !p.Countable {
		return 0
	}
	return p.MinorTickCount/p.perMajor() + 1
}

// MajorTicks returns the ticks that fall on major grid lines, without
// enumerating the minor ones in between.
func (p RangeParameters) MajorTicks() []decimal.Decimal {
	return p.stepped(p.MinorTickWidth.Mul(decimal.NewFromInt(int64(p.perMajor()))), p.MajorTickCount())
}

func (p RangeParameters) stepped(step decimal.Decimal, n uint) []decimal.Decimal {
	res := make([]decimal.Decimal, 0, n)
	for i := uint(0); i < n; i++ {
		res = append(res, p.RangeStart.Add(step.Mul(decimal.NewFromInt(int64(i)))))
	}
	return res
}

// Floats returns the boundaries and width as float64s.
func (p RangeParameters) Floats() (start, end, width float64) {
	start, _ = p.RangeStart.Float64()
	end, _ = p.RangeEnd.Float64()
	width, _ = p.MinorTickWidth.Float64()
	return start, end, width
}

// FloatTicks returns evenly spaced float64 tick positions, suitable for
// handing to something that draws.
func (p RangeParameters) FloatTicks() []float64 {
	start, end, _ := p.Floats()
	if !p.Countable {
		return nil
	}
	if p.MinorTickCount == 0 {
		return []float64{start}
	}
	return vec.Linspace(start, end, int(p.MinorTickCount)+1)
}
