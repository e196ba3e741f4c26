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
	"math"

	"github.com/shopspring/decimal"
)

// Rounder moves a boundary value outward to the nearest multiple of a tick
// width.  RoundDown returns the largest aligned value <= v, RoundUp the
// smallest aligned value >= v.  When the result can't be represented they
// return v unchanged and false.
type Rounder interface {
	RoundDown(v, width decimal.Decimal) (decimal.Decimal, bool)
	RoundUp(v, width decimal.Decimal) (decimal.Decimal, bool)
}

// continuousRounder rounds exact decimals.  Mod truncates toward zero, so the
// remainder of a negative v is negative and has to be corrected to get floor
// semantics on both sides of zero.
type continuousRounder struct{}

func (continuousRounder) RoundDown(v, width decimal.Decimal) (decimal.Decimal, bool) {
	if !width.IsPositive() {
		return v, false
	}
	mod := v.Mod(width)
	if mod.IsZero() {
		return v, true
	}
	if v.IsNegative() {
		return v.Sub(width).Sub(mod), true
	}
	return v.Sub(mod), true
}

func (continuousRounder) RoundUp(v, width decimal.Decimal) (decimal.Decimal, bool) {
	if !width.IsPositive() {
		return v, false
	}
	mod := v.Mod(width)
	if mod.IsZero() {
		return v, true
	}
	if v.IsNegative() {
		return v.Sub(mod), true
	}
	return v.Add(width).Sub(mod), true
}

// integerRounder rounds on int64s.
type integerRounder struct{}

func (integerRounder) RoundDown(v, width decimal.Decimal) (decimal.Decimal, bool) {
	iv, w, ok := toInts(v, width)
	if !ok {
		return v, false
	}
	res, ok := roundDownInt(iv, w)
	if !ok {
		return v, false
	}
	return decimal.NewFromInt(res), true
}

func (integerRounder) RoundUp(v, width decimal.Decimal) (decimal.Decimal, bool) {
	iv, w, ok := toInts(v, width)
	if !ok {
		return v, false
	}
	res, ok := roundUpInt(iv, w)
	if !ok {
		return v, false
	}
	return decimal.NewFromInt(res), true
}

func roundDownInt(v, w int64) (int64, bool) {
	mod := v % w
	if mod == 0 {
		return v, true
	}
	if v < 0 {
		res, ok := subInt(v, w)
		if !ok {
			return 0, false
		}
		return subInt(res, mod)
	}
	return v - mod, true
}

func roundUpInt(v, w int64) (int64, bool) {
	mod := v % w
	if mod == 0 {
		return v, true
	}
	if v < 0 {
		return v - mod, true
	}
	res, ok := addInt(v, w)
	if !ok {
		return 0, false
	}
	return subInt(res, mod)
}

// monthRounder rounds month numbers.  Month numbers are 1-based (January of
// year y is y*12+1), so aligned values are the ones where (v-1) is a multiple
// of the width: a width of 12 lands on Januaries, 3 on quarter starts.
type monthRounder struct{}

func (monthRounder) RoundDown(v, width decimal.Decimal) (decimal.Decimal, bool) {
	iv, w, ok := toInts(v, width)
	if !ok {
		return v, false
	}
	res, ok := roundDownMonth(iv, w)
	if !ok {
		return v, false
	}
	return decimal.NewFromInt(res), true
}

func (monthRounder) RoundUp(v, width decimal.Decimal) (decimal.Decimal, bool) {
	iv, w, ok := toInts(v, width)
	if !ok {
		return v, false
	}
	// shifting by width-1 rather than width keeps an aligned v in place
	shifted, ok := addInt(iv, w-1)
	if !ok {
		return v, false
	}
	res, ok := roundDownMonth(shifted, w)
	if !ok {
		return v, false
	}
	return decimal.NewFromInt(res), true
}

func roundDownMonth(v, w int64) (int64, bool) {
	zeroBased, ok := subInt(v, 1)
	if !ok {
		return 0, false
	}
	res, ok := roundDownInt(zeroBased, w)
	if !ok {
		return 0, false
	}
	return addInt(res, 1)
}

var (
	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// toInts converts a value and a width to int64s, failing if either isn't a
// whole number in range or the width isn't positive.
func toInts(v, width decimal.Decimal) (int64, int64, bool) {
	iv, ok := toInt(v)
	if !ok {
		return 0, 0, false
	}
	w, ok := toInt(width)
	if !ok || w <= 0 {
		return 0, 0, false
	}
	return iv, w, true
}

func toInt(d decimal.Decimal) (int64, bool) {
	if !d.IsInteger() {
		return 0, false
	}
	if d.LessThan(minInt64) || d.GreaterThan(maxInt64) {
		return 0, false
	}
	return d.IntPart(), true
}

func addInt(a, b int64) (int64, bool) {
	res := a + b
	if (b > 0 && res < a) || (b < 0 && res > a) {
		return 0, false
	}
	return res, true
}

func subInt(a, b int64) (int64, bool) {
	res := a - b
	if (b > 0 && res > a) || (b < 0 && res < a) {
		return 0, false
	}
	return res, true
}
