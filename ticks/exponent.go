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
	"math/big"

	"github.com/shopspring/decimal"
)

// ExponentRange is the span of powers of ten that are relevant to a data
// range.  MinimumExponent is always strictly less than MaximumExponent.
type ExponentRange struct {
	MinimumExponent int
	MaximumExponent int
}

// NewExponentRange analyzes the magnitudes of a data range.  min and max may
// be given in either order.
func NewExponentRange(min, max decimal.Decimal) ExponentRange {
	if min.GreaterThan(max) {
		min, max = max, min
	}
	rng := max.Sub(min)

	minExp := magnitude(min)
	rangeExp := magnitude(rng)
	if rangeExp < minExp {
		minExp = rangeExp
	}
	// always cover at least two decades, so a range confined to one still
	// gets to consider coarser ticks
	if minExp == rangeExp {
		minExp--
	}

	return ExponentRange{MinimumExponent: minExp, MaximumExponent: rangeExp}
}

// magnitude is floor(log10(|d|)), or 0 for zero.  It's computed from the
// digits of d rather than with math.Log10, which can land just below exact
// powers of ten and floor to the wrong decade.
func magnitude(d decimal.Decimal) int {
	if d.IsZero() {
		return 0
	}
	coef := new(big.Int).Abs(d.Coefficient())
	digits := len(coef.String())
	return digits - 1 + int(d.Exponent())
}
