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

import "github.com/shopspring/decimal"

// Candidates scales every tick in the catalog to every exponent in the
// range's exponent span, keeping those strictly smaller than the larger of
// |min| and |max|.  Candidates come out ordered by exponent, then by catalog
// order.  Duplicate sizes are kept.
func Candidates(catalog Catalog, min, max decimal.Decimal) []ScaledTick {
	return candidatesFor(Continuous, catalog, min, max)
}

func candidatesFor(domain Domain, catalog Catalog, min, max decimal.Decimal) []ScaledTick {
	exps := NewExponentRange(min, max)
	bound := decimal.Max(min.Abs(), max.Abs())

	lo := exps.MinimumExponent
	if floor, ok := domain.minExponent(); ok && lo < floor {
		lo = floor
	}

	var res []ScaledTick
	for e := lo; e <= exps.MaximumExponent; e++ {
		for _, t := range catalog {
			scaled := t.Scale(e)
			if scaled.Size().LessThan(bound) && domain.accepts(scaled.Size()) {
				res = append(res, scaled)
			}
		}
	}

	// an all-zero range has nothing to be smaller than, so fall back to the
	// finest tick we'd have considered
	if len(res) == 0 && bound.IsZero() {
		if t, ok := catalog.smallest(); ok {
			res = append(res, t.Scale(lo))
		}
	}
	return res
}
