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

import "fmt"

// Catalog is the set of "nice" tick shapes that candidates are generated
// from.  Order doesn't affect which layout is picked, but it does decide the
// order of Result.Alternatives.
type Catalog []Tick

var (
	continuousCatalog = Catalog{
		NewTick(1, 5),
		NewTick(2, 5),
		NewTick(25, 4),
		NewTick(5, 2),
	}
	integerCatalog = Catalog{
		NewTick(1, 5),
		NewTick(2, 5),
		NewTick(5, 2),
	}
	// month ticks line up with months, quarters, halves and years.
	monthCatalog = Catalog{
		NewTick(1, 3),
		NewTick(3, 4),
		NewTick(6, 2),
		NewTick(12, 1),
	}
)

// DefaultCatalog returns a copy of the built-in catalog for the domain.
func DefaultCatalog(d Domain) Catalog {
	var c Catalog
	switch d {
	case Continuous:
		c = continuousCatalog
	case Integer:
		c = integerCatalog
	case Month:
		c = monthCatalog
	default:
		panic(fmt.Sprintf("no catalog for %v", d))
	}
	return append(Catalog(nil), c...)
}

// Validate checks every tick in the catalog.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("catalog has no ticks")
	}
	for i, t := range c {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("tick %d: %w", i, err)
		}
	}
	return nil
}

// smallest returns the tick with the smallest normalized size, preferring
// the earliest on ties.
func (c Catalog) smallest() (Tick, bool) {
	if len(c) == 0 {
		return Tick{}, false
	}
	best := c[0]
	for _, t := range c[1:] {
		if t.NormalizedSize < best.NormalizedSize {
			best = t
		}
	}
	return best, true
}
