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
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Domain is the scalar domain an axis lives in.  It decides which catalog is
// used by default and how boundaries get rounded.
type Domain int

const (
	// Continuous values are exact decimals (floats are converted to their
	// shortest decimal representation).
	Continuous Domain = iota
	// Integer values are whole numbers that must fit in an int64.
	Integer
	// Month values are month numbers, see MonthNumber.
	Month
)

var domainNames = map[Domain]string{
	Continuous: "continuous",
	Integer:    "integer",
	Month:      "month",
}

func (d Domain) String() string {
	if name, ok := domainNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Domain(%d)", int(d))
}

// ParseDomain parses the name of a domain, as printed by String.
func ParseDomain(name string) (Domain, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for d, n := range domainNames {
		if n == name {
			return d, nil
		}
	}
	return Continuous, fmt.Errorf("unknown domain %q (expected one of continuous, integer, month)", name)
}

// Set implements pflag.Value.
func (d *Domain) Set(name string) error {
	parsed, err := ParseDomain(name)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Type implements pflag.Value.
func (d *Domain) Type() string {
	return "domain"
}

// minExponent is the smallest power of ten candidates may be scaled to.
// Integers and months can't be subdivided.
func (d Domain) minExponent() (int, bool) {
	switch d {
	case Integer, Month:
		return 0, true
	}
	return 0, false
}

// accepts reports whether a candidate of the given size is usable in the
// domain.  Month ticks have to tile a year, so their size must divide 12 or
// be a multiple of it.
func (d Domain) accepts(size decimal.Decimal) bool {
	if d != Month {
		return true
	}
	n, ok := toInt(size)
	if !ok || n <= 0 {
		return false
	}
	return 12%n == 0 || n%12 == 0
}

// Rounder returns the boundary rounding for the domain.
func (d Domain) Rounder() Rounder {
	switch d {
	case Continuous:
		return continuousRounder{}
	case Integer:
		return integerRounder{}
	case Month:
		return monthRounder{}
	}
	panic(fmt.Sprintf("no rounder for %v", d))
}
