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

// Package ticks computes nice axis boundaries and tick spacings for a data
// range.
package ticks

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tick is an un-scaled step size, together with how many of those steps make
// up one major grid line.
type Tick struct {
	NormalizedSize uint
	NumberPerMajor uint
}

// NewTick returns a Tick, panicking if size is zero or perMajor is zero.
// Catalogs are literals written by hand, so a bad entry is a wiring bug.
func NewTick(size, perMajor uint) Tick {
	t := Tick{NormalizedSize: size, NumberPerMajor: perMajor}
	if err := t.Validate(); err != nil {
		panic(err)
	}
	return t
}

// Validate checks that the tick has a non-zero size and at least one tick
// per major.
func (t Tick) Validate() error {
	if t.NormalizedSize == 0 {
		return fmt.Errorf("tick size must be positive")
	}
	if t.NumberPerMajor < 1 {
		return fmt.Errorf("tick %d must have at least one tick per major", t.NormalizedSize)
	}
	return nil
}

func (t Tick) String() string {
	return fmt.Sprintf("%d/%d", t.NormalizedSize, t.NumberPerMajor)
}

// ScaledTick is a Tick at a particular decimal magnitude.  Its effective
// size is NormalizedSize * 10^PowerOfTen.
type ScaledTick struct {
	Tick
	PowerOfTen int
}

// Scale returns t at the given power of ten.
func (t Tick) Scale(powerOfTen int) ScaledTick {
	return ScaledTick{Tick: t, PowerOfTen: powerOfTen}
}

// Size is the exact width of one minor tick.
func (t ScaledTick) Size() decimal.Decimal {
	return decimal.New(int64(t.NormalizedSize), int32(t.PowerOfTen))
}

// MajorSize is the exact width of one major tick.
func (t ScaledTick) MajorSize() decimal.Decimal {
	return t.Size().Mul(decimal.NewFromInt(int64(t.NumberPerMajor)))
}

func (t ScaledTick) String() string {
	return fmt.Sprintf("%s (x%d per major)", t.Size().String(), t.NumberPerMajor)
}
