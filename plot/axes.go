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

package plot

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"

	"sigs.k8s.io/tickrange/ticks"
)

// Labeler turns a tick value into its label.
type Labeler func(decimal.Decimal) string

var maxExactInt = decimal.NewFromInt(math.MaxInt64)

// NumberLabeler prints whole numbers with thousands separators and anything
// else in its exact decimal form.
func NumberLabeler(v decimal.Decimal) string {
	if v.IsInteger() && v.Abs().LessThanOrEqual(maxExactInt) {
		return humanize.Comma(v.IntPart())
	}
	return v.String()
}

// MonthLabeler prints month numbers as "Jan 2006".
func MonthLabeler(v decimal.Decimal) string {
	return ticks.MonthTime(v.IntPart()).Format("Jan 2006")
}

// LabelerFor returns the default labeler of a domain.
func LabelerFor(d ticks.Domain) Labeler {
	if d == ticks.Month {
		return MonthLabeler
	}
	return NumberLabeler
}

type AxisTick struct {
	Value decimal.Decimal
	// Label is empty for minor ticks.
	Label string
	Major bool
}

type Axis struct {
	Ticks []AxisTick

	// Width is the widest label, in terminal columns.
	Width int
	// Margin is Width plus the line size, i.e. the room to leave for the
	// labels next to the axis line.
	Margin int

	// Truncated is set if the layout had more major ticks than MaxAxisTicks,
	// in which case Ticks is empty.
	Truncated bool
}

// MaxAxisTicks bounds the ticks LabelAxis enumerates.  Layouts with more minor
// ticks only get their major ones, and layouts with more major ticks than
// this get none.
const MaxAxisTicks = 1000

// LabelAxis enumerates the ticks of a layout, labeling the major ones.  A nil
// layout produces an empty axis.
func LabelAxis(params *ticks.RangeParameters, labeler Labeler, lineSize int) Axis {
	res := Axis{Margin: lineSize}
	if params == nil {
		return res
	}

	switch {
	case params.Countable && params.MinorTickCount < MaxAxisTicks:
		for i, v := range params.Ticks() {
			res.add(AxisTick{Value: v, Major: params.IsMajor(i)}, labeler)
		}
	case params.Countable && params.MajorTickCount() <= MaxAxisTicks:
		for _, v := range params.MajorTicks() {
			res.add(AxisTick{Value: v, Major: true}, labeler)
		}
	default:
		res.Truncated = true
	}
	res.Margin = res.Width + lineSize
	return res
}

func (a *Axis) add(tick AxisTick, labeler Labeler) {
	if tick.Major {
		tick.Label = labeler(tick.Value)
		// NB: labels can contain wide runes, so measure columns
		// rather than bytes
		if w := runewidth.StringWidth(tick.Label); w > a.Width {
			a.Width = w
		}
	}
	a.Ticks = append(a.Ticks, tick)
}

// Labels returns the labels of the major ticks.
func (a Axis) Labels() []string {
	var res []string
	for _, t := range a.Ticks {
		if t.Major {
			res = append(res, t.Label)
		}
	}
	return res
}
