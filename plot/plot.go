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

	"github.com/shopspring/decimal"

	"sigs.k8s.io/tickrange/ticks"
)

// SeriesId identifies some series.  The zero value is reserved for unset.
type SeriesId uint16

const NoSeries = SeriesId(0)

type SeriesSet []Series

type Point interface {
	Y() float64
	X() int64
}

type Series interface {
	Title() string

	// Id should be unique in a given SeriesSet.  It must not be NoSeries.
	Id() SeriesId

	// Points *must* have a domain that is monotonically increasing
	Points() []Point
}

type PlatonicAxes struct {
	DomainMin, DomainMax int64
	RangeMin, RangeMax   float64
}

func AutoAxes() PlatonicAxes {
	return PlatonicAxes{
		// Min gets set to Max, and vice versa, so that anything is
		// automatically less/more (respectively) than them.
		DomainMin: math.MaxInt64,
		DomainMax: math.MinInt64,
		RangeMin:  math.Inf(1),
		RangeMax:  math.Inf(-1),
	}
}

func (a PlatonicAxes) WithPreviousRange(oldAxes PlatonicAxes) PlatonicAxes {
	// not a pointer so we get a copy
	a.RangeMin = oldAxes.RangeMin
	a.RangeMax = oldAxes.RangeMax
	return a
}

// Empty is true if no points were seen.
func (a PlatonicAxes) Empty() bool {
	return a.DomainMin > a.DomainMax || a.RangeMin > a.RangeMax
}

type PlatonicGraph struct {
	PlatonicAxes

	Series SeriesSet
}

func DataToPlatonicGraph(seriesSet SeriesSet, baseAxes PlatonicAxes) *PlatonicGraph {
	res := &PlatonicGraph{
		Series:       seriesSet,
		PlatonicAxes: baseAxes,
	}

	for _, series := range res.Series {
		pts := series.Points()
		if len(pts) == 0 {
			continue
		}
		minDomain := pts[0].X()
		maxDomain := pts[len(pts)-1].X()

		if minDomain < res.DomainMin {
			res.DomainMin = minDomain
		}
		if maxDomain > res.DomainMax {
			res.DomainMax = maxDomain
		}

		for _, pt := range pts {
			val := pt.Y()
			if math.IsNaN(val) {
				// gaps don't count towards the extent
				continue
			}
			if val < res.RangeMin {
				res.RangeMin = val
			}
			if val > res.RangeMax {
				res.RangeMax = val
			}
		}
	}

	return res
}

// AxesLayout is the tick layout of both axes of a graph.
type AxesLayout struct {
	Domain *ticks.Result
	Range  *ticks.Result
}

// Layout picks tick layouts for the graph's extents.  The domain calculator
// sees the domain as integers; it should be in the Integer or Month domain.
// It returns false if the graph has no points.
func (g PlatonicGraph) Layout(domain, rng ticks.Calculator) (AxesLayout, bool) {
	if g.Empty() {
		return AxesLayout{}, false
	}
	return AxesLayout{
		Domain: domain.EvaluateInt(g.DomainMin, g.DomainMax),
		Range:  rng.EvaluateFloat(g.RangeMin, g.RangeMax),
	}, true
}

// NiceAxes returns the axes widened to the best-fit layouts.  An axis with no
// best fit keeps its raw extent.
func (g PlatonicGraph) NiceAxes(layout AxesLayout) PlatonicAxes {
	res := g.PlatonicAxes
	if layout.Domain != nil && layout.Domain.BestFit != nil {
		res.DomainMin = layout.Domain.BestFit.RangeStart.IntPart()
		res.DomainMax = layout.Domain.BestFit.RangeEnd.IntPart()
	}
	if layout.Range != nil && layout.Range.BestFit != nil {
		res.RangeMin, res.RangeMax, _ = layout.Range.BestFit.Floats()
	}
	return res
}

// RangeValues collects every finite Y value of the set, for callers that want
// to run the values through an extraction registry instead.
func (s SeriesSet) RangeValues() []decimal.Decimal {
	var res []decimal.Decimal
	for _, series := range s {
		for _, pt := range series.Points() {
			y := pt.Y()
			if math.IsNaN(y) || math.IsInf(y, 0) {
				continue
			}
			res = append(res, decimal.NewFromFloat(y))
		}
	}
	return res
}
