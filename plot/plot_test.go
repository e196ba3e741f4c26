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

package plot_test

import (
	"math"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"sigs.k8s.io/tickrange/plot"
	"sigs.k8s.io/tickrange/ticks"
)

type trivialPoint struct {
	x int64
	y float64
}

func (p trivialPoint) X() int64 {
	return p.x
}
func (p trivialPoint) Y() float64 {
	return p.y
}

type trivialSeries struct {
	title string
	id    plot.SeriesId
	pts   []plot.Point
}

func (s trivialSeries) Title() string {
	return s.title
}
func (s trivialSeries) Id() plot.SeriesId {
	return s.id
}
func (s trivialSeries) Points() []plot.Point {
	return s.pts
}

var samplePlatonicGraph = plot.DataToPlatonicGraph(
	plot.SeriesSet{trivialSeries{
		title: "linear 1",
		id:    plot.SeriesId(1),
		pts: []plot.Point{
			trivialPoint{0, 0},
			trivialPoint{2, 3.0},
			trivialPoint{3, 8.7},
			trivialPoint{17, 0.666666666667},
		},
	}},
	plot.AutoAxes(),
)

var _ = Describe("The platonic graph", func() {
	It("should find the extent of its series", func() {
		Expect(samplePlatonicGraph.PlatonicAxes).To(Equal(plot.PlatonicAxes{
			DomainMin: 0, DomainMax: 17,
			RangeMin: 0, RangeMax: 8.7,
		}))
	})

	It("should skip gaps when finding the range", func() {
		gr := plot.DataToPlatonicGraph(plot.SeriesSet{trivialSeries{
			id:  plot.SeriesId(1),
			pts: []plot.Point{trivialPoint{1, math.NaN()}, trivialPoint{4, -2}},
		}}, plot.AutoAxes())
		Expect(gr.RangeMin).To(Equal(-2.0))
		Expect(gr.RangeMax).To(Equal(-2.0))
		Expect(gr.Series.RangeValues()).To(HaveLen(1))
	})

	It("should keep a previous range if asked", func() {
		old := plot.PlatonicAxes{RangeMin: -10, RangeMax: 10}
		axes := samplePlatonicGraph.PlatonicAxes.WithPreviousRange(old)
		Expect(axes.RangeMin).To(Equal(-10.0))
		Expect(axes.DomainMax).To(Equal(int64(17)))
	})

	Context("when laying out axes", func() {
		domainCalc := ticks.Calculator{Domain: ticks.Integer, MaxTicks: 10}
		rangeCalc := ticks.Calculator{MaxTicks: 10}

		It("should widen both axes to tick boundaries", func() {
			layout, ok := samplePlatonicGraph.Layout(domainCalc, rangeCalc)
			Expect(ok).To(BeTrue())
			Expect(layout.Domain.BestFit.MinorTickWidth.String()).To(Equal("2"))
			Expect(layout.Range.BestFit.MinorTickWidth.String()).To(Equal("1"))

			Expect(samplePlatonicGraph.NiceAxes(layout)).To(Equal(plot.PlatonicAxes{
				DomainMin: 0, DomainMax: 18,
				RangeMin: 0, RangeMax: 9,
			}))
		})

		It("should keep the raw extent of an axis without a best fit", func() {
			layout, ok := samplePlatonicGraph.Layout(domainCalc, ticks.Calculator{MaxTicks: 1})
			Expect(ok).To(BeTrue())
			Expect(layout.Range.BestFit).To(BeNil())
			axes := samplePlatonicGraph.NiceAxes(layout)
			Expect(axes.RangeMax).To(Equal(8.7))
			Expect(axes.DomainMax).To(Equal(int64(18)))
		})

		It("should refuse to lay out a graph without points", func() {
			empty := plot.DataToPlatonicGraph(nil, plot.AutoAxes())
			_, ok := empty.Layout(domainCalc, rangeCalc)
			Expect(ok).To(BeFalse())
		})
	})
})

var _ = Describe("Axis labeling", func() {
	It("should only label major ticks", func() {
		res := ticks.Calculator{MaxTicks: 10}.EvaluateFloat(-76, 1307)
		axis := plot.LabelAxis(res.BestFit, plot.NumberLabeler, 1)

		Expect(axis.Ticks).To(HaveLen(9))
		Expect(axis.Labels()).To(Equal([]string{"-200", "800"}))
		for _, t := range axis.Ticks {
			if !t.Major {
				Expect(t.Label).To(BeEmpty())
			}
		}
		Expect(axis.Width).To(Equal(4))
		Expect(axis.Margin).To(Equal(5))
	})

	It("should only enumerate major ticks of a dense layout", func() {
		res := ticks.Calculator{}.EvaluateInt(1, 2001)
		Expect(res.BestFit.MinorTickCount).To(Equal(uint(2000)))

		axis := plot.LabelAxis(res.BestFit, plot.NumberLabeler, 0)
		Expect(axis.Truncated).To(BeFalse())
		Expect(axis.Ticks).To(HaveLen(401))
		labels := axis.Labels()
		Expect(labels[0]).To(Equal("1"))
		Expect(labels[1]).To(Equal("6"))
		Expect(labels[400]).To(Equal("2,001"))
		Expect(axis.Width).To(Equal(5))
	})

	It("should give up on labeling layouts with too many major ticks", func() {
		res := ticks.Calculator{}.Evaluate(decimal.NewFromInt(1), decimal.RequireFromString("1000000000000003"))
		Expect(res.BestFit.MinorTickWidth.String()).To(Equal("1"))

		axis := plot.LabelAxis(res.BestFit, plot.NumberLabeler, 2)
		Expect(axis.Truncated).To(BeTrue())
		Expect(axis.Ticks).To(BeEmpty())
		Expect(axis.Margin).To(Equal(2))
	})

	It("should produce an empty axis without a layout", func() {
		axis := plot.LabelAxis(nil, plot.NumberLabeler, 2)
		Expect(axis.Ticks).To(BeEmpty())
		Expect(axis.Margin).To(Equal(2))
	})

	It("should format numbers and months", func() {
		Expect(plot.NumberLabeler(decimal.NewFromInt(1310))).To(Equal("1,310"))
		Expect(plot.NumberLabeler(decimal.RequireFromString("-0.5"))).To(Equal("-0.5"))
		Expect(plot.LabelerFor(ticks.Month)(decimal.NewFromInt(2020*12 + 2))).To(Equal("Feb 2020"))
		Expect(plot.LabelerFor(ticks.Integer)(decimal.NewFromInt(-7))).To(Equal("-7"))
	})
})
