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

// Package tickstats counts tick layout evaluations in a prometheus registry.
package tickstats

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"sigs.k8s.io/tickrange/ticks"
)

const (
	OutcomeFit      = "fit"
	OutcomeNoFit    = "no_fit"
	OutcomeNoTicks  = "no_candidates"
	OutcomeNoValues = "no_values"
	OutcomeInvalid  = "invalid"
)

type Recorder struct {
	evaluations *prometheus.CounterVec
	candidates  prometheus.Histogram
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tickrange",
			Name:      "evaluations_total",
			Help:      "Number of tick layout evaluations, by domain and outcome.",
		}, []string{"domain", "outcome"}),
		candidates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tickrange",
			Name:      "candidates",
			Help:      "Number of candidate ticks considered per evaluation.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
	for _, c := range []prometheus.Collector{r.evaluations, r.candidates} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("unable to register tick layout metrics: %w", err)
		}
	}
	return r, nil
}

// Outcome classifies a result.
func Outcome(res *ticks.Result) string {
	switch {
	case res == nil:
		return OutcomeNoValues
	case len(res.Alternatives) == 0:
		return OutcomeNoTicks
	case res.BestFit == nil:
		return OutcomeNoFit
	}
	return OutcomeFit
}

// Observe records one evaluation.  A nil result counts as an evaluation with
// no values.
func (r *Recorder) Observe(domain ticks.Domain, res *ticks.Result) {
	r.evaluations.WithLabelValues(domain.String(), Outcome(res)).Inc()
	if res != nil {
		r.candidates.Observe(float64(len(res.Alternatives)))
	}
}

// ObserveInvalid records input that couldn't be evaluated at all.
func (r *Recorder) ObserveInvalid(domain ticks.Domain) {
	r.evaluations.WithLabelValues(domain.String(), OutcomeInvalid).Inc()
}

// Evaluations returns the counter for a domain and outcome.
func (r *Recorder) Evaluations(domain ticks.Domain, outcome string) prometheus.Counter {
	return r.evaluations.WithLabelValues(domain.String(), outcome)
}

// Dump writes everything gathered by g in the text exposition format.
func Dump(g prometheus.Gatherer, w io.Writer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("unable to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("unable to write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
