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

package layout

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"sigs.k8s.io/tickrange/cmd/cli"
	"sigs.k8s.io/tickrange/extract"
	"sigs.k8s.io/tickrange/ticks"
	"sigs.k8s.io/tickrange/tickstats"
)

// monthLayouts are the accepted spellings of a month bound; the day, if
// given, is ignored.
var monthLayouts = []string{"2006-01-02", "2006-01"}

type LayoutCommand struct {
	cli.TickRangeCommand

	// Recorder and Gatherer are optional.  Without them evaluations aren't
	// counted and --stats prints nothing.
	Recorder *tickstats.Recorder
	Gatherer prometheus.Gatherer
}

func parseMonth(s string) (time.Time, error) {
	var err error
	for _, layout := range monthLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid month %q (want YYYY-MM or YYYY-MM-DD): %w", s, err)
}

// Evaluate parses both bounds the way their domain spells values and lays
// them out through the entry registered for the parsed type.
func Evaluate(reg *extract.Registry, domain ticks.Domain, min, max string, maxTicks uint) (*ticks.Result, error) {
	var (
		res *ticks.Result
		ok  bool
	)
	switch domain {
	case ticks.Continuous:
		lo, err := decimal.NewFromString(min)
		if err != nil {
			return nil, fmt.Errorf("invalid minimum %q: %w", min, err)
		}
		hi, err := decimal.NewFromString(max)
		if err != nil {
			return nil, fmt.Errorf("invalid maximum %q: %w", max, err)
		}
		res, ok = extract.Evaluate(reg, []decimal.Decimal{lo, hi}, maxTicks)
	case ticks.Integer:
		lo, err := strconv.ParseInt(min, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid minimum: %w", err)
		}
		hi, err := strconv.ParseInt(max, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid maximum: %w", err)
		}
		res, ok = extract.Evaluate(reg, []int64{lo, hi}, maxTicks)
	case ticks.Month:
		lo, err := parseMonth(min)
		if err != nil {
			return nil, err
		}
		hi, err := parseMonth(max)
		if err != nil {
			return nil, err
		}
		res, ok = extract.Evaluate(reg, []time.Time{lo, hi}, maxTicks)
	default:
		return nil, fmt.Errorf("unknown domain %v", domain)
	}
	if !ok {
		return nil, fmt.Errorf("unable to lay out %v values %s and %s", domain, min, max)
	}
	return res, nil
}

// Run lays out the range given by args, which holds the two bounds, and
// prints it in the requested format.
func (c *LayoutCommand) Run(flags cli.TickRangeFlags, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected a minimum and a maximum, got %d values", len(args))
	}
	res, err := Evaluate(c.Registry, flags.Domain, args[0], args[1], flags.MaxTicks)
	if err != nil {
		if c.Recorder != nil {
			c.Recorder.ObserveInvalid(flags.Domain)
		}
		return err
	}
	if c.Recorder != nil {
		c.Recorder.Observe(flags.Domain, res)
	}
	if res.BestFit == nil {
		c.Log.Infof("no layout of %s .. %s fits in %d ticks", args[0], args[1], flags.MaxTicks)
	}

	o, err := ToPrettyFormat(NewResultView(flags.Domain, res, flags.Alternatives), flags.Output, flags.Color)
	if err != nil {
		return err
	}
	c.Fprintf("%s\n", *o)

	if flags.Stats {
		return c.DumpStats()
	}
	return nil
}

// DumpStats prints the evaluation counters to the error stream.
func (c *LayoutCommand) DumpStats() error {
	if c.Gatherer == nil {
		return nil
	}
	return tickstats.Dump(c.Gatherer, c.Streams.ErrOut)
}
