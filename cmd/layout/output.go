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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/golang/protobuf/proto"
	"github.com/hokaccha/go-prettyjson"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"

	"sigs.k8s.io/tickrange/plot"
	"sigs.k8s.io/tickrange/ticks"
)

var (
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgHiCyan).SprintFunc()
)

type TickView struct {
	Size     string `json:"size" yaml:"size"`
	PerMajor uint   `json:"perMajor" yaml:"perMajor"`
}

type LayoutView struct {
	Start    string   `json:"start" yaml:"start"`
	End      string   `json:"end" yaml:"end"`
	Width    string   `json:"width" yaml:"width"`
	Count    uint     `json:"count" yaml:"count"`
	Tick     TickView `json:"tick" yaml:"tick"`
	Inactive string   `json:"inactive" yaml:"inactive"`
	Labels   []string `json:"labels,omitempty" yaml:"labels,omitempty"`

	// Uncountable is set if Count would overflow, LabelsTruncated if there
	// were too many major ticks to label.
	Uncountable     bool `json:"uncountable,omitempty" yaml:"uncountable,omitempty"`
	LabelsTruncated bool `json:"labelsTruncated,omitempty" yaml:"labelsTruncated,omitempty"`
}

// ResultView is a ticks.Result flattened into strings, so that exact decimals
// survive every output format.
type ResultView struct {
	Domain          string       `json:"domain" yaml:"domain"`
	Min             string       `json:"min" yaml:"min"`
	Max             string       `json:"max" yaml:"max"`
	MinimumExponent int          `json:"minimumExponent" yaml:"minimumExponent"`
	MaximumExponent int          `json:"maximumExponent" yaml:"maximumExponent"`
	BestFit         *LayoutView  `json:"bestFit" yaml:"bestFit"`
	Alternatives    []LayoutView `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
}

// formatValue prints a value of the domain.  Months are shown as the
// calendar month they number.
func formatValue(domain ticks.Domain, v decimal.Decimal) string {
	if domain == ticks.Month {
		return ticks.MonthTime(v.IntPart()).Format("2006-01")
	}
	return v.String()
}

func newLayoutView(domain ticks.Domain, p *ticks.RangeParameters) LayoutView {
	axis := plot.LabelAxis(p, plot.LabelerFor(domain), 0)
	return LayoutView{
		Start:           formatValue(domain, p.RangeStart),
		End:             formatValue(domain, p.RangeEnd),
		Width:           p.MinorTickWidth.String(),
		Count:           p.MinorTickCount,
		Tick:            TickView{Size: p.Tick.Size().String(), PerMajor: p.Tick.NumberPerMajor},
		Inactive:        p.Inactive.String(),
		Labels:          axis.Labels(),
		Uncountable:     !p.Countable,
		LabelsTruncated: axis.Truncated,
	}
}

// NewResultView flattens res.  Every considered layout is included if
// alternatives is set.
func NewResultView(domain ticks.Domain, res *ticks.Result, alternatives bool) ResultView {
	view := ResultView{
		Domain:          domain.String(),
		Min:             formatValue(domain, res.Min),
		Max:             formatValue(domain, res.Max),
		MinimumExponent: res.Exponents.MinimumExponent,
		MaximumExponent: res.Exponents.MaximumExponent,
	}
	if res.BestFit != nil {
		lv := newLayoutView(domain, res.BestFit)
		view.BestFit = &lv
	}
	if alternatives {
		for i := range res.Layouts {
			view.Alternatives = append(view.Alternatives, newLayoutView(domain, &res.Layouts[i]))
		}
	}
	return view
}

func ToPrettyJson(view ResultView) (*string, error) {
	s, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return nil, err
	}
	return proto.String(string(s)), nil
}

func ToPrettyColoredJson(view ResultView) (*string, error) {
	f := prettyjson.NewFormatter()
	f.Indent = 4
	f.KeyColor = color.New(color.FgGreen)
	f.NullColor = color.New(color.Underline)
	f.NumberColor = color.New(color.FgYellow)
	f.StringColor = color.New(color.FgHiCyan)
	f.BoolColor = nil

	s, err := f.Marshal(view)
	if err != nil {
		return nil, err
	}
	return proto.String(string(s)), nil
}

func ToYaml(view ResultView) (*string, error) {
	o, err := yaml.Marshal(view)
	if err != nil {
		return nil, err
	}
	return proto.String(string(o)), nil
}

func describeLayout(lv LayoutView) string {
	count := fmt.Sprint(lv.Count)
	if lv.Uncountable {
		count = "too many"
	}
	return fmt.Sprintf("%s .. %s, %s ticks of %s (major every %d), inactive %s",
		lv.Start, lv.End, count, lv.Width, lv.Tick.PerMajor, lv.Inactive)
}

// ToText renders a short human readable summary.
func ToText(view ResultView, colorized bool) *string {
	key, val := fmt.Sprint, fmt.Sprint
	if colorized {
		key, val = cyan, yellow
	}
	var b strings.Builder
	line := func(k, v string) {
		fmt.Fprintf(&b, "%s %s\n", key(fmt.Sprintf("%-9s", k+":")), val(v))
	}
	line("domain", view.Domain)
	line("extent", view.Min+" .. "+view.Max)
	if view.BestFit == nil {
		line("layout", "none")
	} else {
		line("layout", describeLayout(*view.BestFit))
		if view.BestFit.LabelsTruncated {
			line("labels", "too many to list")
		} else {
			line("labels", strings.Join(view.BestFit.Labels, ", "))
		}
	}
	for _, alt := range view.Alternatives {
		line("option", fmt.Sprintf("%s x %d: %s", alt.Tick.Size, alt.Tick.PerMajor, describeLayout(alt)))
	}
	return proto.String(b.String())
}

func ToPrettyFormat(view ResultView, outputType string, colorized bool) (*string, error) {
	switch outputType {
	case "json":
		if colorized {
			return ToPrettyColoredJson(view)
		}
		return ToPrettyJson(view)
	case "yaml":
		return ToYaml(view)
	case "text":
		return ToText(view, colorized), nil
	}
	return nil, fmt.Errorf("unsupported formatting option (%s)", outputType)
}
