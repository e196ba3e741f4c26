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

package ticks_test

import (
	"fmt"
	"strings"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
	"github.com/shopspring/decimal"

	"sigs.k8s.io/tickrange/ticks"
)

// decimalMatcher compares decimals numerically, so 5.50 matches 5.5.
type decimalMatcher struct {
	expected decimal.Decimal
}

func (m *decimalMatcher) Match(actual interface{}) (bool, error) {
	d, ok := actual.(decimal.Decimal)
	if !ok {
		return false, fmt.Errorf("BeDecimal expects a decimal.Decimal, not %T", actual)
	}
	return d.Equal(m.expected), nil
}

func (m *decimalMatcher) FailureMessage(actual interface{}) string {
	return format.Message(fmt.Sprint(actual), "to equal", m.expected.String())
}

func (m *decimalMatcher) NegatedFailureMessage(actual interface{}) string {
	return format.Message(fmt.Sprint(actual), "not to equal", m.expected.String())
}

// BeDecimal matches a decimal.Decimal equal to the given literal.
func BeDecimal(expected string) types.GomegaMatcher {
	return &decimalMatcher{expected: decimal.RequireFromString(expected)}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// summarize flattens a result into a string, so results can be compared for
// equality without caring about decimal internals.
func summarize(res *ticks.Result) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "[%v, %v] exps=%+v\n", res.Min, res.Max, res.Exponents)
	for i, alt := range res.Alternatives {
		l := res.Layouts[i]
		fmt.Fprintf(sb, "%v: %v..%v n=%d inactive=%v\n", alt, l.RangeStart, l.RangeEnd, l.MinorTickCount, l.Inactive)
	}
	if res.BestFit != nil {
		fmt.Fprintf(sb, "best: %v..%v w=%v\n", res.BestFit.RangeStart, res.BestFit.RangeEnd, res.BestFit.MinorTickWidth)
	}
	return sb.String()
}
