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
	"time"

	"github.com/shopspring/decimal"
)

// MonthNumber encodes the calendar month of t as year*12 + month, where
// month is 1-based.  The day and time of day are dropped.
func MonthNumber(t time.Time) int64 {
	return int64(t.Year())*12 + int64(t.Month())
}

// MonthTime returns midnight UTC on the first day of month number n.
func MonthTime(n int64) time.Time {
	zeroBased := n - 1
	year := zeroBased / 12
	month := zeroBased % 12
	if month < 0 {
		month += 12
		year--
	}
	return time.Date(int(year), time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
}

// MonthTimes converts month-number ticks back to times.
func MonthTimes(values []decimal.Decimal) []time.Time {
	res := make([]time.Time, len(values))
	for i, v := range values {
		res[i] = MonthTime(v.IntPart())
	}
	return res
}
