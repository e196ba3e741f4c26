/*
Copyright 2019 The Kubernetes Authors.

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

package cli

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"k8s.io/apimachinery/pkg/util/sets"
)

var (
	exitStrings = sets.NewString("q", "quit", "exit")

	exitQuotes = []string{
		"\nI have always wanted to be somebody, but I see now I should have been more specific.",
		"\nWhy do they call it rush hour when nothing moves?",
		"\nNever put off till tomorrow what you can do the day after tomorrow just as well.",
		"\nThe axis is long, but the ticks are nice.",
	}
)

// IsExitString is true if qs asks to leave the interactive prompt.
func IsExitString(qs string) bool {
	return exitStrings.Has(strings.TrimSpace(qs))
}

// ExitFunc prints a parting quote to out if qs is an exit string, returning
// whether it was.
func ExitFunc(qs string, out io.Writer) bool {
	if !IsExitString(qs) {
		return false
	}
	r := rand.New(rand.NewSource(time.Now().Unix()))
	fmt.Fprintln(out, exitQuotes[r.Intn(len(exitQuotes))])
	return true
}
