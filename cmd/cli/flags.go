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

package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/cli-runtime/pkg/genericclioptions"

	"sigs.k8s.io/tickrange/extract"
	"sigs.k8s.io/tickrange/ticks"
)

var outputFormats = sets.NewString("json", "yaml", "text")

type TickRangeFlags struct {
	Domain       ticks.Domain
	MaxTicks     uint
	Output       string
	Color        bool
	Alternatives bool
	Stats        bool
	Config       string
	Verbose      bool
}

// ValidateOutput checks that o names a known output format.
func ValidateOutput(o string) error {
	if !outputFormats.Has(o) {
		return fmt.Errorf("unsupported output format %q, expected one of %v", o, outputFormats.List())
	}
	return nil
}

// Validate checks the flag values that can't be checked while parsing.
func (f TickRangeFlags) Validate() error {
	return ValidateOutput(f.Output)
}

// TickRangeCommand is everything a subcommand needs once flags and config
// have been resolved.
type TickRangeCommand struct {
	Streams  genericclioptions.IOStreams
	Log      logrus.FieldLogger
	Registry *extract.Registry
	Config   *Config
}

func (c TickRangeCommand) Fprintf(format string, a ...interface{}) {
	fmt.Fprintf(c.Streams.Out, format, a...)
}

func (c TickRangeCommand) Errorf(format string, a ...interface{}) {
	fmt.Fprintf(c.Streams.ErrOut, format, a...)
}
