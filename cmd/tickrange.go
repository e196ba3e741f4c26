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

package cmd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/genericclioptions"

	"sigs.k8s.io/tickrange/cmd/cli"
	"sigs.k8s.io/tickrange/cmd/layout"
	"sigs.k8s.io/tickrange/debug"
	"sigs.k8s.io/tickrange/extract"
	"sigs.k8s.io/tickrange/tickstats"
)

// TickRangeOptions holds the command line state of a tickrange invocation.
type TickRangeOptions struct {
	args   []string
	flags  cli.TickRangeFlags
	config *cli.Config
	genericclioptions.IOStreams
}

// NewTickRangeOptions provides an instance of TickRangeOptions with default
// values.
func NewTickRangeOptions(streams genericclioptions.IOStreams) *TickRangeOptions {
	return &TickRangeOptions{
		flags:     cli.TickRangeFlags{Output: "text"},
		IOStreams: streams,
	}
}

type RootTickRangeCmd struct {
	*cobra.Command
	options *TickRangeOptions
}

func addFlags(cmd *cobra.Command, options *TickRangeOptions) {
	fs := cmd.PersistentFlags()
	fs.VarP(&options.flags.Domain, "domain", "d", "domain of the bounds: continuous, integer or month (as YYYY-MM)")
	fs.UintVarP(&options.flags.MaxTicks, "max-ticks", "m", options.flags.MaxTicks, "upper bound on minor ticks in the chosen layout, 0 for no bound")
	fs.StringVarP(&options.flags.Output, "output", "o", options.flags.Output, "Output format: json, yaml or text")
	fs.BoolVar(&options.flags.Color, "color", options.flags.Color, "if true, colorizes json and text output")
	fs.BoolVarP(&options.flags.Alternatives, "alternatives", "a", options.flags.Alternatives, "if true, also prints every considered layout")
	fs.BoolVar(&options.flags.Stats, "stats", options.flags.Stats, "if true, prints evaluation counters to stderr")
	fs.StringVar(&options.flags.Config, "config", options.flags.Config, "YAML file with a default tick limit and custom catalogs")
	fs.BoolVarP(&options.flags.Verbose, "verbose", "v", options.flags.Verbose, "if true, logs how the layout was chosen")
}

// NewCmdTickRange provides a cobra command wrapping TickRangeOptions
func NewCmdTickRange(streams genericclioptions.IOStreams) *RootTickRangeCmd {
	o := NewTickRangeOptions(streams)
	cmd := &cobra.Command{
		Use: "tickrange [options] MIN MAX",
		Example: `
tickrange 0.5 12                                    # nicest layout of a continuous range
tickrange -m 10 -- -76 1307                         # at most 10 minor ticks, "--" before negative bounds
tickrange -d integer -oyaml 3 97                    # whole numbers only, in yaml
tickrange -d month -a 2020-02 2021-08               # months, with every considered layout
tickrange interactive                               # for interactive mode
`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,

		RunE: func(c *cobra.Command, args []string) error {
			defer debug.Teardown()
			if err := o.Complete(c, args); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			lc, err := o.toLayoutCmd()
			if err != nil {
				return err
			}
			return lc.Run(o.flags, o.args)
		},
	}
	tickrange := &RootTickRangeCmd{Command: cmd, options: o}

	addFlags(cmd, o)
	cmd.AddCommand(newCmdInteractive(o))

	return tickrange
}

func newCmdInteractive(o *TickRangeOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "interactive",
		Aliases:      []string{"i"},
		Short:        "Lay out ranges typed at a prompt",
		Args:         cobra.NoArgs,
		SilenceUsage: true,

		RunE: func(c *cobra.Command, args []string) error {
			defer debug.Teardown()
			if err := o.Complete(c, args); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			lc, err := o.toLayoutCmd()
			if err != nil {
				return err
			}
			session := &layout.Session{LayoutCommand: lc, Flags: o.flags}
			session.RunPrompt()
			return nil
		},
	}
}

// Complete loads the config file, if any, and fills in flags it provides
// defaults for.
func (o *TickRangeOptions) Complete(cmd *cobra.Command, args []string) error {
	o.args = args
	if o.flags.Config == "" {
		return nil
	}

	var err error
	o.config, err = cli.LoadConfig(o.flags.Config)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("max-ticks") && o.config.MaxTicks != 0 {
		o.flags.MaxTicks = o.config.MaxTicks
	}
	return nil
}

// Validate ensures that all required arguments and flag values are provided
func (o *TickRangeOptions) Validate() error {
	return o.flags.Validate()
}

func (o *TickRangeOptions) toLayoutCmd() (*layout.LayoutCommand, error) {
	log := debug.NewLogger("tickrange.log", o.ErrOut, o.flags.Verbose)

	b := extract.NewBuilder()
	b.Log = log
	extract.RegisterDefaults(b)
	o.config.Register(b)

	stats := prometheus.NewRegistry()
	rec, err := tickstats.NewRecorder(stats)
	if err != nil {
		return nil, err
	}

	return &layout.LayoutCommand{
		TickRangeCommand: cli.TickRangeCommand{
			Streams:  o.IOStreams,
			Log:      log,
			Registry: b.Build(),
			Config:   o.config,
		},
		Recorder: rec,
		Gatherer: stats,
	}, nil
}
