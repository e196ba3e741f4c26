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
	"strings"

	"github.com/c-bata/go-prompt"

	"sigs.k8s.io/tickrange/cmd/cli"
	"sigs.k8s.io/tickrange/ticks"
)

var (
	commandSuggestions = []prompt.Suggest{
		{Text: "domain", Description: "switch the domain ranges are laid out in"},
		{Text: "max-ticks", Description: "limit the number of minor ticks, 0 for no limit"},
		{Text: "output", Description: "switch the output format"},
		{Text: "alternatives", Description: "toggle printing every considered layout"},
		{Text: "stats", Description: "print evaluation counters"},
		{Text: "help", Description: "show usage"},
		{Text: "quit", Description: "leave"},
	}
	domainSuggestions = []prompt.Suggest{
		{Text: ticks.Continuous.String(), Description: "real numbers"},
		{Text: ticks.Integer.String(), Description: "whole numbers"},
		{Text: ticks.Month.String(), Description: "calendar months, as YYYY-MM"},
	}
	outputSuggestions = []prompt.Suggest{
		{Text: "json"}, {Text: "yaml"}, {Text: "text"},
	}
)

const sessionHelp = `enter a range as "MIN MAX", e.g. "-76 1307" or "2020-02 2021-08", or one of
  domain continuous|integer|month
  max-ticks N
  output json|yaml|text
  alternatives
  stats
  quit
`

// Session is an interactive loop of layouts that keeps its settings between
// lines.
type Session struct {
	*LayoutCommand
	Flags cli.TickRangeFlags
}

// Execute handles one line of input.
func (s *Session) Execute(line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	switch args[0] {
	case "help":
		s.Fprintf("%s", sessionHelp)
		return nil
	case "stats":
		return s.DumpStats()
	case "alternatives":
		s.Flags.Alternatives = !s.Flags.Alternatives
		return nil
	case "domain":
		if len(args) != 2 {
			return fmt.Errorf("usage: domain continuous|integer|month")
		}
		return s.Flags.Domain.Set(args[1])
	case "max-ticks":
		if len(args) != 2 {
			return fmt.Errorf("usage: max-ticks N")
		}
		n, err := strconv.ParseUint(args[1], 10, 0)
		if err != nil {
			return fmt.Errorf("invalid tick limit: %w", err)
		}
		s.Flags.MaxTicks = uint(n)
		return nil
	case "output":
		if len(args) != 2 {
			return fmt.Errorf("usage: output json|yaml|text")
		}
		if err := cli.ValidateOutput(args[1]); err != nil {
			return err
		}
		s.Flags.Output = args[1]
		return nil
	}
	return s.Run(s.Flags, args)
}

// Complete suggests commands, and the arguments of the ones that take a
// fixed set.
func Complete(d prompt.Document) []prompt.Suggest {
	before := d.TextBeforeCursor()
	if before == "" {
		return []prompt.Suggest{}
	}
	word := d.GetWordBeforeCursor()
	args := strings.Fields(before)
	if len(args) == 0 {
		return []prompt.Suggest{}
	}
	if len(args) == 1 && word != "" {
		return prompt.FilterHasPrefix(commandSuggestions, word, true)
	}
	switch args[0] {
	case "domain":
		return prompt.FilterHasPrefix(domainSuggestions, word, true)
	case "output":
		return prompt.FilterHasPrefix(outputSuggestions, word, true)
	}
	return []prompt.Suggest{}
}

// this the the hook for the interactive prompt, if we detect an exit string
// we say goodbye, and the exit checker stops the prompt afterwards.
func (s *Session) executor() prompt.Executor {
	return func(line string) {
		if cli.ExitFunc(line, s.Streams.Out) {
			return
		}
		if err := s.Execute(line); err != nil {
			s.Errorf("%v\n", err)
		}
	}
}

// RunPrompt reads lines from the terminal until asked to quit.
func (s *Session) RunPrompt() {
	p := prompt.New(
		s.executor(),
		Complete,
		prompt.OptionTitle("tickrange: interactive axis layout"),
		prompt.OptionPrefix(">>> "),
		prompt.OptionPrefixTextColor(prompt.Cyan),
		prompt.OptionInputTextColor(prompt.Yellow),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return breakline && cli.IsExitString(in)
		}),
	)
	p.Run()
}
