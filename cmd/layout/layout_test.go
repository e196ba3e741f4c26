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

package layout_test

import (
	"bytes"
	"encoding/json"

	"github.com/c-bata/go-prompt"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"gopkg.in/yaml.v2"
	"k8s.io/cli-runtime/pkg/genericclioptions"

	"sigs.k8s.io/tickrange/cmd/cli"
	"sigs.k8s.io/tickrange/cmd/layout"
	"sigs.k8s.io/tickrange/extract"
	"sigs.k8s.io/tickrange/plot"
	"sigs.k8s.io/tickrange/ticks"
	"sigs.k8s.io/tickrange/tickstats"
)

func completionsFor(text string) []string {
	buf := prompt.NewBuffer()
	buf.InsertText(text, false, true)
	var res []string
	for _, s := range layout.Complete(*buf.Document()) {
		res = append(res, s.Text)
	}
	return res
}

var _ = Describe("Laying out command line bounds", func() {
	reg := extract.DefaultRegistry()

	It("should parse continuous bounds exactly", func() {
		res, err := layout.Evaluate(reg, ticks.Continuous, "-76", "1307", 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.BestFit.RangeStart.String()).To(Equal("-80"))
		Expect(res.BestFit.RangeEnd.String()).To(Equal("1310"))
		Expect(res.BestFit.MinorTickWidth.String()).To(Equal("10"))
	})

	It("should parse integer bounds", func() {
		res, err := layout.Evaluate(reg, ticks.Integer, "3", "97", 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.BestFit.RangeStart.String()).To(Equal("0"))
		Expect(res.BestFit.RangeEnd.String()).To(Equal("100"))
		Expect(res.BestFit.MinorTickWidth.String()).To(Equal("50"))
	})

	It("should parse month bounds with or without a day", func() {
		res, err := layout.Evaluate(reg, ticks.Month, "2020-02-14", "2021-08", 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.BestFit.MinorTickWidth.String()).To(Equal("12"))

		view := layout.NewResultView(ticks.Month, res, false)
		Expect(view.Min).To(Equal("2020-02"))
		Expect(view.BestFit.Start).To(Equal("2020-01"))
		Expect(view.BestFit.End).To(Equal("2022-01"))
		Expect(view.BestFit.Labels).To(Equal([]string{"Jan 2020", "Jan 2021", "Jan 2022"}))
	})

	It("should describe ranges too wide to label", func() {
		res, err := layout.Evaluate(reg, ticks.Continuous, "1", "1000000000000003", 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.BestFit.MinorTickCount).To(Equal(uint(1000000000000002)))

		view := layout.NewResultView(ticks.Continuous, res, true)
		Expect(view.BestFit.Count).To(Equal(uint(1000000000000002)))
		Expect(view.BestFit.LabelsTruncated).To(BeTrue())
		Expect(view.BestFit.Labels).To(BeEmpty())
		Expect(view.Alternatives).To(HaveLen(len(res.Layouts)))
		for _, alt := range view.Alternatives {
			Expect(len(alt.Labels)).To(BeNumerically("<=", plot.MaxAxisTicks))
		}
	})

	It("should flag layouts with more ticks than it can count", func() {
		res, err := layout.Evaluate(reg, ticks.Continuous, "0", "18446744073709551619", 10)
		Expect(err).NotTo(HaveOccurred())

		view := layout.NewResultView(ticks.Continuous, res, true)
		Expect(view.Alternatives[0].Width).To(Equal("1"))
		Expect(view.Alternatives[0].Uncountable).To(BeTrue())
		Expect(view.BestFit.Uncountable).To(BeFalse())
		Expect(view.BestFit.Count).To(BeNumerically("<=", 10))
	})

	It("should reject bounds its domain can't spell", func() {
		for _, tc := range []struct {
			domain   ticks.Domain
			min, max string
		}{
			{ticks.Continuous, "abc", "1"},
			{ticks.Continuous, "1", "1e"},
			{ticks.Integer, "1.5", "3"},
			{ticks.Integer, "1", "99999999999999999999"},
			{ticks.Month, "2020/01", "2021-01"},
		} {
			_, err := layout.Evaluate(reg, tc.domain, tc.min, tc.max, 0)
			Expect(err).To(HaveOccurred(), "%v %s .. %s", tc.domain, tc.min, tc.max)
		}
	})
})

var _ = Describe("The layout command", func() {
	var (
		cmd    *layout.LayoutCommand
		out    *bytes.Buffer
		errOut *bytes.Buffer
		hook   *logtest.Hook
		flags  cli.TickRangeFlags
	)

	BeforeEach(func() {
		var streams genericclioptions.IOStreams
		streams, _, out, errOut = genericclioptions.NewTestIOStreams()

		var logger *logrus.Logger
		logger, hook = logtest.NewNullLogger()

		stats := prometheus.NewRegistry()
		rec, err := tickstats.NewRecorder(stats)
		Expect(err).NotTo(HaveOccurred())

		cmd = &layout.LayoutCommand{
			TickRangeCommand: cli.TickRangeCommand{
				Streams:  streams,
				Log:      logger,
				Registry: extract.DefaultRegistry(),
			},
			Recorder: rec,
			Gatherer: stats,
		}
		flags = cli.TickRangeFlags{Output: "json"}
	})

	It("should print the best fit as json", func() {
		Expect(cmd.Run(flags, []string{"-76", "1307"})).To(Succeed())

		var view layout.ResultView
		Expect(json.Unmarshal(out.Bytes(), &view)).To(Succeed())
		Expect(view.Domain).To(Equal("continuous"))
		Expect(view.BestFit).NotTo(BeNil())
		Expect(view.BestFit.Start).To(Equal("-80"))
		Expect(view.BestFit.Count).To(Equal(uint(139)))
		Expect(view.BestFit.Inactive).To(Equal("7"))
		Expect(view.Alternatives).To(BeEmpty())
	})

	It("should print every layout considered if asked", func() {
		flags.Output = "yaml"
		flags.Alternatives = true
		Expect(cmd.Run(flags, []string{"5.5", "5.5"})).To(Succeed())

		var view layout.ResultView
		Expect(yaml.Unmarshal(out.Bytes(), &view)).To(Succeed())
		Expect(view.Alternatives).To(HaveLen(7))
		Expect(view.BestFit.Start).To(Equal("5.5"))
		Expect(view.BestFit.End).To(Equal("5.5"))
	})

	It("should summarize a wide range as text", func() {
		flags.Output = "text"
		flags.Alternatives = true
		Expect(cmd.Run(flags, []string{"0", "18446744073709551619"})).To(Succeed())
		Expect(out.String()).To(ContainSubstring("labels:   too many to list"))
		Expect(out.String()).To(ContainSubstring("0 .. 18446744073709551619, too many ticks of 1"))
	})

	It("should summarize as text", func() {
		flags.Output = "text"
		Expect(cmd.Run(flags, []string{"-76", "1307"})).To(Succeed())
		Expect(out.String()).To(ContainSubstring("-76 .. 1307"))
		Expect(out.String()).To(ContainSubstring("-80 .. 1310, 139 ticks of 10 (major every 5), inactive 7"))
	})

	It("should report a range that doesn't fit without failing", func() {
		flags.MaxTicks = 1
		Expect(cmd.Run(flags, []string{"-76", "1307"})).To(Succeed())
		Expect(out.String()).To(ContainSubstring(`"bestFit": null`))
		Expect(hook.LastEntry()).NotTo(BeNil())
		Expect(hook.LastEntry().Level).To(Equal(logrus.InfoLevel))
		Expect(testutil.ToFloat64(cmd.Recorder.Evaluations(ticks.Continuous, tickstats.OutcomeNoFit))).To(Equal(1.0))
	})

	It("should count evaluations and dump them on request", func() {
		flags.Stats = true
		Expect(cmd.Run(flags, []string{"1", "10"})).To(Succeed())
		Expect(cmd.Run(flags, []string{"x", "10"})).NotTo(Succeed())
		Expect(errOut.String()).To(ContainSubstring(`tickrange_evaluations_total{domain="continuous",outcome="fit"} 1`))

		Expect(cmd.DumpStats()).To(Succeed())
		Expect(errOut.String()).To(ContainSubstring(`tickrange_evaluations_total{domain="continuous",outcome="invalid"} 1`))
		Expect(errOut.String()).NotTo(ContainSubstring(`outcome="no_values"`))
	})

	It("should refuse anything but two bounds or a known format", func() {
		Expect(cmd.Run(flags, []string{"1"})).NotTo(Succeed())
		flags.Output = "xml"
		Expect(cmd.Run(flags, []string{"1", "2"})).NotTo(Succeed())
	})

	Context("in an interactive session", func() {
		var session *layout.Session

		BeforeEach(func() {
			session = &layout.Session{LayoutCommand: cmd, Flags: flags}
		})

		It("should keep settings between lines", func() {
			Expect(session.Execute("domain integer")).To(Succeed())
			Expect(session.Execute("max-ticks 10")).To(Succeed())
			Expect(session.Execute("3 97")).To(Succeed())

			var view layout.ResultView
			Expect(json.Unmarshal(out.Bytes(), &view)).To(Succeed())
			Expect(view.Domain).To(Equal("integer"))
			Expect(view.BestFit.Width).To(Equal("50"))
		})

		It("should switch output formats and toggle alternatives", func() {
			Expect(session.Execute("output text")).To(Succeed())
			Expect(session.Execute("alternatives")).To(Succeed())
			Expect(session.Flags.Output).To(Equal("text"))
			Expect(session.Flags.Alternatives).To(BeTrue())
			Expect(session.Execute("0 0")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("option:"))
		})

		It("should reject bad settings and leave them unchanged", func() {
			Expect(session.Execute("domain weekly")).NotTo(Succeed())
			Expect(session.Execute("max-ticks -3")).NotTo(Succeed())
			Expect(session.Execute("output xml")).NotTo(Succeed())
			Expect(session.Execute("domain")).NotTo(Succeed())
			Expect(session.Flags).To(Equal(flags))
		})

		It("should ignore blank lines and print help", func() {
			Expect(session.Execute("   ")).To(Succeed())
			Expect(out.String()).To(BeEmpty())
			Expect(session.Execute("help")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("max-ticks N"))
		})
	})
})

var _ = Describe("Prompt completion", func() {
	It("should suggest commands by prefix", func() {
		Expect(completionsFor("do")).To(Equal([]string{"domain"}))
		Expect(completionsFor("ma")).To(Equal([]string{"max-ticks"}))
	})

	It("should suggest domains and formats as arguments", func() {
		Expect(completionsFor("domain ")).To(Equal([]string{"continuous", "integer", "month"}))
		Expect(completionsFor("domain m")).To(Equal([]string{"month"}))
		Expect(completionsFor("output y")).To(Equal([]string{"yaml"}))
	})

	It("should stay quiet on ranges and empty input", func() {
		Expect(completionsFor("")).To(BeEmpty())
		Expect(completionsFor("3 9")).To(BeEmpty())
	})
})
