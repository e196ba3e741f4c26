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
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"

	"sigs.k8s.io/tickrange/extract"
	"sigs.k8s.io/tickrange/ticks"
)

type TickConfig struct {
	Size     uint `yaml:"size"`
	PerMajor uint `yaml:"perMajor"`
}

// Config is the optional --config file.
type Config struct {
	// MaxTicks is used when --max-ticks isn't given.
	MaxTicks uint                    `yaml:"maxTicks"`
	Catalogs map[string][]TickConfig `yaml:"catalogs"`

	catalogs map[ticks.Domain]ticks.Catalog
}

// LoadConfig reads and validates a config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses and validates YAML config.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, err
	}
	cfg.catalogs = make(map[ticks.Domain]ticks.Catalog, len(cfg.Catalogs))
	for name, tcs := range cfg.Catalogs {
		d, err := ticks.ParseDomain(name)
		if err != nil {
			return nil, err
		}
		catalog := make(ticks.Catalog, len(tcs))
		for i, tc := range tcs {
			catalog[i] = ticks.Tick{NormalizedSize: tc.Size, NumberPerMajor: tc.PerMajor}
		}
		if err := catalog.Validate(); err != nil {
			return nil, fmt.Errorf("%v catalog: %w", d, err)
		}
		cfg.catalogs[d] = catalog
	}
	return cfg, nil
}

// Catalog returns the configured catalog of a domain, or nil for the default.
func (c *Config) Catalog(d ticks.Domain) ticks.Catalog {
	if c == nil {
		return nil
	}
	return c.catalogs[d]
}

// Register adds custom entries for every configured catalog, keyed by the
// type the command line parses that domain's bounds into.
func (c *Config) Register(b *extract.Builder) {
	if c == nil {
		return
	}
	if cat := c.Catalog(ticks.Continuous); cat != nil {
		b.RegisterCustom(extract.For(ticks.Continuous, cat, func(d decimal.Decimal) (decimal.Decimal, bool) {
			return d, true
		}))
	}
	if cat := c.Catalog(ticks.Integer); cat != nil {
		b.RegisterCustom(extract.For(ticks.Integer, cat, func(i int64) (decimal.Decimal, bool) {
			return decimal.NewFromInt(i), true
		}))
	}
	if cat := c.Catalog(ticks.Month); cat != nil {
		b.RegisterCustom(extract.For(ticks.Month, cat, func(t time.Time) (decimal.Decimal, bool) {
			return decimal.NewFromInt(ticks.MonthNumber(t)), true
		}))
	}
}
