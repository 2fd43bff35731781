// Copyright 2024 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads oclint settings.  Settings are layered, later layers
// overriding earlier ones: built in defaults, a YAML file, OCLINT_
// environment variables and finally explicitly set command line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/openconfig/oclint/pkg/lint"
)

// DefaultFile is read from the working directory when no file is named.
const DefaultFile = ".oclint.yaml"

// EnvPrefix is the prefix of environment variables, e.g., OCLINT_OC_ONLY.
const EnvPrefix = "OCLINT_"

// Output styles of the lint report.
var Outputs = []string{"text", "table", "json", "yaml"}

// listKeys hold comma separated lists when set from the environment.
var listKeys = map[string]bool{
	"paths":    true,
	"suppress": true,
}

// Config is the full set of oclint settings.
type Config struct {
	Format         string   `koanf:"format"`
	Paths          []string `koanf:"paths"`
	OCOnly         bool     `koanf:"oc_only"`
	Baseline       bool     `koanf:"baseline"`
	IgnoreWarnings bool     `koanf:"ignore_warnings"`
	Suppress       []string `koanf:"suppress"`
	Color          bool     `koanf:"color"`
	PrintErrorCode bool     `koanf:"print_error_code"`
	Output         string   `koanf:"output"`

	// File is the configuration file that was read, if any.
	File string `koanf:"-"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"format":           "lint",
		"paths":            []string{},
		"oc_only":          false,
		"baseline":         true,
		"ignore_warnings":  false,
		"suppress":         []string{},
		"color":            false,
		"print_error_code": false,
		"output":           "text",
	}
}

// Load returns the configuration read from cfgFile (or DefaultFile if
// cfgFile is empty and DefaultFile exists), the environment and overrides.
// overrides is keyed by configuration key and should only hold values the
// user set explicitly.
func Load(cfgFile string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			cfgFile = DefaultFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// OCLINT_IGNORE_WARNINGS -> ignore_warnings
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if listKeys[key] {
			return key, splitList(value)
		}
		return key, value
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = cfgFile
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) validate() error {
	for _, o := range Outputs {
		if c.Output == o {
			return nil
		}
	}
	return fmt.Errorf("unknown output %q, want one of %s", c.Output, strings.Join(Outputs, ", "))
}

// LintOptions returns the lint.Options described by c.
func (c *Config) LintOptions() lint.Options {
	return lint.Options{
		EnableBaseline: c.Baseline,
		OCOnly:         c.OCOnly,
		IgnoreWarnings: c.IgnoreWarnings,
		Suppress:       c.Suppress,
	}
}
