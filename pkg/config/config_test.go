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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/openconfig/gnmi/errdiff"
	"github.com/openconfig/oclint/pkg/lint"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "oclint.yaml")
	if err := os.WriteFile(cfgFile, []byte(`
paths:
  - models
  - third_party
oc_only: true
suppress: [OC_STYLE_AVOID_CHOICE]
output: table
`), 0644); err != nil {
		t.Fatal(err)
	}
	badFile := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badFile, []byte("output: html\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name             string
		inFile           string
		inEnv            map[string]string
		inOverrides      map[string]interface{}
		want             *Config
		wantErrSubstring string
	}{{
		name: "defaults",
		want: &Config{
			Format:   "lint",
			Paths:    []string{},
			Baseline: true,
			Suppress: []string{},
			Output:   "text",
		},
	}, {
		name:   "file",
		inFile: cfgFile,
		want: &Config{
			Format:   "lint",
			Paths:    []string{"models", "third_party"},
			OCOnly:   true,
			Baseline: true,
			Suppress: []string{"OC_STYLE_AVOID_CHOICE"},
			Output:   "table",
			File:     cfgFile,
		},
	}, {
		name:   "environment overrides file",
		inFile: cfgFile,
		inEnv: map[string]string{
			"OCLINT_OUTPUT":           "json",
			"OCLINT_SUPPRESS":         "OC_A, OC_B",
			"OCLINT_IGNORE_WARNINGS":  "true",
			"OCLINT_PRINT_ERROR_CODE": "1",
		},
		want: &Config{
			Format:         "lint",
			Paths:          []string{"models", "third_party"},
			OCOnly:         true,
			Baseline:       true,
			IgnoreWarnings: true,
			Suppress:       []string{"OC_A", "OC_B"},
			PrintErrorCode: true,
			Output:         "json",
			File:           cfgFile,
		},
	}, {
		name:        "flags override environment",
		inFile:      cfgFile,
		inEnv:       map[string]string{"OCLINT_OUTPUT": "json"},
		inOverrides: map[string]interface{}{"output": "yaml", "baseline": false, "format": "paths"},
		want: &Config{
			Format:   "paths",
			Paths:    []string{"models", "third_party"},
			OCOnly:   true,
			Suppress: []string{"OC_STYLE_AVOID_CHOICE"},
			Output:   "yaml",
			File:     cfgFile,
		},
	}, {
		name:             "missing file",
		inFile:           filepath.Join(dir, "nonexistent.yaml"),
		wantErrSubstring: "error reading config file",
	}, {
		name:             "unknown output",
		inFile:           badFile,
		wantErrSubstring: `unknown output "html"`,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.inEnv {
				t.Setenv(k, v)
			}
			got, err := Load(tt.inFile, tt.inOverrides)
			if diff := errdiff.Substring(err, tt.wantErrSubstring); diff != "" {
				t.Fatalf("%s", diff)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Load() (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestLintOptions(t *testing.T) {
	c := &Config{Baseline: true, OCOnly: true, IgnoreWarnings: true, Suppress: []string{"OC_A"}}
	want := lint.Options{EnableBaseline: true, OCOnly: true, IgnoreWarnings: true, Suppress: []string{"OC_A"}}
	if diff := cmp.Diff(want, c.LintOptions()); diff != "" {
		t.Errorf("LintOptions() (-want, +got):\n%s", diff)
	}
}
