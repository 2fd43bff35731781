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

package main

import (
	"io"
	"strings"

	"github.com/openconfig/oclint/pkg/config"
	"github.com/openconfig/oclint/pkg/lint"
	"github.com/openconfig/oclint/pkg/loader"
	"github.com/openconfig/oclint/pkg/openconfig"
	"github.com/openconfig/oclint/pkg/report"
	"github.com/pborman/getopt"
)

var lintOutput string

func init() {
	flags := getopt.New()
	register(&formatter{
		name:  "lint",
		f:     doLint,
		help:  "check modules against the OpenConfig style guidelines",
		flags: flags,
	})
	o := flags.StringVarLong(&lintOutput, "lint_output", 0, "output style: "+strings.Join(config.Outputs, ", "), "STYLE")
	addOverride("output", o, func() interface{} { return lintOutput })
}

// newLinter returns a linter with the OpenConfig rules registered for opts.
func newLinter(opts lint.Options) (*lint.Linter, error) {
	l := lint.New()
	if err := openconfig.Register(l, opts); err != nil {
		return nil, err
	}
	return l, nil
}

func doLint(w io.Writer, cfg *config.Config, ms *loader.Set) error {
	opts := cfg.LintOptions()
	l, err := newLinter(opts)
	if err != nil {
		return err
	}
	res, err := l.Run(ms.Modules, ms, opts)
	if err != nil {
		return err
	}
	visible := res.Visible(opts)
	if err := report.Write(w, cfg.Output, visible, report.Options{
		Color:          cfg.Color,
		PrintErrorCode: cfg.PrintErrorCode,
	}); err != nil {
		return err
	}
	// Machine readable output is left alone.
	if cfg.Output == "text" || cfg.Output == "table" {
		if err := report.Summary(w, visible); err != nil {
			return err
		}
	}
	if res.Failed() {
		return errLintFailed
	}
	return nil
}
