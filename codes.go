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

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/openconfig/oclint/pkg/config"
	"github.com/openconfig/oclint/pkg/loader"
)

func init() {
	register(&formatter{
		name:    "codes",
		f:       doCodes,
		help:    "list the diagnostic codes with their severity and message",
		noInput: true,
	})
}

func doCodes(w io.Writer, cfg *config.Config, _ *loader.Set) error {
	l, err := newLinter(cfg.LintOptions())
	if err != nil {
		return err
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Code", "Severity", "Message"})
	for _, c := range l.Codes().All() {
		t.AppendRow(table.Row{c.ID, c.Severity.String(), c.Format})
	}
	t.Render()
	return nil
}
