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

// Package report writes lint diagnostics in the supported output styles.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/openconfig/oclint/pkg/lint"
	"gopkg.in/yaml.v3"
)

// Options control the text style.
type Options struct {
	// Color highlights the severity of each diagnostic.
	Color bool
	// PrintErrorCode adds the diagnostic code in front of each message.
	PrintErrorCode bool
}

// A Record is the serialized form of a diagnostic.
type Record struct {
	File     string        `json:"file" yaml:"file"`
	Line     int           `json:"line" yaml:"line"`
	Severity lint.Severity `json:"severity" yaml:"severity"`
	Code     string        `json:"code" yaml:"code"`
	Message  string        `json:"message" yaml:"message"`
}

// Records converts ds to Records.
func Records(ds []lint.Diagnostic) []Record {
	rs := make([]Record, 0, len(ds))
	for _, d := range ds {
		rs = append(rs, Record{
			File:     d.Pos.File,
			Line:     d.Pos.Line,
			Severity: d.Severity,
			Code:     d.Code,
			Message:  d.Message,
		})
	}
	return rs
}

// Write writes ds to w in style, one of text, table, json or yaml.
func Write(w io.Writer, style string, ds []lint.Diagnostic, opts Options) error {
	switch style {
	case "", "text":
		return Text(w, ds, opts)
	case "table":
		return Table(w, ds)
	case "json":
		return JSON(w, ds)
	case "yaml":
		return YAML(w, ds)
	}
	return fmt.Errorf("unknown output style %q", style)
}

var severityColors = map[lint.Severity][]color.Attribute{
	lint.Critical: {color.FgRed, color.Bold},
	lint.Major:    {color.FgRed},
	lint.Minor:    {color.FgYellow},
	lint.Warning:  {color.FgCyan},
}

// Text writes ds one per line as file:line: SEVERITY: message.
func Text(w io.Writer, ds []lint.Diagnostic, opts Options) error {
	for _, d := range ds {
		sev := color.New(severityColors[d.Severity]...)
		if opts.Color {
			sev.EnableColor()
		} else {
			sev.DisableColor()
		}
		msg := d.Message
		if opts.PrintErrorCode {
			msg = d.Code + ": " + msg
		}
		if _, err := fmt.Fprintf(w, "%s: %s: %s\n", d.Pos, sev.Sprint(d.Severity), msg); err != nil {
			return err
		}
	}
	return nil
}

// Table writes ds as a table.
func Table(w io.Writer, ds []lint.Diagnostic) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Position", "Severity", "Code", "Message"})
	for _, d := range ds {
		t.AppendRow(table.Row{d.Pos.String(), d.Severity.String(), d.Code, d.Message})
	}
	t.Render()
	return nil
}

// JSON writes ds as an indented JSON array of Records.
func JSON(w io.Writer, ds []lint.Diagnostic) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Records(ds))
}

// YAML writes ds as a YAML sequence of Records.
func YAML(w io.Writer, ds []lint.Diagnostic) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Records(ds)); err != nil {
		return err
	}
	return enc.Close()
}

// Summary writes a single line with the number of diagnostics of each
// severity in ds.
func Summary(w io.Writer, ds []lint.Diagnostic) error {
	counts := lint.CountSeverities(ds)
	var parts []string
	for _, s := range []lint.Severity{lint.Critical, lint.Major, lint.Minor, lint.Warning} {
		parts = append(parts, fmt.Sprintf("%d %s", counts[s], strings.ToLower(s.String())))
	}
	_, err := fmt.Fprintf(w, "%s\n", strings.Join(parts, ", "))
	return err
}
