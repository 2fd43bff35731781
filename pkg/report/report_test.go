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

package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openconfig/gnmi/errdiff"
	"github.com/openconfig/oclint/pkg/lint"
	"github.com/openconfig/oclint/pkg/schema"
)

var diags = []lint.Diagnostic{{
	Pos:      schema.Position{File: "a.yang", Line: 3},
	Code:     "OC_BAD_TYPE",
	Severity: lint.Major,
	Message:  "Bad type empty used in leaf or typedef",
	Args:     []string{"empty"},
}, {
	Pos:      schema.Position{File: "b.yang", Line: 10},
	Code:     "OC_STYLE_AVOID_CHOICE",
	Severity: lint.Warning,
	Message:  "Element c uses the choice keyword, which should be avoided",
	Args:     []string{"c"},
}}

func TestText(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{{
		name: "plain",
		want: `a.yang:3: MAJOR: Bad type empty used in leaf or typedef
b.yang:10: WARNING: Element c uses the choice keyword, which should be avoided
`,
	}, {
		name: "error codes",
		opts: Options{PrintErrorCode: true},
		want: `a.yang:3: MAJOR: OC_BAD_TYPE: Bad type empty used in leaf or typedef
b.yang:10: WARNING: OC_STYLE_AVOID_CHOICE: Element c uses the choice keyword, which should be avoided
`,
	}}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := Text(&buf, diags, tt.opts); err != nil {
			t.Fatalf("%s: Text: %v", tt.name, err)
		}
		if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
			t.Errorf("%s: (-want, +got):\n%s", tt.name, diff)
		}
	}
}

func TestTextColor(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, diags[:1], Options{Color: true}); err != nil {
		t.Fatalf("Text: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "\x1b[") || !strings.Contains(got, "MAJOR") {
		t.Errorf("Text with color = %q, want an escaped severity", got)
	}
	if !strings.HasPrefix(got, "a.yang:3: ") || !strings.HasSuffix(got, ": Bad type empty used in leaf or typedef\n") {
		t.Errorf("Text with color = %q, position or message altered", got)
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "table", diags, Options{}); err != nil {
		t.Fatalf("Table: %v", err)
	}
	got := buf.String()
	for _, want := range []string{"POSITION", "a.yang:3", "MAJOR", "OC_BAD_TYPE", "b.yang:10", "OC_STYLE_AVOID_CHOICE"} {
		if !strings.Contains(got, want) {
			t.Errorf("table does not contain %q:\n%s", want, got)
		}
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "json", diags[:1], Options{}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	want := `[
  {
    "file": "a.yang",
    "line": 3,
    "severity": "MAJOR",
    "code": "OC_BAD_TYPE",
    "message": "Bad type empty used in leaf or typedef"
  }
]
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("JSON (-want, +got):\n%s", diff)
	}

	var got []Record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("cannot unmarshal output: %v", err)
	}
	if diff := cmp.Diff(Records(diags[:1]), got); diff != "" {
		t.Errorf("decoded records (-want, +got):\n%s", diff)
	}

	buf.Reset()
	if err := JSON(&buf, nil); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if got := buf.String(); got != "[]\n" {
		t.Errorf("JSON of no diagnostics = %q, want []", got)
	}
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "yaml", diags[:1], Options{}); err != nil {
		t.Fatalf("YAML: %v", err)
	}
	want := `- file: a.yang
  line: 3
  severity: MAJOR
  code: OC_BAD_TYPE
  message: Bad type empty used in leaf or typedef
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("YAML (-want, +got):\n%s", diff)
	}
}

func TestWriteUnknownStyle(t *testing.T) {
	err := Write(&bytes.Buffer{}, "html", diags, Options{})
	if diff := errdiff.Substring(err, `unknown output style "html"`); diff != "" {
		t.Error(diff)
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := Summary(&buf, diags); err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got, want := buf.String(), "0 critical, 1 major, 0 minor, 1 warning\n"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
