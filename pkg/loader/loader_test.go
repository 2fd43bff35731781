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

package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openconfig/goyang/pkg/yang"
)

const extModule = `module openconfig-extensions {
  prefix "oc-ext";
  namespace "http://openconfig.net/yang/openconfig-ext";
  extension openconfig-version {
    argument "semver";
  }
}`

const testModule = `module openconfig-test {
  prefix "oc-test";
  namespace "urn:oc-test";
  import openconfig-extensions { prefix oc-ext; }
  include openconfig-test-sub;
  oc-ext:openconfig-version "0.1.0";
  grouping test-top {
    container top {
      leaf a { type string; }
    }
  }
  uses test-top;
  uses sub-top;
}`

const subModule = `submodule openconfig-test-sub {
  belongs-to openconfig-test { prefix "oc-test"; }
  grouping sub-top {
    container sub {
      leaf b { type string; }
    }
  }
}`

const invalidModule = `module broken {
  prefix "b";
  namespace "urn:b";
  leaf a {
}`

const badImportModule = `module bad-import {
  prefix "bi";
  namespace "urn:bi";
  import nonexistent { prefix ne; }
}`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, text := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0644); err != nil {
			t.Fatalf("cannot write %s: %v", name, err)
		}
	}
	return dir
}

func TestParse(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"openconfig-extensions.yang": extModule,
		"openconfig-test.yang":       testModule,
		"openconfig-test-sub.yang":   subModule,
		"broken.yang":                invalidModule,
		"bad-import.yang":            badImportModule,
	})

	tests := []struct {
		name     string
		inFiles  []string
		inPath   []string
		wantErr  bool
		wantMods []string
	}{{
		name:     "module with import and include",
		inFiles:  []string{filepath.Join(dir, "openconfig-test.yang")},
		inPath:   []string{dir},
		wantMods: []string{"openconfig-test"},
	}, {
		name:     "module name without .yang extension",
		inFiles:  []string{"openconfig-extensions"},
		inPath:   []string{dir},
		wantMods: []string{"openconfig-extensions"},
	}, {
		name:     "module and submodule",
		inFiles:  []string{filepath.Join(dir, "openconfig-test.yang"), filepath.Join(dir, "openconfig-test-sub.yang")},
		inPath:   []string{dir},
		wantMods: []string{"openconfig-test", "openconfig-test-sub"},
	}, {
		name:    "missing import",
		inFiles: []string{filepath.Join(dir, "bad-import.yang")},
		inPath:  []string{dir},
		wantErr: true,
	}, {
		name:    "invalid module",
		inFiles: []string{filepath.Join(dir, "broken.yang")},
		inPath:  []string{dir},
		wantErr: true,
	}, {
		name:    "missing file",
		inFiles: []string{filepath.Join(dir, "nonexistent.yang")},
		wantErr: true,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, errs := ParseWithOptions(tt.inFiles, tt.inPath, yang.Options{})
			if got := len(errs) != 0; got != tt.wantErr {
				t.Fatalf("got errors %v, want error: %v", errs, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			var got []string
			for _, m := range set.Modules {
				got = append(got, m.Name)
			}
			if diff := cmp.Diff(tt.wantMods, got); diff != "" {
				t.Errorf("modules (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSet(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"openconfig-extensions.yang": extModule,
		"openconfig-test.yang":       testModule,
		"openconfig-test-sub.yang":   subModule,
	})
	set, errs := Parse([]string{filepath.Join(dir, "openconfig-test.yang"), filepath.Join(dir, "openconfig-test-sub.yang")}, []string{dir})
	if len(errs) != 0 {
		t.Fatalf("Parse: %v", errs)
	}

	m := set.Module("openconfig-test")
	if m == nil {
		t.Fatalf("openconfig-test not loaded")
	}
	if got, want := m.File, filepath.Join(dir, "openconfig-test.yang"); got != want {
		t.Errorf("File = %q, want %q", got, want)
	}
	if m.Source == nil || m.Data == nil {
		t.Fatalf("module trees: source %v, data %v", m.Source, m.Data)
	}
	var paths []string
	for _, c := range m.Data.Children {
		paths = append(paths, c.Path(false))
	}
	if diff := cmp.Diff([]string{"/sub", "/top"}, paths); diff != "" {
		t.Errorf("top level data nodes (-want, +got):\n%s", diff)
	}
	if sub := m.Data.Children[0]; sub.Module != "openconfig-test-sub" || sub.ModulePrefix != "oc-test" {
		t.Errorf("/sub written in %s (%s), want openconfig-test-sub (oc-test)", sub.Module, sub.ModulePrefix)
	}

	sub := set.Module("openconfig-test-sub")
	if sub == nil || sub.Data != nil {
		t.Fatalf("submodule = %+v, want a source tree only", sub)
	}

	text, err := set.RawText("openconfig-test")
	if err != nil {
		t.Fatalf("RawText: %v", err)
	}
	if text != testModule {
		t.Errorf("RawText returned %q", text)
	}
	if _, err := set.RawText("openconfig-extensions"); err == nil {
		t.Errorf("RawText of an imported module did not fail")
	}
	if set.Module("openconfig-extensions") != nil {
		t.Errorf("imported module is part of the set")
	}
}

func TestFindModule(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"openconfig-extensions.yang": extModule,
		"openconfig-test.yang":       testModule,
		"openconfig-test-sub.yang":   subModule,
	})
	set, errs := Parse([]string{filepath.Join(dir, "openconfig-test.yang")}, []string{dir})
	if len(errs) != 0 {
		t.Fatalf("Parse: %v", errs)
	}

	if got, want := set.FindModule("openconfig-test"), set.Module("openconfig-test"); got != want {
		t.Errorf("FindModule(openconfig-test) = %p, want the module of the set %p", got, want)
	}
	if set.Module("openconfig-test-sub") != nil {
		t.Fatalf("included submodule is part of the set")
	}
	sub := set.FindModule("openconfig-test-sub")
	if sub == nil {
		t.Fatalf("FindModule did not find the included submodule")
	}
	if sub.Source == nil || !sub.Source.Keyword.Is("submodule") || sub.Data != nil {
		t.Errorf("submodule = %+v, want a submodule source tree only", sub)
	}
	if got, want := sub.File, filepath.Join(dir, "openconfig-test-sub.yang"); got != want {
		t.Errorf("submodule File = %q, want %q", got, want)
	}
	if ext := set.FindModule("openconfig-extensions"); ext == nil || ext.Name != "openconfig-extensions" {
		t.Errorf("FindModule did not find the imported module")
	}
	if m := set.FindModule("missing"); m != nil {
		t.Errorf("FindModule(missing) = %+v, want nil", m)
	}
}

func TestParseSources(t *testing.T) {
	dir := writeFiles(t, map[string]string{"openconfig-extensions.yang": extModule})
	set, errs := ParseSources([]Source{
		{"openconfig-test.yang", testModule},
		{"openconfig-test-sub.yang", subModule},
	}, []string{dir})
	if len(errs) != 0 {
		t.Fatalf("ParseSources: %v", errs)
	}
	for _, name := range []string{"openconfig-test", "openconfig-test-sub"} {
		text, err := set.RawText(name)
		if err != nil {
			t.Errorf("RawText(%s): %v", name, err)
			continue
		}
		if !strings.Contains(text, name+" {") {
			t.Errorf("RawText(%s) returned the wrong module", name)
		}
	}
	if got := set.Module("openconfig-test").File; got != "openconfig-test.yang" {
		t.Errorf("File = %q, want openconfig-test.yang", got)
	}

	if _, errs := ParseSources([]Source{{"broken.yang", invalidModule}}, nil); len(errs) == 0 {
		t.Errorf("ParseSources of an invalid module did not fail")
	}
}
