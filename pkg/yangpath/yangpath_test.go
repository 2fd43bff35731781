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

package yangpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{{
		name: "absolute path",
		in:   "/interfaces/interface/config/mtu",
		want: []string{"interfaces", "interface", "config", "mtu"},
	}, {
		name: "relative path",
		in:   "../config/name",
		want: []string{"..", "config", "name"},
	}, {
		name: "repeated and trailing separators",
		in:   "//a///b/",
		want: []string{"a", "b"},
	}, {
		name: "prefixed components",
		in:   "/oc-if:interfaces/oc-if:interface",
		want: []string{"oc-if:interfaces", "oc-if:interface"},
	}, {
		name: "empty",
		in:   "",
	}, {
		name: "root only",
		in:   "/",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q): (-want, +got):\n%s", tt.in, diff)
			}
			// Splitting the joined components must give the same components.
			if again := Split(Join(got)); !cmp.Equal(got, again) {
				t.Errorf("Split(Join(Split(%q))) = %v, want %v", tt.in, again, got)
			}
		})
	}
}

func TestStripNamespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/oc-if:interfaces/oc-if:interface/oc-if:config", "/interfaces/interface/config"},
		{"/interfaces/interface", "/interfaces/interface"},
		{"../oc-if:config/oc-if:name", "../config/name"},
		{"a:b:c/d", "c/d"},
		{"", ""},
		{"/", "/"},
	}

	for _, tt := range tests {
		got := StripNamespace(tt.in)
		if got != tt.want {
			t.Errorf("StripNamespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if again := StripNamespace(got); again != got {
			t.Errorf("StripNamespace is not idempotent for %q: %q then %q", tt.in, got, again)
		}
	}
}

func TestSplitLast(t *testing.T) {
	tests := []struct {
		in         string
		wantPrefix string
		wantLast   string
	}{
		{"/interfaces/interface/config", "/interfaces/interface", "config"},
		{"/interfaces", "", "interfaces"},
		{"interfaces", "", "interfaces"},
		{"a/b/", "a/b", ""},
	}

	for _, tt := range tests {
		prefix, last := SplitLast(tt.in)
		if prefix != tt.wantPrefix || last != tt.wantLast {
			t.Errorf("SplitLast(%q) = (%q, %q), want (%q, %q)", tt.in, prefix, last, tt.wantPrefix, tt.wantLast)
		}
	}
}

func TestNamespace(t *testing.T) {
	for in, want := range map[string]string{
		"oc-if:interfaces": "oc-if",
		"interfaces":       "",
		"..":               "",
	} {
		if got := Namespace(in); got != want {
			t.Errorf("Namespace(%q) = %q, want %q", in, got, want)
		}
	}
}
