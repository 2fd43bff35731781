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

// Package yangpath manipulates slash separated YANG schema paths such as
// /oc-if:interfaces/oc-if:interface/oc-if:config/oc-if:mtu.
package yangpath

import (
	"regexp"
	"strings"
)

// nsRE matches the namespace prefix of a single path component.
var nsRE = regexp.MustCompile(`^[^/]*:`)

// Split returns the non-empty components of path.  Leading, trailing and
// repeated separators do not produce empty components.
func Split(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// Join returns the absolute path made of parts.
func Join(parts []string) string {
	return "/" + strings.Join(parts, "/")
}

// StripNamespace removes the "prefix:" portion of every component of path.
// Separators are left untouched, so an absolute path stays absolute.
func StripNamespace(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		parts[i] = nsRE.ReplaceAllString(p, "")
	}
	return strings.Join(parts, "/")
}

// SplitLast splits path at its final separator.  Neither returned part
// contains that separator.  If path has no separator, prefix is "" and last
// is path.
func SplitLast(path string) (prefix, last string) {
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return "", path
	}
	return path[:i], path[i+1:]
}

// Namespace returns the prefix of a single path component, or "" if it has
// none.
func Namespace(component string) string {
	if i := strings.Index(component, ":"); i >= 0 {
		return component[:i]
	}
	return ""
}
