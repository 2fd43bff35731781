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

// Package schema holds the statement tree the linter walks.  A tree is built
// once per module from goyang's parse results and is never modified by the
// rules that inspect it.
//
// Two trees exist for every module.  The source tree mirrors the statements as
// written, in declaration order, including groupings and typedefs.  The data
// tree mirrors the instantiated schema after uses, augment and config
// inheritance have been resolved.
package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// A Keyword identifies the kind of a statement.  Built-in YANG keywords have
// an empty Module.  Extension statements carry the name of the module that
// defines the extension along with the extension name.
type Keyword struct {
	Module string
	Name   string
}

// Builtin returns the Keyword of the built-in statement name.
func Builtin(name string) Keyword { return Keyword{Name: name} }

// Extension returns the Keyword of extension name defined in module.
func Extension(module, name string) Keyword { return Keyword{Module: module, Name: name} }

// IsExtension reports whether k is an extension keyword.
func (k Keyword) IsExtension() bool { return k.Module != "" }

// Is reports whether k is the built-in keyword name.  Extension keywords never
// match, even when their extension name equals name.
func (k Keyword) Is(name string) bool { return k.Module == "" && k.Name == name }

// In reports whether k is one of the built-in keywords names.
func (k Keyword) In(names ...string) bool {
	for _, n := range names {
		if k.Is(n) {
			return true
		}
	}
	return false
}

func (k Keyword) String() string {
	if k.Module == "" {
		return k.Name
	}
	return k.Module + ":" + k.Name
}

// A Position is the location of a statement in a source file.
type Position struct {
	File string
	Line int
	Col  int
}

// String returns p as file:line, the form used in diagnostics.
func (p Position) String() string {
	switch {
	case p.File == "" && p.Line == 0:
		return "unknown"
	case p.Line == 0:
		return p.File
	default:
		return fmt.Sprintf("%s:%d", p.File, p.Line)
	}
}

// ParseLocation converts a goyang location string (file:line:col, line l:c,
// or just a file name) into a Position.
func ParseLocation(loc string) Position {
	if loc == "" || loc == "unknown" {
		return Position{}
	}
	if rest := strings.TrimPrefix(loc, "line "); rest != loc {
		line, col := splitLineCol(rest)
		return Position{Line: line, Col: col}
	}
	// The file name may itself contain colons, so peel numbers off the end.
	i := strings.LastIndex(loc, ":")
	if i < 0 {
		return Position{File: loc}
	}
	col, err := strconv.Atoi(loc[i+1:])
	if err != nil {
		return Position{File: loc}
	}
	j := strings.LastIndex(loc[:i], ":")
	if j < 0 {
		return Position{File: loc[:i], Line: col}
	}
	line, err := strconv.Atoi(loc[j+1 : i])
	if err != nil {
		return Position{File: loc[:i], Line: col}
	}
	return Position{File: loc[:j], Line: line, Col: col}
}

func splitLineCol(s string) (int, int) {
	parts := strings.SplitN(s, ":", 2)
	line, _ := strconv.Atoi(parts[0])
	if len(parts) == 1 {
		return line, 0
	}
	col, _ := strconv.Atoi(parts[1])
	return line, col
}
