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

package lint

import (
	"fmt"
	"strings"
)

// A Tree selects which tree of a module a phase walks.
type Tree int

const (
	// SourceTree phases see statements as written.
	SourceTree Tree = iota
	// DataTree phases see the instantiated schema.
	DataTree
)

func (t Tree) String() string {
	if t == DataTree {
		return "data"
	}
	return "source"
}

// PhaseOptions place a phase relative to another one.  Before and After name
// phases that must already exist.
type PhaseOptions struct {
	Before string
	After  string
	Tree   Tree
}

type phase struct {
	name  string
	opts  PhaseOptions
	rules []*RuleSet
}

// builtinPhases are the phases every Linter starts with, in the order they
// run.
var builtinPhases = []struct {
	name string
	tree Tree
}{
	{"init", SourceTree},
	{"grammar", SourceTree},
	{"type", SourceTree},
	{"type_2", SourceTree},
	{"expand", DataTree},
	{"reference", DataTree},
	{"reference_2", DataTree},
}

// AddPhase adds the phase name.  A phase placed after another is listed
// directly behind it and a phase placed before another directly in front of
// it; ties in the final order are broken by this listing.
func (l *Linter) AddPhase(name string, opts PhaseOptions) error {
	if name == "" {
		return fmt.Errorf("empty phase name")
	}
	if l.phase(name) != nil {
		return fmt.Errorf("phase %s already exists", name)
	}
	at := len(l.phases)
	for _, anchor := range []string{opts.Before, opts.After} {
		if anchor != "" && l.phase(anchor) == nil {
			return fmt.Errorf("phase %s: unknown phase %s", name, anchor)
		}
	}
	switch {
	case opts.After != "":
		at = l.index(opts.After) + 1
	case opts.Before != "":
		at = l.index(opts.Before)
	}
	p := &phase{name: name, opts: opts}
	l.phases = append(l.phases, nil)
	copy(l.phases[at+1:], l.phases[at:])
	l.phases[at] = p
	return nil
}

func (l *Linter) phase(name string) *phase {
	if i := l.index(name); i >= 0 {
		return l.phases[i]
	}
	return nil
}

func (l *Linter) index(name string) int {
	for i, p := range l.phases {
		if p.name == name {
			return i
		}
	}
	return -1
}

// Phases returns the names of the phases in the order they run.
func (l *Linter) Phases() ([]string, error) {
	ps, err := l.order()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.name
	}
	return names, nil
}

// order sorts the phases topologically.  When several phases are ready the
// one listed first runs first.
func (l *Linter) order() ([]*phase, error) {
	n := len(l.phases)
	indeg := make([]int, n)
	next := make([][]int, n)
	edge := func(from, to string) {
		f, t := l.index(from), l.index(to)
		next[f] = append(next[f], t)
		indeg[t]++
	}
	for _, p := range l.phases {
		if p.opts.After != "" {
			edge(p.opts.After, p.name)
		}
		if p.opts.Before != "" {
			edge(p.name, p.opts.Before)
		}
	}

	done := make([]bool, n)
	var out []*phase
	for len(out) < n {
		pick := -1
		for i := 0; i < n; i++ {
			if !done[i] && indeg[i] == 0 {
				pick = i
				break
			}
		}
		if pick < 0 {
			var left []string
			for i, p := range l.phases {
				if !done[i] {
					left = append(left, p.name)
				}
			}
			return nil, fmt.Errorf("phase ordering cycle among %s", strings.Join(left, ", "))
		}
		done[pick] = true
		out = append(out, l.phases[pick])
		for _, t := range next[pick] {
			indeg[t]--
		}
	}
	return out, nil
}
