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
	"strings"

	"github.com/openconfig/oclint/pkg/schema"
)

// A RuleFunc inspects a single node and reports its findings through ctx.
type RuleFunc func(ctx *Context, n *schema.Node)

type selectorKind int

const (
	selectAny selectorKind = iota
	selectGroup
	selectExact
)

// A Selector chooses the nodes a rule is called for.
type Selector struct {
	kind     selectorKind
	keywords []schema.Keyword
}

// Any selects every node.
var Any = Selector{kind: selectAny}

// On selects nodes with one of the built-in keywords.  A single keyword is
// an exact match, several keywords form a group.
func On(keywords ...string) Selector {
	s := Selector{kind: selectGroup}
	if len(keywords) == 1 {
		s.kind = selectExact
	}
	for _, k := range keywords {
		s.keywords = append(s.keywords, schema.Builtin(k))
	}
	return s
}

// OnExtension selects the extension statement name defined by module.
func OnExtension(module, name string) Selector {
	return Selector{kind: selectExact, keywords: []schema.Keyword{schema.Extension(module, name)}}
}

func (s Selector) matches(kw schema.Keyword) bool {
	if s.kind == selectAny {
		return true
	}
	for _, k := range s.keywords {
		if k == kw {
			return true
		}
	}
	return false
}

func (s Selector) String() string {
	if s.kind == selectAny {
		return "*"
	}
	var names []string
	for _, k := range s.keywords {
		names = append(names, k.String())
	}
	return strings.Join(names, "|")
}

type rule struct {
	sel Selector
	fn  RuleFunc
}

// A RuleSet is a named collection of rules registered in one phase.  When
// Filter is set, the rules only see the nodes for which it returns true.
type RuleSet struct {
	Name   string
	Filter func(*schema.Node) bool

	rules []rule
}

// NewRuleSet returns an empty RuleSet.
func NewRuleSet(name string, filter func(*schema.Node) bool) *RuleSet {
	return &RuleSet{Name: name, Filter: filter}
}

// Add registers fns for the nodes selected by sel.
func (rs *RuleSet) Add(sel Selector, fns ...RuleFunc) *RuleSet {
	for _, fn := range fns {
		rs.rules = append(rs.rules, rule{sel: sel, fn: fn})
	}
	return rs
}

// rulesFor returns the rules to call for a node with keyword kw: wildcard
// rules first, then group rules, then exact rules, each in the order they
// were added.
func (rs *RuleSet) rulesFor(kw schema.Keyword) []rule {
	var out []rule
	for _, kind := range []selectorKind{selectAny, selectGroup, selectExact} {
		for _, r := range rs.rules {
			if r.sel.kind == kind && r.sel.matches(kw) {
				out = append(out, r)
			}
		}
	}
	return out
}
