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

package schema

import (
	"sort"
	"strings"

	"github.com/openconfig/goyang/pkg/yang"
)

// skipInData lists the statements that are represented by data tree children
// rather than by substatements of a data tree node.
var skipInData = map[string]bool{
	"action":       true,
	"anydata":      true,
	"anyxml":       true,
	"augment":      true,
	"case":         true,
	"choice":       true,
	"container":    true,
	"grouping":     true,
	"leaf":         true,
	"leaf-list":    true,
	"list":         true,
	"notification": true,
	"rpc":          true,
	"typedef":      true,
	"uses":         true,
}

// A builder converts the statements of a single module.  It knows the
// prefixes the module may use for extension keywords.
type builder struct {
	module   string
	prefix   string
	prefixes map[string]string // prefix -> module name
}

func newBuilder(s *yang.Statement) *builder {
	b := &builder{
		module:   s.Argument,
		prefixes: map[string]string{},
	}
	self := s.Argument
	for _, ss := range s.SubStatements() {
		switch ss.Keyword {
		case "prefix":
			b.prefix = ss.Argument
		case "belongs-to":
			// A submodule refers to its parent module by the
			// parent's prefix.
			self = ss.Argument
			if p := subArg(ss, "prefix"); p != "" {
				b.prefix = p
			}
		case "import":
			if p := subArg(ss, "prefix"); p != "" {
				b.prefixes[p] = ss.Argument
			}
		}
	}
	if b.prefix != "" {
		b.prefixes[b.prefix] = self
	}
	return b
}

func subArg(s *yang.Statement, kw string) string {
	for _, ss := range s.SubStatements() {
		if ss.Keyword == kw {
			return ss.Argument
		}
	}
	return ""
}

func (b *builder) keyword(kw string) Keyword {
	i := strings.Index(kw, ":")
	if i < 0 {
		return Builtin(kw)
	}
	pfx, name := kw[:i], kw[i+1:]
	if m, ok := b.prefixes[pfx]; ok {
		return Extension(m, name)
	}
	return Extension(pfx, name)
}

func (b *builder) statement(s *yang.Statement, parent *Node, dataOnly bool) *Node {
	n := &Node{
		Keyword:      b.keyword(s.Keyword),
		Arg:          s.Argument,
		Parent:       parent,
		Module:       b.module,
		ModulePrefix: b.prefix,
		Pos:          ParseLocation(s.Location()),
	}
	for _, ss := range s.SubStatements() {
		if dataOnly && skipInData[ss.Keyword] {
			continue
		}
		n.Substmts = append(n.Substmts, b.statement(ss, n, dataOnly))
	}
	return n
}

// FromStatement returns the source tree of the module or submodule statement
// s.
func FromStatement(s *yang.Statement) *Node {
	return newBuilder(s).statement(s, nil, false)
}

// FromEntry returns the data tree rooted at the module entry e.
func FromEntry(e *yang.Entry) *Node {
	c := &entryConverter{builders: map[*yang.Module]*builder{}}
	return c.convert(e, nil, nil)
}

type entryConverter struct {
	builders map[*yang.Module]*builder
}

// builderFor returns the builder of the module n is written in.
func (c *entryConverter) builderFor(n yang.Node) *builder {
	m := yang.RootNode(n)
	if m == nil || m.Statement() == nil {
		return &builder{prefixes: map[string]string{}}
	}
	if b, ok := c.builders[m]; ok {
		return b
	}
	b := newBuilder(m.Statement())
	c.builders[m] = b
	return b
}

func (c *entryConverter) convert(e *yang.Entry, parent *Node, keys map[string]bool) *Node {
	n := &Node{
		Arg:    e.Name,
		Parent: parent,
	}
	if e.Prefix != nil {
		n.Prefix = e.Prefix.Name
	}
	if e.Node != nil {
		b := c.builderFor(e.Node)
		n.Keyword = Builtin(e.Node.Kind())
		n.Module = b.module
		n.ModulePrefix = b.prefix
		if s := e.Node.Statement(); s != nil {
			n.Pos = ParseLocation(s.Location())
			for _, ss := range s.SubStatements() {
				if !skipInData[ss.Keyword] {
					n.Substmts = append(n.Substmts, b.statement(ss, n, true))
				}
			}
		}
	}
	if parent != nil {
		n.Config = yang.TSTrue
		if e.ReadOnly() {
			n.Config = yang.TSFalse
		}
		n.IsKey = n.Keyword.Is("leaf") && keys[e.Name]
	}

	var childKeys map[string]bool
	if n.Keyword.Is("list") && e.Key != "" {
		childKeys = map[string]bool{}
		for _, k := range strings.Fields(e.Key) {
			childKeys[k] = true
		}
	}

	var names []string
	for k := range e.Dir {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		ce := e.Dir[k]
		if ce.RPC != nil || (ce.Node != nil && ce.Node.Kind() == "notification") {
			continue
		}
		n.Children = append(n.Children, c.convert(ce, n, childKeys))
	}
	return n
}
