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
	"github.com/openconfig/goyang/pkg/yang"
	"github.com/openconfig/oclint/pkg/yangpath"
)

// DataKeywords are the keywords of statements that instantiate nodes in the
// data tree.
var DataKeywords = []string{"leaf", "leaf-list", "container", "list", "choice"}

// A Node is one statement of a source or data tree.
type Node struct {
	Keyword Keyword
	Arg     string
	Parent  *Node

	// Substmts are the statements declared inside this one, in source
	// order.  Data tree nodes only carry their non data-definition
	// substatements (type, key, config, description, ...).
	Substmts []*Node

	// Children are the data tree children of the node.  It is nil for
	// nodes of a source tree.
	Children []*Node

	// Config is the effective config property.  It is TSUnset on source
	// tree nodes, where inheritance has not been computed.
	Config yang.TriState

	// IsKey is set on leaves named by the key of their parent list.
	IsKey bool

	Module       string // module or submodule the statement is written in
	ModulePrefix string // prefix that module uses for itself
	Prefix       string // namespace prefix the node is instantiated with
	Pos          Position
}

// Search returns the substatements of n with the built-in keyword kw.
func (n *Node) Search(kw string) []*Node {
	var found []*Node
	for _, s := range n.Substmts {
		if s.Keyword.Is(kw) {
			found = append(found, s)
		}
	}
	return found
}

// SearchOne returns the first substatement of n with the built-in keyword kw,
// or nil.
func (n *Node) SearchOne(kw string) *Node {
	for _, s := range n.Substmts {
		if s.Keyword.Is(kw) {
			return s
		}
	}
	return nil
}

// DataChildren returns the children of n that instantiate data nodes.
func (n *Node) DataChildren() []*Node {
	var found []*Node
	for _, c := range n.Children {
		if c.Keyword.In(DataKeywords...) {
			found = append(found, c)
		}
	}
	return found
}

// Ancestor returns the closest ancestor of n with the built-in keyword kw,
// or nil.
func (n *Node) Ancestor(kw string) *Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Keyword.Is(kw) {
			return p
		}
	}
	return nil
}

// Root returns the top of the tree n belongs to.
func (n *Node) Root() *Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// Path returns the data path of n, e.g., /interfaces/interface/config/mtu.
// The module, choice and case nodes are not part of the path.  When
// withPrefixes is set each component is qualified with the node's namespace
// prefix.
func (n *Node) Path(withPrefixes bool) string {
	var parts []string
	for p := n; p != nil && p.Parent != nil; p = p.Parent {
		if p.Keyword.In("choice", "case") {
			continue
		}
		name := p.Arg
		if withPrefixes && p.Prefix != "" {
			name = p.Prefix + ":" + name
		}
		parts = append(parts, name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return yangpath.Join(parts)
}

// Walk calls fn for n and then, depth first, for every node below it.  Source
// trees are walked through Substmts and data trees through Children.  Walk
// does not descend below a node for which fn returns false.
func (n *Node) Walk(data bool, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	next := n.Substmts
	if data {
		next = n.Children
	}
	for _, c := range next {
		c.Walk(data, fn)
	}
}

// A Module is the unit of a lint run: the two trees of one module or
// submodule.  Data is nil for submodules, whose data nodes appear in the
// data tree of the module that includes them.
type Module struct {
	Name   string
	File   string
	Source *Node
	Data   *Node
}
