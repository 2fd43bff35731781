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

package openconfig

import (
	"strings"

	"github.com/openconfig/goyang/pkg/yang"
	"github.com/openconfig/oclint/pkg/lint"
	"github.com/openconfig/oclint/pkg/schema"
	"github.com/openconfig/oclint/pkg/yangpath"
)

// checkOpstate checks that a leaf sits in exactly one config or state
// container and that its config property matches that container.
func checkOpstate(ctx *lint.Context, n *schema.Node) {
	// Keys live directly in the list, not in a config or state container.
	if n.IsKey {
		if t := n.SearchOne("type"); t == nil || t.Arg != "leafref" {
			ctx.AddError(n.Pos, "OC_OPSTATE_KEY_LEAFREF", n.Arg)
		}
		return
	}

	path := n.Path(false)
	parts := yangpath.Split(path)
	if count(parts, "config") != 1 && count(parts, "state") != 1 {
		ctx.AddError(n.Pos, "OC_OPSTATE_CONTAINER_COUNT", path)
	}

	p := n.Parent
	if p == nil || !p.Keyword.Is("container") {
		return
	}
	switch p.Arg {
	case "config":
		if n.Config == yang.TSFalse {
			ctx.AddError(n.Pos, "OC_OPSTATE_CONFIG_PROPERTY", n.Arg, "config", "true")
		}
	case "state":
		if n.Config == yang.TSTrue {
			ctx.AddError(p.Pos, "OC_OPSTATE_CONFIG_PROPERTY", n.Arg, "state", "false")
		}
	default:
		// Containers nested below a state container may hold state.
		if n.Config == yang.TSFalse && count(parts, "state") > 0 {
			return
		}
		ctx.AddError(n.Pos, "OC_OPSTATE_CONTAINER_NAME", n.Arg, path)
	}
}

func count(parts []string, s string) int {
	c := 0
	for _, p := range parts {
		if p == s {
			c++
		}
	}
	return c
}

// checkListEnclosingContainer checks that a list is the only child of a
// container, and that removing that container does not collide with a
// sibling compressed the same way.
func checkListEnclosingContainer(ctx *lint.Context, n *schema.Node) {
	p := n.Parent
	if p == nil {
		return
	}
	if !p.Keyword.Is("container") {
		ctx.AddError(p.Pos, "OC_LIST_NO_ENCLOSING_CONTAINER", n.Arg)
	}

	if gp := p.Parent; gp != nil {
		for _, c := range gp.Children {
			if !c.Keyword.Is("container") || c.Arg == p.Arg || len(c.Children) != 1 {
				continue
			}
			if only := c.Children[0]; only.Keyword.Is("list") && only.Arg == n.Arg {
				ctx.AddError(p.Pos, "OC_LIST_DUPLICATE_COMPRESSED_NAME", n.Arg, p.Arg)
			}
		}
	}

	if !p.Keyword.Is("container") {
		return
	}
	var others []string
	alone := true
	for _, c := range p.DataChildren() {
		if c != n {
			alone = false
		}
		if c.Arg != n.Arg {
			others = append(others, c.Arg)
		}
	}
	if !alone {
		ctx.AddError(p.Pos, "OC_LIST_SURROUNDING_CONTAINER", n.Arg, p.Arg, strings.Join(others, ", "))
	}
}

// checkLeafMirroring checks that every data node of a config container has
// a counterpart in the sibling state container.
func checkLeafMirroring(ctx *lint.Context, n *schema.Node) {
	var config, state *schema.Node
	for _, c := range n.Children {
		if !c.Keyword.Is("container") {
			continue
		}
		switch c.Arg {
		case "config":
			config = c
		case "state":
			state = c
		}
	}
	if config == nil || state == nil {
		return
	}

	inState := map[string]bool{}
	for _, c := range state.DataChildren() {
		inState[c.Arg] = true
	}
	for _, c := range config.DataChildren() {
		if c.Arg == "config" || inState[c.Arg] {
			continue
		}
		ctx.AddError(n.Pos, "OC_OPSTATE_APPLIED_CONFIG", c.Arg, n.Path(false))
	}
}
