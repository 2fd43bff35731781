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

package main

import (
	"fmt"
	"io"

	"github.com/openconfig/goyang/pkg/yang"
	"github.com/openconfig/oclint/pkg/config"
	"github.com/openconfig/oclint/pkg/loader"
	"github.com/openconfig/oclint/pkg/schema"
	"github.com/openconfig/oclint/pkg/yangpath"
	"github.com/pborman/getopt"
)

var (
	pathsStrip   bool
	pathsDepth   int
	pathsKeyword bool
)

func init() {
	flags := getopt.New()
	register(&formatter{
		name:  "paths",
		f:     doPaths,
		help:  "display the schema paths of the data tree",
		flags: flags,
	})
	flags.BoolVarLong(&pathsStrip, "paths_strip", 0, "strip namespace prefixes from paths")
	flags.IntVarLong(&pathsDepth, "paths_depth", 0, "do not display paths longer than DEPTH elements", "DEPTH")
	flags.BoolVarLong(&pathsKeyword, "paths_keyword", 0, "display the keyword of each node")
}

func doPaths(w io.Writer, _ *config.Config, ms *loader.Set) error {
	for _, m := range ms.Modules {
		// Submodule data is displayed with the including module.
		if m.Data == nil {
			continue
		}
		var err error
		m.Data.Walk(true, func(n *schema.Node) bool {
			if err != nil {
				return false
			}
			if n.Parent == nil || n.Keyword.In("choice", "case") {
				return true
			}
			if pathsDepth > 0 && len(yangpath.Split(n.Path(false))) > pathsDepth {
				return false
			}
			err = writePath(w, n)
			return err == nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// writePath writes the path of n to w, followed by [rw] or [ro] for leaves
// that are not list keys.
func writePath(w io.Writer, n *schema.Node) error {
	p := n.Path(true)
	if pathsStrip {
		p = yangpath.StripNamespace(p)
	}
	if pathsKeyword {
		p = n.Keyword.String() + " " + p
	}
	if n.Keyword.In("leaf", "leaf-list") && !n.IsKey {
		access := "[rw]"
		if n.Config == yang.TSFalse {
			access = "[ro]"
		}
		p += " " + access
	}
	_, err := fmt.Fprintln(w, p)
	return err
}
