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
	"regexp"
	"strings"

	"github.com/openconfig/oclint/pkg/lint"
	"github.com/openconfig/oclint/pkg/schema"
	"github.com/openconfig/oclint/pkg/yangpath"
)

// badTypes are built-in types OpenConfig models must not use.
var badTypes = map[string]bool{
	"empty": true,
	"bits":  true,
}

var (
	lowerRE       = regexp.MustCompile(`[a-z]`)
	enumRE        = regexp.MustCompile(`^[A-Z0-9][A-Z0-9_.]+$`)
	identityRE    = regexp.MustCompile(`^[A-Z][A-Z0-9_.]+$`)
	semverRE      = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+$`)
	topGroupingRE = regexp.MustCompile(`.*-top$`)
	dataNameRE    = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
	prefixRE      = regexp.MustCompile(`^oc-[a-z-]+$`)
)

func checkFeatureUsage(ctx *lint.Context, n *schema.Node) {
	switch {
	case n.Keyword.Is("choice"):
		ctx.AddError(n.Pos, "OC_STYLE_AVOID_CHOICE", n.Arg)
	case n.Keyword.Is("presence") && n.Parent != nil:
		ctx.AddError(n.Pos, "OC_STYLE_AVOID_PRESENCE", n.Parent.Arg)
	case n.Keyword.Is("feature"):
		ctx.AddError(n.Pos, "OC_STYLE_AVOID_FEATURES", n.Arg)
	case n.Keyword.Is("if-feature") && n.Parent != nil:
		ctx.AddError(n.Parent.Pos, "OC_STYLE_AVOID_FEATURES", n.Parent.Arg)
	}
}

// enumerations returns the enumeration types of t, including those that are
// members of a union.
func enumerations(t *schema.Node) []*schema.Node {
	switch t.Arg {
	case "enumeration":
		return []*schema.Node{t}
	case "union":
		var enums []*schema.Node
		for _, m := range t.Search("type") {
			enums = append(enums, enumerations(m)...)
		}
		return enums
	}
	return nil
}

// checkEnumerationStyle checks that enum values of the type of n are
// UPPERCASE_WITH_UNDERSCORES.
func checkEnumerationStyle(ctx *lint.Context, n *schema.Node) {
	t := n.SearchOne("type")
	if t == nil {
		return
	}
	for _, e := range enumerations(t) {
		for _, v := range e.Search("enum") {
			if lowerRE.MatchString(v.Arg) {
				ctx.AddError(n.Pos, "OC_ENUM_CASE", v.Arg, strings.ToUpper(v.Arg))
			}
			if !enumRE.MatchString(v.Arg) {
				ctx.AddError(n.Pos, "OC_ENUM_UNDERSCORES", v.Arg, upperUnderscore(v.Arg))
			}
		}
	}
}

func upperUnderscore(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
}

func checkBadTypes(ctx *lint.Context, n *schema.Node) {
	if t := n.SearchOne("type"); t != nil && badTypes[t.Arg] {
		ctx.AddError(n.Pos, "OC_BAD_TYPE", t.Arg)
	}
}

func checkTypedefStyle(ctx *lint.Context, n *schema.Node) {
	if n.SearchOne("type") == nil {
		return
	}
	checkEnumerationStyle(ctx, n)
	checkBadTypes(ctx, n)
}

func checkIdentityStyle(ctx *lint.Context, n *schema.Node) {
	if n.Arg != "" && lowerRE.MatchString(n.Arg[:1]) {
		ctx.AddError(n.Pos, "OC_IDENTITY_CASE", n.Arg, strings.ToUpper(n.Arg))
	}
	if !identityRE.MatchString(n.Arg) {
		ctx.AddError(n.Pos, "OC_IDENTITY_UNDERSCORES", n.Arg, upperUnderscore(n.Arg))
	}
}

// checkVersioning checks that an OpenConfig module declares a version and
// has a revision whose reference is that version.
func checkVersioning(ctx *lint.Context, n *schema.Node) {
	if Classify(n.Arg) != OC {
		return
	}
	var version *schema.Node
	for _, s := range n.Substmts {
		// Any extension named openconfig-version counts, whichever
		// module defines it.
		if s.Keyword.IsExtension() && s.Keyword.Name == "openconfig-version" {
			version = s
		}
	}
	if version == nil {
		ctx.AddError(n.Pos, "OC_MODULE_MISSING_VERSION", n.Arg)
		return
	}
	for _, r := range n.Search("revision") {
		if ref := r.SearchOne("reference"); ref != nil && ref.Arg == version.Arg {
			return
		}
	}
	ctx.AddError(n.Pos, "OC_MISSING_SEMVER_REVISION", version.Arg)
}

// checkSemver checks the argument of an openconfig-version statement.
func checkSemver(ctx *lint.Context, n *schema.Node) {
	if Classify(n.Module) != OC {
		return
	}
	if !semverRE.MatchString(n.Arg) {
		ctx.AddError(n.Pos, "OC_INVALID_SEMVER", n.Arg)
	}
}

func checkTopLevelDataDefinitions(ctx *lint.Context, n *schema.Node) {
	var names []string
	for _, s := range n.Substmts {
		if s.Keyword.In(schema.DataKeywords...) {
			names = append(names, s.Arg)
		}
	}
	if len(names) > 0 {
		ctx.AddError(n.Pos, "OC_MODULE_DATA_DEFINITIONS", n.Arg, strings.Join(names, ", "))
	}
}

func checkStandardGroupings(ctx *lint.Context, n *schema.Node) {
	if Classify(n.Arg) != OC {
		return
	}
	for _, g := range n.Search("grouping") {
		if topGroupingRE.MatchString(g.Arg) {
			return
		}
	}
	ctx.AddError(n.Pos, "OC_MISSING_STANDARD_GROUPING", n.Arg, "-top")
}

// checkRelativePaths reports absolute path and augment arguments that point
// into the module they are written in.  Paths below a typedef are exempt.
func checkRelativePaths(ctx *lint.Context, n *schema.Node) {
	parts := yangpath.Split(n.Arg)
	if len(parts) == 0 {
		return
	}
	ns := yangpath.Namespace(parts[0])
	if ns == "" {
		ns = n.ModulePrefix
	}
	if ns != n.ModulePrefix || !strings.HasPrefix(n.Arg, "/") {
		return
	}
	if n.Ancestor("typedef") != nil {
		return
	}
	ctx.AddError(n.Pos, "OC_RELATIVE_PATH", n.Keyword.String(), n.Arg)
}

func checkDataElementNaming(ctx *lint.Context, n *schema.Node) {
	if !dataNameRE.MatchString(n.Arg) {
		ctx.AddError(n.Pos, "OC_DATA_ELEMENT_INVALID_NAME", n.Arg)
	}
}

// checkPrefix checks the prefix an OpenConfig module uses for itself.
func checkPrefix(ctx *lint.Context, n *schema.Node) {
	m := n.Parent
	if m == nil || !m.Keyword.Is("module") || !strings.Contains(m.Arg, "openconfig-") {
		return
	}
	if !prefixRE.MatchString(n.Arg) {
		ctx.AddError(n.Pos, "OC_PREFIX_INVALID", n.Arg)
	}
}
