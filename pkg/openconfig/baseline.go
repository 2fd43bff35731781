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
	"strconv"
	"strings"

	"github.com/openconfig/oclint/pkg/lint"
	"github.com/openconfig/oclint/pkg/schema"
)

type substmtRule struct {
	substmts []string
	ref      string
}

// requiredSubstmts are the substatements RFC 6087 requires of a statement.
var requiredSubstmts = map[string]substmtRule{
	"module":       {[]string{"contact", "organization", "description", "revision"}, "RFC 6087: 4.7"},
	"submodule":    {[]string{"contact", "organization", "description", "revision"}, "RFC 6087: 4.7"},
	"revision":     {[]string{"reference"}, "RFC 6087: 4.7"},
	"extension":    {[]string{"description"}, "RFC 6087: 4.12"},
	"feature":      {[]string{"description"}, "RFC 6087: 4.12"},
	"identity":     {[]string{"description"}, "RFC 6087: 4.12"},
	"typedef":      {[]string{"description"}, "RFC 6087: 4.11,4.12"},
	"grouping":     {[]string{"description"}, "RFC 6087: 4.12"},
	"augment":      {[]string{"description"}, "RFC 6087: 4.12"},
	"rpc":          {[]string{"description"}, "RFC 6087: 4.12"},
	"notification": {[]string{"description"}, "RFC 6087: 4.12,4.14"},
	"container":    {[]string{"description"}, "RFC 6087: 4.12"},
	"leaf":         {[]string{"description"}, "RFC 6087: 4.12"},
	"leaf-list":    {[]string{"description"}, "RFC 6087: 4.12"},
	"list":         {[]string{"description"}, "RFC 6087: 4.12"},
	"choice":       {[]string{"description"}, "RFC 6087: 4.12"},
	"anyxml":       {[]string{"description"}, "RFC 6087: 4.12"},
}

var recommendedSubstmts = map[string]substmtRule{
	"enum": {[]string{"value"}, "RFC 6087: 4.10"},
	"bit":  {[]string{"position"}, "RFC 6087: 4.10"},
}

// defaultValues are the values statements take when omitted.
var defaultValues = map[string]string{
	"status":       "current",
	"mandatory":    "false",
	"min-elements": "0",
	"max-elements": "unbounded",
	"config":       "true",
	"yin-element":  "false",
}

// substmtExempt modules are published outside OpenConfig and do not follow
// the substatement rules.
var substmtExempt = map[string]bool{
	"iana-if-type":    true,
	"ietf-interfaces": true,
}

// moduleNamePrefixes are the accepted first components of module names when
// the baseline rules run.
var moduleNamePrefixes = []string{"openconfig", "ietf", "iana"}

// maxIdentifierLength is the longest identifier RFC 6087 recommends.
const maxIdentifierLength = 64

// identifierKeywords are the statements whose argument is an identifier.
var identifierKeywords = []string{
	"module", "submodule", "container", "leaf", "leaf-list", "list",
	"choice", "case", "typedef", "grouping", "identity", "feature",
	"extension", "rpc", "notification", "anyxml", "anydata",
}

// baselineRules returns the RFC 6087 rules.  They apply to every module,
// OpenConfig or not.
func baselineRules(prefixes []string) *lint.RuleSet {
	return lint.NewRuleSet("rfc6087", nil).
		Add(lint.Any, checkExplicitDefault, checkRequiredSubstmts, checkRecommendedSubstmts).
		Add(lint.On("module", "submodule"), moduleNameCheck(prefixes)).
		Add(lint.On("include"), checkIncludeRevision).
		Add(lint.On(identifierKeywords...), checkIdentifierLength)
}

func checkSubstmts(ctx *lint.Context, n *schema.Node, rules map[string]substmtRule, code string) {
	if n.Keyword.IsExtension() || substmtExempt[n.Module] {
		return
	}
	r, ok := rules[n.Keyword.Name]
	if !ok {
		return
	}
	for _, s := range r.substmts {
		if n.SearchOne(s) == nil {
			ctx.AddError(n.Pos, code, r.ref, n.Keyword.Name, s)
		}
	}
}

func checkRequiredSubstmts(ctx *lint.Context, n *schema.Node) {
	checkSubstmts(ctx, n, requiredSubstmts, "LINT_MISSING_REQUIRED_SUBSTMT")
}

func checkRecommendedSubstmts(ctx *lint.Context, n *schema.Node) {
	checkSubstmts(ctx, n, recommendedSubstmts, "LINT_MISSING_RECOMMENDED_SUBSTMT")
}

func checkExplicitDefault(ctx *lint.Context, n *schema.Node) {
	if n.Keyword.IsExtension() {
		return
	}
	def, ok := defaultValues[n.Keyword.Name]
	if !ok || n.Arg != def {
		return
	}
	if n.Parent != nil && n.Parent.Keyword.Is("refine") {
		return
	}
	ctx.AddError(n.Pos, "LINT_EXPLICIT_DEFAULT", n.Keyword.Name, n.Arg)
}

// moduleNameCheck returns a rule checking that module names start with one
// of prefixes.  With no prefixes, any hyphenated name is accepted.
func moduleNameCheck(prefixes []string) lint.RuleFunc {
	return func(ctx *lint.Context, n *schema.Node) {
		if len(prefixes) == 0 {
			if !strings.Contains(n.Arg, "-") {
				ctx.AddError(n.Pos, "LINT_NO_MODULENAME_PREFIX")
			}
			return
		}
		for _, p := range prefixes {
			if n.Arg == p || strings.HasPrefix(n.Arg, p+"-") {
				return
			}
		}
		if len(prefixes) == 1 {
			ctx.AddError(n.Pos, "LINT_BAD_MODULENAME_PREFIX_1", strconv.Quote(prefixes[0]))
			return
		}
		quoted := make([]string, len(prefixes))
		for i, p := range prefixes {
			quoted[i] = strconv.Quote(p)
		}
		ctx.AddError(n.Pos, "LINT_BAD_MODULENAME_PREFIX_N", strings.Join(quoted, ", "))
	}
}

func checkIdentifierLength(ctx *lint.Context, n *schema.Node) {
	if len(n.Arg) > maxIdentifierLength {
		ctx.AddError(n.Pos, "LONG_IDENTIFIER", n.Arg, strconv.Itoa(maxIdentifierLength))
	}
}

// checkIncludeRevision checks that a module is not older than the
// submodules it includes.
func checkIncludeRevision(ctx *lint.Context, n *schema.Node) {
	m := n.Root()
	if !m.Keyword.Is("module") {
		return
	}
	latest := latestRevision(m)
	if latest == "" {
		return
	}
	sub := ctx.FindModule(n.Arg)
	if sub == nil {
		return
	}
	if rev := latestRevision(sub.Source); rev > latest {
		ctx.AddError(n.Pos, "LINT_BAD_REVISION", latest, n.Arg, rev)
	}
}

// latestRevision returns the newest revision date of module m, or "".
// Revision dates are YYYY-MM-DD and sort as strings.
func latestRevision(m *schema.Node) string {
	latest := ""
	for _, r := range m.Search("revision") {
		if r.Arg > latest {
			latest = r.Arg
		}
	}
	return latest
}
