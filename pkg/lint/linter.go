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

	log "github.com/golang/glog"
	"github.com/openconfig/oclint/pkg/schema"
)

// A Linter is a configured set of phases, rules and diagnostic codes.  The
// zero value is not usable; use New.
type Linter struct {
	codes  *Codes
	phases []*phase
}

// New returns a Linter with the built-in phases and no rules.
func New() *Linter {
	l := &Linter{codes: NewCodes()}
	prev := ""
	for _, b := range builtinPhases {
		if err := l.AddPhase(b.name, PhaseOptions{After: prev, Tree: b.tree}); err != nil {
			panic(err)
		}
		prev = b.name
	}
	return l
}

// Codes returns the diagnostic codes of l.
func (l *Linter) Codes() *Codes { return l.codes }

// AddRuleSet registers rs to run in phase.
func (l *Linter) AddRuleSet(phase string, rs *RuleSet) error {
	p := l.phase(phase)
	if p == nil {
		return fmt.Errorf("rule set %s: unknown phase %s", rs.Name, phase)
	}
	p.rules = append(p.rules, rs)
	return nil
}

// Run lints mods.  Each module is walked once per phase, in phase order.
// The returned error is only set when the linter itself is misconfigured;
// problems found in the modules are reported in the Result.
func (l *Linter) Run(mods []*schema.Module, repo Repository, opts Options) (*Result, error) {
	phases, err := l.order()
	if err != nil {
		return nil, err
	}
	ctx := NewContext(l.codes, repo, opts)
	for _, m := range mods {
		for _, p := range phases {
			if len(p.rules) == 0 {
				continue
			}
			root := m.Source
			if p.opts.Tree == DataTree {
				root = m.Data
			}
			if root == nil {
				continue
			}
			log.V(1).Infof("phase %s: %s", p.name, m.Name)
			root.Walk(p.opts.Tree == DataTree, func(n *schema.Node) bool {
				l.dispatch(ctx, p, n)
				return true
			})
		}
	}
	return &Result{Diagnostics: ctx.Diagnostics()}, nil
}

func (l *Linter) dispatch(ctx *Context, p *phase, n *schema.Node) {
	for _, rs := range p.rules {
		if rs.Filter != nil && !rs.Filter(n) {
			continue
		}
		for _, r := range rs.rulesFor(n.Keyword) {
			if log.V(2) {
				log.Infof("%s: %s/%s %s %q", n.Pos, p.name, rs.Name, n.Keyword, n.Arg)
			}
			call(ctx, r.fn, n)
		}
	}
}

// call runs fn on n, turning a panic into an InternalError diagnostic.
func call(ctx *Context, fn RuleFunc, n *schema.Node) {
	defer func() {
		if r := recover(); r != nil {
			log.Warningf("%s: rule failed on %s %q: %v", n.Pos, n.Keyword, n.Arg, r)
			ctx.AddError(n.Pos, InternalError, fmt.Sprint(r))
		}
	}()
	fn(ctx, n)
}
