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

	"github.com/openconfig/oclint/pkg/schema"
)

// A Repository provides the unparsed text of modules.
type Repository interface {
	RawText(module string) (string, error)
}

// A ModuleFinder finds modules by name, including modules that are not
// linted themselves such as included submodules.  A Repository may also be a
// ModuleFinder.
type ModuleFinder interface {
	FindModule(name string) *schema.Module
}

// A Context is the state of one lint run.  It is passed to every rule.
type Context struct {
	Options Options

	codes *Codes
	repo  Repository
	diags []Diagnostic
	seen  map[dedupKey]bool
	text  map[string]string
}

// A dedupKey identifies a diagnostic.  Rules on the data tree see a grouping
// once per use, so the same finding can be detected more than once.
type dedupKey struct {
	file string
	line int
	code string
	args string
}

// NewContext returns a Context reporting codes from codes and reading raw
// module text from repo, which may be nil.
func NewContext(codes *Codes, repo Repository, opts Options) *Context {
	return &Context{
		Options: opts,
		codes:   codes,
		repo:    repo,
		seen:    map[dedupKey]bool{},
		text:    map[string]string{},
	}
}

// AddError records a diagnostic with code at pos.  An unknown code or a
// wrong number of args is itself reported as an InternalError.  A diagnostic
// with the same position, code and args as an earlier one is dropped.
func (c *Context) AddError(pos schema.Position, code string, args ...string) {
	ec, ok := c.codes.Lookup(code)
	switch {
	case !ok:
		c.internalError(pos, fmt.Sprintf("unknown error code %s", code))
		return
	case len(args) != ec.NArgs:
		c.internalError(pos, fmt.Sprintf("error code %s takes %d arguments, got %d", code, ec.NArgs, len(args)))
		return
	}
	key := dedupKey{pos.File, pos.Line, code, strings.Join(args, "\x00")}
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.diags = append(c.diags, Diagnostic{
		Pos:      pos,
		Code:     code,
		Severity: ec.Severity,
		Message:  ec.Render(args),
		Args:     args,
	})
}

func (c *Context) internalError(pos schema.Position, msg string) {
	c.AddError(pos, InternalError, msg)
}

// Diagnostics returns the diagnostics recorded so far, in detection order.
func (c *Context) Diagnostics() []Diagnostic { return c.diags }

// FindModule returns the module or submodule called name, or nil if it
// cannot be found.
func (c *Context) FindModule(name string) *schema.Module {
	if f, ok := c.repo.(ModuleFinder); ok {
		return f.FindModule(name)
	}
	return nil
}

// RawText returns the unparsed text of module.  Each module is read from the
// Repository at most once per run.
func (c *Context) RawText(module string) (string, error) {
	if t, ok := c.text[module]; ok {
		return t, nil
	}
	if c.repo == nil {
		return "", fmt.Errorf("no source available for module %s", module)
	}
	t, err := c.repo.RawText(module)
	if err != nil {
		return "", err
	}
	c.text[module] = t
	return t, nil
}
