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

// Package openconfig implements the OpenConfig style guide checks as rules
// for the lint engine, along with the subset of RFC 6087 checks the
// OpenConfig tooling applies to every module.
//
// Register adds the rules, phases and diagnostic codes to a lint.Linter:
//
//	l := lint.New()
//	if err := openconfig.Register(l, opts); err != nil {
//		...
//	}
//	res, err := l.Run(modules, repo, opts)
package openconfig

import (
	"regexp"
	"strings"

	"github.com/openconfig/oclint/pkg/schema"
)

// A ModuleType is the OpenConfig classification of a module.
type ModuleType int

const (
	// NonOC modules, such as IETF and IANA modules bundled with
	// OpenConfig models, are not checked against OpenConfig conventions.
	NonOC ModuleType = iota
	// OCInfra is OpenConfig infrastructure, e.g., openconfig-extensions.
	OCInfra
	// OC is an OpenConfig model.
	OC
)

func (t ModuleType) String() string {
	switch t {
	case OC:
		return "OC"
	case OCInfra:
		return "OC_INFRA"
	default:
		return "NON_OC"
	}
}

var moduleNameRE = regexp.MustCompile(`^[a-z0-9]+-.*`)

// Classify returns the ModuleType of the module named name.
func Classify(name string) ModuleType {
	if !moduleNameRE.MatchString(strings.ToLower(name)) {
		return NonOC
	}
	parts := strings.Split(name, "-")
	switch {
	case parts[0] == "ietf" || parts[0] == "iana":
		return NonOC
	case parts[1] == "extensions":
		return OCInfra
	}
	return OC
}

// Validatable reports whether the module n is written in is subject to the
// OpenConfig checks.
func Validatable(n *schema.Node) bool {
	switch Classify(n.Module) {
	case OC, OCInfra:
		return true
	}
	return false
}
