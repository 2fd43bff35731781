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
	"fmt"

	"github.com/openconfig/oclint/pkg/lint"
)

// Phases added by Register.
const (
	// PreinitPhase runs before init and inspects the unparsed module text.
	PreinitPhase = "preinit"
	// TypePhase runs after type_2, once types are bound.
	TypePhase = "openconfig_type"
)

// Register adds the OpenConfig phases, codes and rules to l.  The RFC 6087
// baseline rules are added when opts.Baseline() is true.  Registering twice
// on the same Linter fails.
func Register(l *lint.Linter, opts lint.Options) error {
	if err := registerCodes(l.Codes()); err != nil {
		return fmt.Errorf("openconfig: %w", err)
	}
	if err := l.AddPhase(PreinitPhase, lint.PhaseOptions{Before: "init"}); err != nil {
		return fmt.Errorf("openconfig: %w", err)
	}
	if err := l.AddPhase(TypePhase, lint.PhaseOptions{After: "type_2"}); err != nil {
		return fmt.Errorf("openconfig: %w", err)
	}

	sets := []struct {
		phase string
		rs    *lint.RuleSet
	}{{
		PreinitPhase,
		lint.NewRuleSet("openconfig-preinit", Validatable).
			Add(lint.On("module", "submodule"), checkModuleRawText),
	}, {
		TypePhase,
		lint.NewRuleSet("openconfig-type", Validatable).
			Add(lint.Any, checkFeatureUsage).
			Add(lint.On("leaf", "leaf-list"), checkEnumerationStyle, checkBadTypes).
			Add(lint.On("identity"), checkIdentityStyle).
			Add(lint.On("module"), checkVersioning, checkTopLevelDataDefinitions, checkStandardGroupings).
			Add(lint.OnExtension("openconfig-extensions", "openconfig-version"), checkSemver).
			Add(lint.On("augment"), checkRelativePaths).
			Add(lint.On("path"), checkRelativePaths).
			Add(lint.On("typedef"), checkTypedefStyle).
			Add(lint.On("leaf", "leaf-list", "container", "list"), checkDataElementNaming).
			Add(lint.On("prefix"), checkPrefix),
	}, {
		"reference_2",
		lint.NewRuleSet("openconfig-reference", Validatable).
			Add(lint.On("leaf", "leaf-list"), checkOpstate).
			Add(lint.On("list"), checkListEnclosingContainer, checkLeafMirroring).
			Add(lint.On("container"), checkLeafMirroring),
	}}
	if opts.Baseline() {
		sets = append(sets, struct {
			phase string
			rs    *lint.RuleSet
		}{"grammar", baselineRules(moduleNamePrefixes)})
	}
	for _, s := range sets {
		if err := l.AddRuleSet(s.phase, s.rs); err != nil {
			return fmt.Errorf("openconfig: %w", err)
		}
	}
	return nil
}
