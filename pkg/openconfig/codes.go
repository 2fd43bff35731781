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

import "github.com/openconfig/oclint/pkg/lint"

var ocCodes = []struct {
	id     string
	sev    lint.Severity
	format string
}{
	{"OC_ENUM_CASE", lint.Major, `enum value "%s" should be capitalised as "%s"`},
	{"OC_ENUM_UNDERSCORES", lint.Major, `enum value "%s" should be of the form UPPERCASE_WITH_UNDERSCORES: %s`},
	{"OC_IDENTITY_CASE", lint.Major, `identity name "%s" should be capitalised as "%s"`},
	{"OC_IDENTITY_UNDERSCORES", lint.Major, `identity name "%s" should be of the form UPPERCASE_WITH_UNDERSCORES: "%s"`},
	{"OC_OPSTATE_CONTAINER_COUNT", lint.Major, `path "%s" should have a single "config" or "state" component`},
	{"OC_OPSTATE_CONTAINER_NAME", lint.Major, `element "%s" at path "%s" should be in a "config" or "state" container`},
	{"OC_OPSTATE_KEY_LEAFREF", lint.Major, `list key "%s" should be type leafref with a reference to the corresponding leaf in config or state container`},
	{"OC_OPSTATE_CONFIG_PROPERTY", lint.Major, `element "%s" is in a "%s" container and should have config value %s`},
	{"OC_RELATIVE_PATH", lint.Warning, `"%s" path reference "%s" is intra-module but uses absolute path`},
	{"OC_OPSTATE_APPLIED_CONFIG", lint.Major, `"%s" is not mirrored in the state container at %s`},
	{"OC_LIST_SURROUNDING_CONTAINER", lint.Major, `List %s is within a container (%s) that has other elements within it: %s`},
	{"OC_LIST_NO_ENCLOSING_CONTAINER", lint.Major, `List %s does not have a surrounding container`},
	{"OC_LIST_DUPLICATE_COMPRESSED_NAME", lint.Major, `List %s has a duplicate name when the parent container %s is removed.`},
	{"OC_MODULE_DATA_DEFINITIONS", lint.Major, `Module %s defines data definitions at the top level: %s`},
	{"OC_MODULE_MISSING_VERSION", lint.Major, `Module %s is missing an openconfig-version statement`},
	{"OC_STYLE_AVOID_CHOICE", lint.Warning, `Element %s uses the choice keyword, which should be avoided`},
	{"OC_STYLE_AVOID_PRESENCE", lint.Minor, `Element %s uses the presence keyword which should be avoided`},
	{"OC_STYLE_AVOID_FEATURES", lint.Warning, `Element %s uses feature or if-feature which should be avoided`},
	{"OC_INVALID_SEMVER", lint.Major, `Semantic version specified (%s) is invalid`},
	{"OC_MISSING_SEMVER_REVISION", lint.Major, `Revision statement should contain reference substatement corresponding to semantic version %s`},
	{"OC_DATA_ELEMENT_INVALID_NAME", lint.Major, `Invalid naming for element %s data elements should generally be lower-case-with-hypens`},
	{"OC_PREFIX_INVALID", lint.Minor, `Prefix %s for module does not match the expected format - use the form oc-<shortdescription>`},
	{"OC_MISSING_STANDARD_GROUPING", lint.Warning, `Module %s is missing a grouping suffixed with %s`},
	{"OC_KEY_ARGUMENT_UNQUOTED", lint.Minor, `All key arguments of a list should be quoted (%s is not)`},
	{"OC_BAD_TYPE", lint.Major, `Bad type %s used in leaf or typedef`},

	// RFC 6087 checks.
	{"LINT_EXPLICIT_DEFAULT", lint.Warning, `RFC 6087: 4.3: statement "%s" is given with its default value "%s"`},
	{"LINT_MISSING_REQUIRED_SUBSTMT", lint.Minor, `%s: statement "%s" must have a "%s" substatement`},
	{"LINT_MISSING_RECOMMENDED_SUBSTMT", lint.Warning, `%s: statement "%s" should have a "%s" substatement`},
	{"LINT_BAD_MODULENAME_PREFIX_1", lint.Warning, `RFC 6087: 4.1: the module name should start with the string %s`},
	{"LINT_BAD_MODULENAME_PREFIX_N", lint.Warning, `RFC 6087: 4.1: the module name should start with one of the strings %s`},
	{"LINT_NO_MODULENAME_PREFIX", lint.Warning, `RFC 6087: 4.1: no module name prefix string used`},
	{"LINT_BAD_REVISION", lint.Minor, `RFC 6087: 4.6: the module's revision %s is older than submodule %s's revision %s`},
	{"LONG_IDENTIFIER", lint.Minor, `RFC 6087: 4.2: identifier %s exceeds %s characters`},
}

func registerCodes(c *lint.Codes) error {
	for _, code := range ocCodes {
		if err := c.Add(code.id, code.sev, code.format); err != nil {
			return err
		}
	}
	return nil
}
