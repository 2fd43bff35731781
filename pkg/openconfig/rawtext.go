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
	"regexp"
	"strings"

	log "github.com/golang/glog"
	"github.com/openconfig/oclint/pkg/lint"
	"github.com/openconfig/oclint/pkg/schema"
)

var (
	keyLineRE = regexp.MustCompile(`^\s*key\s+(.*?);\s*$`)
	quotedRE  = regexp.MustCompile(`^".*"$`)
)

// checkModuleRawText scans the unparsed text of a module for key
// statements whose argument is not quoted.  The parser drops the quotes, so
// this cannot be decided from the statement tree.
func checkModuleRawText(ctx *lint.Context, n *schema.Node) {
	text, err := ctx.RawText(n.Arg)
	if err != nil {
		ctx.AddError(n.Pos, lint.InternalError, fmt.Sprintf("Couldn't open module %s: %v", n.Arg, err))
		return
	}
	log.V(2).Infof("scanning %d bytes of %s", len(text), n.Arg)
	for i, ln := range strings.Split(text, "\n") {
		m := keyLineRE.FindStringSubmatch(strings.TrimRight(ln, "\r"))
		if m == nil || quotedRE.MatchString(m[1]) {
			continue
		}
		ctx.AddError(schema.Position{File: n.Pos.File, Line: i + 1}, "OC_KEY_ARGUMENT_UNQUOTED", m[1])
	}
}
