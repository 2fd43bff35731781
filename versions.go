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

	"github.com/openconfig/oclint/pkg/config"
	"github.com/openconfig/oclint/pkg/loader"
	"github.com/openconfig/oclint/pkg/schema"
)

func init() {
	register(&formatter{
		name: "oc-versions",
		f:    doOcVersions,
		help: "display the openconfig-version of each module and submodule",
	})
}

var versionKeyword = schema.Extension("openconfig-extensions", "openconfig-version")

func doOcVersions(w io.Writer, _ *config.Config, ms *loader.Set) error {
	for _, m := range ms.Modules {
		for _, s := range m.Source.Substmts {
			if s.Keyword != versionKeyword {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s.yang: openconfig-version:%q\n", m.Name, s.Arg); err != nil {
				return err
			}
		}
	}
	return nil
}
