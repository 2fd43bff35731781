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

// Package loader reads YANG modules with goyang and builds the trees the
// linter walks.
package loader

import (
	"fmt"
	"os"
	"sort"

	log "github.com/golang/glog"
	"github.com/openconfig/goyang/pkg/yang"
	"github.com/openconfig/oclint/pkg/schema"
)

// A Set is the result of loading a group of YANG files.  Modules holds one
// entry per module or submodule defined in the named files, sorted by name.
// Modules that were only loaded to resolve imports or includes are not
// part of the Set.
type Set struct {
	Modules []*schema.Module

	ms    *yang.Modules
	files map[string]string // module name -> file it was read from
	text  map[string]string // module name -> text, for in-memory sources
}

// A Source is a module held in memory.  Name is used as its file name.
type Source struct {
	Name string
	Text string
}

// Parse takes a list of either module/submodule names or .yang file paths,
// and a list of include paths.  It runs the yang parser on the YANG files by
// searching for them in the include paths or in the current directory, and
// returns the Set of the modules they define.  It also returns a list of
// errors encountered while parsing, if any.
func Parse(yangfiles, path []string) (*Set, []error) {
	return parse(yangfiles, path, yang.NewModules())
}

// ParseWithOptions is Parse with goyang configured by parseOptions.
func ParseWithOptions(yangfiles, path []string, parseOptions yang.Options) (*Set, []error) {
	ms := yang.NewModules()
	ms.ParseOptions = parseOptions
	return parse(yangfiles, path, ms)
}

func parse(yangfiles, path []string, ms *yang.Modules) (*Set, []error) {
	for _, p := range path {
		ms.AddPath(fmt.Sprintf("%s/...", p))
	}

	var processErr []error
	var mine []*yang.Module
	for _, name := range yangfiles {
		if name == "" {
			continue
		}
		before := known(ms)
		log.V(1).Infof("reading %s", name)
		if err := ms.Read(name); err != nil {
			processErr = append(processErr, err)
			continue
		}
		mine = append(mine, added(ms, before)...)
	}
	if len(processErr) > 0 {
		return nil, processErr
	}
	return build(ms, mine, nil)
}

// ParseSources parses the in-memory modules srcs.  Imports not found among
// srcs are searched for in path.
func ParseSources(srcs []Source, path []string) (*Set, []error) {
	ms := yang.NewModules()
	for _, p := range path {
		ms.AddPath(fmt.Sprintf("%s/...", p))
	}
	var processErr []error
	var mine []*yang.Module
	text := map[string]string{}
	for _, src := range srcs {
		before := known(ms)
		if err := ms.Parse(src.Text, src.Name); err != nil {
			processErr = append(processErr, err)
			continue
		}
		for _, m := range added(ms, before) {
			text[m.Name] = src.Text
			mine = append(mine, m)
		}
	}
	if len(processErr) > 0 {
		return nil, processErr
	}
	return build(ms, mine, text)
}

// known returns the modules and submodules ms currently holds.  goyang
// indexes a module under both name and name@revision, so the set is keyed
// by module.
func known(ms *yang.Modules) map[*yang.Module]bool {
	seen := map[*yang.Module]bool{}
	for _, m := range ms.Modules {
		seen[m] = true
	}
	for _, m := range ms.SubModules {
		seen[m] = true
	}
	return seen
}

func added(ms *yang.Modules, before map[*yang.Module]bool) []*yang.Module {
	var out []*yang.Module
	for m := range known(ms) {
		if !before[m] {
			out = append(out, m)
		}
	}
	return out
}

func build(ms *yang.Modules, mods []*yang.Module, text map[string]string) (*Set, []error) {
	if errs := ms.Process(); len(errs) != 0 {
		return nil, errs
	}

	s := &Set{
		ms:    ms,
		files: map[string]string{},
		text:  text,
	}
	for _, m := range mods {
		stmt := m.Statement()
		if stmt == nil {
			continue
		}
		sm := &schema.Module{
			Name:   m.Name,
			File:   schema.ParseLocation(stmt.Location()).File,
			Source: schema.FromStatement(stmt),
		}
		if m.Kind() == "module" {
			sm.Data = schema.FromEntry(yang.ToEntry(m))
		}
		s.files[m.Name] = sm.File
		s.Modules = append(s.Modules, sm)
	}
	sort.Slice(s.Modules, func(i, j int) bool { return s.Modules[i].Name < s.Modules[j].Name })
	log.V(1).Infof("loaded %d modules", len(s.Modules))
	return s, nil
}

// RawText returns the unparsed text of module.
func (s *Set) RawText(module string) (string, error) {
	if t, ok := s.text[module]; ok {
		return t, nil
	}
	f, ok := s.files[module]
	if !ok {
		return "", fmt.Errorf("module %s is not part of the set", module)
	}
	b, err := os.ReadFile(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Module returns the module named name, or nil.
func (s *Set) Module(name string) *schema.Module {
	for _, m := range s.Modules {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// FindModule returns the module or submodule called name.  Unlike Module it
// also finds modules that were only read to resolve an import or include;
// those have a source tree but no data tree.
func (s *Set) FindModule(name string) *schema.Module {
	if m := s.Module(name); m != nil {
		return m
	}
	if s.ms == nil {
		return nil
	}
	m := s.ms.SubModules[name]
	if m == nil {
		m = s.ms.Modules[name]
	}
	if m == nil || m.Statement() == nil {
		return nil
	}
	return &schema.Module{
		Name:   m.Name,
		File:   schema.ParseLocation(m.Statement().Location()).File,
		Source: schema.FromStatement(m.Statement()),
	}
}
