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

// Program oclint checks YANG modules against the OpenConfig style guidelines
// and displays what it finds.
//
// Usage: oclint [--path PATH] [--format FORMAT] [FORMAT OPTIONS] [FILE ...]
//
// Each FILE is either a .yang file or the name of a module to be found in
// PATH.  If no FILEs are given the module is read from standard input.
//
// If PATH is specified, it is considered a comma separated list of paths
// to search for imported and included modules.
//
// FORMAT, which defaults to "lint", specifies the output to produce:
//
//	lint         style diagnostics, exit status 1 on critical or major ones
//	paths        the schema paths of the data tree
//	oc-versions  the openconfig-version of each module
//	codes        the known diagnostic codes
//
// Settings may also come from .oclint.yaml (or the file named by --config)
// and OCLINT_ environment variables.  Flags given on the command line win.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	log "github.com/golang/glog"
	"github.com/openconfig/goyang/pkg/indent"
	"github.com/openconfig/oclint/pkg/config"
	"github.com/openconfig/oclint/pkg/loader"
	"github.com/pborman/getopt"
)

// Each format must register a formatter with register.  The function f will
// be called once with the configuration and the set of read modules.
type formatter struct {
	name  string
	f     func(io.Writer, *config.Config, *loader.Set) error
	help  string
	flags *getopt.Set

	// noInput is set for formatters that do not read modules.
	noInput bool
}

var formatters = map[string]*formatter{}

func register(f *formatter) {
	formatters[f.name] = f
}

// An override ties a command line option to the configuration key it sets.
// Only options seen on the command line override the configuration.
type override struct {
	key   string
	opt   getopt.Option
	value func() interface{}
}

// overrides collects the options of the formatters as well as the global
// ones.
var overrides []override

func addOverride(key string, opt getopt.Option, value func() interface{}) {
	overrides = append(overrides, override{key: key, opt: opt, value: value})
}

// errLintFailed is returned by a formatter that already reported why the run
// failed.
var errLintFailed = errors.New("lint failed")

// exitIfError writes errs to standard error and exits with an exit status of 1.
// If errs is empty then exitIfError does nothing and simply returns.
func exitIfError(errs []error) {
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func main() {
	var (
		paths          []string
		format         string
		cfgFile        string
		ocOnly         bool
		noBaseline     bool
		ignoreWarnings bool
		suppress       []string
		printErrorCode bool
		color          bool
		verbosity      int
		help           bool
	)

	var formats []string
	for name := range formatters {
		formats = append(formats, name)
	}
	sort.Strings(formats)

	addOverride("paths", getopt.ListVarLong(&paths, "path", 0, "comma separated list of directories to add to PATH"),
		func() interface{} { return paths })
	addOverride("format", getopt.StringVarLong(&format, "format", 0, "format to display: "+strings.Join(formats, ", ")),
		func() interface{} { return format })
	getopt.StringVarLong(&cfgFile, "config", 0, "read settings from FILE instead of "+config.DefaultFile, "FILE")
	addOverride("oc_only", getopt.BoolVarLong(&ocOnly, "oc-only", 0, "only check the OpenConfig guidelines"),
		func() interface{} { return ocOnly })
	addOverride("baseline", getopt.BoolVarLong(&noBaseline, "no-baseline", 0, "do not check the baseline YANG guidelines"),
		func() interface{} { return !noBaseline })
	addOverride("ignore_warnings", getopt.BoolVarLong(&ignoreWarnings, "ignore-warnings", 0, "do not display minor issues and warnings"),
		func() interface{} { return ignoreWarnings })
	addOverride("suppress", getopt.ListVarLong(&suppress, "suppress", 0, "comma separated list of minor or warning codes not to display", "CODES"),
		func() interface{} { return suppress })
	addOverride("print_error_code", getopt.BoolVarLong(&printErrorCode, "print-error-code", 0, "include the code of each diagnostic"),
		func() interface{} { return printErrorCode })
	addOverride("color", getopt.BoolVarLong(&color, "color", 0, "color diagnostics by severity"),
		func() interface{} { return color })
	getopt.IntVarLong(&verbosity, "verbosity", 'v', "log verbosity", "LEVEL")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("[FORMAT OPTIONS] [FILE] [...]")

	for _, fn := range formats {
		if f := formatters[fn]; f.flags != nil {
			f.flags.VisitAll(func(o getopt.Option) {
				getopt.AddOption(o)
			})
		}
	}

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		fmt.Fprintf(os.Stderr, "\nFormats:\n")
		for _, fn := range formats {
			f := formatters[fn]
			fmt.Fprintf(os.Stderr, "    %s - %s\n", f.name, f.help)
			if f.flags != nil {
				f.flags.PrintOptions(indent.NewWriter(os.Stderr, "   "))
			}
			fmt.Fprintln(os.Stderr)
		}
		os.Exit(0)
	}

	if err := setupLogging(verbosity); err != nil {
		exitIfError([]error{err})
	}

	set := map[string]interface{}{}
	for _, o := range overrides {
		if o.opt.Seen() {
			set[o.key] = o.value()
		}
	}
	cfg, err := config.Load(cfgFile, set)
	if err != nil {
		exitIfError([]error{err})
	}
	if cfg.File != "" {
		log.V(1).Infof("read settings from %s", cfg.File)
	}

	f, ok := formatters[cfg.Format]
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: invalid format.  Choices are %s\n", cfg.Format, strings.Join(formats, ", "))
		os.Exit(1)
	}

	var ms *loader.Set
	if !f.noInput {
		ms = load(getopt.Args(), cfg.Paths)
	}

	switch err := f.f(os.Stdout, cfg, ms); {
	case errors.Is(err, errLintFailed):
		os.Exit(1)
	case err != nil:
		exitIfError([]error{err})
	}
}

// setupLogging sends glog output to standard error at the given verbosity.
// glog only reads its settings from the standard flag set.
func setupLogging(verbosity int) error {
	for _, f := range []struct{ name, value string }{
		{"logtostderr", "true"},
		{"v", strconv.Itoa(verbosity)},
	} {
		if err := flag.Set(f.name, f.value); err != nil {
			return fmt.Errorf("cannot set log flag %s: %v", f.name, err)
		}
	}
	return nil
}

// load reads the named files, or standard input if there are none, and
// exits on any error.
func load(files, path []string) *loader.Set {
	if len(files) > 0 {
		ms, errs := loader.Parse(files, path)
		exitIfError(errs)
		return ms
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitIfError([]error{err})
	}
	ms, errs := loader.ParseSources([]loader.Source{{Name: "<STDIN>", Text: string(data)}}, path)
	exitIfError(errs)
	return ms
}
