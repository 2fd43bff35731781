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

// Package lint is a phase driven rule engine for YANG statement trees.
//
// A Linter holds an ordered set of phases, the rule sets registered in each
// phase and the table of diagnostic codes rules may emit.  Run walks every
// module once per phase, hands each node to the rules selected by its keyword
// and collects the resulting diagnostics in detection order.
package lint

import "fmt"

// A Severity is how serious a diagnostic is.  Lower values are more severe.
type Severity int

const (
	// Critical marks a fault in the linter itself.  It is never suppressed.
	Critical Severity = iota + 1
	// Major marks a convention violation that fails a run.
	Major
	// Minor marks a convention violation that may be suppressed.
	Minor
	// Warning is advisory only.
	Warning
)

var severityNames = map[Severity]string{
	Critical: "CRITICAL",
	Major:    "MAJOR",
	Minor:    "MINOR",
	Warning:  "WARNING",
}

func (s Severity) String() string {
	if n, ok := severityNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// ParseSeverity returns the Severity named s, e.g., "MAJOR".
func ParseSeverity(s string) (Severity, error) {
	for sev, n := range severityNames {
		if n == s {
			return sev, nil
		}
	}
	return 0, fmt.Errorf("unknown severity %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if _, ok := severityNames[s]; !ok {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(b []byte) error {
	v, err := ParseSeverity(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// IsError reports whether a diagnostic of severity s fails a run.
func (s Severity) IsError() bool { return s == Critical || s == Major }

// Suppressible reports whether diagnostics of severity s may be hidden.
func (s Severity) Suppressible() bool { return s == Minor || s == Warning }
