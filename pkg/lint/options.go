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

// Options are the user settings of a lint run.
type Options struct {
	// EnableBaseline runs the generic RFC 6087 rules in addition to the
	// OpenConfig rules.
	EnableBaseline bool
	// OCOnly restricts the run to OpenConfig rules even when
	// EnableBaseline is set.
	OCOnly bool
	// IgnoreWarnings hides all Minor and Warning diagnostics.
	IgnoreWarnings bool
	// Suppress lists codes whose Minor and Warning diagnostics are hidden.
	Suppress []string
}

// Baseline reports whether the baseline rules should run.
func (o Options) Baseline() bool { return o.EnableBaseline && !o.OCOnly }

// Hidden reports whether d is not shown under o.
func (o Options) Hidden(d Diagnostic) bool {
	if !d.Severity.Suppressible() {
		return false
	}
	if o.IgnoreWarnings {
		return true
	}
	for _, c := range o.Suppress {
		if c == d.Code {
			return true
		}
	}
	return false
}
