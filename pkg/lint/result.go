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

// Result holds the diagnostics of a lint run in detection order.
type Result struct {
	Diagnostics []Diagnostic
}

// Failed reports whether any Critical or Major diagnostic was found.
func (r *Result) Failed() bool {
	for _, d := range r.Diagnostics {
		if d.Severity.IsError() {
			return true
		}
	}
	return false
}

// Visible returns the diagnostics that are not hidden by opts.
func (r *Result) Visible(opts Options) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if !opts.Hidden(d) {
			out = append(out, d)
		}
	}
	return out
}

// Counts returns the number of diagnostics of each severity.
func (r *Result) Counts() map[Severity]int {
	return CountSeverities(r.Diagnostics)
}

// CountSeverities returns the number of diagnostics of each severity in ds.
func CountSeverities(ds []Diagnostic) map[Severity]int {
	counts := map[Severity]int{}
	for _, d := range ds {
		counts[d.Severity]++
	}
	return counts
}
