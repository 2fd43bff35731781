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

import (
	"fmt"
	"sort"
	"strings"
)

// InternalError is the code reported when a rule fails unexpectedly or
// reports a diagnostic incorrectly.
const InternalError = "OC_LINTER_ERROR"

// A Code describes one kind of diagnostic.  Format is a fmt format whose
// verbs are all %s; NArgs is the number of those verbs.
type Code struct {
	ID       string
	Severity Severity
	Format   string
	NArgs    int
}

// Render returns the message of c formatted with args.
func (c *Code) Render(args []string) string {
	v := make([]interface{}, len(args))
	for i, a := range args {
		v[i] = a
	}
	return fmt.Sprintf(c.Format, v...)
}

// Codes is the table of diagnostic codes known to a Linter.
type Codes struct {
	byID map[string]*Code
}

// NewCodes returns a table holding only InternalError.
func NewCodes() *Codes {
	c := &Codes{byID: map[string]*Code{}}
	if err := c.Add(InternalError, Critical, "Linter error encountered: %s"); err != nil {
		panic(err)
	}
	return c
}

// Add registers the code id.  Registering the same id twice is an error.
func (c *Codes) Add(id string, sev Severity, format string) error {
	switch {
	case id == "":
		return fmt.Errorf("empty error code")
	case c.byID[id] != nil:
		return fmt.Errorf("error code %s registered twice", id)
	}
	if _, ok := severityNames[sev]; !ok {
		return fmt.Errorf("error code %s: invalid severity %d", id, int(sev))
	}
	c.byID[id] = &Code{
		ID:       id,
		Severity: sev,
		Format:   format,
		NArgs:    strings.Count(format, "%s"),
	}
	return nil
}

// Lookup returns the code id, if registered.
func (c *Codes) Lookup(id string) (*Code, bool) {
	code, ok := c.byID[id]
	return code, ok
}

// All returns every registered code sorted by id.
func (c *Codes) All() []*Code {
	codes := make([]*Code, 0, len(c.byID))
	for _, code := range c.byID {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i].ID < codes[j].ID })
	return codes
}
