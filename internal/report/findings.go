// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fillmore-labs.com/callguard/internal/fix"
	"fillmore-labs.com/callguard/internal/rule"
)

// Source locates offsets of a syntax-only source file.
type Source interface {
	Name() string
	Position(offset int) (line, column int)
	Imported(name string) bool
}

// Finding is a diagnostic located in a source file.
type Finding struct {
	File     string        `json:"file"`
	Line     int           `json:"line"`
	Column   int           `json:"column"`
	RuleID   string        `json:"rule"`
	Severity rule.Severity `json:"severity"`
	Message  string        `json:"message"`
	Fix      *fix.Fix      `json:"fix,omitempty"`

	edits []located
}

type located struct {
	line, column int
	edit         fix.TextEdit
}

// Findings locates diagnostics in src. Import edits for names src already imports are dropped.
func Findings(src Source, diagnostics []rule.Diagnostic) []Finding {
	findings := make([]Finding, 0, len(diagnostics))

	for _, d := range diagnostics {
		line, column := src.Position(d.Anchor.Span().Start)

		f := Finding{
			File:     src.Name(),
			Line:     line,
			Column:   column,
			RuleID:   d.RuleID,
			Severity: d.Severity,
			Message:  d.Message,
		}

		if d.Fix != nil {
			needed := d.Fix.Filter(func(e fix.TextEdit) bool { return e.Kind != fix.AddImport || !src.Imported(e.Payload) })
			f.Fix = &needed

			for _, e := range needed.Edits() {
				l := located{edit: e}
				if pos, ok := e.Position(); ok {
					l.line, l.column = src.Position(pos)
				}

				f.edits = append(f.edits, l)
			}
		}

		findings = append(findings, f)
	}

	return findings
}
