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
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"fillmore-labs.com/callguard/internal/fix"
	"fillmore-labs.com/callguard/internal/rule"
)

// Format is an output format of a [Printer].
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat returns the [Format] with the given name.
func ParseFormat(s string) (Format, bool) {
	switch f := Format(s); f {
	case FormatText, FormatJSON:
		return f, true

	default:
		return "", false
	}
}

// Printer writes findings.
type Printer struct {
	w      io.Writer
	format Format

	errorColor, warningColor, locationColor, fixColor *color.Color
}

// NewPrinter creates a [Printer]. Colors only apply to the text format.
func NewPrinter(w io.Writer, format Format, colors bool) *Printer {
	p := &Printer{
		w:             w,
		format:        format,
		errorColor:    color.New(color.FgRed, color.Bold),
		warningColor:  color.New(color.FgYellow, color.Bold),
		locationColor: color.New(color.Bold),
		fixColor:      color.New(color.FgCyan),
	}

	for _, c := range []*color.Color{p.errorColor, p.warningColor, p.locationColor, p.fixColor} {
		if colors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Print writes the findings in the configured format.
func (p *Printer) Print(findings []Finding) error {
	switch p.format {
	case FormatJSON:
		if findings == nil {
			findings = []Finding{}
		}

		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(findings); err != nil {
			return fmt.Errorf("encoding findings: %w", err)
		}

		return nil

	default:
		for i := range findings {
			if err := p.printText(&findings[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

func (p *Printer) printText(f *Finding) error {
	severity := p.warningColor
	if f.Severity == rule.Error {
		severity = p.errorColor
	}

	if _, err := fmt.Fprintf(p.w, "%s: %s %s (cg:%s)\n",
		p.locationColor.Sprintf("%s:%d:%d", f.File, f.Line, f.Column),
		severity.Sprint(f.Severity), f.Message, f.RuleID); err != nil {
		return fmt.Errorf("writing finding: %w", err)
	}

	for _, l := range f.edits {
		var note string

		switch l.edit.Kind {
		case fix.InsertAfter:
			note = fmt.Sprintf("insert %q at %d:%d", l.edit.Payload, l.line, l.column)

		case fix.AddImport:
			note = "import " + l.edit.Payload
		}

		if _, err := fmt.Fprintf(p.w, "\t%s %s\n", p.fixColor.Sprint("fix:"), note); err != nil {
			return fmt.Errorf("writing finding: %w", err)
		}
	}

	return nil
}
