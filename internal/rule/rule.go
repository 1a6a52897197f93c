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

// Package rule binds call matchers to diagnostics.
package rule

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"fillmore-labs.com/callguard/internal/chain"
	"fillmore-labs.com/callguard/internal/fix"
	"fillmore-labs.com/callguard/internal/match"
	"fillmore-labs.com/callguard/internal/syntax"
)

// Rule reports calls selected by its matcher.
//
// Without a policy the rule fires on every matching call. With a policy it only fires
// when no earlier link of the call chain satisfies it.
type Rule struct {
	ID       string
	Severity Severity
	Matcher  match.Matcher
	Policy   *chain.Policy // optional
	Message  string        // text/template over [MessageData]
	Fix      fix.Template  // optional
	Doc      string        // optional long description

	message *template.Template
}

// MessageData is the data available to message templates.
type MessageData struct {
	RuleID string
	Method string
	Owner  string
	Args   int
}

// Diagnostic is a single finding.
type Diagnostic struct {
	RuleID   string
	Severity Severity
	Message  string
	Anchor   syntax.Node
	Fix      *fix.Fix // nil when the rule offers no fix
}

// Evaluate applies the rule to a call site.
//
// When the fix cannot be constructed, the diagnostic is still reported without a fix
// and the construction error is returned.
func (r *Rule) Evaluate(site syntax.CallSite) (Diagnostic, bool, error) {
	if !r.Matcher.Matches(site) {
		return Diagnostic{}, false, nil
	}

	if r.Policy != nil && r.Policy.Handled(site.Receiver) {
		return Diagnostic{}, false, nil
	}

	d := Diagnostic{
		RuleID:   r.ID,
		Severity: r.Severity,
		Message:  r.render(site),
		Anchor:   site.Node,
	}

	if r.Fix == nil {
		return d, true, nil
	}

	var b fix.Builder
	r.Fix.Apply(site, &b)

	f, err := b.Build()
	if err != nil {
		return d, true, fmt.Errorf("rule %s at %v: %w", r.ID, site.Node.Span(), err)
	}

	if f.Len() > 0 {
		d.Fix = &f
	}

	return d, true, nil
}

func (r *Rule) render(site syntax.CallSite) string {
	if r.message == nil {
		return r.Message
	}

	data := MessageData{
		RuleID: r.ID,
		Method: site.MethodName(),
		Owner:  owner(site.Callee),
		Args:   len(site.Args),
	}

	var buf strings.Builder
	if err := r.message.Execute(&buf, data); err != nil {
		return r.Message
	}

	return buf.String()
}

func owner(s syntax.Symbol) string {
	switch s := s.(type) {
	case syntax.Resolved:
		return s.Owner

	case syntax.Unresolved:
		return s.Qualifier

	default:
		return ""
	}
}

// compile validates the rule and prepares its message template.
func (r *Rule) compile() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidRule)
	}

	if r.Matcher == nil {
		return fmt.Errorf("%w %s: missing matcher", ErrInvalidRule, r.ID)
	}

	if r.Policy != nil {
		if err := r.Policy.Validate(); err != nil {
			return fmt.Errorf("rule %s: %w", r.ID, err)
		}
	}

	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("%w %s: missing message", ErrInvalidRule, r.ID)
	}

	if !strings.Contains(r.Message, "{{") {
		r.message = nil

		return nil
	}

	t, err := template.New(r.ID).Option("missingkey=error").Parse(r.Message)
	if err != nil {
		return fmt.Errorf("%w %s: message: %w", ErrInvalidRule, r.ID, err)
	}

	if err := t.Execute(io.Discard, MessageData{}); err != nil {
		return fmt.Errorf("%w %s: message: %w", ErrInvalidRule, r.ID, err)
	}

	r.message = t

	return nil
}
