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

package rulefile

import (
	"errors"
	"fmt"

	"fillmore-labs.com/callguard/internal/chain"
	"fillmore-labs.com/callguard/internal/fix"
	"fillmore-labs.com/callguard/internal/match"
	"fillmore-labs.com/callguard/internal/rule"
)

// Build converts the declarations into rules.
func (f *File) Build() ([]rule.Rule, error) {
	rules := make([]rule.Rule, 0, len(f.Rules))

	var errs []error

	for i := range f.Rules {
		r, err := f.Rules[i].build()
		if err != nil {
			errs = append(errs, err)

			continue
		}

		rules = append(rules, r)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	// Registration checks what the declarations cannot: message templates and unique IDs.
	if _, err := rule.NewRegistry(rules...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRuleFile, err)
	}

	return rules, nil
}

func (s *Spec) build() (rule.Rule, error) {
	severity, ok := rule.ParseSeverity(s.Severity)
	if !ok {
		return rule.Rule{}, fmt.Errorf("%w: rule %s: unknown severity %q", ErrInvalidRuleFile, s.ID, s.Severity)
	}

	alternatives := make([]match.Matcher, 0, len(s.Match))

	for _, m := range s.Match {
		matcher, err := m.build()
		if err != nil {
			return rule.Rule{}, fmt.Errorf("rule %s: %w", s.ID, err)
		}

		alternatives = append(alternatives, matcher)
	}

	r := rule.Rule{
		ID:       s.ID,
		Severity: severity,
		Matcher:  alternatives[0],
		Message:  s.Message,
		Doc:      s.Doc,
	}

	if len(alternatives) > 1 {
		r.Matcher = match.Or(alternatives...)
	}

	if s.Chain != nil {
		name := s.Chain.Name
		if name == "" {
			name = s.ID + "Handlers"
		}

		policy, err := chain.NewPolicy(name, s.Chain.Handlers, s.Chain.ZeroArg)
		if err != nil {
			return rule.Rule{}, fmt.Errorf("rule %s: %w", s.ID, err)
		}

		r.Policy = policy
	}

	if s.Fix != nil {
		r.Fix = s.Fix.build()
	}

	return r, nil
}

func (m MatchSpec) build() (match.Matcher, error) {
	mode := match.ExactClass
	if m.Mode != "" {
		var ok bool
		if mode, ok = match.ParseOwnerMode(m.Mode); !ok {
			return nil, fmt.Errorf("%w: unknown owner mode %q", ErrInvalidRuleFile, m.Mode)
		}
	}

	var method match.Method

	switch mode {
	case match.ExactClass:
		method = match.OnClass(m.Owner)

	case match.DescendantOf:
		method = match.OnDescendantOf(m.Owner)

	default:
		return nil, fmt.Errorf("%w: unsupported owner mode %s", ErrInvalidRuleFile, mode)
	}

	method = method.Named(m.Method)

	if m.Parameters != nil {
		method = method.WithParameters(*m.Parameters...)
	}

	if m.Arguments != nil {
		return match.And(method, match.Arity(*m.Arguments)), nil
	}

	return method, nil
}

func (f FixSpec) build() fix.Template {
	if f.InsertAfterReceiver != "" {
		return fix.InsertAfterReceiver{Text: f.InsertAfterReceiver, Imports: f.Imports}
	}

	return fix.AppendArgument{Text: f.AppendArgument, Imports: f.Imports}
}
