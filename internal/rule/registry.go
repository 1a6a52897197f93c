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

package rule

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	// ErrInvalidRule is returned for rules that cannot be registered.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrDuplicateRule is returned when two rules share an ID.
	ErrDuplicateRule = errors.New("duplicate rule ID")

	// ErrUnknownRule is returned when a rule to disable is not registered.
	ErrUnknownRule = errors.New("unknown rule")
)

// Registry is an ordered, immutable set of rules.
//
// A Registry is built once before analysis and can be shared by concurrent passes.
type Registry struct {
	rules []*Rule
}

// NewRegistry validates the rules and returns them as a [Registry] in the given order.
// Rules are copied; later changes to the arguments do not affect the registry.
func NewRegistry(rules ...Rule) (*Registry, error) {
	return (&Registry{}).Extend(rules...)
}

// Extend returns a new [Registry] with rules appended.
func (r *Registry) Extend(rules ...Rule) (*Registry, error) {
	ids := make(map[string]struct{}, len(r.rules)+len(rules))
	for _, rule := range r.rules {
		ids[rule.ID] = struct{}{}
	}

	all := slices.Grow(slices.Clone(r.rules), len(rules))

	var errs []error

	for _, rule := range rules {
		if err := rule.compile(); err != nil {
			errs = append(errs, err)

			continue
		}

		if _, ok := ids[rule.ID]; ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateRule, rule.ID))

			continue
		}

		ids[rule.ID] = struct{}{}
		all = append(all, &rule)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &Registry{rules: all}, nil
}

// Without returns a [Registry] without the rules with the given IDs.
func (r *Registry) Without(ids ...string) *Registry {
	if len(ids) == 0 {
		return r
	}

	rules := slices.DeleteFunc(slices.Clone(r.rules), func(rule *Rule) bool { return slices.Contains(ids, rule.ID) })

	return &Registry{rules: rules}
}

// Disable is like [Registry.Without], but fails with [ErrUnknownRule] for IDs that are not registered.
func (r *Registry) Disable(ids ...string) (*Registry, error) {
	var errs []error

	for _, id := range ids {
		if !slices.ContainsFunc(r.rules, func(rule *Rule) bool { return rule.ID == id }) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownRule, id))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return r.Without(ids...), nil
}

// Len returns the number of registered rules.
func (r *Registry) Len() int { return len(r.rules) }

// Rules yields copies of the registered rules in registration order.
func (r *Registry) Rules() iter.Seq[Rule] {
	return func(yield func(Rule) bool) {
		for _, rule := range r.rules {
			if !yield(*rule) {
				return
			}
		}
	}
}

// IDs returns the rule IDs in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		ids = append(ids, rule.ID)
	}

	return ids
}
