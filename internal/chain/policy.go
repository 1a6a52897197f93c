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

// Package chain decides whether a fluent call chain already satisfies an obligation.
package chain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"fillmore-labs.com/callguard/internal/syntax"
)

// ErrMalformedPolicy is returned for policies that can never be satisfied or name blank methods.
var ErrMalformedPolicy = errors.New("malformed chain policy")

// Policy is a named set of method names that handle an obligation when they appear
// earlier in a call chain.
type Policy struct {
	name     string
	handlers map[string]struct{}
	zeroArg  map[string]struct{}
}

// NewPolicy creates a [Policy].
//
// Handlers satisfy the obligation wherever they appear upstream. Names in zeroArg only
// do so when called without arguments, e.g. a conversion that preserves the failure.
func NewPolicy(name string, handlers, zeroArg []string) (*Policy, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: missing name", ErrMalformedPolicy)
	}

	if len(handlers) == 0 {
		return nil, fmt.Errorf("%w %q: empty handler set", ErrMalformedPolicy, name)
	}

	p := &Policy{
		name:     name,
		handlers: make(map[string]struct{}, len(handlers)),
		zeroArg:  make(map[string]struct{}, len(zeroArg)),
	}

	for _, h := range handlers {
		if strings.TrimSpace(h) == "" {
			return nil, fmt.Errorf("%w %q: blank handler name", ErrMalformedPolicy, name)
		}

		p.handlers[h] = struct{}{}
	}

	for _, z := range zeroArg {
		if strings.TrimSpace(z) == "" {
			return nil, fmt.Errorf("%w %q: blank zero-argument name", ErrMalformedPolicy, name)
		}

		p.zeroArg[z] = struct{}{}
	}

	return p, nil
}

// MustPolicy is like [NewPolicy] but panics on error. It is intended for built-in rules.
func MustPolicy(name string, handlers, zeroArg []string) *Policy {
	p, err := NewPolicy(name, handlers, zeroArg)
	if err != nil {
		panic(err)
	}

	return p
}

// Validate reports an error for a policy that was not created by [NewPolicy].
func (p *Policy) Validate() error {
	if p == nil || p.name == "" || len(p.handlers) == 0 {
		return fmt.Errorf("%w: uninitialized", ErrMalformedPolicy)
	}

	return nil
}

// Name returns the policy name.
func (p *Policy) Name() string { return p.name }

// Handlers returns the sorted handler names.
func (p *Policy) Handlers() []string { return slices.Sorted(maps.Keys(p.handlers)) }

// ZeroArg returns the sorted names that only handle the obligation without arguments.
func (p *Policy) ZeroArg() []string { return slices.Sorted(maps.Keys(p.zeroArg)) }

// Handles reports whether a single chain link satisfies the obligation.
func (p *Policy) Handles(site syntax.CallSite) bool {
	name := site.MethodName()

	if _, ok := p.handlers[name]; ok {
		return true
	}

	if _, ok := p.zeroArg[name]; ok && len(site.Args) == 0 {
		return true
	}

	return false
}
