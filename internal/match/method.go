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

package match

import (
	"slices"

	"fillmore-labs.com/callguard/internal/syntax"
)

// Method matches calls by owner type, method name and, optionally, parameter types.
type Method struct {
	owner       string
	mode        OwnerMode
	name        string
	params      []string
	checkParams bool
}

var _ Matcher = Method{}

// OnClass starts a [Method] matcher for calls owned by exactly the named type.
func OnClass(owner string) Method { return Method{owner: owner, mode: ExactClass} }

// OnDescendantOf starts a [Method] matcher for calls owned by the named type or one of its descendants.
func OnDescendantOf(owner string) Method { return Method{owner: owner, mode: DescendantOf} }

// Named returns a copy of m restricted to the method name.
func (m Method) Named(name string) Method {
	m.name = name

	return m
}

// WithParameters returns a copy of m restricted to the given positional parameter types.
// Calling it without arguments requires a parameterless method.
func (m Method) WithParameters(params ...string) Method {
	m.params = slices.Clone(params)
	if m.params == nil {
		m.params = []string{}
	}

	m.checkParams = true

	return m
}

// Owner returns the declared owner type.
func (m Method) Owner() string { return m.owner }

// Mode returns the owner matching mode.
func (m Method) Mode() OwnerMode { return m.mode }

// Name returns the declared method name.
func (m Method) Name() string { return m.name }

// Matches implements [Matcher].
func (m Method) Matches(site syntax.CallSite) bool {
	switch callee := site.Callee.(type) {
	case syntax.Resolved:
		return m.matchesResolved(callee)

	case syntax.Unresolved:
		return m.matchesUnresolved(callee, len(site.Args))

	default:
		return false
	}
}

func (m Method) matchesResolved(callee syntax.Resolved) bool {
	if callee.Name != m.name {
		return false
	}

	if m.checkParams && !slices.Equal(callee.Params, m.params) {
		return false
	}

	switch m.mode {
	case ExactClass:
		return callee.Owner == m.owner

	case DescendantOf:
		return callee.Owner == m.owner || callee.Ancestry != nil && callee.Ancestry.Descends(m.owner)

	default:
		return false
	}
}

func (m Method) matchesUnresolved(callee syntax.Unresolved, args int) bool {
	if syntax.SimpleName(callee.Spelling) != m.name {
		return false
	}

	if m.checkParams && len(m.params) != args {
		return false
	}

	switch callee.QualifierKind {
	case syntax.QualifierType:
		return syntax.SimpleName(callee.Qualifier) == syntax.SimpleName(m.owner)

	case syntax.QualifierValue, syntax.QualifierNone:
		return true // unknown receiver type

	default:
		return false
	}
}
