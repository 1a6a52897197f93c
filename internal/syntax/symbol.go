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

package syntax

import (
	"slices"
	"strings"
)

// Symbol describes the callee of a call. It is either [Resolved] or [Unresolved].
type Symbol interface {
	symbol()
}

// Resolved is a callee bound by the host's type checker.
type Resolved struct {
	// Owner is the fully-qualified static type of the receiver for instance calls,
	// or the declaring type (or package) for static calls.
	Owner string

	// Name is the simple method name.
	Name string

	// Params are the parameter type spellings of the selected overload.
	Params []string

	// Ancestry answers descendant-of queries for Owner, nil when unknown.
	Ancestry Ancestry
}

// Unresolved is a callee known only by its spelling.
type Unresolved struct {
	// Spelling is the callee as written, e.g. "CompletableFuture.runAsync".
	Spelling string

	// Qualifier is the text before the method name, empty for unqualified calls.
	Qualifier string

	// QualifierKind classifies Qualifier.
	QualifierKind QualifierKind
}

func (Resolved) symbol()   {}
func (Unresolved) symbol() {}

// QualifierKind tells whether an unresolved qualifier names a type.
type QualifierKind uint8

const (
	// QualifierNone means the call is unqualified.
	QualifierNone QualifierKind = iota

	// QualifierType means the qualifier spells a type or package name.
	QualifierType

	// QualifierValue means the qualifier is an expression of unknown type.
	QualifierValue
)

// Ancestry answers whether a type transitively extends or implements another one.
type Ancestry interface {
	Descends(name string) bool
}

// Supertypes is an [Ancestry] backed by an explicit list of transitive supertypes.
type Supertypes []string

// Descends implements [Ancestry].
func (s Supertypes) Descends(name string) bool { return slices.Contains(s, name) }

// MethodName returns the method name of a symbol, falling back to the spelling
// with any qualifier stripped when resolution failed.
func MethodName(s Symbol) string {
	switch s := s.(type) {
	case Resolved:
		return s.Name

	case Unresolved:
		return SimpleName(s.Spelling)

	default:
		return ""
	}
}

// SimpleName strips any qualifier up to the last separator.
func SimpleName(name string) string {
	if i := strings.LastIndexAny(name, ".:/#$"); i >= 0 {
		return name[i+1:]
	}

	return name
}
