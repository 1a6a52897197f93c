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

import "fillmore-labs.com/callguard/internal/syntax"

// Matcher is a side-effect free predicate over call sites.
type Matcher interface {
	Matches(site syntax.CallSite) bool
}

// Func adapts a function to a [Matcher].
type Func func(site syntax.CallSite) bool

// Matches implements [Matcher].
func (f Func) Matches(site syntax.CallSite) bool { return f(site) }

// And matches when all matchers match. An empty list always matches.
func And(ms ...Matcher) Matcher { return all(ms) }

// Or matches when any matcher matches. An empty list never matches.
func Or(ms ...Matcher) Matcher { return anyOf(ms) }

type all []Matcher

func (a all) Matches(site syntax.CallSite) bool {
	for _, m := range a {
		if !m.Matches(site) {
			return false
		}
	}

	return true
}

type anyOf []Matcher

func (a anyOf) Matches(site syntax.CallSite) bool {
	for _, m := range a {
		if m.Matches(site) {
			return true
		}
	}

	return false
}

// Arity matches calls with exactly n arguments.
func Arity(n int) Matcher {
	return Func(func(site syntax.CallSite) bool { return len(site.Args) == n })
}
