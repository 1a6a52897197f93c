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

package chain

import "fillmore-labs.com/callguard/internal/syntax"

// Handled walks the chain backwards from receiver and reports whether any call on it
// satisfies the policy.
//
// Parentheses and casts are stripped before every step, so wrapper syntax never hides a
// handler. The walk ends at the first handler or at the first non-call link, visiting
// every link at most once. Calls without a classifiable callee are not handlers.
func (p *Policy) Handled(receiver syntax.Node) bool {
	for current := syntax.Unwrap(receiver); current != nil; {
		switch current.Kind() {
		case syntax.KindCall:
			site := current.Call()
			if site.Valid() && p.Handles(site) {
				return true
			}

			current = syntax.Unwrap(site.Receiver)

		case syntax.KindMember, syntax.KindParen, syntax.KindCast, syntax.KindOther:
			return false

		default:
			return false
		}
	}

	return false
}
