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

import "iter"

// Node is a read-only handle to a position in a syntax tree.
//
// Accessors that do not apply to a node's [Kind] return zero values: Inner is nil
// unless the node is a [KindParen] or [KindCast] wrapper, and Call is only meaningful
// for [KindCall] nodes.
type Node interface {
	Kind() Kind
	Span() Span

	// Text returns the source spelling of the node.
	Text() string

	// Children yields the direct child nodes in source order.
	Children() iter.Seq[Node]

	// Inner returns the expression wrapped by a parenthesis or cast.
	Inner() Node

	// Call returns the call site view of a call node.
	Call() CallSite
}

// CallSite is a view over a [KindCall] node.
type CallSite struct {
	Node     Node   // The call node itself
	Callee   Symbol // Resolved or syntactic callee
	Receiver Node   // Receiver expression, nil for unqualified or static calls
	Args     []Node // Argument expressions in order
	ArgList  Span   // Span of the argument list including parentheses
}

// Valid reports whether the call site describes a call.
func (s CallSite) Valid() bool { return s.Node != nil && s.Callee != nil }

// MethodName returns the name of the called method.
func (s CallSite) MethodName() string { return MethodName(s.Callee) }

// LastArg returns the last argument, if any.
func (s CallSite) LastArg() (Node, bool) {
	if len(s.Args) == 0 {
		return nil, false
	}

	return s.Args[len(s.Args)-1], true
}

// SiteOf returns the call site of n when n is a call node.
func SiteOf(n Node) (CallSite, bool) {
	if n == nil || n.Kind() != KindCall {
		return CallSite{}, false
	}

	site := n.Call()

	return site, site.Valid()
}

// Unwrap strips parentheses and casts until neither applies.
func Unwrap(n Node) Node {
	for n != nil {
		switch n.Kind() {
		case KindParen, KindCast:
			n = n.Inner()

		case KindCall, KindMember, KindOther:
			return n

		default:
			return n
		}
	}

	return nil
}

// Preorder yields root and all its descendants in pre-order, left to right.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if root != nil {
			preorder(root, yield)
		}
	}
}

func preorder(n Node, yield func(Node) bool) bool {
	if !yield(n) {
		return false
	}

	for c := range n.Children() {
		if !preorder(c, yield) {
			return false
		}
	}

	return true
}
