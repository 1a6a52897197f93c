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

// Package syntaxtest builds small in-memory [syntax.Node] trees for tests.
//
// Nodes are composed bottom-up; their source text is derived from their children,
// and [Root] assigns absolute spans once the tree is complete:
//
//	x := syntaxtest.Ident("x")
//	call := syntaxtest.Call(syntaxtest.Call(x, "onFailure", syntaxtest.Ident("h")), "getOrNull")
//	root := syntaxtest.Root(call)
package syntaxtest

import (
	"iter"
	"strings"

	"fillmore-labs.com/callguard/internal/syntax"
)

// Node is an in-memory [syntax.Node].
type Node struct {
	kind     syntax.Kind
	text     string
	span     syntax.Span
	children []*Node
	offsets  []int // child offsets relative to this node's text
	inner    *Node

	// call details
	callee   syntax.Symbol
	receiver *Node
	args     []*Node
	argRel   syntax.Span // relative to this node's text
	argList  syntax.Span
}

var _ syntax.Node = (*Node)(nil)

// Kind implements [syntax.Node].
func (n *Node) Kind() syntax.Kind { return n.kind }

// Span implements [syntax.Node].
func (n *Node) Span() syntax.Span { return n.span }

// Text implements [syntax.Node].
func (n *Node) Text() string { return n.text }

// Children implements [syntax.Node].
func (n *Node) Children() iter.Seq[syntax.Node] {
	return func(yield func(syntax.Node) bool) {
		for _, c := range n.children {
			if !yield(c) {
				return
			}
		}
	}
}

// Inner implements [syntax.Node].
func (n *Node) Inner() syntax.Node {
	if n.inner == nil {
		return nil
	}

	return n.inner
}

// Call implements [syntax.Node].
func (n *Node) Call() syntax.CallSite {
	if n.kind != syntax.KindCall {
		return syntax.CallSite{}
	}

	site := syntax.CallSite{
		Node:    n,
		Callee:  n.callee,
		ArgList: n.argList,
	}

	if n.receiver != nil {
		site.Receiver = n.receiver
	}

	site.Args = make([]syntax.Node, 0, len(n.args))
	for _, a := range n.args {
		site.Args = append(site.Args, a)
	}

	return site
}

// Resolve binds the callee of a call node to a resolved symbol.
func (n *Node) Resolve(owner string, params []string, supertypes ...string) *Node {
	r := syntax.Resolved{Owner: owner, Name: syntax.MethodName(n.callee), Params: params}
	if len(supertypes) > 0 {
		r.Ancestry = syntax.Supertypes(supertypes)
	}

	n.callee = r

	return n
}

// Ident creates a leaf expression, e.g. a variable or literal.
func Ident(name string) *Node {
	return &Node{kind: syntax.KindOther, text: name}
}

// Member creates a member access x.name.
func Member(x *Node, name string) *Node {
	return compose(syntax.KindMember, x, "."+name)
}

// Paren creates (x).
func Paren(x *Node) *Node {
	n := compose(syntax.KindParen, "(", x, ")")
	n.inner = x

	return n
}

// Cast creates (typ) x.
func Cast(typ string, x *Node) *Node {
	n := compose(syntax.KindCast, "("+typ+") ", x)
	n.inner = x

	return n
}

// Call creates the instance call recv.method(args...).
// The callee is unresolved with a value qualifier.
func Call(recv *Node, method string, args ...*Node) *Node {
	n := call([]any{recv, "." + method}, args)
	n.receiver = recv
	n.callee = syntax.Unresolved{Spelling: recv.text + "." + method, Qualifier: recv.text, QualifierKind: syntax.QualifierValue}

	return n
}

// StaticCall creates the static call typ.method(args...).
// The callee is unresolved with a type qualifier.
func StaticCall(typ, method string, args ...*Node) *Node {
	n := call([]any{typ + "." + method}, args)
	n.callee = syntax.Unresolved{Spelling: typ + "." + method, Qualifier: typ, QualifierKind: syntax.QualifierType}

	return n
}

// FuncCall creates the unqualified call name(args...).
func FuncCall(name string, args ...*Node) *Node {
	n := call([]any{name}, args)
	n.callee = syntax.Unresolved{Spelling: name}

	return n
}

// Block creates a statement list containing the given nodes.
func Block(stmts ...*Node) *Node {
	parts := make([]any, 0, 2*len(stmts)+1)
	parts = append(parts, "{ ")

	for _, s := range stmts {
		parts = append(parts, s, "; ")
	}

	parts = append(parts, "}")

	return compose(syntax.KindOther, parts...)
}

// Root assigns absolute spans to the complete tree and returns it.
func Root(n *Node) *Node {
	place(n, 0)

	return n
}

func call(head []any, args []*Node) *Node {
	parts := append(head, "(")
	for i, a := range args {
		if i > 0 {
			parts = append(parts, ", ")
		}

		parts = append(parts, a)
	}

	parts = append(parts, ")")

	n := compose(syntax.KindCall, parts...)
	n.args = args

	open := strings.LastIndex(n.text[:len(n.text)-argsLen(args)-1], "(")
	n.argRel = syntax.Span{Start: open, End: len(n.text)}

	return n
}

func argsLen(args []*Node) int {
	l := 0
	for i, a := range args {
		if i > 0 {
			l += len(", ")
		}

		l += len(a.text)
	}

	return l
}

// compose concatenates strings and child nodes into a new node.
func compose(kind syntax.Kind, parts ...any) *Node {
	n := &Node{kind: kind}

	var b strings.Builder

	for _, p := range parts {
		switch p := p.(type) {
		case string:
			b.WriteString(p) // ignore error

		case *Node:
			n.children = append(n.children, p)
			n.offsets = append(n.offsets, b.Len())
			b.WriteString(p.text) // ignore error
		}
	}

	n.text = b.String()

	return n
}

func place(n *Node, start int) {
	n.span = syntax.Span{Start: start, End: start + len(n.text)}
	if n.kind == syntax.KindCall {
		n.argList = syntax.Span{Start: start + n.argRel.Start, End: start + n.argRel.End}
	}

	for i, c := range n.children {
		place(c, start+n.offsets[i])
	}
}
