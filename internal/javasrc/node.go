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

package javasrc

import (
	"iter"
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/callguard/internal/syntax"
)

// node is a tree-sitter node of a [File].
type node struct {
	f *File
	n *sitter.Node
}

var _ syntax.Node = node{}

func (f *File) node(n *sitter.Node) syntax.Node {
	if n == nil {
		return nil
	}

	return node{f: f, n: n}
}

func (n node) Kind() syntax.Kind {
	switch n.n.Type() {
	case "method_invocation":
		return syntax.KindCall

	case "parenthesized_expression":
		return syntax.KindParen

	case "cast_expression":
		return syntax.KindCast

	case "field_access":
		return syntax.KindMember

	default:
		return syntax.KindOther
	}
}

func (n node) Span() syntax.Span {
	return syntax.Span{Start: int(n.n.StartByte()), End: int(n.n.EndByte())}
}

func (n node) Text() string { return n.n.Content(n.f.src) }

func (n node) Children() iter.Seq[syntax.Node] {
	return func(yield func(syntax.Node) bool) {
		for c := range namedChildren(n.n) {
			if !yield(node{f: n.f, n: c}) {
				return
			}
		}
	}
}

func (n node) Inner() syntax.Node {
	switch n.n.Type() {
	case "parenthesized_expression":
		for c := range namedChildren(n.n) {
			if !isComment(c) {
				return n.f.node(c)
			}
		}

	case "cast_expression":
		return n.f.node(n.n.ChildByFieldName("value"))
	}

	return nil
}

func (n node) Call() syntax.CallSite {
	if n.n.Type() != "method_invocation" {
		return syntax.CallSite{}
	}

	name := n.n.ChildByFieldName("name")
	if name == nil {
		return syntax.CallSite{}
	}

	site := syntax.CallSite{Node: n}

	callee := syntax.Unresolved{Spelling: name.Content(n.f.src)}

	if obj := n.n.ChildByFieldName("object"); obj != nil {
		callee.Qualifier = obj.Content(n.f.src)
		callee.Spelling = callee.Qualifier + "." + callee.Spelling
		callee.QualifierKind = qualifierKind(obj, callee.Qualifier)

		if callee.QualifierKind == syntax.QualifierValue {
			site.Receiver = n.f.node(obj)
		}
	}

	site.Callee = callee

	if args := n.n.ChildByFieldName("arguments"); args != nil {
		site.ArgList = syntax.Span{Start: int(args.StartByte()), End: int(args.EndByte())}

		for c := range namedChildren(args) {
			if !isComment(c) {
				site.Args = append(site.Args, node{f: n.f, n: c})
			}
		}
	}

	return site
}

// qualifierKind classifies a call qualifier: names spelled like types (Try, java.util.Objects)
// are type qualifiers, everything else is a value.
func qualifierKind(obj *sitter.Node, text string) syntax.QualifierKind {
	switch obj.Type() {
	case "identifier", "field_access", "scoped_identifier", "type_identifier":
		if isTypeName(syntax.SimpleName(text)) {
			return syntax.QualifierType
		}
	}

	return syntax.QualifierValue
}

// isTypeName reports whether name starts upper case and is not a constant.
func isTypeName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	if !unicode.IsUpper(r) {
		return false
	}

	for _, r := range name {
		if unicode.IsLower(r) {
			return true
		}
	}

	return false
}

func namedChildren(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		for i := range int(n.NamedChildCount()) {
			if c := n.NamedChild(i); c != nil && !yield(c) {
				return
			}
		}
	}
}

func isComment(n *sitter.Node) bool {
	switch n.Type() {
	case "line_comment", "block_comment", "comment":
		return true

	default:
		return false
	}
}
