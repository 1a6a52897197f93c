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

package goast

import (
	"go/ast"
	"go/types"
	"iter"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/callguard/internal/syntax"
)

// node is a position in a [Tree].
type node struct {
	t   *Tree
	idx int32 // inspector event index
}

var _ syntax.Node = node{}

func (n node) cursor() inspector.Cursor { return n.t.in.At(n.idx) }

func (n node) Kind() syntax.Kind {
	switch e := n.cursor().Node().(type) {
	case *ast.CallExpr:
		if n.t.isConversion(e) {
			return syntax.KindCast
		}

		return syntax.KindCall

	case *ast.ParenExpr:
		return syntax.KindParen

	case *ast.TypeAssertExpr:
		if e.Type == nil { // x.(type) in a type switch
			return syntax.KindOther
		}

		return syntax.KindCast

	case *ast.SelectorExpr:
		return syntax.KindMember

	default:
		return syntax.KindOther
	}
}

func (n node) Span() syntax.Span { return n.t.Span(n.cursor().Node()) }

func (n node) Text() string {
	if e, ok := n.cursor().Node().(ast.Expr); ok {
		return types.ExprString(e)
	}

	return ""
}

func (n node) Children() iter.Seq[syntax.Node] {
	return func(yield func(syntax.Node) bool) {
		for c := range n.cursor().Children() {
			if !yield(n.t.nodeAt(c)) {
				return
			}
		}
	}
}

func (n node) Inner() syntax.Node {
	c := n.cursor()

	switch e := c.Node().(type) {
	case *ast.ParenExpr:
		return n.t.nodeAt(c.ChildAt(edge.ParenExpr_X, -1))

	case *ast.TypeAssertExpr:
		return n.t.nodeAt(c.ChildAt(edge.TypeAssertExpr_X, -1))

	case *ast.CallExpr:
		if len(e.Args) == 1 && n.t.isConversion(e) {
			return n.t.nodeAt(c.ChildAt(edge.CallExpr_Args, 0))
		}
	}

	return nil
}

func (n node) Call() syntax.CallSite {
	c := n.cursor()

	call, ok := c.Node().(*ast.CallExpr)
	if !ok {
		return syntax.CallSite{}
	}

	site := syntax.CallSite{
		Node:    n,
		ArgList: syntax.Span{Start: n.t.file.Offset(call.Lparen), End: n.t.file.Offset(call.Rparen) + 1},
		Args:    make([]syntax.Node, 0, len(call.Args)),
	}

	for i := range call.Args {
		site.Args = append(site.Args, n.t.nodeAt(c.ChildAt(edge.CallExpr_Args, i)))
	}

	fun := calledFunc(c.ChildAt(edge.CallExpr_Fun, -1))

	var selection *types.Selection

	if sel, ok := fun.Node().(*ast.SelectorExpr); ok {
		selection = n.t.info.Selections[sel]
		if selection != nil && selection.Kind() != types.MethodExpr {
			site.Receiver = n.t.nodeAt(fun.ChildAt(edge.SelectorExpr_X, -1))
		}
	}

	site.Callee = n.t.symbol(call, fun.Node(), selection)

	return site
}

// calledFunc strips parentheses and generic instantiations from the function expression of a call.
func calledFunc(c inspector.Cursor) inspector.Cursor {
	for {
		switch c.Node().(type) {
		case *ast.ParenExpr:
			c = c.ChildAt(edge.ParenExpr_X, -1)

		case *ast.IndexExpr:
			c = c.ChildAt(edge.IndexExpr_X, -1)

		case *ast.IndexListExpr:
			c = c.ChildAt(edge.IndexListExpr_X, -1)

		default:
			return c
		}
	}
}

func (t *Tree) isConversion(call *ast.CallExpr) bool {
	tv, ok := t.info.Types[call.Fun]

	return ok && tv.IsType()
}
