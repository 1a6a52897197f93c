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

// Package goast exposes type-checked Go files as [syntax.Node] trees.
package goast

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/callguard/internal/syntax"
)

// Tree is a single Go file with its type information.
type Tree struct {
	in   *inspector.Inspector
	info *types.Info
	pkg  *types.Package
	file *token.File
	root int32
}

// NewTree creates a [Tree] for the file at cursor f.
// It returns false when the file is not part of fset.
func NewTree(fset *token.FileSet, info *types.Info, pkg *types.Package, f inspector.Cursor) (*Tree, bool) {
	file, ok := f.Node().(*ast.File)
	if !ok {
		return nil, false
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return nil, false
	}

	return &Tree{
		in:   f.Inspector(),
		info: info,
		pkg:  pkg,
		file: handle,
		root: f.Index(),
	}, true
}

// Root returns the file node.
func (t *Tree) Root() syntax.Node { return t.node(t.root) }

// Pos converts a source offset back to a [token.Pos].
func (t *Tree) Pos(offset int) token.Pos { return t.file.Pos(offset) }

// Span returns the span of an AST node.
func (t *Tree) Span(n ast.Node) syntax.Span {
	return syntax.Span{Start: t.file.Offset(n.Pos()), End: t.file.Offset(n.End())}
}

// Cursor returns the inspector cursor of a node of this tree.
func (t *Tree) Cursor(n syntax.Node) (inspector.Cursor, bool) {
	nd, ok := n.(node)
	if !ok || nd.t != t {
		return inspector.Cursor{}, false
	}

	return nd.cursor(), true
}

func (t *Tree) node(idx int32) node { return node{t: t, idx: idx} }

func (t *Tree) nodeAt(c inspector.Cursor) node { return t.node(c.Index()) }
