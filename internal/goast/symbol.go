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
	"strings"

	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/callguard/internal/syntax"
)

// symbol resolves the callee of a call, falling back to its spelling.
func (t *Tree) symbol(call *ast.CallExpr, fun ast.Node, selection *types.Selection) syntax.Symbol {
	fn, ok := typeutil.Callee(t.info, call).(*types.Func)
	if !ok {
		return t.unresolved(fun)
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return t.unresolved(fun)
	}

	r := syntax.Resolved{
		Name:   fn.Name(),
		Params: paramTypes(sig),
	}

	switch {
	case sig.Recv() != nil:
		recv := sig.Recv().Type()
		if selection != nil {
			recv = selection.Recv()
		}

		r.Owner = typeName(recv)
		r.Ancestry = ancestry{pkg: t.pkg, typ: recv}

	case fn.Pkg() != nil:
		r.Owner = fn.Pkg().Path()
	}

	return r
}

func (t *Tree) unresolved(fun ast.Node) syntax.Symbol {
	e, ok := fun.(ast.Expr)
	if !ok {
		return syntax.Unresolved{}
	}

	u := syntax.Unresolved{Spelling: types.ExprString(e)}

	if sel, ok := e.(*ast.SelectorExpr); ok {
		u.Qualifier = types.ExprString(sel.X)
		u.QualifierKind = syntax.QualifierValue

		if id, ok := ast.Unparen(sel.X).(*ast.Ident); ok {
			switch t.info.Uses[id].(type) {
			case *types.PkgName, *types.TypeName:
				u.QualifierKind = syntax.QualifierType
			}
		}
	}

	return u
}

// typeName returns the package path qualified name of a (pointer to a) named type.
func typeName(typ types.Type) string {
	if ptr, ok := types.Unalias(typ).(*types.Pointer); ok {
		typ = ptr.Elem()
	}

	if named, ok := types.Unalias(typ).(*types.Named); ok {
		obj := named.Obj()
		if obj.Pkg() == nil {
			return obj.Name()
		}

		return obj.Pkg().Path() + "." + obj.Name()
	}

	return types.TypeString(typ, nil)
}

// paramTypes spells the parameter types of sig, prefixing a variadic parameter with "...".
func paramTypes(sig *types.Signature) []string {
	params := sig.Params()
	spelled := make([]string, 0, params.Len())

	for i := range params.Len() {
		typ := params.At(i).Type()

		if sig.Variadic() && i == params.Len()-1 {
			if s, ok := typ.(*types.Slice); ok {
				spelled = append(spelled, "..."+types.TypeString(s.Elem(), nil))

				continue
			}
		}

		spelled = append(spelled, types.TypeString(typ, nil))
	}

	return spelled
}

// ancestry answers descendant-of queries for a receiver type.
//
// A type descends from an interface it implements (directly or through its pointer)
// and from the types it embeds, transitively.
type ancestry struct {
	pkg *types.Package
	typ types.Type
}

func (a ancestry) Descends(name string) bool {
	target := lookupType(a.pkg, name)
	if target == nil {
		return false
	}

	if iface, ok := target.Type().Underlying().(*types.Interface); ok {
		if types.Implements(a.typ, iface) {
			return true
		}

		if _, ok := types.Unalias(a.typ).(*types.Pointer); !ok {
			return types.Implements(types.NewPointer(a.typ), iface)
		}

		return false
	}

	return embeds(a.typ, target.Type(), make(map[types.Type]struct{}))
}

func embeds(typ, target types.Type, seen map[types.Type]struct{}) bool {
	if ptr, ok := types.Unalias(typ).(*types.Pointer); ok {
		typ = ptr.Elem()
	}

	if types.Identical(typ, target) {
		return true
	}

	if _, ok := seen[typ]; ok {
		return false
	}

	seen[typ] = struct{}{}

	st, ok := typ.Underlying().(*types.Struct)
	if !ok {
		return false
	}

	for field := range st.Fields() {
		if field.Embedded() && embeds(field.Type(), target, seen) {
			return true
		}
	}

	return false
}

// lookupType finds the type "path.Name" in pkg or its transitive imports.
func lookupType(pkg *types.Package, name string) *types.TypeName {
	i := strings.LastIndexByte(name, '.')
	if pkg == nil || i < 0 {
		return nil
	}

	path, typ := name[:i], name[i+1:]

	seen := make(map[*types.Package]struct{})
	queue := []*types.Package{pkg}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if _, ok := seen[p]; ok {
			continue
		}

		seen[p] = struct{}{}

		if p.Path() == path {
			obj, _ := p.Scope().Lookup(typ).(*types.TypeName)

			return obj
		}

		queue = append(queue, p.Imports()...)
	}

	return nil
}
