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
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/callguard/internal/syntax"
)

// File is a parsed Java compilation unit.
type File struct {
	name    string
	src     []byte
	tree    *sitter.Tree
	imports []string
}

// Name returns the file name given to [Parser.Parse].
func (f *File) Name() string { return f.name }

// Source returns the parsed source.
func (f *File) Source() []byte { return f.src }

// Root returns the compilation unit node.
func (f *File) Root() syntax.Node { return f.node(f.tree.RootNode()) }

// HasErrors reports whether tree-sitter had to recover from syntax errors.
func (f *File) HasErrors() bool { return f.tree.RootNode().HasError() }

// Close releases the tree. Nodes of this file must not be used afterwards.
func (f *File) Close() { f.tree.Close() }

// Imports returns the imported names in declaration order, static imports included.
func (f *File) Imports() []string { return slices.Clone(f.imports) }

// Imported reports whether name is imported, either directly or by a wildcard import of its package.
func (f *File) Imported(name string) bool {
	pkg, _, _ := cutLast(name, '.')

	for _, imp := range f.imports {
		if imp == name || pkg != "" && imp == pkg+".*" {
			return true
		}
	}

	return false
}

// Position converts a byte offset to a one-based line and column.
func (f *File) Position(offset int) (line, column int) {
	offset = min(max(offset, 0), len(f.src))
	prefix := f.src[:offset]

	line = 1 + strings.Count(string(prefix), "\n")
	if i := strings.LastIndexByte(string(prefix), '\n'); i >= 0 {
		return line, offset - i
	}

	return line, offset + 1
}

func (f *File) collectImports() []string {
	var imports []string

	root := f.tree.RootNode()
	for i := range int(root.NamedChildCount()) {
		decl := root.NamedChild(i)
		if decl == nil || decl.Type() != "import_declaration" {
			continue
		}

		var name strings.Builder

		for _, field := range strings.Fields(strings.TrimSuffix(decl.Content(f.src), ";")) {
			switch field {
			case "import", "static":
			default:
				name.WriteString(field)
			}
		}

		imports = append(imports, name.String())
	}

	return imports
}

func cutLast(s string, sep byte) (before, after string, found bool) {
	if i := strings.LastIndexByte(s, sep); i >= 0 {
		return s[:i], s[i+1:], true
	}

	return "", s, false
}
