// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// linterName is the name used in nolint directives.
const linterName = "callguard"

// CurrentFile holds a Go file under analysis together with its nolint directives.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
	nolint    map[int]struct{} // lines carrying a nolint directive
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	nolint := make(map[int]struct{})

	for _, group := range file.Comments {
		for _, c := range group.List {
			if CommentHasNoLint(c) {
				nolint[handle.Line(c.Slash)] = struct{}{}
			}
		}
	}

	return CurrentFile{file: file, handle: handle, generated: ast.IsGenerated(file), nolint: nolint}
}

// Valid reports whether the file belongs to the file set it was created with.
func (c CurrentFile) Valid() bool { return c.handle != nil }

// Generated reports whether the file carries a "Code generated" header.
func (c CurrentFile) Generated() bool { return c.generated }

// File returns the syntax tree of the file.
func (c CurrentFile) File() *ast.File { return c.file }

// Ignored reports whether the whole file is excluded by a nolint directive on its package doc.
func (c CurrentFile) Ignored() bool { return c.file != nil && NoLintDoc(c.file.Doc) }

// NoLintComment reports whether the line containing pos carries a //nolint:callguard comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.handle == nil || !pos.IsValid() {
		return false
	}

	_, ok := c.nolint[c.handle.Line(pos)]

	return ok
}

// NoLintDoc reports whether the last line of a doc comment is a //nolint:callguard directive.
func NoLintDoc(doc *ast.CommentGroup) bool {
	return doc != nil && CommentHasNoLint(doc.List[len(doc.List)-1])
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([\w,-]+)`)

// CommentHasNoLint reports whether a comment is a nolint directive naming callguard or all.
func CommentHasNoLint(comment *ast.Comment) bool {
	m := nolintPattern.FindStringSubmatch(comment.Text)
	if m == nil {
		return false
	}

	return slices.ContainsFunc(strings.Split(m[1], ","), func(name string) bool {
		name = strings.ToLower(strings.TrimSpace(name))

		return name == linterName || name == "all"
	})
}
