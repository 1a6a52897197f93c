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

package report

import (
	"go/ast"
	"go/token"
	"strconv"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/callguard/internal/astutil"
	"fillmore-labs.com/callguard/internal/fix"
	"fillmore-labs.com/callguard/internal/goast"
)

func createEdits(tree *goast.Tree, currentFile astutil.CurrentFile, f fix.Fix) []analysis.TextEdit {
	edits := make([]analysis.TextEdit, 0, f.Len())

	for _, e := range f.Edits() {
		switch e.Kind {
		case fix.InsertAfter:
			pos := tree.Pos(e.Anchor.End)
			edits = append(edits, analysis.TextEdit{Pos: pos, End: pos, NewText: []byte(e.Payload)})

		case fix.AddImport:
			if edit, ok := ImportEdit(currentFile.File(), e.Payload); ok {
				edits = append(edits, edit)
			}
		}
	}

	return edits
}

// ImportEdit returns the edit adding an import of path to file.
// It returns false when the package is already imported under its own name.
func ImportEdit(file *ast.File, path string) (analysis.TextEdit, bool) {
	if file == nil || Imported(file, path) {
		return analysis.TextEdit{}, false
	}

	quoted := strconv.Quote(path)

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.IMPORT {
			break // imports precede all other declarations
		}

		if gen.Lparen.IsValid() {
			pos := gen.Lparen + 1

			return analysis.TextEdit{Pos: pos, End: pos, NewText: []byte("\n\t" + quoted)}, true
		}

		// single import without parentheses
		pos := gen.Pos()

		return analysis.TextEdit{Pos: pos, End: pos, NewText: []byte("import " + quoted + "\n")}, true
	}

	pos := file.Name.End()

	return analysis.TextEdit{Pos: pos, End: pos, NewText: []byte("\n\nimport " + quoted)}, true
}

// Imported reports whether file imports path without renaming it.
func Imported(file *ast.File, path string) bool {
	for _, spec := range file.Imports {
		if spec.Name != nil {
			continue
		}

		if p, err := strconv.Unquote(spec.Path.Value); err == nil && p == path {
			return true
		}
	}

	return false
}
