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

package astutil_test

import (
	"go/ast"
	"strings"
	"testing"

	. "fillmore-labs.com/callguard/internal/astutil"
	"fillmore-labs.com/callguard/internal/testsource"
)

func TestNoLint(t *testing.T) {
	t.Parallel()

	const src = `// Code generated by test. DO NOT EDIT.

package test

import "fmt"

//nolint:callguard
func a() {
	fmt.Println("a") //nolint:errcheck,callguard
	fmt.Println("b") // nolint:all
	fmt.Println("c") //nolint:errcheck
	fmt.Println("d")
}
`

	fset, f := testsource.Parse(t, src)
	file, _ := f.Node().(*ast.File)

	cf := NewCurrentFile(fset, file)
	if !cf.Valid() {
		t.Fatal("Invalid file")
	}

	if !cf.Generated() {
		t.Error("Expected generated file")
	}

	if cf.File() != file {
		t.Error("Unexpected file")
	}

	if cf.Ignored() {
		t.Error("Expected file without package nolint directive")
	}

	fn, _ := file.Decls[1].(*ast.FuncDecl)
	if !NoLintDoc(fn.Doc) {
		t.Error("Expected nolint function doc")
	}

	tests := []struct {
		call string
		want bool
	}{
		{`fmt.Println("a")`, true},
		{`fmt.Println("b")`, true},
		{`fmt.Println("c")`, false},
		{`fmt.Println("d")`, false},
		{`func a`, false},
	}

	handle := fset.File(file.FileStart)

	for _, tt := range tests {
		t.Run(tt.call, func(t *testing.T) {
			t.Parallel()

			pos := handle.Pos(strings.Index(src, tt.call))
			if got := cf.NoLintComment(pos); got != tt.want {
				t.Errorf("Got %t, expected %t", got, tt.want)
			}
		})
	}
}

func TestIgnoredFile(t *testing.T) {
	t.Parallel()

	const src = `//nolint:callguard
package test
`

	fset, f := testsource.Parse(t, src)
	file, _ := f.Node().(*ast.File)

	if cf := NewCurrentFile(fset, file); !cf.Ignored() || cf.Generated() {
		t.Error("Expected ignored, handwritten file")
	}

	if cf := NewCurrentFile(fset, nil); cf.Valid() || cf.Ignored() || cf.NoLintComment(file.Package) {
		t.Error("Expected invalid file")
	}
}
