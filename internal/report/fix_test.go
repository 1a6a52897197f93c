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

package report_test

import (
	"go/ast"
	"testing"

	. "fillmore-labs.com/callguard/internal/report"
	"fillmore-labs.com/callguard/internal/testsource"
)

func TestImportEdit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string // empty when no edit is expected
	}{
		{
			name: "Grouped",
			src:  "package test\n\nimport (\n\t\"os/signal\"\n)\n",
			want: "package test\n\nimport (\n\t\"os\"\n\t\"os/signal\"\n)\n",
		},
		{
			name: "Single",
			src:  "package test\n\nimport \"os/signal\"\n",
			want: "package test\n\nimport \"os\"\nimport \"os/signal\"\n",
		},
		{
			name: "None",
			src:  "package test\n\nvar x = 1\n",
			want: "package test\n\nimport \"os\"\n\nvar x = 1\n",
		},
		{
			name: "Present",
			src:  "package test\n\nimport (\n\t\"fmt\"\n\t\"os\"\n)\n",
		},
		{
			name: "Renamed",
			src:  "package test\n\nimport o \"os\"\n",
			want: "package test\n\nimport \"os\"\nimport o \"os\"\n",
		},
		{
			name: "Blank",
			src:  "package test\n\nimport _ \"os\"\n",
			want: "package test\n\nimport \"os\"\nimport _ \"os\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f := testsource.Parse(t, tt.src)
			file, _ := f.Node().(*ast.File)

			edit, ok := ImportEdit(file, "os")
			if !ok {
				if tt.want != "" {
					t.Fatal("Expected an import edit")
				}

				return
			}

			if tt.want == "" {
				t.Fatalf("Unexpected import edit %q", edit.NewText)
			}

			handle := fset.File(file.FileStart)
			start, end := handle.Offset(edit.Pos), handle.Offset(edit.End)

			if got := tt.src[:start] + string(edit.NewText) + tt.src[end:]; got != tt.want {
				t.Errorf("Got %q, expected %q", got, tt.want)
			}
		})
	}
}
