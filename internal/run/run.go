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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/callguard/internal/astutil"
	"fillmore-labs.com/callguard/internal/config"
	"fillmore-labs.com/callguard/internal/engine"
	"fillmore-labs.com/callguard/internal/goast"
	"fillmore-labs.com/callguard/internal/report"
	"fillmore-labs.com/callguard/internal/rule"
)

// ErrResultMissing is returned when a required analyzer result is missing.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the analysis pass.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("callguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	reg, err := r.Registry()
	if err != nil {
		return nil, fmt.Errorf("callguard: %w", err)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "CallGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())
	trace.Log(ctx, "behavior", r.Behavior.String())

	suggestFixes := r.Behavior.Enabled(config.SuggestFixes)

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.Ignored() {
			continue
		}

		tree, ok := goast.NewTree(p.Fset, p.TypesInfo, p.Pkg, f)
		if !ok {
			astutil.InternalError(p, file, "File %s without position info", file.Name.Name)

			continue
		}

		var diagnostics []rule.Diagnostic

		trace.WithRegion(ctx, "RunRules", func() {
			diagnostics, err = engine.Run(tree.Root(), reg)
		})

		if err != nil {
			astutil.InternalErrors(p, file, "Can't construct fix", err)
		}

		diagnostics = withoutNoLint(tree, diagnostics)

		report.Diagnostics(ctx, p, tree, currentFile, diagnostics, suggestFixes)
	}

	return nil, nil
}

// withoutNoLint drops diagnostics inside functions with a nolint doc comment.
func withoutNoLint(tree *goast.Tree, diagnostics []rule.Diagnostic) []rule.Diagnostic {
	return slices.DeleteFunc(diagnostics, func(d rule.Diagnostic) bool {
		c, ok := tree.Cursor(d.Anchor)
		if !ok {
			return false
		}

		for fun := range c.Enclosing((*ast.FuncDecl)(nil)) {
			if astutil.NoLintDoc(fun.Node().(*ast.FuncDecl).Doc) {
				return true
			}
		}

		return false
	})
}
