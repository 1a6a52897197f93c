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

// Package engine evaluates a rule registry over syntax trees.
package engine

import (
	"context"
	"errors"
	"runtime/trace"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/callguard/internal/rule"
	"fillmore-labs.com/callguard/internal/syntax"
)

// Run visits every call node of the tree once, in pre-order from left to right, and
// evaluates all rules in registration order against it.
//
// The returned error joins fix construction failures; the affected diagnostics are
// included without a fix.
func Run(root syntax.Node, reg *rule.Registry) ([]rule.Diagnostic, error) {
	var (
		diagnostics []rule.Diagnostic
		errs        []error
	)

	for n := range syntax.Preorder(root) {
		site, ok := syntax.SiteOf(n)
		if !ok {
			continue
		}

		for r := range reg.Rules() {
			d, fired, err := r.Evaluate(site)
			if err != nil {
				errs = append(errs, err)
			}

			if fired {
				diagnostics = append(diagnostics, d)
			}
		}
	}

	return diagnostics, errors.Join(errs...)
}

// Tree is a named syntax tree, typically one source file.
type Tree struct {
	Name string
	Root syntax.Node
}

// Result holds the outcome of analyzing one [Tree].
type Result struct {
	Name        string
	Diagnostics []rule.Diagnostic
	Err         error
}

// RunAll analyzes independent trees concurrently, with at most workers trees in flight
// (unbounded when workers is not positive).
//
// Results are returned in the order of trees. Once ctx is done no further trees are
// started and the context error is returned together with the finished results.
func RunAll(ctx context.Context, trees []Tree, reg *rule.Registry, workers int) ([]Result, error) {
	ctx, task := trace.NewTask(ctx, "RunAll")
	defer task.End()

	results := make([]Result, len(trees))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, tree := range trees {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			trace.WithRegion(gctx, "Run", func() {
				diagnostics, err := Run(tree.Root, reg)
				results[i] = Result{Name: tree.Name, Diagnostics: diagnostics, Err: err}
			})

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, ctx.Err()
}
