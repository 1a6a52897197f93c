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

// Package report turns rule diagnostics into host output.
package report

import (
	"context"
	"fmt"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/callguard/internal/astutil"
	"fillmore-labs.com/callguard/internal/goast"
	"fillmore-labs.com/callguard/internal/rule"
)

// Diagnostics reports the findings of one file to the analysis pass.
func Diagnostics(ctx context.Context, p *analysis.Pass, tree *goast.Tree, currentFile astutil.CurrentFile, diagnostics []rule.Diagnostic, suggestFixes bool) {
	if len(diagnostics) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "ReportDiagnostics").End()

	for _, d := range diagnostics {
		span := d.Anchor.Span()
		pos, end := tree.Pos(span.Start), tree.Pos(span.End)

		if currentFile.NoLintComment(pos) {
			continue
		}

		diagnostic := analysis.Diagnostic{
			Pos:      pos,
			End:      end,
			Category: d.RuleID,
			Message:  Message(d),
		}

		if suggestFixes && d.Fix != nil {
			if edits := createEdits(tree, currentFile, *d.Fix); len(edits) > 0 {
				diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: d.Message, TextEdits: edits}}
			}
		}

		p.Report(diagnostic)
	}
}

// Message returns the diagnostic message tagged with the rule ID.
func Message(d rule.Diagnostic) string {
	return fmt.Sprintf("%s (cg:%s)", d.Message, d.RuleID)
}
