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
	"fmt"

	"golang.org/x/tools/go/analysis"
)

// InternalCategory is the category of diagnostics reporting analyzer failures.
const InternalCategory = "internal"

// InternalError reports a failure of the analyzer itself rather than a finding in the analyzed code.
func InternalError(p *analysis.Pass, rng analysis.Range, format string, args ...any) {
	p.Report(analysis.Diagnostic{
		Pos:      rng.Pos(),
		End:      rng.End(),
		Category: InternalCategory,
		Message:  "Internal Error: " + fmt.Sprintf(format, args...),
	})
}

// InternalErrors reports each error joined into err separately.
func InternalErrors(p *analysis.Pass, rng analysis.Range, context string, err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			InternalErrors(p, rng, context, e)
		}

		return
	}

	InternalError(p, rng, "%s: %v", context, err)
}
