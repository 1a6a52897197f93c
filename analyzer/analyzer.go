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

package analyzer

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/callguard/internal/run"
)

const (
	name = "callguard"
	doc  = `callguard reports misused call patterns and suggests fixes`
	url  = "https://pkg.go.dev/fillmore-labs.com/callguard"
)

// New creates a new instance of the callguard analyzer.
// It allows for programmatic configuration using [Option]s,
// which is useful for integration with tools like golangci-lint.
func New(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      url,
		Run:      r.Run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerFlags(r, &a.Flags)

	return a
}

// Analyzer is a pre-configured *[analysis.Analyzer] for detecting misused call patterns.
var Analyzer = New()
