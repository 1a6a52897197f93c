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

package analyzer_test

import (
	"log/slog"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	. "fillmore-labs.com/callguard/analyzer"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tests := []struct {
		name    string
		dir     string
		options Option
		fix     bool
	}{
		{
			name: "Signal",
			dir:  "./signal",
			fix:  true,
		},
		{
			name:    "Template",
			dir:     "./template",
			options: WithGoTemplate(true),
			fix:     true,
		},
		{
			name:    "NoFix",
			dir:     "./nofix",
			options: WithSuggestFixes(false),
		},
		{
			name:    "Rules",
			dir:     "./rules",
			options: Options{WithRuleFiles("testdata/rules/rules.yaml"), WithDisabled("TemplateMissingKey"), WithGoTemplate(true)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if a := New(tt.options); tt.fix {
				analysistest.RunWithSuggestedFixes(t, testdata, a, tt.dir)
			} else {
				analysistest.Run(t, testdata, a, tt.dir)
			}
		})
	}
}

func TestFlags(t *testing.T) {
	t.Parallel()

	a := New()

	for _, name := range []string{"generated", "fix-suggestions", "go-template", "rules", "disable"} {
		if a.Flags.Lookup(name) == nil {
			t.Errorf("Missing flag -%s", name)
		}
	}

	if err := a.Flags.Parse([]string{"-go-template", "-disable=SignalNotifyAll"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	analysistest.Run(t, analysistest.TestData(), a, "./nofix/quiet")
}

func TestLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithGenerated(true), nil, Options{WithDisabled("A", "B")}}

	var buf strings.Builder

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	}))
	logger.Info("configured", "options", opts)

	const want = `level=INFO msg=configured options.generated=true options.nil=<nil> options.disable="[A B]"` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
