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

package rulefile_test

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/callguard/internal/chain"
	"fillmore-labs.com/callguard/internal/engine"
	"fillmore-labs.com/callguard/internal/fix"
	"fillmore-labs.com/callguard/internal/javasrc"
	"fillmore-labs.com/callguard/internal/match"
	"fillmore-labs.com/callguard/internal/rule"
	. "fillmore-labs.com/callguard/internal/rulefile"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	rules, err := LoadFile("testdata/rules.yaml")
	require.NoError(t, err)
	require.Len(t, rules, 3)

	assert.Equal(t, "NoCommonPool", rules[0].ID)
	assert.Equal(t, rule.Error, rules[0].Severity)
	assert.Nil(t, rules[0].Policy)
	assert.Nil(t, rules[0].Fix)

	require.NotNil(t, rules[1].Policy)
	assert.Equal(t, "OptionalGetWithoutCheckHandlers", rules[1].Policy.Name())
	assert.Equal(t, []string{"filter", "or"}, rules[1].Policy.Handlers())
	assert.Equal(t, []string{"stream"}, rules[1].Policy.ZeroArg())

	assert.Equal(t, fix.AppendArgument{Text: `threads.named("worker")`, Imports: []string{"com.example.threads.Threads"}}, rules[2].Fix)
}

func TestRulesOnSource(t *testing.T) {
	t.Parallel()

	rules, err := LoadFile("testdata/rules.yaml")
	require.NoError(t, err)

	reg, err := rule.NewRegistry(rules...)
	require.NoError(t, err)

	const src = `class A {
    void f(Optional<String> o) {
        ForkJoinPool.commonPool().submit(task);
        ForkJoinPool.commonPool(1);
        o.get();
        o.filter(s -> !s.isEmpty()).get();
        Executors.newFixedThreadPool(4);
        Executors.newCachedThreadPool();
    }
}
`

	f, err := javasrc.NewParser().Parse(t.Context(), "A.java", []byte(src))
	require.NoError(t, err)
	defer f.Close()

	diags, err := engine.Run(f.Root(), reg)
	require.NoError(t, err)

	var got []string
	for _, d := range diags {
		got = append(got, d.RuleID+": "+d.Message)
	}

	assert.Equal(t, []string{
		"NoCommonPool: commonPool returns the shared pool",
		"OptionalGetWithoutCheck: Optional.get() without a preceding filter or check",
		"ExecutorServiceWithoutThreadFactory: Executors.newFixedThreadPool with 1 argument(s) uses default thread names",
		"ExecutorServiceWithoutThreadFactory: Executors.newCachedThreadPool with 0 argument(s) uses default thread names",
	}, got)

	last := diags[len(diags)-1]
	require.NotNil(t, last.Fix)
	edits := last.Fix.Edits()
	require.Len(t, edits, 2)
	assert.Equal(t, `threads.named("worker")`, edits[0].Payload, "empty argument list gets no separator")
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"empty", ""},
		{"no_rules", "rules: []"},
		{"unknown_field", "rules:\n  - id: A\n    severity: ERROR\n    message: m\n    colour: red\n    match: [{owner: T, method: m}]"},
		{"bad_severity", "rules:\n  - id: A\n    severity: INFO\n    message: m\n    match: [{owner: T, method: m}]"},
		{"missing_method", "rules:\n  - id: A\n    severity: ERROR\n    message: m\n    match: [{owner: T}]"},
		{"bad_mode", "rules:\n  - id: A\n    severity: ERROR\n    message: m\n    match: [{owner: T, method: m, mode: sibling}]"},
		{"negative_arguments", "rules:\n  - id: A\n    severity: ERROR\n    message: m\n    match: [{owner: T, method: m, arguments: -1}]"},
		{"empty_handlers", "rules:\n  - id: A\n    severity: ERROR\n    message: m\n    match: [{owner: T, method: m}]\n    chain: {handlers: []}"},
		{"two_fixes", "rules:\n  - id: A\n    severity: ERROR\n    message: m\n    match: [{owner: T, method: m}]\n    fix: {append-argument: x, insert-after-receiver: y}"},
		{"unknown_message_field", "rules:\n  - id: A\n    severity: ERROR\n    message: \"bad {{.Nope}} field\"\n    match: [{owner: T, method: m}]"},
		{"duplicate_id", "rules:\n  - id: A\n    severity: ERROR\n    message: m\n    match: [{owner: T, method: m}]\n  - id: A\n    severity: ERROR\n    message: n\n    match: [{owner: T, method: n}]"},
		{"no_fix_text", "rules:\n  - id: A\n    severity: ERROR\n    message: m\n    match: [{owner: T, method: m}]\n    fix: {imports: [a.B]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(strings.NewReader(tt.yaml))
			require.ErrorIs(t, err, ErrInvalidRuleFile)
		})
	}
}

func TestUnknownMessageField(t *testing.T) {
	t.Parallel()

	_, err := Load(strings.NewReader("rules:\n  - id: A\n    severity: ERROR\n    message: \"{{.Nope}}\"\n    match: [{owner: T, method: m}]"))
	require.ErrorIs(t, err, ErrInvalidRuleFile)
	require.ErrorIs(t, err, rule.ErrInvalidRule)
	assert.ErrorContains(t, err, "Nope")
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	builtin := make([]rule.Rule, 1, 4)
	builtin[0] = rule.Rule{ID: "Builtin", Matcher: match.Arity(0), Message: "m"}

	reg, err := NewRegistry(builtin, []string{"testdata/rules.yaml"}, []string{"NoCommonPool"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Builtin", "OptionalGetWithoutCheck", "ExecutorServiceWithoutThreadFactory"}, reg.IDs())
	assert.Len(t, builtin, 1)
	assert.Empty(t, builtin[:cap(builtin)][1].ID, "builtin backing array modified")

	_, err = NewRegistry(builtin, nil, []string{"Builtin", "NoCommonPool"})
	require.ErrorIs(t, err, rule.ErrUnknownRule)

	_, err = NewRegistry(builtin, []string{"testdata/missing.yaml"}, nil)
	require.Error(t, err)

	_, err = NewRegistry(append(builtin, builtin[0]), nil, nil)
	require.ErrorIs(t, err, rule.ErrDuplicateRule)
}

func TestValidationDetails(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("rules:\n  - id: A\n    severity: ERROR\n    match: [{owner: T, method: m}]"))

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "Message", verrs[0].Field())
	assert.Equal(t, "required", verrs[0].Tag())
}

func TestBlankHandler(t *testing.T) {
	t.Parallel()

	f := File{Rules: []Spec{{
		ID:       "A",
		Severity: "ERROR",
		Message:  "m",
		Match:    []MatchSpec{{Owner: "T", Method: "m"}},
		Chain:    &ChainSpec{Handlers: []string{" "}},
	}}}

	_, err := f.Build()
	require.ErrorIs(t, err, chain.ErrMalformedPolicy)
}
