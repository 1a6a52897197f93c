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

package rule_test

import (
	"errors"
	"slices"
	"testing"

	"fillmore-labs.com/callguard/internal/chain"
	"fillmore-labs.com/callguard/internal/fix"
	"fillmore-labs.com/callguard/internal/match"
	. "fillmore-labs.com/callguard/internal/rule"
	"fillmore-labs.com/callguard/internal/syntax"
	st "fillmore-labs.com/callguard/internal/syntax/syntaxtest"
)

var (
	getOrNull = Rule{
		ID:       "TryGetOrNull",
		Severity: Warning,
		Matcher:  match.OnDescendantOf("io.vavr.control.Try").Named("getOrNull"),
		Policy:   chain.MustPolicy("failure", []string{"onFailure"}, []string{"toEither"}),
		Message:  "{{.Method}} hides failures",
	}

	runAsync = Rule{
		ID:       "MissingExecutor",
		Severity: Error,
		Matcher:  match.OnClass("java.util.concurrent.CompletableFuture").Named("runAsync").WithParameters("java.lang.Runnable"),
		Message:  "Use the 2-arg overload with an explicit Executor.",
		Fix:      fix.AppendArgument{Text: "executor", Imports: []string{"com.example.Pools"}},
	}
)

func registry(t *testing.T, rules ...Rule) *Registry {
	t.Helper()

	reg, err := NewRegistry(rules...)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	return reg
}

func first(reg *Registry) *Rule {
	for r := range reg.Rules() {
		return &r
	}

	return nil
}

func TestEvaluateChain(t *testing.T) {
	t.Parallel()

	r := first(registry(t, getOrNull))

	tests := []struct {
		name string
		call *st.Node
		want bool
	}{
		{"Bare", st.Call(st.Ident("tryValue"), "getOrNull"), true},
		{"Handled", st.Call(st.Call(st.Ident("tryValue"), "onFailure", st.Ident("logger")), "getOrNull"), false},
		{"OtherMethod", st.Call(st.Ident("tryValue"), "get"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			site, _ := syntax.SiteOf(st.Root(tt.call))

			d, ok, err := r.Evaluate(site)
			if err != nil {
				t.Fatalf("Evaluate failed: %v", err)
			}

			if ok != tt.want {
				t.Fatalf("Evaluate(%q) fired = %v, want %v", tt.call.Text(), ok, tt.want)
			}

			if !ok {
				return
			}

			if d.Severity != Warning || d.Fix != nil || d.Message != "getOrNull hides failures" || d.Anchor != tt.call {
				t.Errorf("Got diagnostic %+v", d)
			}
		})
	}
}

func TestEvaluateFix(t *testing.T) {
	t.Parallel()

	r := first(registry(t, runAsync))

	task := st.Ident("task")
	call := st.Root(st.StaticCall("CompletableFuture", "runAsync", task))

	d, ok, err := r.Evaluate(call.Call())
	if err != nil || !ok {
		t.Fatalf("Evaluate() = %v, %v", ok, err)
	}

	if d.Severity != Error || d.RuleID != "MissingExecutor" {
		t.Errorf("Got diagnostic %+v", d)
	}

	if d.Fix == nil {
		t.Fatal("Expected fix")
	}

	want := []fix.TextEdit{
		{Anchor: task.Span(), Kind: fix.InsertAfter, Payload: ", executor"},
		{Kind: fix.AddImport, Payload: "com.example.Pools"},
	}
	if got := d.Fix.Edits(); !slices.Equal(got, want) {
		t.Errorf("Got edits %v, want %v", got, want)
	}

	two := st.Root(st.StaticCall("CompletableFuture", "runAsync", st.Ident("task"), st.Ident("executor")))
	if _, ok, _ := r.Evaluate(two.Call()); ok {
		t.Error("Two-argument overload must not match")
	}
}

type twice struct{}

func (twice) Apply(site syntax.CallSite, b *fix.Builder) {
	fix.AppendArgument{Text: "x"}.Apply(site, b)
	fix.AppendArgument{Text: "x"}.Apply(site, b)
}

func TestEvaluateOverlap(t *testing.T) {
	t.Parallel()

	broken := runAsync
	broken.ID = "Broken"
	broken.Fix = twice{}

	r := first(registry(t, broken))

	call := st.Root(st.StaticCall("CompletableFuture", "runAsync", st.Ident("task")))

	d, ok, err := r.Evaluate(call.Call())
	if !errors.Is(err, fix.ErrOverlappingEdit) {
		t.Errorf("Got error %v, want %v", err, fix.ErrOverlappingEdit)
	}

	if !ok || d.Fix != nil {
		t.Errorf("Expected diagnostic without fix, got %v %+v", ok, d)
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	noID := runAsync
	noID.ID = ""

	noMatcher := runAsync
	noMatcher.ID = "NoMatcher"
	noMatcher.Matcher = nil

	badPolicy := getOrNull
	badPolicy.ID = "BadPolicy"
	badPolicy.Policy = &chain.Policy{}

	badMessage := runAsync
	badMessage.ID = "BadMessage"
	badMessage.Message = "{{.Method"

	unknownField := runAsync
	unknownField.ID = "UnknownField"
	unknownField.Message = "bad {{.Nope}} field"

	tests := []struct {
		name  string
		rules []Rule
		want  error
	}{
		{"NoID", []Rule{noID}, ErrInvalidRule},
		{"NoMatcher", []Rule{noMatcher}, ErrInvalidRule},
		{"BadPolicy", []Rule{badPolicy}, chain.ErrMalformedPolicy},
		{"BadMessage", []Rule{badMessage}, ErrInvalidRule},
		{"UnknownField", []Rule{unknownField}, ErrInvalidRule},
		{"Duplicate", []Rule{runAsync, runAsync}, ErrDuplicateRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := NewRegistry(tt.rules...); !errors.Is(err, tt.want) {
				t.Errorf("NewRegistry() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRegistryOrder(t *testing.T) {
	t.Parallel()

	reg := registry(t, runAsync, getOrNull)

	if got, want := reg.IDs(), []string{"MissingExecutor", "TryGetOrNull"}; !slices.Equal(got, want) {
		t.Errorf("IDs() = %q, want %q", got, want)
	}

	if got := reg.Without("MissingExecutor").IDs(); !slices.Equal(got, []string{"TryGetOrNull"}) {
		t.Errorf("Without() = %q", got)
	}

	if reg.Len() != 2 {
		t.Errorf("Without() modified the registry: %q", reg.IDs())
	}

	ext, err := reg.Extend(Rule{ID: "Extra", Matcher: match.Arity(0), Message: "m"})
	if err != nil {
		t.Fatalf("Extend failed: %v", err)
	}

	if got := ext.IDs(); !slices.Equal(got, []string{"MissingExecutor", "TryGetOrNull", "Extra"}) {
		t.Errorf("Extend() = %q", got)
	}

	if _, err := reg.Extend(runAsync); !errors.Is(err, ErrDuplicateRule) {
		t.Errorf("Extend() error = %v, want %v", err, ErrDuplicateRule)
	}
}

func TestDisable(t *testing.T) {
	t.Parallel()

	reg := registry(t, runAsync, getOrNull)

	disabled, err := reg.Disable("TryGetOrNull")
	if err != nil {
		t.Fatalf("Disable failed: %v", err)
	}

	if got := disabled.IDs(); !slices.Equal(got, []string{"MissingExecutor"}) {
		t.Errorf("Disable() = %q", got)
	}

	if _, err := reg.Disable("MissingExecutor", "Nope"); !errors.Is(err, ErrUnknownRule) {
		t.Errorf("Disable() error = %v, want %v", err, ErrUnknownRule)
	}
}

func TestRulesAreCopies(t *testing.T) {
	t.Parallel()

	reg := registry(t, runAsync)

	for r := range reg.Rules() {
		r.ID = "Changed"
		r.Severity = Warning
		r.Matcher = nil
	}

	r := first(reg)
	if r.ID != "MissingExecutor" || r.Severity != Error || r.Matcher == nil {
		t.Errorf("Registered rule was modified: %+v", *r)
	}
}
