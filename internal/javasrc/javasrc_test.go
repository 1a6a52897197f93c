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

package javasrc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/callguard/internal/chain"
	. "fillmore-labs.com/callguard/internal/javasrc"
	"fillmore-labs.com/callguard/internal/match"
	"fillmore-labs.com/callguard/internal/syntax"
)

const source = `package com.example;

import java.util.concurrent.CompletableFuture;
import io.vavr.control.*;
import static java.util.Objects.requireNonNull;

class Example {
    void run(Runnable work) {
        CompletableFuture.runAsync(() -> work.run());
        CompletableFuture.runAsync(work, pool);
        String a = Try.of(() -> "a").getOrNull();
        String b = Try.of(() -> "b").onFailure(e -> log(e)).map(String::trim).getOrNull();
        String c = ((Try<String>) (Try.of(() -> "c").recover(e -> "d"))).getOrNull();
        Object d = Try.of(() -> "d").toEither().getOrNull();
        Object e = Try.of(() -> "e").toEither(x).getOrNull();
    }
}
`

func parse(t *testing.T, src string) *File {
	t.Helper()

	f, err := NewParser().Parse(t.Context(), "Example.java", []byte(src))
	require.NoError(t, err)
	t.Cleanup(f.Close)

	require.False(t, f.HasErrors(), "source has syntax errors")

	return f
}

func calls(f *File, name string) []syntax.CallSite {
	var sites []syntax.CallSite

	for n := range syntax.Preorder(f.Root()) {
		if site, ok := syntax.SiteOf(n); ok && site.MethodName() == name {
			sites = append(sites, site)
		}
	}

	return sites
}

func TestStaticCall(t *testing.T) {
	t.Parallel()

	f := parse(t, source)

	sites := calls(f, "runAsync")
	require.Len(t, sites, 2)

	site := sites[0]

	callee, ok := site.Callee.(syntax.Unresolved)
	require.True(t, ok, "callee should be unresolved")

	assert.Equal(t, "CompletableFuture.runAsync", callee.Spelling)
	assert.Equal(t, "CompletableFuture", callee.Qualifier)
	assert.Equal(t, syntax.QualifierType, callee.QualifierKind)
	assert.Nil(t, site.Receiver)

	require.Len(t, site.Args, 1)
	assert.Equal(t, "() -> work.run()", site.Args[0].Text())
	assert.Equal(t, "(() -> work.run())", string(f.Source()[site.ArgList.Start:site.ArgList.End]))

	m := match.OnClass("java.util.concurrent.CompletableFuture").Named("runAsync").WithParameters("java.lang.Runnable")
	assert.True(t, m.Matches(sites[0]))
	assert.False(t, m.Matches(sites[1]), "two argument overload should not match")
}

func TestChain(t *testing.T) {
	t.Parallel()

	f := parse(t, source)
	policy := chain.MustPolicy("TryFailureHandling",
		[]string{"onFailure", "orElseRun", "recover", "recoverWith", "fold", "get", "getOrElseThrow", "failed"},
		[]string{"toEither"})

	sites := calls(f, "getOrNull")
	require.Len(t, sites, 5)

	tests := []struct {
		name    string
		handled bool
	}{
		{"bare", false},
		{"handler_before_map", true},
		{"through_cast_and_parens", true},
		{"zero_arg_special_case", true},
		{"special_case_with_argument", false},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			site := sites[i]
			require.NotNil(t, site.Receiver)
			assert.Equal(t, syntax.KindCall, syntax.Unwrap(site.Receiver).Kind())
			assert.Equal(t, tt.handled, policy.Handled(site.Receiver))
		})
	}
}

func TestWrappers(t *testing.T) {
	t.Parallel()

	f := parse(t, source)

	var kinds []syntax.Kind

	for n := range syntax.Preorder(f.Root()) {
		if k := n.Kind(); k == syntax.KindParen || k == syntax.KindCast {
			kinds = append(kinds, k)
		}
	}

	assert.Equal(t, []syntax.Kind{syntax.KindParen, syntax.KindCast, syntax.KindParen}, kinds)
}

func TestImports(t *testing.T) {
	t.Parallel()

	f := parse(t, source)

	assert.Equal(t, []string{
		"java.util.concurrent.CompletableFuture",
		"io.vavr.control.*",
		"java.util.Objects.requireNonNull",
	}, f.Imports())

	assert.True(t, f.Imported("java.util.concurrent.CompletableFuture"))
	assert.True(t, f.Imported("io.vavr.control.Try"))
	assert.False(t, f.Imported("com.pear.availabilities.Pools"))
}

func TestPosition(t *testing.T) {
	t.Parallel()

	f := parse(t, "class A {\n  void f() {}\n}\n")

	line, col := f.Position(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = f.Position(12)
	assert.Equal(t, 2, line)
	assert.Equal(t, 3, col)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := NewParser(WithMaxFileSize(4)).Parse(t.Context(), "A.java", []byte("class A {}"))
	require.ErrorIs(t, err, ErrFileTooLarge)

	_, err = NewParser().Parse(t.Context(), "A.java", []byte{0xff, 0xfe})
	require.ErrorIs(t, err, ErrInvalidContent)
}
