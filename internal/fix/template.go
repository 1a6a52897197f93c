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

package fix

import "fillmore-labs.com/callguard/internal/syntax"

// Template describes how to derive edits for a call site.
type Template interface {
	Apply(site syntax.CallSite, b *Builder)
}

// AppendArgument appends Text as a new last argument and adds Imports.
type AppendArgument struct {
	Text    string
	Imports []string
}

// Apply implements [Template].
func (a AppendArgument) Apply(site syntax.CallSite, b *Builder) {
	if last, ok := site.LastArg(); ok {
		b.InsertAfter(last.Span(), ", "+a.Text)
	} else {
		// right after the opening parenthesis
		open := syntax.Span{Start: site.ArgList.Start, End: site.ArgList.Start + 1}
		b.InsertAfter(open, a.Text)
	}

	for _, path := range a.Imports {
		b.AddImport(path)
	}
}

// InsertAfterReceiver inserts Text right after the receiver of the call and adds Imports.
// Calls without receiver are left unchanged.
type InsertAfterReceiver struct {
	Text    string
	Imports []string
}

// Apply implements [Template].
func (a InsertAfterReceiver) Apply(site syntax.CallSite, b *Builder) {
	if site.Receiver == nil {
		return
	}

	b.InsertAfter(site.Receiver.Span(), a.Text)

	for _, path := range a.Imports {
		b.AddImport(path)
	}
}
