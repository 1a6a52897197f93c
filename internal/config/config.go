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

package config

import "strings"

// Behavior is a switch controlling how the analyzer runs.
type Behavior uint8

//go:generate go tool stringer -type Behavior -linecomment
const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota // generated

	// SuggestFixes attaches suggested fixes to diagnostics.
	SuggestFixes // fix-suggestions

	// GoTemplate enables the opt-in template rule.
	GoTemplate // go-template
)

// Behaviors lists every [Behavior] in declaration order.
var Behaviors = [...]Behavior{IncludeGenerated, SuggestFixes, GoTemplate}

// Flags is the set of enabled [Behavior] switches.
type Flags struct {
	enabled Behavior
}

// NewFlags returns [Flags] with the given switches enabled.
func NewFlags(enabled ...Behavior) Flags {
	var f Flags
	for _, b := range enabled {
		f.Set(b, true)
	}

	return f
}

// DefaultFlags returns the default [Flags].
func DefaultFlags() Flags {
	return NewFlags(SuggestFixes)
}

// Set enables or disables b.
func (f *Flags) Set(b Behavior, on bool) {
	if on {
		f.enabled |= b
	} else {
		f.enabled &^= b
	}
}

// Enabled reports whether b is enabled.
func (f Flags) Enabled(b Behavior) bool {
	return f.enabled&b != 0
}

// String lists the enabled switches by name, comma-separated.
func (f Flags) String() string {
	var names []string

	for _, b := range Behaviors {
		if f.Enabled(b) {
			names = append(names, b.String())
		}
	}

	return strings.Join(names, ",")
}
