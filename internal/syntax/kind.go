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

package syntax

// Kind classifies a [Node].
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// KindOther is any node the engine does not need to distinguish.
	KindOther Kind = iota // other

	// KindCall is a method or function invocation.
	KindCall // call

	// KindMember is a member access without invocation.
	KindMember // member

	// KindParen is a parenthesized expression.
	KindParen // paren

	// KindCast is a type cast, conversion or assertion wrapping a single expression.
	KindCast // cast
)

// Wrapper reports whether nodes of this kind are transparent wrappers around an inner expression.
func (i Kind) Wrapper() bool { return i == KindParen || i == KindCast }
