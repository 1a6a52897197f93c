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

package match

// OwnerMode selects how the owner type of a callee is compared.
type OwnerMode uint8

//go:generate go tool stringer -type OwnerMode -linecomment
const (
	// ExactClass requires the owner to be exactly the named type.
	ExactClass OwnerMode = iota // exact

	// DescendantOf accepts the named type and all types that transitively extend or implement it.
	DescendantOf // descendant
)

// ParseOwnerMode converts a configuration string into an [OwnerMode].
func ParseOwnerMode(s string) (OwnerMode, bool) {
	switch s {
	case ExactClass.String():
		return ExactClass, true

	case DescendantOf.String():
		return DescendantOf, true

	default:
		return ExactClass, false
	}
}
