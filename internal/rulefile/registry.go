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

package rulefile

import (
	"slices"

	"fillmore-labs.com/callguard/internal/rule"
)

// NewRegistry registers builtin followed by the rules of the named files, then
// disables the rules with the given IDs.
//
// Unknown IDs in disabled fail with [rule.ErrUnknownRule].
func NewRegistry(builtin []rule.Rule, files, disabled []string) (*rule.Registry, error) {
	rules := slices.Clone(builtin)

	for _, name := range files {
		loaded, err := LoadFile(name)
		if err != nil {
			return nil, err
		}

		rules = append(rules, loaded...)
	}

	reg, err := rule.NewRegistry(rules...)
	if err != nil {
		return nil, err
	}

	return reg.Disable(disabled...)
}
