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

package rule

import "encoding/json"

// Severity indicates how severe a finding is.
type Severity uint8

//go:generate go tool stringer -type Severity -linecomment
const (
	// Warning flags a likely problem.
	Warning Severity = iota // WARNING

	// Error flags a definite misuse.
	Error // ERROR
)

// ParseSeverity converts a configuration string into a [Severity].
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case Warning.String():
		return Warning, true

	case Error.String():
		return Error, true

	default:
		return Warning, false
	}
}

// MarshalJSON renders the severity by name.
func (i Severity) MarshalJSON() ([]byte, error) { return json.Marshal(i.String()) }
