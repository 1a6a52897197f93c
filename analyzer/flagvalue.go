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

package analyzer

import (
	"flag"
	"strconv"
	"strings"

	"fillmore-labs.com/callguard/internal/config"
)

// NewBehaviorValue returns a boolean [flag.Getter] toggling b in flags.
func NewBehaviorValue(flags *config.Flags, b config.Behavior) flag.Getter {
	return behaviorValue{flags: flags, behavior: b}
}

type behaviorValue struct {
	flags    *config.Flags
	behavior config.Behavior
}

// Set implements [flag.Value].
func (f behaviorValue) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.behavior, b)

	return nil
}

// String implements [flag.Value].
func (f behaviorValue) String() string {
	return strconv.FormatBool(f.enabled())
}

// Get implements [flag.Getter].
func (f behaviorValue) Get() any {
	return f.enabled()
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f behaviorValue) IsBoolFlag() bool { return true }

// enabled guards against the zero value the flag package creates for usage output.
func (f behaviorValue) enabled() bool {
	return f.flags != nil && f.flags.Enabled(f.behavior)
}

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On", "full", "Full":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

// NewListValue returns a [flag.Getter] collecting comma-separated values into list.
// Repeating the flag appends to the list.
func NewListValue(list *[]string) flag.Getter { return listValue{list: list} }

type listValue struct{ list *[]string }

func (l listValue) Set(s string) error {
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			*l.list = append(*l.list, item)
		}
	}

	return nil
}

func (l listValue) String() string {
	if l.list == nil {
		return ""
	}

	return strings.Join(*l.list, ",")
}

func (l listValue) Get() any {
	if l.list == nil {
		return []string(nil)
	}

	return *l.list
}
