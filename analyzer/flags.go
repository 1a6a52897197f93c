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

package analyzer

import (
	"flag"

	"fillmore-labs.com/callguard/internal/config"
	"fillmore-labs.com/callguard/internal/run"
)

var behaviorUsage = map[config.Behavior]string{
	config.IncludeGenerated: "check generated files",
	config.SuggestFixes:     "attach suggested fixes to diagnostics",
	config.GoTemplate:       "check templates parsed without missingkey option",
}

// registerFlags binds the [run.Options] fields to command-line flags.
func registerFlags(o *run.Options, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	for _, b := range config.Behaviors {
		flags.Var(NewBehaviorValue(&o.Behavior, b), b.String(), behaviorUsage[b])
	}

	flags.Var(NewListValue(&o.RuleFiles), "rules", "comma-separated list of YAML rule files")
	flags.Var(NewListValue(&o.Disabled), "disable", "comma-separated list of rule IDs to disable")
}
