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

package catalog

import (
	"fillmore-labs.com/callguard/internal/chain"
	"fillmore-labs.com/callguard/internal/fix"
	"fillmore-labs.com/callguard/internal/match"
	"fillmore-labs.com/callguard/internal/rule"
)

// Go rule IDs.
const (
	SignalNotifyAllID    = "SignalNotifyAll"
	TemplateMissingKeyID = "TemplateMissingKey"
)

// SignalNotifyAll reports signal.Notify calls without signals, which relay every incoming signal.
func SignalNotifyAll() rule.Rule {
	return rule.Rule{
		ID:       SignalNotifyAllID,
		Severity: rule.Warning,
		Matcher:  match.And(match.OnClass("os/signal").Named("Notify"), match.Arity(1)),
		Message:  "{{.Method}} without signals relays all incoming signals; list the signals explicitly.",
		Fix:      fix.AppendArgument{Text: "os.Interrupt", Imports: []string{"os"}},
		Doc: "Calling signal.Notify with only a channel relays every incoming signal, including SIGURG " +
			"used by the runtime for preemption, which is rarely intended.",
	}
}

// TemplateOptions is satisfied by a template chain that configures its options.
var TemplateOptions = chain.MustPolicy("TemplateOptions", []string{"Option"}, nil)

// TemplateMissingKey reports templates parsed without a missingkey option.
func TemplateMissingKey() rule.Rule {
	return rule.Rule{
		ID:       TemplateMissingKeyID,
		Severity: rule.Warning,
		Matcher: match.Or(
			match.OnClass("text/template.Template").Named("Parse"),
			match.OnClass("html/template.Template").Named("Parse"),
		),
		Policy:  TemplateOptions,
		Message: "{{.Owner}} parsed without Option(\"missingkey=...\") silently renders missing keys.",
		Fix:     fix.InsertAfterReceiver{Text: `.Option("missingkey=error")`},
		Doc:     "Templates executed with map data print \"<no value>\" for missing keys unless missingkey is set.",
	}
}

// Go returns the built-in Go rules. TemplateMissingKey is only included with templates set.
func Go(templates bool) []rule.Rule {
	rules := []rule.Rule{SignalNotifyAll()}
	if templates {
		rules = append(rules, TemplateMissingKey())
	}

	return rules
}
