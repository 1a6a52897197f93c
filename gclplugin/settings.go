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

package gclplugin

import callguard "fillmore-labs.com/callguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Generated enables checks of generated files.
	Generated *bool `json:"generated,omitzero"`
	// SuggestFixes attaches suggested fixes to diagnostics.
	SuggestFixes *bool `json:"suggest-fixes,omitzero"`
	// Template enables the TemplateMissingKey rule.
	Template *bool `json:"template,omitzero"`
	// Rules lists YAML rule files.
	Rules []string `json:"rules,omitzero"`
	// Disable lists rule IDs not to run.
	Disable []string `json:"disable,omitzero"`
}

// Options converts [Settings] into a list of [callguard.Option] for the callguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []callguard.Option {
	var opts []callguard.Option

	opts = appendOption(opts, s.Generated, callguard.WithGenerated)
	opts = appendOption(opts, s.SuggestFixes, callguard.WithSuggestFixes)
	opts = appendOption(opts, s.Template, callguard.WithGoTemplate)
	opts = appendList(opts, s.Rules, callguard.WithRuleFiles)
	opts = appendList(opts, s.Disable, callguard.WithDisabled)

	return opts
}

// appendOption appends a non-nil setting to a [callguard.Option] list.
func appendOption[T any](opts []callguard.Option, value *T, constructor func(T) callguard.Option) []callguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// appendList appends a non-empty list setting to a [callguard.Option] list.
func appendList[T any](opts []callguard.Option, values []T, constructor func(...T) callguard.Option) []callguard.Option {
	if len(values) == 0 {
		return opts
	}

	return append(opts, constructor(values...))
}
