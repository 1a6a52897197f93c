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
	"log/slog"
	"slices"

	"fillmore-labs.com/callguard/internal/config"
	"fillmore-labs.com/callguard/internal/run"
)

// Option configures specific behavior of the callguard [analysis.Analyzer].
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that also satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr returns a [slog.Attr] for logging.
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics for generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithSuggestFixes is an [Option] to configure whether diagnostics carry suggested fixes.
func WithSuggestFixes(suggest bool) Option { return suggestFixesOption{suggest: suggest} }

type suggestFixesOption struct{ suggest bool }

func (o suggestFixesOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.suggest)
}

func (o suggestFixesOption) LogAttr() slog.Attr {
	return slog.Bool("suggest-fixes", o.suggest)
}

// WithGoTemplate is an [Option] to enable the TemplateMissingKey rule.
func WithGoTemplate(template bool) Option { return templateOption{template: template} }

type templateOption struct{ template bool }

func (o templateOption) apply(r *run.Options) {
	r.Behavior.Set(config.GoTemplate, o.template)
}

func (o templateOption) LogAttr() slog.Attr {
	return slog.Bool("template", o.template)
}

// WithRuleFiles is an [Option] to load additional rules from YAML files.
func WithRuleFiles(files ...string) Option { return ruleFilesOption{files: slices.Clone(files)} }

type ruleFilesOption struct{ files []string }

func (o ruleFilesOption) apply(r *run.Options) {
	r.RuleFiles = append(r.RuleFiles, o.files...)
}

func (o ruleFilesOption) LogAttr() slog.Attr {
	return slog.Any("rules", o.files)
}

// WithDisabled is an [Option] to disable rules by ID.
func WithDisabled(ids ...string) Option { return disabledOption{ids: slices.Clone(ids)} }

type disabledOption struct{ ids []string }

func (o disabledOption) apply(r *run.Options) {
	r.Disabled = append(r.Disabled, o.ids...)
}

func (o disabledOption) LogAttr() slog.Attr {
	return slog.Any("disable", o.ids)
}
