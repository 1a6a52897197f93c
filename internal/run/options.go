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

package run

import (
	"sync"

	"fillmore-labs.com/callguard/internal/catalog"
	"fillmore-labs.com/callguard/internal/config"
	"fillmore-labs.com/callguard/internal/rule"
	"fillmore-labs.com/callguard/internal/rulefile"
)

// Options represent configuration options for the analyzer.
type Options struct {
	// Behavior holds behavioral options.
	Behavior config.Flags

	// RuleFiles are YAML rule files loaded in addition to the built-in rules.
	RuleFiles []string

	// Disabled are the IDs of rules not to run.
	Disabled []string

	registry func() (*rule.Registry, error)
}

// DefaultOptions returns the default [Options].
func DefaultOptions() *Options {
	o := &Options{Behavior: config.DefaultFlags()}
	o.registry = sync.OnceValues(o.buildRegistry)

	return o
}

// Registry returns the rules to run. It is built on first use, after all options are applied.
func (r *Options) Registry() (*rule.Registry, error) {
	return r.registry()
}

func (r *Options) buildRegistry() (*rule.Registry, error) {
	builtin := catalog.Go(r.Behavior.Enabled(config.GoTemplate))

	return rulefile.NewRegistry(builtin, r.RuleFiles, r.Disabled)
}
