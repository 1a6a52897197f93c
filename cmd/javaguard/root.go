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

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fillmore-labs.com/callguard/internal/catalog"
	"fillmore-labs.com/callguard/internal/rule"
	"fillmore-labs.com/callguard/internal/rulefile"
)

// globalOptions are the flags shared by all commands.
type globalOptions struct {
	verbose   bool
	color     string
	ruleFiles []string
	disabled  []string
	noBuiltin bool
	executor  string
	importFor string
}

func newRootCmd() *cobra.Command {
	var opts globalOptions

	root := &cobra.Command{
		Use:           "javaguard",
		Short:         "Check Java sources for misused call patterns",
		Long:          `javaguard runs the callguard rule engine over Java sources parsed with tree-sitter`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}

			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			switch opts.color {
			case "auto", "on", "off":
				return nil

			default:
				return fmt.Errorf("unknown color mode %q (auto|on|off)", opts.color)
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	flags.StringVar(&opts.color, "color", "auto", "colorize output (auto|on|off)")
	flags.StringSliceVar(&opts.ruleFiles, "rules", nil, "YAML rule files to load")
	flags.StringSliceVar(&opts.disabled, "disable", nil, "rule IDs to disable")
	flags.BoolVar(&opts.noBuiltin, "no-builtin", false, "do not load the built-in rules")
	flags.StringVar(&opts.executor, "executor", catalog.DefaultExecutor, "executor expression appended by the CompletableFutureMissingExecutor fix")
	flags.StringVar(&opts.importFor, "executor-import", catalog.DefaultExecutorImport, "import added by the CompletableFutureMissingExecutor fix")

	root.AddCommand(newCheckCmd(&opts), newRulesCmd(&opts))

	return root
}

// registry builds the rule registry from the built-in rules and rule files.
func (o *globalOptions) registry() (*rule.Registry, error) {
	var builtin []rule.Rule
	if !o.noBuiltin {
		builtin = []rule.Rule{catalog.MissingExecutor(o.executor, o.importFor), catalog.TryGetOrNull()}
	}

	slog.Debug("Loading rules", "files", o.ruleFiles, "disabled", o.disabled)

	return rulefile.NewRegistry(builtin, o.ruleFiles, o.disabled)
}

// colors reports whether output to f should be colorized.
func (o *globalOptions) colors(f any) bool {
	switch o.color {
	case "on":
		return true

	case "off":
		return false

	default:
		file, ok := f.(*os.File)

		return ok && term.IsTerminal(int(file.Fd()))
	}
}
