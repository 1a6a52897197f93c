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
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/callguard/internal/engine"
	"fillmore-labs.com/callguard/internal/javasrc"
	"fillmore-labs.com/callguard/internal/report"
	"fillmore-labs.com/callguard/internal/rule"
)

// errFindings signals ERROR findings or failed fix construction; it maps to exit status 1.
var errFindings = errors.New("findings reported")

type checkOptions struct {
	format  string
	workers int
}

func newCheckCmd(global *globalOptions) *cobra.Command {
	opts := checkOptions{format: string(report.FormatText), workers: runtime.GOMAXPROCS(0)}

	cmd := &cobra.Command{
		Use:   "check [flags] <file.java|directory>...",
		Short: "Check Java sources",
		Long:  `Check Java source files, or all *.java files within directories, and report rule violations`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, global, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", opts.format, "output format (text|json)")
	cmd.Flags().IntVar(&opts.workers, "workers", opts.workers, "max parallel workers (0=unbounded)")

	return cmd
}

func runCheck(cmd *cobra.Command, global *globalOptions, opts checkOptions, args []string) error {
	ctx := cmd.Context()

	format, ok := report.ParseFormat(opts.format)
	if !ok {
		return fmt.Errorf("unknown format %q (text|json)", opts.format)
	}

	reg, err := global.registry()
	if err != nil {
		return err
	}

	names, err := javaFiles(args)
	if err != nil {
		return err
	}

	slog.Debug("Checking files", "files", len(names), "rules", reg.Len(), "workers", opts.workers)

	files, err := parseAll(ctx, names, opts.workers)
	defer func() {
		for _, f := range files {
			if f != nil {
				f.Close()
			}
		}
	}()

	if err != nil {
		return err
	}

	trees := make([]engine.Tree, len(files))
	for i, f := range files {
		trees[i] = engine.Tree{Name: f.Name(), Root: f.Root()}
	}

	results, err := engine.RunAll(ctx, trees, reg, opts.workers)
	if err != nil {
		return err
	}

	var (
		findings []report.Finding
		failed   bool
	)

	for i, result := range results {
		if result.Err != nil {
			slog.Error("Fix construction failed", "file", result.Name, "error", result.Err)

			failed = true
		}

		for _, f := range report.Findings(files[i], result.Diagnostics) {
			failed = failed || f.Severity == rule.Error
			findings = append(findings, f)
		}
	}

	out := cmd.OutOrStdout()
	if err := report.NewPrinter(out, format, format == report.FormatText && global.colors(out)).Print(findings); err != nil {
		return err
	}

	if failed {
		return errFindings
	}

	return nil
}

// parseAll parses the named files with at most workers files in flight.
func parseAll(ctx context.Context, names []string, workers int) ([]*javasrc.File, error) {
	parser := javasrc.NewParser()
	files := make([]*javasrc.File, len(names))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, name := range names {
		g.Go(func() error {
			src, err := os.ReadFile(name)
			if err != nil {
				return err
			}

			f, err := parser.Parse(gctx, name, src)
			if err != nil {
				return err
			}

			if f.HasErrors() {
				slog.Warn("Source has syntax errors", "file", name)
			}

			files[i] = f

			return nil
		})
	}

	return files, g.Wait()
}

// javaFiles expands directories to the *.java files they contain, skipping hidden directories.
func javaFiles(args []string) ([]string, error) {
	var names []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			names = append(names, arg)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != arg && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}

				return nil
			}

			if filepath.Ext(path) == ".java" {
				names = append(names, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return names, nil
}
