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

// Package javasrc exposes Java sources parsed by tree-sitter as [syntax.Node] trees.
//
// Trees are syntax-only: every callee is [syntax.Unresolved].
package javasrc

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

var (
	// ErrFileTooLarge is returned for sources exceeding the configured size limit.
	ErrFileTooLarge = errors.New("file too large")

	// ErrInvalidContent is returned for sources that are not valid UTF-8.
	ErrInvalidContent = errors.New("content is not valid UTF-8")
)

// Parser parses Java compilation units.
type Parser struct {
	maxFileSize int
}

// Option configures a [Parser].
type Option func(*Parser)

// WithMaxFileSize limits the size of accepted sources in bytes.
func WithMaxFileSize(size int) Option {
	return func(p *Parser) { p.maxFileSize = size }
}

// NewParser creates a [Parser].
func NewParser(opts ...Option) *Parser {
	p := &Parser{maxFileSize: 10 * 1024 * 1024}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse parses src. The caller must [File.Close] the result.
//
// Syntax errors do not fail the parse, tree-sitter recovers and marks the affected nodes.
func (p *Parser) Parse(ctx context.Context, name string, src []byte) (*File, error) {
	if p.maxFileSize > 0 && len(src) > p.maxFileSize {
		return nil, fmt.Errorf("%s: %w", name, ErrFileTooLarge)
	}

	// tree-sitter addresses bytes with uint32 offsets.
	if _, err := safecast.Conv[uint32](len(src)); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", name, ErrFileTooLarge, err)
	}

	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%s: %w", name, ErrInvalidContent)
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: tree-sitter parse failed: %w", name, err)
	}

	f := &File{name: name, src: src, tree: tree}
	f.imports = f.collectImports()

	return f, nil
}
