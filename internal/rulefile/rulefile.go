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

// Package rulefile loads rule definitions from YAML.
package rulefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/callguard/internal/rule"
)

// MaxFileSize limits the size of a rule file in bytes.
const MaxFileSize = 1 << 20

// ErrInvalidRuleFile is returned for rule files that cannot be decoded or validated.
var ErrInvalidRuleFile = errors.New("invalid rule file")

var validate = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// File is the top level of a rule file.
type File struct {
	Rules []Spec `yaml:"rules" validate:"required,min=1,dive"`
}

// Spec declares a single rule.
type Spec struct {
	ID       string      `yaml:"id"       validate:"required"`
	Severity string      `yaml:"severity" validate:"required,oneof=WARNING ERROR"`
	Message  string      `yaml:"message"  validate:"required"`
	Doc      string      `yaml:"doc"`
	Match    []MatchSpec `yaml:"match"    validate:"required,min=1,dive"`
	Chain    *ChainSpec  `yaml:"chain"    validate:"omitempty"`
	Fix      *FixSpec    `yaml:"fix"      validate:"omitempty"`
}

// MatchSpec is one alternative of a rule's matcher.
type MatchSpec struct {
	Owner      string    `yaml:"owner"      validate:"required"`
	Mode       string    `yaml:"mode"       validate:"omitempty,oneof=exact descendant"`
	Method     string    `yaml:"method"     validate:"required"`
	Parameters *[]string `yaml:"parameters" validate:"omitempty,dive,required"`
	Arguments  *int      `yaml:"arguments"  validate:"omitempty,gte=0"`
}

// ChainSpec declares the handler policy of a rule.
type ChainSpec struct {
	Name     string   `yaml:"name"`
	Handlers []string `yaml:"handlers" validate:"required,min=1,dive,required"`
	ZeroArg  []string `yaml:"zero-arg" validate:"dive,required"`
}

// FixSpec declares the fix template of a rule.
type FixSpec struct {
	AppendArgument      string   `yaml:"append-argument"       validate:"required_without=InsertAfterReceiver,excluded_with=InsertAfterReceiver"`
	InsertAfterReceiver string   `yaml:"insert-after-receiver" validate:"required_without=AppendArgument"`
	Imports             []string `yaml:"imports"               validate:"dive,required"`
}

// LoadFile reads the rules from the named file.
func LoadFile(name string) ([]rule.Rule, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("rule file: %w", err)
	}
	defer f.Close()

	rules, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return rules, nil
}

// Load decodes, validates and builds the rules of a rule file.
func Load(r io.Reader) ([]rule.Rule, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}

	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrInvalidRuleFile, MaxFileSize)
	}

	f, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return f.Build()
}

// Decode parses and validates a rule file without building the rules.
func Decode(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty", ErrInvalidRuleFile)
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidRuleFile, err)
	}

	if err := validate().Struct(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRuleFile, err)
	}

	return &f, nil
}
