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

// Package fix assembles anchored text edits into suggested fixes.
package fix

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"fillmore-labs.com/callguard/internal/syntax"
)

// ErrOverlappingEdit is returned when two edits of one fix target overlapping spans.
var ErrOverlappingEdit = errors.New("overlapping edits")

// TextEdit is a single edit anchored to a span of the source.
type TextEdit struct {
	Anchor  syntax.Span
	Kind    EditKind
	Payload string
}

// Position returns the source offset where the edit applies.
// Imports have no position in the source; the host decides where they go.
func (e TextEdit) Position() (int, bool) {
	switch e.Kind {
	case InsertAfter:
		return e.Anchor.End, true

	case AddImport:
		return 0, false

	default:
		return 0, false
	}
}

// MarshalJSON renders the edit kind by name.
func (e TextEdit) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start   int    `json:"start"`
		End     int    `json:"end"`
		Kind    string `json:"kind"`
		Payload string `json:"payload"`
	}{e.Anchor.Start, e.Anchor.End, e.Kind.String(), e.Payload})
}

// Fix is an immutable, ordered set of non-overlapping edits.
type Fix struct {
	edits []TextEdit
}

// Edits returns the edits in the order they were requested.
func (f Fix) Edits() []TextEdit { return slices.Clone(f.edits) }

// Filter returns a fix with the edits for which keep returns true.
func (f Fix) Filter(keep func(TextEdit) bool) Fix {
	edits := slices.DeleteFunc(slices.Clone(f.edits), func(e TextEdit) bool { return !keep(e) })

	return Fix{edits: edits}
}

// Len returns the number of edits.
func (f Fix) Len() int { return len(f.edits) }

// MarshalJSON renders the edits.
func (f Fix) MarshalJSON() ([]byte, error) { return json.Marshal(f.edits) }

// Builder collects edits for a single [Fix].
type Builder struct {
	edits []TextEdit
}

// InsertAfter requests the insertion of text right after anchor.
func (b *Builder) InsertAfter(anchor syntax.Span, text string) *Builder {
	b.edits = append(b.edits, TextEdit{Anchor: anchor, Kind: InsertAfter, Payload: text})

	return b
}

// AddImport requests an import of path.
func (b *Builder) AddImport(path string) *Builder {
	b.edits = append(b.edits, TextEdit{Kind: AddImport, Payload: path})

	return b
}

// Build validates the collected edits and returns the [Fix].
//
// Span-anchored edits must be pairwise disjoint and must not insert at the same offset; requesting the same import more than
// once yields a single import edit.
func (b *Builder) Build() (Fix, error) {
	edits := make([]TextEdit, 0, len(b.edits))
	imports := make(map[string]struct{})

	for _, e := range b.edits {
		if e.Kind == AddImport {
			if _, ok := imports[e.Payload]; ok {
				continue
			}

			imports[e.Payload] = struct{}{}
			edits = append(edits, e)

			continue
		}

		for _, prev := range edits {
			if prev.Kind == AddImport {
				continue
			}

			if prev.Anchor.Overlaps(e.Anchor) || samePosition(prev, e) {
				return Fix{}, fmt.Errorf("%w: %s %v and %s %v", ErrOverlappingEdit, prev.Kind, prev.Anchor, e.Kind, e.Anchor)
			}
		}

		edits = append(edits, e)
	}

	return Fix{edits: edits}, nil
}

// samePosition reports whether two edits write at the same source offset.
func samePosition(a, b TextEdit) bool {
	pa, oka := a.Position()
	pb, okb := b.Position()

	return oka && okb && pa == pb
}
