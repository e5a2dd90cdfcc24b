// Copyright 2026 The Augur Authors. All Rights Reserved.
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

// Package edit implements fixes as sets of textual edits and their
// transactional application to a source snapshot.
//
// An [Edit] replaces the byte range [Pos, End) with NewText; an insertion has
// Pos == End. A [Fix] is one atomic proposed change: its edits never overlap
// each other and always refer to the same immutable source snapshot the
// finding was computed against. Import additions and removals ride on the fix
// as an associative requirement rather than as bare edits, since their
// placement rules differ from in-body edits.
package edit

import (
	"bytes"
	"cmp"
	"errors"
	"go/token"
	"slices"
)

// ErrOverlap is returned when the edits of a single fix overlap each other.
var ErrOverlap = errors.New("fix contains overlapping edits")

// ErrRange is returned when an edit has an invalid range.
var ErrRange = errors.New("edit end precedes start")

// Edit is a single replacement of the byte range [Pos, End) with NewText.
type Edit struct {
	Pos     token.Pos
	End     token.Pos
	NewText []byte
}

// Compare orders edits by start position, then end position, then replacement
// text. It is the stable ordering key used during merging.
func (e Edit) Compare(other Edit) int {
	if c := cmp.Compare(e.Pos, other.Pos); c != 0 {
		return c
	}

	if c := cmp.Compare(e.End, other.End); c != 0 {
		return c
	}

	return bytes.Compare(e.NewText, other.NewText)
}

// Valid reports whether the edit's range is well-formed.
func (e Edit) Valid() bool {
	return e.Pos.IsValid() && e.End >= e.Pos
}

// ImportSet describes import-list maintenance attached to a fix.
type ImportSet struct {
	Add    []string
	Remove []string
}

// Empty reports whether the set requires no import changes.
func (s ImportSet) Empty() bool {
	return len(s.Add) == 0 && len(s.Remove) == 0
}

// merge combines two import sets, deduplicating paths.
func (s ImportSet) merge(other ImportSet) ImportSet {
	return ImportSet{
		Add:    mergePaths(s.Add, other.Add),
		Remove: mergePaths(s.Remove, other.Remove),
	}
}

func mergePaths(a, b []string) []string {
	if len(b) == 0 {
		return a
	}

	merged := slices.Concat(a, b)
	slices.Sort(merged)

	return slices.Compact(merged)
}

// Fix is one atomic proposed change tied to one finding.
type Fix struct {
	// Message describes the change in the imperative mood.
	Message string

	// Edits are the textual replacements. They must be pairwise non-overlapping.
	Edits []Edit

	// Imports are import-list changes required by the edits.
	Imports ImportSet
}

// Validate checks the fix's range invariants: every edit well-formed and no
// two edits overlapping.
func (f Fix) Validate() error {
	sorted := slices.Clone(f.Edits)
	slices.SortFunc(sorted, Edit.Compare)

	var last token.Pos
	for _, e := range sorted {
		if !e.Valid() {
			return ErrRange
		}

		if e.Pos < last {
			return ErrOverlap
		}

		last = e.End
	}

	return nil
}
