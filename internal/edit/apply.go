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

package edit

import (
	"fmt"
	"go/parser"
	"go/token"
	"slices"
)

// ConflictError reports two proposed edits whose ranges overlap without being
// byte-identical. The whole batch is rejected; no partial application is
// attempted.
type ConflictError struct {
	First  Edit
	Second Edit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot apply non-disjoint edits: [%d,%d) and [%d,%d) overlap",
		e.First.Pos, e.First.End, e.Second.Pos, e.Second.End)
}

// Snapshot is one immutable source text plus the position information needed
// to translate edit positions into byte offsets. All fixes applied to a
// snapshot must have been computed against exactly this text.
type Snapshot struct {
	handle *token.File
	src    []byte
}

// NewSnapshot creates a [Snapshot] for the file containing pos.
func NewSnapshot(fset *token.FileSet, pos token.Pos, src []byte) (Snapshot, error) {
	handle := fset.File(pos)
	if handle == nil {
		return Snapshot{}, fmt.Errorf("edit: no file for position %d", pos)
	}

	return Snapshot{handle: handle, src: src}, nil
}

// Src returns the snapshot's source text.
func (s Snapshot) Src() []byte {
	return s.src
}

// Apply merges the edits of all fixes against the snapshot and produces the
// resulting text. Either all edits apply cleanly or none do: overlapping,
// non-identical edits abort the whole batch with a [*ConflictError].
//
// After the in-body edits, one pass of import-list reconciliation is
// performed: added paths are merged into the import block in sorted order,
// removed paths are dropped only if no use remains in the edited text.
func (s Snapshot) Apply(fixes ...Fix) ([]byte, error) {
	var (
		edits   []Edit
		imports ImportSet
	)

	for _, fix := range fixes {
		if err := fix.Validate(); err != nil {
			return nil, err
		}

		edits = append(edits, fix.Edits...)
		imports = imports.merge(fix.Imports)
	}

	merged, err := mergeEdits(edits)
	if err != nil {
		return nil, err
	}

	out, err := s.applyEdits(merged)
	if err != nil {
		return nil, err
	}

	if imports.Empty() {
		return out, nil
	}

	return reconcileImports(out, imports)
}

// mergeEdits sorts edits by start offset, drops byte-identical duplicates and
// detects conflicts.
func mergeEdits(edits []Edit) ([]Edit, error) {
	sorted := slices.Clone(edits)
	slices.SortFunc(sorted, Edit.Compare)
	sorted = slices.CompactFunc(sorted, func(a, b Edit) bool { return a.Compare(b) == 0 })

	for i := 1; i < len(sorted); i++ {
		prev, next := sorted[i-1], sorted[i]
		if next.Pos < prev.End {
			return nil, &ConflictError{First: prev, Second: next}
		}
	}

	return sorted, nil
}

// applyEdits applies non-overlapping edits in descending offset order so that
// earlier offsets remain valid throughout.
func (s Snapshot) applyEdits(edits []Edit) ([]byte, error) {
	out := slices.Clone(s.src)

	for _, e := range slices.Backward(edits) {
		start, err := s.offset(e.Pos)
		if err != nil {
			return nil, err
		}

		end, err := s.offset(e.End)
		if err != nil {
			return nil, err
		}

		out = slices.Concat(out[:start], e.NewText, out[end:])
	}

	return out, nil
}

func (s Snapshot) offset(pos token.Pos) (int, error) {
	base, size := token.Pos(s.handle.Base()), token.Pos(s.handle.Size())
	if pos < base || pos > base+size {
		return 0, fmt.Errorf("edit: position %d outside of %s", pos, s.handle.Name())
	}

	return s.handle.Offset(pos), nil
}

// reconcileImports parses the edited text and applies the accumulated import
// changes as a second batch of textual edits. Parsing the result instead of
// the original snapshot ensures that "no remaining use" is judged against the
// text the fixes produced.
func reconcileImports(src []byte, imports ImportSet) ([]byte, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "fixed.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("edit: cannot reconcile imports: %w", err)
	}

	snapshot := Snapshot{handle: fset.File(file.FileStart), src: src}

	edits := ImportEdits(file, src, imports)

	merged, err := mergeEdits(edits)
	if err != nil {
		return nil, err
	}

	return snapshot.applyEdits(merged)
}
