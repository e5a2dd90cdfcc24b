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

package edit_test

import (
	"errors"
	"go/token"
	"strings"
	"testing"

	. "augur.tools/augur/internal/edit"
)

// newSnapshot registers src in a fresh file set and returns the snapshot plus
// a translator from byte offsets to positions.
func newSnapshot(tb testing.TB, src string) (Snapshot, func(int) token.Pos) {
	tb.Helper()

	fset := token.NewFileSet()
	handle := fset.AddFile("test.go", -1, len(src))
	handle.SetLinesForContent([]byte(src))

	s, err := NewSnapshot(fset, token.Pos(handle.Base()), []byte(src))
	if err != nil {
		tb.Fatalf("can't create snapshot: %v", err)
	}

	return s, handle.Pos
}

func TestApply(t *testing.T) {
	t.Parallel()

	const src = "aaa bbb ccc\n"

	replace := func(pos func(int) token.Pos, from, to int, text string) Fix {
		return Fix{Edits: []Edit{{Pos: pos(from), End: pos(to), NewText: []byte(text)}}}
	}

	tests := []struct {
		name  string
		fixes func(pos func(int) token.Pos) []Fix
		want  string
	}{
		{
			name: "Replace",
			fixes: func(pos func(int) token.Pos) []Fix {
				return []Fix{replace(pos, 4, 7, "BBB")}
			},
			want: "aaa BBB ccc\n",
		},
		{
			name: "Insert",
			fixes: func(pos func(int) token.Pos) []Fix {
				return []Fix{replace(pos, 4, 4, "xxx ")}
			},
			want: "aaa xxx bbb ccc\n",
		},
		{
			name: "DisjointFixes",
			fixes: func(pos func(int) token.Pos) []Fix {
				return []Fix{replace(pos, 0, 3, "A"), replace(pos, 8, 11, "C")}
			},
			want: "A bbb C\n",
		},
		{
			name: "IdenticalEditsApplyOnce",
			fixes: func(pos func(int) token.Pos) []Fix {
				return []Fix{replace(pos, 4, 4, "xxx "), replace(pos, 4, 4, "xxx ")}
			},
			want: "aaa xxx bbb ccc\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, pos := newSnapshot(t, src)

			got, err := s.Apply(tt.fixes(pos)...)
			if err != nil {
				t.Fatalf("Apply() error: %v", err)
			}

			if string(got) != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyCommutes(t *testing.T) {
	t.Parallel()

	const src = "one two three\n"

	s, pos := newSnapshot(t, src)

	first := Fix{Edits: []Edit{{Pos: pos(0), End: pos(3), NewText: []byte("ONE")}}}
	second := Fix{Edits: []Edit{{Pos: pos(8), End: pos(13), NewText: []byte("THREE")}}}

	a, err := s.Apply(first, second)
	if err != nil {
		t.Fatalf("Apply(first, second) error: %v", err)
	}

	b, err := s.Apply(second, first)
	if err != nil {
		t.Fatalf("Apply(second, first) error: %v", err)
	}

	if string(a) != string(b) {
		t.Errorf("application order changed the result: %q vs %q", a, b)
	}
}

func TestApplyConflict(t *testing.T) {
	t.Parallel()

	const src = "one two three\n"

	s, pos := newSnapshot(t, src)

	first := Fix{Edits: []Edit{{Pos: pos(0), End: pos(7), NewText: []byte("ONE TWO")}}}
	second := Fix{Edits: []Edit{{Pos: pos(4), End: pos(7), NewText: []byte("2")}}}

	out, err := s.Apply(first, second)

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Apply() error = %v, want *ConflictError", err)
	}

	if out != nil {
		t.Errorf("Apply() returned output %q despite conflict", out)
	}

	if !strings.Contains(conflict.Error(), "overlap") {
		t.Errorf("unexpected conflict message %q", conflict.Error())
	}
}

func TestFixValidate(t *testing.T) {
	t.Parallel()

	s, pos := newSnapshot(t, "one two three\n")

	tests := []struct {
		name string
		fix  Fix
		want error
	}{
		{
			name: "OverlappingEdits",
			fix: Fix{Edits: []Edit{
				{Pos: pos(0), End: pos(5)},
				{Pos: pos(3), End: pos(7)},
			}},
			want: ErrOverlap,
		},
		{
			name: "InvertedRange",
			fix:  Fix{Edits: []Edit{{Pos: pos(5), End: pos(2)}}},
			want: ErrRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.fix.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}

			if _, err := s.Apply(tt.fix); !errors.Is(err, tt.want) {
				t.Errorf("Apply() = %v, want %v", err, tt.want)
			}
		})
	}
}
