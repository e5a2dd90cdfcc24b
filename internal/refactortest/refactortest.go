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

// Package refactortest checks suggested fixes by applying them to the source
// they were reported on and comparing the rewritten text against an expected
// output.
//
// Strict mode compares byte for byte. Loose mode normalizes both sides with
// gofmt first, so tests assert the structural rewrite without pinning
// whitespace.
package refactortest

import (
	"context"
	"go/format"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"augur.tools/augur/internal/edit"
	"augur.tools/augur/internal/engine"
	"augur.tools/augur/internal/run"
	"augur.tools/augur/internal/testsource"
)

// Mode selects how the rewritten source is compared.
type Mode uint8

const (
	// Strict compares byte for byte.
	Strict Mode = iota

	// Loose compares after normalizing both sides with gofmt.
	Loose
)

// Findings runs the default checkers over one source file.
func Findings(tb testing.TB, src string) []engine.Finding {
	tb.Helper()

	_, _, findings := analyze(tb, src)

	return findings
}

// Apply runs the default checkers over one source file and applies every
// suggested fix, returning the rewritten source.
func Apply(tb testing.TB, src string) []byte {
	tb.Helper()

	p, _, findings := analyze(tb, src)

	var fixes []edit.Fix

	for _, f := range findings {
		if f.Fix != nil {
			fixes = append(fixes, *f.Fix)
		}
	}

	if len(fixes) == 0 {
		return []byte(src)
	}

	snapshot, err := edit.NewSnapshot(p.Fset, p.Files[0].FileStart, []byte(src))
	if err != nil {
		tb.Fatalf("can't build snapshot: %v", err)
	}

	out, err := snapshot.Apply(fixes...)
	if err != nil {
		tb.Fatalf("can't apply fixes: %v", err)
	}

	return out
}

// Expect applies all fixes for src and compares the result against want.
func Expect(tb testing.TB, mode Mode, src, want string) {
	tb.Helper()

	got := Apply(tb, src)

	switch mode {
	case Strict:
		if string(got) != want {
			tb.Errorf("rewritten source mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
		}

	case Loose:
		gotFmt, err := format.Source(got)
		if err != nil {
			tb.Fatalf("rewritten source does not parse: %v\n%s", err, got)
		}

		wantFmt, err := format.Source([]byte(want))
		if err != nil {
			tb.Fatalf("expected source does not parse: %v", err)
		}

		if string(gotFmt) != string(wantFmt) {
			tb.Errorf("rewritten source mismatch:\n--- got ---\n%s\n--- want ---\n%s", gotFmt, wantFmt)
		}
	}
}

// ExpectUnchanged asserts that no checker produces a fix for src.
func ExpectUnchanged(tb testing.TB, src string) {
	tb.Helper()

	Expect(tb, Strict, src, src)
}

func analyze(tb testing.TB, src string) (*analysis.Pass, *inspector.Inspector, []engine.Finding) {
	tb.Helper()

	p, in, _ := testsource.NewPass(tb, src)

	findings := run.DefaultOptions().Analyze(context.Background(), p, in)

	return p, in, findings
}
