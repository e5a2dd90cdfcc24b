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

// Package report converts checker findings into analysis framework
// diagnostics with suggested fixes.
package report

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"augur.tools/augur/internal/edit"
	"augur.tools/augur/internal/engine"
)

// ProcessFindings emits one diagnostic per finding.
//
// This is the final phase of the analyzer pipeline. Fix validation failures
// drop the fix, never the finding.
func ProcessFindings(ctx context.Context, p *analysis.Pass, ectx *engine.Context, findings []engine.Finding) {
	if len(findings) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "ReportFindings").End()

	for _, f := range findings {
		p.Report(Diagnostic(f, ectx))
	}
}

// Diagnostic converts a finding. The checker name becomes the diagnostic
// category, so suppression and configuration use one stable identifier.
func Diagnostic(f engine.Finding, ectx *engine.Context) analysis.Diagnostic {
	d := analysis.Diagnostic{
		Pos:      f.Pos,
		End:      f.End,
		Category: f.Checker,
		Message:  f.Message,
	}

	if f.Fix == nil {
		return d
	}

	if edits := textEdits(f.Fix, ectx); len(edits) > 0 {
		d.SuggestedFixes = []analysis.SuggestedFix{{Message: f.Fix.Message, TextEdits: edits}}
	}

	return d
}

// textEdits flattens a fix into framework text edits, appending the edits
// needed to keep the file's import block consistent. Invalid fixes convert
// to nothing.
func textEdits(fix *edit.Fix, ectx *engine.Context) []analysis.TextEdit {
	if fix.Validate() != nil {
		return nil
	}

	edits := fix.Edits

	if !fix.Imports.Empty() && len(fix.Edits) > 0 {
		if file := ectx.FileFor(fix.Edits[0].Pos); file != nil {
			edits = append(edits[:len(edits):len(edits)], edit.ImportEdits(file, nil, fix.Imports)...)
		}
	}

	converted := make([]analysis.TextEdit, len(edits))
	for i, e := range edits {
		converted[i] = analysis.TextEdit{Pos: e.Pos, End: e.End, NewText: e.NewText}
	}

	return converted
}
