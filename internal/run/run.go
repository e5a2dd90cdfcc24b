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

// Package run drives the checker pipeline over one analysis pass.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"augur.tools/augur/internal/astutil"
	"augur.tools/augur/internal/config"
	"augur.tools/augur/internal/engine"
	"augur.tools/augur/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the augur checker pipeline and reports diagnostics.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("augur: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "Augur")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	findings := r.Analyze(ctx, p, in)

	report.ProcessFindings(ctx, p, &engine.Context{Pass: p}, findings)

	return nil, nil
}

// Analyze runs the enabled checkers over every file of the pass and returns
// the surviving findings without reporting them. The CLI and the refactoring
// test harness consume the findings directly.
func (r *Options) Analyze(ctx context.Context, p *analysis.Pass, in *inspector.Inspector) []engine.Finding {
	orchestrator := engine.NewOrchestrator(r.enabled()...)
	if orchestrator.Empty() {
		return nil
	}

	var findings []engine.Finding

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files suppressing the whole linter
		if doc := file.Doc; doc != nil && astutil.CommentHasNoLint(doc.List[len(doc.List)-1], "augur") {
			continue
		}

		ectx := &engine.Context{Pass: p, File: currentFile}

		findings = append(findings, orchestrator.CheckFile(ctx, ectx, f)...)
	}

	return findings
}
