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

package cli

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/packages"

	"augur.tools/augur/internal/edit"
	"augur.tools/augur/internal/engine"
	"augur.tools/augur/internal/run"
	"augur.tools/augur/internal/sarif"
)

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
	packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo |
	packages.NeedImports | packages.NeedDeps

var severityColor = map[engine.Severity]*color.Color{
	engine.SeverityError:      color.New(color.FgRed, color.Bold),
	engine.SeverityWarning:    color.New(color.FgYellow),
	engine.SeveritySuggestion: color.New(color.FgCyan),
}

func newRunCmd(logger func() hclog.Logger) *cobra.Command {
	var (
		cfgFile   string
		sarifFile string
		fix       bool
	)

	cmd := &cobra.Command{
		Use:   "run [packages]",
		Short: "Run the augur checkers over the given package patterns.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cfgFile)
			if err != nil {
				return err
			}

			r := runner{
				log:       logger(),
				opts:      cfg.Options(),
				fix:       fix,
				sarifFile: sarifFile,
			}

			patterns := args
			if len(patterns) == 0 {
				patterns = []string{"./..."}
			}

			return r.run(cmd.Context(), patterns)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "YAML configuration file")
	cmd.Flags().StringVar(&sarifFile, "sarif", "", "write a SARIF report to the given file")
	cmd.Flags().BoolVar(&fix, "fix", false, "apply suggested fixes")

	return cmd
}

type runner struct {
	log       hclog.Logger
	opts      *run.Options
	fix       bool
	sarifFile string
}

// aggregate holds the findings of one analyzed package together with the
// state needed to locate and rewrite their files.
type aggregate struct {
	pass     *analysis.Pass
	findings []engine.Finding
}

func (r runner) run(ctx context.Context, patterns []string) error {
	pkgs, err := r.load(patterns)
	if err != nil {
		return err
	}

	var (
		results []aggregate
		total   int
	)

	for _, pkg := range pkgs {
		result := r.analyze(ctx, pkg)
		total += len(result.findings)

		r.print(result)

		results = append(results, result)
	}

	if r.sarifFile != "" {
		if err := r.writeSarif(results); err != nil {
			return err
		}
	}

	if r.fix {
		return r.applyFixes(results)
	}

	if total > 0 {
		return fmt.Errorf("found %d issues", total)
	}

	return nil
}

func (r runner) load(patterns []string) ([]*packages.Package, error) {
	pkgs, err := packages.Load(&packages.Config{Mode: loadMode, Tests: true}, patterns...)
	if err != nil {
		return nil, fmt.Errorf("can't load packages: %w", err)
	}

	broken := 0

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			r.log.Error("load error", "package", pkg.PkgPath, "error", e)
			broken++
		}
	})

	if broken > 0 {
		return nil, fmt.Errorf("%d packages had load errors", broken)
	}

	return pkgs, nil
}

func (r runner) analyze(ctx context.Context, pkg *packages.Package) aggregate {
	p := &analysis.Pass{
		Fset:      pkg.Fset,
		Files:     pkg.Syntax,
		Pkg:       pkg.Types,
		TypesInfo: pkg.TypesInfo,
		Report: func(d analysis.Diagnostic) {
			r.log.Error(d.Message, "pos", pkg.Fset.Position(d.Pos))
		},
	}

	r.log.Debug("analyzing", "package", pkg.PkgPath, "files", len(pkg.Syntax))

	return aggregate{
		pass:     p,
		findings: r.opts.Analyze(ctx, p, inspector.New(pkg.Syntax)),
	}
}

func (r runner) print(result aggregate) {
	for _, f := range result.findings {
		pos := result.pass.Fset.Position(f.Pos)

		severity := severityColor[f.Severity].Sprint(f.Severity)
		fmt.Printf("%s: %s: %s (%s)\n", pos, severity, f.Message, f.Checker)
	}
}

func (r runner) writeSarif(results []aggregate) error {
	docs := run.CheckerDocs()

	var findings []sarif.Finding

	for _, result := range results {
		fset := result.pass.Fset

		for _, f := range result.findings {
			findings = append(findings, sarif.Finding{
				Checker:  f.Checker,
				Doc:      docs[f.Checker],
				Message:  f.Message,
				Severity: f.Severity,
				Position: fset.Position(f.Pos),
				End:      fset.Position(f.End),
			})
		}
	}

	out, err := os.Create(r.sarifFile)
	if err != nil {
		return fmt.Errorf("can't create SARIF file: %w", err)
	}
	defer func() { _ = out.Close() }()

	r.log.Info("writing SARIF report", "file", r.sarifFile, "findings", len(findings))

	return sarif.Write(out, findings)
}

// applyFixes rewrites every file with suggested fixes. Application is
// transactional per file: a conflict between fixes leaves the file untouched.
func (r runner) applyFixes(results []aggregate) error {
	for _, result := range results {
		byFile := make(map[*ast.File][]edit.Fix)

		ectx := &engine.Context{Pass: result.pass}

		for _, f := range result.findings {
			if f.Fix == nil || len(f.Fix.Edits) == 0 {
				continue
			}

			if file := ectx.FileFor(f.Fix.Edits[0].Pos); file != nil {
				byFile[file] = append(byFile[file], *f.Fix)
			}
		}

		for file, fixes := range byFile {
			r.fixFile(result.pass.Fset, file, fixes)
		}
	}

	return nil
}

func (r runner) fixFile(fset *token.FileSet, file *ast.File, fixes []edit.Fix) {
	name := fset.Position(file.FileStart).Filename

	src, err := os.ReadFile(name)
	if err != nil {
		r.log.Error("can't read file", "file", name, "error", err)

		return
	}

	snapshot, err := edit.NewSnapshot(fset, file.FileStart, src)
	if err != nil {
		r.log.Error("can't snapshot file", "file", name, "error", err)

		return
	}

	out, err := snapshot.Apply(fixes...)
	if err != nil {
		r.log.Warn("skipping file, fixes don't apply", "file", name, "error", err)

		return
	}

	if err := os.WriteFile(name, out, 0o600); err != nil {
		r.log.Error("can't write file", "file", name, "error", err)

		return
	}

	r.log.Info("fixed", "file", name, "fixes", len(fixes))
}
