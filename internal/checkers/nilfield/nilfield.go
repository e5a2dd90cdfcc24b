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

// Package nilfield reports struct fields that demonstrably hold nil without
// being marked //augur:nilable.
//
// Evidence is an assignment of a definitely-nil value, an assignment of a
// variable proven nil by an enclosing guard, or a direct comparison of the
// field against nil. The fix appends the marker to the field declaration when
// it lives in the analyzed compilation unit.
package nilfield

import (
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"augur.tools/augur/internal/directive"
	"augur.tools/augur/internal/edit"
	"augur.tools/augur/internal/engine"
	"augur.tools/augur/internal/nilness"
)

// Name is the stable checker name used for dispatch and suppression.
const Name = "nilfield"

const doc = "reports struct fields holding nil without an //augur:nilable marker"

type checker struct{}

// New returns the nilfield checker.
func New() engine.Checker { return checker{} }

func (checker) Name() string { return Name }

func (checker) Doc() string { return doc }

func (checker) Severity() engine.Severity { return engine.SeverityWarning }

func (checker) NodeTypes() []ast.Node {
	return []ast.Node{(*ast.AssignStmt)(nil), (*ast.BinaryExpr)(nil)}
}

func (k checker) Check(c inspector.Cursor, ctx *engine.Context) []engine.Finding {
	switch n := c.Node().(type) {
	case *ast.AssignStmt:
		return k.checkAssign(c, n, ctx)

	case *ast.BinaryExpr:
		return k.checkCompare(c, n, ctx)

	default:
		return nil
	}
}

// checkAssign flags field targets assigned a value that is definitely nil on
// some branch, including variables proven nil by the guards enclosing the
// assignment.
func (k checker) checkAssign(c inspector.Cursor, stmt *ast.AssignStmt, ctx *engine.Context) []engine.Finding {
	if len(stmt.Lhs) != len(stmt.Rhs) {
		return nil // multi-value call, no nil evidence
	}

	var (
		findings []engine.Finding
		proven   nilness.NameSet
	)

	for i, lhs := range stmt.Lhs {
		field := fieldTarget(lhs, ctx)
		if field == nil {
			continue
		}

		if proven == nil {
			proven = nilness.ProvenNilVars(c, ctx.Info())
		}

		if !nilness.HasDefinitelyNilBranch(stmt.Rhs[i], nilness.NewNameSet(), proven, ctx.Info()) {
			continue
		}

		if f, ok := k.finding(lhs, field, ctx); ok {
			findings = append(findings, f)
		}
	}

	return findings
}

// checkCompare flags a direct comparison of an unmarked field against nil.
// Either polarity counts: testing the field at all asserts it can hold nil.
func (k checker) checkCompare(c inspector.Cursor, bin *ast.BinaryExpr, ctx *engine.Context) []engine.Finding {
	check, ok := nilness.Check(bin, ctx.Info())
	if !ok {
		return nil
	}

	field := fieldTarget(check.Expr, ctx)
	if field == nil {
		return nil
	}

	if f, ok := k.finding(bin, field, ctx); ok {
		return []engine.Finding{f}
	}

	return nil
}

// finding builds the report for one nil use of the field. Fields already
// marked produce nothing. The fix is omitted when the declaration lives in
// another compilation unit.
func (checker) finding(at ast.Node, field *types.Var, ctx *engine.Context) (engine.Finding, bool) {
	decl := ctx.FieldDeclOf(field)
	if directive.OnField(decl, directive.Nilable) {
		return engine.Finding{}, false
	}

	f := engine.Finding{
		Checker:  Name,
		Message:  fmt.Sprintf("field %q holds nil but is not marked //augur:nilable", field.Name()),
		Severity: engine.SeverityWarning,
		Pos:      at.Pos(),
		End:      at.End(),
	}

	if decl != nil {
		f.Fix = &edit.Fix{
			Message: fmt.Sprintf("mark field %q as nilable", field.Name()),
			Edits: []edit.Edit{{
				Pos:     decl.End(),
				End:     decl.End(),
				NewText: []byte(" //augur:nilable"),
			}},
		}
	}

	return f, true
}

// fieldTarget resolves an expression to the struct field it selects, or nil.
// Only nilable field types qualify.
func fieldTarget(expr ast.Expr, ctx *engine.Context) *types.Var {
	sel, ok := ast.Unparen(expr).(*ast.SelectorExpr)
	if !ok {
		return nil
	}

	v, ok := ctx.ObjectOf(sel.Sel).(*types.Var)
	if !ok || !v.IsField() {
		return nil
	}

	if !nilableType(v.Type()) {
		return nil
	}

	return v
}

// nilableType reports whether the type admits nil at all.
func nilableType(t types.Type) bool {
	switch t.Underlying().(type) {
	case *types.Pointer, *types.Interface, *types.Map, *types.Slice,
		*types.Chan, *types.Signature:
		return true

	default:
		return false
	}
}
