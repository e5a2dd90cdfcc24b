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

// Package escape determines whether a resource-typed expression is safely
// handed off or leaves its producing scope without a guaranteed close.
//
// Safe sinks are: an immediate or later deferred Close on a bound local, an
// explicit Close call, a return from a function marked //augur:closer, and a
// call to a function marked //augur:closes. Chained method calls keep the
// obligation alive as long as the chain result is itself resource-typed;
// a terminal method discharges it only when it closes or is contract-marked.
package escape

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"augur.tools/augur/internal/directive"
	"augur.tools/augur/internal/engine"
)

// Result is the outcome of classifying one resource-producing expression.
type Result struct {
	// Disposition classifies the hand-off.
	Disposition Disposition

	// Binding is the local the resource was bound to, when the classification
	// followed an assignment. It is set for EscapesScope so a fix can close
	// the existing binding instead of introducing a new one.
	Binding *ast.Ident
}

// IsResource reports whether the type carries a Close() error method and
// therefore requires an explicit close.
func IsResource(t types.Type) bool {
	if t == nil {
		return false
	}

	obj, _, _ := types.LookupFieldOrMethod(t, true, nil, "Close")

	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}

	return types.Identical(sig.Results().At(0).Type(), types.Universe.Lookup("error").Type())
}

// Classify locates the nearest enclosing statement or return context of the
// resource-typed expression at the cursor and classifies it against the safe
// sinks. Contexts the analyzer cannot prove safe classify as unsafe.
func Classify(c inspector.Cursor, ctx *engine.Context) Result {
	for cur := c; ; {
		parent := cur.Parent()

		switch p := parent.Node().(type) {
		case *ast.ParenExpr:
			cur = parent

		case *ast.SelectorExpr:
			grand := parent.Parent()

			call, ok := grand.Node().(*ast.CallExpr)
			if !ok || call.Fun != p {
				return Result{Disposition: EscapesUnknown}
			}

			if isCloseSelector(p, call) {
				return Result{Disposition: ClosedExplicitly}
			}

			if IsResource(ctx.TypeOf(call)) {
				cur = grand // the obligation follows the chain result

				continue
			}

			if calleeHasDirective(call, directive.Closes, ctx) {
				return Result{Disposition: TransfersToCallee}
			}

			return Result{Disposition: EscapesInline}

		case *ast.CallExpr:
			if p.Fun == cur.Node() {
				return Result{Disposition: EscapesUnknown}
			}

			if calleeHasDirective(p, directive.Closes, ctx) {
				return Result{Disposition: TransfersToCallee}
			}

			return Result{Disposition: EscapesCall}

		case *ast.AssignStmt:
			return classifyAssign(parent, cur, ctx)

		case *ast.ValueSpec:
			return classifyValueSpec(parent, cur, ctx)

		case *ast.ReturnStmt:
			return classifyReturn(parent, ctx)

		case *ast.ExprStmt:
			return Result{Disposition: EscapesDiscard}

		case *ast.RangeStmt:
			if p.X == cur.Node() {
				return Result{Disposition: EscapesRange}
			}

			return Result{Disposition: EscapesUnknown}

		default:
			return Result{Disposition: EscapesUnknown}
		}
	}
}

// classifyReturn resolves a direct return of the resource: safe only when the
// enclosing function documents the transfer of closing responsibility.
func classifyReturn(ret inspector.Cursor, ctx *engine.Context) Result {
	for e := range ret.Enclosing((*ast.FuncDecl)(nil)) {
		if directive.OnFunc(e.Node().(*ast.FuncDecl), directive.Closer) {
			return Result{Disposition: TransfersToCaller}
		}
	}

	return Result{Disposition: EscapesReturn}
}

// classifyAssign resolves an assignment of the resource to its target and,
// for local bindings, scans the remainder of the enclosing block for a close.
func classifyAssign(assign inspector.Cursor, cur inspector.Cursor, ctx *engine.Context) Result {
	stmt := assign.Node().(*ast.AssignStmt)

	target := assignTarget(stmt, cur.Node(), ctx)

	switch l := target.(type) {
	case *ast.Ident:
		if l.Name == "_" {
			return Result{Disposition: EscapesDiscard}
		}

		obj := ctx.ObjectOf(l)
		if obj == nil {
			return Result{Disposition: EscapesUnknown}
		}

		return closedLater(assign, obj, l, ctx)

	case *ast.SelectorExpr:
		return Result{Disposition: EscapesField}

	default:
		return Result{Disposition: EscapesUnknown}
	}
}

// classifyValueSpec resolves a var declaration binding the resource.
func classifyValueSpec(spec inspector.Cursor, cur inspector.Cursor, ctx *engine.Context) Result {
	vspec := spec.Node().(*ast.ValueSpec)

	for i, value := range vspec.Values {
		if value != cur.Node() || i >= len(vspec.Names) {
			continue
		}

		name := vspec.Names[i]

		obj := ctx.ObjectOf(name)
		if obj == nil {
			return Result{Disposition: EscapesUnknown}
		}

		// Scan from the declaration statement enclosing the spec.
		decl := spec.Parent().Parent()
		if _, ok := decl.Node().(*ast.DeclStmt); !ok {
			return Result{Disposition: EscapesUnknown}
		}

		return closedLater(decl, obj, name, ctx)
	}

	return Result{Disposition: EscapesUnknown}
}

// assignTarget maps the assigned resource expression to its left-hand side.
// A single multi-value call selects the tuple element with resource type.
func assignTarget(stmt *ast.AssignStmt, value ast.Node, ctx *engine.Context) ast.Expr {
	if len(stmt.Rhs) == 1 && len(stmt.Lhs) > 1 {
		tuple, ok := ctx.TypeOf(stmt.Rhs[0]).(*types.Tuple)
		if !ok || tuple.Len() != len(stmt.Lhs) {
			return nil
		}

		for i := range tuple.Len() {
			if IsResource(tuple.At(i).Type()) {
				return stmt.Lhs[i]
			}
		}

		return nil
	}

	for i, rhs := range stmt.Rhs {
		if rhs == value && i < len(stmt.Lhs) {
			return stmt.Lhs[i]
		}
	}

	return nil
}

// closedLater scans the statements following the binding in its enclosing
// block for a deferred or explicit close, a contracted hand-off, or a
// contracted return of the bound local.
func closedLater(binding inspector.Cursor, obj types.Object, id *ast.Ident, ctx *engine.Context) Result {
	stmts, ok := enclosingStatements(binding)
	if !ok {
		return Result{Disposition: EscapesUnknown}
	}

	after := binding.Node().End()

	for _, s := range stmts {
		if s.Pos() < after {
			continue
		}

		switch s := s.(type) {
		case *ast.DeferStmt:
			if isCloseCallOn(s.Call, obj, ctx) {
				return Result{Disposition: DeferredClose, Binding: id}
			}

		case *ast.ExprStmt:
			call, ok := s.X.(*ast.CallExpr)
			if !ok {
				continue
			}

			if isCloseCallOn(call, obj, ctx) {
				return Result{Disposition: ClosedExplicitly, Binding: id}
			}

			if usesAsArgument(call, obj, ctx) && calleeHasDirective(call, directive.Closes, ctx) {
				return Result{Disposition: TransfersToCallee, Binding: id}
			}

		case *ast.ReturnStmt:
			if !returnsObject(s, obj, ctx) {
				continue
			}

			return classifyReturnOf(binding, id, ctx)
		}
	}

	return Result{Disposition: EscapesScope, Binding: id}
}

func classifyReturnOf(binding inspector.Cursor, id *ast.Ident, ctx *engine.Context) Result {
	res := classifyReturn(binding, ctx)
	res.Binding = id

	return res
}

// enclosingStatements returns the statement list of the block containing the
// binding statement.
func enclosingStatements(binding inspector.Cursor) ([]ast.Stmt, bool) {
	switch b := binding.Parent().Node().(type) {
	case *ast.BlockStmt:
		return b.List, true

	case *ast.CaseClause:
		return b.Body, true

	case *ast.CommClause:
		return b.Body, true

	default:
		return nil, false
	}
}

// isCloseSelector reports whether the selector names a no-argument Close.
func isCloseSelector(sel *ast.SelectorExpr, call *ast.CallExpr) bool {
	return sel.Sel.Name == "Close" && len(call.Args) == 0
}

// isCloseCallOn reports whether the call is obj.Close().
func isCloseCallOn(call *ast.CallExpr, obj types.Object, ctx *engine.Context) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || !isCloseSelector(sel, call) {
		return false
	}

	id, ok := ast.Unparen(sel.X).(*ast.Ident)

	return ok && ctx.ObjectOf(id) == obj
}

// usesAsArgument reports whether obj appears as a direct argument.
func usesAsArgument(call *ast.CallExpr, obj types.Object, ctx *engine.Context) bool {
	for _, arg := range call.Args {
		if id, ok := ast.Unparen(arg).(*ast.Ident); ok && ctx.ObjectOf(id) == obj {
			return true
		}
	}

	return false
}

// returnsObject reports whether the return statement returns obj directly.
func returnsObject(ret *ast.ReturnStmt, obj types.Object, ctx *engine.Context) bool {
	for _, result := range ret.Results {
		if id, ok := ast.Unparen(result).(*ast.Ident); ok && ctx.ObjectOf(id) == obj {
			return true
		}
	}

	return false
}

// calleeHasDirective reports whether the call's callee is declared in the
// analyzed compilation unit with the given directive. Unresolvable callees
// fail closed.
func calleeHasDirective(call *ast.CallExpr, name directive.Name, ctx *engine.Context) bool {
	fn, _ := typeutil.Callee(ctx.Info(), call).(*types.Func)
	if fn == nil {
		return false
	}

	return directive.OnFunc(ctx.FuncDeclOf(fn), name)
}
