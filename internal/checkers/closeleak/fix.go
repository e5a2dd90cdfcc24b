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

package closeleak

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/ast/inspector"

	"augur.tools/augur/internal/edit"
	"augur.tools/augur/internal/engine"
	"augur.tools/augur/internal/escape"
)

var rawcfg = printer.Config{Mode: printer.RawFormat}

// synthesizeFix builds the scoped-acquisition rewrite for an unsafe
// disposition, or nil when no safe rewrite exists. Findings without a fix are
// still reported.
func synthesizeFix(c inspector.Cursor, res escape.Result, ctx *engine.Context) *edit.Fix {
	switch res.Disposition {
	case escape.EscapesScope:
		return deferAfterBinding(c, res.Binding, ctx)

	case escape.EscapesDiscard, escape.EscapesInline,
		escape.EscapesCall, escape.EscapesRange:
		return hoistBinding(c, ctx)

	default:
		// A directly returned resource must stay open for the caller, and
		// field assignments and unresolved contexts have no local rewrite.
		return nil
	}
}

// deferAfterBinding appends "defer <id>.Close()" on a new line after the
// statement that bound the resource.
func deferAfterBinding(c inspector.Cursor, id *ast.Ident, ctx *engine.Context) *edit.Fix {
	binding, ok := bindingStatement(c)
	if !ok || id == nil || enclosedByLoop(binding) {
		return nil
	}

	stmt := binding.Node()
	indent := indentAt(stmt.Pos(), ctx)

	return &edit.Fix{
		Message: fmt.Sprintf("defer closing %s", id.Name),
		Edits: []edit.Edit{{
			Pos:     stmt.End(),
			End:     stmt.End(),
			NewText: fmt.Appendf(nil, "\n%sdefer %s.Close()", indent, id.Name),
		}},
	}
}

// hoistBinding binds the producing expression to a fresh identifier before
// the consuming statement, defers its close, and rewrites the consumer to use
// the binding.
func hoistBinding(c inspector.Cursor, ctx *engine.Context) *edit.Fix {
	call := c.Node().(*ast.CallExpr)

	// A multi-value producer cannot be bound to a single fresh name.
	if _, ok := ctx.TypeOf(call).(*types.Tuple); ok {
		return nil
	}

	consumer, ok := hoistTarget(c)
	if !ok {
		return nil
	}

	expr, err := render(call, ctx)
	if err != nil {
		return nil
	}

	id := freshName(c, ctx)
	stmt := consumer.Node()
	indent := indentAt(stmt.Pos(), ctx)

	message := fmt.Sprintf("bind to %s and defer its close", id)

	// A statement that is exactly the discarded call collapses into the
	// binding, a bare identifier would not be a valid statement.
	if es, ok := stmt.(*ast.ExprStmt); ok && ast.Unparen(es.X) == call {
		replacement := fmt.Sprintf("%s := %s\n%sdefer %s.Close()", id, expr, indent, id)

		return &edit.Fix{
			Message: message,
			Edits: []edit.Edit{
				{Pos: stmt.Pos(), End: stmt.End(), NewText: []byte(replacement)},
			},
		}
	}

	binding := fmt.Sprintf("%s := %s\n%sdefer %s.Close()\n%s", id, expr, indent, id, indent)

	return &edit.Fix{
		Message: message,
		Edits: []edit.Edit{
			{Pos: stmt.Pos(), End: stmt.Pos(), NewText: []byte(binding)},
			{Pos: call.Pos(), End: call.End(), NewText: []byte(id)},
		},
	}
}

// bindingStatement finds the enclosing assignment or declaration statement.
func bindingStatement(c inspector.Cursor) (inspector.Cursor, bool) {
	for e := range c.Enclosing((*ast.AssignStmt)(nil), (*ast.DeclStmt)(nil)) {
		return e, true
	}

	return c, false
}

// hoistTarget finds the nearest enclosing statement that sits directly in a
// statement list, so new statements can be inserted before it. Positions a
// loop re-evaluates have no such statement: a hoist out of a condition or
// post statement would acquire once instead of per iteration.
func hoistTarget(c inspector.Cursor) (inspector.Cursor, bool) {
	prev := c

	for cur := c.Parent(); ; prev, cur = cur, cur.Parent() {
		switch node := cur.Node().(type) {
		case *ast.ForStmt:
			if prev.Node() == node.Cond || prev.Node() == node.Post {
				return cur, false
			}

		case *ast.File:
			return cur, false
		}

		if _, ok := cur.Node().(ast.Stmt); !ok {
			continue
		}

		switch cur.Parent().Node().(type) {
		case *ast.BlockStmt, *ast.CaseClause, *ast.CommClause:
			// A defer in a loop body would hold every acquisition open
			// until function exit.
			if enclosedByLoop(cur) {
				return cur, false
			}

			return cur, true
		}
	}
}

// enclosedByLoop reports whether a loop encloses the statement within its
// function.
func enclosedByLoop(c inspector.Cursor) bool {
	for cur := c.Parent(); ; cur = cur.Parent() {
		switch cur.Node().(type) {
		case *ast.ForStmt, *ast.RangeStmt:
			return true

		case *ast.FuncDecl, *ast.FuncLit, *ast.File:
			return false
		}
	}
}

// render reprints the expression with its original formatting preserved.
func render(node ast.Node, ctx *engine.Context) (string, error) {
	var buf bytes.Buffer
	if err := rawcfg.Fprint(&buf, ctx.Pass.Fset, node); err != nil {
		return "", fmt.Errorf("can't format expression: %w", err)
	}

	return buf.String(), nil
}

// indentAt reproduces the indentation of the line holding pos, assuming
// tab-indented source.
func indentAt(pos token.Pos, ctx *engine.Context) string {
	column := ctx.Pass.Fset.Position(pos).Column
	if column < 1 {
		return ""
	}

	return strings.Repeat("\t", column-1)
}
