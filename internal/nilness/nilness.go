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

// Package nilness decides whether an expression is provably nil on at least
// one reachable path.
//
// This is a local dataflow facility over one expression tree plus the
// syntactic chain of enclosing conditionals, not a control-flow-graph solve.
// The consumers only need a conservative local proof: a false "definitely
// nil" answer is never acceptable, missed nil values are.
package nilness

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
)

// NameSet is an immutable set of variable names known to be nil at the
// current point. It is recomputed per traversal point and never persisted.
type NameSet map[string]struct{}

// NewNameSet builds a set from the given names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}

	return s
}

// Has reports whether the set contains the name.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]

	return ok
}

// HasDefinitelyNilBranch reports whether the expression, following its own
// structure, can evaluate to nil: a nil literal, a conversion of one, or a
// variable that is already known nil or proven nil by an enclosing guard.
//
// Only the expression's syntax is followed; no assignment tracking happens
// here.
func HasDefinitelyNilBranch(expr ast.Expr, known, proven NameSet, info *types.Info) bool {
	switch e := ast.Unparen(expr).(type) {
	case *ast.Ident:
		if IsNilLiteral(e, info) {
			return true
		}

		return isVariable(e, info) && (known.Has(e.Name) || proven.Has(e.Name))

	case *ast.CallExpr:
		// A conversion T(nil) is as nil as its operand.
		if len(e.Args) != 1 {
			return false
		}

		if tv, ok := info.Types[e.Fun]; !ok || !tv.IsType() {
			return false
		}

		return HasDefinitelyNilBranch(e.Args[0], known, proven, info)

	default:
		return false
	}
}

// ProvenNilVars walks upward from the cursor's position and collects the
// names of variables whose enclosing if-guards establish them as nil on the
// branch actually taken to reach this point, e.g. the body of
// `if x == nil { ... }` or the else branch of `if x != nil { ... }`.
//
// Only the syntactic chain of enclosing conditionals is inspected. This is a
// deliberate precision trade-off: it can miss nil variables in complex
// branching but never claims nil wrongly.
func ProvenNilVars(c inspector.Cursor, info *types.Info) NameSet {
	proven := make(NameSet)
	pos := c.Node().Pos()

	for e := range c.Enclosing((*ast.IfStmt)(nil)) {
		stmt := e.Node().(*ast.IfStmt)

		var branch ast.Node

		switch {
		case stmt.Body != nil && within(pos, stmt.Body):
			collectProven(stmt.Cond, true, proven, info)
			branch = stmt.Body

		case stmt.Else != nil && within(pos, stmt.Else):
			collectProven(stmt.Cond, false, proven, info)
			branch = stmt.Else

		default:
			continue
		}

		dropReassigned(branch, pos, proven)
	}

	return proven
}

// dropReassigned removes names written to between the branch start and pos.
// The guard proved the value at the condition, not past a later assignment,
// so any intervening write invalidates the proof.
func dropReassigned(branch ast.Node, pos token.Pos, proven NameSet) {
	ast.Inspect(branch, func(n ast.Node) bool {
		if n == nil || n.Pos() >= pos {
			return false
		}

		assign, ok := n.(*ast.AssignStmt)
		if !ok {
			return true
		}

		for _, lhs := range assign.Lhs {
			if id, ok := ast.Unparen(lhs).(*ast.Ident); ok {
				delete(proven, id.Name)
			}
		}

		return true
	})
}

func within(pos token.Pos, node ast.Node) bool {
	return node.Pos() <= pos && pos < node.End()
}

// collectProven gathers variables proven nil by cond on the then branch
// (inThen) or the else branch (!inThen).
//
// Conjunctions prove each operand on the then branch; disjunctions of
// non-nil assertions prove each operand on the else branch. Anything else
// proves nothing, which is safe.
func collectProven(cond ast.Expr, inThen bool, proven NameSet, info *types.Info) {
	switch e := ast.Unparen(cond).(type) {
	case *ast.UnaryExpr:
		if e.Op == token.NOT {
			collectProven(e.X, !inThen, proven, info)
		}

	case *ast.BinaryExpr:
		switch {
		case e.Op == token.LAND && inThen, e.Op == token.LOR && !inThen:
			collectProven(e.X, inThen, proven, info)
			collectProven(e.Y, inThen, proven, info)

		default:
			check, ok := Check(e, info)
			if !ok {
				return
			}

			wantPolarity := AssertsNil
			if !inThen {
				wantPolarity = AssertsNonNil
			}

			if check.Polarity != wantPolarity {
				return
			}

			if id, ok := ast.Unparen(check.Expr).(*ast.Ident); ok && isVariable(id, info) {
				proven[id.Name] = struct{}{}
			}
		}
	}
}

// isVariable reports whether the identifier denotes a variable. Unresolved
// identifiers do not count: the proof must fail closed.
func isVariable(id *ast.Ident, info *types.Info) bool {
	_, ok := info.ObjectOf(id).(*types.Var)

	return ok
}
