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

package nilness

import (
	"go/ast"
	"go/token"
	"go/types"
)

// Polarity describes what a nil comparison asserts about its operand on the
// branch where the comparison holds.
type Polarity uint8

const (
	// AssertsNil marks comparisons of the form x == nil.
	AssertsNil Polarity = iota

	// AssertsNonNil marks comparisons of the form x != nil.
	AssertsNonNil
)

// NilCheck describes a detected nil comparison: the expression compared
// against nil and the comparison's polarity. It is constructed transiently
// per binary expression examined.
type NilCheck struct {
	// Expr is the bare expression compared against nil.
	Expr ast.Expr

	// Obj is the resolved symbol when Expr denotes one, nil otherwise.
	Obj types.Object

	// Polarity states whether the check asserts nil or non-nil.
	Polarity Polarity
}

// Check inspects a binary expression and extracts the nil comparison it
// performs, if any.
func Check(bin *ast.BinaryExpr, info *types.Info) (NilCheck, bool) {
	var polarity Polarity

	switch bin.Op {
	case token.EQL:
		polarity = AssertsNil

	case token.NEQ:
		polarity = AssertsNonNil

	default:
		return NilCheck{}, false
	}

	var expr ast.Expr

	switch {
	case IsNilLiteral(bin.Y, info):
		expr = bin.X

	case IsNilLiteral(bin.X, info):
		expr = bin.Y

	default:
		return NilCheck{}, false
	}

	return NilCheck{Expr: expr, Obj: objectOf(expr, info), Polarity: polarity}, true
}

// IsNilLiteral reports whether the expression is the predeclared nil.
// Identifiers the type checker did not resolve do not count, even when
// spelled "nil": a shadowing declaration could rebind the name.
func IsNilLiteral(e ast.Expr, info *types.Info) bool {
	id, ok := ast.Unparen(e).(*ast.Ident)
	if !ok {
		return false
	}

	obj, resolved := info.Uses[id]
	if !resolved {
		return false
	}

	_, isNil := obj.(*types.Nil)

	return isNil
}

// objectOf resolves the symbol an expression denotes, or nil.
func objectOf(e ast.Expr, info *types.Info) types.Object {
	switch e := ast.Unparen(e).(type) {
	case *ast.Ident:
		return info.ObjectOf(e)

	case *ast.SelectorExpr:
		return info.ObjectOf(e.Sel)

	default:
		return nil
	}
}
