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

package matcher

import (
	"go/ast"
	"go/types"
	"regexp"

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"augur.tools/augur/internal/engine"
)

// Callee returns the function or method a call resolves to, or nil for
// non-calls, builtins and unresolvable callees.
func Callee(c inspector.Cursor, ctx *engine.Context) *types.Func {
	call, ok := c.Node().(*ast.CallExpr)
	if !ok {
		return nil
	}

	fn, _ := typeutil.Callee(ctx.Info(), call).(*types.Func)

	return fn
}

// CallTo matches a call whose callee is declared in the package with the
// given import path and whose name matches the pattern. Methods match on the
// package owning the receiver's named type.
func CallTo(path string, name *regexp.Regexp) Matcher {
	return func(c inspector.Cursor, ctx *engine.Context) bool {
		fn := Callee(c, ctx)
		if fn == nil || fn.Pkg() == nil {
			return false // fail closed on unresolved symbols
		}

		return fn.Pkg().Path() == path && name.MatchString(fn.Name())
	}
}

// OfType matches an expression whose static type satisfies the predicate.
// The predicate receives the resolved type; unresolved expressions never
// match.
func OfType(pred func(types.Type) bool) Matcher {
	return func(c inspector.Cursor, ctx *engine.Context) bool {
		expr, ok := c.Node().(ast.Expr)
		if !ok {
			return false
		}

		t := ctx.TypeOf(expr)

		return t != nil && pred(t)
	}
}

// Implements matches an expression whose static type implements the given
// interface, using the type system's subtyping query.
func Implements(iface *types.Interface) Matcher {
	return OfType(func(t types.Type) bool {
		return types.Implements(t, iface) || types.Implements(types.NewPointer(t), iface)
	})
}

// ReceiverOfType matches a method call whose receiver type satisfies the
// predicate.
func ReceiverOfType(pred func(types.Type) bool) Matcher {
	return func(c inspector.Cursor, ctx *engine.Context) bool {
		fn := Callee(c, ctx)
		if fn == nil {
			return false
		}

		sig, ok := fn.Type().(*types.Signature)
		if !ok || sig.Recv() == nil {
			return false
		}

		return pred(sig.Recv().Type())
	}
}
