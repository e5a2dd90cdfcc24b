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

	"golang.org/x/tools/go/ast/inspector"

	"augur.tools/augur/internal/directive"
	"augur.tools/augur/internal/engine"
)

// CalleeHasDirective matches a call whose callee's declaration carries the
// directive. Callees declared outside the analyzed compilation unit never
// match: the directive cannot be seen, so the matcher fails closed.
func CalleeHasDirective(name directive.Name) Matcher {
	return func(c inspector.Cursor, ctx *engine.Context) bool {
		fn := Callee(c, ctx)
		if fn == nil {
			return false
		}

		return directive.OnFunc(ctx.FuncDeclOf(fn), name)
	}
}

// EnclosingFunctionHasDirective matches any node inside a function whose
// declaration carries the directive.
func EnclosingFunctionHasDirective(name directive.Name) Matcher {
	return func(c inspector.Cursor, ctx *engine.Context) bool {
		for e := range c.Enclosing((*ast.FuncDecl)(nil)) {
			return directive.OnFunc(e.Node().(*ast.FuncDecl), name)
		}

		return false
	}
}
