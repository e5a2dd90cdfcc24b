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
	"go/ast"
	"go/types"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/go/ast/inspector"

	"augur.tools/augur/internal/astutil"
	"augur.tools/augur/internal/engine"
)

// freshName picks an identifier for the new binding that collides with no
// name visible in the enclosing function. The base name derives from the
// resource type, so *os.File becomes "file".
func freshName(c inspector.Cursor, ctx *engine.Context) string {
	base := baseName(resourceType(ctx.TypeOf(c.Node().(*ast.CallExpr))))

	taken := takenNames(c, ctx)

	if _, ok := taken[base]; !ok {
		return base
	}

	for i := 2; ; i++ {
		candidate := base + strconv.Itoa(i)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}

func baseName(t types.Type) string {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := t.(*types.Named)
	if !ok {
		return "res"
	}

	name := named.Obj().Name()

	r, size := utf8.DecodeRuneInString(name)
	if !unicode.IsLetter(r) {
		return "res"
	}

	return strings.ToLower(string(r)) + name[size:]
}

// takenNames collects every identifier spelled in the scope the binding will
// live in, the enclosing function when there is one and the whole file
// otherwise.
func takenNames(c inspector.Cursor, ctx *engine.Context) map[string]struct{} {
	var scope ast.Node = ctx.File.File()
	for e := range c.Enclosing((*ast.FuncDecl)(nil)) {
		scope = e.Node()

		break
	}

	taken := make(map[string]struct{})
	for name := range astutil.AllIdentNames(scope) {
		taken[name] = struct{}{}
	}

	return taken
}
