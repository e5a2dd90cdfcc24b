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

// Package engine holds the checker contract and the per-run orchestration:
// findings, the read-only analysis context handed to every matcher and
// analyzer call, and the node-kind dispatch over one traversal pass.
package engine

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"augur.tools/augur/internal/astutil"
)

// Context is the read-only analysis state passed explicitly through every
// matcher and analyzer call. It never changes during one traversal pass; the
// only mutation of a run is the accumulation of findings in the orchestrator.
type Context struct {
	// Pass supplies the syntax trees, resolved symbols and type information.
	Pass *analysis.Pass

	// File is the compilation unit currently being traversed.
	File astutil.CurrentFile
}

// Info returns the pass's type information.
func (c *Context) Info() *types.Info {
	return c.Pass.TypesInfo
}

// TypeOf returns the static type of an expression, or nil if unresolved.
func (c *Context) TypeOf(e ast.Expr) types.Type {
	return c.Pass.TypesInfo.TypeOf(e)
}

// ObjectOf returns the object an identifier denotes, or nil if unresolved.
func (c *Context) ObjectOf(id *ast.Ident) types.Object {
	return c.Pass.TypesInfo.ObjectOf(id)
}

// FileFor returns the syntax tree of the pass containing pos, or nil when the
// position lies outside the analyzed compilation unit.
func (c *Context) FileFor(pos token.Pos) *ast.File {
	if !pos.IsValid() {
		return nil
	}

	for _, f := range c.Pass.Files {
		if f.FileStart <= pos && pos < f.FileEnd {
			return f
		}
	}

	return nil
}

// FuncDeclOf locates the declaration of a function. It returns nil when the
// declaration lies outside the analyzed compilation unit, so callers must
// fail closed on partially resolved code.
func (c *Context) FuncDeclOf(fn *types.Func) *ast.FuncDecl {
	if fn == nil {
		return nil
	}

	file := c.FileFor(fn.Pos())
	if file == nil {
		return nil
	}

	for _, d := range file.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok && fd.Name.Pos() == fn.Pos() {
			return fd
		}
	}

	return nil
}

// FieldDeclOf locates the struct field declaration of a field variable.
// It returns nil when the declaration lies outside the analyzed compilation
// unit; no fix can be synthesized for such fields.
func (c *Context) FieldDeclOf(v *types.Var) *ast.Field {
	if v == nil {
		return nil
	}

	file := c.FileFor(v.Pos())
	if file == nil {
		return nil
	}

	var found *ast.Field

	ast.Inspect(file, func(n ast.Node) bool {
		if found != nil || n == nil {
			return false
		}

		if v.Pos() < n.Pos() || n.End() <= v.Pos() {
			return false // prune subtrees not covering the declaration
		}

		if field, ok := n.(*ast.Field); ok {
			for _, name := range field.Names {
				if name.Pos() == v.Pos() {
					found = field
				}
			}
		}

		return true
	})

	return found
}
