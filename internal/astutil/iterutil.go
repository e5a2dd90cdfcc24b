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

package astutil

import (
	"go/ast"
	"iter"
)

// AllIdentNames yields the name of every identifier below node, including the
// node itself. Blank identifiers are skipped.
func AllIdentNames(node ast.Node) iter.Seq[string] {
	return func(yield func(string) bool) {
		done := false

		ast.Inspect(node, func(n ast.Node) bool {
			if done {
				return false
			}

			id, ok := n.(*ast.Ident)
			if !ok || id.Name == "_" {
				return true
			}

			done = !yield(id.Name)

			return !done
		})
	}
}

// AllAssignedIdents yields all identifiers assigned by an assignment statement.
func AllAssignedIdents(stmt *ast.AssignStmt) iter.Seq[*ast.Ident] {
	return func(yield func(*ast.Ident) bool) {
		for _, expr := range stmt.Lhs {
			id, ok := expr.(*ast.Ident)
			if !ok || id.Name == "_" {
				continue // blank identifier
			}

			if !yield(id) {
				return
			}
		}
	}
}
