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

package engine

import (
	"context"
	"go/ast"
	"reflect"
	"runtime/trace"

	"golang.org/x/tools/go/ast/inspector"

	"augur.tools/augur/internal/astutil"
)

// Orchestrator dispatches enabled checkers over one traversal pass.
//
// The node-kind to checker-list map is built once per run; checker addition
// stays purely additive and no virtual dispatch happens per node.
type Orchestrator struct {
	kinds    []ast.Node
	dispatch map[reflect.Type][]Checker
}

// NewOrchestrator builds the dispatch table for the given checkers.
func NewOrchestrator(checkers ...Checker) *Orchestrator {
	o := &Orchestrator{dispatch: make(map[reflect.Type][]Checker)}

	for _, chk := range checkers {
		for _, kind := range chk.NodeTypes() {
			t := reflect.TypeOf(kind)
			if _, seen := o.dispatch[t]; !seen {
				o.kinds = append(o.kinds, kind)
			}

			o.dispatch[t] = append(o.dispatch[t], chk)
		}
	}

	return o
}

// Empty reports whether no checker is registered.
func (o *Orchestrator) Empty() bool {
	return len(o.dispatch) == 0
}

// CheckFile runs all checkers over one file cursor and returns the surviving
// findings. Suppressed findings are discarded before they reach any sink.
func (o *Orchestrator) CheckFile(ctx context.Context, ectx *Context, file inspector.Cursor) []Finding {
	defer trace.StartRegion(ctx, "CheckFile").End()

	var findings []Finding

	for c := range file.Preorder(o.kinds...) {
		for _, chk := range o.dispatch[reflect.TypeOf(c.Node())] {
			for _, f := range chk.Check(c, ectx) {
				if suppressed(f, c, ectx.File) {
					continue
				}

				findings = append(findings, f)
			}
		}
	}

	return findings
}

// suppressed reports whether a finding is gated by a nolint comment on its
// line, on the enclosing function declaration, or on the file.
func suppressed(f Finding, c inspector.Cursor, file astutil.CurrentFile) bool {
	if file.NoLintComment(f.Pos, f.Checker) {
		return true
	}

	if doc := file.File().Doc; doc != nil && astutil.CommentHasNoLint(doc.List[len(doc.List)-1], f.Checker) {
		return true
	}

	for e := range c.Enclosing((*ast.FuncDecl)(nil)) {
		decl := e.Node().(*ast.FuncDecl)
		if doc := decl.Doc; doc != nil && astutil.CommentHasNoLint(doc.List[len(doc.List)-1], f.Checker) {
			return true
		}
	}

	return false
}
