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
	"go/ast"

	"golang.org/x/tools/go/ast/inspector"
)

// Checker detects one bug pattern. Implementations must be stateless across
// calls: the same checker value is invoked for every matching node of a run,
// and ordering between sibling checkers is unspecified.
type Checker interface {
	// Name is the stable identifier used for reporting and suppression.
	Name() string

	// Doc is a short description of the bug pattern.
	Doc() string

	// Severity is the tier assigned to the checker's findings.
	Severity() Severity

	// NodeTypes is the capability set: the node kinds the checker wants to
	// examine, as nil pointers of the respective AST types.
	NodeTypes() []ast.Node

	// Check examines one node. The cursor provides parent navigation; ctx is
	// the read-only analysis state of the run.
	Check(c inspector.Cursor, ctx *Context) []Finding
}
