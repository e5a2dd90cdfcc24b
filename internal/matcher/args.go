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

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"augur.tools/augur/internal/engine"
)

// Quantifier selects how [HasArguments] applies its element matcher.
type Quantifier uint8

const (
	// All requires every argument to match; a call without arguments matches
	// vacuously.
	All Quantifier = iota

	// AtLeastOne requires at least one matching argument.
	AtLeastOne

	// None requires no argument to match; a call without arguments matches
	// trivially.
	None
)

// String returns the quantifier's name.
func (q Quantifier) String() string {
	switch q {
	case All:
		return "all"

	case AtLeastOne:
		return "at least one"

	case None:
		return "none"

	default:
		return "unknown"
	}
}

// HasArguments applies the element matcher to each argument expression of a
// call, combined according to the quantifier. Non-call nodes never match.
func HasArguments(q Quantifier, element Matcher) Matcher {
	return func(c inspector.Cursor, ctx *engine.Context) bool {
		call, ok := c.Node().(*ast.CallExpr)
		if !ok {
			return false
		}

		for i := range call.Args {
			match := element(c.ChildAt(edge.CallExpr_Args, i), ctx)

			switch q {
			case All:
				if !match {
					return false
				}

			case AtLeastOne:
				if match {
					return true
				}

			case None:
				if match {
					return false
				}
			}
		}

		return q != AtLeastOne
	}
}
