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

// Package matcher provides composable predicates over syntax tree nodes.
//
// A [Matcher] is a pure function of a cursor and the read-only analysis
// context; combinators compose matchers without side effects, so checkers can
// precompute shared matcher values once and reuse them across an entire run.
// Matchers that need symbol or type information fail closed: an unresolvable
// symbol is treated as no match, never as an error.
package matcher

import (
	"golang.org/x/tools/go/ast/inspector"

	"augur.tools/augur/internal/engine"
)

// Matcher is a side-effect-free predicate over a tree node.
type Matcher func(c inspector.Cursor, ctx *engine.Context) bool

// AllOf matches when every matcher in the ordered list matches. Evaluation
// short-circuits; an empty list is vacuously true.
func AllOf(ms ...Matcher) Matcher {
	return func(c inspector.Cursor, ctx *engine.Context) bool {
		for _, m := range ms {
			if !m(c, ctx) {
				return false
			}
		}

		return true
	}
}

// AnyOf matches when at least one matcher in the ordered list matches.
// Evaluation short-circuits; an empty list is vacuously false.
func AnyOf(ms ...Matcher) Matcher {
	return func(c inspector.Cursor, ctx *engine.Context) bool {
		for _, m := range ms {
			if m(c, ctx) {
				return true
			}
		}

		return false
	}
}

// Not negates a matcher.
func Not(m Matcher) Matcher {
	return func(c inspector.Cursor, ctx *engine.Context) bool {
		return !m(c, ctx)
	}
}
