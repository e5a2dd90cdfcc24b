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

// Package closeleak reports resource-producing expressions that escape their
// scope without a guaranteed close.
//
// A resource is any value whose method set contains Close() error. The safe
// idiom is to bind the value to a fresh variable and defer its close:
//
//	f := open(p)
//	defer f.Close()
//
// Hand-offs documented with //augur:closer and //augur:closes discharge the
// obligation across function boundaries.
package closeleak

import (
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"augur.tools/augur/internal/engine"
	"augur.tools/augur/internal/escape"
	"augur.tools/augur/internal/matcher"
)

// Name is the stable checker name used for dispatch and suppression.
const Name = "closeleak"

const doc = "reports Close() error values that escape their scope without a guaranteed close"

type checker struct {
	trigger matcher.Matcher
}

// New returns the closeleak checker.
func New() engine.Checker {
	return &checker{
		trigger: matcher.AllOf(
			producesResource,
			// A call on a resource receiver is a chain step. The obligation
			// stays with the root call, which is reported instead.
			matcher.Not(matcher.ReceiverOfType(escape.IsResource)),
		),
	}
}

func (*checker) Name() string { return Name }

func (*checker) Doc() string { return doc }

func (*checker) Severity() engine.Severity { return engine.SeverityWarning }

func (*checker) NodeTypes() []ast.Node {
	return []ast.Node{(*ast.CallExpr)(nil)}
}

func (k *checker) Check(c inspector.Cursor, ctx *engine.Context) []engine.Finding {
	if !k.trigger(c, ctx) {
		return nil
	}

	res := escape.Classify(c, ctx)
	if res.Disposition.Safe() {
		return nil
	}

	call := c.Node().(*ast.CallExpr)

	finding := engine.Finding{
		Checker:  Name,
		Message:  message(call, res, ctx),
		Severity: engine.SeverityWarning,
		Pos:      call.Pos(),
		End:      call.End(),
		Fix:      synthesizeFix(c, res, ctx),
	}

	return []engine.Finding{finding}
}

func message(call *ast.CallExpr, res escape.Result, ctx *engine.Context) string {
	return fmt.Sprintf("%s should be closed (%s)", resourceTypeString(call, ctx), res.Disposition)
}

// resourceTypeString renders the produced resource type relative to the
// analyzed package.
func resourceTypeString(call *ast.CallExpr, ctx *engine.Context) string {
	t := resourceType(ctx.TypeOf(call))
	if t == nil {
		return "resource"
	}

	return types.TypeString(t, types.RelativeTo(ctx.Pass.Pkg))
}

// resourceType extracts the resource-typed component of a call result.
func resourceType(t types.Type) types.Type {
	if tuple, ok := t.(*types.Tuple); ok {
		for i := range tuple.Len() {
			if escape.IsResource(tuple.At(i).Type()) {
				return tuple.At(i).Type()
			}
		}

		return nil
	}

	if escape.IsResource(t) {
		return t
	}

	return nil
}

// producesResource matches a genuine call producing a resource, directly or
// as one element of a multi-value result. Type conversions do not create a
// new obligation.
func producesResource(c inspector.Cursor, ctx *engine.Context) bool {
	call, ok := c.Node().(*ast.CallExpr)
	if !ok {
		return false
	}

	if tv, ok := ctx.Info().Types[call.Fun]; ok && tv.IsType() {
		return false
	}

	return resourceType(ctx.TypeOf(call)) != nil
}
