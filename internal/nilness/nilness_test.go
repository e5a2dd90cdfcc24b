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

package nilness_test

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"testing"

	"golang.org/x/tools/go/ast/inspector"

	. "augur.tools/augur/internal/nilness"
	"augur.tools/augur/internal/testsource"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	fset, f := testsource.ParseFile(t, `package test

func f(p, q *int) bool {
	a := p == nil
	b := nil != q
	c := p == q
	d := len("") == 0
	return a && b && c && d
}
`)
	_, info := testsource.Check(t, fset, f)

	var comparisons []*ast.BinaryExpr

	ast.Inspect(f, func(n ast.Node) bool {
		if bin, ok := n.(*ast.BinaryExpr); ok && (bin.Op == token.EQL || bin.Op == token.NEQ) {
			comparisons = append(comparisons, bin)
		}

		return true
	})

	if len(comparisons) != 4 {
		t.Fatalf("found %d comparisons, want 4", len(comparisons))
	}

	tests := []struct {
		name     string
		ok       bool
		polarity Polarity
		operand  string
	}{
		{name: "EqualsNil", ok: true, polarity: AssertsNil, operand: "p"},
		{name: "NilNotEquals", ok: true, polarity: AssertsNonNil, operand: "q"},
		{name: "PointerComparison", ok: false},
		{name: "LengthComparison", ok: false},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			check, ok := Check(comparisons[i], info)
			if ok != tt.ok {
				t.Fatalf("Check() ok = %t, want %t", ok, tt.ok)
			}

			if !ok {
				return
			}

			if check.Polarity != tt.polarity {
				t.Errorf("Check() polarity = %v, want %v", check.Polarity, tt.polarity)
			}

			v, isVar := check.Obj.(*types.Var)
			if !isVar || v.Name() != tt.operand {
				t.Errorf("Check() object = %v, want variable %q", check.Obj, tt.operand)
			}
		})
	}
}

func TestHasDefinitelyNilBranch(t *testing.T) {
	t.Parallel()

	fset, f := testsource.ParseFile(t, `package test

type buf []byte

func f(k, u []byte) {
	var s []byte
	s = nil
	s = buf(nil)
	s = []byte(nil)
	s = k
	s = u
	s = buf(k)
	_ = s
}
`)
	_, info := testsource.Check(t, fset, f)

	var values []ast.Expr

	ast.Inspect(f, func(n ast.Node) bool {
		if assign, ok := n.(*ast.AssignStmt); ok && len(assign.Lhs) == 1 {
			if id, isIdent := assign.Lhs[0].(*ast.Ident); isIdent && id.Name == "s" {
				values = append(values, assign.Rhs[0])
			}
		}

		return true
	})

	if len(values) != 6 {
		t.Fatalf("found %d assignments, want 6", len(values))
	}

	known := NewNameSet("k")
	proven := NewNameSet()

	tests := []struct {
		name string
		want bool
	}{
		{name: "NilLiteral", want: true},
		{name: "NamedConversionOfNil", want: true},
		{name: "SliceConversionOfNil", want: true},
		{name: "KnownNilVariable", want: true},
		{name: "UnknownVariable", want: false},
		{name: "ConversionOfKnownNil", want: true},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := HasDefinitelyNilBranch(values[i], known, proven, info); got != tt.want {
				t.Errorf("HasDefinitelyNilBranch() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestIsNilLiteralUnresolved(t *testing.T) {
	t.Parallel()

	id := &ast.Ident{Name: "nil"}
	info := &types.Info{Uses: make(map[*ast.Ident]types.Object)}

	if IsNilLiteral(id, info) {
		t.Error("an unresolved identifier spelled nil must not count as the nil literal")
	}
}

func TestProvenNilVars(t *testing.T) {
	t.Parallel()

	fset, f := testsource.ParseFile(t, `package test

func f(p, q *int) {
	if p == nil {
		_ = 1
	}
	if p != nil {
		_ = 2
	} else {
		_ = 3
	}
	if p == nil && q == nil {
		_ = 4
	}
	if p != nil || q != nil {
		_ = 5
	} else {
		_ = 6
	}
	if !(p != nil) {
		_ = 7
	}
	if p == nil {
		p = q
		_ = 8
	}
	if p == nil {
		_ = 9
		p = q
	}
}
`)
	_, info := testsource.Check(t, fset, f)

	// Index the probe statements by their literal markers.
	probes := make(map[int]inspector.Cursor)

	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.AssignStmt)(nil)) {
		assign := c.Node().(*ast.AssignStmt)

		lit, ok := assign.Rhs[0].(*ast.BasicLit)
		if !ok {
			continue
		}

		n, err := strconv.Atoi(lit.Value)
		if err != nil {
			t.Fatalf("bad probe marker %q: %v", lit.Value, err)
		}

		probes[n] = c
	}

	tests := []struct {
		name  string
		probe int
		want  []string
	}{
		{name: "ThenOfEqualsNil", probe: 1, want: []string{"p"}},
		{name: "ThenOfNotEqualsNil", probe: 2, want: nil},
		{name: "ElseOfNotEqualsNil", probe: 3, want: []string{"p"}},
		{name: "ConjunctionThen", probe: 4, want: []string{"p", "q"}},
		{name: "DisjunctionThen", probe: 5, want: nil},
		{name: "DisjunctionElse", probe: 6, want: []string{"p", "q"}},
		{name: "NegatedGuard", probe: 7, want: []string{"p"}},
		{name: "ReassignedBeforeUse", probe: 8, want: nil},
		{name: "ReassignedAfterUse", probe: 9, want: []string{"p"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, ok := probes[tt.probe]
			if !ok {
				t.Fatalf("probe %d not found", tt.probe)
			}

			proven := ProvenNilVars(c, info)
			if len(proven) != len(tt.want) {
				t.Fatalf("ProvenNilVars() = %v, want %v", proven, tt.want)
			}

			for _, name := range tt.want {
				if !proven.Has(name) {
					t.Errorf("ProvenNilVars() is missing %q", name)
				}
			}
		})
	}
}
