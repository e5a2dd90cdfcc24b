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

package escape_test

import (
	"go/ast"
	"strings"
	"testing"

	"golang.org/x/tools/go/ast/inspector"

	"augur.tools/augur/internal/engine"
	. "augur.tools/augur/internal/escape"
	"augur.tools/augur/internal/testsource"
)

// classifySrc declares one scenario function per hand-off shape. Each scenario
// contains exactly one call to an acquire* producer, which is the expression
// under classification.
const classifySrc = `package test

type handle struct{}

func (handle) Close() error { return nil }

func (h handle) chain() handle { return h }

func (handle) done() {}

type list []int

func (list) Close() error { return nil }

func acquire() handle { return handle{} }

func acquirePair() (handle, error) { return handle{}, nil }

func acquireList() list { return list{} }

//augur:closes
func consume(h handle) {}

func plain(h handle) {}

func deferred() {
	h := acquire()
	defer h.Close()
}

func closedExplicitly() {
	h := acquire()
	h.Close()
}

func chainClose() {
	acquire().Close()
}

func chainInline() {
	acquire().chain().done()
}

func transferred() {
	consume(acquire())
}

func escapesCall() {
	plain(acquire())
}

//augur:closer
func provide() handle {
	return acquire()
}

func escapesReturn() handle {
	return acquire()
}

func discardStmt() {
	acquire()
}

func discardBlank() {
	_ = acquire()
}

type box struct{ h handle }

func escapesField(b *box) {
	b.h = acquire()
}

func escapesScope() {
	h := acquire()
	_ = h
}

func declared() {
	var h = acquire()
	defer h.Close()
}

func pair() {
	h, err := acquirePair()
	_ = err
	_ = h
}

//augur:closer
func returnsBinding() handle {
	h := acquire()
	return h
}

func inCase(n int) {
	switch n {
	default:
		h := acquire()
		defer h.Close()
	}
}

func ranged() {
	for range acquireList() {
	}
}
`

// producerCall finds the acquire* call inside the named scenario function.
func producerCall(tb testing.TB, in *inspector.Inspector, fn string) inspector.Cursor {
	tb.Helper()

	for d := range in.Root().Preorder((*ast.FuncDecl)(nil)) {
		if d.Node().(*ast.FuncDecl).Name.Name != fn {
			continue
		}

		for c := range d.Preorder((*ast.CallExpr)(nil)) {
			id, ok := c.Node().(*ast.CallExpr).Fun.(*ast.Ident)
			if ok && strings.HasPrefix(id.Name, "acquire") {
				return c
			}
		}
	}

	tb.Fatalf("no producer call in %s", fn)

	panic("unreachable")
}

func TestClassify(t *testing.T) {
	t.Parallel()

	p, in, _ := testsource.NewPass(t, classifySrc)
	ctx := &engine.Context{Pass: p}

	tests := []struct {
		fn      string
		want    Disposition
		binding string
	}{
		{fn: "deferred", want: DeferredClose, binding: "h"},
		{fn: "closedExplicitly", want: ClosedExplicitly, binding: "h"},
		{fn: "chainClose", want: ClosedExplicitly},
		{fn: "chainInline", want: EscapesInline},
		{fn: "transferred", want: TransfersToCallee},
		{fn: "escapesCall", want: EscapesCall},
		{fn: "provide", want: TransfersToCaller},
		{fn: "escapesReturn", want: EscapesReturn},
		{fn: "discardStmt", want: EscapesDiscard},
		{fn: "discardBlank", want: EscapesDiscard},
		{fn: "escapesField", want: EscapesField},
		{fn: "escapesScope", want: EscapesScope, binding: "h"},
		{fn: "declared", want: DeferredClose, binding: "h"},
		{fn: "pair", want: EscapesScope, binding: "h"},
		{fn: "returnsBinding", want: TransfersToCaller, binding: "h"},
		{fn: "inCase", want: DeferredClose, binding: "h"},
		{fn: "ranged", want: EscapesRange},
	}

	for _, tt := range tests {
		t.Run(tt.fn, func(t *testing.T) {
			t.Parallel()

			got := Classify(producerCall(t, in, tt.fn), ctx)
			if got.Disposition != tt.want {
				t.Errorf("Classify() = %v, want %v", got.Disposition, tt.want)
			}

			switch {
			case tt.binding == "" && got.Binding != nil:
				t.Errorf("Classify() bound %s, want no binding", got.Binding.Name)

			case tt.binding != "" && (got.Binding == nil || got.Binding.Name != tt.binding):
				t.Errorf("Classify() binding = %v, want %s", got.Binding, tt.binding)
			}
		})
	}
}

func TestIsResource(t *testing.T) {
	t.Parallel()

	p, _, _ := testsource.NewPass(t, `package test

type closes struct{}

func (closes) Close() error { return nil }

type noResult struct{}

func (noResult) Close() {}

type takesArg struct{}

func (takesArg) Close(code int) error { return nil }

type viaPointer struct{}

func (*viaPointer) Close() error { return nil }

type iface interface{ Close() error }

type plain struct{}
`)

	tests := []struct {
		name string
		want bool
	}{
		{name: "closes", want: true},
		{name: "noResult", want: false},
		{name: "takesArg", want: false},
		{name: "viaPointer", want: true},
		{name: "iface", want: true},
		{name: "plain", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			obj := p.Pkg.Scope().Lookup(tt.name)
			if obj == nil {
				t.Fatalf("type %s not found", tt.name)
			}

			if got := IsResource(obj.Type()); got != tt.want {
				t.Errorf("IsResource(%s) = %t, want %t", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsResourceNil(t *testing.T) {
	t.Parallel()

	if IsResource(nil) {
		t.Error("IsResource(nil) = true, want false")
	}
}
