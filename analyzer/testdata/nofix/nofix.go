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

package nofix

type handle struct{}

func (h *handle) Close() error { return nil }

func acquire() *handle { return &handle{} }

func acquirePair() (*handle, error) { return &handle{}, nil }

type holder struct {
	h *handle
}

// The field keeps the resource alive beyond any local scope, no local
// rewrite can close it.
func store(s *holder) {
	s.h = acquire() // want `\*handle should be closed \(escapes into field\)`
}

// A producing call inside a condition has no statement to hoist before.
func alive() bool {
	return acquire() != nil // want `\*handle should be closed \(unknown escape\)`
}

// A multi-value producer cannot be bound to one fresh name.
func pairThrough() (*handle, error) {
	h, err := acquirePair() // want `\*handle should be closed \(escapes via return\)`
	return h, err
}

// A hoist out of the loop condition would acquire once instead of per
// iteration.
func poll() {
	for open(acquire()) { // want `\*handle should be closed \(escapes into call\)`
	}
}

// A defer in the loop body would hold every acquisition open until the
// function returns.
func drain() {
	for i := 0; i < 3; i++ {
		release(acquire()) // want `\*handle should be closed \(escapes into call\)`
	}
}

func open(h *handle) bool { return h != nil }

func release(h *handle) { _ = h }
