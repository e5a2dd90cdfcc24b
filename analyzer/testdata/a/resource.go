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

package a

type handle struct{ id int }

func (h *handle) Close() error { return nil }

func acquire() *handle { return &handle{} }

func use(h *handle) { _ = h }

type conn struct{}

func (c *conn) Close() error { return nil }

func (c *conn) ping() *conn { return c }

func dial() *conn { return &conn{} }

func leakDiscard() {
	acquire() // want `\*handle should be closed \(discarded\)`
}

func leakArg() {
	use(acquire()) // want `\*handle should be closed \(escapes into call\)`
}

func leakReturn() *handle {
	return acquire() // want `\*handle should be closed \(escapes via return\)`
}

func leakScope() {
	h := acquire() // want `\*handle should be closed \(never closed in scope\)`
	use(h)
}

func leakChain() {
	dial().ping() // want `\*conn should be closed \(discarded\)`
}

func closedLater() {
	h := acquire()
	defer h.Close()
	use(h)
}

//augur:closer
func provide() *handle {
	return acquire()
}

//augur:closes
func closing(h *handle) {
	_ = h.Close()
}

func transferred() {
	closing(acquire())
}
