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

type node struct {
	next *node
}

type blob struct {
	data []byte
}

type cache struct {
	entries map[string]int
}

type ring struct {
	buf []byte //augur:nilable
}

func unlink(n *node) {
	n.next = nil // want `field "next" holds nil but is not marked //augur:nilable`
}

func evict(c *cache, m map[string]int) {
	if m == nil {
		c.entries = m // want `field "entries" holds nil but is not marked //augur:nilable`
	}
}

func reset(r *ring) {
	r.buf = nil
}

func compare(b *blob) bool {
	return b.data == nil // want `field "data" holds nil but is not marked //augur:nilable`
}
