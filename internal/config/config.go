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

package config

// CheckerFlags represents specific checkers.
type CheckerFlags uint8

const (
	// NilFieldChecker enables detection of struct fields that are assigned
	// definitely-nil values without carrying a nilable marker.
	NilFieldChecker CheckerFlags = 1 << iota

	// CloseLeakChecker enables detection of resource-typed expressions that
	// escape their producing scope without a guaranteed close.
	CloseLeakChecker
)

// Checkers is the set of enabled checkers.
type Checkers = BitMask[CheckerFlags]

// DefaultCheckers returns the checkers that are enabled by default.
func DefaultCheckers() Checkers {
	return NewBitMask(NilFieldChecker, CloseLeakChecker)
}

// Config represents behavioral options for the checkers.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota
)

// Behavior holds layout and behavioral options.
type Behavior = BitMask[Config]

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask[Config]()
}
