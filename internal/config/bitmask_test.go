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

package config_test

import (
	"testing"

	. "augur.tools/augur/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(NilFieldChecker)

	if !b.Enabled(NilFieldChecker) {
		t.Error("NilFieldChecker should be enabled")
	}

	if b.Enabled(CloseLeakChecker) {
		t.Error("CloseLeakChecker should be disabled")
	}

	b.Set(CloseLeakChecker, true)
	if !b.Enabled(CloseLeakChecker) {
		t.Error("CloseLeakChecker should be enabled after Set")
	}

	b.Set(NilFieldChecker, false)

	if b.Enabled(NilFieldChecker) || !b.Enabled(CloseLeakChecker) {
		t.Error("Set should toggle exactly the given flag")
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	checkers := DefaultCheckers()
	if !checkers.Enabled(NilFieldChecker) || !checkers.Enabled(CloseLeakChecker) {
		t.Error("all checkers should be enabled by default")
	}

	if DefaultBehavior().Enabled(IncludeGenerated) {
		t.Error("generated files should be excluded by default")
	}
}
