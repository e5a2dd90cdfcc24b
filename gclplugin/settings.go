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

package gclplugin

import augur "augur.tools/augur/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// NilField enables the nilfield checker.
	NilField *bool `json:"nilfield,omitzero"`
	// CloseLeak enables the closeleak checker.
	CloseLeak *bool `json:"closeleak,omitzero"`
}

// Options converts [Settings] into a list of [augur.Option] for the augur analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []augur.Option {
	var opts []augur.Option

	opts = appendOption(opts, s.NilField, augur.WithNilField)
	opts = appendOption(opts, s.CloseLeak, augur.WithCloseLeak)

	return opts
}

// appendOption appends a non-nil setting to an [augur.Option] list.
func appendOption[T any](opts []augur.Option, value *T, constructor func(T) augur.Option) []augur.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
