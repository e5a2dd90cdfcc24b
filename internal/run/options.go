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

package run

import (
	"augur.tools/augur/internal/checkers/closeleak"
	"augur.tools/augur/internal/checkers/nilfield"
	"augur.tools/augur/internal/config"
	"augur.tools/augur/internal/engine"
)

// Options holds the resolved runtime configuration of one analyzer instance.
type Options struct {
	// Checkers selects the enabled checkers.
	Checkers config.Checkers

	// Behavior holds behavioral flags like generated-file handling.
	Behavior config.Behavior
}

// DefaultOptions returns the configuration used when no option is given.
func DefaultOptions() *Options {
	return &Options{
		Checkers: config.DefaultCheckers(),
		Behavior: config.DefaultBehavior(),
	}
}

// CheckerDocs maps every known checker name to its documentation line.
func CheckerDocs() map[string]string {
	all := []engine.Checker{nilfield.New(), closeleak.New()}

	docs := make(map[string]string, len(all))
	for _, c := range all {
		docs[c.Name()] = c.Doc()
	}

	return docs
}

// enabled instantiates the selected checkers.
func (r *Options) enabled() []engine.Checker {
	var checkers []engine.Checker

	if r.Checkers.Enabled(config.NilFieldChecker) {
		checkers = append(checkers, nilfield.New())
	}

	if r.Checkers.Enabled(config.CloseLeakChecker) {
		checkers = append(checkers, closeleak.New())
	}

	return checkers
}
