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

package engine

import (
	"go/token"

	"augur.tools/augur/internal/edit"
)

// Severity is the tier of a finding.
type Severity uint8

const (
	// SeverityError marks findings that are almost certainly bugs.
	SeverityError Severity = iota

	// SeverityWarning marks likely bugs that may have benign instances.
	SeverityWarning

	// SeveritySuggestion marks advisory findings.
	SeveritySuggestion
)

// String returns the lowercase name of the severity tier.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"

	case SeverityWarning:
		return "warning"

	case SeveritySuggestion:
		return "suggestion"

	default:
		return "unknown"
	}
}

// Finding is one reported issue. It is created by a checker's match call,
// filtered by suppression, consumed by the reporting sink and never mutated
// after creation.
type Finding struct {
	// Checker is the stable name of the checker that produced the finding.
	Checker string

	// Message is the human-readable description.
	Message string

	// Severity is the finding's tier.
	Severity Severity

	// Pos and End delimit the minimum span to highlight.
	Pos, End token.Pos

	// Fix is the optional suggested fix. A nil fix means a real issue was
	// detected but no safe rewrite could be synthesized.
	Fix *edit.Fix
}
