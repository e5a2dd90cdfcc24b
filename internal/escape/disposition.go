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

package escape

// Disposition classifies how a resource-typed expression is handed off.
type Disposition uint8

const (
	// DeferredClose: bound to a local whose Close is deferred.
	DeferredClose Disposition = iota

	// ClosedExplicitly: the resource's Close is called directly.
	ClosedExplicitly

	// TransfersToCaller: returned from a function contracted to transfer
	// closing responsibility to its caller.
	TransfersToCaller

	// TransfersToCallee: passed to a function contracted to close its
	// resource arguments.
	TransfersToCallee

	// EscapesReturn: returned from a function without a transfer contract.
	EscapesReturn

	// EscapesField: assigned to a field.
	EscapesField

	// EscapesCall: passed to an uncontracted function.
	EscapesCall

	// EscapesScope: bound to a local that is never closed.
	EscapesScope

	// EscapesDiscard: evaluated as a statement and discarded.
	EscapesDiscard

	// EscapesInline: consumed inline by a terminal operation without scoping.
	EscapesInline

	// EscapesRange: consumed by a range clause without scoping.
	EscapesRange

	// EscapesUnknown: a context the analyzer cannot prove safe.
	EscapesUnknown
)

// Safe reports whether the disposition discharges the closing obligation.
func (d Disposition) Safe() bool {
	switch d {
	case DeferredClose, ClosedExplicitly, TransfersToCaller, TransfersToCallee:
		return true

	default:
		return false
	}
}

// String returns a short description of the disposition.
func (d Disposition) String() string {
	switch d {
	case DeferredClose:
		return "deferred close"

	case ClosedExplicitly:
		return "closed explicitly"

	case TransfersToCaller:
		return "transfers to caller"

	case TransfersToCallee:
		return "transfers to callee"

	case EscapesReturn:
		return "escapes via return"

	case EscapesField:
		return "escapes into field"

	case EscapesCall:
		return "escapes into call"

	case EscapesScope:
		return "never closed in scope"

	case EscapesDiscard:
		return "discarded"

	case EscapesInline:
		return "consumed inline"

	case EscapesRange:
		return "consumed by range"

	default:
		return "unknown escape"
	}
}
