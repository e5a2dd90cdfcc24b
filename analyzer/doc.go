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

// Package analyzer implements the augur static analysis pass.
//
// # Overview
//
// Augur ships two checkers built on one matcher and dataflow core:
//
//   - nilfield reports struct fields that demonstrably hold nil but are not
//     marked //augur:nilable.
//   - closeleak reports values with a Close() error method that escape their
//     producing scope without a guaranteed close.
//
// # Example
//
// Before:
//
//	func dump(p string) error {
//	    return copyTo(os.Stdout, open(p)) // open resource escapes
//	}
//
// After applying closeleak's suggested fix:
//
//	func dump(p string) error {
//	    file := open(p)
//	    defer file.Close()
//	    return copyTo(os.Stdout, file)
//	}
//
// # Directives
//
// Closing responsibility can be transferred across function boundaries:
//
//	//augur:closer  the caller must close the returned resource
//	//augur:closes  the function closes its resource arguments
//
// Struct fields that intentionally hold nil are marked in place:
//
//	next *node //augur:nilable
//
// # Suppression
//
// Findings can be suppressed with //nolint:augur, //nolint:nilfield or
// //nolint:closeleak comments on the offending line, on the enclosing
// function declaration or in the file's doc comment.
package analyzer
