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

// Package directive handles augur comment directives.
//
// # Supported Directives
//
//	//augur:nilable - Mark a struct field as intentionally holding nil
//	//augur:closer  - Mark a function as transferring closing responsibility to its caller
//	//augur:closes  - Mark a function as closing the resources passed to it
//
// Directives are recognized in the doc comment of a declaration and, for
// struct fields, in the trailing line comment of the field.
package directive

import (
	"go/ast"
	"strings"
)

// Name is a recognized directive name.
type Name string

const (
	// Nilable marks a struct field as intentionally holding nil.
	Nilable Name = "nilable"

	// Closer marks a function whose resource-typed result must be closed by
	// the caller. Returning an open resource from such a function is safe.
	Closer Name = "closer"

	// Closes marks a function that takes over closing responsibility for its
	// resource-typed arguments.
	Closes Name = "closes"
)

const prefix = "augur:"

// Comment reports whether a single comment carries the directive.
// Both "//augur:name" and "// augur:name" are accepted.
func Comment(text string, name Name) bool {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	return strings.HasPrefix(text, prefix+string(name))
}

// Group reports whether any comment in the group carries the directive.
func Group(cg *ast.CommentGroup, name Name) bool {
	if cg == nil {
		return false
	}

	for _, comment := range cg.List {
		if Comment(comment.Text, name) {
			return true
		}
	}

	return false
}

// OnFunc reports whether a function declaration carries the directive in its
// doc comment.
func OnFunc(decl *ast.FuncDecl, name Name) bool {
	return decl != nil && Group(decl.Doc, name)
}

// OnField reports whether a struct field carries the directive, either in its
// doc comment or in its trailing line comment.
func OnField(field *ast.Field, name Name) bool {
	return field != nil && (Group(field.Doc, name) || Group(field.Comment, name))
}
