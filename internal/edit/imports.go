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

package edit

import (
	"fmt"
	"go/ast"
	"go/token"
	"slices"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"
)

// ImportEdits converts an [ImportSet] into textual edits against the given
// file. Added paths are inserted into the (first) import block in sorted
// order; removed paths are dropped only when [astutil.UsesImport] finds no
// remaining use. The src text, when available, lets spec removals consume the
// whole source line.
func ImportEdits(file *ast.File, src []byte, imports ImportSet) []Edit {
	var edits []Edit

	decl := importDecl(file)
	existing := importPaths(file)

	for _, path := range slices.Sorted(slices.Values(imports.Add)) {
		if _, ok := existing[path]; ok {
			continue
		}

		edits = append(edits, insertImport(file, decl, path))
	}

	for _, path := range imports.Remove {
		spec, ok := existing[path]
		if !ok || astutil.UsesImport(file, path) {
			continue
		}

		edits = append(edits, removeImport(file, src, spec))
	}

	return edits
}

// importDecl returns the first import declaration of the file, if any.
func importDecl(file *ast.File) *ast.GenDecl {
	for _, d := range file.Decls {
		if g, ok := d.(*ast.GenDecl); ok && g.Tok == token.IMPORT {
			return g
		}
	}

	return nil
}

// importPaths maps each imported path to its spec.
func importPaths(file *ast.File) map[string]*ast.ImportSpec {
	paths := make(map[string]*ast.ImportSpec, len(file.Imports))

	for _, spec := range file.Imports {
		if path, err := strconv.Unquote(spec.Path.Value); err == nil {
			paths[path] = spec
		}
	}

	return paths
}

// insertImport builds the edit adding one import path.
func insertImport(file *ast.File, decl *ast.GenDecl, path string) Edit {
	quoted := strconv.Quote(path)

	switch {
	case decl == nil:
		// No import declaration yet: start one after the package clause.
		text := fmt.Sprintf("\n\nimport %s", quoted)

		return Edit{Pos: file.Name.End(), End: file.Name.End(), NewText: []byte(text)}

	case decl.Lparen.IsValid():
		// Keep the block sorted: insert before the first larger path.
		for _, spec := range decl.Specs {
			is, ok := spec.(*ast.ImportSpec)
			if !ok || is.Path.Value <= quoted {
				continue
			}

			text := fmt.Sprintf("%s\n\t", quoted)

			return Edit{Pos: is.Pos(), End: is.Pos(), NewText: []byte(text)}
		}

		text := fmt.Sprintf("\t%s\n", quoted)

		return Edit{Pos: decl.Rparen, End: decl.Rparen, NewText: []byte(text)}

	default:
		// A single unparenthesized import: append a sibling declaration.
		text := fmt.Sprintf("\nimport %s", quoted)

		return Edit{Pos: decl.End(), End: decl.End(), NewText: []byte(text)}
	}
}

// removeImport builds the edit dropping one import spec, including the rest
// of its source line when the text is available.
func removeImport(file *ast.File, src []byte, spec *ast.ImportSpec) Edit {
	pos, end := spec.Pos(), spec.End()

	if src != nil {
		// Positions within one parsed file are contiguous from FileStart.
		start, stop := int(pos-file.FileStart), int(end-file.FileStart)

		for start > 0 && (src[start-1] == ' ' || src[start-1] == '\t') {
			start--
		}

		if stop < len(src) && src[stop] == '\n' {
			stop++
		}

		pos, end = file.FileStart+token.Pos(start), file.FileStart+token.Pos(stop)
	}

	return Edit{Pos: pos, End: end}
}
