// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// styleguard is the name of the linter.
const styleguard = "styleguard"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	generated := ast.IsGenerated(file)

	return CurrentFile{file, handle, generated}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// File returns the underlying syntax tree.
func (c CurrentFile) File() *ast.File {
	return c.file
}

// Line returns the line number of pos.
func (c CurrentFile) Line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// LineBounds returns the position of the first column of the line containing
// pos and the position one past the line's newline. On the last line of the
// file the end is the file's end instead.
func (c CurrentFile) LineBounds(pos token.Pos) (start, end token.Pos) {
	line := c.Line(pos)

	start = c.handle.LineStart(line)
	if line < c.handle.LineCount() {
		end = c.handle.LineStart(line + 1)
	} else {
		end = token.Pos(c.handle.Base() + c.handle.Size())
	}

	return start, end
}

// HasCommentsIn reports whether any comment group starts within [pos, end).
//
// Edits use this to decline rewrites that would drop the overlapped text.
func (c CurrentFile) HasCommentsIn(pos, end token.Pos) bool {
	_, found := c.FirstCommentIn(pos, end)

	return found
}

// FirstCommentIn returns the position of the first comment group starting
// within [pos, end).
func (c CurrentFile) FirstCommentIn(pos, end token.Pos) (token.Pos, bool) {
	if c.file == nil {
		return token.NoPos, false
	}

	// find the first comment starting at or after pos
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })
	if i < len(c.file.Comments) && c.file.Comments[i].Pos() < end {
		return c.file.Comments[i].Pos(), true
	}

	return token.NoPos, false
}

// NoLintComment checks if a line is followed by a //nolint:styleguard comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	// find the first comment starting after the reported position
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })
	if i >= len(c.file.Comments) {
		return false
	}

	comment := c.file.Comments[i].List[0]

	if c.Line(comment.Pos()) != c.Line(pos) {
		return false // not on this line
	}

	return CommentHasNoLint(comment)
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:styleguard` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == styleguard || l == "all" {
			return true
		}
	}

	return false
}
