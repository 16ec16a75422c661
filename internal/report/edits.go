// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package report

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/styleguard/internal/astutil"
)

// Edit constructors return ok=false when the rewrite would drop a comment.
// Callers degrade to a plain diagnostic in that case.

// Span builds an [analysis.Range] covering [pos, end).
func Span(pos, end token.Pos) analysis.Range {
	return rangeSpan{pos: pos, end: end}
}

type rangeSpan struct {
	pos, end token.Pos
}

func (s rangeSpan) Pos() token.Pos { return s.pos }

func (s rangeSpan) End() token.Pos { return s.end }

// Unwrap deletes the margins of outer around keep. The text of keep,
// including comments, survives byte for byte.
func Unwrap(file astutil.CurrentFile, outer, keep analysis.Range) ([]analysis.TextEdit, bool) {
	return Rewrap(file, outer, keep, "", "")
}

// UnwrapParen is [Unwrap], substituting parentheses for the margins when the
// surrounding context requires them.
func UnwrapParen(file astutil.CurrentFile, outer, keep analysis.Range, parens bool) ([]analysis.TextEdit, bool) {
	if parens {
		return Rewrap(file, outer, keep, "(", ")")
	}

	return Rewrap(file, outer, keep, "", "")
}

// Rewrap replaces the margins of outer around keep with the given text. The
// text of keep, including comments, survives byte for byte.
func Rewrap(file astutil.CurrentFile, outer, keep analysis.Range, left, right string) ([]analysis.TextEdit, bool) {
	if file.HasCommentsIn(outer.Pos(), keep.Pos()) || file.HasCommentsIn(keep.End(), outer.End()) {
		return nil, false
	}

	var edits []analysis.TextEdit
	if outer.Pos() < keep.Pos() || left != "" {
		edits = append(edits, analysis.TextEdit{Pos: outer.Pos(), End: keep.Pos(), NewText: []byte(left)})
	}

	if keep.End() < outer.End() || right != "" {
		edits = append(edits, analysis.TextEdit{Pos: keep.End(), End: outer.End(), NewText: []byte(right)})
	}

	return edits, true
}

// ReplaceRange replaces the span [pos, end) with text.
func ReplaceRange(file astutil.CurrentFile, pos, end token.Pos, text string) ([]analysis.TextEdit, bool) {
	if file.HasCommentsIn(pos, end) {
		return nil, false
	}

	return []analysis.TextEdit{{Pos: pos, End: end, NewText: []byte(text)}}, true
}

// ReplaceNode replaces node with the rendered replacement.
func ReplaceNode(file astutil.CurrentFile, fset *token.FileSet, node ast.Node, repl any) ([]analysis.TextEdit, bool) {
	text, ok := Render(fset, repl)
	if !ok {
		return nil, false
	}

	return ReplaceRange(file, node.Pos(), node.End(), text)
}

// DeleteStmt removes the statement at c together with its lines. A comment
// trailing the statement survives on a line of its own. DeleteStmt declines
// when other syntax shares the statement's lines or a comment starts inside
// the statement, since deleting the lines would eat the neighbors.
func DeleteStmt(file astutil.CurrentFile, c inspector.Cursor) ([]analysis.TextEdit, bool) {
	stmt := c.Node()

	start, _ := file.LineBounds(stmt.Pos())
	_, end := file.LineBounds(stmt.End() - 1)

	left, right, ok := neighborBounds(c)
	if !ok || left > start || right < end {
		return nil, false
	}

	if cpos, found := file.FirstCommentIn(start, end); found {
		if cpos < stmt.End() {
			return nil, false
		}

		end = cpos
	}

	return []analysis.TextEdit{{Pos: start, End: end}}, true
}

// neighborBounds returns the end of the token before the statement at c and
// the start of the token after it.
func neighborBounds(c inspector.Cursor) (left, right token.Pos, ok bool) {
	parent := c.Parent()

	if prev, found := c.PrevSibling(); found {
		left = prev.Node().End()
	} else {
		switch p := parent.Node().(type) {
		case *ast.BlockStmt:
			left = p.Lbrace + 1

		case *ast.CaseClause:
			left = p.Colon + 1

		case *ast.CommClause:
			left = p.Colon + 1

		default:
			return 0, 0, false
		}
	}

	if next, found := c.NextSibling(); found {
		return left, next.Node().Pos(), true
	}

	switch p := parent.Node().(type) {
	case *ast.BlockStmt:
		return left, p.Rbrace, true

	case *ast.CaseClause, *ast.CommClause:
		// The next token is the following case keyword or the closing brace
		// of the switch body.
		if nextClause, found := parent.NextSibling(); found {
			return left, nextClause.Node().Pos(), true
		}

		if body, ok := parent.Parent().Node().(*ast.BlockStmt); ok {
			return left, body.Rbrace, true
		}
	}

	return 0, 0, false
}
