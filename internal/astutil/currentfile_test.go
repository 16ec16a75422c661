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

package astutil_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	. "fillmore-labs.com/styleguard/internal/astutil"
	"fillmore-labs.com/styleguard/internal/testsource"
)

func TestNewCurrentFile(t *testing.T) {
	t.Parallel()

	t.Run("Valid", func(t *testing.T) {
		t.Parallel()

		fset, f, _, _ := testsource.Parse(t, `v := 1; _ = v`)

		file := NewCurrentFile(fset, f)
		if !file.Valid() {
			t.Fatal("Valid() = false, want true")
		}

		if file.File() != f {
			t.Error("File() does not return the parsed file")
		}

		if file.Generated() {
			t.Error("Generated() = true, want false")
		}
	})

	t.Run("NilFile", func(t *testing.T) {
		t.Parallel()

		if NewCurrentFile(token.NewFileSet(), nil).Valid() {
			t.Error("Valid() = true for a nil file")
		}
	})

	t.Run("ForeignFileSet", func(t *testing.T) {
		t.Parallel()

		_, f, _, _ := testsource.Parse(t, `v := 1; _ = v`)

		if NewCurrentFile(token.NewFileSet(), f).Valid() {
			t.Error("Valid() = true for a file outside the file set")
		}
	})
}

func TestGenerated(t *testing.T) {
	t.Parallel()

	const src = `// Code generated by stubgen. DO NOT EDIT.

package gen
`

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "gen.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}

	file := NewCurrentFile(fset, f)
	if !file.Valid() {
		t.Fatal("Valid() = false, want true")
	}

	if !file.Generated() {
		t.Error("Generated() = false, want true")
	}
}

func TestLineBounds(t *testing.T) {
	t.Parallel()

	fset, f, fn, body := testsource.Parse(t, "v := 1\nv++\n_ = v")

	file := NewCurrentFile(fset, f)
	if !file.Valid() {
		t.Fatal("Valid() = false, want true")
	}

	t.Run("InnerLine", func(t *testing.T) {
		t.Parallel()

		incdec, _ := testsource.First[*ast.IncDecStmt](t, body)
		line := file.Line(incdec.Pos())

		start, end := file.LineBounds(incdec.Pos())

		if got := fset.Position(start); got.Line != line || got.Column != 1 {
			t.Errorf("Start at %v, want column 1 of line %d", got, line)
		}

		if got := fset.Position(end); got.Line != line+1 || got.Column != 1 {
			t.Errorf("End at %v, want column 1 of line %d", got, line+1)
		}
	})

	t.Run("LastLine", func(t *testing.T) {
		t.Parallel()

		start, end := file.LineBounds(fn.Body.Rbrace)

		if got := fset.Position(start); got.Line != file.Line(fn.Body.Rbrace) || got.Column != 1 {
			t.Errorf("Start at %v, want start of the closing line", got)
		}

		if end != f.FileEnd {
			t.Errorf("End = %d, want file end %d", end, f.FileEnd)
		}
	})
}

func TestFirstCommentIn(t *testing.T) {
	t.Parallel()

	fset, f, fn, body := testsource.Parse(t, "v := 1 // first\nv++\n_ = v // last")

	file := NewCurrentFile(fset, f)
	if !file.Valid() {
		t.Fatal("Valid() = false, want true")
	}

	incdec, _ := testsource.First[*ast.IncDecStmt](t, body)

	first, found := file.FirstCommentIn(fn.Body.Lbrace, fn.Body.Rbrace)
	if !found {
		t.Fatal("No comment found in the function body")
	}

	if file.Line(first) != file.Line(incdec.Pos())-1 {
		t.Errorf("First comment on line %d, want the line above the increment", file.Line(first))
	}

	t.Run("InclusiveStart", func(t *testing.T) {
		t.Parallel()

		if pos, ok := file.FirstCommentIn(first, first+1); !ok || pos != first {
			t.Error("Comment at the span start not found")
		}
	})

	t.Run("ExclusiveEnd", func(t *testing.T) {
		t.Parallel()

		if file.HasCommentsIn(fn.Body.Lbrace, first) {
			t.Error("Comment at the span end reported")
		}
	})

	t.Run("InsideStatement", func(t *testing.T) {
		t.Parallel()

		if file.HasCommentsIn(incdec.Pos(), incdec.End()) {
			t.Error("Comment reported inside the increment")
		}
	})

	t.Run("TrailingComment", func(t *testing.T) {
		t.Parallel()

		if !file.HasCommentsIn(incdec.End(), fn.Body.Rbrace) {
			t.Error("Trailing comment not reported")
		}
	})
}

func TestNoLintComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected bool
	}{
		{name: "Directive", src: "v := 1\nv++ //nolint:styleguard\n_ = v", expected: true},
		{name: "All", src: "v := 1\nv++ //nolint:all\n_ = v", expected: true},
		{name: "List", src: "v := 1\nv++ //nolint:gocritic,styleguard\n_ = v", expected: true},
		{name: "OtherLinter", src: "v := 1\nv++ //nolint:gocritic\n_ = v"},
		{name: "SpaceAfterColon", src: "v := 1\nv++ //nolint: styleguard\n_ = v"},
		{name: "NextLine", src: "v := 1\nv++\n//nolint:styleguard\n_ = v"},
		{name: "NoComment", src: "v := 1\nv++\n_ = v"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f, _, body := testsource.Parse(t, tt.src)

			file := NewCurrentFile(fset, f)
			if !file.Valid() {
				t.Fatal("Valid() = false, want true")
			}

			incdec, _ := testsource.First[*ast.IncDecStmt](t, body)

			if got := file.NoLintComment(incdec.Pos()); got != tt.expected {
				t.Errorf("NoLintComment() = %t, want %t", got, tt.expected)
			}
		})
	}
}

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{name: "Directive", text: "//nolint:styleguard", expected: true},
		{name: "Spaced", text: "// nolint:styleguard", expected: true},
		{name: "Uppercase", text: "//nolint:STYLEGUARD", expected: true},
		{name: "All", text: "//nolint:all", expected: true},
		{name: "Explained", text: "//nolint:styleguard // has to stay", expected: true},
		{name: "OtherLinter", text: "//nolint:gocritic"},
		{name: "Bare", text: "//nolint"},
		{name: "SpaceAfterColon", text: "//nolint: styleguard"},
		{name: "NotADirective", text: "// styleguard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			comment := &ast.Comment{Text: tt.text}

			if got := CommentHasNoLint(comment); got != tt.expected {
				t.Errorf("CommentHasNoLint(%q) = %t, want %t", tt.text, got, tt.expected)
			}
		})
	}
}
