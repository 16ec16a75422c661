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

package rules

import (
	"go/ast"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/styleguard/internal/astutil"
	"fillmore-labs.com/styleguard/internal/report"
	"fillmore-labs.com/styleguard/internal/rule"
)

// rangeBlank drops blank variables from range clauses: “for _ = range” and
// “for _, _ = range” become “for range”, and “for i, _ := range” becomes
// “for i := range”.
var rangeBlank = rule.Rule{
	Name:   "rangeblank",
	Group:  rule.Control,
	Doc:    "omit blank range variables",
	Strict: true,
	Nodes:  []ast.Node{(*ast.RangeStmt)(nil)},
	Check:  checkRangeBlank,
}

func checkRangeBlank(ctx *rule.Context, c inspector.Cursor) {
	stmt, _ := c.Node().(*ast.RangeStmt)
	if stmt.Key == nil {
		return
	}

	keyBlank := astutil.IsBlank(stmt.Key)

	switch {
	case stmt.Value == nil:
		if !keyBlank {
			return
		}

		edits, _ := report.ReplaceRange(ctx.File, stmt.Key.Pos(), stmt.Range, "")

		ctx.ReportFix(&rangeBlank, stmt.Key, edits, "Blank range variable can be omitted")

	case astutil.IsBlank(stmt.Value):
		if keyBlank {
			span := report.Span(stmt.Key.Pos(), stmt.Value.End())
			edits, _ := report.ReplaceRange(ctx.File, stmt.Key.Pos(), stmt.Range, "")

			ctx.ReportFix(&rangeBlank, span, edits, "Blank range variables can be omitted")

			return
		}

		edits, _ := report.ReplaceRange(ctx.File, stmt.Key.End(), stmt.Value.End(), "")

		ctx.ReportFix(&rangeBlank, stmt.Value, edits, "Blank range value can be omitted")
	}
}
