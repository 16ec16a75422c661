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
	"go/token"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/styleguard/internal/astutil"
	"fillmore-labs.com/styleguard/internal/report"
	"fillmore-labs.com/styleguard/internal/rule"
)

// boolExpr simplifies equality comparisons that have a boolean literal on
// one side, like “x == true” or “ok != false”.
var boolExpr = rule.Rule{
	Name:   "boolexpr",
	Group:  rule.Boolean,
	Doc:    "simplify comparisons with boolean literals",
	Strict: true,
	Nodes:  []ast.Node{(*ast.BinaryExpr)(nil)},
	Check:  checkBoolExpr,
}

// boolExprSelf is assigned in init; referencing boolExpr directly from
// checkBoolExpr would form an initialization cycle.
var boolExprSelf *rule.Rule

func init() { boolExprSelf = &boolExpr }

func checkBoolExpr(ctx *rule.Context, c inspector.Cursor) {
	bin, _ := c.Node().(*ast.BinaryExpr)
	if bin.Op != token.EQL && bin.Op != token.NEQ {
		return
	}

	info := ctx.Info()

	var literal bool

	keep, keepEdge := ast.Expr(nil), edge.BinaryExpr_X
	if value, ok := astutil.BoolLiteral(info, bin.Y); ok {
		literal, keep = value, bin.X
	} else if value, ok := astutil.BoolLiteral(info, bin.X); ok {
		literal, keep, keepEdge = value, bin.Y, edge.BinaryExpr_Y
	} else {
		return
	}

	if _, ok := astutil.BoolLiteral(info, keep); ok { // constant comparison
		return
	}

	if !astutil.IsExactBool(info, keep) {
		return
	}

	var edits []analysis.TextEdit
	if (bin.Op == token.EQL) == literal {
		parens := report.NeedsParens(c, c.ChildAt(keepEdge, -1))
		edits, _ = report.UnwrapParen(ctx.File, bin, keep, parens)
	} else {
		edits = negationEdits(ctx, bin, keep, "")
	}

	ctx.ReportFix(boolExprSelf, bin, edits, "Comparison with '%t' is redundant", literal)
}
