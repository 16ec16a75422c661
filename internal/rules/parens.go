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

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/styleguard/internal/astutil"
	"fillmore-labs.com/styleguard/internal/report"
	"fillmore-labs.com/styleguard/internal/rule"
)

// parens removes parentheses that neither grouping nor parsing requires.
// Parentheses around lower-precedence subexpressions stay, as do those
// keeping a composite literal out of an if, for, switch or range header.
var parens = rule.Rule{
	Name:   "parens",
	Group:  rule.Expr,
	Doc:    "remove redundant parentheses",
	Strict: true,
	Nodes:  []ast.Node{(*ast.ParenExpr)(nil)},
	Check:  checkParens,
}

func checkParens(ctx *rule.Context, c inspector.Cursor) {
	if kind, _ := c.ParentEdge(); kind == edge.ParenExpr_X {
		return // handled at the outermost layer
	}

	paren, _ := c.Node().(*ast.ParenExpr)

	coreCur := unparenCursor(c)

	core, ok := coreCur.Node().(ast.Expr)
	if !ok || !parenRemovable(c, coreCur, core) {
		return
	}

	edits, _ := report.Unwrap(ctx.File, paren, core)

	ctx.ReportFix(&parens, paren, edits, "Redundant parentheses")
}

// parenRemovable decides whether dropping every paren layer around core
// keeps the program parseable and the parse tree unchanged.
func parenRemovable(c, coreCur inspector.Cursor, core ast.Expr) bool {
	if astutil.IsPrimary(core) {
		// Primary expressions bind tightest; only the composite literal
		// ambiguity in statement headers can save the parens.
		return !report.InStmtHeader(c) || !report.ExposedCompositeLit(coreCur)
	}

	kind, _ := c.ParentEdge()
	switch kind {
	case edge.IfStmt_Cond, edge.ForStmt_Cond, edge.SwitchStmt_Tag, edge.RangeStmt_X:
		return !report.ExposedCompositeLit(coreCur)

	case edge.ReturnStmt_Results,
		edge.AssignStmt_Lhs, edge.AssignStmt_Rhs, edge.ValueSpec_Values,
		edge.CallExpr_Args, edge.IndexExpr_Index,
		edge.SliceExpr_Low, edge.SliceExpr_High, edge.SliceExpr_Max,
		edge.CaseClause_List, edge.SendStmt_Value, edge.ExprStmt_X,
		edge.KeyValueExpr_Value, edge.CompositeLit_Elts:
		// Delimited or lowest-precedence contexts.
		return true

	case edge.UnaryExpr_X:
		// Only “&(T{…})”, which the parser accepts unparenthesized.
		parent, _ := c.Parent().Node().(*ast.UnaryExpr)
		if parent == nil || parent.Op != token.AND {
			return false
		}

		if _, isLit := core.(*ast.CompositeLit); !isLit {
			return false
		}

		return !report.InStmtHeader(c)
	}

	return false
}
