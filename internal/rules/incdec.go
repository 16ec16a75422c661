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
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/styleguard/internal/astutil"
	"fillmore-labs.com/styleguard/internal/report"
	"fillmore-labs.com/styleguard/internal/rule"
)

// incDec rewrites additions and subtractions of one, in both the
// “x += 1” and the “x = x + 1” spelling, to the increment and decrement
// statements.
var incDec = rule.Rule{
	Name:   "incdec",
	Group:  rule.Assign,
	Doc:    "use increment and decrement statements",
	Strict: true,
	Nodes:  []ast.Node{(*ast.AssignStmt)(nil)},
	Check:  checkIncDec,
}

func checkIncDec(ctx *rule.Context, c inspector.Cursor) {
	stmt, _ := c.Node().(*ast.AssignStmt)
	if len(stmt.Lhs) != 1 || len(stmt.Rhs) != 1 {
		return
	}

	var op token.Token

	switch stmt.Tok {
	case token.ADD_ASSIGN, token.SUB_ASSIGN:
		if value, ok := astutil.IntLiteral(stmt.Rhs[0]); !ok || value != 1 {
			return
		}

		op = token.INC
		if stmt.Tok == token.SUB_ASSIGN {
			op = token.DEC
		}

	case token.ASSIGN:
		bin, ok := ast.Unparen(stmt.Rhs[0]).(*ast.BinaryExpr)
		if !ok || (bin.Op != token.ADD && bin.Op != token.SUB) {
			return
		}

		if value, ok := astutil.IntLiteral(bin.Y); !ok || value != 1 {
			return
		}

		info := ctx.Info()
		if !astutil.EqualSyntax(info, stmt.Lhs[0], bin.X) || !astutil.Pure(info, stmt.Lhs[0]) {
			return
		}

		op = token.INC
		if bin.Op == token.SUB {
			op = token.DEC
		}

	default:
		return
	}

	if !isNumeric(ctx, stmt.Lhs[0]) {
		return
	}

	edits, _ := report.ReplaceRange(ctx.File, stmt.Lhs[0].End(), stmt.End(), op.String())

	verb := "increment"
	if op == token.DEC {
		verb = "decrement"
	}

	ctx.ReportFix(&incDec, stmt, edits, "Can use the %s statement", verb)
}

// isNumeric reports whether the expression has a numeric type. Strings
// support += but not the increment statement.
func isNumeric(ctx *rule.Context, expr ast.Expr) bool {
	t := ctx.TypeOf(expr)
	if t == nil {
		return false
	}

	basic, ok := t.Underlying().(*types.Basic)

	return ok && basic.Info()&types.IsNumeric != 0
}
