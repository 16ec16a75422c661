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
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/styleguard/internal/astutil"
	"fillmore-labs.com/styleguard/internal/report"
	"fillmore-labs.com/styleguard/internal/rule"
)

// lenZero rewrites string length comparisons with zero to comparisons with
// the empty string, like “len(s) == 0” to “s == ""”. Slices keep the len
// form; only string operands match.
var lenZero = rule.Rule{
	Name:   "lenzero",
	Group:  rule.Expr,
	Doc:    "compare strings to the empty string instead of checking len",
	Strict: true,
	Nodes:  []ast.Node{(*ast.BinaryExpr)(nil)},
	Check:  checkLenZero,
}

func checkLenZero(ctx *rule.Context, c inspector.Cursor) {
	bin, _ := c.Node().(*ast.BinaryExpr)

	info := ctx.Info()

	var (
		arg      ast.Expr
		lit      ast.Expr
		callLeft bool
	)

	if a, ok := lenCallArg(info, bin.X); ok {
		arg, lit, callLeft = a, bin.Y, true
	} else if a, ok := lenCallArg(info, bin.Y); ok {
		arg, lit = a, bin.X
	} else {
		return
	}

	if value, ok := astutil.IntLiteral(lit); !ok || value != 0 {
		return
	}

	if !astutil.IsString(info, arg) {
		return
	}

	newOp, ok := zeroComparisonOp(bin.Op, callLeft)
	if !ok {
		return
	}

	var edits []analysis.TextEdit
	if callLeft {
		edits = lenZeroEdits(ctx, bin, arg, newOp)
	} else {
		// The literal comes first. Rebuild the whole comparison in
		// canonical order.
		if text, ok := report.Render(ctx.Pass.Fset, arg); ok {
			edits, _ = report.ReplaceRange(ctx.File, bin.Pos(), bin.End(), text+" "+newOp.String()+` ""`)
		}
	}

	ctx.ReportFix(&lenZero, bin, edits, "Comparison with zero length can compare to the empty string")
}

// zeroComparisonOp maps the comparison against a zero length to the operator
// of the empty string comparison. Tautological forms do not match.
func zeroComparisonOp(op token.Token, callLeft bool) (token.Token, bool) {
	if callLeft {
		switch op {
		case token.EQL, token.LEQ: // len(s) == 0, len(s) <= 0
			return token.EQL, true

		case token.NEQ, token.GTR: // len(s) != 0, len(s) > 0
			return token.NEQ, true
		}

		return op, false
	}

	switch op {
	case token.EQL, token.GEQ: // 0 == len(s), 0 >= len(s)
		return token.EQL, true

	case token.NEQ, token.LSS: // 0 != len(s), 0 < len(s)
		return token.NEQ, true
	}

	return op, false
}

// lenZeroEdits rewrites “len(s) OP 0” in place: the len call collapses to
// its argument, the operator is replaced when it differs, and the zero
// becomes the empty string.
func lenZeroEdits(ctx *rule.Context, bin *ast.BinaryExpr, arg ast.Expr, newOp token.Token) []analysis.TextEdit {
	file := ctx.File

	margins, ok := report.Unwrap(file, bin.X, arg)
	if !ok {
		return nil
	}

	edits := margins

	if newOp != bin.Op {
		opEnd := bin.OpPos + token.Pos(len(bin.Op.String()))

		swap, ok := report.ReplaceRange(file, bin.OpPos, opEnd, newOp.String())
		if !ok {
			return nil
		}

		edits = append(edits, swap...)
	}

	zero, ok := report.ReplaceRange(file, bin.Y.Pos(), bin.Y.End(), `""`)
	if !ok {
		return nil
	}

	return append(edits, zero...)
}
