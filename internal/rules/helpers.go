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

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/styleguard/internal/astutil"
	"fillmore-labs.com/styleguard/internal/report"
	"fillmore-labs.com/styleguard/internal/rule"
)

// unparenCursor descends through parentheses to the enclosed expression.
func unparenCursor(c inspector.Cursor) inspector.Cursor {
	for {
		if _, ok := c.Node().(*ast.ParenExpr); !ok {
			return c
		}

		c = c.ChildAt(edge.ParenExpr_X, -1)
	}
}

// nilOperand returns the operand compared against nil with the given
// operator, for either operand order.
func nilOperand(info *types.Info, bin *ast.BinaryExpr, op token.Token) (ast.Expr, bool) {
	if bin.Op != op {
		return nil, false
	}

	switch {
	case astutil.IsNil(info, bin.Y):
		return bin.X, true

	case astutil.IsNil(info, bin.X):
		return bin.Y, true

	default:
		return nil, false
	}
}

// lenCallArg returns the argument of a len builtin call.
func lenCallArg(info *types.Info, e ast.Expr) (ast.Expr, bool) {
	call, ok := ast.Unparen(e).(*ast.CallExpr)
	if !ok || len(call.Args) != 1 || call.Ellipsis.IsValid() {
		return nil, false
	}

	if !astutil.IsBuiltin(info, call.Fun, "len") {
		return nil, false
	}

	return call.Args[0], true
}

// soleReturn returns the boolean literal of a block consisting of exactly
// one return statement with a single predeclared boolean constant result.
func soleReturn(info *types.Info, block *ast.BlockStmt) (value, ok bool) {
	if len(block.List) != 1 {
		return false, false
	}

	ret, isReturn := block.List[0].(*ast.ReturnStmt)
	if !isReturn {
		return false, false
	}

	return returnedLiteral(info, ret)
}

// returnedLiteral returns the boolean literal of a single-result return.
func returnedLiteral(info *types.Info, ret *ast.ReturnStmt) (value, ok bool) {
	if len(ret.Results) != 1 {
		return false, false
	}

	return astutil.BoolLiteral(info, ret.Results[0])
}

// negationEdits rewrites outer to the negation of keep, with lead in front.
// Comparisons are inverted in place, a negation is unwrapped, and anything
// else gets a not operator prefixed.
func negationEdits(ctx *rule.Context, outer analysis.Range, keep ast.Expr, lead string) []analysis.TextEdit {
	file := ctx.File

	switch inner := ast.Unparen(keep).(type) {
	case *ast.BinaryExpr:
		if op, ok := astutil.InvertComparison(ctx.Info(), inner); ok {
			return invertEdits(file, outer, inner, op, lead)
		}

	case *ast.UnaryExpr:
		if inner.Op == token.NOT {
			edits, _ := report.Rewrap(file, outer, ast.Unparen(inner.X), lead, "")

			return edits
		}
	}

	prefix, suffix := lead+"!", ""
	if !astutil.IsPrimary(keep) {
		prefix, suffix = lead+"!(", ")"
	}

	edits, _ := report.Rewrap(file, outer, keep, prefix, suffix)

	return edits
}

// invertEdits strips the margins of outer around the comparison keep and
// swaps its operator for op.
func invertEdits(
	file astutil.CurrentFile, outer analysis.Range, keep *ast.BinaryExpr, op token.Token, lead string,
) []analysis.TextEdit {
	margins, ok := report.Rewrap(file, outer, keep, lead, "")
	if !ok {
		return nil
	}

	opEnd := keep.OpPos + token.Pos(len(keep.Op.String()))

	swap, ok := report.ReplaceRange(file, keep.OpPos, opEnd, op.String())
	if !ok {
		return nil
	}

	return append(margins, swap...)
}
