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

// doubleNeg removes double negations like “!!ok” and rewrites a negated
// comparison like “!(a == b)” to the inverted comparison.
var doubleNeg = rule.Rule{
	Name:   "doubleneg",
	Group:  rule.Boolean,
	Doc:    "remove double negations and negated comparisons",
	Strict: true,
	Nodes:  []ast.Node{(*ast.UnaryExpr)(nil)},
	Check:  checkDoubleNeg,
}

// doubleNegSelf is assigned in init; referencing doubleNeg directly from
// checkDoubleNeg would form an initialization cycle.
var doubleNegSelf *rule.Rule

func init() { doubleNegSelf = &doubleNeg }

func checkDoubleNeg(ctx *rule.Context, c inspector.Cursor) {
	u, _ := c.Node().(*ast.UnaryExpr)
	if u.Op != token.NOT {
		return
	}

	switch inner := ast.Unparen(u.X).(type) {
	case *ast.UnaryExpr:
		if inner.Op != token.NOT {
			return
		}

		innerCur := unparenCursor(c.ChildAt(edge.UnaryExpr_X, -1))
		keepCur := unparenCursor(innerCur.ChildAt(edge.UnaryExpr_X, -1))

		parens := report.NeedsParens(c, keepCur)
		edits, _ := report.UnwrapParen(ctx.File, u, keepCur.Node(), parens)

		ctx.ReportFix(doubleNegSelf, u, edits, "Double negation is redundant")

	case *ast.BinaryExpr:
		op, ok := astutil.InvertComparison(ctx.Info(), inner)
		if !ok {
			return
		}

		edits := invertEdits(ctx.File, u, inner, op, "")

		ctx.ReportFix(doubleNegSelf, u, edits, "Negated comparison can use '%s'", op)
	}
}
