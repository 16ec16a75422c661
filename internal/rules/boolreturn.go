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
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/styleguard/internal/astutil"
	"fillmore-labs.com/styleguard/internal/report"
	"fillmore-labs.com/styleguard/internal/rule"
)

// boolReturn replaces a conditional returning boolean literals on both
// branches with a plain return of the condition. The else branch may be an
// explicit block or the return statement following the if.
var boolReturn = rule.Rule{
	Name:   "boolreturn",
	Group:  rule.Boolean,
	Doc:    "return boolean conditions directly instead of literals from both branches",
	Strict: true,
	Nodes:  []ast.Node{(*ast.IfStmt)(nil)},
	Check:  checkBoolReturn,
}

// boolReturnSelf is assigned in init; referencing boolReturn directly from
// checkBoolReturn would form an initialization cycle.
var boolReturnSelf *rule.Rule

func init() { boolReturnSelf = &boolReturn }

func checkBoolReturn(ctx *rule.Context, c inspector.Cursor) {
	stmt, _ := c.Node().(*ast.IfStmt)
	if stmt.Init != nil {
		return
	}

	info := ctx.Info()

	thenValue, ok := soleReturn(info, stmt.Body)
	if !ok {
		return
	}

	var (
		elseValue bool
		last      ast.Node
	)

	switch e := stmt.Else.(type) {
	case *ast.BlockStmt:
		if elseValue, ok = soleReturn(info, e); !ok {
			return
		}

		last = stmt

	case nil:
		next, found := c.NextSibling()
		if !found {
			return
		}

		ret, isReturn := next.Node().(*ast.ReturnStmt)
		if !isReturn {
			return
		}

		if elseValue, ok = returnedLiteral(info, ret); !ok {
			return
		}

		last = ret

	default: // else-if chain
		return
	}

	if thenValue == elseValue {
		// Both branches return the same value, but the condition may have
		// effects. Not a negation pattern.
		return
	}

	result := astutil.EnclosingFuncResult(info, c)
	if result == nil {
		return
	}

	condType := ctx.TypeOf(stmt.Cond)
	if condType == nil || !types.AssignableTo(condType, result) {
		return
	}

	span := report.Span(stmt.Pos(), last.End())

	var edits []analysis.TextEdit
	if thenValue {
		edits, _ = report.Rewrap(ctx.File, span, stmt.Cond, "return ", "")
	} else {
		edits = negationEdits(ctx, span, stmt.Cond, "return ")
	}

	ctx.ReportFix(boolReturnSelf, last, edits, "Can return the condition directly")
}
