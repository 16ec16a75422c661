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
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/styleguard/internal/astutil"
	"fillmore-labs.com/styleguard/internal/report"
	"fillmore-labs.com/styleguard/internal/rule"
)

// indexContains rewrites comparisons of strings.Index, strings.IndexRune and
// bytes.Index results against -1 or 0 to the corresponding Contains call.
var indexContains = rule.Rule{
	Name:   "indexcontains",
	Group:  rule.Stdlib,
	Doc:    "use Contains instead of comparing Index results",
	Strict: true,
	Nodes:  []ast.Node{(*ast.BinaryExpr)(nil)},
	Check:  checkIndexContains,
}

func checkIndexContains(ctx *rule.Context, c inspector.Cursor) {
	bin, _ := c.Node().(*ast.BinaryExpr)

	info := ctx.Info()

	call, callLeft := indexCall(info, bin.X), true
	if call == nil {
		call, callLeft = indexCall(info, bin.Y), false
	}

	if call == nil {
		return
	}

	fn := containsName(info, call)

	lit := bin.Y
	if !callLeft {
		lit = bin.X
	}

	value, ok := astutil.IntLiteral(lit)
	if !ok {
		return
	}

	negated, ok := containsComparison(bin.Op, value, callLeft)
	if !ok {
		return
	}

	qual, ok := astutil.PkgQualifier(info, call.Fun)
	if !ok {
		ctx.Report(&indexContains, bin, "Can use %s", fn)

		return
	}

	fset := ctx.Pass.Fset

	argA, okA := report.Render(fset, call.Args[0])
	argB, okB := report.Render(fset, call.Args[1])

	var edits []analysis.TextEdit
	if okA && okB {
		not := ""
		if negated {
			not = "!"
		}

		edits, _ = report.ReplaceRange(ctx.File, bin.Pos(), bin.End(), not+qual+"."+fn+"("+argA+", "+argB+")")
	}

	ctx.ReportFix(&indexContains, bin, edits, "Can use %s.%s", qual, fn)
}

// indexCall returns the expression as a supported Index call.
func indexCall(info *types.Info, e ast.Expr) *ast.CallExpr {
	call, ok := twoArgCall(e)
	if !ok {
		return nil
	}

	if containsName(info, call) == "" {
		return nil
	}

	return call
}

// containsName maps an Index call to the matching Contains function.
func containsName(info *types.Info, call *ast.CallExpr) string {
	switch {
	case astutil.CalleeFunc(info, call, "strings", "Index"),
		astutil.CalleeFunc(info, call, "bytes", "Index"):
		return "Contains"

	case astutil.CalleeFunc(info, call, "strings", "IndexRune"):
		return "ContainsRune"

	default:
		return ""
	}
}

// containsComparison classifies the comparison of an index with the
// literal. It reports whether the rewrite must negate the Contains call and
// whether the comparison matches at all.
func containsComparison(op token.Token, literal int64, callLeft bool) (negated, ok bool) {
	if callLeft {
		switch {
		case op == token.NEQ && literal == -1, // Index(…) != -1
			op == token.GEQ && literal == 0, //  Index(…) >= 0
			op == token.GTR && literal == -1: // Index(…) > -1
			return false, true

		case op == token.EQL && literal == -1, // Index(…) == -1
			op == token.LSS && literal == 0: //   Index(…) < 0
			return true, true
		}

		return false, false
	}

	switch {
	case op == token.NEQ && literal == -1, // -1 != Index(…)
		op == token.LEQ && literal == 0, //   0 <= Index(…)
		op == token.LSS && literal == -1: //  -1 < Index(…)
		return false, true

	case op == token.EQL && literal == -1, // -1 == Index(…)
		op == token.GTR && literal == 0: //    0 > Index(…)
		return true, true
	}

	return false, false
}
