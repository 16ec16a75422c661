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

// equalFold rewrites equality of two strings.ToLower or two strings.ToUpper
// calls to strings.EqualFold.
//
// Not strict: EqualFold uses simple Unicode case folding, which differs from
// the lowered comparison for a few characters like the Kelvin sign.
var equalFold = rule.Rule{
	Name:   "equalfold",
	Group:  rule.Stdlib,
	Doc:    "use strings.EqualFold for case-insensitive comparison",
	Strict: false,
	Nodes:  []ast.Node{(*ast.BinaryExpr)(nil)},
	Check:  checkEqualFold,
}

func checkEqualFold(ctx *rule.Context, c inspector.Cursor) {
	bin, _ := c.Node().(*ast.BinaryExpr)
	if bin.Op != token.EQL && bin.Op != token.NEQ {
		return
	}

	info := ctx.Info()

	left, ok := singleArgCall(bin.X)
	if !ok {
		return
	}

	right, ok := singleArgCall(bin.Y)
	if !ok {
		return
	}

	switch {
	case astutil.CalleeFunc(info, left, "strings", "ToLower") && astutil.CalleeFunc(info, right, "strings", "ToLower"):
	case astutil.CalleeFunc(info, left, "strings", "ToUpper") && astutil.CalleeFunc(info, right, "strings", "ToUpper"):

	default:
		return
	}

	qual, ok := astutil.PkgQualifier(info, left.Fun)
	if !ok {
		// Dot imports leave no qualifier to build the call with.
		ctx.Report(&equalFold, bin, "Can use strings.EqualFold")

		return
	}

	fset := ctx.Pass.Fset

	argA, okA := report.Render(fset, left.Args[0])
	argB, okB := report.Render(fset, right.Args[0])

	var edits []analysis.TextEdit
	if okA && okB {
		not := ""
		if bin.Op == token.NEQ {
			not = "!"
		}

		edits, _ = report.ReplaceRange(ctx.File, bin.Pos(), bin.End(), not+qual+".EqualFold("+argA+", "+argB+")")
	}

	ctx.ReportFix(&equalFold, bin, edits, "Can use %s.EqualFold", qual)
}

// singleArgCall returns the expression as a call with exactly one ordinary
// argument.
func singleArgCall(e ast.Expr) (*ast.CallExpr, bool) {
	call, ok := ast.Unparen(e).(*ast.CallExpr)
	if !ok || len(call.Args) != 1 || call.Ellipsis.IsValid() {
		return nil, false
	}

	return call, true
}
