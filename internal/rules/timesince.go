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

// timeSince rewrites “time.Now().Sub(t)” to “time.Since(t)” and
// “t.Sub(time.Now())” to “time.Until(t)”. The rewrite moves the implicit
// time.Now across the other operand, so that operand must be effect-free.
var timeSince = rule.Rule{
	Name:   "timesince",
	Group:  rule.Stdlib,
	Doc:    "use time.Since and time.Until instead of Sub with time.Now",
	Strict: true,
	Nodes:  []ast.Node{(*ast.CallExpr)(nil)},
	Check:  checkTimeSince,
}

func checkTimeSince(ctx *rule.Context, c inspector.Cursor) {
	call, _ := c.Node().(*ast.CallExpr)
	if len(call.Args) != 1 || call.Ellipsis.IsValid() {
		return
	}

	info := ctx.Info()

	if !astutil.CalleeMethod(info, call, "time", "Time", "Sub") {
		return
	}

	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return
	}

	var (
		fn      string
		operand ast.Expr
		now     *ast.CallExpr
	)

	if n := nowCall(info, sel.X); n != nil {
		fn, operand, now = "Since", call.Args[0], n
	} else if n := nowCall(info, call.Args[0]); n != nil {
		fn, operand, now = "Until", sel.X, n
	} else {
		return
	}

	t := info.TypeOf(operand)
	if t == nil {
		return
	}

	if _, isPtr := t.Underlying().(*types.Pointer); isPtr {
		// Sub on a pointer receiver dereferences implicitly; Until takes the
		// value.
		return
	}

	if !astutil.Pure(info, operand) {
		return
	}

	qual, ok := astutil.PkgQualifier(info, now.Fun)
	if !ok {
		ctx.Report(&timeSince, call, "Can use time.%s", fn)

		return
	}

	var edits []analysis.TextEdit
	if text, renderOK := report.Render(ctx.Pass.Fset, operand); renderOK {
		edits, _ = report.ReplaceRange(ctx.File, call.Pos(), call.End(), qual+"."+fn+"("+text+")")
	}

	ctx.ReportFix(&timeSince, call, edits, "Can use %s.%s", qual, fn)
}

// nowCall returns the expression as a time.Now call.
func nowCall(info *types.Info, e ast.Expr) *ast.CallExpr {
	call, ok := ast.Unparen(e).(*ast.CallExpr)
	if !ok || len(call.Args) != 0 || !astutil.CalleeFunc(info, call, "time", "Now") {
		return nil
	}

	return call
}
