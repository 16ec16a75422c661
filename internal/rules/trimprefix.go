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

// trimPrefix rewrites the guarded reslicing patterns
//
//	if strings.HasPrefix(s, p) {
//		s = s[len(p):]
//	}
//
// and the HasSuffix equivalent to strings.TrimPrefix and strings.TrimSuffix.
// Those trim functions return the string unchanged when the affix is
// missing, so the guard folds into the call.
var trimPrefix = rule.Rule{
	Name:   "trimprefix",
	Group:  rule.Stdlib,
	Doc:    "use strings.TrimPrefix and strings.TrimSuffix instead of guarded reslicing",
	Strict: true,
	Nodes:  []ast.Node{(*ast.IfStmt)(nil)},
	Check:  checkTrimPrefix,
}

func checkTrimPrefix(ctx *rule.Context, c inspector.Cursor) {
	stmt, _ := c.Node().(*ast.IfStmt)
	if stmt.Init != nil || stmt.Else != nil || len(stmt.Body.List) != 1 {
		return
	}

	info := ctx.Info()

	cond, ok := twoArgCall(stmt.Cond)
	if !ok {
		return
	}

	var trimFn string

	switch {
	case astutil.CalleeFunc(info, cond, "strings", "HasPrefix"):
		trimFn = "TrimPrefix"

	case astutil.CalleeFunc(info, cond, "strings", "HasSuffix"):
		trimFn = "TrimSuffix"

	default:
		return
	}

	s, p := cond.Args[0], cond.Args[1]

	id, ok := ast.Unparen(s).(*ast.Ident)
	if !ok || astutil.IsBlank(id) || !astutil.Pure(info, p) {
		return
	}

	assign, ok := stmt.Body.List[0].(*ast.AssignStmt)
	if !ok || assign.Tok != token.ASSIGN || len(assign.Lhs) != 1 || len(assign.Rhs) != 1 {
		return
	}

	if !astutil.EqualSyntax(info, assign.Lhs[0], id) {
		return
	}

	slice, ok := ast.Unparen(assign.Rhs[0]).(*ast.SliceExpr)
	if !ok || slice.Slice3 || !astutil.EqualSyntax(info, slice.X, id) {
		return
	}

	if !trimSliceMatches(info, slice, trimFn, id, p) {
		return
	}

	qual, ok := astutil.PkgQualifier(info, cond.Fun)
	if !ok {
		ctx.Report(&trimPrefix, stmt.Cond, "Can use strings.%s", trimFn)

		return
	}

	var edits []analysis.TextEdit
	if affix, renderOK := report.Render(ctx.Pass.Fset, p); renderOK {
		text := id.Name + " = " + qual + "." + trimFn + "(" + id.Name + ", " + affix + ")"
		edits, _ = report.ReplaceRange(ctx.File, stmt.Pos(), stmt.End(), text)
	}

	ctx.ReportFix(&trimPrefix, stmt, edits, "Can use %s.%s", qual, trimFn)
}

// trimSliceMatches checks the reslicing bounds: s[len(p):] for TrimPrefix
// and s[:len(s)-len(p)] for TrimSuffix.
func trimSliceMatches(info *types.Info, slice *ast.SliceExpr, trimFn string, s, p ast.Expr) bool {
	if trimFn == "TrimPrefix" {
		if slice.High != nil || slice.Low == nil {
			return false
		}

		arg, ok := lenCallArg(info, slice.Low)

		return ok && astutil.EqualSyntax(info, arg, p)
	}

	if slice.Low != nil || slice.High == nil {
		return false
	}

	diff, ok := ast.Unparen(slice.High).(*ast.BinaryExpr)
	if !ok || diff.Op != token.SUB {
		return false
	}

	whole, ok := lenCallArg(info, diff.X)
	if !ok || !astutil.EqualSyntax(info, whole, s) {
		return false
	}

	affix, ok := lenCallArg(info, diff.Y)

	return ok && astutil.EqualSyntax(info, affix, p)
}

// twoArgCall returns the expression as a call with exactly two ordinary
// arguments.
func twoArgCall(e ast.Expr) (*ast.CallExpr, bool) {
	call, ok := ast.Unparen(e).(*ast.CallExpr)
	if !ok || len(call.Args) != 2 || call.Ellipsis.IsValid() {
		return nil, false
	}

	return call, true
}
