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

// errNilReturn collapses the tail pattern
//
//	if err != nil {
//		return err
//	}
//	return nil
//
// to a plain “return err”. Both err and the enclosing result must have the
// static type error, so the two forms return identical values.
var errNilReturn = rule.Rule{
	Name:   "errnilreturn",
	Group:  rule.Control,
	Doc:    "return the error directly instead of guarding a nil return",
	Strict: true,
	Nodes:  []ast.Node{(*ast.IfStmt)(nil)},
	Check:  checkErrNilReturn,
}

// errNilReturnSelf is assigned in init; referencing errNilReturn directly from
// checkErrNilReturn would form an initialization cycle.
var errNilReturnSelf *rule.Rule

func init() { errNilReturnSelf = &errNilReturn }

func checkErrNilReturn(ctx *rule.Context, c inspector.Cursor) {
	stmt, _ := c.Node().(*ast.IfStmt)
	if stmt.Init != nil || stmt.Else != nil {
		return
	}

	info := ctx.Info()

	bin, ok := ast.Unparen(stmt.Cond).(*ast.BinaryExpr)
	if !ok {
		return
	}

	operand, ok := nilOperand(info, bin, token.NEQ)
	if !ok {
		return
	}

	id, ok := ast.Unparen(operand).(*ast.Ident)
	if !ok || astutil.IsBlank(id) {
		return
	}

	errorType := types.Universe.Lookup("error").Type()
	if idType := info.TypeOf(id); idType == nil || !types.Identical(idType, errorType) {
		return
	}

	if len(stmt.Body.List) != 1 {
		return
	}

	ret, ok := stmt.Body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 || !astutil.EqualSyntax(info, ret.Results[0], id) {
		return
	}

	next, found := c.NextSibling()
	if !found {
		return
	}

	tail, ok := next.Node().(*ast.ReturnStmt)
	if !ok || len(tail.Results) != 1 || !astutil.IsNil(info, tail.Results[0]) {
		return
	}

	if result := astutil.EnclosingFuncResult(info, c); result == nil || !types.Identical(result, errorType) {
		return
	}

	edits, _ := report.ReplaceRange(ctx.File, stmt.Pos(), tail.End(), "return "+id.Name)

	ctx.ReportFix(errNilReturnSelf, tail, edits, "Can be collapsed to 'return %s'", id.Name)
}
