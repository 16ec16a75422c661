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

// nilCheckRange removes a nil check whose body is exactly a range over the
// checked expression. Ranging over a nil slice or map runs zero iterations,
// so the guard changes nothing.
var nilCheckRange = rule.Rule{
	Name:   "nilcheckrange",
	Group:  rule.Control,
	Doc:    "remove nil checks guarding a range loop",
	Strict: true,
	Nodes:  []ast.Node{(*ast.IfStmt)(nil)},
	Check:  checkNilCheckRange,
}

func checkNilCheckRange(ctx *rule.Context, c inspector.Cursor) {
	stmt, _ := c.Node().(*ast.IfStmt)
	if stmt.Init != nil || stmt.Else != nil || len(stmt.Body.List) != 1 {
		return
	}

	loop, ok := stmt.Body.List[0].(*ast.RangeStmt)
	if !ok {
		return
	}

	info := ctx.Info()

	bin, ok := ast.Unparen(stmt.Cond).(*ast.BinaryExpr)
	if !ok {
		return
	}

	checked, ok := nilOperand(info, bin, token.NEQ)
	if !ok {
		return
	}

	if !astutil.EqualSyntax(info, checked, loop.X) || !astutil.Pure(info, checked) {
		return
	}

	t := info.TypeOf(checked)
	if t == nil {
		return
	}

	switch t.Underlying().(type) {
	case *types.Slice, *types.Map:

	default:
		return
	}

	edits, _ := report.Unwrap(ctx.File, stmt, loop)

	ctx.ReportFix(&nilCheckRange, loop, edits, "Nil check before range is redundant")
}
