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

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/styleguard/internal/report"
	"fillmore-labs.com/styleguard/internal/rule"
)

// convRedundant removes conversions whose operand already has exactly the
// target type. Conversions of untyped constants stay: there the conversion
// fixes the type.
var convRedundant = rule.Rule{
	Name:   "convredundant",
	Group:  rule.Expr,
	Doc:    "remove conversions to the same type",
	Strict: true,
	Nodes:  []ast.Node{(*ast.CallExpr)(nil)},
	Check:  checkConvRedundant,
}

func checkConvRedundant(ctx *rule.Context, c inspector.Cursor) {
	call, _ := c.Node().(*ast.CallExpr)
	if len(call.Args) != 1 || call.Ellipsis.IsValid() {
		return
	}

	info := ctx.Info()

	fun, ok := info.Types[call.Fun]
	if !ok || !fun.IsType() {
		return
	}

	arg, ok := info.Types[call.Args[0]]
	if !ok || arg.Value != nil || arg.Type == nil {
		return
	}

	if !types.Identical(fun.Type, arg.Type) {
		return
	}

	argCur := c.ChildAt(edge.CallExpr_Args, 0)
	parens := report.NeedsParens(c, argCur)
	edits, _ := report.UnwrapParen(ctx.File, call, call.Args[0], parens)

	ctx.ReportFix(&convRedundant, call, edits, "Conversion to the same type is redundant")
}
