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
	"strconv"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/styleguard/internal/astutil"
	"fillmore-labs.com/styleguard/internal/report"
	"fillmore-labs.com/styleguard/internal/rule"
)

// sprintfString drops fmt.Sprintf calls that format a single string value
// with a bare %s or %v verb. Named string types stay: their String method,
// if any, changes the output.
var sprintfString = rule.Rule{
	Name:   "sprintfstring",
	Group:  rule.Stdlib,
	Doc:    "remove fmt.Sprintf around plain string values",
	Strict: true,
	Nodes:  []ast.Node{(*ast.CallExpr)(nil)},
	Check:  checkSprintfString,
}

func checkSprintfString(ctx *rule.Context, c inspector.Cursor) {
	call, _ := c.Node().(*ast.CallExpr)
	if len(call.Args) != 2 || call.Ellipsis.IsValid() {
		return
	}

	info := ctx.Info()

	if !astutil.CalleeFunc(info, call, "fmt", "Sprintf") {
		return
	}

	lit, ok := ast.Unparen(call.Args[0]).(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return
	}

	if format, err := strconv.Unquote(lit.Value); err != nil || (format != "%s" && format != "%v") {
		return
	}

	arg := call.Args[1]
	if !astutil.IsExactString(info, arg) {
		return
	}

	parens := report.NeedsParens(c, c.ChildAt(edge.CallExpr_Args, 1))
	edits, _ := report.UnwrapParen(ctx.File, call, arg, parens)

	ctx.ReportFix(&sprintfString, call, edits, "Sprintf of a string value is redundant")
}
