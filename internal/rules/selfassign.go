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
	"strings"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/styleguard/internal/astutil"
	"fillmore-labs.com/styleguard/internal/report"
	"fillmore-labs.com/styleguard/internal/rule"
)

// selfAssign removes assignments of a variable to itself. Only plain
// identifiers qualify: an index or selector target may invoke effects, and
// tuple assignments may shuffle values.
var selfAssign = rule.Rule{
	Name:   "selfassign",
	Group:  rule.Assign,
	Doc:    "remove self-assignments",
	Strict: true,
	Nodes:  []ast.Node{(*ast.AssignStmt)(nil)},
	Check:  checkSelfAssign,
}

func checkSelfAssign(ctx *rule.Context, c inspector.Cursor) {
	stmt, _ := c.Node().(*ast.AssignStmt)
	if stmt.Tok != token.ASSIGN || len(stmt.Lhs) != len(stmt.Rhs) {
		return
	}

	info := ctx.Info()

	var names []string

	for lhs, rhs := range astutil.AssignPairs(stmt) {
		id, ok := ast.Unparen(lhs).(*ast.Ident)
		if !ok || astutil.IsBlank(id) || !astutil.EqualSyntax(info, lhs, rhs) {
			return
		}

		names = append(names, id.Name)
	}

	if names == nil {
		return
	}

	edits, _ := report.DeleteStmt(ctx.File, c)

	ctx.ReportFix(&selfAssign, stmt, edits, "Self-assignment of '%s' is a no-op", strings.Join(names, ", "))
}
