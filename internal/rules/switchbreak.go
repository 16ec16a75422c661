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

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/styleguard/internal/report"
	"fillmore-labs.com/styleguard/internal/rule"
)

// switchBreak removes an unlabeled break at the end of a case or comm
// clause. Go switches do not fall through, so the break does nothing.
// Non-terminal breaks stay untouched.
var switchBreak = rule.Rule{
	Name:   "switchbreak",
	Group:  rule.Control,
	Doc:    "remove redundant trailing breaks from switch cases",
	Strict: true,
	Nodes:  []ast.Node{(*ast.CaseClause)(nil), (*ast.CommClause)(nil)},
	Check:  checkSwitchBreak,
}

func checkSwitchBreak(ctx *rule.Context, c inspector.Cursor) {
	var (
		body     []ast.Stmt
		bodyEdge edge.Kind
	)

	switch n := c.Node().(type) {
	case *ast.CaseClause:
		body, bodyEdge = n.Body, edge.CaseClause_Body

	case *ast.CommClause:
		body, bodyEdge = n.Body, edge.CommClause_Body
	}

	if len(body) == 0 {
		return
	}

	br, ok := body[len(body)-1].(*ast.BranchStmt)
	if !ok || br.Tok != token.BREAK || br.Label != nil {
		return
	}

	edits, _ := report.DeleteStmt(ctx.File, c.ChildAt(bodyEdge, len(body)-1))

	ctx.ReportFix(&switchBreak, br, edits, "Trailing break is redundant")
}
