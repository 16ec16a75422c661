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

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/styleguard/internal/astutil"
	"fillmore-labs.com/styleguard/internal/report"
	"fillmore-labs.com/styleguard/internal/rule"
)

// forTrue rewrites “for true { … }” to the bare loop “for { … }”.
var forTrue = rule.Rule{
	Name:   "fortrue",
	Group:  rule.Control,
	Doc:    "use bare for loops instead of for true",
	Strict: true,
	Nodes:  []ast.Node{(*ast.ForStmt)(nil)},
	Check:  checkForTrue,
}

// forTrueSelf is assigned in init; referencing forTrue directly from
// checkForTrue would form an initialization cycle.
var forTrueSelf *rule.Rule

func init() { forTrueSelf = &forTrue }

func checkForTrue(ctx *rule.Context, c inspector.Cursor) {
	stmt, _ := c.Node().(*ast.ForStmt)
	if stmt.Init != nil || stmt.Post != nil || stmt.Cond == nil {
		return
	}

	value, ok := astutil.BoolLiteral(ctx.Info(), stmt.Cond)
	if !ok || !value {
		return
	}

	// The condition sits between the for keyword and the opening brace.
	forEnd := stmt.For + token.Pos(len("for"))
	edits, _ := report.ReplaceRange(ctx.File, forEnd, stmt.Body.Lbrace, " ")

	ctx.ReportFix(forTrueSelf, stmt.Cond, edits, "Loop condition 'true' is redundant")
}
