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

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/styleguard/internal/report"
	"fillmore-labs.com/styleguard/internal/rule"
)

// emptyElse removes an else branch with an empty block.
var emptyElse = rule.Rule{
	Name:   "emptyelse",
	Group:  rule.Control,
	Doc:    "remove empty else branches",
	Strict: true,
	Nodes:  []ast.Node{(*ast.IfStmt)(nil)},
	Check:  checkEmptyElse,
}

// emptyElseSelf is assigned in init; referencing emptyElse directly from
// checkEmptyElse would form an initialization cycle.
var emptyElseSelf *rule.Rule

func init() { emptyElseSelf = &emptyElse }

func checkEmptyElse(ctx *rule.Context, c inspector.Cursor) {
	stmt, _ := c.Node().(*ast.IfStmt)

	block, ok := stmt.Else.(*ast.BlockStmt)
	if !ok || len(block.List) != 0 {
		return
	}

	edits, _ := report.ReplaceRange(ctx.File, stmt.Body.End(), stmt.End(), "")

	ctx.ReportFix(emptyElseSelf, block, edits, "Empty else branch can be removed")
}
