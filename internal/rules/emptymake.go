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

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/styleguard/internal/astutil"
	"fillmore-labs.com/styleguard/internal/report"
	"fillmore-labs.com/styleguard/internal/rule"
)

// emptyMake drops an explicit zero size from make calls for maps and
// channels. Slices keep theirs: make([]T, 0) sets the length, and dropping
// it would not compile.
var emptyMake = rule.Rule{
	Name:   "emptymake",
	Group:  rule.Expr,
	Doc:    "drop zero sizes from make calls",
	Strict: true,
	Nodes:  []ast.Node{(*ast.CallExpr)(nil)},
	Check:  checkEmptyMake,
}

func checkEmptyMake(ctx *rule.Context, c inspector.Cursor) {
	call, _ := c.Node().(*ast.CallExpr)
	if len(call.Args) != 2 || call.Ellipsis.IsValid() {
		return
	}

	if !astutil.IsBuiltin(ctx.Info(), call.Fun, "make") {
		return
	}

	if size, ok := astutil.IntLiteral(call.Args[1]); !ok || size != 0 {
		return
	}

	t := ctx.TypeOf(call.Args[0])
	if t == nil {
		return
	}

	switch t.Underlying().(type) {
	case *types.Map, *types.Chan:

	default:
		return
	}

	edits, _ := report.ReplaceRange(ctx.File, call.Args[0].End(), call.Args[1].End(), "")

	ctx.ReportFix(&emptyMake, call.Args[1], edits, "Zero size in make is redundant")
}
