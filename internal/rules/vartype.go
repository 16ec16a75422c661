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

// varType removes a declared type that initializers pin down anyway, like
// “var x int = f()” when f returns int. Declarations with constant or
// untyped initializers keep their type, as do interface types: there the
// explicit type widens the variable.
var varType = rule.Rule{
	Name:   "vartype",
	Group:  rule.Expr,
	Doc:    "omit variable types the initializer determines",
	Strict: true,
	Nodes:  []ast.Node{(*ast.GenDecl)(nil)},
	Check:  checkVarType,
}

func checkVarType(ctx *rule.Context, c inspector.Cursor) {
	decl, _ := c.Node().(*ast.GenDecl)
	if decl.Tok != token.VAR {
		return
	}

	for _, spec := range decl.Specs {
		vspec, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		checkVarSpec(ctx, vspec)
	}
}

func checkVarSpec(ctx *rule.Context, vspec *ast.ValueSpec) {
	if vspec.Type == nil || len(vspec.Values) == 0 || len(vspec.Values) != len(vspec.Names) {
		return
	}

	info := ctx.Info()

	declared := info.TypeOf(vspec.Type)
	if declared == nil || types.IsInterface(declared) {
		return
	}

	for _, value := range vspec.Values {
		tv, ok := info.Types[value]
		if !ok || tv.Value != nil || tv.Type == nil || !types.Identical(tv.Type, declared) {
			return
		}

		if !typedExpr(info, value) {
			return
		}
	}

	last := vspec.Names[len(vspec.Names)-1]
	edits, _ := report.ReplaceRange(ctx.File, last.End(), vspec.Type.End(), "")

	ctx.ReportFix(&varType, vspec.Type, edits, "Type can be inferred from the initializer")
}

// typedExpr reports whether the expression carries its own type. Comparisons,
// negations, shifts and nil can be untyped and take the declared type: the
// type map records them with the declared type already, but removing it would
// hand them their default type instead.
func typedExpr(info *types.Info, e ast.Expr) bool {
	switch e := ast.Unparen(e).(type) {
	case *ast.BinaryExpr:
		return false

	case *ast.UnaryExpr:
		return e.Op != token.NOT

	case *ast.Ident:
		return !astutil.IsNil(info, e)
	}

	return true
}
