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

package astutil

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
)

// BoolLiteral resolves expr to one of the predeclared boolean constants.
// Shadowing declarations of true and false do not qualify.
func BoolLiteral(info *types.Info, expr ast.Expr) (value, ok bool) {
	id, ok := ast.Unparen(expr).(*ast.Ident)
	if !ok {
		return false, false
	}

	obj := info.Uses[id]
	if obj == nil || obj != types.Universe.Lookup(id.Name) {
		return false, false
	}

	return id.Name == "true", true
}

// IsNil reports whether expr is the predeclared nil.
func IsNil(info *types.Info, expr ast.Expr) bool {
	id, ok := ast.Unparen(expr).(*ast.Ident)
	if !ok {
		return false
	}

	_, isNil := info.Uses[id].(*types.Nil)

	return isNil
}

// IsExactBool reports whether the type of expr defaults to the predeclared
// bool. Defined boolean types do not qualify, since rewrites relying on this
// predicate substitute the operand for the whole expression.
func IsExactBool(info *types.Info, expr ast.Expr) bool {
	t := info.TypeOf(expr)
	if t == nil {
		return false
	}

	return types.Identical(types.Default(t), types.Typ[types.Bool])
}

// IsExactString reports whether the type of expr is the predeclared string.
func IsExactString(info *types.Info, expr ast.Expr) bool {
	t := info.TypeOf(expr)

	return t != nil && types.Identical(t, types.Typ[types.String])
}

// IsString reports whether the underlying type of expr is a string.
func IsString(info *types.Info, expr ast.Expr) bool {
	t := info.TypeOf(expr)
	if t == nil {
		return false
	}

	b, ok := t.Underlying().(*types.Basic)

	return ok && b.Info()&types.IsString != 0
}

// IntLiteral returns the value of an integer literal, unwrapping parentheses
// and a unary minus.
func IntLiteral(expr ast.Expr) (int64, bool) {
	expr = ast.Unparen(expr)

	neg := false
	if u, ok := expr.(*ast.UnaryExpr); ok && u.Op == token.SUB {
		neg, expr = true, ast.Unparen(u.X)
	}

	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.INT {
		return 0, false
	}

	v, err := strconv.ParseInt(lit.Value, 0, 64)
	if err != nil {
		return 0, false
	}

	if neg {
		v = -v
	}

	return v, true
}

// IsBlank reports whether expr is the blank identifier.
func IsBlank(expr ast.Expr) bool {
	id, ok := expr.(*ast.Ident)

	return ok && id.Name == "_"
}

// IsPrimary reports whether expr belongs to an expression class that never
// needs parenthesization.
func IsPrimary(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.Ident, *ast.BasicLit, *ast.SelectorExpr, *ast.CallExpr,
		*ast.IndexExpr, *ast.IndexListExpr, *ast.SliceExpr, *ast.TypeAssertExpr,
		*ast.ParenExpr:
		return true

	default:
		return false
	}
}
