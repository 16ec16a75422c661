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
)

// EqualSyntax reports whether a and b are structurally identical expressions
// referring to the same objects. Identifiers are compared by resolved object,
// not by spelling, so shadowed names do not compare equal. Parentheses are
// ignored. Unsupported shapes compare unequal.
func EqualSyntax(info *types.Info, a, b ast.Expr) bool {
	switch a := ast.Unparen(a).(type) {
	case *ast.Ident:
		b, ok := ast.Unparen(b).(*ast.Ident)

		return ok && equalIdent(info, a, b)

	case *ast.SelectorExpr:
		b, ok := ast.Unparen(b).(*ast.SelectorExpr)

		return ok && equalIdent(info, a.Sel, b.Sel) && EqualSyntax(info, a.X, b.X)

	case *ast.BasicLit:
		b, ok := ast.Unparen(b).(*ast.BasicLit)

		return ok && a.Kind == b.Kind && a.Value == b.Value

	case *ast.IndexExpr:
		b, ok := ast.Unparen(b).(*ast.IndexExpr)

		return ok && EqualSyntax(info, a.X, b.X) && EqualSyntax(info, a.Index, b.Index)

	case *ast.StarExpr:
		b, ok := ast.Unparen(b).(*ast.StarExpr)

		return ok && EqualSyntax(info, a.X, b.X)

	case *ast.UnaryExpr:
		b, ok := ast.Unparen(b).(*ast.UnaryExpr)

		return ok && a.Op == b.Op && EqualSyntax(info, a.X, b.X)

	case *ast.BinaryExpr:
		b, ok := ast.Unparen(b).(*ast.BinaryExpr)

		return ok && a.Op == b.Op && EqualSyntax(info, a.X, b.X) && EqualSyntax(info, a.Y, b.Y)

	case *ast.CallExpr:
		b, ok := ast.Unparen(b).(*ast.CallExpr)
		if !ok || len(a.Args) != len(b.Args) || a.Ellipsis.IsValid() != b.Ellipsis.IsValid() {
			return false
		}

		if !EqualSyntax(info, a.Fun, b.Fun) {
			return false
		}

		for i := range a.Args {
			if !EqualSyntax(info, a.Args[i], b.Args[i]) {
				return false
			}
		}

		return true

	default:
		return false
	}
}

func equalIdent(info *types.Info, a, b *ast.Ident) bool {
	if a.Name != b.Name {
		return false
	}

	ao, bo := info.ObjectOf(a), info.ObjectOf(b)

	return ao != nil && ao == bo
}

// Pure reports whether evaluating expr is free of side effects and function
// calls, so the expression can be dropped or re-evaluated without changing
// program behavior. Channel receives and calls other than len and cap of a
// pure operand are impure.
func Pure(info *types.Info, expr ast.Expr) bool {
	switch expr := expr.(type) {
	case *ast.Ident, *ast.BasicLit:
		return true

	case *ast.ParenExpr:
		return Pure(info, expr.X)

	case *ast.SelectorExpr:
		return Pure(info, expr.X)

	case *ast.StarExpr:
		return Pure(info, expr.X)

	case *ast.UnaryExpr:
		return expr.Op != token.ARROW && Pure(info, expr.X)

	case *ast.BinaryExpr:
		return Pure(info, expr.X) && Pure(info, expr.Y)

	case *ast.IndexExpr:
		return Pure(info, expr.X) && Pure(info, expr.Index)

	case *ast.SliceExpr:
		for _, e := range []ast.Expr{expr.X, expr.Low, expr.High, expr.Max} {
			if e != nil && !Pure(info, e) {
				return false
			}
		}

		return true

	case *ast.CallExpr:
		if len(expr.Args) != 1 {
			return false
		}

		return (IsBuiltin(info, expr.Fun, "len") || IsBuiltin(info, expr.Fun, "cap")) &&
			Pure(info, expr.Args[0])

	default:
		return false
	}
}
