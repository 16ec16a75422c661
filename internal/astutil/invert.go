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

// InvertComparison returns the comparison operator with the opposite truth
// value. Equality operators always invert. Ordering operators invert only
// when neither operand can be a NaN, since for example !(x < y) is not
// x >= y for floating point operands.
func InvertComparison(info *types.Info, expr *ast.BinaryExpr) (token.Token, bool) {
	switch expr.Op {
	case token.EQL:
		return token.NEQ, true

	case token.NEQ:
		return token.EQL, true

	case token.LSS, token.GTR, token.LEQ, token.GEQ:
		if hasFloat(info, expr.X) || hasFloat(info, expr.Y) {
			return token.ILLEGAL, false
		}
	}

	switch expr.Op {
	case token.LSS:
		return token.GEQ, true

	case token.GTR:
		return token.LEQ, true

	case token.LEQ:
		return token.GTR, true

	case token.GEQ:
		return token.LSS, true

	default:
		return token.ILLEGAL, false
	}
}

// hasFloat treats unresolved types as floats, erring on the silent side.
func hasFloat(info *types.Info, expr ast.Expr) bool {
	t := info.TypeOf(expr)
	if t == nil {
		return true
	}

	b, ok := t.Underlying().(*types.Basic)

	return ok && b.Info()&(types.IsFloat|types.IsComplex) != 0
}
