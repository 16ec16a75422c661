// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
	"iter"
)

// AssignPairs yields the matched left- and right-hand sides of an
// assignment. The sequence is empty for tuple assignments, where a single
// call or receive initializes several variables.
func AssignPairs(stmt *ast.AssignStmt) iter.Seq2[ast.Expr, ast.Expr] {
	return func(yield func(ast.Expr, ast.Expr) bool) {
		if len(stmt.Lhs) != len(stmt.Rhs) {
			return
		}

		for i, lhs := range stmt.Lhs {
			if !yield(lhs, stmt.Rhs[i]) {
				return
			}
		}
	}
}
