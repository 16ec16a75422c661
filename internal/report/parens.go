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

package report

import (
	"go/ast"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/styleguard/internal/astutil"
)

// NeedsParens reports whether substituting the expression under keep for the
// node at c requires parentheses: either the parent context binds tighter
// than the replacement, or the replacement would expose a composite literal
// in a statement header.
func NeedsParens(c, keep inspector.Cursor) bool {
	expr, ok := keep.Node().(ast.Expr)
	if !ok {
		return false
	}

	if !astutil.IsPrimary(expr) {
		switch kind, _ := c.ParentEdge(); kind {
		case edge.SelectorExpr_X, edge.CallExpr_Fun,
			edge.IndexExpr_X, edge.IndexListExpr_X, edge.SliceExpr_X,
			edge.TypeAssertExpr_X, edge.StarExpr_X, edge.UnaryExpr_X,
			edge.BinaryExpr_X, edge.BinaryExpr_Y:
			return true
		}
	}

	return InStmtHeader(c) && ExposedCompositeLit(keep)
}

// InStmtHeader reports whether the node at c forms part of an if, for,
// switch or range header, with no delimiter in between.
//
// A [composite literal] there is ambiguous with the statement's block:
//
//	A parsing ambiguity arises when a composite literal [...] appears as an
//	operand between the keyword and the opening brace of the block of an
//	"if", "for", or "switch" statement, ...
//
// [composite literal]: https://go.dev/ref/spec#Composite_literals
func InStmtHeader(c inspector.Cursor) bool {
	for cur := c; cur.Index() >= 0; cur = cur.Parent() {
		switch kind, _ := cur.ParentEdge(); kind {
		case edge.IfStmt_Cond, edge.ForStmt_Cond, edge.SwitchStmt_Tag, edge.RangeStmt_X:
			return true

		// Still undelimited within the enclosing expression
		case edge.SelectorExpr_X, edge.StarExpr_X, edge.UnaryExpr_X,
			edge.BinaryExpr_X, edge.BinaryExpr_Y, edge.SliceExpr_X,
			edge.IndexExpr_X, edge.IndexListExpr_X, edge.TypeAssertExpr_X,
			edge.CallExpr_Fun:

		default:
			return false
		}
	}

	return false
}

// ExposedCompositeLit detects whether the expression under e contains a
// composite literal without safe delimiters within the expression boundary.
func ExposedCompositeLit(e inspector.Cursor) bool {
	// If the expression root itself is a composite literal, it has no
	// enclosing parents within the expression boundary to provide safe
	// delimiters.
	if _, ok := e.Node().(*ast.CompositeLit); ok {
		return true
	}

compLits:
	for c := range e.Preorder((*ast.CompositeLit)(nil)) {
		// Found a composite literal. Walk up the parent chain to check if
		// it is already safely delimited by parentheses, braces, or other
		// constructs.
		for p := c; p.Index() != e.Index(); p = p.Parent() {
			switch kind, _ := p.ParentEdge(); kind {
			// Already wrapped
			case edge.ParenExpr_X,
				// Inside a function call or index expression
				edge.CallExpr_Args, edge.IndexExpr_Index,
				// Slice expression
				edge.SliceExpr_Low, edge.SliceExpr_High, edge.SliceExpr_Max,
				// Nested composite literal
				edge.CompositeLit_Elts, edge.KeyValueExpr_Value:
				// Safely delimited, check the next composite literal
				continue compLits
			}
		}

		// Reached the root expression without finding delimiters
		return true
	}

	return false
}
