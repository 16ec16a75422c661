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
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
)

// EnclosingFuncResult returns the sole result type of the innermost function
// enclosing c, or nil when there is none or the function has a different
// result count.
func EnclosingFuncResult(info *types.Info, c inspector.Cursor) types.Type {
	sig := EnclosingFunc(info, c)
	if sig == nil || sig.Results().Len() != 1 {
		return nil
	}

	return sig.Results().At(0).Type()
}

// EnclosingFunc returns the signature of the innermost function or method
// literal enclosing c, or nil.
func EnclosingFunc(info *types.Info, c inspector.Cursor) *types.Signature {
	for cur := c.Parent(); cur.Index() >= 0; cur = cur.Parent() {
		switch n := cur.Node().(type) {
		case *ast.FuncLit:
			sig, _ := info.TypeOf(n).(*types.Signature)

			return sig

		case *ast.FuncDecl:
			fn, ok := info.Defs[n.Name].(*types.Func)
			if !ok {
				return nil
			}

			return fn.Signature()
		}
	}

	return nil
}
