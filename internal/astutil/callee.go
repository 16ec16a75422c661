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
)

// CalleeFunc reports whether call statically calls the package-level function
// path.name. Resolution goes through the type checker's objects, so import
// aliases and shadowing are handled.
func CalleeFunc(info *types.Info, call *ast.CallExpr, path, name string) bool {
	fn := calleeObject(info, call)
	if fn == nil || fn.Name() != name || fn.Signature().Recv() != nil {
		return false
	}

	pkg := fn.Pkg()

	return pkg != nil && pkg.Path() == path
}

// CalleeMethod reports whether call statically calls the method name of the
// defined type path.recv, with a value or pointer receiver.
func CalleeMethod(info *types.Info, call *ast.CallExpr, path, recv, name string) bool {
	fn := calleeObject(info, call)
	if fn == nil || fn.Name() != name {
		return false
	}

	r := fn.Signature().Recv()
	if r == nil {
		return false
	}

	t := r.Type()
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Name() == recv && obj.Pkg() != nil && obj.Pkg().Path() == path
}

// IsBuiltin reports whether fun resolves to the predeclared builtin name.
func IsBuiltin(info *types.Info, fun ast.Expr, name string) bool {
	id, ok := ast.Unparen(fun).(*ast.Ident)
	if !ok {
		return false
	}

	b, ok := info.Uses[id].(*types.Builtin)

	return ok && b.Name() == name
}

// PkgQualifier returns the package qualifier of a selector call target as
// spelled in the source, e.g. "strings" in strings.Index. There is no
// qualifier for dot imports and method calls.
func PkgQualifier(info *types.Info, fun ast.Expr) (string, bool) {
	sel, ok := ast.Unparen(fun).(*ast.SelectorExpr)
	if !ok {
		return "", false
	}

	id, ok := sel.X.(*ast.Ident)
	if !ok {
		return "", false
	}

	if _, ok := info.Uses[id].(*types.PkgName); !ok {
		return "", false
	}

	return id.Name, true
}

// calleeObject resolves the called function or method, or nil for calls of
// function values, conversions and builtins.
func calleeObject(info *types.Info, call *ast.CallExpr) *types.Func {
	var id *ast.Ident

	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.Ident:
		id = fun

	case *ast.SelectorExpr:
		id = fun.Sel

	default:
		return nil
	}

	fn, _ := info.Uses[id].(*types.Func)

	return fn
}
