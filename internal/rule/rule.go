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

// Package rule defines the contract between the styleguard engine and the
// rules of the catalog.
//
// A rule is a stateless value pairing a syntactic pattern with a canonical
// rewrite. The engine walks each file once and hands matching nodes to the
// subscribed rules; a rule inspects the node, decides whether its
// preconditions hold, and reports through the [Context]. Rules never mutate
// the tree. Rewrites are expressed as text edits that the driver applies.
package rule

import (
	"go/ast"

	"golang.org/x/tools/go/ast/inspector"
)

// Rule describes a single rewrite rule of the catalog.
//
// Rules are immutable and hold no state; all per-run state lives in the
// [Context]. A rule must stay silent whenever type information is missing or
// a rewrite could change behavior.
type Rule struct {
	// Name is the lowercase rule identifier. It doubles as the diagnostic
	// category and the name of the per-rule analyzer.
	Name string

	// Group is the catalog category of the rule.
	Group Group

	// Doc is a one-line summary used for analyzer documentation and flag help.
	Doc string

	// Strict marks rules whose rewrites are semantics-preserving in every
	// corner. Conservative mode restricts the catalog to strict rules.
	Strict bool

	// Nodes lists the node types the rule subscribes to.
	Nodes []ast.Node

	// Check inspects the node under c and reports findings through ctx.
	Check func(ctx *Context, c inspector.Cursor)
}
