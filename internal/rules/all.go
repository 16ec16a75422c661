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
	"slices"

	"fillmore-labs.com/styleguard/internal/rule"
)

// catalog lists every rule, grouped and alphabetical within each group.
// This is the order the engine dispatches in, so runs are deterministic.
var catalog = []rule.Rule{
	// Boolean
	boolExpr,
	boolReturn,
	doubleNeg,

	// Control
	emptyElse,
	errNilReturn,
	forTrue,
	nilCheckRange,
	rangeBlank,
	switchBreak,

	// Assign
	incDec,
	selfAssign,

	// Expr
	convRedundant,
	emptyMake,
	lenZero,
	parens,
	varType,

	// Stdlib
	equalFold,
	indexContains,
	sprintfString,
	timeSince,
	trimPrefix,
}

// All returns the full rule catalog in dispatch order.
func All() []rule.Rule {
	return slices.Clone(catalog)
}

// Lookup returns the rule with the given name.
func Lookup(name string) (rule.Rule, bool) {
	for _, r := range catalog {
		if r.Name == name {
			return r, true
		}
	}

	return rule.Rule{}, false
}

// Names returns the names of all rules in dispatch order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, r := range catalog {
		names[i] = r.Name
	}

	return names
}

// Grouped returns the names of all rules in the given group.
func Grouped(group rule.Group) []string {
	var names []string

	for _, r := range catalog {
		if r.Group == group {
			names = append(names, r.Name)
		}
	}

	return names
}
