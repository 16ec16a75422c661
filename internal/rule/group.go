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

package rule

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type Group -linecomment

// Group categorizes the rules of the catalog.
type Group uint8

const (
	// Boolean groups rules simplifying boolean expressions and returns.
	Boolean Group = iota // boolean

	// Control groups rules simplifying control flow.
	Control // control

	// Assign groups rules simplifying assignments.
	Assign // assign

	// Expr groups rules simplifying general expressions and declarations.
	Expr // expr

	// Stdlib groups rules replacing patterns with standard library calls.
	Stdlib // stdlib
)

// ParseGroup resolves a group name to its [Group] value.
func ParseGroup(name string) (Group, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "boolean":
		return Boolean, nil

	case "control":
		return Control, nil

	case "assign":
		return Assign, nil

	case "expr":
		return Expr, nil

	case "stdlib":
		return Stdlib, nil

	default:
		return 0, fmt.Errorf("unknown rule group %q", name)
	}
}
