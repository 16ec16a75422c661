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

package parens

type pt struct {
	x int
}

func grouped(a, b int) int {
	y := (a + b) // want "Redundant parentheses"

	if (y > 0) { // want "Redundant parentheses"
		y = ((a)) // want "Redundant parentheses"
	}

	p := &(pt{x: y}) // want "Redundant parentheses"

	return (y + p.x) // want "Redundant parentheses"
}

// Grouping parentheses and composite literals in statement headers stay.
func kept(a, b, c int) int {
	y := (a + b) * c

	for i := range ([]int{a, b}) {
		y += i
	}

	switch (pt{x: c}) {
	case pt{x: y}:
		return 0
	}

	return y
}
