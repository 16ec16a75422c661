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

package boolreturn

func direct(ok bool) bool {
	if ok { return true } else { return false } // want "Can return the condition directly"
}

func inverted(a, b int) bool {
	if a == b { return false } else { return true } // want "Can return the condition directly"
}

func tail(fast bool) bool {
	if fast {
		return true
	}

	return false // want "Can return the condition directly"
}

func tailInverted(a, b int) bool {
	if a == b {
		return false
	}

	return true // want "Can return the condition directly"
}

// Both branches agree - the condition may be there for its effects.
func same(ok bool) bool {
	if ok {
		return true
	}

	return true
}

type tristate bool

// The condition is plain bool, the result is not.
func widened(ok bool) tristate {
	if ok {
		return true
	}

	return false
}

// Comparisons yield untyped bool, which stays assignable to defined types.
func widenedCompare(a, b int) tristate {
	if a == b {
		return true
	}

	return false // want "Can return the condition directly"
}

func chained(a, b int) bool {
	if a < b {
		return true
	} else if a > b {
		return false
	}

	return false
}
