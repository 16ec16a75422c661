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

package boolexpr

func compared(ok, done bool, n int) bool {
	if ok == true { // want "Comparison with 'true' is redundant"
		return done
	}

	if done != false { // want "Comparison with 'false' is redundant"
		return ok
	}

	negated := ok == false // want "Comparison with 'false' is redundant"

	inverted := n > 0 == false // want "Comparison with 'false' is redundant"

	return negated || inverted
}

type tristate bool

// Defined boolean type - substituting the operand would change the type.
func defined(t tristate, ok bool) bool {
	if t == true {
		return bool(t)
	}

	return ok
}
