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

package doubleneg

func negated(ok bool, a, b int) bool {
	direct := !!ok // want "Double negation is redundant"

	wrapped := !(!ok) // want "Double negation is redundant"

	if !(a == b) { // want "Negated comparison can use '!='"
		return direct
	}

	return !(a < b) || wrapped // want "Negated comparison can use '>='"
}

// A negated conjunction has no single inverted operator, and ordered float
// comparisons keep their negation because of NaN.
func kept(ok, other bool, f, g float64) bool {
	if !(ok || other) {
		return false
	}

	return !(f < g)
}
