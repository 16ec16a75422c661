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

package lenzero

func clipped(s string) string {
	if len(s) == 0 { // want "Comparison with zero length can compare to the empty string"
		return "empty"
	}

	out := ""

	for len(s) != 0 { // want "Comparison with zero length can compare to the empty string"
		out += string(s[0])
		s = s[1:]
	}

	if len(out) > 0 { // want "Comparison with zero length can compare to the empty string"
		return out
	}

	return s
}

func blank(s string) bool {
	return 0 == len(s) // want "Comparison with zero length can compare to the empty string"
}

// Only string operands match; slices keep the len form.
func kept(v []int, s string) bool {
	if len(v) == 0 {
		return true
	}

	return len(s) == 1
}
