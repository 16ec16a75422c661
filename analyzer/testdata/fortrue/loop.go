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

package fortrue

func drain(n int) int {
	for true { // want "Loop condition 'true' is redundant"
		n--
		if n <= 0 {
			break
		}
	}

	return n
}

const forever = true

// Only the predeclared constant matches, a named one may change.
func kept(n int, done func() bool) int {
	for forever {
		n--
		if done() {
			break
		}
	}

	for i := 0; true; {
		n += i

		break
	}

	return n
}
