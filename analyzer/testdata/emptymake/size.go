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

package emptymake

func sized(n int) int {
	m := make(map[string]int, 0) // want "Zero size in make is redundant"

	ch := make(chan int, 0) // want "Zero size in make is redundant"

	m["buffered"] = cap(ch)

	return len(m)
}

// A zero length is meaningful for slices, and non-zero capacities stay.
func kept(n int) []byte {
	s := make([]int, 0)

	buf := make([]byte, 0, 64)

	hints := make(map[string]int, n)

	hints["len"] = len(s)

	return buf
}
