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

package nilcheckrange

func summed(items []int, weights map[string]int) int {
	total := 0

	if items != nil {
		for _, v := range items { // want "Nil check before range is redundant"
			total += v
		}
	}

	if weights != nil {
		for _, w := range weights { // want "Nil check before range is redundant"
			total += w
		}
	}

	return total
}

// Ranging over a nil channel blocks, so the check stays.
func kept(ch chan int, items []int, logged []string) int {
	total := 0

	if ch != nil {
		for v := range ch {
			total += v
		}
	}

	if items != nil {
		for _, v := range items {
			total += v
		}

		total++
	}

	if logged != nil {
		for _, l := range items {
			total += l + len(logged)
		}
	}

	return total
}
