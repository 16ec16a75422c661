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

package switchbreak

func classified(x int, ch chan int) int {
	switch x {
	case 1:
		x += 5
		break // want "Trailing break is redundant"
	case 2:
		break // want "Trailing break is redundant"
	}

	select {
	case v := <-ch:
		x = v
		break // want "Trailing break is redundant"
	default:
		x = 0
	}

	return x
}

func kept(vals []int) int {
	n := 0

loop:
	for _, v := range vals {
		switch v {
		case 0:
			break loop
		}

		n += v
	}

	switch n {
	case 1:
		if n > 0 {
			break
		}

		n = 2
	}

	return n
}
