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

package selfassign

func dropped(x, y int) int {
	x = x // want "Self-assignment of 'x' is a no-op"

	x, y = x, y // want "Self-assignment of 'x, y' is a no-op"

	return x + y
}

type box struct{ v int }

// Selector and index targets may invoke effects, and swaps shuffle values.
func kept(b *box, arr []int, i, x, y int) int {
	b.v = b.v

	arr[i] = arr[i]

	x, y = y, x

	return b.v + arr[i] + x + y
}
