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

package incdec

func stepped(n int, f float64) float64 {
	n += 1 // want "Can use the increment statement"

	n -= 1 // want "Can use the decrement statement"

	n = n + 1 // want "Can use the increment statement"

	n = n - 1 // want "Can use the decrement statement"

	f += 1 // want "Can use the increment statement"

	return f + float64(n)
}

var cursor = 0

func next() int {
	cursor++
	return cursor % 4
}

func kept(n int, arr []int) int {
	n += 2

	n = n + n

	n = 1 + n

	arr[next()] = arr[next()] + 1

	return n + arr[0]
}
