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

package nolint

func adjust(xs []int, ok bool) int {
	n := 0

	if ok == true { //nolint:styleguard
		n = n + 1 // want "Can use the increment statement"
	}

	if ok == false { //nolint:all
		n += 2
	}

	n -= 1 //nolint:styleguard

	for _ = range xs { //nolint:other,styleguard
		n += 2
	}

	return n
}
