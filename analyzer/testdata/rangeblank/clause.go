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

package rangeblank

func counted(s []string) int {
	n := 0

	for _ = range s { // want "Blank range variable can be omitted"
		n++
	}

	for _, _ = range s { // want "Blank range variables can be omitted"
		n++
	}

	for i, _ := range s { // want "Blank range value can be omitted"
		n += i
	}

	return n
}

func kept(s []string) string {
	out := ""

	for _, v := range s {
		out += v
	}

	for range s {
		out += "."
	}

	return out
}
