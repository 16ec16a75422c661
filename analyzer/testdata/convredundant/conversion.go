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

package convredundant

type id int

func converted(n int, name string, key id) int {
	m := int(n) // want "Conversion to the same type is redundant"

	msg := string(name) // want "Conversion to the same type is redundant"

	k := id(key) // want "Conversion to the same type is redundant"

	return m + int(k) + len(msg)
}

// Conversions of constants pin down the type, and conversions between
// distinct types change it.
func kept(n int, r rune) string {
	c := int(42)

	wide := int64(n)

	s := string(r)

	return s + string(rune(wide + int64(c)))
}
