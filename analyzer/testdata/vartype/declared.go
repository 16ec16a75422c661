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

package vartype

import "io"

func size() int {
	return 4
}

func inferred(names []string, r io.Reader) io.Reader {
	var count int = size() // want "Type can be inferred from the initializer"

	var first, second int = size(), count // want "Type can be inferred from the initializer"

	var copies []string = names // want "Type can be inferred from the initializer"

	var (
		head string = names[0] // want "Type can be inferred from the initializer"
		tail        = names[1:]
	)

	// An interface type widens the variable, and a constant initializer
	// would leave it untyped.
	var rd io.Reader = r

	var total int = 10

	count += first + second + total + len(copies) + len(head) + len(tail)

	if count > 0 {
		return rd
	}

	return nil
}

type ready bool

// Comparisons and nil are untyped and take the declared type.
func contextTyped(a, b int) (ready, *int) {
	var ok ready = a == b

	var p *int = nil

	return ok, p
}
