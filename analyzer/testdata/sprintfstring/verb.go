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

package sprintfstring

import "fmt"

type route string

func format(name, host, dir string, n int, r route) string {
	plain := fmt.Sprintf("%s", name) // want "Sprintf of a string value is redundant"

	value := fmt.Sprintf("%v", host) // want "Sprintf of a string value is redundant"

	url := "https://" + fmt.Sprintf("%s", host+dir) // want "Sprintf of a string value is redundant"

	// Width verbs format, and a named string type may have a String method.
	padded := fmt.Sprintf("%4d", n)

	labeled := fmt.Sprintf("%s", r)

	pair := fmt.Sprintf("%s%s", name, dir)

	return plain + value + url + padded + labeled + pair
}
