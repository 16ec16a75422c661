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

package trimprefix

import "strings"

func clean(path, file string) (string, string) {
	if strings.HasPrefix(path, "/") { path = path[len("/"):] } // want "Can use strings.TrimPrefix"

	if strings.HasSuffix(file, ".go") { file = file[:len(file)-len(".go")] } // want "Can use strings.TrimSuffix"

	return path, file
}

func host(h string) string {
	if strings.HasPrefix(h, "www.") { // want "Can use strings.TrimPrefix"
		h = h[len("www."):]
	}

	return h
}

// Reslicing with other bounds and extra work in the body stay.
func kept(s string) string {
	if strings.HasPrefix(s, "#") {
		s = s[1:]
	}

	if strings.HasSuffix(s, "\n") {
		s = s[:len(s)-len("\n")]
		s += "."
	}

	return s
}
