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

package conservative

import "strings"

// The EqualFold rewrite changes behavior for a handful of characters, so
// conservative mode keeps the lowered comparison. Exact rewrites still fire.
func match(a, b string) bool {
	if strings.ToLower(a) == strings.ToLower(b) {
		return true
	}

	return len(a) != 0 // want "Comparison with zero length can compare to the empty string"
}
