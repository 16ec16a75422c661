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

package indexcontains

import (
	"bytes"
	"strings"
)

func locate(s, sub string, data, pat []byte) bool {
	if strings.Index(s, sub) != -1 { // want "Can use strings.Contains"
		return true
	}

	if strings.Index(s, sub) < 0 { // want "Can use strings.Contains"
		return false
	}

	if strings.IndexRune(s, 'x') >= 0 { // want "Can use strings.ContainsRune"
		return true
	}

	if bytes.Index(data, pat) == -1 { // want "Can use bytes.Contains"
		return false
	}

	return -1 != strings.Index(s, sub) // want "Can use strings.Contains"
}

// Positional comparisons beyond the containment forms stay.
func kept(s, sub string) bool {
	if strings.Index(s, sub) > 0 {
		return true
	}

	return strings.Index(s, sub) == 0
}
