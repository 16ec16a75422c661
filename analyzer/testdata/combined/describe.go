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

package combined

import (
	"fmt"
	"strings"
)

func describe(labels []string, verbose, ok bool) string {
	out := ""

	if labels != nil {
		for _, l := range labels { // want "Nil check before range is redundant"
			out += l
		}
	}

	if !!ok == true { // want "Comparison with 'true' is redundant" "Double negation is redundant"
		out = fmt.Sprintf("%v", out+"\n") // want "Sprintf of a string value is redundant"
	}

	if verbose == true { // want "Comparison with 'true' is redundant"
		out += "!"
	}

	n := 0
	n = n + 1 // want "Can use the increment statement"

	if strings.HasPrefix(out, "# ") { out = out[len("# "):] } // want "Can use strings.TrimPrefix"

	if len(out) == 0 { // want "Comparison with zero length can compare to the empty string"
		return "-"
	}

	return out + fmt.Sprint(n)
}

func empty(s string) bool {
	if s == "" {
		return true
	}

	return false // want "Can return the condition directly"
}
