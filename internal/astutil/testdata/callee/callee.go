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

package callee

import (
	"strings"
	str "strings"
	. "strings"
	"time"
)

func calls(s string, t0, t1 time.Time) {
	_ = strings.Index(s, s) // want "func strings.Index, qualified strings"
	_ = str.Index(s, s)     // want "func strings.Index, qualified str"
	_ = Index(s, s)         // want "func strings.Index"
	_ = str.LastIndex(s, s) // want "qualified str"

	_ = t0.Sub(t1)    // want "method time.Time.Sub"
	_ = (&t0).Sub(t1) // want "method time.Time.Sub"

	var b strings.Builder
	_, _ = b.WriteString(s) // want "method strings.Builder.WriteString"

	_ = len(s) // want "builtin len"

	index := strings.Index
	_ = index(s, s)

	_ = make([]byte, len(s)) // want "builtin len"
}
