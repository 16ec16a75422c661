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

package report

import (
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"
)

// Tracker records the source spans claimed by suggested fixes over one pass.
//
// Overlapping rewrites from different rules, or from nested matches of the
// same rule, would produce conflicting text edits. The first fix claims its
// spans; later overlapping fixes are rejected and degrade to plain
// diagnostics. The next run of the driver picks those up again, so repeated
// fixing converges.
type Tracker struct {
	spans []span
}

type span struct {
	pos, end token.Pos
}

// Claim records the spans of edits when none overlaps a previously claimed
// span. It reports whether the claim succeeded. Claiming no edits succeeds.
func (t *Tracker) Claim(edits []analysis.TextEdit) bool {
	for _, edit := range edits {
		if t.overlaps(edit.Pos, max(edit.End, edit.Pos)) {
			return false
		}
	}

	for _, edit := range edits {
		t.insert(edit.Pos, max(edit.End, edit.Pos))
	}

	return true
}

// overlaps checks [pos, end) against the claimed spans. Touching boundaries
// do not overlap, but a pure insertion point strictly inside a claimed span
// does.
func (t *Tracker) overlaps(pos, end token.Pos) bool {
	i, _ := slices.BinarySearchFunc(t.spans, pos,
		func(s span, p token.Pos) int { return int(s.pos - p) })

	// spans[i] is the first span starting at or after pos
	if i < len(t.spans) && t.spans[i].pos < end {
		return true
	}

	if i > 0 && t.spans[i-1].end > pos {
		return true
	}

	if pos == end {
		// Insertion points on a span boundary conflict as well: the claimed
		// rewrite replaces the neighboring text.
		if i < len(t.spans) && t.spans[i].pos == pos && t.spans[i].end > pos {
			return true
		}

		return i > 0 && t.spans[i-1].end == pos && t.spans[i-1].pos < pos
	}

	return false
}

func (t *Tracker) insert(pos, end token.Pos) {
	i, _ := slices.BinarySearchFunc(t.spans, pos,
		func(s span, p token.Pos) int { return int(s.pos - p) })

	t.spans = slices.Insert(t.spans, i, span{pos, end})
}
