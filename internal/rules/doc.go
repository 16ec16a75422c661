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

// Package rules holds the styleguard rule catalog.
//
// Each rule lives in its own file, matches one family of syntax nodes and
// rewrites a single redundancy:
//
//   - boolean: boolexpr, boolreturn, doubleneg
//   - control: emptyelse, errnilreturn, fortrue, nilcheckrange, rangeblank,
//     switchbreak
//   - assign: incdec, selfassign
//   - expr: convredundant, emptymake, lenzero, parens, vartype
//   - stdlib: equalfold, indexcontains, sprintfstring, timesince, trimprefix
//
// Rules do not look beyond the file they run in and stay silent rather than
// guess: a rewrite is only suggested when the surrounding types prove it
// cannot change behavior. All rules except equalfold preserve semantics
// exactly; equalfold is excluded from conservative runs.
package rules
