// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the styleguard static analysis pass.
//
// # Overview
//
// StyleGuard detects redundant Go constructs and rewrites them to their
// canonical form. Each finding carries a suggested fix that preserves the
// program's behavior; when a fix would drop a comment or collide with
// another fix, the diagnostic is reported without one.
//
// # Example
//
// Before, with a zero length comparison and an if/else around boolean
// returns:
//
//	func ready(s string) bool {
//	    if len(s) == 0 {
//	        return false
//	    } else {
//	        return true
//	    }
//	}
//
// After applying styleguard's suggested fixes:
//
//	func ready(s string) bool {
//	    return s != ""
//	}
//
// # Rule Groups
//
// The catalog is organized into five groups:
//
//   - boolean: redundant boolean comparisons and negations
//   - control: redundant branches, guards and loop clauses
//   - assign: self-assignments and increment statements
//   - expr: redundant conversions, parentheses and declarations
//   - stdlib: expressions with a dedicated standard library form
//
// Individual rules are selected with [WithRules], [WithoutRules] and
// [WithGroups], or with the corresponding command line flags.
package analyzer
