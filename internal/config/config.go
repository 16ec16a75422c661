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

package config

// Option represents a behavioral switch shared by all rules.
type Option uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Option = 1 << iota

	// Conservative restricts the catalog to rules whose rewrites are
	// semantics-preserving in every corner.
	Conservative
)

// Behavior holds the resolved behavioral options.
type Behavior = BitMask[Option]

// DefaultBehavior returns the behavior used when nothing is configured:
// generated files are skipped and the full catalog runs.
func DefaultBehavior() Behavior {
	return NewBitMask[Option]()
}
