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

package rule

import (
	"maps"
	"slices"
)

// Set is a set of enabled rules, keyed by name.
//
// The catalog is open-ended, so rule selection is name-based instead of a
// bitmask. The zero value is an empty set.
type Set struct {
	names map[string]struct{}
}

// NewSet creates a [Set] containing the given names.
func NewSet(names ...string) Set {
	s := Set{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		s.names[name] = struct{}{}
	}

	return s
}

// Set adds or removes name.
func (s *Set) Set(name string, value bool) {
	if value {
		s.Enable(name)
	} else {
		s.Disable(name)
	}
}

// Enable adds name to the set.
func (s *Set) Enable(name string) {
	if s.names == nil {
		s.names = make(map[string]struct{})
	}

	s.names[name] = struct{}{}
}

// Disable removes name from the set.
func (s *Set) Disable(name string) {
	delete(s.names, name)
}

// Enabled checks whether name is in the set.
func (s Set) Enabled(name string) bool {
	_, ok := s.names[name]

	return ok
}

// Len returns the number of enabled names.
func (s Set) Len() int {
	return len(s.names)
}

// Names returns the enabled names in lexical order.
func (s Set) Names() []string {
	return slices.Sorted(maps.Keys(s.names))
}
