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

package gclplugin

import styleguard "fillmore-labs.com/styleguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Rules restricts the run to the named rules.
	Rules []string `json:"rules,omitzero"`
	// SkipRules removes the named rules from the selection.
	SkipRules []string `json:"skip-rules,omitzero"`
	// Groups restricts the run to the rules of the named groups.
	Groups []string `json:"groups,omitzero"`
	// Conservative restricts the catalog to rules whose rewrites preserve semantics exactly.
	Conservative *bool `json:"conservative,omitzero"`
	// Generated enables diagnostics in generated files.
	Generated *bool `json:"generated,omitzero"`
}

// Options converts [Settings] into a list of [styleguard.Option] for the styleguard analyzer.
// It processes settings and applies them only when explicitly set.
func (s Settings) Options() []styleguard.Option {
	var opts []styleguard.Option

	opts = appendNames(opts, s.Rules, styleguard.WithRules)
	opts = appendNames(opts, s.SkipRules, styleguard.WithoutRules)
	opts = appendNames(opts, s.Groups, styleguard.WithGroups)
	opts = appendOption(opts, s.Conservative, styleguard.WithConservative)
	opts = appendOption(opts, s.Generated, styleguard.WithGenerated)

	return opts
}

// appendOption appends a non-nil setting to a [styleguard.Option] list.
func appendOption[T any](opts []styleguard.Option, value *T, constructor func(T) styleguard.Option) []styleguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// appendNames appends a non-empty name list to a [styleguard.Option] list.
func appendNames(opts []styleguard.Option, names []string, constructor func(...string) styleguard.Option) []styleguard.Option {
	if len(names) == 0 {
		return opts
	}

	return append(opts, constructor(names...))
}
