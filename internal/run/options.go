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

package run

import (
	"fillmore-labs.com/styleguard/internal/config"
	"fillmore-labs.com/styleguard/internal/rule"
	"fillmore-labs.com/styleguard/internal/rules"
)

// Options represent the configuration of a styleguard run.
type Options struct {
	// Rules holds the enabled rules.
	Rules rule.Set

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// restricted records that a selection replaced the default full set.
	// Further selections add to it instead of replacing it again.
	restricted bool

	// unknown collects selected names matching no rule or group. Run
	// reports them as an error.
	unknown []string
}

// DefaultOptions initializes and returns a new Options instance with the
// full catalog enabled.
func DefaultOptions() *Options {
	return &Options{
		Rules:    rule.NewSet(rules.Names()...),
		Behavior: config.DefaultBehavior(),
	}
}

// SelectRules restricts the run to the named rules. Together with
// [Options.SelectGroups] the selections accumulate in call order.
func (r *Options) SelectRules(names ...string) {
	r.restrict()

	for _, name := range names {
		if _, ok := rules.Lookup(name); !ok {
			r.unknown = append(r.unknown, name)

			continue
		}

		r.Rules.Enable(name)
	}
}

// SkipRules removes the named rules from the current selection.
func (r *Options) SkipRules(names ...string) {
	for _, name := range names {
		if _, ok := rules.Lookup(name); !ok {
			r.unknown = append(r.unknown, name)

			continue
		}

		r.Rules.Disable(name)
	}
}

// SelectGroups restricts the run to the rules of the named groups. Together
// with [Options.SelectRules] the selections accumulate in call order.
func (r *Options) SelectGroups(names ...string) {
	r.restrict()

	for _, name := range names {
		group, err := rule.ParseGroup(name)
		if err != nil {
			r.unknown = append(r.unknown, name)

			continue
		}

		for _, member := range rules.Grouped(group) {
			r.Rules.Enable(member)
		}
	}
}

func (r *Options) restrict() {
	if r.restricted {
		return
	}

	r.Rules = rule.Set{}
	r.restricted = true
}
