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

package analyzer

import (
	"flag"

	"fillmore-labs.com/styleguard/internal/config"
	"fillmore-labs.com/styleguard/internal/rules"
	"fillmore-labs.com/styleguard/internal/run"
)

// registerFlags binds the behavioral options to command line flag values.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	flags.Var(boolValue[config.Option, *config.Behavior]{flags: &r.Behavior, value: config.IncludeGenerated},
		"generated", "check generated files")
	flags.Var(boolValue[config.Option, *config.Behavior]{flags: &r.Behavior, value: config.Conservative},
		"conservative", "restrict the catalog to strictly semantics-preserving rules")
}

// registerSelectionFlags binds the rule selection to command line flags: one
// boolean flag per rule plus list flags for whole selections.
func registerSelectionFlags(flags *flag.FlagSet, r *run.Options) {
	for _, cr := range rules.All() {
		flags.Var(&ruleValue{set: &r.Rules, name: cr.Name}, cr.Name, cr.Doc)
	}

	flags.Var(&listValue{apply: r.SelectRules},
		"rules", "comma-separated rules to enable, disabling all others")
	flags.Var(&listValue{apply: r.SkipRules},
		"skip-rules", "comma-separated rules to disable")
	flags.Var(&listValue{apply: r.SelectGroups},
		"groups", "comma-separated rule groups to enable, disabling all others")
}
