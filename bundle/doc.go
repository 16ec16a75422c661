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

/*
Package bundle loads declarative styleguard configurations from YAML files.

A bundle names a rule selection once and shares it between tools: the same
file configures an embedded [Bundle.Analyzer] in a custom driver and a CI
run. The file is conventionally called `styleguard.yml`:

	---
	name: service-style
	description: Shared style profile for the billing services.

	conservative: true
	groups: [boolean, control]

	rules:
	  - lenzero
	  - name: equalfold
	    disabled: true

	skip-rules: [parens]

Rule list entries are either a plain rule name or a mapping with `name` and
`disabled` keys. Groups and individual selections accumulate; `skip-rules`
and disabled entries are removed afterwards. A bundle without `rules` and
`groups` applies the whole catalog.

# Layering

Values load in three layers, later layers overriding earlier ones: built-in
defaults, the bundle file, and environment variables prefixed with
STYLEGUARD_. List-valued variables hold comma separated names, so

	STYLEGUARD_CONSERVATIVE=false STYLEGUARD_SKIP_RULES=equalfold,parens

overrides both settings for one run. STYLEGUARD_RULES replaces the file's
whole rule list.

All referenced rule and group names are checked against the catalog at load
time; unknown names fail with [ErrUnknownRule] or [ErrUnknownGroup].
*/
package bundle
