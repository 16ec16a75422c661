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
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/styleguard/internal/rule"
	"fillmore-labs.com/styleguard/internal/rules"
	"fillmore-labs.com/styleguard/internal/run"
)

// Public API constants for the styleguard analyzer.
const (
	name = "styleguard"
	doc  = `styleguard rewrites redundant constructs to their canonical form`
	url  = "https://pkg.go.dev/fillmore-labs.com/styleguard"
)

// New creates a new instance of the styleguard analyzer running the whole
// rule catalog. It allows for programmatic configuration using [Option],
// which is useful for integrating the analyzer into other tools. For
// command-line use, the pre-configured [Analyzer] variable is typically
// sufficient.
func New(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      url,
		Run:      r.Run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerFlags(&a.Flags, r)
	registerSelectionFlags(&a.Flags, r)

	return a
}

// Analyzer is a pre-configured *[analysis.Analyzer] applying the whole styleguard catalog.
var Analyzer = New()

// Analyzers returns one analyzer per catalog rule, each applying exactly
// that rule. Rule selections in opts restrict the returned list; behavioral
// options apply to all returned analyzers.
func Analyzers(opts ...Option) []*analysis.Analyzer {
	selection := run.DefaultOptions()
	Options(opts).apply(selection)

	catalog := rules.All()
	analyzers := make([]*analysis.Analyzer, 0, len(catalog))

	for _, cr := range catalog {
		if !selection.Rules.Enabled(cr.Name) {
			continue
		}

		r := run.DefaultOptions()
		Options(opts).apply(r)
		r.Rules = rule.NewSet(cr.Name)

		a := &analysis.Analyzer{
			Name:     cr.Name,
			Doc:      cr.Doc,
			URL:      url,
			Run:      r.Run,
			Requires: []*analysis.Analyzer{inspect.Analyzer},
		}

		registerFlags(&a.Flags, r)

		analyzers = append(analyzers, a)
	}

	return analyzers
}
