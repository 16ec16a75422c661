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

package bundle

import (
	"errors"
	"fmt"

	"golang.org/x/tools/go/analysis"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/styleguard/analyzer"
	"fillmore-labs.com/styleguard/internal/rule"
	"fillmore-labs.com/styleguard/internal/rules"
)

// DefaultName is the bundle name used when the bundle file does not set one.
const DefaultName = "styleguard"

// Errors reported when a bundle references names outside the catalog.
var (
	// ErrUnknownRule flags a rule selection naming no catalog rule.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrUnknownGroup flags a group selection naming no rule group.
	ErrUnknownGroup = errors.New("unknown rule group")

	// ErrMissingName flags a rule entry without a name.
	ErrMissingName = errors.New("missing rule name")
)

// Bundle is a named, declarative styleguard configuration. The zero value
// applies the whole catalog with default behavior.
type Bundle struct {
	// Name identifies the bundle.
	Name string `koanf:"name"`

	// Description documents the bundle's intent.
	Description string `koanf:"description"`

	// Conservative restricts the catalog to rules whose rewrites preserve
	// semantics exactly.
	Conservative bool `koanf:"conservative"`

	// Generated enables diagnostics in generated files.
	Generated bool `koanf:"generated"`

	// Groups restricts the run to the rules of the named groups.
	Groups []string `koanf:"groups"`

	// Rules enables or disables individual rules.
	Rules []Selection `koanf:"-"`

	// SkipRules removes the named rules from the selection.
	SkipRules []string `koanf:"skip-rules"`

	path string
}

// Path returns the file the bundle was loaded from, or an empty string when
// no bundle file was found.
func (b *Bundle) Path() string {
	return b.path
}

// Selection is one entry of a bundle's rule list. In YAML it is written
// either as a plain rule name or as a mapping:
//
//	rules:
//	  - lenzero
//	  - name: equalfold
//	    disabled: true
type Selection struct {
	// Name is the rule name.
	Name string `yaml:"name"`

	// Disabled removes the rule from the selection instead of adding it.
	Disabled bool `yaml:"disabled"`

	line int
}

// UnmarshalYAML implements [yaml.Unmarshaler], accepting a scalar rule name
// or a name/disabled mapping.
func (s *Selection) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		s.Name, s.Disabled = value.Value, false

	case yaml.MappingNode:
		type plain Selection
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}

		*s = Selection(p)

	default:
		return fmt.Errorf("line %d: %w", value.Line, ErrMissingName)
	}

	s.line = value.Line

	return nil
}

// Options converts the bundle into configuration options for
// [analyzer.New] and [analyzer.Analyzers].
func (b *Bundle) Options() []analyzer.Option {
	var opts []analyzer.Option

	if len(b.Groups) > 0 {
		opts = append(opts, analyzer.WithGroups(b.Groups...))
	}

	var enable, skip []string
	for _, sel := range b.Rules {
		if sel.Disabled {
			skip = append(skip, sel.Name)
		} else {
			enable = append(enable, sel.Name)
		}
	}

	if len(enable) > 0 {
		opts = append(opts, analyzer.WithRules(enable...))
	}

	if skip = append(skip, b.SkipRules...); len(skip) > 0 {
		opts = append(opts, analyzer.WithoutRules(skip...))
	}

	if b.Conservative {
		opts = append(opts, analyzer.WithConservative(true))
	}

	if b.Generated {
		opts = append(opts, analyzer.WithGenerated(true))
	}

	return opts
}

// Analyzer builds the combined analyzer configured by the bundle.
func (b *Bundle) Analyzer() *analysis.Analyzer {
	return analyzer.New(b.Options()...)
}

// Analyzers builds one analyzer per rule the bundle selects.
func (b *Bundle) Analyzers() []*analysis.Analyzer {
	return analyzer.Analyzers(b.Options()...)
}

// Names returns the names of all catalog rules, for presenting choices next
// to a bundle.
func Names() []string {
	return rules.Names()
}

// validate checks all referenced rule and group names against the catalog.
func (b *Bundle) validate() error {
	for _, name := range b.Groups {
		if _, err := rule.ParseGroup(name); err != nil {
			return fmt.Errorf("%w %q", ErrUnknownGroup, name)
		}
	}

	for _, sel := range b.Rules {
		switch _, ok := rules.Lookup(sel.Name); {
		case sel.Name == "":
			return fmt.Errorf("%w (line %d)", ErrMissingName, sel.line)

		case !ok && sel.line > 0:
			return fmt.Errorf("%w %q (line %d)", ErrUnknownRule, sel.Name, sel.line)

		case !ok:
			return fmt.Errorf("%w %q", ErrUnknownRule, sel.Name)
		}
	}

	for _, name := range b.SkipRules {
		if _, ok := rules.Lookup(name); !ok {
			return fmt.Errorf("%w %q", ErrUnknownRule, name)
		}
	}

	return nil
}
