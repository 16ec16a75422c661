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
	"log/slog"

	"fillmore-labs.com/styleguard/internal/config"
	"fillmore-labs.com/styleguard/internal/run"
)

// Option configures specific behavior of a [New] styleguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithRules is an [Option] restricting the run to the named rules. Combined
// with [WithGroups] the selections accumulate in option order.
func WithRules(names ...string) Option { return rulesOption{names: names} }

type rulesOption struct{ names []string }

func (o rulesOption) apply(r *run.Options) {
	r.SelectRules(o.names...)
}

func (o rulesOption) LogAttr() slog.Attr {
	return slog.Any("rules", o.names)
}

// WithoutRules is an [Option] removing the named rules from the selection.
func WithoutRules(names ...string) Option { return withoutRulesOption{names: names} }

type withoutRulesOption struct{ names []string }

func (o withoutRulesOption) apply(r *run.Options) {
	r.SkipRules(o.names...)
}

func (o withoutRulesOption) LogAttr() slog.Attr {
	return slog.Any("skip-rules", o.names)
}

// WithGroups is an [Option] restricting the run to the rules of the named
// groups. Combined with [WithRules] the selections accumulate in option
// order.
func WithGroups(names ...string) Option { return groupsOption{names: names} }

type groupsOption struct{ names []string }

func (o groupsOption) apply(r *run.Options) {
	r.SelectGroups(o.names...)
}

func (o groupsOption) LogAttr() slog.Attr {
	return slog.Any("groups", o.names)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithConservative is an [Option] restricting the catalog to rules whose
// rewrites preserve semantics exactly.
func WithConservative(conservative bool) Option {
	return conservativeOption{conservative: conservative}
}

type conservativeOption struct{ conservative bool }

func (o conservativeOption) apply(r *run.Options) {
	r.Behavior.Set(config.Conservative, o.conservative)
}

func (o conservativeOption) LogAttr() slog.Attr {
	return slog.Bool("conservative", o.conservative)
}
