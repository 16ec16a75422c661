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
	"context"
	"errors"
	"fmt"
	"go/ast"
	"reflect"
	"runtime/trace"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/styleguard/internal/astutil"
	"fillmore-labs.com/styleguard/internal/config"
	"fillmore-labs.com/styleguard/internal/report"
	"fillmore-labs.com/styleguard/internal/rule"
	"fillmore-labs.com/styleguard/internal/rules"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// ErrUnknownRule is returned when a selection names no known rule or group.
var ErrUnknownRule = errors.New("unknown rule")

// Run executes the styleguard rule engine over one pass.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	if len(r.unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRule, strings.Join(r.unknown, ", "))
	}

	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("styleguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	enabled := enabledRules(r.Rules, r.Behavior.Enabled(config.Conservative))
	if len(enabled) == 0 {
		return nil, nil
	}

	e := newEngine(enabled)

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "StyleGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// One tracker per pass: edits of all rules over all files must not
	// overlap, since drivers apply them together.
	tracker := &report.Tracker{}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1]) {
			continue
		}

		region := trace.StartRegion(ctx, "checkFile")

		fctx := &rule.Context{Pass: p, File: currentFile, Behavior: r.Behavior, Tracker: tracker}
		e.checkFile(fctx, f)

		region.End()
	}

	return nil, nil
}

// enabledRules filters the catalog down to the selected rules, dropping
// non-strict ones in conservative mode. Catalog order is preserved.
func enabledRules(selected rule.Set, conservative bool) []rule.Rule {
	var enabled []rule.Rule

	for _, r := range rules.All() {
		if !selected.Enabled(r.Name) || (conservative && !r.Strict) {
			continue
		}

		enabled = append(enabled, r)
	}

	return enabled
}

// engine dispatches the nodes of one walk to the subscribed rules.
type engine struct {
	dispatch map[reflect.Type][]rule.Rule
	nodes    []ast.Node
}

func newEngine(enabled []rule.Rule) engine {
	dispatch := make(map[reflect.Type][]rule.Rule)

	var nodes []ast.Node

	for _, r := range enabled {
		for _, n := range r.Nodes {
			t := reflect.TypeOf(n)
			if _, seen := dispatch[t]; !seen {
				nodes = append(nodes, n)
			}

			dispatch[t] = append(dispatch[t], r)
		}
	}

	return engine{dispatch: dispatch, nodes: nodes}
}

// checkFile walks the file under f once, handing each matching node to the
// subscribed rules in catalog order.
func (e engine) checkFile(ctx *rule.Context, f inspector.Cursor) {
	for c := range f.Preorder(e.nodes...) {
		for _, r := range e.dispatch[reflect.TypeOf(c.Node())] {
			r.Check(ctx, c)
		}
	}
}
