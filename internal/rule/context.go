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
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/styleguard/internal/astutil"
	"fillmore-labs.com/styleguard/internal/config"
	"fillmore-labs.com/styleguard/internal/report"
)

// Context carries per-file state into rule checks.
type Context struct {
	// Pass is the analysis pass the engine runs under.
	Pass *analysis.Pass

	// File describes the file currently being checked.
	File astutil.CurrentFile

	// Behavior holds the behavioral options of the run.
	Behavior config.Behavior

	// Tracker records the spans claimed by suggested fixes, shared over the
	// whole pass.
	Tracker *report.Tracker
}

// Info returns the type information of the pass.
func (ctx *Context) Info() *types.Info {
	return ctx.Pass.TypesInfo
}

// TypeOf returns the type of expr, or nil when unresolved.
func (ctx *Context) TypeOf(expr ast.Expr) types.Type {
	return ctx.Pass.TypesInfo.TypeOf(expr)
}

// Report emits a plain diagnostic for r at rng.
//
// The diagnostic is suppressed when the line carries a nolint comment.
func (ctx *Context) Report(r *Rule, rng analysis.Range, format string, args ...any) {
	if ctx.File.NoLintComment(rng.Pos()) {
		return
	}

	ctx.report(r, rng, nil, format, args...)
}

// ReportFix emits a diagnostic with a suggested fix.
//
// The fix degrades to a plain diagnostic when edits is empty or when another
// fix already claimed an overlapping span: the first fix wins, later ones
// keep their diagnostic. This keeps the edits of a single run conflict-free.
func (ctx *Context) ReportFix(r *Rule, rng analysis.Range, edits []analysis.TextEdit, format string, args ...any) {
	if ctx.File.NoLintComment(rng.Pos()) {
		return
	}

	if !ctx.Tracker.Claim(edits) {
		edits = nil
	}

	ctx.report(r, rng, edits, format, args...)
}

func (ctx *Context) report(r *Rule, rng analysis.Range, edits []analysis.TextEdit, format string, args ...any) {
	message := fmt.Sprintf(format, args...) + " (style:" + r.Name + ")"

	diagnostic := analysis.Diagnostic{
		Pos:      rng.Pos(),
		End:      rng.End(),
		Category: r.Name,
		Message:  message,
	}

	if len(edits) > 0 {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: message, TextEdits: edits}}
	}

	ctx.Pass.Report(diagnostic)
}
