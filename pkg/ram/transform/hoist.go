// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package transform

import (
	"github.com/uxhg/souffle/pkg/ram"
	"github.com/uxhg/souffle/pkg/ram/analysis"
)

// HoistConditionsTransformer relocates every Filter in a query so it
// sits directly beneath the binding that introduces its deepest
// referenced tuple level, or above the entire query when the condition
// references no binding at all. Filters that land at the same level
// keep their original top-down relative order.
//
// The pass works by fully stripping every Filter out of the tree and
// then reinserting each one at its computed level, rather than
// splicing nodes in place. That also makes it trivially idempotent: a
// second run strips the same filters and reinserts them at the same
// positions, so the rebuilt tree compares Equal to the input and
// Transform reports no change.
type HoistConditionsTransformer struct{}

// Name identifies the pass for logging and debug snapshots.
func (t *HoistConditionsTransformer) Name() string { return "HoistConditions" }

// Transform relocates every Filter in every Query of unit's program.
func (t *HoistConditionsTransformer) Transform(unit *TranslationUnit) bool {
	changed := false

	walkQueries(unit.program, func(q *ram.Query) {
		var hoisted []hoistedFilter

		skeleton := stripFilters(unit, q.Op, &hoisted)
		groups := groupByLevel(hoisted)
		rebuilt := reinsertFilters(skeleton, groups)
		rebuilt = wrapWithFilters(rebuilt, groups[analysis.FreeLevel])

		if !q.Op.Equal(rebuilt) {
			q.Op = rebuilt
			changed = true
		}
	})

	return changed
}

// hoistedFilter records a Filter condition extracted from the tree,
// along with the tuple level it must be reinserted under.
type hoistedFilter struct {
	cond  ram.Condition
	level int
}

// stripFilters removes every Filter node from op, recording each one's
// condition and computed level in *out, and returns the filter-free
// skeleton. Break is left in place untouched — it is never hoisted —
// but its body is still walked for further filters.
func stripFilters(u *TranslationUnit, op ram.Operation, out *[]hoistedFilter) ram.Operation {
	switch op := op.(type) {
	case *ram.Filter:
		level := u.ConditionLevel(op.Cond)
		*out = append(*out, hoistedFilter{cond: op.Cond, level: level})

		return stripFilters(u, op.Body, out)
	case ram.BodyHolder:
		return op.WithChildBody(stripFilters(u, op.ChildBody(), out))
	case *ram.Project, *ram.SubroutineReturn:
		return op
	default:
		panic("transform: unreachable operation variant")
	}
}

// groupByLevel buckets filters by target level, preserving each
// bucket's top-down relative order (filters is already collected in
// that order by stripFilters).
func groupByLevel(filters []hoistedFilter) map[int][]ram.Condition {
	groups := make(map[int][]ram.Condition)

	for _, f := range filters {
		groups[f.level] = append(groups[f.level], f.cond)
	}

	return groups
}

// reinsertFilters walks the filter-free skeleton and, beneath every
// binding operation, wraps its body with the filters grouped under that
// operation's Level. The analysis.FreeLevel group is reinserted
// separately by the caller; a group for any other level that no binding
// in op introduces is not reinserted here.
func reinsertFilters(op ram.Operation, groups map[int][]ram.Condition) ram.Operation {
	switch op := op.(type) {
	case *ram.Scan:
		body := wrapWithFilters(reinsertFilters(op.Body, groups), groups[op.Level])
		return &ram.Scan{Rel: op.Rel, Level: op.Level, Body: body}
	case *ram.IndexScan:
		body := wrapWithFilters(reinsertFilters(op.Body, groups), groups[op.Level])
		return &ram.IndexScan{Rel: op.Rel, Level: op.Level, Pattern: op.Pattern, Body: body}
	case *ram.Choice:
		body := wrapWithFilters(reinsertFilters(op.Body, groups), groups[op.Level])
		return &ram.Choice{Rel: op.Rel, Level: op.Level, Cond: op.Cond, Body: body}
	case *ram.IndexChoice:
		body := wrapWithFilters(reinsertFilters(op.Body, groups), groups[op.Level])
		return &ram.IndexChoice{Rel: op.Rel, Level: op.Level, Pattern: op.Pattern, Cond: op.Cond, Body: body}
	case *ram.Aggregate:
		body := wrapWithFilters(reinsertFilters(op.Body, groups), groups[op.Level])
		return &ram.Aggregate{Op: op.Op, Rel: op.Rel, Level: op.Level, Cond: op.Cond, Expr: op.Expr, Body: body}
	case *ram.IndexAggregate:
		body := wrapWithFilters(reinsertFilters(op.Body, groups), groups[op.Level])
		return &ram.IndexAggregate{
			Op: op.Op, Rel: op.Rel, Level: op.Level, Pattern: op.Pattern,
			Cond: op.Cond, Expr: op.Expr, Body: body,
		}
	case *ram.Break:
		return &ram.Break{Cond: op.Cond, Body: reinsertFilters(op.Body, groups)}
	case *ram.Project, *ram.SubroutineReturn:
		return op
	default:
		panic("transform: unreachable operation variant")
	}
}

// wrapWithFilters wraps body in nested Filters for conds, preserving
// conds' order as the outer-to-inner nesting order.
func wrapWithFilters(body ram.Operation, conds []ram.Condition) ram.Operation {
	for i := len(conds) - 1; i >= 0; i-- {
		body = &ram.Filter{Cond: conds[i], Body: body}
	}

	return body
}
