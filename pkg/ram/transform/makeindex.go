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
)

// MakeIndexTransformer strengthens a linear scan into an index probe.
// A Scan/Aggregate over relation R, immediately followed inside its
// body by one or more
// Filters testing an attribute of the bound tuple for equality against
// an expression that doesn't itself depend on that tuple, is rewritten
// into an IndexScan/IndexAggregate carrying an equality pattern, with
// only the non-indexable ("residual") filters left behind in their
// original relative order.
type MakeIndexTransformer struct{}

// Name identifies the pass for logging and debug snapshots.
func (t *MakeIndexTransformer) Name() string { return "MakeIndex" }

// Transform rewrites every eligible Scan/Aggregate in unit's program.
func (t *MakeIndexTransformer) Transform(unit *TranslationUnit) bool {
	changed := false

	walkQueries(unit.program, func(q *ram.Query) {
		rebuilt := makeIndexOp(unit, q.Op)
		if !q.Op.Equal(rebuilt) {
			q.Op = rebuilt
			changed = true
		}
	})

	return changed
}

func makeIndexOp(u *TranslationUnit, op ram.Operation) ram.Operation {
	switch op := op.(type) {
	case *ram.Scan:
		body := makeIndexOp(u, op.Body)

		if pattern, residual, ok := buildIndexPattern(u, op.Rel, op.Level, body); ok {
			return &ram.IndexScan{Rel: op.Rel, Level: op.Level, Pattern: pattern, Body: residual}
		}

		return &ram.Scan{Rel: op.Rel, Level: op.Level, Body: body}
	case *ram.Aggregate:
		body := makeIndexOp(u, op.Body)

		if pattern, residual, ok := buildIndexPattern(u, op.Rel, op.Level, body); ok {
			return &ram.IndexAggregate{
				Op: op.Op, Rel: op.Rel, Level: op.Level, Pattern: pattern,
				Cond: op.Cond, Expr: op.Expr, Body: residual,
			}
		}

		return &ram.Aggregate{Op: op.Op, Rel: op.Rel, Level: op.Level, Cond: op.Cond, Expr: op.Expr, Body: body}
	case ram.BodyHolder:
		return op.WithChildBody(makeIndexOp(u, op.ChildBody()))
	case *ram.Project, *ram.SubroutineReturn:
		return op
	default:
		panic("transform: unreachable operation variant")
	}
}

// buildIndexPattern inspects the run of Filters at the head of body,
// classifying each as an index-eligible equality on level's tuple or as
// residual, and returns the resulting pattern plus the residual
// operation chain (the eligible filters removed, everything else kept
// in original relative order). ok is false when no filter in the run is
// eligible, in which case pattern and residual are meaningless.
func buildIndexPattern(u *TranslationUnit, rel ram.Relation, level int, body ram.Operation) ([]ram.Expression, ram.Operation, bool) {
	arity := rel.Arity
	if u.symbols != nil {
		if declared, ok := u.symbols.Lookup(rel.Name); ok {
			arity = declared.Arity
		}
	}

	pattern := make([]ram.Expression, arity)
	for i := range pattern {
		pattern[i] = &ram.UndefValue{}
	}

	var residuals []ram.Condition
	found := false
	cur := body

	for {
		filter, ok := cur.(*ram.Filter)
		if !ok {
			break
		}

		if column, value, eligible := indexEquality(u, filter.Cond, level); eligible && column < arity && ram.IsUndef(pattern[column]) {
			pattern[column] = value
			found = true
		} else {
			residuals = append(residuals, filter.Cond)
		}

		cur = filter.Body
	}

	if !found {
		return nil, nil, false
	}

	return pattern, wrapWithFilters(cur, residuals), true
}

// indexEquality reports whether c is a Constraint(=, lhs, rhs) with
// exactly one side a TupleElement(level, column) and the other side an
// expression whose level is strictly less than level: the probe value
// must already be available by the time the scan starts.
func indexEquality(u *TranslationUnit, c ram.Condition, level int) (column int, value ram.Expression, ok bool) {
	constraint, isConstraint := c.(*ram.Constraint)
	if !isConstraint || constraint.Op != ram.OpEq {
		return 0, nil, false
	}

	if te, isTE := constraint.Lhs.(*ram.TupleElement); isTE && te.Level == level {
		if u.ExpressionLevel(constraint.Rhs) < level {
			return te.Column, constraint.Rhs, true
		}
	}

	if te, isTE := constraint.Rhs.(*ram.TupleElement); isTE && te.Level == level {
		if u.ExpressionLevel(constraint.Lhs) < level {
			return te.Column, constraint.Lhs, true
		}
	}

	return 0, nil, false
}
