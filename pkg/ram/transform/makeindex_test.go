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
	"testing"

	"github.com/uxhg/souffle/pkg/ram"
)

// Test_MakeIndex_S2 exercises the "hoist + index" scenario: the filter
// left directly beneath a Scan by a prior Hoist pass turns into an
// equality pattern slot on a new IndexScan.
func Test_MakeIndex_S2(t *testing.T) {
	eq := &ram.Constraint{Op: ram.OpEq, Lhs: &ram.TupleElement{Level: 0, Column: 0}, Rhs: &ram.Constant{Value: 5}}
	rel := ram.NewRelation("A", 3)

	input := &ram.Scan{
		Rel: rel, Level: 0,
		Body: &ram.Filter{Cond: eq, Body: &ram.Project{Rel: ram.NewRelation("C", 1)}},
	}

	unit := newUnit(t, input)
	pass := &MakeIndexTransformer{}

	if !pass.Transform(unit) {
		t.Fatalf("Transform() = false, want true")
	}

	want := &ram.IndexScan{
		Rel: rel, Level: 0,
		Pattern: []ram.Expression{&ram.Constant{Value: 5}, &ram.UndefValue{}, &ram.UndefValue{}},
		Body:    &ram.Project{Rel: ram.NewRelation("C", 1)},
	}

	got := unit.Program().Main.(*ram.Query).Op
	if !got.Equal(want) {
		t.Errorf("after MakeIndex:\n got  %s\n want %s", got.Lisp(), want.Lisp())
	}
}

// Test_MakeIndex_S6 exercises the "residual filter" scenario: a second,
// non-equality filter in the run stays behind as a Filter under the new
// IndexScan instead of contributing to the pattern.
func Test_MakeIndex_S6(t *testing.T) {
	rel := ram.NewRelation("R", 3)
	eq := &ram.Constraint{Op: ram.OpEq, Lhs: &ram.TupleElement{Level: 0, Column: 0}, Rhs: &ram.Constant{Value: 5}}
	gt := &ram.Constraint{Op: ram.OpGt, Lhs: &ram.TupleElement{Level: 0, Column: 1}, Rhs: &ram.TupleElement{Level: 0, Column: 0}}

	input := &ram.Scan{
		Rel: rel, Level: 0,
		Body: &ram.Filter{Cond: eq, Body: &ram.Filter{Cond: gt, Body: &ram.Project{Rel: ram.NewRelation("S", 1)}}},
	}

	unit := newUnit(t, input)
	pass := &MakeIndexTransformer{}

	if !pass.Transform(unit) {
		t.Fatalf("Transform() = false, want true")
	}

	want := &ram.IndexScan{
		Rel: rel, Level: 0,
		Pattern: []ram.Expression{&ram.Constant{Value: 5}, &ram.UndefValue{}, &ram.UndefValue{}},
		Body:    &ram.Filter{Cond: gt, Body: &ram.Project{Rel: ram.NewRelation("S", 1)}},
	}

	got := unit.Program().Main.(*ram.Query).Op
	if !got.Equal(want) {
		t.Errorf("after MakeIndex:\n got  %s\n want %s", got.Lisp(), want.Lisp())
	}
}

// Test_MakeIndex_Idempotent checks property 2: once an IndexScan's
// pattern is built, a second pass finds nothing left to rewrite.
func Test_MakeIndex_Idempotent(t *testing.T) {
	eq := &ram.Constraint{Op: ram.OpEq, Lhs: &ram.TupleElement{Level: 0, Column: 0}, Rhs: &ram.Constant{Value: 5}}
	input := &ram.Scan{
		Rel: ram.NewRelation("A", 3), Level: 0,
		Body: &ram.Filter{Cond: eq, Body: &ram.Project{Rel: ram.NewRelation("C", 1)}},
	}

	unit := newUnit(t, input)
	pass := &MakeIndexTransformer{}
	pass.Transform(unit)
	unit.InvalidateAnalyses()

	if pass.Transform(unit) {
		t.Errorf("second Transform() = true, want false (not idempotent)")
	}
}

// Test_MakeIndex_PatternWellFormed checks property 5: every produced
// pattern has exactly arity(R) slots, and non-wildcard slots reference
// only levels strictly below the scan's own level.
func Test_MakeIndex_PatternWellFormed(t *testing.T) {
	eq := &ram.Constraint{Op: ram.OpEq, Lhs: &ram.TupleElement{Level: 1, Column: 2}, Rhs: &ram.TupleElement{Level: 0, Column: 0}}
	input := &ram.Scan{
		Rel: ram.NewRelation("A", 3), Level: 0,
		Body: &ram.Scan{
			Rel: ram.NewRelation("B", 3), Level: 1,
			Body: &ram.Filter{Cond: eq, Body: &ram.Project{Rel: ram.NewRelation("C", 1)}},
		},
	}

	unit := newUnit(t, input)
	pass := &MakeIndexTransformer{}
	pass.Transform(unit)

	assertPatternWellFormed(t, unit, unit.Program().Main.(*ram.Query).Op)
}

func assertPatternWellFormed(t *testing.T, u *TranslationUnit, op ram.Operation) {
	t.Helper()

	switch op := op.(type) {
	case *ram.IndexScan:
		checkPattern(t, u, op.Rel, op.Level, op.Pattern)
		assertPatternWellFormed(t, u, op.Body)
	case *ram.IndexChoice:
		checkPattern(t, u, op.Rel, op.Level, op.Pattern)
		assertPatternWellFormed(t, u, op.Body)
	case *ram.IndexAggregate:
		checkPattern(t, u, op.Rel, op.Level, op.Pattern)
		assertPatternWellFormed(t, u, op.Body)
	case ram.BodyHolder:
		assertPatternWellFormed(t, u, op.ChildBody())
	}
}

func checkPattern(t *testing.T, u *TranslationUnit, rel ram.Relation, level int, pattern []ram.Expression) {
	t.Helper()

	if len(pattern) != rel.Arity {
		t.Errorf("pattern on %s has %d slots, want arity %d", rel, len(pattern), rel.Arity)
	}

	for _, p := range pattern {
		if ram.IsUndef(p) {
			continue
		}

		if l := u.ExpressionLevel(p); l >= level {
			t.Errorf("pattern slot %s has level %d, want < %d", p.Lisp(), l, level)
		}
	}
}
