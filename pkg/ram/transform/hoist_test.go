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

// trueCond builds a trivially free-level condition, standing in for the
// spec scenario's Const(true) filter guard.
func trueCond() ram.Condition {
	return &ram.Constraint{Op: ram.OpEq, Lhs: &ram.Constant{Value: 1}, Rhs: &ram.Constant{Value: 1}}
}

func newUnit(t *testing.T, op ram.Operation, relations ...ram.Relation) *TranslationUnit {
	t.Helper()

	program := &ram.Program{Relations: relations, Main: &ram.Query{Op: op}}
	return NewTranslationUnit(program, ram.NewSymbolTable())
}

// Test_HoistConditions_S1 exercises the "pure hoist" scenario: a
// free-level guard rises above the whole query, and a guard pinned to
// the outer binding settles immediately beneath it.
func Test_HoistConditions_S1(t *testing.T) {
	eq := &ram.Constraint{Op: ram.OpEq, Lhs: &ram.TupleElement{Level: 0, Column: 0}, Rhs: &ram.Constant{Value: 5}}

	input := &ram.Scan{
		Rel: ram.NewRelation("A", 3), Level: 0,
		Body: &ram.Scan{
			Rel: ram.NewRelation("B", 3), Level: 1,
			Body: &ram.Filter{
				Cond: trueCond(),
				Body: &ram.Filter{
					Cond: eq,
					Body: &ram.Project{Rel: ram.NewRelation("C", 1), Args: []ram.Expression{&ram.TupleElement{Level: 1, Column: 0}}},
				},
			},
		},
	}

	unit := newUnit(t, input)
	pass := &HoistConditionsTransformer{}

	if !pass.Transform(unit) {
		t.Fatalf("Transform() = false, want true")
	}

	want := &ram.Filter{
		Cond: trueCond(),
		Body: &ram.Scan{
			Rel: ram.NewRelation("A", 3), Level: 0,
			Body: &ram.Filter{
				Cond: eq,
				Body: &ram.Scan{
					Rel: ram.NewRelation("B", 3), Level: 1,
					Body: &ram.Project{Rel: ram.NewRelation("C", 1), Args: []ram.Expression{&ram.TupleElement{Level: 1, Column: 0}}},
				},
			},
		},
	}

	got := unit.Program().Main.(*ram.Query).Op
	if !got.Equal(want) {
		t.Errorf("after Hoist:\n got  %s\n want %s", got.Lisp(), want.Lisp())
	}
}

// Test_HoistConditions_Idempotent checks property 1: a second run over
// an already-hoisted program reports no further change.
func Test_HoistConditions_Idempotent(t *testing.T) {
	eq := &ram.Constraint{Op: ram.OpEq, Lhs: &ram.TupleElement{Level: 0, Column: 0}, Rhs: &ram.Constant{Value: 5}}
	input := &ram.Scan{
		Rel: ram.NewRelation("A", 3), Level: 0,
		Body: &ram.Filter{Cond: eq, Body: &ram.Project{Rel: ram.NewRelation("C", 1), Args: []ram.Expression{&ram.Constant{Value: 0}}}},
	}

	unit := newUnit(t, input)
	pass := &HoistConditionsTransformer{}

	pass.Transform(unit)
	unit.InvalidateAnalyses()

	if pass.Transform(unit) {
		t.Errorf("second Transform() = true, want false (not idempotent)")
	}
}

// Test_HoistConditions_PreservesFilterMultiset checks property 3: Hoist
// relocates filter conditions, never duplicating or dropping them.
func Test_HoistConditions_PreservesFilterMultiset(t *testing.T) {
	c1 := trueCond()
	c2 := &ram.Constraint{Op: ram.OpEq, Lhs: &ram.TupleElement{Level: 0, Column: 0}, Rhs: &ram.Constant{Value: 5}}

	input := &ram.Scan{
		Rel: ram.NewRelation("A", 3), Level: 0,
		Body: &ram.Filter{Cond: c1, Body: &ram.Filter{Cond: c2, Body: &ram.Project{Rel: ram.NewRelation("C", 1)}}},
	}

	unit := newUnit(t, input)
	pass := &HoistConditionsTransformer{}
	pass.Transform(unit)

	var seen []ram.Condition
	collectFilterConds(unit.Program().Main.(*ram.Query).Op, &seen)

	if len(seen) != 2 {
		t.Fatalf("got %d filters after Hoist, want 2", len(seen))
	}

	if !(seen[0].Equal(c1) || seen[0].Equal(c2)) || !(seen[1].Equal(c1) || seen[1].Equal(c2)) {
		t.Errorf("filter set changed: got %v", seen)
	}
}

// Test_HoistConditions_LevelSoundness checks property 4: every relocated
// filter's computed level never exceeds the depth at which it lands.
func Test_HoistConditions_LevelSoundness(t *testing.T) {
	c := &ram.Constraint{Op: ram.OpEq, Lhs: &ram.TupleElement{Level: 0, Column: 0}, Rhs: &ram.Constant{Value: 5}}
	input := &ram.Scan{
		Rel: ram.NewRelation("A", 3), Level: 0,
		Body: &ram.Scan{
			Rel: ram.NewRelation("B", 3), Level: 1,
			Body: &ram.Filter{Cond: c, Body: &ram.Project{Rel: ram.NewRelation("C", 1)}},
		},
	}

	unit := newUnit(t, input)
	pass := &HoistConditionsTransformer{}
	pass.Transform(unit)

	assertLevelSound(t, unit, unit.Program().Main.(*ram.Query).Op, -1)
}

func assertLevelSound(t *testing.T, u *TranslationUnit, op ram.Operation, depth int) {
	t.Helper()

	switch op := op.(type) {
	case *ram.Filter:
		if l := u.ConditionLevel(op.Cond); l > depth {
			t.Errorf("filter at depth %d has level %d (unsound)", depth, l)
		}

		assertLevelSound(t, u, op.Body, depth)
	case *ram.Scan:
		assertLevelSound(t, u, op.Body, op.Level)
	case *ram.IndexScan:
		assertLevelSound(t, u, op.Body, op.Level)
	case *ram.Choice:
		assertLevelSound(t, u, op.Body, op.Level)
	case *ram.IndexChoice:
		assertLevelSound(t, u, op.Body, op.Level)
	case *ram.Aggregate:
		assertLevelSound(t, u, op.Body, op.Level)
	case *ram.IndexAggregate:
		assertLevelSound(t, u, op.Body, op.Level)
	case ram.BodyHolder:
		assertLevelSound(t, u, op.ChildBody(), depth)
	}
}

func collectFilterConds(op ram.Operation, out *[]ram.Condition) {
	switch op := op.(type) {
	case *ram.Filter:
		*out = append(*out, op.Cond)
		collectFilterConds(op.Body, out)
	case ram.BodyHolder:
		collectFilterConds(op.ChildBody(), out)
	}
}
