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

// Test_ChoiceConversion_S5 exercises the "choice" scenario: a Scan that
// only ever keeps the first tuple satisfying a filter on itself
// collapses into a Choice.
func Test_ChoiceConversion_S5(t *testing.T) {
	rel := ram.NewRelation("R", 3)
	eq := &ram.Constraint{Op: ram.OpEq, Lhs: &ram.TupleElement{Level: 1, Column: 0}, Rhs: &ram.Constant{Value: 7}}

	input := &ram.Scan{
		Rel: rel, Level: 1,
		Body: &ram.Filter{
			Cond: eq,
			Body: &ram.Project{Rel: ram.NewRelation("S", 1), Args: []ram.Expression{&ram.TupleElement{Level: 1, Column: 1}}},
		},
	}

	unit := newUnit(t, input)
	pass := &ChoiceConversionTransformer{}

	if !pass.Transform(unit) {
		t.Fatalf("Transform() = false, want true")
	}

	want := &ram.Choice{
		Rel: rel, Level: 1, Cond: eq,
		Body: &ram.Project{Rel: ram.NewRelation("S", 1), Args: []ram.Expression{&ram.TupleElement{Level: 1, Column: 1}}},
	}

	got := unit.Program().Main.(*ram.Query).Op
	if !got.Equal(want) {
		t.Errorf("after ChoiceConversion:\n got  %s\n want %s", got.Lisp(), want.Lisp())
	}
}

// Test_ChoiceConversion_SkipsWhenBreakPresent ensures a Break anywhere
// in the body blocks the rewrite, since a Choice cannot reproduce a
// Break's early-exit-the-enclosing-loop effect.
func Test_ChoiceConversion_SkipsWhenBreakPresent(t *testing.T) {
	rel := ram.NewRelation("R", 3)
	eq := &ram.Constraint{Op: ram.OpEq, Lhs: &ram.TupleElement{Level: 1, Column: 0}, Rhs: &ram.Constant{Value: 7}}

	input := &ram.Scan{
		Rel: rel, Level: 1,
		Body: &ram.Filter{
			Cond: eq,
			Body: &ram.Break{
				Cond: &ram.EmptinessCheck{Rel: ram.NewRelation("T", 1)},
				Body: &ram.Project{Rel: ram.NewRelation("S", 1)},
			},
		},
	}

	unit := newUnit(t, input)
	pass := &ChoiceConversionTransformer{}

	if pass.Transform(unit) {
		t.Fatalf("Transform() = true, want false: body contains a Break")
	}
}

// Test_ChoiceConversion_SkipsWhenHoistWouldApply ensures a filter whose
// level is strictly below the scan it sits under (the case
// HoistConditionsTransformer would already have lifted further out) is
// left alone rather than converted in place.
func Test_ChoiceConversion_SkipsWhenHoistWouldApply(t *testing.T) {
	rel := ram.NewRelation("R", 3)
	freeCond := &ram.Constraint{Op: ram.OpEq, Lhs: &ram.Constant{Value: 1}, Rhs: &ram.Constant{Value: 1}}

	input := &ram.Scan{
		Rel: rel, Level: 1,
		Body: &ram.Filter{Cond: freeCond, Body: &ram.Project{Rel: ram.NewRelation("S", 1)}},
	}

	unit := newUnit(t, input)
	pass := &ChoiceConversionTransformer{}

	if pass.Transform(unit) {
		t.Fatalf("Transform() = true, want false: filter level is free, not pinned to this scan")
	}
}
