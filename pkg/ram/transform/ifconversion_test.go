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

// Test_IfConversion_S3 exercises the "if-conversion" scenario: a tuple
// that is never read in the body becomes a plain existence probe.
func Test_IfConversion_S3(t *testing.T) {
	rel := ram.NewRelation("R", 3)
	pattern := []ram.Expression{&ram.Constant{Value: 1}, &ram.UndefValue{}, &ram.UndefValue{}}

	input := &ram.IndexScan{
		Rel: rel, Level: 2, Pattern: pattern,
		Body: &ram.Project{Rel: ram.NewRelation("S", 1), Args: []ram.Expression{&ram.Constant{Value: 0}}},
	}

	unit := newUnit(t, input)
	pass := &IfConversionTransformer{}

	if !pass.Transform(unit) {
		t.Fatalf("Transform() = false, want true")
	}

	want := &ram.Filter{
		Cond: &ram.ExistenceCheck{Rel: rel, Pattern: pattern},
		Body: &ram.Project{Rel: ram.NewRelation("S", 1), Args: []ram.Expression{&ram.Constant{Value: 0}}},
	}

	got := unit.Program().Main.(*ram.Query).Op
	if !got.Equal(want) {
		t.Errorf("after IfConversion:\n got  %s\n want %s", got.Lisp(), want.Lisp())
	}
}

// Test_IfConversion_S4 exercises the "non-conversion" scenario: the
// scan survives unchanged because the body actually reads the tuple.
func Test_IfConversion_S4(t *testing.T) {
	rel := ram.NewRelation("R", 3)
	pattern := []ram.Expression{&ram.Constant{Value: 1}, &ram.UndefValue{}, &ram.UndefValue{}}

	input := &ram.IndexScan{
		Rel: rel, Level: 2, Pattern: pattern,
		Body: &ram.Project{Rel: ram.NewRelation("S", 1), Args: []ram.Expression{&ram.TupleElement{Level: 2, Column: 1}}},
	}

	unit := newUnit(t, input)
	pass := &IfConversionTransformer{}

	if pass.Transform(unit) {
		t.Fatalf("Transform() = true, want false: tuple 2 is live")
	}

	got := unit.Program().Main.(*ram.Query).Op
	if !got.Equal(input) {
		t.Errorf("IndexScan changed despite live tuple: %s", got.Lisp())
	}
}

// Test_IfConversion_LivenessSoundness checks property 6: every IndexScan
// surviving IfConversion has at least one live reference to its own
// tuple level somewhere in its body.
func Test_IfConversion_LivenessSoundness(t *testing.T) {
	rel := ram.NewRelation("R", 3)
	pattern := []ram.Expression{&ram.Constant{Value: 1}, &ram.UndefValue{}, &ram.UndefValue{}}

	live := &ram.IndexScan{
		Rel: rel, Level: 0, Pattern: pattern,
		Body: &ram.Project{Rel: ram.NewRelation("S", 1), Args: []ram.Expression{&ram.TupleElement{Level: 0, Column: 0}}},
	}
	dead := &ram.IndexScan{Rel: rel, Level: 1, Pattern: pattern, Body: live}

	input := &ram.Scan{Rel: ram.NewRelation("U", 1), Level: 2, Body: dead}

	unit := newUnit(t, input)
	pass := &IfConversionTransformer{}
	pass.Transform(unit)

	assertLivenessSound(t, unit.Program().Main.(*ram.Query).Op)
}

func assertLivenessSound(t *testing.T, op ram.Operation) {
	t.Helper()

	switch op := op.(type) {
	case *ram.IndexScan:
		if !isLevelLive(op.Body, op.Level) {
			t.Errorf("IndexScan at level %d survived IfConversion with no live reference", op.Level)
		}

		assertLivenessSound(t, op.Body)
	case ram.BodyHolder:
		assertLivenessSound(t, op.ChildBody())
	}
}
