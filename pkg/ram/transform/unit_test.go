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

func Test_TranslationUnit_CachesConditionLevel(t *testing.T) {
	c := &ram.Constraint{Op: ram.OpEq, Lhs: &ram.TupleElement{Level: 0, Column: 0}, Rhs: &ram.Constant{Value: 1}}
	input := &ram.Filter{Cond: c, Body: &ram.Project{Rel: ram.NewRelation("C", 1)}}
	unit := newUnit(t, input)

	if unit.ConditionLevel(c) != 0 {
		t.Fatalf("ConditionLevel() = %d, want 0", unit.ConditionLevel(c))
	}

	if len(unit.conditionLevels) != 1 {
		t.Errorf("len(conditionLevels) = %d, want 1 after one lookup", len(unit.conditionLevels))
	}

	unit.ConditionLevel(c)

	if len(unit.conditionLevels) != 1 {
		t.Errorf("len(conditionLevels) = %d, want 1 after a repeated lookup (cache miss?)", len(unit.conditionLevels))
	}
}

func Test_TranslationUnit_InvalidateAnalysesClearsCache(t *testing.T) {
	c := &ram.Constraint{Op: ram.OpEq, Lhs: &ram.TupleElement{Level: 0, Column: 0}, Rhs: &ram.Constant{Value: 1}}
	e := &ram.Constant{Value: 1}
	input := &ram.Filter{Cond: c, Body: &ram.Project{Rel: ram.NewRelation("C", 1), Args: []ram.Expression{e}}}
	unit := newUnit(t, input)

	unit.ConditionLevel(c)
	unit.ExpressionLevel(e)
	unit.IsConstValue(e)

	if len(unit.conditionLevels) == 0 || len(unit.expressionLevels) == 0 || len(unit.constValues) == 0 {
		t.Fatalf("expected all three caches populated before invalidation")
	}

	unit.InvalidateAnalyses()

	if len(unit.conditionLevels) != 0 || len(unit.expressionLevels) != 0 || len(unit.constValues) != 0 {
		t.Errorf("expected all three caches empty after InvalidateAnalyses")
	}
}
