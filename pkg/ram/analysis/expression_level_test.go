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
package analysis

import (
	"testing"

	"github.com/uxhg/souffle/pkg/ram"
)

func Test_ExpressionLevel_Constant(t *testing.T) {
	if l := ExpressionLevel(&ram.Constant{Value: 5}); l != FreeLevel {
		t.Errorf("ExpressionLevel(Constant) = %d, want %d", l, FreeLevel)
	}
}

func Test_ExpressionLevel_TupleElement(t *testing.T) {
	if l := ExpressionLevel(&ram.TupleElement{Level: 2, Column: 0}); l != 2 {
		t.Errorf("ExpressionLevel(TE(2,0)) = %d, want 2", l)
	}
}

func Test_ExpressionLevel_IntrinsicOpTakesMax(t *testing.T) {
	e := &ram.IntrinsicOp{
		Op: ram.OpAdd,
		Args: []ram.Expression{
			&ram.TupleElement{Level: 0, Column: 0},
			&ram.TupleElement{Level: 3, Column: 1},
		},
	}

	if l := ExpressionLevel(e); l != 3 {
		t.Errorf("ExpressionLevel(add(t0.0,t3.1)) = %d, want 3", l)
	}
}

func Test_ExpressionLevel_EmptyArgsIsFree(t *testing.T) {
	e := &ram.IntrinsicOp{Op: ram.OpNeg, Args: nil}

	if l := ExpressionLevel(e); l != FreeLevel {
		t.Errorf("ExpressionLevel(neg()) = %d, want %d", l, FreeLevel)
	}
}

func Test_ExpressionLevel_UndefAndSubroutineArgAreFree(t *testing.T) {
	if l := ExpressionLevel(&ram.UndefValue{}); l != FreeLevel {
		t.Errorf("ExpressionLevel(_) = %d, want %d", l, FreeLevel)
	}

	if l := ExpressionLevel(&ram.SubroutineArg{Idx: 1}); l != FreeLevel {
		t.Errorf("ExpressionLevel(arg(1)) = %d, want %d", l, FreeLevel)
	}
}
