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
package ram

// IntrinsicOperator enumerates the arithmetic/logic/string primitives
// available to IntrinsicOp.
type IntrinsicOperator uint8

// Intrinsic operators. ARITY is implied by the operator: unary operators
// take exactly one argument, binary exactly two.
const (
	OpAdd IntrinsicOperator = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpBAnd
	OpBOr
	OpBXor
	OpBShiftL
	OpBShiftR
	OpNeg
	OpLNot
	OpMax
	OpMin
	OpCat // string concatenation
)

var intrinsicNames = map[IntrinsicOperator]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
	OpBAnd: "band", OpBOr: "bor", OpBXor: "bxor",
	OpBShiftL: "bshl", OpBShiftR: "bshr",
	OpNeg: "neg", OpLNot: "lnot", OpMax: "max", OpMin: "min", OpCat: "cat",
}

// String renders the operator using its canonical RAM symbol.
func (op IntrinsicOperator) String() string {
	if name, ok := intrinsicNames[op]; ok {
		return name
	}

	return "?intrinsic"
}

// ConstraintOp enumerates the comparison operators usable in a
// Constraint condition.
type ConstraintOp uint8

// Comparison operators.
const (
	OpEq ConstraintOp = iota
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

var constraintNames = map[ConstraintOp]string{
	OpEq: "=", OpNe: "!=", OpLt: "<", OpLe: "<=", OpGt: ">", OpGe: ">=",
}

// String renders the operator using its canonical RAM symbol.
func (op ConstraintOp) String() string {
	if name, ok := constraintNames[op]; ok {
		return name
	}

	return "?constraint"
}

// AggregateOp enumerates the fold operators usable in an Aggregate /
// IndexAggregate operation.
type AggregateOp uint8

// Aggregate operators.
const (
	AggCount AggregateOp = iota
	AggSum
	AggMin
	AggMax
	AggMean
)

var aggregateNames = map[AggregateOp]string{
	AggCount: "count", AggSum: "sum", AggMin: "min", AggMax: "max", AggMean: "mean",
}

// String renders the operator using its canonical RAM keyword.
func (op AggregateOp) String() string {
	if name, ok := aggregateNames[op]; ok {
		return name
	}

	return "?aggregate"
}

// BinRelationKind enumerates the two-relation statement forms (Insert,
// Merge, Swap, Clear). All four are structurally a BinRelationStatement
// naming one or two relations; Clear only uses Dst.
type BinRelationKind uint8

// Bin-relation statement kinds.
const (
	RelInsert BinRelationKind = iota
	RelMerge
	RelSwap
	RelClear
)

var binRelationNames = map[BinRelationKind]string{
	RelInsert: "insert", RelMerge: "merge", RelSwap: "swap", RelClear: "clear",
}

// String renders the kind using its canonical RAM keyword.
func (k BinRelationKind) String() string {
	if name, ok := binRelationNames[k]; ok {
		return name
	}

	return "?binrelation"
}
