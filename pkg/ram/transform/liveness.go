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
	"github.com/bits-and-blooms/bitset"

	"github.com/uxhg/souffle/pkg/ram"
)

// levelsUsedIn returns the set of tuple levels referenced anywhere
// (syntactically) inside op, via a plain recursive structural scan.
// Tuple levels are small dense non-negative integers, which is exactly
// the case github.com/bits-and-blooms/bitset is built for — used here
// in place of a hand-rolled map[int]bool.
func levelsUsedIn(op ram.Operation) *bitset.BitSet {
	bs := bitset.New(0)
	collectLevelsOp(op, bs)

	return bs
}

// isLevelLive reports whether level appears anywhere inside op.
func isLevelLive(op ram.Operation, level int) bool {
	return levelsUsedIn(op).Test(uint(level))
}

func collectLevelsOp(op ram.Operation, bs *bitset.BitSet) {
	switch op := op.(type) {
	case *ram.Scan:
		collectLevelsOp(op.Body, bs)
	case *ram.IndexScan:
		collectLevelsPattern(op.Pattern, bs)
		collectLevelsOp(op.Body, bs)
	case *ram.Choice:
		collectLevelsCond(op.Cond, bs)
		collectLevelsOp(op.Body, bs)
	case *ram.IndexChoice:
		collectLevelsPattern(op.Pattern, bs)
		collectLevelsCond(op.Cond, bs)
		collectLevelsOp(op.Body, bs)
	case *ram.Aggregate:
		collectLevelsCond(op.Cond, bs)
		collectLevelsExpr(op.Expr, bs)
		collectLevelsOp(op.Body, bs)
	case *ram.IndexAggregate:
		collectLevelsPattern(op.Pattern, bs)
		collectLevelsCond(op.Cond, bs)
		collectLevelsExpr(op.Expr, bs)
		collectLevelsOp(op.Body, bs)
	case *ram.Filter:
		collectLevelsCond(op.Cond, bs)
		collectLevelsOp(op.Body, bs)
	case *ram.Break:
		collectLevelsCond(op.Cond, bs)
		collectLevelsOp(op.Body, bs)
	case *ram.Project:
		collectLevelsPattern(op.Args, bs)
	case *ram.SubroutineReturn:
		collectLevelsPattern(op.Args, bs)
	default:
		panic("transform: unreachable operation variant")
	}
}

func collectLevelsCond(c ram.Condition, bs *bitset.BitSet) {
	switch c := c.(type) {
	case *ram.Conjunction:
		collectLevelsCond(c.A, bs)
		collectLevelsCond(c.B, bs)
	case *ram.Negation:
		collectLevelsCond(c.Cond, bs)
	case *ram.Constraint:
		collectLevelsExpr(c.Lhs, bs)
		collectLevelsExpr(c.Rhs, bs)
	case *ram.ExistenceCheck:
		collectLevelsPattern(c.Pattern, bs)
	case *ram.ProvenanceExistenceCheck:
		collectLevelsPattern(c.Pattern, bs)
	case *ram.EmptinessCheck:
		// No expressions.
	default:
		panic("transform: unreachable condition variant")
	}
}

func collectLevelsExpr(e ram.Expression, bs *bitset.BitSet) {
	switch e := e.(type) {
	case *ram.Constant, *ram.AutoIncrement, *ram.SubroutineArg, *ram.UndefValue:
		// No tuple reference.
	case *ram.TupleElement:
		bs.Set(uint(e.Level))
	case *ram.IntrinsicOp:
		collectLevelsPattern(e.Args, bs)
	case *ram.UserDefinedOp:
		collectLevelsPattern(e.Args, bs)
	case *ram.PackRecord:
		collectLevelsPattern(e.Args, bs)
	default:
		panic("transform: unreachable expression variant")
	}
}

func collectLevelsPattern(args []ram.Expression, bs *bitset.BitSet) {
	for _, a := range args {
		collectLevelsExpr(a, bs)
	}
}

// containsBreak reports whether a Break occurs anywhere inside op,
// including nested inside further wrapper operations. This is a
// full-subtree scan rather than a top-level-only check: a nested Break
// still terminates the enclosing scan loop that ChoiceConversion is
// about to eliminate.
func containsBreak(op ram.Operation) bool {
	switch op := op.(type) {
	case *ram.Break:
		return true
	case ram.BodyHolder:
		return containsBreak(op.ChildBody())
	case *ram.Project, *ram.SubroutineReturn:
		return false
	default:
		panic("transform: unreachable operation variant")
	}
}
