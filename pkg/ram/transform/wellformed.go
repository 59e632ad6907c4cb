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
	"github.com/uxhg/souffle/pkg/ram/internal/assert"
)

// AssertWellFormed checks the invariants the AST->RAM lowering is
// assumed to already guarantee (conjunction split form, pattern arity)
// and panics with a dump of the offending node if either is broken. A
// broken invariant here is a programmer error upstream of this module,
// not a recoverable condition — it is reported through the diagnostics
// sink and then the process aborts.
func AssertWellFormed(u *TranslationUnit) {
	assertStatement(u, u.program)
}

func assertStatement(u *TranslationUnit, s ram.Statement) {
	switch s := s.(type) {
	case *ram.Program:
		assertStatement(u, s.Main)
	case *ram.Query:
		assertOperation(u, s.Op)
	case *ram.Sequence:
		for _, st := range s.Stmts {
			assertStatement(u, st)
		}
	case *ram.Parallel:
		for _, st := range s.Stmts {
			assertStatement(u, st)
		}
	case *ram.Loop:
		assertStatement(u, s.Body)
	case *ram.DebugInfo:
		assertStatement(u, s.Body)
	case *ram.Exit, *ram.BinRelationStatement, *ram.IO, *ram.LogSize:
		// Leaf statements: nothing nested to check.
	default:
		assert.Unreachable("statement variant", s)
	}
}

func assertOperation(u *TranslationUnit, op ram.Operation) {
	switch op := op.(type) {
	case *ram.Filter:
		assertSplitForm(u, op.Cond)
		assertOperation(u, op.Body)
	case *ram.IndexScan:
		assertPatternArity(u, op.Rel, op.Pattern)
		assertOperation(u, op.Body)
	case *ram.IndexChoice:
		assertPatternArity(u, op.Rel, op.Pattern)
		assertOperation(u, op.Body)
	case *ram.IndexAggregate:
		assertPatternArity(u, op.Rel, op.Pattern)
		assertOperation(u, op.Body)
	case ram.BodyHolder:
		assertOperation(u, op.ChildBody())
	case *ram.Project, *ram.SubroutineReturn:
		// Leaf operations.
	default:
		assert.Unreachable("operation variant", op)
	}
}

// assertSplitForm enforces the conjunction-split-form invariant: a
// Filter directly inside a query nest must not have a Conjunction as
// its outermost connective.
func assertSplitForm(u *TranslationUnit, c ram.Condition) {
	if conj, ok := c.(*ram.Conjunction); ok {
		u.diagnostics.Errorf(c.Lisp(), "filter condition is not in split form")
		assert.Require(false, "unsplit conjunction in filter: %s", conj.Lisp().String())
	}
}

// assertPatternArity enforces the pattern-arity invariant: an
// IndexScan/IndexAggregate pattern on relation R must have length
// exactly R's declared arity.
func assertPatternArity(u *TranslationUnit, rel ram.Relation, pattern []ram.Expression) {
	arity := rel.Arity

	if u.symbols != nil {
		if declared, ok := u.symbols.Lookup(rel.Name); ok {
			arity = declared.Arity
		}
	}

	if len(pattern) != arity {
		u.diagnostics.Errorf(nil, "pattern arity mismatch on relation %s: expected %d, got %d", rel, arity, len(pattern))
		assert.Require(false, "pattern arity mismatch on relation %s: expected %d, got %d", rel, arity, len(pattern))
	}
}
