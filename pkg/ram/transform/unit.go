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
// Package transform implements the RAM translation unit, its pass
// manager, the debug-report decorator contract, and the four named
// optimisation passes (HoistConditions, MakeIndex, IfConversion,
// ChoiceConversion).
package transform

import (
	"github.com/uxhg/souffle/pkg/ram"
	"github.com/uxhg/souffle/pkg/ram/analysis"
)

// TranslationUnit owns the program tree, a symbol table handle, a
// diagnostics sink, and a lazily populated analysis cache.
type TranslationUnit struct {
	program     *ram.Program
	symbols     *ram.SymbolTable
	diagnostics *Diagnostics

	conditionLevels  map[ram.Condition]int
	expressionLevels map[ram.Expression]int
	constValues      map[ram.Expression]bool
}

// NewTranslationUnit constructs a translation unit over a fully built
// Program and its symbol table. The lowering that produced program is
// assumed to already guarantee split-form conjunctions, unique tuple
// levels and correct pattern arities; this constructor asserts split form
// and pattern arity (via AssertWellFormed) rather than silently
// normalising them. Uniqueness of tuple levels is not checked.
func NewTranslationUnit(program *ram.Program, symbols *ram.SymbolTable) *TranslationUnit {
	u := &TranslationUnit{
		program:     program,
		symbols:     symbols,
		diagnostics: NewDiagnostics(),
	}

	u.resetCache()
	AssertWellFormed(u)

	return u
}

// Program returns the translation unit's current program tree.
func (u *TranslationUnit) Program() *ram.Program { return u.program }

// Symbols returns the translation unit's symbol table handle.
func (u *TranslationUnit) Symbols() *ram.SymbolTable { return u.symbols }

// Diagnostics returns the translation unit's diagnostics sink.
func (u *TranslationUnit) Diagnostics() *Diagnostics { return u.diagnostics }

// ConditionLevel returns the cached condition-level analysis result for
// c, computing it first if necessary.
func (u *TranslationUnit) ConditionLevel(c ram.Condition) int {
	if l, ok := u.conditionLevels[c]; ok {
		return l
	}

	l := analysis.ConditionLevel(c)
	u.conditionLevels[c] = l

	return l
}

// ExpressionLevel returns the cached expression-level analysis result
// for e, computing it first if necessary.
func (u *TranslationUnit) ExpressionLevel(e ram.Expression) int {
	if l, ok := u.expressionLevels[e]; ok {
		return l
	}

	l := analysis.ExpressionLevel(e)
	u.expressionLevels[e] = l

	return l
}

// IsConstValue returns the cached const-value analysis result for e,
// computing it first if necessary.
func (u *TranslationUnit) IsConstValue(e ram.Expression) bool {
	if v, ok := u.constValues[e]; ok {
		return v
	}

	v := analysis.IsConstValue(e)
	u.constValues[e] = v

	return v
}

// InvalidateAnalyses clears every cached analysis result. This is the
// simplest sound policy: any transformer reporting a positive changed
// clears the whole cache rather than trying to track which results it
// invalidated.
func (u *TranslationUnit) InvalidateAnalyses() {
	u.resetCache()
}

func (u *TranslationUnit) resetCache() {
	u.conditionLevels = make(map[ram.Condition]int)
	u.expressionLevels = make(map[ram.Expression]int)
	u.constValues = make(map[ram.Expression]bool)
}
