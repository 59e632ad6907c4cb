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

import "github.com/uxhg/souffle/pkg/ram"

// ChoiceConversionTransformer collapses a scan loop that only cares
// about its first match into a single-tuple choice. A Scan/IndexScan
// immediately wrapping a Filter on the tuple it just bound is really
// only interested in the first matching tuple, so it collapses into a
// Choice/IndexChoice — provided the loop body contains no Break (a
// Break changes which tuple the loop would have stopped at, so the
// rewrite is unsound there) and the filter genuinely depends on the
// level just bound (otherwise HoistConditionsTransformer would already
// have lifted it further out, and converting here would be wrong).
// Applied bottom-up, like IfConversionTransformer.
type ChoiceConversionTransformer struct{}

// Name identifies the pass for logging and debug snapshots.
func (t *ChoiceConversionTransformer) Name() string { return "ChoiceConversion" }

// Transform rewrites every eligible Scan/IndexScan in unit's program.
func (t *ChoiceConversionTransformer) Transform(unit *TranslationUnit) bool {
	changed := false

	walkQueries(unit.program, func(q *ram.Query) {
		rebuilt := choiceConvertOp(unit, q.Op)
		if !q.Op.Equal(rebuilt) {
			q.Op = rebuilt
			changed = true
		}
	})

	return changed
}

func choiceConvertOp(u *TranslationUnit, op ram.Operation) ram.Operation {
	switch op := op.(type) {
	case *ram.Scan:
		body := choiceConvertOp(u, op.Body)

		if filter, ok := body.(*ram.Filter); ok && choiceEligible(u, filter.Cond, op.Level, filter.Body) {
			return &ram.Choice{Rel: op.Rel, Level: op.Level, Cond: filter.Cond, Body: filter.Body}
		}

		return &ram.Scan{Rel: op.Rel, Level: op.Level, Body: body}
	case *ram.IndexScan:
		body := choiceConvertOp(u, op.Body)

		if filter, ok := body.(*ram.Filter); ok && choiceEligible(u, filter.Cond, op.Level, filter.Body) {
			return &ram.IndexChoice{Rel: op.Rel, Level: op.Level, Pattern: op.Pattern, Cond: filter.Cond, Body: filter.Body}
		}

		return &ram.IndexScan{Rel: op.Rel, Level: op.Level, Pattern: op.Pattern, Body: body}
	case ram.BodyHolder:
		return op.WithChildBody(choiceConvertOp(u, op.ChildBody()))
	case *ram.Project, *ram.SubroutineReturn:
		return op
	default:
		panic("transform: unreachable operation variant")
	}
}

// choiceEligible reports whether a Filter(cond, body) sitting directly
// beneath the binding of level should collapse into a Choice/IndexChoice.
func choiceEligible(u *TranslationUnit, cond ram.Condition, level int, body ram.Operation) bool {
	return u.ConditionLevel(cond) == level && !containsBreak(body)
}
