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

// IfConversionTransformer rewrites IndexScans that never need the tuple
// they bind. An IndexScan whose bound tuple is never referenced
// anywhere in its own body is scanning
// the index purely to test for a match, so it is rewritten into a
// cheaper Filter(ExistenceCheck(...), body) that never actually binds a
// tuple. Applied bottom-up so an outer IndexScan sees its body already
// in final form before its own liveness is checked.
type IfConversionTransformer struct{}

// Name identifies the pass for logging and debug snapshots.
func (t *IfConversionTransformer) Name() string { return "IfConversion" }

// Transform rewrites every eligible IndexScan in unit's program.
func (t *IfConversionTransformer) Transform(unit *TranslationUnit) bool {
	changed := false

	walkQueries(unit.program, func(q *ram.Query) {
		rebuilt := ifConvertOp(q.Op)
		if !q.Op.Equal(rebuilt) {
			q.Op = rebuilt
			changed = true
		}
	})

	return changed
}

func ifConvertOp(op ram.Operation) ram.Operation {
	switch op := op.(type) {
	case *ram.IndexScan:
		body := ifConvertOp(op.Body)

		if !isLevelLive(body, op.Level) {
			return &ram.Filter{Cond: &ram.ExistenceCheck{Rel: op.Rel, Pattern: op.Pattern}, Body: body}
		}

		return &ram.IndexScan{Rel: op.Rel, Level: op.Level, Pattern: op.Pattern, Body: body}
	case ram.BodyHolder:
		return op.WithChildBody(ifConvertOp(op.ChildBody()))
	case *ram.Project, *ram.SubroutineReturn:
		return op
	default:
		panic("transform: unreachable operation variant")
	}
}
