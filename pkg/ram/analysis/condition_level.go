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

import "github.com/uxhg/souffle/pkg/ram"

// ConditionLevel computes the minimum tuple-nesting depth at which c can
// be evaluated using only bindings introduced at depths <= the result.
// A condition independent of every tuple binding reports FreeLevel and
// may be hoisted above the entire query.
func ConditionLevel(c ram.Condition) int {
	switch c := c.(type) {
	case *ram.Constraint:
		return maxInt(ExpressionLevel(c.Lhs), ExpressionLevel(c.Rhs))
	case *ram.Conjunction:
		return maxInt(ConditionLevel(c.A), ConditionLevel(c.B))
	case *ram.Negation:
		return ConditionLevel(c.Cond)
	case *ram.ExistenceCheck:
		return maxPatternLevel(c.Pattern)
	case *ram.ProvenanceExistenceCheck:
		return maxPatternLevel(c.Pattern)
	case *ram.EmptinessCheck:
		return FreeLevel
	default:
		panic("analysis: unreachable condition variant")
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
