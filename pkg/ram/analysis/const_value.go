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

// IsConstValue decides whether e's value does not depend on any tuple
// binding in the current query: operationally, ExpressionLevel(e) ==
// FreeLevel and e is free of AutoIncrement, SubroutineArg, and
// user-defined effects. MakeIndex does not consult it: a pattern slot
// there only needs an ExpressionLevel below the scan's own level.
func IsConstValue(e ram.Expression) bool {
	return ExpressionLevel(e) == FreeLevel && !hasNonConstEffect(e)
}

// hasNonConstEffect reports whether e (or any of its arguments,
// recursively) is an AutoIncrement, a SubroutineArg, or a call to a
// user-defined functor.
func hasNonConstEffect(e ram.Expression) bool {
	switch e := e.(type) {
	case *ram.Constant, *ram.TupleElement, *ram.UndefValue:
		return false
	case *ram.AutoIncrement:
		return true
	case *ram.SubroutineArg:
		return true
	case *ram.UserDefinedOp:
		return true
	case *ram.IntrinsicOp:
		return anyNonConstEffect(e.Args)
	case *ram.PackRecord:
		return anyNonConstEffect(e.Args)
	default:
		panic("analysis: unreachable expression variant")
	}
}

func anyNonConstEffect(args []ram.Expression) bool {
	for _, a := range args {
		if hasNonConstEffect(a) {
			return true
		}
	}

	return false
}
