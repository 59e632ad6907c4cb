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

// ExpressionLevel computes the minimum tuple-nesting depth at which e can
// be evaluated, i.e. the deepest tuple level any TupleElement inside e
// refers to. An expression independent of every tuple binding (a
// constant, an auto-increment, a subroutine argument, the undefined
// wildcard, or an operator applied to no or only such arguments) reports
// FreeLevel.
func ExpressionLevel(e ram.Expression) int {
	switch e := e.(type) {
	case *ram.Constant:
		return FreeLevel
	case *ram.TupleElement:
		return e.Level
	case *ram.AutoIncrement:
		return FreeLevel
	case *ram.IntrinsicOp:
		return maxLevel(e.Args)
	case *ram.UserDefinedOp:
		return maxLevel(e.Args)
	case *ram.PackRecord:
		return maxLevel(e.Args)
	case *ram.SubroutineArg:
		return FreeLevel
	case *ram.UndefValue:
		return FreeLevel
	default:
		panic("analysis: unreachable expression variant")
	}
}

// maxLevel returns the maximum ExpressionLevel across args, or FreeLevel
// for an empty argument list.
func maxLevel(args []ram.Expression) int {
	level := FreeLevel
	for _, a := range args {
		if l := ExpressionLevel(a); l > level {
			level = l
		}
	}

	return level
}

// maxPatternLevel returns the maximum ExpressionLevel across a pattern,
// treating UndefValue slots (which carry no value) as FreeLevel, same as
// an absent argument.
func maxPatternLevel(pattern []ram.Expression) int {
	level := FreeLevel
	for _, p := range pattern {
		if ram.IsUndef(p) {
			continue
		}

		if l := ExpressionLevel(p); l > level {
			level = l
		}
	}

	return level
}
