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

// walkQueries invokes fn once for every Query statement reachable from
// s, in program order. fn receives the actual *ram.Query node so it can
// replace its Op in place: a Query is owned by exactly one parent
// Sequence/Parallel/Loop/Program slot, so mutating through the pointer
// is a safe take-ownership replacement.
func walkQueries(s ram.Statement, fn func(*ram.Query)) {
	switch s := s.(type) {
	case *ram.Program:
		walkQueries(s.Main, fn)
	case *ram.Query:
		fn(s)
	case *ram.Sequence:
		for _, st := range s.Stmts {
			walkQueries(st, fn)
		}
	case *ram.Parallel:
		for _, st := range s.Stmts {
			walkQueries(st, fn)
		}
	case *ram.Loop:
		walkQueries(s.Body, fn)
	case *ram.DebugInfo:
		walkQueries(s.Body, fn)
	case *ram.Exit, *ram.BinRelationStatement, *ram.IO, *ram.LogSize:
		// No nested operations to visit.
	default:
		panic("transform: unreachable statement variant")
	}
}
