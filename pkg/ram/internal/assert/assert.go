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
// Package assert provides the "fail loudly" internal-consistency checks
// called for by an IR whose input has already been validated upstream: a
// failing Require here indicates a broken invariant (a programmer error),
// never a recoverable condition.
package assert

import "fmt"

// Require panics with a dump of the offending value(s) when cond is
// false. Used at the boundaries the IR's invariants are stated over
// (split-form filters, pattern arity, tuple-level scoping) rather than
// for anything a well-formed program could trigger.
func Require(cond bool, format string, args ...any) {
	if cond {
		return
	}

	panic(fmt.Sprintf("internal consistency violation: "+format, args...))
}

// Equal panics unless expected and actual compare equal under ==,
// reporting both values in the panic message.
func Equal[T comparable](expected, actual T, msg string) {
	if expected == actual {
		return
	}

	panic(fmt.Sprintf("internal consistency violation: %s (expected %v, actual %v)", msg, expected, actual))
}

// Unreachable panics to mark a type-switch default arm that a closed
// tagged union should never fall into.
func Unreachable(what string, value any) {
	panic(fmt.Sprintf("internal consistency violation: unreachable %s: %#v", what, value))
}
