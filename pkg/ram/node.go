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
// Package ram implements the RAM (Relational Algebra Machine) intermediate
// representation: a tagged tree of statements, operations, conditions and
// expressions sitting between a Datalog program and an executable back end.
//
// Every node is one of a closed set of variants per category. Children are
// owned exclusively by their parent; a transformer replaces a child by
// taking ownership of the old value and installing a new one, never by
// mutating a field behind the category interface's back. Structural
// sharing is forbidden, and each variant gets its own typed fields rather
// than a generic attribute map, so a type switch can destructure a node
// without a runtime cast per field.
package ram

import "github.com/uxhg/souffle/pkg/ram/sexp"

// Expression is a pure value-producing RAM node.
type Expression interface {
	// Equal performs a structural comparison, ignoring identity.
	Equal(other Expression) bool
	// Clone produces a deep, independent copy of this expression.
	Clone() Expression
	// Lisp renders this node as a canonical S-expression for debug output.
	Lisp() *sexp.Node
	// expressionNode is unexported so Expression is a closed union: only
	// types declared in this package may implement it.
	expressionNode()
}

// Condition is a boolean-producing RAM node.
type Condition interface {
	Equal(other Condition) bool
	Clone() Condition
	Lisp() *sexp.Node
	conditionNode()
}

// Operation is a node that introduces or consumes tuple bindings inside a
// Query.
type Operation interface {
	Equal(other Operation) bool
	Clone() Operation
	Lisp() *sexp.Node
	operationNode()
}

// Statement is a top-level control-flow node.
type Statement interface {
	Equal(other Statement) bool
	Clone() Statement
	Lisp() *sexp.Node
	statementNode()
}

// BodyHolder is satisfied by every Operation variant that wraps a single
// nested Operation body (Scan, IndexScan, Filter, Break, ...). It lets the
// transform passes walk and replace a chain of wrappers generically
// without a type switch at every call site.
type BodyHolder interface {
	Operation
	// ChildBody returns the currently installed child operation.
	ChildBody() Operation
	// WithChildBody takes ownership of a new child and returns a fresh
	// Operation of the same variant installing it.
	WithChildBody(Operation) Operation
}

// AsBodyHolder returns op's BodyHolder view when op is one of the wrapper
// operations (Scan, IndexScan, Choice, IndexChoice, Aggregate,
// IndexAggregate, Filter, Break), or ok=false for a leaf operation
// (Project, SubroutineReturn).
func AsBodyHolder(op Operation) (BodyHolder, bool) {
	bh, ok := op.(BodyHolder)
	return bh, ok
}
