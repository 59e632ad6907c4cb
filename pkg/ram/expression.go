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
package ram

import (
	"fmt"

	"github.com/uxhg/souffle/pkg/ram/sexp"
)

// Constant is a domain scalar literal. The RAM domain is a fixed-width
// signed integer rather than a finite-field element: this module's
// values need two's-complement arithmetic and the full set of
// comparison/bitwise intrinsics, which a modular field does not
// support. Float/symbol constants of the full language are out of
// scope for this module.
type Constant struct {
	Value int64
}

func (e *Constant) expressionNode() {}

// Equal reports whether other is a Constant with the same value.
func (e *Constant) Equal(other Expression) bool {
	o, ok := other.(*Constant)
	return ok && o.Value == e.Value
}

// Clone returns an independent copy.
func (e *Constant) Clone() Expression { return &Constant{Value: e.Value} }

// Lisp renders the node for debug snapshots.
func (e *Constant) Lisp() *sexp.Node {
	return sexp.NewNode("number", fmt.Sprintf("%d", e.Value))
}

// TupleElement reads the Column-th attribute of the tuple bound at
// nesting Level. Spec invariant "level discipline": this node may only
// appear inside a scan/aggregate operation that actually binds Level.
type TupleElement struct {
	Level  int
	Column int
}

func (e *TupleElement) expressionNode() {}

// Equal reports whether other is a TupleElement with the same coordinates.
func (e *TupleElement) Equal(other Expression) bool {
	o, ok := other.(*TupleElement)
	return ok && o.Level == e.Level && o.Column == e.Column
}

// Clone returns an independent copy.
func (e *TupleElement) Clone() Expression {
	return &TupleElement{Level: e.Level, Column: e.Column}
}

// Lisp renders the node for debug snapshots.
func (e *TupleElement) Lisp() *sexp.Node {
	return sexp.NewNode("element", fmt.Sprintf("t%d.%d", e.Level, e.Column))
}

// AutoIncrement yields a fresh counter value per query evaluation.
type AutoIncrement struct{}

func (e *AutoIncrement) expressionNode() {}

// Equal reports whether other is also an AutoIncrement.
func (e *AutoIncrement) Equal(other Expression) bool {
	_, ok := other.(*AutoIncrement)
	return ok
}

// Clone returns an independent copy.
func (e *AutoIncrement) Clone() Expression { return &AutoIncrement{} }

// Lisp renders the node for debug snapshots.
func (e *AutoIncrement) Lisp() *sexp.Node { return sexp.NewNode("autoinc") }

// IntrinsicOp applies a built-in arithmetic/logic/string primitive to its
// arguments.
type IntrinsicOp struct {
	Op   IntrinsicOperator
	Args []Expression
}

func (e *IntrinsicOp) expressionNode() {}

// Equal performs a structural, order-sensitive comparison of operator
// and arguments.
func (e *IntrinsicOp) Equal(other Expression) bool {
	o, ok := other.(*IntrinsicOp)
	if !ok || o.Op != e.Op || len(o.Args) != len(e.Args) {
		return false
	}

	for i := range e.Args {
		if !e.Args[i].Equal(o.Args[i]) {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy.
func (e *IntrinsicOp) Clone() Expression {
	return &IntrinsicOp{Op: e.Op, Args: cloneExpressions(e.Args)}
}

// Lisp renders the node for debug snapshots.
func (e *IntrinsicOp) Lisp() *sexp.Node {
	n := sexp.NewNode(e.Op.String())
	for _, a := range e.Args {
		n.Add(a.Lisp())
	}

	return n
}

// UserDefinedOp calls a registered functor by name.
type UserDefinedOp struct {
	Name string
	Args []Expression
}

func (e *UserDefinedOp) expressionNode() {}

// Equal performs a structural, order-sensitive comparison of name and
// arguments.
func (e *UserDefinedOp) Equal(other Expression) bool {
	o, ok := other.(*UserDefinedOp)
	if !ok || o.Name != e.Name || len(o.Args) != len(e.Args) {
		return false
	}

	for i := range e.Args {
		if !e.Args[i].Equal(o.Args[i]) {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy.
func (e *UserDefinedOp) Clone() Expression {
	return &UserDefinedOp{Name: e.Name, Args: cloneExpressions(e.Args)}
}

// Lisp renders the node for debug snapshots.
func (e *UserDefinedOp) Lisp() *sexp.Node {
	n := sexp.NewNode("udf", e.Name)
	for _, a := range e.Args {
		n.Add(a.Lisp())
	}

	return n
}

// PackRecord constructs a record value from its field expressions.
type PackRecord struct {
	Args []Expression
}

func (e *PackRecord) expressionNode() {}

// Equal performs a structural, order-sensitive comparison of fields.
func (e *PackRecord) Equal(other Expression) bool {
	o, ok := other.(*PackRecord)
	if !ok || len(o.Args) != len(e.Args) {
		return false
	}

	for i := range e.Args {
		if !e.Args[i].Equal(o.Args[i]) {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy.
func (e *PackRecord) Clone() Expression {
	return &PackRecord{Args: cloneExpressions(e.Args)}
}

// Lisp renders the node for debug snapshots.
func (e *PackRecord) Lisp() *sexp.Node {
	n := sexp.NewNode("packrecord")
	for _, a := range e.Args {
		n.Add(a.Lisp())
	}

	return n
}

// SubroutineArg reads the Idx-th parameter of the enclosing subroutine.
type SubroutineArg struct {
	Idx int
}

func (e *SubroutineArg) expressionNode() {}

// Equal reports whether other is a SubroutineArg with the same index.
func (e *SubroutineArg) Equal(other Expression) bool {
	o, ok := other.(*SubroutineArg)
	return ok && o.Idx == e.Idx
}

// Clone returns an independent copy.
func (e *SubroutineArg) Clone() Expression { return &SubroutineArg{Idx: e.Idx} }

// Lisp renders the node for debug snapshots.
func (e *SubroutineArg) Lisp() *sexp.Node {
	return sexp.NewNode("argument", fmt.Sprintf("%d", e.Idx))
}

// UndefValue is the wildcard/placeholder used in query patterns to mean
// "this attribute is unconstrained".
type UndefValue struct{}

func (e *UndefValue) expressionNode() {}

// Equal reports whether other is also an UndefValue.
func (e *UndefValue) Equal(other Expression) bool {
	_, ok := other.(*UndefValue)
	return ok
}

// Clone returns an independent copy.
func (e *UndefValue) Clone() Expression { return &UndefValue{} }

// Lisp renders the node for debug snapshots.
func (e *UndefValue) Lisp() *sexp.Node { return sexp.NewNode("_") }

// IsUndef reports whether e is the UndefValue wildcard.
func IsUndef(e Expression) bool {
	_, ok := e.(*UndefValue)
	return ok
}

func cloneExpressions(args []Expression) []Expression {
	out := make([]Expression, len(args))
	for i, a := range args {
		out[i] = a.Clone()
	}

	return out
}
