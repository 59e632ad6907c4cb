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

// Scan binds a tuple at Level to each tuple of Rel in turn, running Body
// for each binding.
type Scan struct {
	Rel   Relation
	Level int
	Body  Operation
}

func (o *Scan) operationNode() {}
func (o *Scan) ChildBody() Operation { return o.Body }
func (o *Scan) WithChildBody(b Operation) Operation {
	return &Scan{Rel: o.Rel, Level: o.Level, Body: b}
}

// Equal performs a structural comparison including the nested body.
func (o *Scan) Equal(other Operation) bool {
	x, ok := other.(*Scan)
	return ok && o.Rel.Equal(x.Rel) && o.Level == x.Level && o.Body.Equal(x.Body)
}

// Clone returns an independent deep copy.
func (o *Scan) Clone() Operation {
	return &Scan{Rel: o.Rel, Level: o.Level, Body: o.Body.Clone()}
}

// Lisp renders the node for debug snapshots.
func (o *Scan) Lisp() *sexp.Node {
	return sexp.NewNode("scan", o.Rel.String(), levelAttr(o.Level)).Add(o.Body.Lisp())
}

// IndexScan is a Scan equipped with an equality Pattern probed against
// Rel's index, one entry per attribute (UndefValue for a free attribute).
type IndexScan struct {
	Rel     Relation
	Level   int
	Pattern []Expression
	Body    Operation
}

func (o *IndexScan) operationNode() {}
func (o *IndexScan) ChildBody() Operation { return o.Body }
func (o *IndexScan) WithChildBody(b Operation) Operation {
	return &IndexScan{Rel: o.Rel, Level: o.Level, Pattern: o.Pattern, Body: b}
}

// Equal performs a structural comparison of relation, pattern and body.
func (o *IndexScan) Equal(other Operation) bool {
	x, ok := other.(*IndexScan)
	if !ok || !o.Rel.Equal(x.Rel) || o.Level != x.Level || len(o.Pattern) != len(x.Pattern) {
		return false
	}

	return patternsEqual(o.Pattern, x.Pattern) && o.Body.Equal(x.Body)
}

// Clone returns an independent deep copy.
func (o *IndexScan) Clone() Operation {
	return &IndexScan{Rel: o.Rel, Level: o.Level, Pattern: cloneExpressions(o.Pattern), Body: o.Body.Clone()}
}

// Lisp renders the node for debug snapshots.
func (o *IndexScan) Lisp() *sexp.Node {
	n := sexp.NewNode("indexscan", o.Rel.String(), levelAttr(o.Level))
	n.Add(patternLisp(o.Pattern))
	n.Add(o.Body.Lisp())

	return n
}

// Choice evaluates Body for at most one tuple of Rel satisfying Cond.
type Choice struct {
	Rel   Relation
	Level int
	Cond  Condition
	Body  Operation
}

func (o *Choice) operationNode() {}
func (o *Choice) ChildBody() Operation { return o.Body }
func (o *Choice) WithChildBody(b Operation) Operation {
	return &Choice{Rel: o.Rel, Level: o.Level, Cond: o.Cond, Body: b}
}

// Equal performs a structural comparison including condition and body.
func (o *Choice) Equal(other Operation) bool {
	x, ok := other.(*Choice)
	return ok && o.Rel.Equal(x.Rel) && o.Level == x.Level && o.Cond.Equal(x.Cond) && o.Body.Equal(x.Body)
}

// Clone returns an independent deep copy.
func (o *Choice) Clone() Operation {
	return &Choice{Rel: o.Rel, Level: o.Level, Cond: o.Cond.Clone(), Body: o.Body.Clone()}
}

// Lisp renders the node for debug snapshots.
func (o *Choice) Lisp() *sexp.Node {
	return sexp.NewNode("choice", o.Rel.String(), levelAttr(o.Level)).Add(o.Cond.Lisp(), o.Body.Lisp())
}

// IndexChoice is a Choice equipped with an index Pattern in place of a
// free scan over Rel.
type IndexChoice struct {
	Rel     Relation
	Level   int
	Pattern []Expression
	Cond    Condition
	Body    Operation
}

func (o *IndexChoice) operationNode() {}
func (o *IndexChoice) ChildBody() Operation { return o.Body }
func (o *IndexChoice) WithChildBody(b Operation) Operation {
	return &IndexChoice{Rel: o.Rel, Level: o.Level, Pattern: o.Pattern, Cond: o.Cond, Body: b}
}

// Equal performs a structural comparison of relation, pattern, condition
// and body.
func (o *IndexChoice) Equal(other Operation) bool {
	x, ok := other.(*IndexChoice)
	if !ok || !o.Rel.Equal(x.Rel) || o.Level != x.Level || len(o.Pattern) != len(x.Pattern) {
		return false
	}

	return patternsEqual(o.Pattern, x.Pattern) && o.Cond.Equal(x.Cond) && o.Body.Equal(x.Body)
}

// Clone returns an independent deep copy.
func (o *IndexChoice) Clone() Operation {
	return &IndexChoice{
		Rel: o.Rel, Level: o.Level, Pattern: cloneExpressions(o.Pattern),
		Cond: o.Cond.Clone(), Body: o.Body.Clone(),
	}
}

// Lisp renders the node for debug snapshots.
func (o *IndexChoice) Lisp() *sexp.Node {
	n := sexp.NewNode("indexchoice", o.Rel.String(), levelAttr(o.Level))
	n.Add(patternLisp(o.Pattern), o.Cond.Lisp(), o.Body.Lisp())

	return n
}

// Aggregate folds Expr with aggregator Op over every tuple of Rel that
// satisfies Cond, running Body once the fold has completed.
type Aggregate struct {
	Op    AggregateOp
	Rel   Relation
	Level int
	Cond  Condition
	Expr  Expression
	Body  Operation
}

func (o *Aggregate) operationNode() {}
func (o *Aggregate) ChildBody() Operation { return o.Body }
func (o *Aggregate) WithChildBody(b Operation) Operation {
	return &Aggregate{Op: o.Op, Rel: o.Rel, Level: o.Level, Cond: o.Cond, Expr: o.Expr, Body: b}
}

// Equal performs a structural comparison of every field.
func (o *Aggregate) Equal(other Operation) bool {
	x, ok := other.(*Aggregate)
	return ok && o.Op == x.Op && o.Rel.Equal(x.Rel) && o.Level == x.Level &&
		o.Cond.Equal(x.Cond) && o.Expr.Equal(x.Expr) && o.Body.Equal(x.Body)
}

// Clone returns an independent deep copy.
func (o *Aggregate) Clone() Operation {
	return &Aggregate{
		Op: o.Op, Rel: o.Rel, Level: o.Level, Cond: o.Cond.Clone(),
		Expr: o.Expr.Clone(), Body: o.Body.Clone(),
	}
}

// Lisp renders the node for debug snapshots.
func (o *Aggregate) Lisp() *sexp.Node {
	n := sexp.NewNode("aggregate", o.Op.String(), o.Rel.String(), levelAttr(o.Level))
	n.Add(o.Cond.Lisp(), o.Expr.Lisp(), o.Body.Lisp())

	return n
}

// IndexAggregate is an Aggregate equipped with an index Pattern in place
// of a free scan over Rel.
type IndexAggregate struct {
	Op      AggregateOp
	Rel     Relation
	Level   int
	Pattern []Expression
	Cond    Condition
	Expr    Expression
	Body    Operation
}

func (o *IndexAggregate) operationNode() {}
func (o *IndexAggregate) ChildBody() Operation { return o.Body }
func (o *IndexAggregate) WithChildBody(b Operation) Operation {
	return &IndexAggregate{
		Op: o.Op, Rel: o.Rel, Level: o.Level, Pattern: o.Pattern,
		Cond: o.Cond, Expr: o.Expr, Body: b,
	}
}

// Equal performs a structural comparison of every field.
func (o *IndexAggregate) Equal(other Operation) bool {
	x, ok := other.(*IndexAggregate)
	if !ok || o.Op != x.Op || !o.Rel.Equal(x.Rel) || o.Level != x.Level || len(o.Pattern) != len(x.Pattern) {
		return false
	}

	return patternsEqual(o.Pattern, x.Pattern) && o.Cond.Equal(x.Cond) &&
		o.Expr.Equal(x.Expr) && o.Body.Equal(x.Body)
}

// Clone returns an independent deep copy.
func (o *IndexAggregate) Clone() Operation {
	return &IndexAggregate{
		Op: o.Op, Rel: o.Rel, Level: o.Level, Pattern: cloneExpressions(o.Pattern),
		Cond: o.Cond.Clone(), Expr: o.Expr.Clone(), Body: o.Body.Clone(),
	}
}

// Lisp renders the node for debug snapshots.
func (o *IndexAggregate) Lisp() *sexp.Node {
	n := sexp.NewNode("indexaggregate", o.Op.String(), o.Rel.String(), levelAttr(o.Level))
	n.Add(patternLisp(o.Pattern), o.Cond.Lisp(), o.Expr.Lisp(), o.Body.Lisp())

	return n
}

// Filter evaluates Body only if Cond holds. Spec invariant "conjunction
// split form": a Filter directly inside a query nest must have a Cond
// whose outermost connective is not Conjunction.
type Filter struct {
	Cond Condition
	Body Operation
}

func (o *Filter) operationNode() {}
func (o *Filter) ChildBody() Operation { return o.Body }
func (o *Filter) WithChildBody(b Operation) Operation {
	return &Filter{Cond: o.Cond, Body: b}
}

// Equal performs a structural comparison of condition and body.
func (o *Filter) Equal(other Operation) bool {
	x, ok := other.(*Filter)
	return ok && o.Cond.Equal(x.Cond) && o.Body.Equal(x.Body)
}

// Clone returns an independent deep copy.
func (o *Filter) Clone() Operation {
	return &Filter{Cond: o.Cond.Clone(), Body: o.Body.Clone()}
}

// Lisp renders the node for debug snapshots.
func (o *Filter) Lisp() *sexp.Node {
	return sexp.NewNode("filter").Add(o.Cond.Lisp(), o.Body.Lisp())
}

// Break is like Filter, but terminates the enclosing scan loop when Cond
// becomes true, rather than merely skipping Body for this binding. It has
// non-local control effect and is never hoisted.
type Break struct {
	Cond Condition
	Body Operation
}

func (o *Break) operationNode() {}
func (o *Break) ChildBody() Operation { return o.Body }
func (o *Break) WithChildBody(b Operation) Operation {
	return &Break{Cond: o.Cond, Body: b}
}

// Equal performs a structural comparison of condition and body.
func (o *Break) Equal(other Operation) bool {
	x, ok := other.(*Break)
	return ok && o.Cond.Equal(x.Cond) && o.Body.Equal(x.Body)
}

// Clone returns an independent deep copy.
func (o *Break) Clone() Operation {
	return &Break{Cond: o.Cond.Clone(), Body: o.Body.Clone()}
}

// Lisp renders the node for debug snapshots.
func (o *Break) Lisp() *sexp.Node {
	return sexp.NewNode("break").Add(o.Cond.Lisp(), o.Body.Lisp())
}

// Project inserts a tuple, built from Args, into Rel. It is a leaf
// operation: it has no nested body.
type Project struct {
	Rel  Relation
	Args []Expression
}

func (o *Project) operationNode() {}

// Equal performs a structural, order-sensitive comparison of relation
// and arguments.
func (o *Project) Equal(other Operation) bool {
	x, ok := other.(*Project)
	if !ok || !o.Rel.Equal(x.Rel) || len(o.Args) != len(x.Args) {
		return false
	}

	return patternsEqual(o.Args, x.Args)
}

// Clone returns an independent deep copy.
func (o *Project) Clone() Operation {
	return &Project{Rel: o.Rel, Args: cloneExpressions(o.Args)}
}

// Lisp renders the node for debug snapshots.
func (o *Project) Lisp() *sexp.Node {
	n := sexp.NewNode("project", o.Rel.String())
	for _, a := range o.Args {
		n.Add(a.Lisp())
	}

	return n
}

// SubroutineReturn yields Args as the exit value of a callable
// subroutine. It is a leaf operation: it has no nested body.
type SubroutineReturn struct {
	Args []Expression
}

func (o *SubroutineReturn) operationNode() {}

// Equal performs a structural, order-sensitive comparison of arguments.
func (o *SubroutineReturn) Equal(other Operation) bool {
	x, ok := other.(*SubroutineReturn)
	if !ok || len(o.Args) != len(x.Args) {
		return false
	}

	return patternsEqual(o.Args, x.Args)
}

// Clone returns an independent deep copy.
func (o *SubroutineReturn) Clone() Operation {
	return &SubroutineReturn{Args: cloneExpressions(o.Args)}
}

// Lisp renders the node for debug snapshots.
func (o *SubroutineReturn) Lisp() *sexp.Node {
	n := sexp.NewNode("return")
	for _, a := range o.Args {
		n.Add(a.Lisp())
	}

	return n
}

func levelAttr(level int) string {
	return fmt.Sprintf("t%d", level)
}

func patternLisp(pattern []Expression) *sexp.Node {
	n := sexp.NewNode("pattern")
	for _, p := range pattern {
		n.Add(p.Lisp())
	}

	return n
}
