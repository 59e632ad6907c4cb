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

import "github.com/uxhg/souffle/pkg/ram/sexp"

// Conjunction is a binary AND, kept in split form: spec invariant
// "conjunction split form" requires that no Filter directly inside a
// query nest has a Conjunction as its outermost connective. Transformers
// that need to introduce an AND must instead nest two Filters.
type Conjunction struct {
	A, B Condition
}

func (c *Conjunction) conditionNode() {}

// Equal performs a structural, order-sensitive comparison of both sides.
func (c *Conjunction) Equal(other Condition) bool {
	o, ok := other.(*Conjunction)
	return ok && c.A.Equal(o.A) && c.B.Equal(o.B)
}

// Clone returns an independent deep copy.
func (c *Conjunction) Clone() Condition {
	return &Conjunction{A: c.A.Clone(), B: c.B.Clone()}
}

// Lisp renders the node for debug snapshots.
func (c *Conjunction) Lisp() *sexp.Node {
	return sexp.NewNode("and").Add(c.A.Lisp(), c.B.Lisp())
}

// Negation is the boolean complement of a condition.
type Negation struct {
	Cond Condition
}

func (c *Negation) conditionNode() {}

// Equal performs a structural comparison of the negated condition.
func (c *Negation) Equal(other Condition) bool {
	o, ok := other.(*Negation)
	return ok && c.Cond.Equal(o.Cond)
}

// Clone returns an independent deep copy.
func (c *Negation) Clone() Condition { return &Negation{Cond: c.Cond.Clone()} }

// Lisp renders the node for debug snapshots.
func (c *Negation) Lisp() *sexp.Node {
	return sexp.NewNode("not").Add(c.Cond.Lisp())
}

// Constraint compares two expressions with a fixed relational operator.
type Constraint struct {
	Op       ConstraintOp
	Lhs, Rhs Expression
}

func (c *Constraint) conditionNode() {}

// Equal performs a structural, order-sensitive comparison of operator and
// operands.
func (c *Constraint) Equal(other Condition) bool {
	o, ok := other.(*Constraint)
	return ok && c.Op == o.Op && c.Lhs.Equal(o.Lhs) && c.Rhs.Equal(o.Rhs)
}

// Clone returns an independent deep copy.
func (c *Constraint) Clone() Condition {
	return &Constraint{Op: c.Op, Lhs: c.Lhs.Clone(), Rhs: c.Rhs.Clone()}
}

// Lisp renders the node for debug snapshots.
func (c *Constraint) Lisp() *sexp.Node {
	return sexp.NewNode(c.Op.String()).Add(c.Lhs.Lisp(), c.Rhs.Lisp())
}

// ExistenceCheck probes whether relation Rel contains a tuple matching
// Pattern, without binding one. Pattern has one entry per attribute;
// UndefValue means that attribute is free.
type ExistenceCheck struct {
	Rel     Relation
	Pattern []Expression
}

func (c *ExistenceCheck) conditionNode() {}

// Equal performs a structural, order-sensitive comparison of relation
// and pattern.
func (c *ExistenceCheck) Equal(other Condition) bool {
	o, ok := other.(*ExistenceCheck)
	if !ok || !c.Rel.Equal(o.Rel) || len(c.Pattern) != len(o.Pattern) {
		return false
	}

	return patternsEqual(c.Pattern, o.Pattern)
}

// Clone returns an independent deep copy.
func (c *ExistenceCheck) Clone() Condition {
	return &ExistenceCheck{Rel: c.Rel, Pattern: cloneExpressions(c.Pattern)}
}

// Lisp renders the node for debug snapshots.
func (c *ExistenceCheck) Lisp() *sexp.Node {
	return lispPattern("exists", c.Rel, c.Pattern)
}

// ProvenanceExistenceCheck is the provenance back end's variant of
// ExistenceCheck. The provenance back end itself is out of scope; this
// module only tracks the shape of the probe (relation and pattern) and
// carries no provenance data of its own.
type ProvenanceExistenceCheck struct {
	Rel     Relation
	Pattern []Expression
}

func (c *ProvenanceExistenceCheck) conditionNode() {}

// Equal performs a structural, order-sensitive comparison of relation
// and pattern.
func (c *ProvenanceExistenceCheck) Equal(other Condition) bool {
	o, ok := other.(*ProvenanceExistenceCheck)
	if !ok || !c.Rel.Equal(o.Rel) || len(c.Pattern) != len(o.Pattern) {
		return false
	}

	return patternsEqual(c.Pattern, o.Pattern)
}

// Clone returns an independent deep copy.
func (c *ProvenanceExistenceCheck) Clone() Condition {
	return &ProvenanceExistenceCheck{Rel: c.Rel, Pattern: cloneExpressions(c.Pattern)}
}

// Lisp renders the node for debug snapshots.
func (c *ProvenanceExistenceCheck) Lisp() *sexp.Node {
	return lispPattern("prov-exists", c.Rel, c.Pattern)
}

// EmptinessCheck probes whether relation Rel currently contains no
// tuples at all.
type EmptinessCheck struct {
	Rel Relation
}

func (c *EmptinessCheck) conditionNode() {}

// Equal reports whether other is an EmptinessCheck on the same relation.
func (c *EmptinessCheck) Equal(other Condition) bool {
	o, ok := other.(*EmptinessCheck)
	return ok && c.Rel.Equal(o.Rel)
}

// Clone returns an independent copy.
func (c *EmptinessCheck) Clone() Condition { return &EmptinessCheck{Rel: c.Rel} }

// Lisp renders the node for debug snapshots.
func (c *EmptinessCheck) Lisp() *sexp.Node {
	return sexp.NewNode("empty", c.Rel.String())
}

func patternsEqual(a, b []Expression) bool {
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

func lispPattern(tag string, rel Relation, pattern []Expression) *sexp.Node {
	n := sexp.NewNode(tag, rel.String())
	for _, p := range pattern {
		n.Add(p.Lisp())
	}

	return n
}
