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

// Query runs a single top-level Operation tree (a chain of scans, filters
// and a terminal Project/SubroutineReturn).
type Query struct {
	Op Operation
}

func (s *Query) statementNode() {}

// Equal performs a structural comparison of the wrapped operation.
func (s *Query) Equal(other Statement) bool {
	o, ok := other.(*Query)
	return ok && s.Op.Equal(o.Op)
}

// Clone returns an independent deep copy.
func (s *Query) Clone() Statement { return &Query{Op: s.Op.Clone()} }

// Lisp renders the node for debug snapshots.
func (s *Query) Lisp() *sexp.Node {
	return sexp.NewNode("query").Add(s.Op.Lisp())
}

// Sequence runs its statements one after another.
type Sequence struct {
	Stmts []Statement
}

func (s *Sequence) statementNode() {}

// Equal performs a structural, order-sensitive comparison of the
// statement list.
func (s *Sequence) Equal(other Statement) bool {
	o, ok := other.(*Sequence)
	if !ok || len(s.Stmts) != len(o.Stmts) {
		return false
	}

	for i := range s.Stmts {
		if !s.Stmts[i].Equal(o.Stmts[i]) {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy.
func (s *Sequence) Clone() Statement {
	return &Sequence{Stmts: cloneStatements(s.Stmts)}
}

// Lisp renders the node for debug snapshots.
func (s *Sequence) Lisp() *sexp.Node {
	n := sexp.NewNode("seq")
	for _, st := range s.Stmts {
		n.Add(st.Lisp())
	}

	return n
}

// Parallel represents back-end-level parallelism between its statements.
// It is a representation only: this module never mutates a Parallel's
// children concurrently, and no IR mutation may occur concurrently with
// any other.
type Parallel struct {
	Stmts []Statement
}

func (s *Parallel) statementNode() {}

// Equal performs a structural, order-sensitive comparison of the
// statement list.
func (s *Parallel) Equal(other Statement) bool {
	o, ok := other.(*Parallel)
	if !ok || len(s.Stmts) != len(o.Stmts) {
		return false
	}

	for i := range s.Stmts {
		if !s.Stmts[i].Equal(o.Stmts[i]) {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy.
func (s *Parallel) Clone() Statement {
	return &Parallel{Stmts: cloneStatements(s.Stmts)}
}

// Lisp renders the node for debug snapshots.
func (s *Parallel) Lisp() *sexp.Node {
	n := sexp.NewNode("par")
	for _, st := range s.Stmts {
		n.Add(st.Lisp())
	}

	return n
}

// Loop repeatedly runs Body until a fixpoint (detected upstream via an
// Exit statement inside Body).
type Loop struct {
	Body Statement
}

func (s *Loop) statementNode() {}

// Equal performs a structural comparison of the loop body.
func (s *Loop) Equal(other Statement) bool {
	o, ok := other.(*Loop)
	return ok && s.Body.Equal(o.Body)
}

// Clone returns an independent deep copy.
func (s *Loop) Clone() Statement { return &Loop{Body: s.Body.Clone()} }

// Lisp renders the node for debug snapshots.
func (s *Loop) Lisp() *sexp.Node {
	return sexp.NewNode("loop").Add(s.Body.Lisp())
}

// Exit breaks out of the enclosing Loop when Cond holds.
type Exit struct {
	Cond Condition
}

func (s *Exit) statementNode() {}

// Equal performs a structural comparison of the exit condition.
func (s *Exit) Equal(other Statement) bool {
	o, ok := other.(*Exit)
	return ok && s.Cond.Equal(o.Cond)
}

// Clone returns an independent deep copy.
func (s *Exit) Clone() Statement { return &Exit{Cond: s.Cond.Clone()} }

// Lisp renders the node for debug snapshots.
func (s *Exit) Lisp() *sexp.Node {
	return sexp.NewNode("exit").Add(s.Cond.Lisp())
}

// BinRelationStatement covers Insert, Merge, Swap and Clear: all four are
// structurally the same shape, naming one or two relations (Clear only
// uses Dst; Src is the zero Relation).
type BinRelationStatement struct {
	Kind     BinRelationKind
	Src, Dst Relation
}

func (s *BinRelationStatement) statementNode() {}

// Equal performs a structural comparison of kind and both relations.
func (s *BinRelationStatement) Equal(other Statement) bool {
	o, ok := other.(*BinRelationStatement)
	return ok && s.Kind == o.Kind && s.Src.Equal(o.Src) && s.Dst.Equal(o.Dst)
}

// Clone returns an independent copy.
func (s *BinRelationStatement) Clone() Statement {
	return &BinRelationStatement{Kind: s.Kind, Src: s.Src, Dst: s.Dst}
}

// Lisp renders the node for debug snapshots.
func (s *BinRelationStatement) Lisp() *sexp.Node {
	if s.Kind == RelClear {
		return sexp.NewNode(s.Kind.String(), s.Dst.String())
	}

	return sexp.NewNode(s.Kind.String(), s.Src.String(), s.Dst.String())
}

// IO performs an input or output operation against Rel, configured by
// Directives (e.g. file format, delimiter). The concrete I/O driver
// (CSV, SQLite, ...) is an external collaborator; this node only records
// the request.
type IO struct {
	Rel        Relation
	Directives map[string]string
}

func (s *IO) statementNode() {}

// Equal performs a structural comparison of relation and directives.
func (s *IO) Equal(other Statement) bool {
	o, ok := other.(*IO)
	if !ok || !s.Rel.Equal(o.Rel) || len(s.Directives) != len(o.Directives) {
		return false
	}

	for k, v := range s.Directives {
		if o.Directives[k] != v {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy.
func (s *IO) Clone() Statement {
	dirs := make(map[string]string, len(s.Directives))
	for k, v := range s.Directives {
		dirs[k] = v
	}

	return &IO{Rel: s.Rel, Directives: dirs}
}

// Lisp renders the node for debug snapshots.
func (s *IO) Lisp() *sexp.Node {
	return sexp.NewNode("io", s.Rel.String())
}

// LogSize logs the current cardinality of Rel under Message, for
// profiling. The profiler itself is an external collaborator.
type LogSize struct {
	Rel     Relation
	Message string
}

func (s *LogSize) statementNode() {}

// Equal performs a structural comparison of relation and message.
func (s *LogSize) Equal(other Statement) bool {
	o, ok := other.(*LogSize)
	return ok && s.Rel.Equal(o.Rel) && s.Message == o.Message
}

// Clone returns an independent copy.
func (s *LogSize) Clone() Statement { return &LogSize{Rel: s.Rel, Message: s.Message} }

// Lisp renders the node for debug snapshots.
func (s *LogSize) Lisp() *sexp.Node {
	return sexp.NewNode("logsize", s.Rel.String(), s.Message)
}

// DebugInfo annotates Body with a Message for debug-report emission.
type DebugInfo struct {
	Message string
	Body    Statement
}

func (s *DebugInfo) statementNode() {}

// Equal performs a structural comparison of message and body.
func (s *DebugInfo) Equal(other Statement) bool {
	o, ok := other.(*DebugInfo)
	return ok && s.Message == o.Message && s.Body.Equal(o.Body)
}

// Clone returns an independent deep copy.
func (s *DebugInfo) Clone() Statement {
	return &DebugInfo{Message: s.Message, Body: s.Body.Clone()}
}

// Lisp renders the node for debug snapshots.
func (s *DebugInfo) Lisp() *sexp.Node {
	return sexp.NewNode("debuginfo", s.Message).Add(s.Body.Lisp())
}

// Program is the root of the RAM tree: a set of declared Relations and a
// single Main statement.
type Program struct {
	Relations []Relation
	Main      Statement
}

func (s *Program) statementNode() {}

// Equal performs a structural, order-sensitive comparison of relations
// and the main statement.
func (s *Program) Equal(other Statement) bool {
	o, ok := other.(*Program)
	if !ok || len(s.Relations) != len(o.Relations) {
		return false
	}

	for i := range s.Relations {
		if !s.Relations[i].Equal(o.Relations[i]) {
			return false
		}
	}

	return s.Main.Equal(o.Main)
}

// Clone returns an independent deep copy.
func (s *Program) Clone() Statement {
	rels := make([]Relation, len(s.Relations))
	copy(rels, s.Relations)

	return &Program{Relations: rels, Main: s.Main.Clone()}
}

// Lisp renders the node for debug snapshots.
func (s *Program) Lisp() *sexp.Node {
	n := sexp.NewNode("program")
	for _, r := range s.Relations {
		n.Add(sexp.NewNode("relation", r.String()))
	}

	n.Add(s.Main.Lisp())

	return n
}

func cloneStatements(stmts []Statement) []Statement {
	out := make([]Statement, len(stmts))
	for i, s := range stmts {
		out[i] = s.Clone()
	}

	return out
}
