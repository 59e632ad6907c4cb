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

import "fmt"

// Relation identifies a named relation and its fixed attribute arity.
// Spec invariant "pattern arity": an IndexScan/IndexAggregate on relation
// R must carry a pattern of length exactly R.Arity.
type Relation struct {
	Name  string
	Arity int
}

// NewRelation constructs a relation handle with the given name and arity.
func NewRelation(name string, arity int) Relation {
	return Relation{Name: name, Arity: arity}
}

// Equal compares two relation handles by name and arity.
func (r Relation) Equal(other Relation) bool {
	return r.Name == other.Name && r.Arity == other.Arity
}

// String renders the relation as it would appear in a snapshot.
func (r Relation) String() string {
	return fmt.Sprintf("%s/%d", r.Name, r.Arity)
}

// SymbolTable is the minimal relation registry a TranslationUnit consults
// to validate pattern arity. The front-end's full symbol table (types,
// functor signatures, ...) lives upstream and is out of scope; this is
// only the slice of it the RAM passes need.
type SymbolTable struct {
	relations map[string]Relation
}

// NewSymbolTable constructs an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{relations: make(map[string]Relation)}
}

// Declare registers a relation, overwriting any prior declaration of the
// same name.
func (st *SymbolTable) Declare(rel Relation) {
	st.relations[rel.Name] = rel
}

// Lookup returns the declared relation with the given name, if any.
func (st *SymbolTable) Lookup(name string) (Relation, bool) {
	rel, ok := st.relations[name]
	return rel, ok
}

// Arity returns the arity of a declared relation, or -1 if it is unknown.
func (st *SymbolTable) Arity(name string) int {
	if rel, ok := st.relations[name]; ok {
		return rel.Arity
	}

	return -1
}
