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
// Package sexp implements the minimal canonical structural serialisation
// used by the debug-report decorator: one node per line, indentation
// encoding nesting, attributes on the same line as their node.
package sexp

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is a single line of a canonical snapshot: a tag, zero or more
// inline attributes printed on the tag's own line, and zero or more
// children printed on indented lines below it.
type Node struct {
	Tag      string
	Attrs    []string
	Children []*Node
}

// NewNode constructs a leaf or branch node with the given tag.
func NewNode(tag string, attrs ...string) *Node {
	return &Node{Tag: tag, Attrs: attrs}
}

// Add appends children to a node and returns it, for fluent construction.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Attr appends a "name=value" style attribute already rendered to a
// string and returns the node, for fluent construction.
func (n *Node) Attr(s string) *Node {
	n.Attrs = append(n.Attrs, s)
	return n
}

// AttrInt is a convenience wrapper around Attr for integer attributes.
func (n *Node) AttrInt(name string, v int) *Node {
	return n.Attr(fmt.Sprintf("%s=%s", name, strconv.Itoa(v)))
}

// String renders the node and its descendants using two-space indents per
// nesting level, one node per line.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, 0)
	return b.String()
}

func (n *Node) write(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("(")
	b.WriteString(n.Tag)

	for _, a := range n.Attrs {
		b.WriteString(" ")
		b.WriteString(a)
	}

	if len(n.Children) == 0 {
		b.WriteString(")\n")
		return
	}

	b.WriteString("\n")

	for _, c := range n.Children {
		c.write(b, depth+1)
	}

	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(")\n")
}

// Equal performs a structural (tag/attrs/children) comparison, ignoring
// node identity. Two nil nodes compare equal.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}

	if n.Tag != other.Tag || len(n.Attrs) != len(other.Attrs) || len(n.Children) != len(other.Children) {
		return false
	}

	for i := range n.Attrs {
		if n.Attrs[i] != other.Attrs[i] {
			return false
		}
	}

	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}

	return true
}
