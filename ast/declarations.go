/*
 * Truffle Codec - Solidity type descriptors
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ast

import (
	"sort"
)

// Declarations looks up declarations by their compiler-assigned id.
type Declarations interface {
	// Declaration returns the declaration with the given id.
	Declaration(id int) (*Node, bool)
	// EnclosingContract returns the contract definition
	// which directly contains the declaration with the given id.
	EnclosingContract(id int) (*Node, bool)
}

// DeclarationTable is a read-only table of declarations, indexed by id.
// It may be shared by goroutines.
type DeclarationTable struct {
	declarations map[int]*Node
	enclosing    map[int]*Node
}

var _ Declarations = &DeclarationTable{}

// NewDeclarationTable indexes the given declarations.
// Contract definitions are additionally indexed
// as the enclosing contract of each of their child nodes.
func NewDeclarationTable(declarations ...*Node) *DeclarationTable {
	table := &DeclarationTable{
		declarations: make(map[int]*Node, len(declarations)),
		enclosing:    map[int]*Node{},
	}

	// index in id order, so the first of several contracts
	// claiming the same child is chosen deterministically
	sorted := make([]*Node, 0, len(declarations))
	for _, declaration := range declarations {
		if declaration != nil {
			sorted = append(sorted, declaration)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	for _, declaration := range sorted {
		if _, ok := table.declarations[declaration.ID]; !ok {
			table.declarations[declaration.ID] = declaration
		}

		if declaration.NodeType != NodeTypeContractDefinition {
			continue
		}

		for _, child := range declaration.Nodes {
			if child == nil {
				continue
			}
			if _, ok := table.enclosing[child.ID]; !ok {
				table.enclosing[child.ID] = declaration
			}
		}
	}

	return table
}

// NewDeclarationTableFromSources indexes every struct, enum, and contract definition
// found in the given source units.
func NewDeclarationTableFromSources(sourceUnits ...*Node) *DeclarationTable {
	var declarations []*Node
	for _, sourceUnit := range sourceUnits {
		Walk(sourceUnit, func(node *Node) bool {
			switch node.NodeType {
			case NodeTypeStructDefinition,
				NodeTypeEnumDefinition,
				NodeTypeContractDefinition:

				declarations = append(declarations, node)
			}
			return true
		})
	}
	return NewDeclarationTable(declarations...)
}

func (t *DeclarationTable) Declaration(id int) (*Node, bool) {
	if t == nil {
		return nil, false
	}
	declaration, ok := t.declarations[id]
	return declaration, ok
}

func (t *DeclarationTable) EnclosingContract(id int) (*Node, bool) {
	if t == nil {
		return nil, false
	}
	contract, ok := t.enclosing[id]
	return contract, ok
}

func (t *DeclarationTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.declarations)
}

// ForEach calls f for each declaration, in id order.
func (t *DeclarationTable) ForEach(f func(*Node) error) error {
	ids := make([]int, 0, len(t.declarations))
	for id := range t.declarations { //nolint:maprange
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		err := f(t.declarations[id])
		if err != nil {
			return err
		}
	}
	return nil
}
