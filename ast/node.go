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
	"bytes"
	"encoding/json"
	"fmt"
)

// TypeDescriptions are the type annotations solc attaches to typed nodes.
type TypeDescriptions struct {
	TypeIdentifier string `json:"typeIdentifier,omitempty"`
	TypeString     string `json:"typeString,omitempty"`
}

// Node is a node of the solc JSON AST.
//
// Only the properties needed to classify types and declarations are decoded,
// the remaining properties of the compiler output are ignored.
type Node struct {
	ID       int    `json:"id"`
	NodeType string `json:"nodeType,omitempty"`
	Name     string `json:"name,omitempty"`

	// declarations
	CanonicalName string  `json:"canonicalName,omitempty"`
	ContractKind  string  `json:"contractKind,omitempty"`
	Members       []*Node `json:"members,omitempty"`
	Nodes         []*Node `json:"nodes,omitempty"`

	// functions and function types
	Kind                 string `json:"kind,omitempty"`
	Visibility           string `json:"visibility,omitempty"`
	StateMutability      string `json:"stateMutability,omitempty"`
	Constant             bool   `json:"constant,omitempty"`
	Payable              bool   `json:"payable,omitempty"`
	ParameterTypes       *Node  `json:"parameterTypes,omitempty"`
	ReturnParameterTypes *Node  `json:"returnParameterTypes,omitempty"`

	// Parameters are the declarations of a ParameterList node.
	Parameters    []*Node `json:"-"`
	// ParameterList is the parameter list of a FunctionDefinition node.
	ParameterList *Node   `json:"-"`

	// variables and type names
	StorageLocation  string            `json:"storageLocation,omitempty"`
	TypeDescriptions *TypeDescriptions `json:"typeDescriptions,omitempty"`
	TypeName         *Node             `json:"typeName,omitempty"`
	BaseType         *Node             `json:"baseType,omitempty"`
	KeyType          *Node             `json:"keyType,omitempty"`
	ValueType        *Node             `json:"valueType,omitempty"`
	PathNode         *Node             `json:"pathNode,omitempty"`

	ReferencedDeclaration int `json:"referencedDeclaration,omitempty"`
}

// UnmarshalJSON decodes a node.
//
// solc uses the property "parameters" both for the ParameterList node
// of a function definition, and for the declarations of a ParameterList node.
func (n *Node) UnmarshalJSON(data []byte) error {
	type Alias Node
	aux := &struct {
		*Alias
		Parameters json.RawMessage `json:"parameters,omitempty"`
	}{
		Alias: (*Alias)(n),
	}

	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	parameters := bytes.TrimSpace(aux.Parameters)
	if len(parameters) == 0 || bytes.Equal(parameters, []byte("null")) {
		return nil
	}

	switch parameters[0] {
	case '[':
		return json.Unmarshal(parameters, &n.Parameters)
	case '{':
		n.ParameterList = &Node{}
		return json.Unmarshal(parameters, n.ParameterList)
	default:
		return fmt.Errorf("invalid parameters of node %d: %s", n.ID, parameters)
	}
}

// Unmarshal decodes a single solc JSON AST node.
func Unmarshal(data []byte) (*Node, error) {
	var node Node
	err := json.Unmarshal(data, &node)
	if err != nil {
		return nil, err
	}
	return &node, nil
}

// Walk calls f for the node and, depth-first, for all its nested declarations,
// members, parameters, and type names. Walk stops descending into a node's
// children when f returns false.
func Walk(node *Node, f func(*Node) bool) {
	if node == nil || !f(node) {
		return
	}

	for _, child := range node.Nodes {
		Walk(child, f)
	}
	for _, member := range node.Members {
		Walk(member, f)
	}
	for _, parameter := range node.Parameters {
		Walk(parameter, f)
	}

	Walk(node.ParameterList, f)
	Walk(node.ParameterTypes, f)
	Walk(node.ReturnParameterTypes, f)
	Walk(node.TypeName, f)
	Walk(node.BaseType, f)
	Walk(node.KeyType, f)
	Walk(node.ValueType, f)
}
