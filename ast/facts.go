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
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/kingjbbrooks/truffle/common"
	"github.com/kingjbbrooks/truffle/errors"
)

// Facts answers questions about the types of AST nodes.
//
// Implementations must be safe for concurrent use.
type Facts interface {
	// TypeIdentifier returns the internal type identifier of the node, e.g. "t_uint256".
	TypeIdentifier(node *Node) string
	// TypeString returns the type string of the node, e.g. "uint256[] storage ref".
	TypeString(node *Node) string
	// TypeStringWithoutLocation returns the type string without a trailing data location.
	TypeStringWithoutLocation(node *Node) string
	// TypeClass returns the type class of the node, or common.TypeClassUnknown.
	TypeClass(node *Node) common.TypeClass
	// SpecifiedSize returns the size in bytes stated in the type, e.g. 6 for uint48.
	// The result is false if the type does not state a size.
	SpecifiedSize(node *Node) (int, bool, error)
	// DecimalPlaces returns the number of decimal places of a fixed-point type.
	DecimalPlaces(node *Node) (int, error)
	// IsDynamicArray returns true if the node is an array of dynamic length.
	IsDynamicArray(node *Node) bool
	// StaticLength returns the length of a static array.
	StaticLength(node *Node) (*big.Int, error)
	// ReferenceLocation returns the data location of a reference type,
	// or common.LocationNone if the type has none.
	ReferenceLocation(node *Node) common.Location
	// BaseDefinition returns the definition of the base type of an array.
	BaseDefinition(node *Node) (*Node, error)
	// KeyDefinition returns the definition of the key type of a mapping.
	KeyDefinition(node *Node) (*Node, error)
	// ValueDefinition returns the definition of the value type of a mapping.
	ValueDefinition(node *Node) (*Node, error)
	// Visibility returns the visibility of a function type, or common.VisibilityUnknown.
	Visibility(node *Node) common.Visibility
	// Mutability returns the state mutability of a function type.
	Mutability(node *Node) common.Mutability
	// Parameters returns the parameter and return parameter declarations of a function type.
	Parameters(node *Node) (inputs []*Node, outputs []*Node, err error)
	// TypeID returns the id of the declaration of a user-defined type.
	TypeID(node *Node) (int, error)
	// ContractKind returns the kind of a contract type.
	ContractKind(node *Node) common.ContractKind
	// ContractTypeName returns the name of a contract type.
	ContractTypeName(node *Node) string
	// IsContractPayable returns true if the contract definition
	// can receive ether through a receive function or a payable fallback function.
	IsContractPayable(node *Node) bool
}

// FactError is returned when a fact cannot be determined for a node.
type FactError struct {
	Fact           string
	TypeIdentifier string
	Message        string
}

var _ errors.UserError = FactError{}

func (FactError) IsUserError() {}

func (e FactError) Error() string {
	return fmt.Sprintf(
		"cannot determine %s of type %q: %s",
		e.Fact,
		e.TypeIdentifier,
		e.Message,
	)
}

// SyntheticNodeID is the id of nodes synthesized from type identifiers.
const SyntheticNodeID = -1

// DefaultFacts derives facts from the type descriptions solc attaches to nodes.
type DefaultFacts struct{}

var _ Facts = DefaultFacts{}

var (
	typeClassPattern         = regexp.MustCompile(`^t_([^$_0-9]+)`)
	specifiedSizePattern     = regexp.MustCompile(`^t_[a-z]+([0-9]+)`)
	decimalPlacesPattern     = regexp.MustCompile(`^t_[a-z]+[0-9]+x([0-9]+)`)
	dynamicArrayPattern      = regexp.MustCompile(`\$dyn_[^$]*$`)
	staticLengthPattern      = regexp.MustCompile(`\$([0-9]+)_[^$]*$`)
	referenceLocationPattern = regexp.MustCompile(`_(storage|memory|calldata)(_ptr|_slice)?$`)
	typeIDPattern            = regexp.MustCompile(`\$([0-9]+)(_(storage|memory|calldata)(_ptr|_slice)?)?$`)
	typeStringLocation       = regexp.MustCompile(` (storage|memory|calldata)( pointer| ref| slice)?$`)

	arrayBaseIdentifierPattern   = regexp.MustCompile(`^t_array\$_(.*)_\$`)
	arrayBaseTypeStringPattern   = regexp.MustCompile(`^(.*)\[[0-9]*\]$`)
	mappingKeyIdentifierPattern  = regexp.MustCompile(`^t_mapping\$_(.*?)_\$_`)
	mappingValueIdentifierPattern = regexp.MustCompile(`^t_mapping\$_.*?_\$_(.*)_\$$`)
	mappingKeyTypeStringPattern  = regexp.MustCompile(`^mapping\((.*?) => `)
	mappingValueTypeString       = regexp.MustCompile(`^mapping\(.*? => (.*)\)$`)
	pointerlessLocationPattern   = regexp.MustCompile(`_(storage|memory|calldata)$`)
)

func (DefaultFacts) TypeIdentifier(node *Node) string {
	if node == nil || node.TypeDescriptions == nil {
		return ""
	}
	return node.TypeDescriptions.TypeIdentifier
}

func (DefaultFacts) TypeString(node *Node) string {
	if node == nil || node.TypeDescriptions == nil {
		return ""
	}
	return node.TypeDescriptions.TypeString
}

func (f DefaultFacts) TypeStringWithoutLocation(node *Node) string {
	return typeStringLocation.ReplaceAllString(f.TypeString(node), "")
}

func (f DefaultFacts) TypeClass(node *Node) common.TypeClass {
	match := typeClassPattern.FindStringSubmatch(f.TypeIdentifier(node))
	if match == nil {
		return common.TypeClassUnknown
	}
	return common.TypeClassFromName(match[1])
}

func (f DefaultFacts) SpecifiedSize(node *Node) (int, bool, error) {
	typeIdentifier := f.TypeIdentifier(node)

	match := specifiedSizePattern.FindStringSubmatch(typeIdentifier)
	if match == nil {
		return 0, false, nil
	}

	size, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false, FactError{
			Fact:           "size",
			TypeIdentifier: typeIdentifier,
			Message:        err.Error(),
		}
	}

	switch f.TypeClass(node) {
	case common.TypeClassInt,
		common.TypeClassUint,
		common.TypeClassFixed,
		common.TypeClassUfixed:

		if size == 0 || size%8 != 0 {
			return 0, false, FactError{
				Fact:           "size",
				TypeIdentifier: typeIdentifier,
				Message:        fmt.Sprintf("bit width %d is not a positive multiple of 8", size),
			}
		}
		return size / 8, true, nil

	case common.TypeClassBytes:
		return size, true, nil

	default:
		return 0, false, nil
	}
}

func (f DefaultFacts) DecimalPlaces(node *Node) (int, error) {
	typeIdentifier := f.TypeIdentifier(node)

	match := decimalPlacesPattern.FindStringSubmatch(typeIdentifier)
	if match == nil {
		return 0, FactError{
			Fact:           "decimal places",
			TypeIdentifier: typeIdentifier,
			Message:        "not a fixed-point type",
		}
	}

	places, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, FactError{
			Fact:           "decimal places",
			TypeIdentifier: typeIdentifier,
			Message:        err.Error(),
		}
	}
	return places, nil
}

func (f DefaultFacts) IsDynamicArray(node *Node) bool {
	return f.TypeClass(node) == common.TypeClassArray &&
		dynamicArrayPattern.MatchString(f.TypeIdentifier(node))
}

func (f DefaultFacts) StaticLength(node *Node) (*big.Int, error) {
	typeIdentifier := f.TypeIdentifier(node)

	match := staticLengthPattern.FindStringSubmatch(typeIdentifier)
	if match == nil {
		return nil, FactError{
			Fact:           "static length",
			TypeIdentifier: typeIdentifier,
			Message:        "not a static array",
		}
	}

	length, ok := new(big.Int).SetString(match[1], 10)
	if !ok {
		return nil, FactError{
			Fact:           "static length",
			TypeIdentifier: typeIdentifier,
			Message:        fmt.Sprintf("invalid length %q", match[1]),
		}
	}
	return length, nil
}

func (f DefaultFacts) ReferenceLocation(node *Node) common.Location {
	match := referenceLocationPattern.FindStringSubmatch(f.TypeIdentifier(node))
	if match == nil {
		return common.LocationNone
	}
	location, _ := common.LocationFromName(match[1])
	return location
}

func (f DefaultFacts) BaseDefinition(node *Node) (*Node, error) {
	if node.TypeName != nil && node.TypeName.BaseType != nil {
		return node.TypeName.BaseType, nil
	}
	if node.BaseType != nil {
		return node.BaseType, nil
	}

	// synthesize the base type's definition from the type identifier,
	// greedily matching everything between the first and the last dollar sign
	typeIdentifier := f.TypeIdentifier(node)
	match := arrayBaseIdentifierPattern.FindStringSubmatch(typeIdentifier)
	if match == nil {
		return nil, FactError{
			Fact:           "base type",
			TypeIdentifier: typeIdentifier,
			Message:        "not an array",
		}
	}

	baseIdentifier := match[1]
	// references nested in arrays are pointers
	if pointerlessLocationPattern.MatchString(baseIdentifier) {
		baseIdentifier += "_ptr"
	}

	var baseTypeString string
	typeStringMatch := arrayBaseTypeStringPattern.FindStringSubmatch(f.TypeStringWithoutLocation(node))
	if typeStringMatch != nil {
		baseTypeString = typeStringMatch[1]
	}

	return syntheticNode(baseIdentifier, baseTypeString), nil
}

func (f DefaultFacts) KeyDefinition(node *Node) (*Node, error) {
	if node.KeyType != nil {
		return node.KeyType, nil
	}
	if node.TypeName != nil && node.TypeName.KeyType != nil {
		return node.TypeName.KeyType, nil
	}

	typeIdentifier := f.TypeIdentifier(node)
	match := mappingKeyIdentifierPattern.FindStringSubmatch(typeIdentifier)
	if match == nil {
		return nil, FactError{
			Fact:           "key type",
			TypeIdentifier: typeIdentifier,
			Message:        "not a mapping",
		}
	}

	var keyTypeString string
	typeStringMatch := mappingKeyTypeStringPattern.FindStringSubmatch(f.TypeStringWithoutLocation(node))
	if typeStringMatch != nil {
		keyTypeString = typeStringMatch[1]
	}

	return syntheticNode(match[1], keyTypeString), nil
}

func (f DefaultFacts) ValueDefinition(node *Node) (*Node, error) {
	if node.ValueType != nil {
		return node.ValueType, nil
	}
	if node.TypeName != nil && node.TypeName.ValueType != nil {
		return node.TypeName.ValueType, nil
	}

	typeIdentifier := f.TypeIdentifier(node)
	match := mappingValueIdentifierPattern.FindStringSubmatch(typeIdentifier)
	if match == nil {
		return nil, FactError{
			Fact:           "value type",
			TypeIdentifier: typeIdentifier,
			Message:        "not a mapping",
		}
	}

	valueIdentifier := match[1]
	// mapping values always live in storage
	if strings.HasSuffix(valueIdentifier, "_storage") {
		valueIdentifier += "_ptr"
	}

	var valueTypeString string
	typeStringMatch := mappingValueTypeString.FindStringSubmatch(f.TypeStringWithoutLocation(node))
	if typeStringMatch != nil {
		valueTypeString = typeStringMatch[1]
	}

	return syntheticNode(valueIdentifier, valueTypeString), nil
}

func syntheticNode(typeIdentifier string, typeString string) *Node {
	return &Node{
		ID: SyntheticNodeID,
		TypeDescriptions: &TypeDescriptions{
			TypeIdentifier: typeIdentifier,
			TypeString:     typeString,
		},
	}
}

// functionTypeNode returns the FunctionTypeName node of a variable declaration,
// or the node itself.
func functionTypeNode(node *Node) *Node {
	if node.TypeName != nil {
		return node.TypeName
	}
	return node
}

func (DefaultFacts) Visibility(node *Node) common.Visibility {
	return common.VisibilityFromName(functionTypeNode(node).Visibility)
}

func (DefaultFacts) Mutability(node *Node) common.Mutability {
	node = functionTypeNode(node)

	switch {
	case node.StateMutability != "":
		return common.MutabilityFromName(node.StateMutability)
	// compilers before 0.4.16 state mutability with flags
	case node.Constant:
		return common.MutabilityView
	case node.Payable:
		return common.MutabilityPayable
	default:
		return common.MutabilityNonpayable
	}
}

func (f DefaultFacts) Parameters(node *Node) (inputs []*Node, outputs []*Node, err error) {
	functionType := functionTypeNode(node)

	if functionType.ParameterTypes == nil || functionType.ReturnParameterTypes == nil {
		return nil, nil, FactError{
			Fact:           "parameters",
			TypeIdentifier: f.TypeIdentifier(node),
			Message:        "missing parameter lists",
		}
	}

	return functionType.ParameterTypes.Parameters,
		functionType.ReturnParameterTypes.Parameters,
		nil
}

func (f DefaultFacts) TypeID(node *Node) (int, error) {
	typeIdentifier := f.TypeIdentifier(node)

	match := typeIDPattern.FindStringSubmatch(typeIdentifier)
	if match != nil {
		id, err := strconv.Atoi(match[1])
		if err == nil {
			return id, nil
		}
	}

	// fall back to the referenced declaration of the type name
	switch {
	case node.ReferencedDeclaration != 0:
		return node.ReferencedDeclaration, nil
	case node.TypeName != nil && node.TypeName.ReferencedDeclaration != 0:
		return node.TypeName.ReferencedDeclaration, nil
	}

	return 0, FactError{
		Fact:           "declaration id",
		TypeIdentifier: typeIdentifier,
		Message:        "not a user-defined type",
	}
}

func (f DefaultFacts) ContractKind(node *Node) common.ContractKind {
	kind, _, _ := strings.Cut(f.TypeString(node), " ")
	return common.ContractKindFromName(kind)
}

func (f DefaultFacts) ContractTypeName(node *Node) string {
	typeName := node
	if node.TypeName != nil {
		typeName = node.TypeName
	}

	if typeName.NodeType == NodeTypeUserDefinedTypeName {
		if typeName.Name != "" {
			return typeName.Name
		}
		if typeName.PathNode != nil {
			return typeName.PathNode.Name
		}
	}

	// e.g. "contract C"
	_, name, _ := strings.Cut(f.TypeString(node), " ")
	return name
}

func (DefaultFacts) IsContractPayable(node *Node) bool {
	for _, child := range node.Nodes {
		if child == nil || child.NodeType != NodeTypeFunctionDefinition {
			continue
		}

		var isFallbackOrReceive bool
		switch child.Kind {
		case FunctionKindFallback, FunctionKindReceive:
			isFallbackOrReceive = true
		case "":
			// compilers before 0.6.0 declare the fallback function
			// as an unnamed function
			isFallbackOrReceive = child.Name == ""
		}

		isPayable := child.StateMutability == common.MutabilityPayable.Name() ||
			child.Payable

		if isFallbackOrReceive && isPayable {
			return true
		}
	}

	return false
}
