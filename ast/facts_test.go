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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingjbbrooks/truffle/common"
)

func typed(typeIdentifier string, typeString string) *Node {
	return &Node{
		ID:       1,
		NodeType: NodeTypeVariableDeclaration,
		TypeDescriptions: &TypeDescriptions{
			TypeIdentifier: typeIdentifier,
			TypeString:     typeString,
		},
	}
}

func TestDefaultFactsTypeClass(t *testing.T) {

	t.Parallel()

	tests := map[string]common.TypeClass{
		"t_bool":                                  common.TypeClassBool,
		"t_address":                               common.TypeClassAddress,
		"t_address_payable":                       common.TypeClassAddress,
		"t_uint256":                               common.TypeClassUint,
		"t_int8":                                  common.TypeClassInt,
		"t_fixed128x18":                           common.TypeClassFixed,
		"t_ufixed8x0":                             common.TypeClassUfixed,
		"t_string_memory_ptr":                     common.TypeClassString,
		"t_bytes32":                               common.TypeClassBytes,
		"t_bytes_storage":                         common.TypeClassBytes,
		"t_array$_t_uint256_$dyn_storage":         common.TypeClassArray,
		"t_mapping$_t_address_$_t_uint256_$":      common.TypeClassMapping,
		"t_function_internal_pure$__$returns$__$": common.TypeClassFunction,
		"t_struct$_S_$3_storage_ptr":              common.TypeClassStruct,
		"t_enum$_E_$4":                            common.TypeClassEnum,
		"t_contract$_C_$10":                       common.TypeClassContract,
		"t_magic_message":                         common.TypeClassMagic,
		"t_tuple$_t_uint256_$_t_bool_$":           common.TypeClassTuple,
		"t_rational_1_by_1":                       common.TypeClassUnknown,
		"t_userDefinedValueType$_Price_$5":        common.TypeClassUnknown,
		"":                                        common.TypeClassUnknown,
	}

	for typeIdentifier, expected := range tests {
		typeIdentifier := typeIdentifier
		expected := expected
		t.Run(typeIdentifier, func(t *testing.T) {

			t.Parallel()

			actual := DefaultFacts{}.TypeClass(typed(typeIdentifier, ""))
			assert.Equal(t, expected, actual)
		})
	}

	t.Run("missing type descriptions", func(t *testing.T) {

		t.Parallel()

		actual := DefaultFacts{}.TypeClass(&Node{ID: 1})
		assert.Equal(t, common.TypeClassUnknown, actual)
	})
}

func TestDefaultFactsSpecifiedSize(t *testing.T) {

	t.Parallel()

	type test struct {
		typeIdentifier string
		size           int
		specified      bool
	}

	tests := []test{
		{typeIdentifier: "t_uint256", size: 32, specified: true},
		{typeIdentifier: "t_uint48", size: 6, specified: true},
		{typeIdentifier: "t_int8", size: 1, specified: true},
		{typeIdentifier: "t_fixed128x18", size: 16, specified: true},
		{typeIdentifier: "t_ufixed256x80", size: 32, specified: true},
		{typeIdentifier: "t_bytes1", size: 1, specified: true},
		{typeIdentifier: "t_bytes32", size: 32, specified: true},
		{typeIdentifier: "t_bytes_memory_ptr", specified: false},
		{typeIdentifier: "t_string_storage", specified: false},
		{typeIdentifier: "t_bool", specified: false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.typeIdentifier, func(t *testing.T) {

			t.Parallel()

			size, specified, err := DefaultFacts{}.SpecifiedSize(typed(test.typeIdentifier, ""))
			require.NoError(t, err)
			assert.Equal(t, test.specified, specified)
			assert.Equal(t, test.size, size)
		})
	}

	t.Run("invalid bit width", func(t *testing.T) {

		t.Parallel()

		_, _, err := DefaultFacts{}.SpecifiedSize(typed("t_uint7", ""))
		require.Error(t, err)
		assert.IsType(t, FactError{}, err)
	})
}

func TestDefaultFactsDecimalPlaces(t *testing.T) {

	t.Parallel()

	places, err := DefaultFacts{}.DecimalPlaces(typed("t_fixed128x18", ""))
	require.NoError(t, err)
	assert.Equal(t, 18, places)

	places, err = DefaultFacts{}.DecimalPlaces(typed("t_ufixed8x0", ""))
	require.NoError(t, err)
	assert.Equal(t, 0, places)

	_, err = DefaultFacts{}.DecimalPlaces(typed("t_uint256", ""))
	require.Error(t, err)
}

func TestDefaultFactsArrays(t *testing.T) {

	t.Parallel()

	facts := DefaultFacts{}

	t.Run("dynamic", func(t *testing.T) {

		t.Parallel()

		node := typed("t_array$_t_uint256_$dyn_storage", "uint256[] storage ref")

		assert.True(t, facts.IsDynamicArray(node))
		assert.Equal(t, common.LocationStorage, facts.ReferenceLocation(node))

		base, err := facts.BaseDefinition(node)
		require.NoError(t, err)
		assert.Equal(t, SyntheticNodeID, base.ID)
		assert.Equal(t, "t_uint256", facts.TypeIdentifier(base))
		assert.Equal(t, "uint256", facts.TypeString(base))
	})

	t.Run("static", func(t *testing.T) {

		t.Parallel()

		node := typed("t_array$_t_bool_$3_memory_ptr", "bool[3] memory")

		assert.False(t, facts.IsDynamicArray(node))
		assert.Equal(t, common.LocationMemory, facts.ReferenceLocation(node))

		length, err := facts.StaticLength(node)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(3), length)
	})

	t.Run("large static length", func(t *testing.T) {

		t.Parallel()

		const digits = "1000000000000000000000000000000000000000"

		node := typed("t_array$_t_bool_$"+digits+"_storage", "bool["+digits+"] storage ref")

		length, err := facts.StaticLength(node)
		require.NoError(t, err)

		expected, ok := new(big.Int).SetString(digits, 10)
		require.True(t, ok)
		assert.Equal(t, 0, expected.Cmp(length))
	})

	t.Run("nested", func(t *testing.T) {

		t.Parallel()

		node := typed(
			"t_array$_t_array$_t_uint8_$dyn_memory_$3_memory_ptr",
			"uint8[] memory[3] memory",
		)

		assert.False(t, facts.IsDynamicArray(node))

		base, err := facts.BaseDefinition(node)
		require.NoError(t, err)
		assert.Equal(t, "t_array$_t_uint8_$dyn_memory_ptr", facts.TypeIdentifier(base))
		assert.Equal(t, "uint8[] memory", facts.TypeString(base))
		assert.True(t, facts.IsDynamicArray(base))
		assert.Equal(t, common.LocationMemory, facts.ReferenceLocation(base))
	})

	t.Run("struct base", func(t *testing.T) {

		t.Parallel()

		node := typed(
			"t_array$_t_struct$_S_$3_storage_$dyn_storage",
			"struct C.S storage ref[] storage ref",
		)

		base, err := facts.BaseDefinition(node)
		require.NoError(t, err)
		assert.Equal(t, "t_struct$_S_$3_storage_ptr", facts.TypeIdentifier(base))
		assert.Equal(t, "struct C.S storage ref", facts.TypeString(base))
		assert.Equal(t, "struct C.S", facts.TypeStringWithoutLocation(base))

		id, err := facts.TypeID(base)
		require.NoError(t, err)
		assert.Equal(t, 3, id)
	})

	t.Run("type name", func(t *testing.T) {

		t.Parallel()

		baseType := typed("t_uint256", "uint256")

		node := typed("t_array$_t_uint256_$dyn_storage", "uint256[] storage ref")
		node.TypeName = &Node{
			ID:       2,
			NodeType: NodeTypeArrayTypeName,
			BaseType: baseType,
		}

		base, err := facts.BaseDefinition(node)
		require.NoError(t, err)
		assert.Same(t, baseType, base)
	})

	t.Run("not an array", func(t *testing.T) {

		t.Parallel()

		_, err := facts.BaseDefinition(typed("t_uint256", "uint256"))
		require.Error(t, err)

		_, err = facts.StaticLength(typed("t_uint256", "uint256"))
		require.Error(t, err)

		assert.False(t, facts.IsDynamicArray(typed("t_bytes_memory_ptr", "bytes")))
	})
}

func TestDefaultFactsMappings(t *testing.T) {

	t.Parallel()

	facts := DefaultFacts{}

	t.Run("synthetic", func(t *testing.T) {

		t.Parallel()

		node := typed(
			"t_mapping$_t_address_$_t_mapping$_t_uint256_$_t_struct$_S_$3_storage_$_$",
			"mapping(address => mapping(uint256 => struct C.S))",
		)

		key, err := facts.KeyDefinition(node)
		require.NoError(t, err)
		assert.Equal(t, "t_address", facts.TypeIdentifier(key))
		assert.Equal(t, "address", facts.TypeString(key))

		value, err := facts.ValueDefinition(node)
		require.NoError(t, err)
		assert.Equal(t, "t_mapping$_t_uint256_$_t_struct$_S_$3_storage_$", facts.TypeIdentifier(value))
		assert.Equal(t, "mapping(uint256 => struct C.S)", facts.TypeString(value))

		innerValue, err := facts.ValueDefinition(value)
		require.NoError(t, err)
		assert.Equal(t, "t_struct$_S_$3_storage_ptr", facts.TypeIdentifier(innerValue))
		assert.Equal(t, "struct C.S", facts.TypeString(innerValue))
		assert.Equal(t, common.LocationStorage, facts.ReferenceLocation(innerValue))
	})

	t.Run("string key", func(t *testing.T) {

		t.Parallel()

		node := typed(
			"t_mapping$_t_string_memory_ptr_$_t_bool_$",
			"mapping(string => bool)",
		)

		key, err := facts.KeyDefinition(node)
		require.NoError(t, err)
		assert.Equal(t, "t_string_memory_ptr", facts.TypeIdentifier(key))
		assert.Equal(t, "string", facts.TypeString(key))

		value, err := facts.ValueDefinition(node)
		require.NoError(t, err)
		assert.Equal(t, "t_bool", facts.TypeIdentifier(value))
	})

	t.Run("type name", func(t *testing.T) {

		t.Parallel()

		keyType := typed("t_address", "address")
		valueType := typed("t_uint256", "uint256")

		node := typed("t_mapping$_t_address_$_t_uint256_$", "mapping(address => uint256)")
		node.TypeName = &Node{
			ID:        2,
			NodeType:  NodeTypeMapping,
			KeyType:   keyType,
			ValueType: valueType,
		}

		key, err := facts.KeyDefinition(node)
		require.NoError(t, err)
		assert.Same(t, keyType, key)

		value, err := facts.ValueDefinition(node)
		require.NoError(t, err)
		assert.Same(t, valueType, value)
	})

	t.Run("not a mapping", func(t *testing.T) {

		t.Parallel()

		_, err := facts.KeyDefinition(typed("t_bool", "bool"))
		require.Error(t, err)

		_, err = facts.ValueDefinition(typed("t_bool", "bool"))
		require.Error(t, err)
	})
}

func TestDefaultFactsReferenceLocation(t *testing.T) {

	t.Parallel()

	tests := map[string]common.Location{
		"t_string_storage":                   common.LocationStorage,
		"t_string_storage_ptr":               common.LocationStorage,
		"t_bytes_memory_ptr":                 common.LocationMemory,
		"t_bytes_calldata_ptr":               common.LocationCalldata,
		"t_array$_t_uint8_$dyn_calldata_ptr": common.LocationCalldata,
		"t_uint256":                          common.LocationNone,
		"t_mapping$_t_bool_$_t_bool_$":       common.LocationNone,
	}

	for typeIdentifier, expected := range tests {
		typeIdentifier := typeIdentifier
		expected := expected
		t.Run(typeIdentifier, func(t *testing.T) {

			t.Parallel()

			actual := DefaultFacts{}.ReferenceLocation(typed(typeIdentifier, ""))
			assert.Equal(t, expected, actual)
		})
	}
}

func TestDefaultFactsTypeStringWithoutLocation(t *testing.T) {

	t.Parallel()

	tests := map[string]string{
		"struct C.S storage ref":     "struct C.S",
		"struct C.S storage pointer": "struct C.S",
		"struct C.S memory":          "struct C.S",
		"bytes calldata slice":       "bytes",
		"string":                     "string",
		"uint256[] memory[] memory":  "uint256[] memory[]",
	}

	for typeString, expected := range tests {
		typeString := typeString
		expected := expected
		t.Run(typeString, func(t *testing.T) {

			t.Parallel()

			actual := DefaultFacts{}.TypeStringWithoutLocation(typed("", typeString))
			assert.Equal(t, expected, actual)
		})
	}
}

func TestDefaultFactsFunctions(t *testing.T) {

	t.Parallel()

	facts := DefaultFacts{}

	input := typed("t_uint256", "uint256")
	output := typed("t_bool", "bool")

	t.Run("variable declaration", func(t *testing.T) {

		t.Parallel()

		node := typed(
			"t_function_external_view$_t_uint256_$returns$_t_bool_$",
			"function (uint256) view external returns (bool)",
		)
		node.TypeName = &Node{
			ID:              2,
			NodeType:        NodeTypeFunctionTypeName,
			Visibility:      "external",
			StateMutability: "view",
			ParameterTypes: &Node{
				NodeType:   NodeTypeParameterList,
				Parameters: []*Node{input},
			},
			ReturnParameterTypes: &Node{
				NodeType:   NodeTypeParameterList,
				Parameters: []*Node{output},
			},
		}

		assert.Equal(t, common.VisibilityExternal, facts.Visibility(node))
		assert.Equal(t, common.MutabilityView, facts.Mutability(node))

		inputs, outputs, err := facts.Parameters(node)
		require.NoError(t, err)
		assert.Equal(t, []*Node{input}, inputs)
		assert.Equal(t, []*Node{output}, outputs)
	})

	t.Run("legacy mutability flags", func(t *testing.T) {

		t.Parallel()

		constant := &Node{NodeType: NodeTypeFunctionTypeName, Constant: true}
		assert.Equal(t, common.MutabilityView, facts.Mutability(constant))

		payable := &Node{NodeType: NodeTypeFunctionTypeName, Payable: true}
		assert.Equal(t, common.MutabilityPayable, facts.Mutability(payable))

		neither := &Node{NodeType: NodeTypeFunctionTypeName}
		assert.Equal(t, common.MutabilityNonpayable, facts.Mutability(neither))
	})

	t.Run("unknown visibility", func(t *testing.T) {

		t.Parallel()

		node := &Node{NodeType: NodeTypeFunctionTypeName, Visibility: "private"}
		assert.Equal(t, common.VisibilityUnknown, facts.Visibility(node))
	})

	t.Run("missing parameters", func(t *testing.T) {

		t.Parallel()

		_, _, err := facts.Parameters(typed("t_function_internal_pure$__$returns$__$", ""))
		require.Error(t, err)
	})
}

func TestDefaultFactsTypeID(t *testing.T) {

	t.Parallel()

	facts := DefaultFacts{}

	tests := map[string]int{
		"t_struct$_S_$3_storage_ptr": 3,
		"t_struct$_S_$12_memory_ptr": 12,
		"t_struct$_S_$7_storage":     7,
		"t_enum$_E_$4":               4,
		"t_contract$_C_$10":          10,
	}

	for typeIdentifier, expected := range tests {
		typeIdentifier := typeIdentifier
		expected := expected
		t.Run(typeIdentifier, func(t *testing.T) {

			t.Parallel()

			id, err := facts.TypeID(typed(typeIdentifier, ""))
			require.NoError(t, err)
			assert.Equal(t, expected, id)
		})
	}

	t.Run("referenced declaration", func(t *testing.T) {

		t.Parallel()

		node := typed("t_enum", "")
		node.TypeName = &Node{
			NodeType:              NodeTypeUserDefinedTypeName,
			ReferencedDeclaration: 9,
		}

		id, err := facts.TypeID(node)
		require.NoError(t, err)
		assert.Equal(t, 9, id)
	})

	t.Run("missing", func(t *testing.T) {

		t.Parallel()

		_, err := facts.TypeID(typed("t_uint256", "uint256"))
		require.Error(t, err)
	})
}

func TestDefaultFactsContracts(t *testing.T) {

	t.Parallel()

	facts := DefaultFacts{}

	t.Run("kind", func(t *testing.T) {

		t.Parallel()

		assert.Equal(t, common.ContractKindContract, facts.ContractKind(typed("t_contract$_C_$1", "contract C")))
		assert.Equal(t, common.ContractKindLibrary, facts.ContractKind(typed("t_contract$_L_$1", "library L")))
		assert.Equal(t, common.ContractKindInterface, facts.ContractKind(typed("t_contract$_I_$1", "interface I")))
		assert.Equal(t, common.ContractKindUnknown, facts.ContractKind(typed("t_contract$_C_$1", "")))
	})

	t.Run("type name", func(t *testing.T) {

		t.Parallel()

		node := typed("t_contract$_Token_$1", "contract Token")
		node.TypeName = &Node{
			NodeType: NodeTypeUserDefinedTypeName,
			PathNode: &Node{NodeType: NodeTypeIdentifierPath, Name: "Token"},
		}
		assert.Equal(t, "Token", facts.ContractTypeName(node))

		named := &Node{NodeType: NodeTypeUserDefinedTypeName, Name: "Token"}
		assert.Equal(t, "Token", facts.ContractTypeName(named))

		synthetic := syntheticNode("t_contract$_Token_$1", "contract Token")
		assert.Equal(t, "Token", facts.ContractTypeName(synthetic))
	})

	t.Run("payable", func(t *testing.T) {

		t.Parallel()

		tests := map[string]struct {
			function *Node
			payable  bool
		}{
			"receive": {
				function: &Node{
					NodeType:        NodeTypeFunctionDefinition,
					Kind:            FunctionKindReceive,
					StateMutability: "payable",
				},
				payable: true,
			},
			"payable fallback": {
				function: &Node{
					NodeType:        NodeTypeFunctionDefinition,
					Kind:            FunctionKindFallback,
					StateMutability: "payable",
				},
				payable: true,
			},
			"nonpayable fallback": {
				function: &Node{
					NodeType:        NodeTypeFunctionDefinition,
					Kind:            FunctionKindFallback,
					StateMutability: "nonpayable",
				},
				payable: false,
			},
			"legacy payable fallback": {
				function: &Node{
					NodeType: NodeTypeFunctionDefinition,
					Payable:  true,
				},
				payable: true,
			},
			"payable function": {
				function: &Node{
					NodeType:        NodeTypeFunctionDefinition,
					Kind:            FunctionKindFunction,
					Name:            "deposit",
					StateMutability: "payable",
				},
				payable: false,
			},
		}

		for name, test := range tests {
			test := test
			t.Run(name, func(t *testing.T) {

				t.Parallel()

				contract := &Node{
					ID:       1,
					NodeType: NodeTypeContractDefinition,
					Nodes:    []*Node{test.function},
				}

				assert.Equal(t, test.payable, facts.IsContractPayable(contract))
			})
		}

		empty := &Node{NodeType: NodeTypeContractDefinition}
		assert.False(t, facts.IsContractPayable(empty))
	})
}
