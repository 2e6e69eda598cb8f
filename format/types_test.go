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

package format

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingjbbrooks/truffle/common"
)

func TestType_String(t *testing.T) {

	t.Parallel()

	type testCase struct {
		name     string
		ty       Type
		expected string
	}

	length := new(big.Int).Lsh(big.NewInt(1), 200)

	stringsArray := NewArrayDynamicType(
		NewStringType(common.LocationNone, ""),
		common.LocationMemory,
		"",
	)

	tests := []testCase{
		{name: "bool", ty: NewBoolType(""), expected: "bool"},
		{name: "address general", ty: NewAddressGeneralType(""), expected: "address"},
		{name: "address", ty: NewAddressSpecificType(false, ""), expected: "address"},
		{name: "address payable", ty: NewAddressSpecificType(true, ""), expected: "address payable"},
		{name: "uint", ty: NewUintType(256, ""), expected: "uint256"},
		{name: "int", ty: NewIntType(8, ""), expected: "int8"},
		{name: "fixed", ty: NewFixedType(128, 18, ""), expected: "fixed128x18"},
		{name: "ufixed", ty: NewUfixedType(8, 0, ""), expected: "ufixed8x0"},
		{name: "string", ty: NewStringType(common.LocationNone, ""), expected: "string"},
		{name: "string storage", ty: NewStringType(common.LocationStorage, ""), expected: "string storage"},
		{name: "bytes static", ty: NewBytesStaticType(32, ""), expected: "bytes32"},
		{name: "bytes calldata", ty: NewBytesDynamicType(common.LocationCalldata, ""), expected: "bytes calldata"},
		{
			name: "static array",
			ty: NewArrayStaticType(
				NewUintType(256, ""),
				big.NewInt(3),
				common.LocationStorage,
				"",
			),
			expected: "uint256[3] storage",
		},
		{
			name: "large static array",
			ty: NewArrayStaticType(
				NewBoolType(""),
				length,
				common.LocationNone,
				"",
			),
			expected: "bool[" + length.String() + "]",
		},
		{name: "dynamic array", ty: stringsArray, expected: "string[] memory"},
		{
			name: "mapping",
			ty: NewMappingType(
				NewAddressSpecificType(false, ""),
				NewArrayStaticType(
					NewUintType(256, ""),
					big.NewInt(3),
					common.LocationStorage,
					"",
				),
				common.LocationStorage,
				"",
			),
			expected: "mapping(address => uint256[3] storage) storage",
		},
		{
			name: "internal function",
			ty: NewFunctionInternalType(
				common.MutabilityPure,
				[]Type{NewUintType(256, ""), NewBoolType("")},
				[]Type{NewBoolType("")},
				"",
			),
			expected: "function (uint256, bool) pure internal returns (bool)",
		},
		{
			name: "external function",
			ty: NewFunctionExternalSpecificType(
				common.MutabilityNonpayable,
				nil,
				nil,
				"",
			),
			expected: "function () external",
		},
		{name: "external general function", ty: NewFunctionExternalGeneralType(""), expected: "function external"},
		{
			name:     "struct",
			ty:       NewStructType("3", "S", "C", common.LocationMemory, ""),
			expected: "struct C.S memory",
		},
		{name: "enum", ty: NewEnumType("4", "E", "C", ""), expected: "enum C.E"},
		{name: "contract", ty: NewContractType("10", "C", common.ContractKindContract, ""), expected: "contract C"},
		{name: "library", ty: NewContractType("11", "L", common.ContractKindLibrary, ""), expected: "library L"},
		{name: "magic message", ty: NewMagicType("message"), expected: "msg"},
		{name: "magic block", ty: NewMagicType("block"), expected: "block"},
		{
			name: "tuple",
			ty: NewTupleType(
				[]OptionallyNamedType{
					{Type: NewBoolType("")},
					{Name: "x", Type: NewUintType(8, "")},
				},
				"",
			),
			expected: "tuple(bool, uint8 x)",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {

			t.Parallel()

			assert.Equal(t, test.expected, test.ty.String())
		})
	}
}

func TestFunctionType_StringWrapsParameters(t *testing.T) {

	t.Parallel()

	inputs := make([]Type, 12)
	for i := range inputs {
		inputs[i] = NewUintType(256, "")
	}

	ty := NewFunctionExternalSpecificType(
		common.MutabilityView,
		inputs,
		[]Type{NewBoolType("")},
		"",
	)

	lines := strings.Split(ty.String(), "\n")
	require.Greater(t, len(lines), 1)
	assert.Equal(t, "function (", lines[0])
	assert.Equal(t, "    uint256,", lines[1])
}

func TestStoredType_String(t *testing.T) {

	t.Parallel()

	t.Run("struct", func(t *testing.T) {

		t.Parallel()

		ty := &StoredStructType{
			ID:                   "3",
			TypeName:             "S",
			DefiningContractName: "C",
			MemberTypes: []NameTypePair{
				{Name: "a", Type: NewUintType(256, "")},
				{Name: "b", Type: NewBoolType("")},
			},
		}

		assert.Equal(t,
			"struct C.S {\n"+
				"    uint256 a;\n"+
				"    bool b;\n"+
				"}",
			ty.String(),
		)
	})

	t.Run("empty struct", func(t *testing.T) {

		t.Parallel()

		ty := &StoredStructType{
			ID:                   "3",
			TypeName:             "S",
			DefiningContractName: "C",
		}

		assert.Equal(t, "struct C.S {}", ty.String())
	})

	t.Run("enum", func(t *testing.T) {

		t.Parallel()

		ty := &StoredEnumType{
			ID:                   "4",
			TypeName:             "E",
			DefiningContractName: "C",
			Options:              []string{"A", "B"},
		}

		assert.Equal(t, "enum C.E { A, B }", ty.String())
	})

	t.Run("contract", func(t *testing.T) {

		t.Parallel()

		ty := &StoredContractType{
			ID:           "10",
			TypeName:     "Token",
			ContractKind: common.ContractKindInterface,
		}

		assert.Equal(t, "interface Token", ty.String())
	})
}

func TestType_Equal(t *testing.T) {

	t.Parallel()

	t.Run("elementary", func(t *testing.T) {

		t.Parallel()

		assert.True(t, NewUintType(256, "uint256").Equal(NewUintType(256, "uint256")))
		assert.False(t, NewUintType(256, "").Equal(NewUintType(128, "")))
		assert.False(t, NewUintType(256, "").Equal(NewIntType(256, "")))
		assert.False(t, NewAddressSpecificType(true, "").Equal(NewAddressSpecificType(false, "")))
		assert.False(t, NewAddressGeneralType("").Equal(NewAddressSpecificType(false, "")))
		assert.False(t, NewStringType(common.LocationMemory, "").Equal(NewStringType(common.LocationNone, "")))
	})

	t.Run("static array lengths compare by value", func(t *testing.T) {

		t.Parallel()

		a := NewArrayStaticType(NewBoolType(""), big.NewInt(3), common.LocationNone, "")
		b := NewArrayStaticType(NewBoolType(""), new(big.Int).SetUint64(3), common.LocationNone, "")
		c := NewArrayStaticType(NewBoolType(""), big.NewInt(4), common.LocationNone, "")

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
		assert.False(t, a.Equal(NewArrayDynamicType(NewBoolType(""), common.LocationNone, "")))
	})

	t.Run("mapping", func(t *testing.T) {

		t.Parallel()

		a := NewMappingType(NewEnumType("4", "E", "C", ""), NewBoolType(""), common.LocationStorage, "")
		b := NewMappingType(NewEnumType("4", "E", "C", ""), NewBoolType(""), common.LocationStorage, "")
		c := NewMappingType(NewEnumType("5", "F", "C", ""), NewBoolType(""), common.LocationStorage, "")

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})

	t.Run("functions", func(t *testing.T) {

		t.Parallel()

		internal := NewFunctionInternalType(common.MutabilityView, []Type{NewBoolType("")}, nil, "")
		external := NewFunctionExternalSpecificType(common.MutabilityView, []Type{NewBoolType("")}, nil, "")

		assert.True(t, internal.Equal(NewFunctionInternalType(common.MutabilityView, []Type{NewBoolType("")}, nil, "")))
		assert.False(t, internal.Equal(external))
		assert.False(t, internal.Equal(NewFunctionInternalType(common.MutabilityPure, []Type{NewBoolType("")}, nil, "")))
		assert.False(t, internal.Equal(NewFunctionInternalType(common.MutabilityView, nil, nil, "")))
	})

	t.Run("tuples", func(t *testing.T) {

		t.Parallel()

		a := NewTupleType([]OptionallyNamedType{{Name: "x", Type: NewBoolType("")}}, "")
		b := NewTupleType([]OptionallyNamedType{{Name: "x", Type: NewBoolType("")}}, "")
		c := NewTupleType([]OptionallyNamedType{{Type: NewBoolType("")}}, "")

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})

	t.Run("stored", func(t *testing.T) {

		t.Parallel()

		contract := &StoredContractType{ID: "10", TypeName: "C", ContractKind: common.ContractKindContract}

		withContract := &StoredEnumType{
			ID:                   "4",
			TypeName:             "E",
			DefiningContractName: "C",
			DefiningContract:     contract,
			Options:              []string{"A"},
		}
		withoutContract := &StoredEnumType{
			ID:                   "4",
			TypeName:             "E",
			DefiningContractName: "C",
			Options:              []string{"A"},
		}

		assert.True(t, withContract.Equal(withContract))
		assert.False(t, withContract.Equal(withoutContract))
		assert.False(t, withContract.Equal(withContract.Reference()))
	})
}

func TestStoredType_Reference(t *testing.T) {

	t.Parallel()

	structType := &StoredStructType{
		ID:                   "3",
		TypeName:             "S",
		DefiningContractName: "C",
	}
	assert.Equal(t,
		NewStructType("3", "S", "C", common.LocationStorage, ""),
		structType.Reference(common.LocationStorage),
	)

	contractType := &StoredContractType{
		ID:           "10",
		TypeName:     "C",
		ContractKind: common.ContractKindLibrary,
		Payable:      true,
	}
	assert.Equal(t,
		NewContractType("10", "C", common.ContractKindLibrary, ""),
		contractType.Reference(),
	)
}

func TestType_TypeClass(t *testing.T) {

	t.Parallel()

	tests := map[common.TypeClass][]Type{
		common.TypeClassBool:     {NewBoolType("")},
		common.TypeClassAddress:  {NewAddressGeneralType(""), NewAddressSpecificType(true, "")},
		common.TypeClassBytes:    {NewBytesStaticType(1, ""), NewBytesDynamicType(common.LocationNone, "")},
		common.TypeClassArray:    {NewArrayDynamicType(NewBoolType(""), common.LocationNone, "")},
		common.TypeClassFunction: {NewFunctionExternalGeneralType("")},
		common.TypeClassStruct:   {NewStructType("1", "S", "C", common.LocationNone, ""), &StoredStructType{}},
		common.TypeClassEnum:     {NewEnumType("1", "E", "C", ""), &StoredEnumType{}},
		common.TypeClassContract: {NewContractType("1", "C", common.ContractKindContract, ""), &StoredContractType{}},
		common.TypeClassMagic:    {NewMagicType("block")},
		common.TypeClassTuple:    {NewTupleType(nil, "")},
	}

	for typeClass, types := range tests {
		for _, ty := range types {
			assert.Equal(t, typeClass, ty.TypeClass(), ty.String())
		}
	}
}
