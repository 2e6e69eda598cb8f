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

package cbor

import (
	"math/big"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingjbbrooks/truffle/common"
	"github.com/kingjbbrooks/truffle/format"
)

func TestEncode(t *testing.T) {

	t.Parallel()

	ty := format.NewArrayStaticType(
		format.NewTupleType(
			[]format.OptionallyNamedType{
				{Name: "amount", Type: format.NewUintType(256, "uint256")},
				{Type: format.NewAddressGeneralType("address")},
			},
			"struct Market.Order",
		),
		big.NewInt(3),
		common.LocationNone,
		"struct Market.Order[3]",
	)

	data, err := Encode(ty)
	require.NoError(t, err)

	var decoded map[string]any
	err = cbor.Unmarshal(data, &decoded)
	require.NoError(t, err)

	assert.Equal(t, "array", decoded["typeClass"])
	assert.Equal(t, "static", decoded["kind"])
	assert.Equal(t, "3", decoded["length"])
	assert.Equal(t, "struct Market.Order[3]", decoded["typeHint"])
	assert.NotContains(t, decoded, "location")

	baseType, ok := decoded["baseType"].(map[any]any)
	require.True(t, ok)
	assert.Equal(t, "tuple", baseType["typeClass"])

	memberTypes, ok := baseType["memberTypes"].([]any)
	require.True(t, ok)
	require.Len(t, memberTypes, 2)
}

func TestEncodeDeterministic(t *testing.T) {

	t.Parallel()

	ty := &format.StoredStructType{
		ID:                   "3",
		TypeName:             "Order",
		DefiningContractName: "Market",
		MemberTypes: []format.NameTypePair{
			{Name: "amount", Type: format.NewUintType(256, "uint256")},
			{Name: "side", Type: format.NewEnumType("9", "Side", "Market", "enum Market.Side")},
		},
	}

	first := MustEncode(ty)

	for i := 0; i < 10; i++ {
		data, err := Codec{}.Encode(ty)
		require.NoError(t, err)
		assert.Equal(t, first, data)
	}

	require.NoError(t, cbor.Wellformed(first))
}

func TestEncodeInvalid(t *testing.T) {

	t.Parallel()

	_, err := Encode(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode type")
}
