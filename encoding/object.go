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

package encoding

import (
	"github.com/kingjbbrooks/truffle/common"
	"github.com/kingjbbrooks/truffle/errors"
	"github.com/kingjbbrooks/truffle/format"
)

// Object is the serialisable form of a type descriptor,
// one of the *Object types of this package.
type Object any

const (
	KindGeneral  = "general"
	KindSpecific = "specific"
	KindStatic   = "static"
	KindDynamic  = "dynamic"
	KindLocal    = "local"
	KindNative   = "native"
)

type SimpleObject struct {
	TypeClass string `json:"typeClass"`
	Kind      string `json:"kind,omitempty"`
	TypeHint  string `json:"typeHint,omitempty"`
}

type AddressObject struct {
	TypeClass string `json:"typeClass"`
	Kind      string `json:"kind"`
	Payable   bool   `json:"payable"`
	TypeHint  string `json:"typeHint,omitempty"`
}

type IntegerObject struct {
	TypeClass string `json:"typeClass"`
	Bits      int    `json:"bits"`
	TypeHint  string `json:"typeHint,omitempty"`
}

type FixedPointObject struct {
	TypeClass string `json:"typeClass"`
	Bits      int    `json:"bits"`
	Places    int    `json:"places"`
	TypeHint  string `json:"typeHint,omitempty"`
}

// LocatedObject is the form of strings and dynamic byte arrays.
type LocatedObject struct {
	TypeClass string `json:"typeClass"`
	Kind      string `json:"kind,omitempty"`
	Location  string `json:"location,omitempty"`
	TypeHint  string `json:"typeHint,omitempty"`
}

type BytesStaticObject struct {
	TypeClass string `json:"typeClass"`
	Kind      string `json:"kind"`
	Length    int    `json:"length"`
	TypeHint  string `json:"typeHint,omitempty"`
}

type ArrayObject struct {
	TypeClass string `json:"typeClass"`
	Kind      string `json:"kind"`
	BaseType  Object `json:"baseType"`
	// Length is the decimal length of a static array.
	Length   string `json:"length,omitempty"`
	Location string `json:"location,omitempty"`
	TypeHint string `json:"typeHint,omitempty"`
}

type MappingObject struct {
	TypeClass string `json:"typeClass"`
	KeyType   Object `json:"keyType"`
	ValueType Object `json:"valueType"`
	Location  string `json:"location,omitempty"`
	TypeHint  string `json:"typeHint,omitempty"`
}

type FunctionObject struct {
	TypeClass            string   `json:"typeClass"`
	Visibility           string   `json:"visibility"`
	Kind                 string   `json:"kind,omitempty"`
	Mutability           string   `json:"mutability"`
	InputParameterTypes  []Object `json:"inputParameterTypes"`
	OutputParameterTypes []Object `json:"outputParameterTypes"`
	TypeHint             string   `json:"typeHint,omitempty"`
}

type FunctionGeneralObject struct {
	TypeClass  string `json:"typeClass"`
	Visibility string `json:"visibility"`
	Kind       string `json:"kind"`
	TypeHint   string `json:"typeHint,omitempty"`
}

// UserDefinedObject is the form of references to structs, enums, and contracts.
type UserDefinedObject struct {
	TypeClass            string `json:"typeClass"`
	Kind                 string `json:"kind"`
	ID                   string `json:"id"`
	TypeName             string `json:"typeName"`
	DefiningContractName string `json:"definingContractName,omitempty"`
	ContractKind         string `json:"contractKind,omitempty"`
	Location             string `json:"location,omitempty"`
	TypeHint             string `json:"typeHint,omitempty"`
}

type MagicObject struct {
	TypeClass string `json:"typeClass"`
	Variable  string `json:"variable"`
}

type MemberObject struct {
	Name string `json:"name,omitempty"`
	Type Object `json:"type"`
}

type TupleObject struct {
	TypeClass   string         `json:"typeClass"`
	MemberTypes []MemberObject `json:"memberTypes"`
	TypeHint    string         `json:"typeHint,omitempty"`
}

type StoredStructObject struct {
	TypeClass            string                `json:"typeClass"`
	Kind                 string                `json:"kind"`
	ID                   string                `json:"id"`
	TypeName             string                `json:"typeName"`
	DefiningContractName string                `json:"definingContractName"`
	DefiningContract     *StoredContractObject `json:"definingContract,omitempty"`
	MemberTypes          []MemberObject        `json:"memberTypes"`
}

type StoredEnumObject struct {
	TypeClass            string                `json:"typeClass"`
	Kind                 string                `json:"kind"`
	ID                   string                `json:"id"`
	TypeName             string                `json:"typeName"`
	DefiningContractName string                `json:"definingContractName"`
	DefiningContract     *StoredContractObject `json:"definingContract,omitempty"`
	Options              []string              `json:"options"`
}

type StoredContractObject struct {
	TypeClass    string `json:"typeClass"`
	Kind         string `json:"kind"`
	ID           string `json:"id"`
	TypeName     string `json:"typeName"`
	ContractKind string `json:"contractKind"`
	Payable      bool   `json:"payable"`
}

// Prepare returns the serialisable form of the given type descriptor.
//
// Prepare panics if the descriptor is not a known variant.
func Prepare(ty format.Type) Object {
	typeClass := ty.TypeClass().Name()

	switch ty := ty.(type) {
	case *format.BoolType:
		return SimpleObject{
			TypeClass: typeClass,
			TypeHint:  ty.TypeHint,
		}

	case *format.AddressGeneralType:
		return SimpleObject{
			TypeClass: typeClass,
			Kind:      KindGeneral,
			TypeHint:  ty.TypeHint,
		}

	case *format.AddressSpecificType:
		return AddressObject{
			TypeClass: typeClass,
			Kind:      KindSpecific,
			Payable:   ty.Payable,
			TypeHint:  ty.TypeHint,
		}

	case *format.UintType:
		return IntegerObject{
			TypeClass: typeClass,
			Bits:      ty.Bits,
			TypeHint:  ty.TypeHint,
		}

	case *format.IntType:
		return IntegerObject{
			TypeClass: typeClass,
			Bits:      ty.Bits,
			TypeHint:  ty.TypeHint,
		}

	case *format.FixedType:
		return FixedPointObject{
			TypeClass: typeClass,
			Bits:      ty.Bits,
			Places:    ty.Places,
			TypeHint:  ty.TypeHint,
		}

	case *format.UfixedType:
		return FixedPointObject{
			TypeClass: typeClass,
			Bits:      ty.Bits,
			Places:    ty.Places,
			TypeHint:  ty.TypeHint,
		}

	case *format.StringType:
		return LocatedObject{
			TypeClass: typeClass,
			Location:  ty.Location.Name(),
			TypeHint:  ty.TypeHint,
		}

	case *format.BytesStaticType:
		return BytesStaticObject{
			TypeClass: typeClass,
			Kind:      KindStatic,
			Length:    ty.Length,
			TypeHint:  ty.TypeHint,
		}

	case *format.BytesDynamicType:
		return LocatedObject{
			TypeClass: typeClass,
			Kind:      KindDynamic,
			Location:  ty.Location.Name(),
			TypeHint:  ty.TypeHint,
		}

	case *format.ArrayStaticType:
		return ArrayObject{
			TypeClass: typeClass,
			Kind:      KindStatic,
			BaseType:  Prepare(ty.BaseType),
			Length:    ty.Length.String(),
			Location:  ty.Location.Name(),
			TypeHint:  ty.TypeHint,
		}

	case *format.ArrayDynamicType:
		return ArrayObject{
			TypeClass: typeClass,
			Kind:      KindDynamic,
			BaseType:  Prepare(ty.BaseType),
			Location:  ty.Location.Name(),
			TypeHint:  ty.TypeHint,
		}

	case *format.MappingType:
		return MappingObject{
			TypeClass: typeClass,
			KeyType:   Prepare(ty.KeyType),
			ValueType: Prepare(ty.ValueType),
			Location:  ty.Location.Name(),
			TypeHint:  ty.TypeHint,
		}

	case *format.FunctionInternalType:
		return FunctionObject{
			TypeClass:            typeClass,
			Visibility:           common.VisibilityInternal.Name(),
			Mutability:           ty.Mutability.Name(),
			InputParameterTypes:  prepareAll(ty.InputParameterTypes),
			OutputParameterTypes: prepareAll(ty.OutputParameterTypes),
			TypeHint:             ty.TypeHint,
		}

	case *format.FunctionExternalSpecificType:
		return FunctionObject{
			TypeClass:            typeClass,
			Visibility:           common.VisibilityExternal.Name(),
			Kind:                 KindSpecific,
			Mutability:           ty.Mutability.Name(),
			InputParameterTypes:  prepareAll(ty.InputParameterTypes),
			OutputParameterTypes: prepareAll(ty.OutputParameterTypes),
			TypeHint:             ty.TypeHint,
		}

	case *format.FunctionExternalGeneralType:
		return FunctionGeneralObject{
			TypeClass:  typeClass,
			Visibility: common.VisibilityExternal.Name(),
			Kind:       KindGeneral,
			TypeHint:   ty.TypeHint,
		}

	case *format.StructType:
		return UserDefinedObject{
			TypeClass:            typeClass,
			Kind:                 KindLocal,
			ID:                   ty.ID,
			TypeName:             ty.TypeName,
			DefiningContractName: ty.DefiningContractName,
			Location:             ty.Location.Name(),
			TypeHint:             ty.TypeHint,
		}

	case *format.EnumType:
		return UserDefinedObject{
			TypeClass:            typeClass,
			Kind:                 KindLocal,
			ID:                   ty.ID,
			TypeName:             ty.TypeName,
			DefiningContractName: ty.DefiningContractName,
			TypeHint:             ty.TypeHint,
		}

	case *format.ContractType:
		return UserDefinedObject{
			TypeClass:    typeClass,
			Kind:         KindNative,
			ID:           ty.ID,
			TypeName:     ty.TypeName,
			ContractKind: ty.ContractKind.Name(),
			TypeHint:     ty.TypeHint,
		}

	case *format.MagicType:
		return MagicObject{
			TypeClass: typeClass,
			Variable:  ty.Variable,
		}

	case *format.TupleType:
		memberTypes := make([]MemberObject, len(ty.MemberTypes))
		for i, member := range ty.MemberTypes {
			memberTypes[i] = MemberObject{
				Name: member.Name,
				Type: Prepare(member.Type),
			}
		}
		return TupleObject{
			TypeClass:   typeClass,
			MemberTypes: memberTypes,
			TypeHint:    ty.TypeHint,
		}

	case *format.StoredStructType:
		memberTypes := make([]MemberObject, len(ty.MemberTypes))
		for i, member := range ty.MemberTypes {
			memberTypes[i] = MemberObject{
				Name: member.Name,
				Type: Prepare(member.Type),
			}
		}
		return StoredStructObject{
			TypeClass:            typeClass,
			Kind:                 KindLocal,
			ID:                   ty.ID,
			TypeName:             ty.TypeName,
			DefiningContractName: ty.DefiningContractName,
			DefiningContract:     prepareDefiningContract(ty.DefiningContract),
			MemberTypes:          memberTypes,
		}

	case *format.StoredEnumType:
		return StoredEnumObject{
			TypeClass:            typeClass,
			Kind:                 KindLocal,
			ID:                   ty.ID,
			TypeName:             ty.TypeName,
			DefiningContractName: ty.DefiningContractName,
			DefiningContract:     prepareDefiningContract(ty.DefiningContract),
			Options:              ty.Options,
		}

	case *format.StoredContractType:
		return prepareStoredContract(ty)
	}

	panic(errors.NewUnexpectedError("unsupported type: %T", ty))
}

func prepareAll(types []format.Type) []Object {
	objects := make([]Object, len(types))
	for i, ty := range types {
		objects[i] = Prepare(ty)
	}
	return objects
}

func prepareStoredContract(ty *format.StoredContractType) StoredContractObject {
	return StoredContractObject{
		TypeClass:    ty.TypeClass().Name(),
		Kind:         KindNative,
		ID:           ty.ID,
		TypeName:     ty.TypeName,
		ContractKind: ty.ContractKind.Name(),
		Payable:      ty.Payable,
	}
}

func prepareDefiningContract(ty *format.StoredContractType) *StoredContractObject {
	if ty == nil {
		return nil
	}
	object := prepareStoredContract(ty)
	return &object
}
