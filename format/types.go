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
	"fmt"
	"math/big"
	"strings"

	"github.com/turbolent/prettier"

	"github.com/kingjbbrooks/truffle/common"
)

// Type is a type descriptor.
//
// The set of implementations is closed:
// the concrete Go type determines which fields are present.
type Type interface {
	isType()
	TypeClass() common.TypeClass
	Equal(other Type) bool
	Doc() prettier.Doc
	String() string
}

// ElementaryType is a value type or a byte sequence.
type ElementaryType interface {
	MappingKeyType
	isElementaryType()
}

// MappingKeyType is a type which may be used as the key type of a mapping.
type MappingKeyType interface {
	Type
	isMappingKeyType()
}

const maxLineWidth = 80

// Prettier renders the type descriptor in a Solidity-like syntax.
func Prettier(t Type) string {
	var builder strings.Builder
	prettier.Prettier(&builder, t.Doc(), maxLineWidth, "    ")
	return builder.String()
}

func locationDoc(doc prettier.Doc, location common.Location) prettier.Doc {
	if location == common.LocationNone {
		return doc
	}
	return prettier.Concat{
		doc,
		prettier.Space,
		prettier.Text(location.Name()),
	}
}

var parameterSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

func parameterListDoc(parameterDocs []prettier.Doc) prettier.Doc {
	if len(parameterDocs) == 0 {
		return prettier.Text("()")
	}
	return prettier.WrapParentheses(
		prettier.Join(parameterSeparatorDoc, parameterDocs...),
		prettier.SoftLine{},
	)
}

func typeDocs(types []Type) []prettier.Doc {
	docs := make([]prettier.Doc, len(types))
	for i, t := range types {
		docs[i] = t.Doc()
	}
	return docs
}

func typesEqual(a []Type, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i, t := range a {
		if !t.Equal(b[i]) {
			return false
		}
	}
	return true
}

func bigIntsEqual(a *big.Int, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

// BoolType

type BoolType struct {
	TypeHint string
}

var _ ElementaryType = &BoolType{}

func NewBoolType(typeHint string) *BoolType {
	return &BoolType{TypeHint: typeHint}
}

func (*BoolType) isType() {}

func (*BoolType) isMappingKeyType() {}

func (*BoolType) isElementaryType() {}

func (*BoolType) TypeClass() common.TypeClass {
	return common.TypeClassBool
}

func (t *BoolType) Equal(other Type) bool {
	otherType, ok := other.(*BoolType)
	return ok && *t == *otherType
}

func (*BoolType) Doc() prettier.Doc {
	return prettier.Text("bool")
}

func (t *BoolType) String() string {
	return Prettier(t)
}

// AddressGeneralType is the address type of compilers before 0.5.0,
// and the address type of ABI descriptions,
// which do not distinguish payable addresses.
type AddressGeneralType struct {
	TypeHint string
}

var _ ElementaryType = &AddressGeneralType{}

func NewAddressGeneralType(typeHint string) *AddressGeneralType {
	return &AddressGeneralType{TypeHint: typeHint}
}

func (*AddressGeneralType) isType() {}

func (*AddressGeneralType) isMappingKeyType() {}

func (*AddressGeneralType) isElementaryType() {}

func (*AddressGeneralType) TypeClass() common.TypeClass {
	return common.TypeClassAddress
}

func (t *AddressGeneralType) Equal(other Type) bool {
	otherType, ok := other.(*AddressGeneralType)
	return ok && *t == *otherType
}

func (*AddressGeneralType) Doc() prettier.Doc {
	return prettier.Text("address")
}

func (t *AddressGeneralType) String() string {
	return Prettier(t)
}

// AddressSpecificType is the address type of compilers since 0.5.0.
type AddressSpecificType struct {
	Payable  bool
	TypeHint string
}

var _ ElementaryType = &AddressSpecificType{}

func NewAddressSpecificType(payable bool, typeHint string) *AddressSpecificType {
	return &AddressSpecificType{
		Payable:  payable,
		TypeHint: typeHint,
	}
}

func (*AddressSpecificType) isType() {}

func (*AddressSpecificType) isMappingKeyType() {}

func (*AddressSpecificType) isElementaryType() {}

func (*AddressSpecificType) TypeClass() common.TypeClass {
	return common.TypeClassAddress
}

func (t *AddressSpecificType) Equal(other Type) bool {
	otherType, ok := other.(*AddressSpecificType)
	return ok && *t == *otherType
}

func (t *AddressSpecificType) Doc() prettier.Doc {
	if t.Payable {
		return prettier.Text("address payable")
	}
	return prettier.Text("address")
}

func (t *AddressSpecificType) String() string {
	return Prettier(t)
}

// UintType

type UintType struct {
	Bits     int
	TypeHint string
}

var _ ElementaryType = &UintType{}

func NewUintType(bits int, typeHint string) *UintType {
	return &UintType{
		Bits:     bits,
		TypeHint: typeHint,
	}
}

func (*UintType) isType() {}

func (*UintType) isMappingKeyType() {}

func (*UintType) isElementaryType() {}

func (*UintType) TypeClass() common.TypeClass {
	return common.TypeClassUint
}

func (t *UintType) Equal(other Type) bool {
	otherType, ok := other.(*UintType)
	return ok && *t == *otherType
}

func (t *UintType) Doc() prettier.Doc {
	return prettier.Text(fmt.Sprintf("uint%d", t.Bits))
}

func (t *UintType) String() string {
	return Prettier(t)
}

// IntType

type IntType struct {
	Bits     int
	TypeHint string
}

var _ ElementaryType = &IntType{}

func NewIntType(bits int, typeHint string) *IntType {
	return &IntType{
		Bits:     bits,
		TypeHint: typeHint,
	}
}

func (*IntType) isType() {}

func (*IntType) isMappingKeyType() {}

func (*IntType) isElementaryType() {}

func (*IntType) TypeClass() common.TypeClass {
	return common.TypeClassInt
}

func (t *IntType) Equal(other Type) bool {
	otherType, ok := other.(*IntType)
	return ok && *t == *otherType
}

func (t *IntType) Doc() prettier.Doc {
	return prettier.Text(fmt.Sprintf("int%d", t.Bits))
}

func (t *IntType) String() string {
	return Prettier(t)
}

// FixedType

type FixedType struct {
	Bits     int
	Places   int
	TypeHint string
}

var _ ElementaryType = &FixedType{}

func NewFixedType(bits int, places int, typeHint string) *FixedType {
	return &FixedType{
		Bits:     bits,
		Places:   places,
		TypeHint: typeHint,
	}
}

func (*FixedType) isType() {}

func (*FixedType) isMappingKeyType() {}

func (*FixedType) isElementaryType() {}

func (*FixedType) TypeClass() common.TypeClass {
	return common.TypeClassFixed
}

func (t *FixedType) Equal(other Type) bool {
	otherType, ok := other.(*FixedType)
	return ok && *t == *otherType
}

func (t *FixedType) Doc() prettier.Doc {
	return prettier.Text(fmt.Sprintf("fixed%dx%d", t.Bits, t.Places))
}

func (t *FixedType) String() string {
	return Prettier(t)
}

// UfixedType

type UfixedType struct {
	Bits     int
	Places   int
	TypeHint string
}

var _ ElementaryType = &UfixedType{}

func NewUfixedType(bits int, places int, typeHint string) *UfixedType {
	return &UfixedType{
		Bits:     bits,
		Places:   places,
		TypeHint: typeHint,
	}
}

func (*UfixedType) isType() {}

func (*UfixedType) isMappingKeyType() {}

func (*UfixedType) isElementaryType() {}

func (*UfixedType) TypeClass() common.TypeClass {
	return common.TypeClassUfixed
}

func (t *UfixedType) Equal(other Type) bool {
	otherType, ok := other.(*UfixedType)
	return ok && *t == *otherType
}

func (t *UfixedType) Doc() prettier.Doc {
	return prettier.Text(fmt.Sprintf("ufixed%dx%d", t.Bits, t.Places))
}

func (t *UfixedType) String() string {
	return Prettier(t)
}

// StringType

type StringType struct {
	Location common.Location
	TypeHint string
}

var _ ElementaryType = &StringType{}

func NewStringType(location common.Location, typeHint string) *StringType {
	return &StringType{
		Location: location,
		TypeHint: typeHint,
	}
}

func (*StringType) isType() {}

func (*StringType) isMappingKeyType() {}

func (*StringType) isElementaryType() {}

func (*StringType) TypeClass() common.TypeClass {
	return common.TypeClassString
}

func (t *StringType) Equal(other Type) bool {
	otherType, ok := other.(*StringType)
	return ok && *t == *otherType
}

func (t *StringType) Doc() prettier.Doc {
	return locationDoc(prettier.Text("string"), t.Location)
}

func (t *StringType) String() string {
	return Prettier(t)
}

// BytesStaticType

type BytesStaticType struct {
	Length   int
	TypeHint string
}

var _ ElementaryType = &BytesStaticType{}

func NewBytesStaticType(length int, typeHint string) *BytesStaticType {
	return &BytesStaticType{
		Length:   length,
		TypeHint: typeHint,
	}
}

func (*BytesStaticType) isType() {}

func (*BytesStaticType) isMappingKeyType() {}

func (*BytesStaticType) isElementaryType() {}

func (*BytesStaticType) TypeClass() common.TypeClass {
	return common.TypeClassBytes
}

func (t *BytesStaticType) Equal(other Type) bool {
	otherType, ok := other.(*BytesStaticType)
	return ok && *t == *otherType
}

func (t *BytesStaticType) Doc() prettier.Doc {
	return prettier.Text(fmt.Sprintf("bytes%d", t.Length))
}

func (t *BytesStaticType) String() string {
	return Prettier(t)
}

// BytesDynamicType

type BytesDynamicType struct {
	Location common.Location
	TypeHint string
}

var _ ElementaryType = &BytesDynamicType{}

func NewBytesDynamicType(location common.Location, typeHint string) *BytesDynamicType {
	return &BytesDynamicType{
		Location: location,
		TypeHint: typeHint,
	}
}

func (*BytesDynamicType) isType() {}

func (*BytesDynamicType) isMappingKeyType() {}

func (*BytesDynamicType) isElementaryType() {}

func (*BytesDynamicType) TypeClass() common.TypeClass {
	return common.TypeClassBytes
}

func (t *BytesDynamicType) Equal(other Type) bool {
	otherType, ok := other.(*BytesDynamicType)
	return ok && *t == *otherType
}

func (t *BytesDynamicType) Doc() prettier.Doc {
	return locationDoc(prettier.Text("bytes"), t.Location)
}

func (t *BytesDynamicType) String() string {
	return Prettier(t)
}

// ArrayType is the common interface of static and dynamic arrays.
type ArrayType interface {
	Type
	ArrayBaseType() Type
	ArrayLocation() common.Location
}

// ArrayStaticType

type ArrayStaticType struct {
	BaseType Type
	// Length is arbitrary-precision: storage arrays may be longer than 2^64.
	Length   *big.Int
	Location common.Location
	TypeHint string
}

var _ ArrayType = &ArrayStaticType{}

func NewArrayStaticType(
	baseType Type,
	length *big.Int,
	location common.Location,
	typeHint string,
) *ArrayStaticType {
	return &ArrayStaticType{
		BaseType: baseType,
		Length:   length,
		Location: location,
		TypeHint: typeHint,
	}
}

func (*ArrayStaticType) isType() {}

func (*ArrayStaticType) TypeClass() common.TypeClass {
	return common.TypeClassArray
}

func (t *ArrayStaticType) ArrayBaseType() Type {
	return t.BaseType
}

func (t *ArrayStaticType) ArrayLocation() common.Location {
	return t.Location
}

func (t *ArrayStaticType) Equal(other Type) bool {
	otherType, ok := other.(*ArrayStaticType)
	if !ok {
		return false
	}

	return t.Location == otherType.Location &&
		t.TypeHint == otherType.TypeHint &&
		bigIntsEqual(t.Length, otherType.Length) &&
		t.BaseType.Equal(otherType.BaseType)
}

func (t *ArrayStaticType) Doc() prettier.Doc {
	return locationDoc(
		prettier.Concat{
			t.BaseType.Doc(),
			prettier.Text(fmt.Sprintf("[%s]", t.Length)),
		},
		t.Location,
	)
}

func (t *ArrayStaticType) String() string {
	return Prettier(t)
}

// ArrayDynamicType

type ArrayDynamicType struct {
	BaseType Type
	Location common.Location
	TypeHint string
}

var _ ArrayType = &ArrayDynamicType{}

func NewArrayDynamicType(
	baseType Type,
	location common.Location,
	typeHint string,
) *ArrayDynamicType {
	return &ArrayDynamicType{
		BaseType: baseType,
		Location: location,
		TypeHint: typeHint,
	}
}

func (*ArrayDynamicType) isType() {}

func (*ArrayDynamicType) TypeClass() common.TypeClass {
	return common.TypeClassArray
}

func (t *ArrayDynamicType) ArrayBaseType() Type {
	return t.BaseType
}

func (t *ArrayDynamicType) ArrayLocation() common.Location {
	return t.Location
}

func (t *ArrayDynamicType) Equal(other Type) bool {
	otherType, ok := other.(*ArrayDynamicType)
	if !ok {
		return false
	}

	return t.Location == otherType.Location &&
		t.TypeHint == otherType.TypeHint &&
		t.BaseType.Equal(otherType.BaseType)
}

func (t *ArrayDynamicType) Doc() prettier.Doc {
	return locationDoc(
		prettier.Concat{
			t.BaseType.Doc(),
			prettier.Text("[]"),
		},
		t.Location,
	)
}

func (t *ArrayDynamicType) String() string {
	return Prettier(t)
}

// MappingType

type MappingType struct {
	KeyType   MappingKeyType
	ValueType Type
	// Location is either absent, or storage.
	Location common.Location
	TypeHint string
}

var _ Type = &MappingType{}

func NewMappingType(
	keyType MappingKeyType,
	valueType Type,
	location common.Location,
	typeHint string,
) *MappingType {
	return &MappingType{
		KeyType:   keyType,
		ValueType: valueType,
		Location:  location,
		TypeHint:  typeHint,
	}
}

func (*MappingType) isType() {}

func (*MappingType) TypeClass() common.TypeClass {
	return common.TypeClassMapping
}

func (t *MappingType) Equal(other Type) bool {
	otherType, ok := other.(*MappingType)
	if !ok {
		return false
	}

	return t.Location == otherType.Location &&
		t.TypeHint == otherType.TypeHint &&
		t.KeyType.Equal(otherType.KeyType) &&
		t.ValueType.Equal(otherType.ValueType)
}

var mappingArrowDoc prettier.Doc = prettier.Text(" => ")

func (t *MappingType) Doc() prettier.Doc {
	return locationDoc(
		prettier.Concat{
			prettier.Text("mapping("),
			t.KeyType.Doc(),
			mappingArrowDoc,
			t.ValueType.Doc(),
			prettier.Text(")"),
		},
		t.Location,
	)
}

func (t *MappingType) String() string {
	return Prettier(t)
}

// FunctionType is the common interface of function types.
type FunctionType interface {
	Type
	FunctionVisibility() common.Visibility
}

const functionKeywordDoc = prettier.Text("function")
const functionReturnsKeywordDoc = prettier.Text("returns")

func functionDoc(
	mutability common.Mutability,
	visibility common.Visibility,
	inputs []Type,
	outputs []Type,
) prettier.Doc {
	doc := prettier.Concat{
		functionKeywordDoc,
		prettier.Space,
		parameterListDoc(typeDocs(inputs)),
	}

	if keyword := mutability.Keyword(); keyword != "" {
		doc = append(
			doc,
			prettier.Space,
			prettier.Text(keyword),
		)
	}

	doc = append(
		doc,
		prettier.Space,
		prettier.Text(visibility.Name()),
	)

	if len(outputs) > 0 {
		doc = append(
			doc,
			prettier.Space,
			functionReturnsKeywordDoc,
			prettier.Space,
			parameterListDoc(typeDocs(outputs)),
		)
	}

	return prettier.Group{
		Doc: doc,
	}
}

// FunctionInternalType

type FunctionInternalType struct {
	Mutability           common.Mutability
	InputParameterTypes  []Type
	OutputParameterTypes []Type
	TypeHint             string
}

var _ FunctionType = &FunctionInternalType{}

func NewFunctionInternalType(
	mutability common.Mutability,
	inputParameterTypes []Type,
	outputParameterTypes []Type,
	typeHint string,
) *FunctionInternalType {
	return &FunctionInternalType{
		Mutability:           mutability,
		InputParameterTypes:  inputParameterTypes,
		OutputParameterTypes: outputParameterTypes,
		TypeHint:             typeHint,
	}
}

func (*FunctionInternalType) isType() {}

func (*FunctionInternalType) TypeClass() common.TypeClass {
	return common.TypeClassFunction
}

func (*FunctionInternalType) FunctionVisibility() common.Visibility {
	return common.VisibilityInternal
}

func (t *FunctionInternalType) Equal(other Type) bool {
	otherType, ok := other.(*FunctionInternalType)
	if !ok {
		return false
	}

	return t.Mutability == otherType.Mutability &&
		t.TypeHint == otherType.TypeHint &&
		typesEqual(t.InputParameterTypes, otherType.InputParameterTypes) &&
		typesEqual(t.OutputParameterTypes, otherType.OutputParameterTypes)
}

func (t *FunctionInternalType) Doc() prettier.Doc {
	return functionDoc(
		t.Mutability,
		common.VisibilityInternal,
		t.InputParameterTypes,
		t.OutputParameterTypes,
	)
}

func (t *FunctionInternalType) String() string {
	return Prettier(t)
}

// FunctionExternalSpecificType is an external function type
// whose signature is known.
type FunctionExternalSpecificType struct {
	Mutability           common.Mutability
	InputParameterTypes  []Type
	OutputParameterTypes []Type
	TypeHint             string
}

var _ FunctionType = &FunctionExternalSpecificType{}

func NewFunctionExternalSpecificType(
	mutability common.Mutability,
	inputParameterTypes []Type,
	outputParameterTypes []Type,
	typeHint string,
) *FunctionExternalSpecificType {
	return &FunctionExternalSpecificType{
		Mutability:           mutability,
		InputParameterTypes:  inputParameterTypes,
		OutputParameterTypes: outputParameterTypes,
		TypeHint:             typeHint,
	}
}

func (*FunctionExternalSpecificType) isType() {}

func (*FunctionExternalSpecificType) TypeClass() common.TypeClass {
	return common.TypeClassFunction
}

func (*FunctionExternalSpecificType) FunctionVisibility() common.Visibility {
	return common.VisibilityExternal
}

func (t *FunctionExternalSpecificType) Equal(other Type) bool {
	otherType, ok := other.(*FunctionExternalSpecificType)
	if !ok {
		return false
	}

	return t.Mutability == otherType.Mutability &&
		t.TypeHint == otherType.TypeHint &&
		typesEqual(t.InputParameterTypes, otherType.InputParameterTypes) &&
		typesEqual(t.OutputParameterTypes, otherType.OutputParameterTypes)
}

func (t *FunctionExternalSpecificType) Doc() prettier.Doc {
	return functionDoc(
		t.Mutability,
		common.VisibilityExternal,
		t.InputParameterTypes,
		t.OutputParameterTypes,
	)
}

func (t *FunctionExternalSpecificType) String() string {
	return Prettier(t)
}

// FunctionExternalGeneralType is an external function type
// whose signature is unknown, as in ABI descriptions.
type FunctionExternalGeneralType struct {
	TypeHint string
}

var _ FunctionType = &FunctionExternalGeneralType{}

func NewFunctionExternalGeneralType(typeHint string) *FunctionExternalGeneralType {
	return &FunctionExternalGeneralType{TypeHint: typeHint}
}

func (*FunctionExternalGeneralType) isType() {}

func (*FunctionExternalGeneralType) TypeClass() common.TypeClass {
	return common.TypeClassFunction
}

func (*FunctionExternalGeneralType) FunctionVisibility() common.Visibility {
	return common.VisibilityExternal
}

func (t *FunctionExternalGeneralType) Equal(other Type) bool {
	otherType, ok := other.(*FunctionExternalGeneralType)
	return ok && *t == *otherType
}

func (*FunctionExternalGeneralType) Doc() prettier.Doc {
	return prettier.Concat{
		functionKeywordDoc,
		prettier.Space,
		prettier.Text(common.VisibilityExternal.Name()),
	}
}

func (t *FunctionExternalGeneralType) String() string {
	return Prettier(t)
}

func qualifiedName(definingContractName string, typeName string) string {
	if definingContractName == "" {
		return typeName
	}
	return definingContractName + "." + typeName
}

// StructType is a reference to a struct declaration.
type StructType struct {
	ID                   string
	TypeName             string
	DefiningContractName string
	Location             common.Location
	TypeHint             string
}

var _ Type = &StructType{}

func NewStructType(
	id string,
	typeName string,
	definingContractName string,
	location common.Location,
	typeHint string,
) *StructType {
	return &StructType{
		ID:                   id,
		TypeName:             typeName,
		DefiningContractName: definingContractName,
		Location:             location,
		TypeHint:             typeHint,
	}
}

func (*StructType) isType() {}

func (*StructType) TypeClass() common.TypeClass {
	return common.TypeClassStruct
}

func (t *StructType) Equal(other Type) bool {
	otherType, ok := other.(*StructType)
	return ok && *t == *otherType
}

func (t *StructType) Doc() prettier.Doc {
	return locationDoc(
		prettier.Text("struct "+qualifiedName(t.DefiningContractName, t.TypeName)),
		t.Location,
	)
}

func (t *StructType) String() string {
	return Prettier(t)
}

// EnumType is a reference to an enum declaration.
type EnumType struct {
	ID                   string
	TypeName             string
	DefiningContractName string
	TypeHint             string
}

var _ MappingKeyType = &EnumType{}

func NewEnumType(
	id string,
	typeName string,
	definingContractName string,
	typeHint string,
) *EnumType {
	return &EnumType{
		ID:                   id,
		TypeName:             typeName,
		DefiningContractName: definingContractName,
		TypeHint:             typeHint,
	}
}

func (*EnumType) isType() {}

func (*EnumType) isMappingKeyType() {}

func (*EnumType) TypeClass() common.TypeClass {
	return common.TypeClassEnum
}

func (t *EnumType) Equal(other Type) bool {
	otherType, ok := other.(*EnumType)
	return ok && *t == *otherType
}

func (t *EnumType) Doc() prettier.Doc {
	return prettier.Text("enum " + qualifiedName(t.DefiningContractName, t.TypeName))
}

func (t *EnumType) String() string {
	return Prettier(t)
}

// ContractType is a reference to a contract declaration.
type ContractType struct {
	ID           string
	TypeName     string
	ContractKind common.ContractKind
	TypeHint     string
}

var _ MappingKeyType = &ContractType{}

func NewContractType(
	id string,
	typeName string,
	contractKind common.ContractKind,
	typeHint string,
) *ContractType {
	return &ContractType{
		ID:           id,
		TypeName:     typeName,
		ContractKind: contractKind,
		TypeHint:     typeHint,
	}
}

func (*ContractType) isType() {}

func (*ContractType) isMappingKeyType() {}

func (*ContractType) TypeClass() common.TypeClass {
	return common.TypeClassContract
}

func (t *ContractType) Equal(other Type) bool {
	otherType, ok := other.(*ContractType)
	return ok && *t == *otherType
}

func contractDoc(contractKind common.ContractKind, typeName string) prettier.Doc {
	keyword := common.ContractKindContract.Name()
	if contractKind != common.ContractKindUnknown {
		keyword = contractKind.Name()
	}
	return prettier.Text(keyword + " " + typeName)
}

func (t *ContractType) Doc() prettier.Doc {
	return contractDoc(t.ContractKind, t.TypeName)
}

func (t *ContractType) String() string {
	return Prettier(t)
}

// MagicType is the type of a built-in global variable, e.g. msg.
type MagicType struct {
	// Variable is the name the compiler uses for the variable, e.g. "message".
	Variable string
}

var _ Type = &MagicType{}

func NewMagicType(variable string) *MagicType {
	return &MagicType{Variable: variable}
}

func (*MagicType) isType() {}

func (*MagicType) TypeClass() common.TypeClass {
	return common.TypeClassMagic
}

func (t *MagicType) Equal(other Type) bool {
	otherType, ok := other.(*MagicType)
	return ok && *t == *otherType
}

var magicVariableKeywords = map[string]string{
	"message":     "msg",
	"transaction": "tx",
}

// Keyword returns the name of the variable in source code.
func (t *MagicType) Keyword() string {
	keyword, ok := magicVariableKeywords[t.Variable]
	if !ok {
		return t.Variable
	}
	return keyword
}

func (t *MagicType) Doc() prettier.Doc {
	return prettier.Text(t.Keyword())
}

func (t *MagicType) String() string {
	return Prettier(t)
}

// OptionallyNamedType is a member of a tuple.
type OptionallyNamedType struct {
	// Name is empty if the member is unnamed.
	Name string
	Type Type
}

func (m OptionallyNamedType) Doc() prettier.Doc {
	if m.Name == "" {
		return m.Type.Doc()
	}
	return prettier.Concat{
		m.Type.Doc(),
		prettier.Space,
		prettier.Text(m.Name),
	}
}

// TupleType

type TupleType struct {
	MemberTypes []OptionallyNamedType
	TypeHint    string
}

var _ Type = &TupleType{}

func NewTupleType(memberTypes []OptionallyNamedType, typeHint string) *TupleType {
	return &TupleType{
		MemberTypes: memberTypes,
		TypeHint:    typeHint,
	}
}

func (*TupleType) isType() {}

func (*TupleType) TypeClass() common.TypeClass {
	return common.TypeClassTuple
}

func (t *TupleType) Equal(other Type) bool {
	otherType, ok := other.(*TupleType)
	if !ok {
		return false
	}

	if t.TypeHint != otherType.TypeHint ||
		len(t.MemberTypes) != len(otherType.MemberTypes) {

		return false
	}

	for i, member := range t.MemberTypes {
		otherMember := otherType.MemberTypes[i]
		if member.Name != otherMember.Name ||
			!member.Type.Equal(otherMember.Type) {

			return false
		}
	}

	return true
}

func (t *TupleType) Doc() prettier.Doc {
	memberDocs := make([]prettier.Doc, len(t.MemberTypes))
	for i, member := range t.MemberTypes {
		memberDocs[i] = member.Doc()
	}

	return prettier.Group{
		Doc: prettier.Concat{
			prettier.Text("tuple"),
			parameterListDoc(memberDocs),
		},
	}
}

func (t *TupleType) String() string {
	return Prettier(t)
}
