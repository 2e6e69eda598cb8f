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
	"github.com/turbolent/prettier"

	"github.com/kingjbbrooks/truffle/common"
)

// UserDefinedType is the descriptor of a struct, enum, or contract declaration.
type UserDefinedType interface {
	Type
	isUserDefinedType()
	UserDefinedTypeID() string
	UserDefinedTypeName() string
}

// NameTypePair is a member of a struct.
type NameTypePair struct {
	Name string
	Type Type
}

func (p NameTypePair) Doc() prettier.Doc {
	return prettier.Concat{
		p.Type.Doc(),
		prettier.Space,
		prettier.Text(p.Name),
		prettier.Text(";"),
	}
}

func definingContractsEqual(a *StoredContractType, b *StoredContractType) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(b)
}

// StoredStructType

type StoredStructType struct {
	ID                   string
	TypeName             string
	DefiningContractName string
	// DefiningContract is only present if declarations were available
	// when the type was resolved.
	DefiningContract *StoredContractType
	MemberTypes      []NameTypePair
}

var _ UserDefinedType = &StoredStructType{}

func (*StoredStructType) isType() {}

func (*StoredStructType) isUserDefinedType() {}

func (*StoredStructType) TypeClass() common.TypeClass {
	return common.TypeClassStruct
}

func (t *StoredStructType) UserDefinedTypeID() string {
	return t.ID
}

func (t *StoredStructType) UserDefinedTypeName() string {
	return t.TypeName
}

// Reference returns the descriptor of a reference to the struct.
func (t *StoredStructType) Reference(location common.Location) *StructType {
	return NewStructType(
		t.ID,
		t.TypeName,
		t.DefiningContractName,
		location,
		"",
	)
}

func (t *StoredStructType) Equal(other Type) bool {
	otherType, ok := other.(*StoredStructType)
	if !ok {
		return false
	}

	if t.ID != otherType.ID ||
		t.TypeName != otherType.TypeName ||
		t.DefiningContractName != otherType.DefiningContractName ||
		!definingContractsEqual(t.DefiningContract, otherType.DefiningContract) ||
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

func (t *StoredStructType) Doc() prettier.Doc {
	header := prettier.Text("struct " + qualifiedName(t.DefiningContractName, t.TypeName) + " {")

	if len(t.MemberTypes) == 0 {
		return prettier.Concat{
			header,
			prettier.Text("}"),
		}
	}

	var members prettier.Concat
	for _, member := range t.MemberTypes {
		members = append(
			members,
			prettier.HardLine{},
			member.Doc(),
		)
	}

	return prettier.Concat{
		header,
		prettier.Indent{
			Doc: members,
		},
		prettier.HardLine{},
		prettier.Text("}"),
	}
}

func (t *StoredStructType) String() string {
	return Prettier(t)
}

// StoredEnumType

type StoredEnumType struct {
	ID                   string
	TypeName             string
	DefiningContractName string
	// DefiningContract is only present if declarations were available
	// when the type was resolved.
	DefiningContract *StoredContractType
	Options          []string
}

var _ UserDefinedType = &StoredEnumType{}

func (*StoredEnumType) isType() {}

func (*StoredEnumType) isUserDefinedType() {}

func (*StoredEnumType) TypeClass() common.TypeClass {
	return common.TypeClassEnum
}

func (t *StoredEnumType) UserDefinedTypeID() string {
	return t.ID
}

func (t *StoredEnumType) UserDefinedTypeName() string {
	return t.TypeName
}

// Reference returns the descriptor of a reference to the enum.
func (t *StoredEnumType) Reference() *EnumType {
	return NewEnumType(
		t.ID,
		t.TypeName,
		t.DefiningContractName,
		"",
	)
}

func (t *StoredEnumType) Equal(other Type) bool {
	otherType, ok := other.(*StoredEnumType)
	if !ok {
		return false
	}

	if t.ID != otherType.ID ||
		t.TypeName != otherType.TypeName ||
		t.DefiningContractName != otherType.DefiningContractName ||
		!definingContractsEqual(t.DefiningContract, otherType.DefiningContract) ||
		len(t.Options) != len(otherType.Options) {

		return false
	}

	for i, option := range t.Options {
		if option != otherType.Options[i] {
			return false
		}
	}

	return true
}

var enumOptionSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

func (t *StoredEnumType) Doc() prettier.Doc {
	header := prettier.Text("enum " + qualifiedName(t.DefiningContractName, t.TypeName) + " ")

	if len(t.Options) == 0 {
		return prettier.Concat{
			header,
			prettier.Text("{}"),
		}
	}

	optionDocs := make([]prettier.Doc, len(t.Options))
	for i, option := range t.Options {
		optionDocs[i] = prettier.Text(option)
	}

	return prettier.Concat{
		header,
		prettier.WrapBraces(
			prettier.Join(enumOptionSeparatorDoc, optionDocs...),
			prettier.Line{},
		),
	}
}

func (t *StoredEnumType) String() string {
	return Prettier(t)
}

// StoredContractType

type StoredContractType struct {
	ID           string
	TypeName     string
	ContractKind common.ContractKind
	// Payable is true if the contract has a receive function
	// or a payable fallback function.
	Payable bool
}

var _ UserDefinedType = &StoredContractType{}

func (*StoredContractType) isType() {}

func (*StoredContractType) isUserDefinedType() {}

func (*StoredContractType) TypeClass() common.TypeClass {
	return common.TypeClassContract
}

func (t *StoredContractType) UserDefinedTypeID() string {
	return t.ID
}

func (t *StoredContractType) UserDefinedTypeName() string {
	return t.TypeName
}

// Reference returns the descriptor of a reference to the contract.
func (t *StoredContractType) Reference() *ContractType {
	return NewContractType(
		t.ID,
		t.TypeName,
		t.ContractKind,
		"",
	)
}

func (t *StoredContractType) Equal(other Type) bool {
	otherType, ok := other.(*StoredContractType)
	return ok && *t == *otherType
}

func (t *StoredContractType) Doc() prettier.Doc {
	return contractDoc(t.ContractKind, t.TypeName)
}

func (t *StoredContractType) String() string {
	return Prettier(t)
}
