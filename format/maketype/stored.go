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

package maketype

import (
	"regexp"
	"strconv"

	"github.com/kingjbbrooks/truffle/ast"
	"github.com/kingjbbrooks/truffle/common"
	"github.com/kingjbbrooks/truffle/compiler"
	"github.com/kingjbbrooks/truffle/errors"
	"github.com/kingjbbrooks/truffle/format"
)

var canonicalNamePattern = regexp.MustCompile(`^([^.\s]+)\.([^.\s]+)$`)

// DefinitionToStoredType resolves the type declared by a struct, enum, or contract definition.
//
// If declarations are given, the descriptor of the contract
// which declares a struct or enum is attached.
// A declaration missing from the table is not an error.
func (c *Converter) DefinitionToStoredType(
	definition *ast.Node,
	compilerVersion compiler.Version,
	declarations ast.Declarations,
) (_ format.UserDefinedType, err error) {

	defer c.recoverPanic(&err)

	c.logger.Debug().
		Int("id", definition.ID).
		Str("nodeType", definition.NodeType).
		Str("name", definition.Name).
		Msg("resolving declaration")

	declarationKind := common.DeclarationKindFromNodeType(definition.NodeType)

	switch declarationKind {
	case common.DeclarationKindStruct:
		return c.structDefinitionToStoredType(definition, compilerVersion, declarations)

	case common.DeclarationKindEnum:
		return c.enumDefinitionToStoredType(definition, declarations)

	case common.DeclarationKindContract:
		return c.contractDefinitionToStoredType(definition), nil

	case common.DeclarationKindUnknown:
		return nil, &UnknownDeclarationKindError{
			NodeType: definition.NodeType,
			ID:       definition.ID,
		}
	}

	panic(errors.NewUnreachableError())
}

func (c *Converter) structDefinitionToStoredType(
	definition *ast.Node,
	compilerVersion compiler.Version,
	declarations ast.Declarations,
) (*format.StoredStructType, error) {

	definingContractName, typeName, err := splitQualifiedName(canonicalNamePattern, definition.CanonicalName)
	if err != nil {
		return nil, err
	}

	memberTypes := make([]format.NameTypePair, 0, len(definition.Members))
	for _, member := range definition.Members {
		memberType, err := c.definitionToType(member, compilerVersion, SuppressLocation{}, 1)
		if err != nil {
			return nil, err
		}

		memberTypes = append(
			memberTypes,
			format.NameTypePair{
				Name: member.Name,
				Type: memberType,
			},
		)
	}

	return &format.StoredStructType{
		ID:                   strconv.Itoa(definition.ID),
		TypeName:             typeName,
		DefiningContractName: definingContractName,
		DefiningContract:     c.definingContract(definition, declarations),
		MemberTypes:          memberTypes,
	}, nil
}

func (c *Converter) enumDefinitionToStoredType(
	definition *ast.Node,
	declarations ast.Declarations,
) (*format.StoredEnumType, error) {

	definingContractName, typeName, err := splitQualifiedName(canonicalNamePattern, definition.CanonicalName)
	if err != nil {
		return nil, err
	}

	options := make([]string, 0, len(definition.Members))
	for _, member := range definition.Members {
		options = append(options, member.Name)
	}

	return &format.StoredEnumType{
		ID:                   strconv.Itoa(definition.ID),
		TypeName:             typeName,
		DefiningContractName: definingContractName,
		DefiningContract:     c.definingContract(definition, declarations),
		Options:              options,
	}, nil
}

func (c *Converter) contractDefinitionToStoredType(definition *ast.Node) *format.StoredContractType {
	return &format.StoredContractType{
		ID:           strconv.Itoa(definition.ID),
		TypeName:     definition.Name,
		ContractKind: common.ContractKindFromName(definition.ContractKind),
		Payable:      c.facts.IsContractPayable(definition),
	}
}

func (c *Converter) definingContract(
	definition *ast.Node,
	declarations ast.Declarations,
) *format.StoredContractType {

	if declarations == nil {
		return nil
	}

	contract, ok := declarations.EnclosingContract(definition.ID)
	if !ok {
		c.logger.Debug().
			Int("id", definition.ID).
			Msg("defining contract not found")
		return nil
	}

	return c.contractDefinitionToStoredType(contract)
}
