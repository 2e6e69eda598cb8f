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

const payableAddressTypeIdentifier = "t_address_payable"

const maxBits = 256
const maxStaticBytesLength = 32
const maxDecimalPlaces = 80

var (
	structTypeStringPattern = regexp.MustCompile(`^struct ([^.\s]+)\.([^.\s]+)$`)
	enumTypeStringPattern   = regexp.MustCompile(`^enum ([^.\s]+)\.([^.\s]+)$`)
	magicVariablePattern    = regexp.MustCompile(`^t_magic_(.+)$`)
)

// DefinitionToType resolves the type of a variable declaration or type name node.
//
// The compiler version selects version-dependent behaviour,
// and forceLocation determines the location of reference types.
func (c *Converter) DefinitionToType(
	definition *ast.Node,
	compilerVersion compiler.Version,
	forceLocation ForceLocation,
) (_ format.Type, err error) {
	defer c.recoverPanic(&err)

	return c.definitionToType(definition, compilerVersion, forceLocation, 0)
}

func (c *Converter) definitionToType(
	definition *ast.Node,
	compilerVersion compiler.Version,
	forceLocation ForceLocation,
	depth int,
) (format.Type, error) {

	if err := c.checkDepth(depth); err != nil {
		return nil, err
	}

	typeIdentifier := c.facts.TypeIdentifier(definition)
	typeClass := c.facts.TypeClass(definition)
	typeHint := c.facts.TypeStringWithoutLocation(definition)

	c.logger.Debug().
		Int("id", definition.ID).
		Str("typeIdentifier", typeIdentifier).
		Str("typeClass", typeClass.Name()).
		Int("depth", depth).
		Msg("resolving definition")

	switch typeClass {
	case common.TypeClassBool:
		return format.NewBoolType(typeHint), nil

	case common.TypeClassAddress:
		switch compilerVersion.Family() {
		case compiler.FamilyPre050:
			return format.NewAddressGeneralType(typeHint), nil

		case compiler.Family05x:
			return format.NewAddressSpecificType(
				typeIdentifier == payableAddressTypeIdentifier,
				typeHint,
			), nil

		case compiler.FamilyUnknown:
			return nil, &UnsupportedCompilerError{
				Compiler: compilerVersion,
			}
		}

		panic(errors.NewUnreachableError())

	case common.TypeClassUint:
		bits, err := c.bits(definition)
		if err != nil {
			return nil, err
		}
		return format.NewUintType(bits, typeHint), nil

	case common.TypeClassInt:
		bits, err := c.bits(definition)
		if err != nil {
			return nil, err
		}
		return format.NewIntType(bits, typeHint), nil

	case common.TypeClassFixed:
		bits, places, err := c.bitsAndPlaces(definition)
		if err != nil {
			return nil, err
		}
		return format.NewFixedType(bits, places, typeHint), nil

	case common.TypeClassUfixed:
		bits, places, err := c.bitsAndPlaces(definition)
		if err != nil {
			return nil, err
		}
		return format.NewUfixedType(bits, places, typeHint), nil

	case common.TypeClassString:
		return format.NewStringType(
			c.location(definition, forceLocation),
			typeHint,
		), nil

	case common.TypeClassBytes:
		length, static, err := c.facts.SpecifiedSize(definition)
		if err != nil {
			return nil, &MalformedNumberError{
				Kind: "byte length",
				Type: typeIdentifier,
				Err:  err,
			}
		}

		if !static {
			return format.NewBytesDynamicType(
				c.location(definition, forceLocation),
				typeHint,
			), nil
		}

		if length < 1 || length > maxStaticBytesLength {
			return nil, &MalformedNumberError{
				Kind: "byte length",
				Type: typeIdentifier,
			}
		}
		return format.NewBytesStaticType(length, typeHint), nil

	case common.TypeClassArray:
		return c.arrayDefinitionToType(definition, compilerVersion, forceLocation, depth, typeHint)

	case common.TypeClassMapping:
		return c.mappingDefinitionToType(definition, compilerVersion, forceLocation, depth, typeHint)

	case common.TypeClassFunction:
		return c.functionDefinitionToType(definition, compilerVersion, depth, typeHint)

	case common.TypeClassStruct:
		id, err := c.typeID(definition)
		if err != nil {
			return nil, err
		}

		definingContractName, typeName, err := splitQualifiedName(structTypeStringPattern, typeHint)
		if err != nil {
			return nil, err
		}

		return format.NewStructType(
			id,
			typeName,
			definingContractName,
			c.location(definition, forceLocation),
			typeHint,
		), nil

	case common.TypeClassEnum:
		id, err := c.typeID(definition)
		if err != nil {
			return nil, err
		}

		definingContractName, typeName, err := splitQualifiedName(enumTypeStringPattern, typeHint)
		if err != nil {
			return nil, err
		}

		return format.NewEnumType(
			id,
			typeName,
			definingContractName,
			typeHint,
		), nil

	case common.TypeClassContract:
		id, err := c.typeID(definition)
		if err != nil {
			return nil, err
		}

		return format.NewContractType(
			id,
			c.facts.ContractTypeName(definition),
			c.facts.ContractKind(definition),
			typeHint,
		), nil

	case common.TypeClassMagic:
		match := magicVariablePattern.FindStringSubmatch(typeIdentifier)
		if match == nil {
			return nil, &UnknownMagicVariableError{
				TypeIdentifier: typeIdentifier,
			}
		}
		return format.NewMagicType(match[1]), nil

	case common.TypeClassTuple,
		common.TypeClassUnknown:

		// tuples only occur in ABI descriptions
		return nil, &UnknownTypeClassError{
			Type: typeIdentifier,
		}
	}

	panic(errors.NewUnreachableError())
}

func (c *Converter) location(definition *ast.Node, forceLocation ForceLocation) common.Location {
	switch forceLocation := forceLocation.(type) {
	case InheritLocation:
		return c.facts.ReferenceLocation(definition)
	case OverrideLocation:
		return forceLocation.Location
	case SuppressLocation:
		return common.LocationNone
	}

	panic(errors.NewUnreachableError())
}

func (c *Converter) bits(definition *ast.Node) (int, error) {
	typeIdentifier := c.facts.TypeIdentifier(definition)

	size, specified, err := c.facts.SpecifiedSize(definition)
	if err != nil {
		return 0, &MalformedNumberError{
			Kind: "bit width",
			Type: typeIdentifier,
			Err:  err,
		}
	}

	bits := size * 8
	if !specified || bits < 8 || bits > maxBits {
		return 0, &MalformedNumberError{
			Kind: "bit width",
			Type: typeIdentifier,
		}
	}

	return bits, nil
}

func (c *Converter) bitsAndPlaces(definition *ast.Node) (bits int, places int, err error) {
	bits, err = c.bits(definition)
	if err != nil {
		return 0, 0, err
	}

	places, err = c.facts.DecimalPlaces(definition)
	if err != nil {
		return 0, 0, &MalformedNumberError{
			Kind: "decimal places",
			Type: c.facts.TypeIdentifier(definition),
			Err:  err,
		}
	}

	if places > maxDecimalPlaces {
		return 0, 0, &MalformedNumberError{
			Kind: "decimal places",
			Type: c.facts.TypeIdentifier(definition),
		}
	}

	return bits, places, nil
}

func (c *Converter) typeID(definition *ast.Node) (string, error) {
	id, err := c.facts.TypeID(definition)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(id), nil
}

func splitQualifiedName(pattern *regexp.Regexp, typeString string) (definingContractName string, typeName string, err error) {
	match := pattern.FindStringSubmatch(typeString)
	if match == nil {
		return "", "", &MalformedQualifiedNameError{
			TypeString: typeString,
		}
	}
	return match[1], match[2], nil
}

func (c *Converter) arrayDefinitionToType(
	definition *ast.Node,
	compilerVersion compiler.Version,
	forceLocation ForceLocation,
	depth int,
	typeHint string,
) (format.Type, error) {

	location := c.location(definition, forceLocation)

	baseDefinition, err := c.facts.BaseDefinition(definition)
	if err != nil {
		return nil, err
	}

	baseType, err := c.definitionToType(baseDefinition, compilerVersion, forceLocation, depth+1)
	if err != nil {
		return nil, err
	}

	if c.facts.IsDynamicArray(definition) {
		return format.NewArrayDynamicType(baseType, location, typeHint), nil
	}

	length, err := c.facts.StaticLength(definition)
	if err != nil {
		return nil, &MalformedNumberError{
			Kind: "array length",
			Type: c.facts.TypeIdentifier(definition),
			Err:  err,
		}
	}

	return format.NewArrayStaticType(baseType, length, location, typeHint), nil
}

func (c *Converter) mappingDefinitionToType(
	definition *ast.Node,
	compilerVersion compiler.Version,
	forceLocation ForceLocation,
	depth int,
	typeHint string,
) (format.Type, error) {

	keyDefinition, err := c.facts.KeyDefinition(definition)
	if err != nil {
		return nil, err
	}

	// key types never carry a location
	keyType, err := c.definitionToType(keyDefinition, compilerVersion, SuppressLocation{}, depth+1)
	if err != nil {
		return nil, err
	}

	mappingKeyType, ok := keyType.(format.MappingKeyType)
	if !ok {
		return nil, &InvalidMappingKeyError{
			KeyType: keyType,
		}
	}

	valueDefinition, err := c.facts.ValueDefinition(definition)
	if err != nil {
		return nil, err
	}

	valueType, err := c.definitionToType(valueDefinition, compilerVersion, forceLocation, depth+1)
	if err != nil {
		return nil, err
	}

	// mappings only live in storage
	location := common.LocationStorage
	if _, ok := forceLocation.(SuppressLocation); ok {
		location = common.LocationNone
	}

	return format.NewMappingType(mappingKeyType, valueType, location, typeHint), nil
}

func (c *Converter) functionDefinitionToType(
	definition *ast.Node,
	compilerVersion compiler.Version,
	depth int,
	typeHint string,
) (format.Type, error) {

	visibility := c.facts.Visibility(definition)
	if visibility == common.VisibilityUnknown {
		return nil, &UnknownVisibilityError{
			TypeIdentifier: c.facts.TypeIdentifier(definition),
		}
	}

	mutability := c.facts.Mutability(definition)

	inputs, outputs, err := c.facts.Parameters(definition)
	if err != nil {
		return nil, err
	}

	inputTypes, err := c.parameterTypes(inputs, compilerVersion, depth)
	if err != nil {
		return nil, err
	}

	outputTypes, err := c.parameterTypes(outputs, compilerVersion, depth)
	if err != nil {
		return nil, err
	}

	switch visibility {
	case common.VisibilityInternal:
		return format.NewFunctionInternalType(
			mutability,
			inputTypes,
			outputTypes,
			typeHint,
		), nil

	case common.VisibilityExternal:
		return format.NewFunctionExternalSpecificType(
			mutability,
			inputTypes,
			outputTypes,
			typeHint,
		), nil
	}

	panic(errors.NewUnexpectedError("unexpected visibility: %s", visibility))
}

func (c *Converter) parameterTypes(
	parameters []*ast.Node,
	compilerVersion compiler.Version,
	depth int,
) ([]format.Type, error) {

	types := make([]format.Type, len(parameters))
	for i, parameter := range parameters {
		parameterType, err := c.definitionToType(parameter, compilerVersion, InheritLocation{}, depth+1)
		if err != nil {
			return nil, err
		}
		types[i] = parameterType
	}
	return types, nil
}
