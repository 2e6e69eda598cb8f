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
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/kingjbbrooks/truffle/abi"
	"github.com/kingjbbrooks/truffle/common"
	"github.com/kingjbbrooks/truffle/errors"
	"github.com/kingjbbrooks/truffle/format"
)

var (
	abiArrayPattern     = regexp.MustCompile(`^(.*)\[([0-9]*)\]$`)
	abiTypeClassPattern = regexp.MustCompile(`^([^0-9]+)`)
	abiIntegerPattern   = regexp.MustCompile(`^u?int([0-9]+)$`)
	abiFixedPattern     = regexp.MustCompile(`^u?fixed([0-9]+)x([0-9]+)$`)
	abiBytesPattern     = regexp.MustCompile(`^bytes([0-9]*)$`)
)

// abiTypeClasses are the type classes which occur in ABI type strings.
var abiTypeClasses = []common.TypeClass{
	common.TypeClassBool,
	common.TypeClassAddress,
	common.TypeClassUint,
	common.TypeClassInt,
	common.TypeClassFixed,
	common.TypeClassUfixed,
	common.TypeClassString,
	common.TypeClassBytes,
	common.TypeClassFunction,
	common.TypeClassTuple,
}

// AbiParameterToType resolves the type of an ABI parameter.
//
// ABI descriptions carry neither locations nor compiler-specific information:
// addresses are general, and functions are external and general.
func (c *Converter) AbiParameterToType(parameter *abi.Parameter) (_ format.Type, err error) {
	defer c.recoverPanic(&err)

	return c.abiParameterToType(parameter, 0)
}

func (c *Converter) abiParameterToType(parameter *abi.Parameter, depth int) (format.Type, error) {

	if err := c.checkDepth(depth); err != nil {
		return nil, err
	}

	typeString := parameter.Type
	typeHint := parameter.InternalType

	c.logger.Debug().
		Str("type", typeString).
		Str("internalType", typeHint).
		Int("depth", depth).
		Msg("resolving ABI parameter")

	if match := abiArrayPattern.FindStringSubmatch(typeString); match != nil {
		return c.abiArrayToType(parameter, match[1], match[2], depth)
	}

	match := abiTypeClassPattern.FindStringSubmatch(typeString)
	if match == nil {
		return nil, &UnknownTypeClassError{
			Type: typeString,
		}
	}

	typeClassName := match[1]
	typeClass := common.TypeClassFromName(typeClassName)

	switch typeClass {
	case common.TypeClassBool:
		if typeString != typeClassName {
			return nil, malformedABISuffix(typeString)
		}
		return format.NewBoolType(typeHint), nil

	case common.TypeClassAddress:
		if typeString != typeClassName {
			return nil, malformedABISuffix(typeString)
		}
		return format.NewAddressGeneralType(typeHint), nil

	case common.TypeClassString:
		if typeString != typeClassName {
			return nil, malformedABISuffix(typeString)
		}
		return format.NewStringType(common.LocationNone, typeHint), nil

	case common.TypeClassFunction:
		if typeString != typeClassName {
			return nil, malformedABISuffix(typeString)
		}
		return format.NewFunctionExternalGeneralType(typeHint), nil

	case common.TypeClassUint:
		bits, err := abiIntegerBits(typeString)
		if err != nil {
			return nil, err
		}
		return format.NewUintType(bits, typeHint), nil

	case common.TypeClassInt:
		bits, err := abiIntegerBits(typeString)
		if err != nil {
			return nil, err
		}
		return format.NewIntType(bits, typeHint), nil

	case common.TypeClassFixed:
		bits, places, err := abiFixedBitsAndPlaces(typeString)
		if err != nil {
			return nil, err
		}
		return format.NewFixedType(bits, places, typeHint), nil

	case common.TypeClassUfixed:
		bits, places, err := abiFixedBitsAndPlaces(typeString)
		if err != nil {
			return nil, err
		}
		return format.NewUfixedType(bits, places, typeHint), nil

	case common.TypeClassBytes:
		return abiBytesToType(typeString, typeHint)

	case common.TypeClassTuple:
		if typeString != typeClassName {
			return nil, malformedABISuffix(typeString)
		}
		return c.abiTupleToType(parameter, depth)

	case common.TypeClassUnknown,
		common.TypeClassArray,
		common.TypeClassMapping,
		common.TypeClassStruct,
		common.TypeClassEnum,
		common.TypeClassContract,
		common.TypeClassMagic:

		return nil, &UnknownTypeClassError{
			Type:       typeString,
			Suggestion: closestABITypeClass(typeClassName),
		}
	}

	panic(errors.NewUnreachableError())
}

func (c *Converter) abiArrayToType(
	parameter *abi.Parameter,
	baseTypeString string,
	lengthString string,
	depth int,
) (format.Type, error) {

	suffix := parameter.Type[len(baseTypeString):]

	// the internal type carries the same array suffix,
	// e.g. "struct C.S[3]" for the type "tuple[3]"
	var baseTypeHint string
	if strings.HasSuffix(parameter.InternalType, suffix) {
		baseTypeHint = strings.TrimSuffix(parameter.InternalType, suffix)
	}

	baseParameter := &abi.Parameter{
		Name:         parameter.Name,
		Type:         baseTypeString,
		InternalType: baseTypeHint,
		Components:   parameter.Components,
		Indexed:      parameter.Indexed,
	}

	baseType, err := c.abiParameterToType(baseParameter, depth+1)
	if err != nil {
		return nil, err
	}

	if lengthString == "" {
		return format.NewArrayDynamicType(
			baseType,
			common.LocationNone,
			parameter.InternalType,
		), nil
	}

	length, ok := new(big.Int).SetString(lengthString, 10)
	if !ok {
		return nil, &MalformedNumberError{
			Kind: "array length",
			Type: parameter.Type,
		}
	}

	return format.NewArrayStaticType(
		baseType,
		length,
		common.LocationNone,
		parameter.InternalType,
	), nil
}

func (c *Converter) abiTupleToType(parameter *abi.Parameter, depth int) (format.Type, error) {
	memberTypes := make([]format.OptionallyNamedType, 0, len(parameter.Components))

	for _, component := range parameter.Components {
		memberType, err := c.abiParameterToType(component, depth+1)
		if err != nil {
			return nil, err
		}

		memberTypes = append(
			memberTypes,
			format.OptionallyNamedType{
				Name: component.Name,
				Type: memberType,
			},
		)
	}

	return format.NewTupleType(memberTypes, parameter.InternalType), nil
}

func abiBytesToType(typeString string, typeHint string) (format.Type, error) {
	match := abiBytesPattern.FindStringSubmatch(typeString)
	if match == nil {
		return nil, malformedABISuffix(typeString)
	}

	if match[1] == "" {
		return format.NewBytesDynamicType(common.LocationNone, typeHint), nil
	}

	length, err := strconv.Atoi(match[1])
	if err != nil {
		return nil, &MalformedNumberError{
			Kind: "byte length",
			Type: typeString,
			Err:  err,
		}
	}

	if length < 1 || length > maxStaticBytesLength {
		return nil, &MalformedNumberError{
			Kind: "byte length",
			Type: typeString,
		}
	}

	return format.NewBytesStaticType(length, typeHint), nil
}

func abiIntegerBits(typeString string) (int, error) {
	match := abiIntegerPattern.FindStringSubmatch(typeString)
	if match == nil {
		return 0, &MalformedNumberError{
			Kind: "bit width",
			Type: typeString,
		}
	}
	return parseABIBits(typeString, match[1])
}

func abiFixedBitsAndPlaces(typeString string) (bits int, places int, err error) {
	match := abiFixedPattern.FindStringSubmatch(typeString)
	if match == nil {
		return 0, 0, &MalformedNumberError{
			Kind: "bit width",
			Type: typeString,
		}
	}

	bits, err = parseABIBits(typeString, match[1])
	if err != nil {
		return 0, 0, err
	}

	places, err = strconv.Atoi(match[2])
	if err != nil || places > maxDecimalPlaces {
		return 0, 0, &MalformedNumberError{
			Kind: "decimal places",
			Type: typeString,
			Err:  err,
		}
	}

	return bits, places, nil
}

func parseABIBits(typeString string, digits string) (int, error) {
	bits, err := strconv.Atoi(digits)
	if err != nil {
		return 0, &MalformedNumberError{
			Kind: "bit width",
			Type: typeString,
			Err:  err,
		}
	}

	if bits < 8 || bits > maxBits || bits%8 != 0 {
		return 0, &MalformedNumberError{
			Kind: "bit width",
			Type: typeString,
		}
	}

	return bits, nil
}

func malformedABISuffix(typeString string) error {
	return &MalformedNumberError{
		Kind: "suffix",
		Type: typeString,
	}
}

// closestABITypeClass returns the name of the ABI type class
// with the smallest edit distance to the given name,
// or an empty string if every name would have to be replaced entirely.
func closestABITypeClass(name string) string {
	nameRunes := []rune(name)

	closestDistance := len(name)
	var closestName string

	for _, typeClass := range abiTypeClasses {
		typeClassName := typeClass.Name()

		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(typeClassName),
			levenshtein.DefaultOptions,
		)

		if distance < closestDistance && distance < len(typeClassName) {
			closestName = typeClassName
			closestDistance = distance
		}
	}

	return closestName
}
