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

package common

import (
	"encoding/json"

	"github.com/kingjbbrooks/truffle/errors"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=TypeClass

// TypeClass is the coarse category of a Solidity type.
type TypeClass uint

const (
	TypeClassUnknown TypeClass = iota
	TypeClassBool
	TypeClassAddress
	TypeClassUint
	TypeClassInt
	TypeClassFixed
	TypeClassUfixed
	TypeClassString
	TypeClassBytes
	TypeClassArray
	TypeClassMapping
	TypeClassFunction
	TypeClassStruct
	TypeClassEnum
	TypeClassContract
	TypeClassMagic
	TypeClassTuple
)

func TypeClassCount() int {
	return len(_TypeClass_index) - 1
}

var AllTypeClasses = []TypeClass{
	TypeClassBool,
	TypeClassAddress,
	TypeClassUint,
	TypeClassInt,
	TypeClassFixed,
	TypeClassUfixed,
	TypeClassString,
	TypeClassBytes,
	TypeClassArray,
	TypeClassMapping,
	TypeClassFunction,
	TypeClassStruct,
	TypeClassEnum,
	TypeClassContract,
	TypeClassMagic,
	TypeClassTuple,
}

var typeClassesByName = func() map[string]TypeClass {
	result := make(map[string]TypeClass, len(AllTypeClasses))
	for _, typeClass := range AllTypeClasses {
		result[typeClass.Name()] = typeClass
	}
	return result
}()

// TypeClassFromName returns the type class with the given name,
// e.g. "uint" or "struct", or TypeClassUnknown.
func TypeClassFromName(name string) TypeClass {
	return typeClassesByName[name]
}

// Name returns the name of the type class as it appears
// in solc type identifiers and ABI type strings.
func (c TypeClass) Name() string {
	switch c {
	case TypeClassBool:
		return "bool"
	case TypeClassAddress:
		return "address"
	case TypeClassUint:
		return "uint"
	case TypeClassInt:
		return "int"
	case TypeClassFixed:
		return "fixed"
	case TypeClassUfixed:
		return "ufixed"
	case TypeClassString:
		return "string"
	case TypeClassBytes:
		return "bytes"
	case TypeClassArray:
		return "array"
	case TypeClassMapping:
		return "mapping"
	case TypeClassFunction:
		return "function"
	case TypeClassStruct:
		return "struct"
	case TypeClassEnum:
		return "enum"
	case TypeClassContract:
		return "contract"
	case TypeClassMagic:
		return "magic"
	case TypeClassTuple:
		return "tuple"
	case TypeClassUnknown:
		return "unknown"
	}

	panic(errors.NewUnreachableError())
}

// IsElementary returns true for the classes whose values
// are value types or byte sequences (the classes allowed as mapping keys).
func (c TypeClass) IsElementary() bool {
	switch c {
	case TypeClassBool,
		TypeClassAddress,
		TypeClassUint,
		TypeClassInt,
		TypeClassFixed,
		TypeClassUfixed,
		TypeClassString,
		TypeClassBytes:

		return true

	default:
		return false
	}
}

func (c TypeClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Name())
}
