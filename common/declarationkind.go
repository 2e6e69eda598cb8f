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
	"github.com/kingjbbrooks/truffle/errors"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=DeclarationKind

// DeclarationKind is the kind of a user-defined type declaration.
type DeclarationKind uint

const (
	DeclarationKindUnknown DeclarationKind = iota
	DeclarationKindStruct
	DeclarationKindEnum
	DeclarationKindContract
)

// DeclarationKindFromNodeType returns the declaration kind
// for the given solc AST node type, e.g. "StructDefinition".
func DeclarationKindFromNodeType(nodeType string) DeclarationKind {
	switch nodeType {
	case "StructDefinition":
		return DeclarationKindStruct
	case "EnumDefinition":
		return DeclarationKindEnum
	case "ContractDefinition":
		return DeclarationKindContract
	default:
		return DeclarationKindUnknown
	}
}

func (k DeclarationKind) NodeType() string {
	switch k {
	case DeclarationKindStruct:
		return "StructDefinition"
	case DeclarationKindEnum:
		return "EnumDefinition"
	case DeclarationKindContract:
		return "ContractDefinition"
	case DeclarationKindUnknown:
		return ""
	}

	panic(errors.NewUnreachableError())
}

func (k DeclarationKind) TypeClass() TypeClass {
	switch k {
	case DeclarationKindStruct:
		return TypeClassStruct
	case DeclarationKindEnum:
		return TypeClassEnum
	case DeclarationKindContract:
		return TypeClassContract
	case DeclarationKindUnknown:
		return TypeClassUnknown
	}

	panic(errors.NewUnreachableError())
}
