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
	"fmt"

	"github.com/kingjbbrooks/truffle/compiler"
	"github.com/kingjbbrooks/truffle/errors"
	"github.com/kingjbbrooks/truffle/format"
)

// UnknownTypeClassError is returned when the type class
// of a type identifier or an ABI type string is not recognized.
type UnknownTypeClassError struct {
	// Type is the type identifier or ABI type string
	Type string
	// Suggestion is the closest known type class, if any
	Suggestion string
}

var _ errors.UserError = &UnknownTypeClassError{}
var _ errors.SecondaryError = &UnknownTypeClassError{}

func (*UnknownTypeClassError) IsUserError() {}

func (e *UnknownTypeClassError) Error() string {
	return fmt.Sprintf("unknown type class of type `%s`", e.Type)
}

func (e *UnknownTypeClassError) SecondaryError() string {
	if e.Suggestion == "" {
		return ""
	}
	return fmt.Sprintf("did you mean `%s`?", e.Suggestion)
}

// MalformedQualifiedNameError is returned when the type string
// of a struct or enum does not have the form `Contract.Name`.
type MalformedQualifiedNameError struct {
	TypeString string
}

var _ errors.UserError = &MalformedQualifiedNameError{}

func (*MalformedQualifiedNameError) IsUserError() {}

func (e *MalformedQualifiedNameError) Error() string {
	return fmt.Sprintf(
		"malformed qualified name `%s`: expected `Contract.Name`",
		e.TypeString,
	)
}

// MalformedNumberError is returned when a bit width, a number of decimal places,
// a byte length, or an array length is invalid.
type MalformedNumberError struct {
	// Kind is what the number denotes, e.g. "bit width"
	Kind string
	// Type is the type identifier or ABI type string containing the number
	Type string
	Err  error
}

var _ errors.UserError = &MalformedNumberError{}

func (*MalformedNumberError) IsUserError() {}

func (e *MalformedNumberError) Unwrap() error {
	return e.Err
}

func (e *MalformedNumberError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid %s in type `%s`", e.Kind, e.Type)
	}
	return fmt.Sprintf("invalid %s in type `%s`: %s", e.Kind, e.Type, e.Err.Error())
}

// UnknownMagicVariableError is returned when a magic type identifier
// does not name a variable.
type UnknownMagicVariableError struct {
	TypeIdentifier string
}

var _ errors.UserError = &UnknownMagicVariableError{}

func (*UnknownMagicVariableError) IsUserError() {}

func (e *UnknownMagicVariableError) Error() string {
	return fmt.Sprintf("unknown magic variable of type `%s`", e.TypeIdentifier)
}

// UnknownVisibilityError is returned when the visibility of a function type
// is neither internal nor external.
type UnknownVisibilityError struct {
	TypeIdentifier string
}

var _ errors.UserError = &UnknownVisibilityError{}

func (*UnknownVisibilityError) IsUserError() {}

func (e *UnknownVisibilityError) Error() string {
	return fmt.Sprintf("unknown visibility of function type `%s`", e.TypeIdentifier)
}

// UnknownDeclarationKindError is returned when a node passed as a declaration
// is not a struct, enum, or contract definition.
type UnknownDeclarationKindError struct {
	NodeType string
	ID       int
}

var _ errors.UserError = &UnknownDeclarationKindError{}

func (*UnknownDeclarationKindError) IsUserError() {}

func (e *UnknownDeclarationKindError) Error() string {
	return fmt.Sprintf(
		"node %d of type `%s` does not declare a struct, enum, or contract",
		e.ID,
		e.NodeType,
	)
}

// InvalidMappingKeyError is returned when the key type of a mapping
// is not an elementary, enum, or contract type.
type InvalidMappingKeyError struct {
	KeyType format.Type
}

var _ errors.UserError = &InvalidMappingKeyError{}

func (*InvalidMappingKeyError) IsUserError() {}

func (e *InvalidMappingKeyError) Error() string {
	return fmt.Sprintf("invalid mapping key type `%s`", e.KeyType)
}

// UnsupportedCompilerError is returned when a resolution depends on
// the compiler version, but the compiler is not a known solc version.
type UnsupportedCompilerError struct {
	Compiler compiler.Version
}

var _ errors.UserError = &UnsupportedCompilerError{}

func (*UnsupportedCompilerError) IsUserError() {}

func (e *UnsupportedCompilerError) Error() string {
	return fmt.Sprintf("unsupported compiler `%s`", e.Compiler)
}

// NestingTooDeepError is returned when a type is nested deeper than
// the maximum depth of the converter.
type NestingTooDeepError struct {
	MaxDepth int
}

var _ errors.UserError = &NestingTooDeepError{}

func (*NestingTooDeepError) IsUserError() {}

func (e *NestingTooDeepError) Error() string {
	return fmt.Sprintf("type is nested deeper than %d levels", e.MaxDepth)
}
