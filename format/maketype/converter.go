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
	"github.com/rs/zerolog"

	"github.com/kingjbbrooks/truffle/abi"
	"github.com/kingjbbrooks/truffle/ast"
	"github.com/kingjbbrooks/truffle/compiler"
	"github.com/kingjbbrooks/truffle/errors"
	"github.com/kingjbbrooks/truffle/format"
)

// DefaultMaxDepth is the default maximum nesting depth of resolved types.
const DefaultMaxDepth = 256

// A Converter resolves type descriptors from AST nodes and ABI parameters.
//
// A Converter is immutable and may be used by multiple goroutines.
type Converter struct {
	facts    ast.Facts
	logger   zerolog.Logger
	maxDepth int
}

type Option func(*Converter)

// WithFacts returns a new Converter Option
// which sets the provider of facts about AST nodes.
func WithFacts(facts ast.Facts) Option {
	return func(converter *Converter) {
		converter.facts = facts
	}
}

// WithLogger returns a new Converter Option
// which sets the logger resolutions are logged to at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(converter *Converter) {
		converter.logger = logger
	}
}

// WithMaxDepth returns a new Converter Option
// which sets the maximum nesting depth of resolved types.
func WithMaxDepth(maxDepth int) Option {
	return func(converter *Converter) {
		converter.maxDepth = maxDepth
	}
}

// NewConverter returns a Converter using ast.DefaultFacts,
// not logging, and limiting nesting to DefaultMaxDepth, unless configured otherwise.
func NewConverter(options ...Option) *Converter {
	converter := &Converter{
		facts:    ast.DefaultFacts{},
		logger:   zerolog.Nop(),
		maxDepth: DefaultMaxDepth,
	}

	for _, option := range options {
		option(converter)
	}

	converter.logger = converter.logger.With().
		Str("component", "maketype").
		Logger()

	return converter
}

func (c *Converter) checkDepth(depth int) error {
	if depth > c.maxDepth {
		return &NestingTooDeepError{
			MaxDepth: c.maxDepth,
		}
	}
	return nil
}

// recoverPanic returns panics of the facts provider as errors.
// Values which are not errors are wrapped in an errors.ExternalError.
// Internal errors are re-raised.
func (c *Converter) recoverPanic(err *error) {
	r := recover()
	if r == nil {
		return
	}

	recovered := errors.Recover(r)
	if errors.IsInternalError(recovered) {
		panic(r)
	}

	c.logger.Debug().
		Err(recovered).
		Msg("recovered panic")

	*err = recovered
}

var defaultConverter = NewConverter()

// DefinitionToType resolves the type of a variable declaration or type name node,
// using the default converter.
func DefinitionToType(
	definition *ast.Node,
	compilerVersion compiler.Version,
	forceLocation ForceLocation,
) (format.Type, error) {
	return defaultConverter.DefinitionToType(definition, compilerVersion, forceLocation)
}

// DefinitionToStoredType resolves the type declared by a struct, enum, or contract definition,
// using the default converter.
func DefinitionToStoredType(
	definition *ast.Node,
	compilerVersion compiler.Version,
	declarations ast.Declarations,
) (format.UserDefinedType, error) {
	return defaultConverter.DefinitionToStoredType(definition, compilerVersion, declarations)
}

// AbiParameterToType resolves the type of an ABI parameter,
// using the default converter.
func AbiParameterToType(parameter *abi.Parameter) (format.Type, error) {
	return defaultConverter.AbiParameterToType(parameter)
}
