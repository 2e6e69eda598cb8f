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

package abi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parameter is a parameter of an ABI entry, as emitted by solc.
type Parameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
	// InternalType is the source-level type, e.g. "struct C.S[]".
	// Absent for compilers before 0.5.11.
	InternalType string       `json:"internalType,omitempty"`
	Components   []*Parameter `json:"components,omitempty"`
	Indexed      bool         `json:"indexed,omitempty"`
}

func (p *Parameter) String() string {
	if p.Name == "" {
		return p.Type
	}
	return fmt.Sprintf("%s %s", p.Type, p.Name)
}

// EntryType is the type of an ABI entry.
type EntryType string

const (
	EntryTypeFunction    EntryType = "function"
	EntryTypeConstructor EntryType = "constructor"
	EntryTypeFallback    EntryType = "fallback"
	EntryTypeReceive     EntryType = "receive"
	EntryTypeEvent       EntryType = "event"
	EntryTypeError       EntryType = "error"
)

// Entry is an item of a contract ABI.
type Entry struct {
	Type            EntryType    `json:"type"`
	Name            string       `json:"name,omitempty"`
	Inputs          []*Parameter `json:"inputs,omitempty"`
	Outputs         []*Parameter `json:"outputs,omitempty"`
	StateMutability string       `json:"stateMutability,omitempty"`
	Anonymous       bool         `json:"anonymous,omitempty"`
}

// Signature returns the canonical signature of the entry, e.g. "transfer(address,uint256)".
func (e *Entry) Signature() string {
	var builder strings.Builder
	builder.WriteString(e.Name)
	writeParameterTypes(&builder, e.Inputs)
	return builder.String()
}

func writeParameterTypes(builder *strings.Builder, parameters []*Parameter) {
	builder.WriteByte('(')
	for i, parameter := range parameters {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(canonicalType(parameter))
	}
	builder.WriteByte(')')
}

// canonicalType replaces the "tuple" prefix of tuple types
// with the parenthesized component types.
func canonicalType(parameter *Parameter) string {
	suffix, ok := strings.CutPrefix(parameter.Type, "tuple")
	if !ok {
		return parameter.Type
	}

	var builder strings.Builder
	writeParameterTypes(&builder, parameter.Components)
	builder.WriteString(suffix)
	return builder.String()
}

// ABI is the interface of a contract.
type ABI []*Entry

// ParseJSON decodes a contract ABI from its JSON representation.
func ParseJSON(data []byte) (ABI, error) {
	var abi ABI
	err := json.Unmarshal(data, &abi)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ABI: %w", err)
	}

	for i, entry := range abi {
		if entry == nil {
			return nil, fmt.Errorf("failed to decode ABI: entry %d is null", i)
		}
	}

	return abi, nil
}

// ParseParameterJSON decodes a single ABI parameter.
func ParseParameterJSON(data []byte) (*Parameter, error) {
	var parameter Parameter
	err := json.Unmarshal(data, &parameter)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ABI parameter: %w", err)
	}
	return &parameter, nil
}

// Parameters calls f for each input and output parameter of each entry,
// in order.
func (abi ABI) Parameters(f func(entry *Entry, parameter *Parameter) error) error {
	for _, entry := range abi {
		for _, parameter := range entry.Inputs {
			if err := f(entry, parameter); err != nil {
				return err
			}
		}
		for _, parameter := range entry.Outputs {
			if err := f(entry, parameter); err != nil {
				return err
			}
		}
	}
	return nil
}
