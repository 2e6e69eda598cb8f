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

//go:generate go run golang.org/x/tools/cmd/stringer -type=Mutability

// Mutability is the state mutability of a function.
type Mutability uint

const (
	MutabilityUnknown Mutability = iota
	MutabilityPure
	MutabilityView
	MutabilityNonpayable
	MutabilityPayable
)

var AllMutabilities = []Mutability{
	MutabilityPure,
	MutabilityView,
	MutabilityNonpayable,
	MutabilityPayable,
}

func MutabilityFromName(name string) Mutability {
	for _, mutability := range AllMutabilities {
		if mutability.Name() == name {
			return mutability
		}
	}
	return MutabilityUnknown
}

func (m Mutability) Name() string {
	switch m {
	case MutabilityPure:
		return "pure"
	case MutabilityView:
		return "view"
	case MutabilityNonpayable:
		return "nonpayable"
	case MutabilityPayable:
		return "payable"
	case MutabilityUnknown:
		return "unknown"
	}

	panic(errors.NewUnreachableError())
}

// Keyword returns the modifier written in source code.
// Non-payable functions have no modifier.
func (m Mutability) Keyword() string {
	switch m {
	case MutabilityNonpayable, MutabilityUnknown:
		return ""
	}
	return m.Name()
}

func (m Mutability) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Name())
}
