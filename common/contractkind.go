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

//go:generate go run golang.org/x/tools/cmd/stringer -type=ContractKind

type ContractKind uint

const (
	ContractKindUnknown ContractKind = iota
	ContractKindContract
	ContractKindLibrary
	ContractKindInterface
)

func ContractKindFromName(name string) ContractKind {
	switch name {
	case "contract":
		return ContractKindContract
	case "library":
		return ContractKindLibrary
	case "interface":
		return ContractKindInterface
	default:
		return ContractKindUnknown
	}
}

func (k ContractKind) Name() string {
	switch k {
	case ContractKindContract:
		return "contract"
	case ContractKindLibrary:
		return "library"
	case ContractKindInterface:
		return "interface"
	case ContractKindUnknown:
		return "unknown"
	}

	panic(errors.NewUnreachableError())
}

func (k ContractKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.Name())
}
