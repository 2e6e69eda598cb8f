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

//go:generate go run golang.org/x/tools/cmd/stringer -type=Visibility

// Visibility is the visibility of a function type.
type Visibility uint

const (
	VisibilityUnknown Visibility = iota
	VisibilityInternal
	VisibilityExternal
)

func VisibilityFromName(name string) Visibility {
	switch name {
	case "internal":
		return VisibilityInternal
	case "external":
		return VisibilityExternal
	default:
		return VisibilityUnknown
	}
}

func (v Visibility) Name() string {
	switch v {
	case VisibilityInternal:
		return "internal"
	case VisibilityExternal:
		return "external"
	case VisibilityUnknown:
		return "unknown"
	}

	panic(errors.NewUnreachableError())
}

func (v Visibility) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Name())
}
