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
	"github.com/kingjbbrooks/truffle/common"
)

// ForceLocation determines the data location of the resolved reference types.
type ForceLocation interface {
	isForceLocation()
}

// InheritLocation uses the location of the definition itself.
type InheritLocation struct{}

// OverrideLocation uses the given location,
// regardless of the location of the definition.
type OverrideLocation struct {
	Location common.Location
}

// SuppressLocation omits the location.
// Used for mapping keys and the members of stored structs.
type SuppressLocation struct{}

func (InheritLocation) isForceLocation() {}

func (OverrideLocation) isForceLocation() {}

func (SuppressLocation) isForceLocation() {}
