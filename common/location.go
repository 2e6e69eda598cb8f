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

//go:generate go run golang.org/x/tools/cmd/stringer -type=Location

// Location is the data location of a reference-type value.
// LocationNone means the location is absent.
type Location uint

const (
	LocationNone Location = iota
	LocationStorage
	LocationMemory
	LocationCalldata
)

var AllLocations = []Location{
	LocationStorage,
	LocationMemory,
	LocationCalldata,
}

// LocationFromName returns the location with the given name,
// e.g. "storage", and whether the name denotes a location.
func LocationFromName(name string) (Location, bool) {
	for _, location := range AllLocations {
		if location.Name() == name {
			return location, true
		}
	}
	return LocationNone, false
}

func (l Location) Name() string {
	switch l {
	case LocationNone:
		return ""
	case LocationStorage:
		return "storage"
	case LocationMemory:
		return "memory"
	case LocationCalldata:
		return "calldata"
	}

	panic(errors.NewUnreachableError())
}

func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Name())
}
