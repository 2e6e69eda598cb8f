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

package compiler

import (
	"encoding/json"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/kingjbbrooks/truffle/errors"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Family

// Family is a coarse classification of compiler versions
// which selects version-dependent resolution behaviour.
type Family uint

const (
	FamilyUnknown Family = iota
	// FamilyPre050 are solc versions before 0.5.0
	FamilyPre050
	// Family05x are solc versions 0.5.0 and later, including pre-releases of 0.5.0
	Family05x
)

func (f Family) Name() string {
	switch f {
	case FamilyPre050:
		return "pre-0.5.0"
	case Family05x:
		return "0.5.x"
	case FamilyUnknown:
		return "unknown"
	}

	panic(errors.NewUnreachableError())
}

func (f Family) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Name())
}

const SolcName = "solc"

// Version identifies the compiler which produced an artifact,
// in the shape it is recorded in compiled artifacts.
type Version struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// NewSolcVersion returns the version of the solc compiler with the given version string.
func NewSolcVersion(version string) Version {
	return Version{
		Name:    SolcName,
		Version: version,
	}
}

// solc reports versions like "0.5.16+commit.9c3226ce.Emscripten.clang",
// whose build metadata is not valid semver.
var versionPattern = regexp.MustCompile(`^v?(\d+\.\d+\.\d+)(-[0-9A-Za-z.-]+)?`)

// Semver returns the canonical semantic version ("v0.5.16") of the compiler,
// without build metadata, or false if the version string is not a version.
func (v Version) Semver() (string, bool) {
	match := versionPattern.FindStringSubmatch(strings.TrimSpace(v.Version))
	if match == nil {
		return "", false
	}

	canonical := semver.Canonical("v" + match[1] + match[2])
	if canonical == "" {
		// nightly builds may carry pre-release identifiers
		// which are not valid semver, e.g. leading zeros
		canonical = semver.Canonical("v" + match[1])
	}
	if canonical == "" {
		return "", false
	}
	return canonical, true
}

// Family returns the family of the compiler.
// Versions which are not solc versions have an unknown family.
func (v Version) Family() Family {
	if v.Name != SolcName {
		return FamilyUnknown
	}

	version, ok := v.Semver()
	if !ok {
		return FamilyUnknown
	}

	// compare the major and minor version only,
	// so pre-releases of 0.5.0 belong to the 0.5.x family
	if semver.Compare(semver.MajorMinor(version), "v0.5") >= 0 {
		return Family05x
	}
	return FamilyPre050
}

func (v Version) String() string {
	if v.Name == "" {
		return v.Version
	}
	return v.Name + " " + v.Version
}
