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

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kingjbbrooks/truffle/abi"
	"github.com/kingjbbrooks/truffle/compiler"
	"github.com/kingjbbrooks/truffle/errors"
)

// artifact is a compiled contract artifact, as written by truffle.
type artifact struct {
	ContractName string            `json:"contractName"`
	ABI          json.RawMessage   `json:"abi"`
	AST          json.RawMessage   `json:"ast"`
	Compiler     *compiler.Version `json:"compiler"`
}

func decodeArtifact(path string, data []byte) (*artifact, error) {
	var result artifact
	err := json.Unmarshal(data, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to decode artifact %s: %w", path, err)
	}

	return &result, nil
}

// readABI reads an ABI, either as a JSON array,
// or as the "abi" property of an artifact.
func readABI(path string) (abi.ABI, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '[' {
		artifact, err := decodeArtifact(path, data)
		if err != nil {
			return nil, err
		}
		if len(artifact.ABI) == 0 {
			return nil, errors.NewDefaultUserError("artifact %s has no ABI", path)
		}
		data = artifact.ABI
	}

	return abi.ParseJSON(data)
}

func newABICommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "abi FILE",
		Short: "Resolve the types of all parameters of an ABI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contractABI, err := readABI(args[0])
			if err != nil {
				return err
			}

			results, err := resolveABI(opts, contractABI)
			if err != nil {
				return err
			}

			return writeResults(cmd.OutOrStdout(), opts.outputFormat, opts.color, results)
		},
	}
}

func resolveABI(opts *options, contractABI abi.ABI) ([]result, error) {
	converter := opts.converter()

	var results []result

	err := contractABI.Parameters(func(entry *abi.Entry, parameter *abi.Parameter) error {
		ty, err := converter.AbiParameterToType(parameter)
		if err != nil {
			return fmt.Errorf("%s: parameter %s: %w", entry.Signature(), parameter, err)
		}

		results = append(
			results,
			result{
				Name: fmt.Sprintf("%s %s", entry.Signature(), parameter.Name),
				Type: ty,
			},
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}
