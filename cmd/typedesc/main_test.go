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
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const tokenABI = `
[
  {
    "type": "function",
    "name": "transfer",
    "inputs": [
      {"name": "to", "type": "address", "internalType": "address"},
      {"name": "amount", "type": "uint256", "internalType": "uint256"}
    ],
    "outputs": [
      {"name": "", "type": "bool", "internalType": "bool"}
    ],
    "stateMutability": "nonpayable"
  }
]
`

const walletArtifact = `
{
  "contractName": "Wallet",
  "abi": [],
  "compiler": {"name": "solc", "version": "0.5.16+commit.9c3226ce.Emscripten.clang"},
  "ast": {
    "id": 30,
    "nodeType": "SourceUnit",
    "nodes": [
      {
        "id": 20,
        "nodeType": "ContractDefinition",
        "name": "Wallet",
        "contractKind": "contract",
        "nodes": [
          {
            "id": 3,
            "nodeType": "StructDefinition",
            "name": "Entry",
            "canonicalName": "Wallet.Entry",
            "members": [
              {
                "id": 1,
                "nodeType": "VariableDeclaration",
                "name": "owner",
                "typeDescriptions": {
                  "typeIdentifier": "t_address_payable",
                  "typeString": "address payable"
                }
              }
            ]
          },
          {
            "id": 4,
            "nodeType": "VariableDeclaration",
            "name": "entries",
            "typeDescriptions": {
              "typeIdentifier": "t_mapping$_t_uint256_$_t_struct$_Entry_$3_storage_$",
              "typeString": "mapping(uint256 => struct Wallet.Entry)"
            }
          }
        ]
      }
    ]
  }
}
`

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()

	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return output.String(), err
}

func TestABICommand(t *testing.T) {

	t.Parallel()

	path := writeFile(t, "token.abi.json", tokenABI)

	t.Run("text", func(t *testing.T) {

		t.Parallel()

		output, err := run(t, "abi", path)
		require.NoError(t, err)

		assert.Equal(t,
			"transfer(address,uint256) to: address\n"+
				"transfer(address,uint256) amount: uint256\n"+
				"transfer(address,uint256) : bool\n",
			output,
		)
	})

	t.Run("json", func(t *testing.T) {

		t.Parallel()

		output, err := run(t, "abi", "--format", "json", path)
		require.NoError(t, err)

		var results []map[string]any
		err = json.Unmarshal([]byte(output), &results)
		require.NoError(t, err)

		require.Len(t, results, 3)
		assert.Equal(t, "transfer(address,uint256) amount", results[1]["name"])
		assert.Equal(t,
			map[string]any{
				"typeClass": "uint",
				"bits":      float64(256),
				"typeHint":  "uint256",
			},
			results[1]["type"],
		)
	})

	t.Run("yaml", func(t *testing.T) {

		t.Parallel()

		output, err := run(t, "abi", "--format", "yaml", path)
		require.NoError(t, err)

		var results []map[string]any
		err = yaml.Unmarshal([]byte(output), &results)
		require.NoError(t, err)
		require.Len(t, results, 3)
	})

	t.Run("cbor", func(t *testing.T) {

		t.Parallel()

		output, err := run(t, "abi", "--format", "cbor", path)
		require.NoError(t, err)

		lines := bytes.Split(bytes.TrimSpace([]byte(output)), []byte("\n"))
		require.Len(t, lines, 3)

		_, encoded, ok := bytes.Cut(lines[0], []byte(": "))
		require.True(t, ok)

		data, err := hex.DecodeString(string(encoded))
		require.NoError(t, err)

		var decoded map[string]any
		err = cbor.Unmarshal(data, &decoded)
		require.NoError(t, err)
		assert.Equal(t, "address", decoded["typeClass"])
	})

	t.Run("artifact", func(t *testing.T) {

		t.Parallel()

		artifactPath := writeFile(t, "Token.json", `{"contractName": "Token", "abi": `+tokenABI+`}`)

		output, err := run(t, "abi", artifactPath)
		require.NoError(t, err)
		assert.Contains(t, output, "transfer(address,uint256) to: address\n")
	})

	t.Run("invalid type", func(t *testing.T) {

		t.Parallel()

		invalidPath := writeFile(t, "invalid.abi.json", `
          [
            {
              "type": "event",
              "name": "Moved",
              "inputs": [{"name": "to", "type": "adress", "indexed": true}]
            }
          ]
        `)

		_, err := run(t, "abi", invalidPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Moved(adress)")
	})

	t.Run("unknown format", func(t *testing.T) {

		t.Parallel()

		_, err := run(t, "abi", "--format", "xml", path)
		require.Error(t, err)
	})
}

func TestASTCommand(t *testing.T) {

	t.Parallel()

	path := writeFile(t, "Wallet.json", walletArtifact)

	t.Run("declarations", func(t *testing.T) {

		t.Parallel()

		output, err := run(t, "ast", path)
		require.NoError(t, err)

		assert.Equal(t,
			"Wallet: contract Wallet\n"+
				"Entry: struct Wallet.Entry {\n"+
				"    address payable owner;\n"+
				"}\n",
			output,
		)
	})

	t.Run("query", func(t *testing.T) {

		t.Parallel()

		output, err := run(t,
			"ast",
			"--query", `.. | objects | select(.name == "entries")`,
			path,
		)
		require.NoError(t, err)

		assert.Equal(t,
			"entries: mapping(uint256 => struct Wallet.Entry storage) storage\n",
			output,
		)
	})

	t.Run("compiler version override", func(t *testing.T) {

		t.Parallel()

		output, err := run(t,
			"ast",
			"--compiler-version", "0.4.24",
			"--query", `.. | objects | select(.name == "owner")`,
			path,
		)
		require.NoError(t, err)

		assert.Equal(t, "owner: address\n", output)
	})

	t.Run("invalid query", func(t *testing.T) {

		t.Parallel()

		_, err := run(t, "ast", "--query", ".[", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid query")
	})

	t.Run("query result is not a node", func(t *testing.T) {

		t.Parallel()

		_, err := run(t, "ast", "--query", ".id", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a node")
	})
}
