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
	"encoding/json"
	"fmt"
	"os"

	"github.com/itchyny/gojq"
	"github.com/spf13/cobra"

	"github.com/kingjbbrooks/truffle/ast"
	"github.com/kingjbbrooks/truffle/common"
	"github.com/kingjbbrooks/truffle/compiler"
	"github.com/kingjbbrooks/truffle/errors"
	"github.com/kingjbbrooks/truffle/format/maketype"
)

const defaultCompilerVersion = "0.8.0"

func newASTCommand(opts *options) *cobra.Command {
	var query string
	var compilerVersion string

	cmd := &cobra.Command{
		Use:   "ast FILE",
		Short: "Resolve the types of the declarations of a solc JSON AST",
		Long: "Resolves the struct, enum, and contract declarations of a source unit, " +
			"given either as a solc JSON AST or as an artifact. " +
			"A jq query selects other nodes instead, e.g. " +
			"'.. | objects | select(.nodeType == \"VariableDeclaration\")'.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sourceUnit, version, err := readAST(args[0])
			if err != nil {
				return err
			}

			if compilerVersion != "" {
				version = compiler.NewSolcVersion(compilerVersion)
			}

			var nodes []*ast.Node
			if query != "" {
				nodes, err = queryNodes(sourceUnit, query)
			} else {
				nodes, err = declarationNodes(sourceUnit)
			}
			if err != nil {
				return err
			}

			results, err := resolveNodes(opts, sourceUnit, nodes, version)
			if err != nil {
				return err
			}

			return writeResults(cmd.OutOrStdout(), opts.outputFormat, opts.color, results)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&query, "query", "q", "", "jq query selecting the nodes to resolve")
	flags.StringVar(&compilerVersion, "compiler-version", "", "solc version, overriding the artifact's")

	return cmd
}

// readAST reads a source unit, either as a solc JSON AST,
// or as the "ast" property of an artifact.
func readAST(path string) (json.RawMessage, compiler.Version, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, compiler.Version{}, err
	}

	artifact, err := decodeArtifact(path, data)
	if err != nil {
		return nil, compiler.Version{}, err
	}

	version := compiler.NewSolcVersion(defaultCompilerVersion)
	if artifact.Compiler != nil {
		version = *artifact.Compiler
	}

	if len(artifact.AST) != 0 {
		return artifact.AST, version, nil
	}

	// not an artifact, the file is the AST
	return data, version, nil
}

func declarationNodes(sourceUnit json.RawMessage) ([]*ast.Node, error) {
	root, err := ast.Unmarshal(sourceUnit)
	if err != nil {
		return nil, err
	}

	var nodes []*ast.Node
	ast.Walk(root, func(node *ast.Node) bool {
		if common.DeclarationKindFromNodeType(node.NodeType) != common.DeclarationKindUnknown {
			nodes = append(nodes, node)
		}
		return true
	})
	return nodes, nil
}

func queryNodes(sourceUnit json.RawMessage, source string) ([]*ast.Node, error) {
	query, err := gojq.Parse(source)
	if err != nil {
		return nil, errors.NewDefaultUserError("invalid query: %w", err)
	}

	var input any
	err = json.Unmarshal(sourceUnit, &input)
	if err != nil {
		return nil, err
	}

	var nodes []*ast.Node

	iter := query.Run(input)
	for {
		value, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := value.(error); ok {
			return nil, fmt.Errorf("query failed: %w", err)
		}

		if _, ok := value.(map[string]any); !ok {
			return nil, errors.NewDefaultUserError("query result is not a node: %v", value)
		}

		data, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}

		node, err := ast.Unmarshal(data)
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, node)
	}

	return nodes, nil
}

func resolveNodes(
	opts *options,
	sourceUnit json.RawMessage,
	nodes []*ast.Node,
	version compiler.Version,
) ([]result, error) {

	root, err := ast.Unmarshal(sourceUnit)
	if err != nil {
		return nil, err
	}

	declarations := ast.NewDeclarationTableFromSources(root)
	converter := opts.converter()

	results := make([]result, 0, len(nodes))

	for _, node := range nodes {
		name := node.Name
		if name == "" {
			name = fmt.Sprintf("#%d", node.ID)
		}

		if common.DeclarationKindFromNodeType(node.NodeType) != common.DeclarationKindUnknown {
			ty, err := converter.DefinitionToStoredType(node, version, declarations)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			results = append(results, result{Name: name, Type: ty})
			continue
		}

		ty, err := converter.DefinitionToType(node, version, maketype.InheritLocation{})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		results = append(results, result{Name: name, Type: ty})
	}

	return results, nil
}
