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
	goerrors "errors"
	"fmt"
	"os"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kingjbbrooks/truffle/errors"
	"github.com/kingjbbrooks/truffle/format/maketype"
)

type options struct {
	outputFormat string
	color        bool
	verbose      bool
	maxDepth     int
}

func (o *options) logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if o.verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !o.color,
	}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func (o *options) converter() *maketype.Converter {
	return maketype.NewConverter(
		maketype.WithLogger(o.logger()),
		maketype.WithMaxDepth(o.maxDepth),
	)
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "typedesc",
		Short: "Resolve Solidity type descriptors",
		Long: "typedesc resolves the type descriptors of ABI parameters " +
			"and of solc JSON AST nodes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return checkOutputFormat(opts.outputFormat)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.outputFormat, "format", "f", formatText, "output format: json, yaml, cbor, text, or debug")
	flags.BoolVar(&opts.color, "color", false, "colorize output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log each resolution")
	flags.IntVar(&opts.maxDepth, "max-depth", maketype.DefaultMaxDepth, "maximum nesting depth of types")

	cmd.AddCommand(
		newABICommand(opts),
		newASTCommand(opts),
	)

	return cmd
}

func printError(err error, color bool) {
	au := aurora.New(aurora.WithColors(color))

	fmt.Fprintf(os.Stderr, "%s %s\n", au.Red("error:").Bold(), err)

	var secondaryError errors.SecondaryError
	if goerrors.As(err, &secondaryError) {
		secondary := secondaryError.SecondaryError()
		if secondary != "" {
			fmt.Fprintf(os.Stderr, "  %s\n", au.Yellow(secondary))
		}
	}

	if errors.IsInternalError(err) {
		fmt.Fprintln(os.Stderr, au.Faint("this is a bug, please report it"))
	}
}

func main() {
	cmd := newRootCommand()

	err := cmd.Execute()
	if err != nil {
		color, _ := cmd.PersistentFlags().GetBool("color")
		printError(err, color)
		os.Exit(1)
	}
}
