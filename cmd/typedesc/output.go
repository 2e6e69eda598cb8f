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
	"fmt"
	"io"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/k0kubun/pp/v3"
	"github.com/tidwall/pretty"

	"github.com/kingjbbrooks/truffle/encoding"
	"github.com/kingjbbrooks/truffle/encoding/cbor"
	jsoncodec "github.com/kingjbbrooks/truffle/encoding/json"
	"github.com/kingjbbrooks/truffle/errors"
	"github.com/kingjbbrooks/truffle/format"
)

const (
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatCBOR  = "cbor"
	formatText  = "text"
	formatDebug = "debug"
)

var outputFormats = []string{
	formatJSON,
	formatYAML,
	formatCBOR,
	formatText,
	formatDebug,
}

func checkOutputFormat(outputFormat string) error {
	if !slices.Contains(outputFormats, outputFormat) {
		return errors.NewDefaultUserError("unknown output format %q", outputFormat)
	}
	return nil
}

// result is a resolved type descriptor and the name of what it describes,
// e.g. a parameter or a declaration.
type result struct {
	Name string
	Type format.Type
}

type resultObject struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type"`
}

func resultsJSON(results []result) ([]byte, error) {
	objects := make([]resultObject, len(results))
	for i, result := range results {
		data, err := jsoncodec.Encode(result.Type)
		if err != nil {
			return nil, err
		}
		objects[i] = resultObject{
			Name: result.Name,
			Type: data,
		}
	}
	return json.Marshal(objects)
}

func writeResults(w io.Writer, outputFormat string, color bool, results []result) error {
	switch outputFormat {
	case formatJSON:
		data, err := resultsJSON(results)
		if err != nil {
			return err
		}

		data = pretty.Pretty(data)
		if color {
			data = pretty.Color(data, nil)
		}

		_, err = w.Write(data)
		return err

	case formatYAML:
		data, err := resultsJSON(results)
		if err != nil {
			return err
		}

		data, err = yaml.JSONToYAML(data)
		if err != nil {
			return err
		}

		_, err = w.Write(data)
		return err

	case formatCBOR:
		for _, result := range results {
			data, err := cbor.Encode(result.Type)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "%s: %s\n", result.Name, hex.EncodeToString(data))
			if err != nil {
				return err
			}
		}
		return nil

	case formatText:
		var buffer bytes.Buffer
		for _, result := range results {
			fmt.Fprintf(&buffer, "%s: %s\n", result.Name, result.Type)
		}
		_, err := buffer.WriteTo(w)
		return err

	case formatDebug:
		printer := pp.New()
		printer.SetOutput(w)
		printer.SetColoringEnabled(color)

		for _, result := range results {
			_, err := fmt.Fprintf(w, "%s: ", result.Name)
			if err != nil {
				return err
			}
			_, err = printer.Println(encoding.Prepare(result.Type))
			if err != nil {
				return err
			}
		}
		return nil
	}

	return fmt.Errorf("unknown output format %q", outputFormat)
}
