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

package cbor

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/kingjbbrooks/truffle/encoding"
	"github.com/kingjbbrooks/truffle/format"
)

// EncMode encodes deterministically:
// map keys are sorted and integers use their shortest form.
var EncMode = func() cbor.EncMode {
	options := cbor.CoreDetEncOptions()
	encMode, err := options.EncMode()
	if err != nil {
		panic(err)
	}
	return encMode
}()

// An Encoder converts type descriptors into CBOR-encoded bytes.
type Encoder struct {
	enc *cbor.Encoder
}

// Encode returns the CBOR-encoded representation of the given type descriptor.
func Encode(ty format.Type) ([]byte, error) {
	var w bytes.Buffer
	enc := NewEncoder(&w)

	err := enc.Encode(ty)
	if err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// MustEncode returns the CBOR-encoded representation of the given type descriptor,
// or panics if the type descriptor cannot be represented as CBOR.
func MustEncode(ty format.Type) []byte {
	b, err := Encode(ty)
	if err != nil {
		panic(err)
	}
	return b
}

// NewEncoder initializes an Encoder that will write CBOR-encoded bytes to the
// given io.Writer.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: EncMode.NewEncoder(w)}
}

// Encode writes the CBOR-encoded representation of the given type descriptor
// to this encoder's io.Writer.
func (e *Encoder) Encode(ty format.Type) (err error) {
	// capture panics that occur during preparation
	defer func() {
		if r := recover(); r != nil {
			var ok bool
			err, ok = r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}

			err = fmt.Errorf("failed to encode type: %w", err)
		}
	}()

	prepared := encoding.Prepare(ty)

	return e.enc.Encode(prepared)
}

// Codec is the CBOR encoding.Codec.
type Codec struct{}

var _ encoding.Codec = Codec{}

func (Codec) Encode(ty format.Type) ([]byte, error) {
	return Encode(ty)
}

func (Codec) MustEncode(ty format.Type) []byte {
	return MustEncode(ty)
}
