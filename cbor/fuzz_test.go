// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build go1.18

package cbor

import (
	"errors"
	"testing"
)

func FuzzDecodeValue(f *testing.F) {
	// Seed corpus with valid CBOR samples
	f.Add([]byte{0x00})                               // integer 0
	f.Add([]byte{0x18, 0x64})                         // integer 100
	f.Add([]byte{0x20})                               // integer -1
	f.Add([]byte{0x40})                               // empty bytestring
	f.Add([]byte{0x44, 0x01, 0x02, 0x03, 0x04})       // bytestring
	f.Add([]byte{0x60})                               // empty text string
	f.Add([]byte{0x65, 0x68, 0x65, 0x6c, 0x6c, 0x6f}) // "hello"
	f.Add([]byte{0x80})                               // empty array
	f.Add([]byte{0x83, 0x01, 0x02, 0x03})             // [1, 2, 3]
	f.Add([]byte{0xa0})                               // empty map
	f.Add([]byte{0xa2, 0x01, 0x02, 0x03, 0x04})       // {1: 2, 3: 4}
	f.Add([]byte{0xc2, 0x41, 0x01})                   // 2(h'01')
	f.Add([]byte{0xf4})                               // false
	f.Add([]byte{0xf5})                               // true
	f.Add([]byte{0xf6})                               // null
	f.Add([]byte{0xf9, 0x3c, 0x00})                   // 1.0 (half)

	f.Fuzz(func(t *testing.T, data []byte) {
		v, err := DecodeValue(data)
		if err != nil {
			return
		}
		// Anything that decodes must encode again without error
		if _, err := Encode(v); err != nil {
			var dupKeyErr DuplicateKeyError
			if errors.As(err, &dupKeyErr) {
				// Duplicate map keys decode fine but refuse to re-encode
				return
			}
			t.Errorf("failed to re-encode decoded value %#v: %s", v, err)
		}
	})
}

func FuzzStreamDecoder(f *testing.F) {
	f.Add([]byte{0xa2, 0x01, 0x02, 0x03, 0x04})
	f.Add([]byte{0x83, 0x01, 0x02, 0x03})
	f.Fuzz(func(t *testing.T, data []byte) {
		sd, err := NewStreamDecoder(data)
		if err != nil {
			return
		}
		for !sd.EOF() {
			if _, err := sd.DecodeValue(); err != nil {
				return
			}
		}
	})
}
