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

package cbor

import (
	"bytes"
	"errors"
	"fmt"

	_cbor "github.com/fxamacker/cbor/v2"
)

// DuplicateKeyError is returned when encoding a map that contains the same
// key more than once
type DuplicateKeyError struct {
	Key Value
}

func (e DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate map key of type %s", TypeName(e.Key))
}

// typeHeader returns the CBOR header bytes for the given major type and
// length/value argument
func typeHeader(majorType uint8, n uint64) []byte {
	switch {
	case n <= uint64(CborMaxUintSimple):
		return []byte{majorType | uint8(n)}
	case n < 1<<8:
		return []byte{majorType | 24, uint8(n)}
	case n < 1<<16:
		return []byte{majorType | 25, uint8(n >> 8), uint8(n)}
	case n < 1<<32:
		return []byte{
			majorType | 26,
			uint8(n >> 24), uint8(n >> 16), uint8(n >> 8), uint8(n),
		}
	default:
		return []byte{
			majorType | 27,
			uint8(n >> 56), uint8(n >> 48), uint8(n >> 40), uint8(n >> 32),
			uint8(n >> 24), uint8(n >> 16), uint8(n >> 8), uint8(n),
		}
	}
}

// marshalValue encodes a child value, catching nil interface values that
// would otherwise encode as CBOR null
func marshalValue(v Value) ([]byte, error) {
	if v == nil {
		return nil, errors.New("cannot encode nil value")
	}
	return Encode(v)
}

func (v Uint) MarshalCBOR() ([]byte, error) {
	return Encode(uint64(v))
}

func (v NegInt) MarshalCBOR() ([]byte, error) {
	if v >= 0 {
		return nil, fmt.Errorf("negative integer holds non-negative value: %d", int64(v))
	}
	return Encode(int64(v))
}

func (v ByteString) MarshalCBOR() ([]byte, error) {
	if v == nil {
		// A nil slice is still an (empty) bytestring, not null
		v = ByteString{}
	}
	return Encode([]byte(v))
}

func (v TextString) MarshalCBOR() ([]byte, error) {
	return Encode(string(v))
}

func (a Array) MarshalCBOR() ([]byte, error) {
	buf := bytes.NewBuffer(typeHeader(CborTypeArray, uint64(len(a))))
	for _, item := range a {
		data, err := marshalValue(item)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	return buf.Bytes(), nil
}

func (m Map) MarshalCBOR() ([]byte, error) {
	buf := bytes.NewBuffer(typeHeader(CborTypeMap, uint64(len(m))))
	seenKeys := make(map[string]struct{}, len(m))
	for _, entry := range m {
		keyData, err := marshalValue(entry.Key)
		if err != nil {
			return nil, err
		}
		if _, ok := seenKeys[string(keyData)]; ok {
			return nil, DuplicateKeyError{Key: entry.Key}
		}
		seenKeys[string(keyData)] = struct{}{}
		valueData, err := marshalValue(entry.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(keyData)
		buf.Write(valueData)
	}
	return buf.Bytes(), nil
}

func (v Simple) MarshalCBOR() ([]byte, error) {
	return Encode(_cbor.SimpleValue(v))
}

func (v Float) MarshalCBOR() ([]byte, error) {
	return Encode(float64(v))
}

func (t Tag) MarshalCBOR() ([]byte, error) {
	content, err := marshalValue(t.Content)
	if err != nil {
		return nil, err
	}
	return Encode(_cbor.RawTag{
		Number:  t.Number,
		Content: content,
	})
}
