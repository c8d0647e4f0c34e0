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
	"io"
	"math"

	_cbor "github.com/fxamacker/cbor/v2"
)

// StreamDecoder provides sequential CBOR decoding with position tracking.
// It wraps the underlying decoder to track byte offsets of each decoded item.
type StreamDecoder struct {
	dec      *_cbor.Decoder
	decMode  _cbor.DecMode // cached decode mode for reuse in Advance()
	data     []byte
	consumed int // bytes consumed by Advance() calls
}

// NewStreamDecoder creates a decoder for sequential CBOR item extraction with
// position tracking
func NewStreamDecoder(data []byte) (*StreamDecoder, error) {
	decMode, err := getDecMode()
	if err != nil {
		return nil, err
	}
	return &StreamDecoder{
		dec:     decMode.NewDecoder(bytes.NewReader(data)),
		decMode: decMode,
		data:    data,
	}, nil
}

// Position returns the current byte position in the stream
func (d *StreamDecoder) Position() int {
	return d.consumed + d.dec.NumBytesRead()
}

// Decode decodes the next CBOR item into dest and returns its byte range.
// Returns (startOffset, length, error).
func (d *StreamDecoder) Decode(dest any) (int, int, error) {
	start := d.Position()
	if err := d.dec.Decode(dest); err != nil {
		return 0, 0, err
	}
	end := d.Position()
	return start, end - start, nil
}

// EOF returns true if the decoder has reached the end of the data
func (d *StreamDecoder) EOF() bool {
	return d.Position() >= len(d.data)
}

// Advance moves the decoder position forward by n bytes without decoding.
// This is useful for skipping past headers that were parsed manually.
// Returns an error if n would advance past the end of data.
func (d *StreamDecoder) Advance(n int) error {
	if n < 0 {
		return errors.New("cannot advance by negative amount")
	}
	newPos := d.Position() + n
	if newPos > len(d.data) {
		return errors.New("advance would exceed data bounds")
	}
	d.consumed = newPos
	// Reinitialize decoder with remaining data, reusing cached DecMode
	d.dec = d.decMode.NewDecoder(bytes.NewReader(d.data[d.consumed:]))
	return nil
}

// DecodeArrayHeader decodes a CBOR array header and returns the number of
// elements. This advances the position past the header only, not the array
// contents.
func (d *StreamDecoder) DecodeArrayHeader() (int, error) {
	return d.decodeContainerHeader(CborTypeArray, "array")
}

// DecodeMapHeader decodes a CBOR map header and returns the number of
// key/value pairs. This advances the position past the header only, not the
// map contents.
func (d *StreamDecoder) DecodeMapHeader() (int, error) {
	return d.decodeContainerHeader(CborTypeMap, "map")
}

func (d *StreamDecoder) decodeContainerHeader(
	majorType uint8,
	what string,
) (int, error) {
	offset := d.Position()
	if offset >= len(d.data) {
		return 0, io.ErrUnexpectedEOF
	}
	firstByte := d.data[offset]
	if firstByte&CborTypeMask != majorType {
		return 0, fmt.Errorf(
			"expected %s (0x%x), got 0x%x",
			what,
			majorType,
			firstByte&CborTypeMask,
		)
	}
	additionalInfo := firstByte & 0x1f
	var length uint64
	var headerLen int
	switch {
	case additionalInfo <= CborMaxUintSimple:
		// Length encoded in the first byte
		length = uint64(additionalInfo)
		headerLen = 1
	case additionalInfo >= 24 && additionalInfo <= 27:
		// 1/2/4/8-byte length follows (big-endian)
		argLen := 1 << (additionalInfo - 24)
		if offset+1+argLen > len(d.data) {
			return 0, io.ErrUnexpectedEOF
		}
		for _, b := range d.data[offset+1 : offset+1+argLen] {
			length = length<<8 | uint64(b)
		}
		headerLen = 1 + argLen
	case additionalInfo == 31:
		return 0, fmt.Errorf("indefinite length %s not supported", what)
	default:
		return 0, fmt.Errorf("invalid %s additional info: %d", what, additionalInfo)
	}
	if length > uint64(math.MaxInt32) {
		return 0, fmt.Errorf("%s length exceeds maximum int32 value", what)
	}
	if err := d.Advance(headerLen); err != nil {
		return 0, err
	}
	return int(length), nil
}

// Maximum nesting depth for decoded values, matching the underlying
// decoder's default limit
const maxDecodeNesting = 32

// DecodeValue decodes a single CBOR item into its generic Value form,
// preserving map entry order. Trailing bytes after the item are an error.
func DecodeValue(data []byte) (Value, error) {
	sd, err := NewStreamDecoder(data)
	if err != nil {
		return nil, err
	}
	v, err := sd.DecodeValue()
	if err != nil {
		return nil, err
	}
	if !sd.EOF() {
		return nil, fmt.Errorf(
			"found %d extra bytes after decoded value",
			len(data)-sd.Position(),
		)
	}
	return v, nil
}

// DecodeValue decodes the next CBOR item from the stream into its generic
// Value form
func (d *StreamDecoder) DecodeValue() (Value, error) {
	return d.decodeValue(0)
}

func (d *StreamDecoder) decodeValue(depth int) (Value, error) {
	// The manually-parsed container paths recurse below, so the underlying
	// decoder's nesting limit does not cover them
	if depth >= maxDecodeNesting {
		return nil, fmt.Errorf(
			"exceeded maximum nesting depth of %d",
			maxDecodeNesting,
		)
	}
	offset := d.Position()
	if offset >= len(d.data) {
		return nil, io.ErrUnexpectedEOF
	}
	firstByte := d.data[offset]
	switch firstByte & CborTypeMask {
	case CborTypeUint:
		var tmpValue uint64
		if _, _, err := d.Decode(&tmpValue); err != nil {
			return nil, err
		}
		return Uint(tmpValue), nil
	case CborTypeNegInt:
		// Values below math.MinInt64 are rejected by the underlying decoder
		var tmpValue int64
		if _, _, err := d.Decode(&tmpValue); err != nil {
			return nil, err
		}
		return NegInt(tmpValue), nil
	case CborTypeByteString:
		var tmpValue []byte
		if _, _, err := d.Decode(&tmpValue); err != nil {
			return nil, err
		}
		return ByteString(tmpValue), nil
	case CborTypeTextString:
		var tmpValue string
		if _, _, err := d.Decode(&tmpValue); err != nil {
			return nil, err
		}
		return TextString(tmpValue), nil
	case CborTypeArray:
		length, err := d.DecodeArrayHeader()
		if err != nil {
			return nil, err
		}
		ret := Array{}
		for i := 0; i < length; i++ {
			item, err := d.decodeValue(depth + 1)
			if err != nil {
				return nil, err
			}
			ret = append(ret, item)
		}
		return ret, nil
	case CborTypeMap:
		length, err := d.DecodeMapHeader()
		if err != nil {
			return nil, err
		}
		ret := Map{}
		for i := 0; i < length; i++ {
			key, err := d.decodeValue(depth + 1)
			if err != nil {
				return nil, err
			}
			value, err := d.decodeValue(depth + 1)
			if err != nil {
				return nil, err
			}
			ret = append(ret, Pair{Key: key, Value: value})
		}
		return ret, nil
	case CborTypeTag:
		var tmpTag _cbor.RawTag
		if _, _, err := d.Decode(&tmpTag); err != nil {
			return nil, err
		}
		contentDecoder, err := NewStreamDecoder(tmpTag.Content)
		if err != nil {
			return nil, err
		}
		content, err := contentDecoder.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		return Tag{
			Number:  tmpTag.Number,
			Content: content,
		}, nil
	default:
		// Major type 7: simple values and floats
		additionalInfo := firstByte & 0x1f
		if additionalInfo >= 25 && additionalInfo <= 27 {
			var tmpValue float64
			if _, _, err := d.Decode(&tmpValue); err != nil {
				return nil, err
			}
			return Float(tmpValue), nil
		}
		var tmpValue _cbor.SimpleValue
		if _, _, err := d.Decode(&tmpValue); err != nil {
			return nil, err
		}
		return Simple(tmpValue), nil
	}
}
