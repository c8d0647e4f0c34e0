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
	"fmt"
)

// Value is a single CBOR data item in generic form. It preserves details that
// plain Go types cannot represent, such as map entry order, duplicate map
// keys, and the distinction between unsigned and negative integers.
type Value interface {
	isValue()
}

// Uint is a CBOR unsigned integer (major type 0)
type Uint uint64

// NegInt is a CBOR negative integer (major type 1), stored as its value
type NegInt int64

// ByteString is a CBOR byte string (major type 2)
type ByteString []byte

// TextString is a CBOR text string (major type 3)
type TextString string

// Array is a CBOR array (major type 4)
type Array []Value

// Pair is a single map entry
type Pair struct {
	Key   Value
	Value Value
}

// Map is a CBOR map (major type 5) as an ordered sequence of entries. The
// type itself does not require unique keys; duplicates are rejected when the
// map is encoded.
type Map []Pair

// Simple is a CBOR simple value (major type 7)
type Simple uint8

const (
	SimpleFalse     Simple = 20
	SimpleTrue      Simple = 21
	SimpleNull      Simple = 22
	SimpleUndefined Simple = 23
)

// Float is a CBOR floating-point number (major type 7)
type Float float64

// Tag is a tagged CBOR value (major type 6)
type Tag struct {
	Number  uint64
	Content Value
}

func (Uint) isValue()       {}
func (NegInt) isValue()     {}
func (ByteString) isValue() {}
func (TextString) isValue() {}
func (Array) isValue()      {}
func (Map) isValue()        {}
func (Simple) isValue()     {}
func (Float) isValue()      {}
func (Tag) isValue()        {}

// Int returns the Value for a signed integer: Uint for non-negative values
// and NegInt otherwise
func Int(i int64) Value {
	if i < 0 {
		return NegInt(i)
	}
	return Uint(i)
}

// Bool returns the Simple value for a boolean
func Bool(b bool) Simple {
	if b {
		return SimpleTrue
	}
	return SimpleFalse
}

// TypeName returns a short name for the CBOR kind of the given value, for use
// in error messages
func TypeName(v Value) string {
	switch v.(type) {
	case Uint:
		return "uint"
	case NegInt:
		return "nint"
	case ByteString:
		return "bstr"
	case TextString:
		return "tstr"
	case Array:
		return "array"
	case Map:
		return "map"
	case Simple:
		return "simple"
	case Float:
		return "float"
	case Tag:
		return "tag"
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%T", v)
	}
}
