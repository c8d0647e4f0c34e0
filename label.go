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

package cose

import (
	"fmt"
	"math"
	"strconv"

	"github.com/blinklabs-io/gocose/cbor"
	"github.com/blinklabs-io/gocose/iana"
)

type labelKind uint8

const (
	labelKindInt labelKind = iota
	labelKindText
)

// Label is a map key in a COSE structure: either an integer or a text
// string, per the CDDL production "label = int / tstr". The zero value is
// the integer label 0.
//
// Label is comparable; two labels are equal exactly when they encode to the
// same CBOR item.
type Label struct {
	kind labelKind
	num  int64
	str  string
}

// LabelInt returns the integer label for the given value
func LabelInt(i int64) Label {
	return Label{kind: labelKindInt, num: i}
}

// LabelText returns the text label for the given string
func LabelText(s string) Label {
	return Label{kind: labelKindText, str: s}
}

// Int returns the integer value of the label, and whether the label is an
// integer label
func (l Label) Int() (int64, bool) {
	return l.num, l.kind == labelKindInt
}

// Text returns the string value of the label, and whether the label is a
// text label
func (l Label) Text() (string, bool) {
	return l.str, l.kind == labelKindText
}

// ToValue returns the CBOR form of the label
func (l Label) ToValue() cbor.Value {
	if l.kind == labelKindText {
		return cbor.TextString(l.str)
	}
	return cbor.Int(l.num)
}

// LabelFromValue converts a decoded CBOR item into a Label. Only integer
// and text string items are accepted.
func LabelFromValue(v cbor.Value) (Label, error) {
	switch tv := v.(type) {
	case cbor.Uint:
		if uint64(tv) > uint64(math.MaxInt64) {
			return Label{}, fmt.Errorf(
				"label value out of int64 range: %d",
				uint64(tv),
			)
		}
		return LabelInt(int64(tv)), nil
	case cbor.NegInt:
		return LabelInt(int64(tv)), nil
	case cbor.TextString:
		return LabelText(string(tv)), nil
	default:
		return Label{}, NewUnexpectedTypeError(v, "int or tstr")
	}
}

func (l Label) String() string {
	if l.kind == labelKindText {
		return strconv.Quote(l.str)
	}
	return strconv.FormatInt(l.num, 10)
}

// Constant is the constraint for IANA registry value types usable with
// RegisteredLabel
type Constant interface {
	~int64
	Registered() bool
}

type registeredKind uint8

const (
	registeredKindAssigned registeredKind = iota
	registeredKindInt
	registeredKindText
)

// RegisteredLabel is a value that is either assigned in the IANA registry
// for T, an unregistered integer, or an unregistered text string. The zero
// value is Assigned(T(0)) when 0 is assigned in T's registry.
//
// Constructors normalize: an integer that happens to be assigned in the
// registry always lands in the assigned form, so two RegisteredLabel values
// are equal (with ==) exactly when they encode to the same CBOR item.
type RegisteredLabel[T Constant] struct {
	kind registeredKind
	num  int64
	str  string
}

// Assigned returns the label for a registry constant. An unassigned value
// is stored as an unregistered integer.
func Assigned[T Constant](c T) RegisteredLabel[T] {
	if !c.Registered() {
		return RegisteredLabel[T]{kind: registeredKindInt, num: int64(c)}
	}
	return RegisteredLabel[T]{kind: registeredKindAssigned, num: int64(c)}
}

// UnregisteredInt returns the label for an integer outside the registry. An
// integer that is assigned in the registry is stored in the assigned form.
func UnregisteredInt[T Constant](i int64) RegisteredLabel[T] {
	if T(i).Registered() {
		return RegisteredLabel[T]{kind: registeredKindAssigned, num: i}
	}
	return RegisteredLabel[T]{kind: registeredKindInt, num: i}
}

// UnregisteredText returns the label for a text string value
func UnregisteredText[T Constant](s string) RegisteredLabel[T] {
	return RegisteredLabel[T]{kind: registeredKindText, str: s}
}

// Assigned returns the registry constant and whether the label holds an
// assigned value
func (l RegisteredLabel[T]) Assigned() (T, bool) {
	return T(l.num), l.kind == registeredKindAssigned
}

// Int returns the integer value and whether the label holds an unregistered
// integer
func (l RegisteredLabel[T]) Int() (int64, bool) {
	return l.num, l.kind == registeredKindInt
}

// Text returns the string value and whether the label holds a text string
func (l RegisteredLabel[T]) Text() (string, bool) {
	return l.str, l.kind == registeredKindText
}

// ToValue returns the CBOR form of the label
func (l RegisteredLabel[T]) ToValue() cbor.Value {
	if l.kind == registeredKindText {
		return cbor.TextString(l.str)
	}
	return cbor.Int(l.num)
}

// RegisteredLabelFromValue converts a decoded CBOR item into a
// RegisteredLabel. Only integer and text string items are accepted; integer
// values outside the registry are kept as unregistered integers rather than
// rejected.
func RegisteredLabelFromValue[T Constant](
	v cbor.Value,
) (RegisteredLabel[T], error) {
	switch tv := v.(type) {
	case cbor.Uint:
		if uint64(tv) > uint64(math.MaxInt64) {
			return RegisteredLabel[T]{}, fmt.Errorf(
				"label value out of int64 range: %d",
				uint64(tv),
			)
		}
		return UnregisteredInt[T](int64(tv)), nil
	case cbor.NegInt:
		return UnregisteredInt[T](int64(tv)), nil
	case cbor.TextString:
		return UnregisteredText[T](string(tv)), nil
	default:
		return RegisteredLabel[T]{}, NewUnexpectedTypeError(v, "int or tstr")
	}
}

func (l RegisteredLabel[T]) String() string {
	switch l.kind {
	case registeredKindAssigned:
		return fmt.Sprintf("%v", T(l.num))
	case registeredKindText:
		return strconv.Quote(l.str)
	default:
		return strconv.FormatInt(l.num, 10)
	}
}

// Extensible values used by COSE keys
type (
	KeyType       = RegisteredLabel[iana.KeyType]
	Algorithm     = RegisteredLabel[iana.Algorithm]
	KeyOperation  = RegisteredLabel[iana.KeyOperation]
	EllipticCurve = RegisteredLabel[iana.EllipticCurve]
)
