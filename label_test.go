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

package cose_test

import (
	"math"
	"testing"

	cose "github.com/blinklabs-io/gocose"
	"github.com/blinklabs-io/gocose/cbor"
	"github.com/blinklabs-io/gocose/iana"

	"github.com/stretchr/testify/assert"
)

func TestLabelFromValue(t *testing.T) {
	label, err := cose.LabelFromValue(cbor.Uint(3))
	assert.NoError(t, err)
	assert.Equal(t, cose.LabelInt(3), label)

	label, err = cose.LabelFromValue(cbor.NegInt(-1))
	assert.NoError(t, err)
	assert.Equal(t, cose.LabelInt(-1), label)

	label, err = cose.LabelFromValue(cbor.TextString("crv"))
	assert.NoError(t, err)
	assert.Equal(t, cose.LabelText("crv"), label)

	_, err = cose.LabelFromValue(cbor.ByteString{0x01})
	assert.EqualError(t, err, "unexpected type: got bstr, want int or tstr")

	_, err = cose.LabelFromValue(cbor.Uint(uint64(math.MaxInt64) + 1))
	assert.ErrorContains(t, err, "out of int64 range")
}

func TestLabelToValue(t *testing.T) {
	assert.Equal(t, cbor.Uint(5), cose.LabelInt(5).ToValue())
	assert.Equal(t, cbor.NegInt(-5), cose.LabelInt(-5).ToValue())
	assert.Equal(t, cbor.TextString("x"), cose.LabelText("x").ToValue())
}

func TestLabelAccessors(t *testing.T) {
	num, ok := cose.LabelInt(-2).Int()
	assert.True(t, ok)
	assert.Equal(t, int64(-2), num)
	_, ok = cose.LabelInt(-2).Text()
	assert.False(t, ok)

	str, ok := cose.LabelText("kid").Text()
	assert.True(t, ok)
	assert.Equal(t, "kid", str)
	_, ok = cose.LabelText("kid").Int()
	assert.False(t, ok)
}

func TestRegisteredLabelNormalization(t *testing.T) {
	// An assigned integer always lands in the assigned form
	assert.Equal(
		t,
		cose.Assigned(iana.KeyTypeOKP),
		cose.UnregisteredInt[iana.KeyType](1),
	)
	// An unassigned constant always lands in the raw integer form
	assert.Equal(
		t,
		cose.Assigned(iana.KeyType(99)),
		cose.UnregisteredInt[iana.KeyType](99),
	)
	// The zero value is the registry's reserved value
	assert.Equal(t, cose.KeyType{}, cose.Assigned(iana.KeyTypeReserved))
}

func TestRegisteredLabelAccessors(t *testing.T) {
	kty, ok := cose.Assigned(iana.KeyTypeEC2).Assigned()
	assert.True(t, ok)
	assert.Equal(t, iana.KeyTypeEC2, kty)

	raw := cose.UnregisteredInt[iana.KeyType](99)
	_, ok = raw.Assigned()
	assert.False(t, ok)
	num, ok := raw.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(99), num)

	text := cose.UnregisteredText[iana.KeyType]("custom")
	str, ok := text.Text()
	assert.True(t, ok)
	assert.Equal(t, "custom", str)
}

func TestRegisteredLabelToValue(t *testing.T) {
	assert.Equal(
		t,
		cbor.NegInt(-7),
		cose.Assigned(iana.AlgorithmES256).ToValue(),
	)
	assert.Equal(
		t,
		cbor.Uint(4),
		cose.Assigned(iana.KeyTypeSymmetric).ToValue(),
	)
	assert.Equal(
		t,
		cbor.TextString("custom"),
		cose.UnregisteredText[iana.Algorithm]("custom").ToValue(),
	)
}

func TestRegisteredLabelFromValue(t *testing.T) {
	kty, err := cose.RegisteredLabelFromValue[iana.KeyType](cbor.Uint(2))
	assert.NoError(t, err)
	assert.Equal(t, cose.Assigned(iana.KeyTypeEC2), kty)

	alg, err := cose.RegisteredLabelFromValue[iana.Algorithm](cbor.NegInt(-7))
	assert.NoError(t, err)
	assert.Equal(t, cose.Assigned(iana.AlgorithmES256), alg)

	// Unknown values decode without error
	kty, err = cose.RegisteredLabelFromValue[iana.KeyType](cbor.Uint(99))
	assert.NoError(t, err)
	num, ok := kty.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(99), num)

	_, err = cose.RegisteredLabelFromValue[iana.KeyType](cbor.Array{})
	assert.EqualError(t, err, "unexpected type: got array, want int or tstr")
}

func TestRegisteredLabelString(t *testing.T) {
	assert.Equal(t, "OKP", cose.Assigned(iana.KeyTypeOKP).String())
	assert.Equal(t, "99", cose.UnregisteredInt[iana.KeyType](99).String())
	assert.Equal(
		t,
		`"custom"`,
		cose.UnregisteredText[iana.KeyType]("custom").String(),
	)
}
