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
	"bytes"
	"crypto/ed25519"
	"testing"

	cose "github.com/blinklabs-io/gocose"
	"github.com/blinklabs-io/gocose/cbor"
	"github.com/blinklabs-io/gocose/iana"
	"github.com/blinklabs-io/gocose/internal/test"

	"github.com/stretchr/testify/assert"
)

func TestSymmetricKeyBuilder(t *testing.T) {
	key := cose.NewSymmetricKeyBuilder([]byte("key")).Build()
	data, err := cbor.Encode(key)
	assert.NoError(t, err)
	assert.Equal(t, "a2010420436b6579", test.EncodeHexString(data))
}

func TestCoseKeyBuilderCommonParams(t *testing.T) {
	key := cose.NewSymmetricKeyBuilder([]byte("key")).
		KeyID([]byte("abc")).
		Algorithm(iana.AlgorithmHMAC256_256).
		BaseIV([]byte{0xaa, 0xbb}).
		AddKeyOp(iana.KeyOperationMacCreate).
		AddKeyOp(iana.KeyOperationMacVerify).
		Build()
	assert.Equal(t, cose.Assigned(iana.KeyTypeSymmetric), key.Kty)
	assert.Equal(t, []byte("abc"), key.KeyID)
	assert.NotNil(t, key.Alg)
	assert.Equal(t, cose.Assigned(iana.AlgorithmHMAC256_256), *key.Alg)
	assert.Equal(t, []byte{0xaa, 0xbb}, key.BaseIV)
	assert.Equal(
		t,
		[]cose.KeyOperation{
			cose.Assigned(iana.KeyOperationMacCreate),
			cose.Assigned(iana.KeyOperationMacVerify),
		},
		key.KeyOps,
	)
}

func TestCoseKeyBuilderKeyOpDedupe(t *testing.T) {
	key := cose.NewCoseKeyBuilder(iana.KeyTypeOKP).
		AddKeyOp(iana.KeyOperationSign).
		AddKeyOp(iana.KeyOperationSign).
		AddKeyOp(iana.KeyOperationVerify).
		Build()
	assert.Equal(
		t,
		[]cose.KeyOperation{
			cose.Assigned(iana.KeyOperationSign),
			cose.Assigned(iana.KeyOperationVerify),
		},
		key.KeyOps,
	)
}

func TestEc2PubKeyBuilder(t *testing.T) {
	key := cose.NewEc2PubKeyBuilder(
		iana.EllipticCurveP256,
		[]byte{0x01, 0x02},
		[]byte{0x03, 0x04},
	).Build()
	data, err := cbor.Encode(key)
	assert.NoError(t, err)
	assert.Equal(
		t,
		"a4010220012142010222420304",
		test.EncodeHexString(data),
	)
}

func TestEc2PubKeyBuilderYSign(t *testing.T) {
	key := cose.NewEc2PubKeyBuilderYSign(
		iana.EllipticCurveP256,
		[]byte{0x01, 0x02},
		true,
	).Build()
	assert.Equal(
		t,
		[]cose.Param{
			{
				Label: cose.LabelInt(int64(iana.Ec2KeyParameterCrv)),
				Value: cbor.Uint(uint64(iana.EllipticCurveP256)),
			},
			{
				Label: cose.LabelInt(int64(iana.Ec2KeyParameterX)),
				Value: cbor.ByteString{0x01, 0x02},
			},
			{
				Label: cose.LabelInt(int64(iana.Ec2KeyParameterY)),
				Value: cbor.SimpleTrue,
			},
		},
		key.Params,
	)
}

func TestEc2PrivKeyBuilder(t *testing.T) {
	key := cose.NewEc2PrivKeyBuilder(
		iana.EllipticCurveP256,
		[]byte{0x01, 0x02},
		[]byte{0x03, 0x04},
		[]byte{0x05, 0x06},
	).Build()
	assert.Equal(t, cose.Assigned(iana.KeyTypeEC2), key.Kty)
	assert.Equal(
		t,
		[]cose.Param{
			{
				Label: cose.LabelInt(int64(iana.Ec2KeyParameterCrv)),
				Value: cbor.Uint(uint64(iana.EllipticCurveP256)),
			},
			{
				Label: cose.LabelInt(int64(iana.Ec2KeyParameterX)),
				Value: cbor.ByteString{0x01, 0x02},
			},
			{
				Label: cose.LabelInt(int64(iana.Ec2KeyParameterY)),
				Value: cbor.ByteString{0x03, 0x04},
			},
			{
				Label: cose.LabelInt(int64(iana.Ec2KeyParameterD)),
				Value: cbor.ByteString{0x05, 0x06},
			},
		},
		key.Params,
	)
}

func TestOkpKeyBuilders(t *testing.T) {
	pubKey := cose.NewOkpPubKeyBuilder(
		iana.EllipticCurveEd25519,
		[]byte{0x01},
	).Build()
	assert.Equal(t, cose.Assigned(iana.KeyTypeOKP), pubKey.Kty)
	assert.Len(t, pubKey.Params, 2)

	privKey := cose.NewOkpPrivKeyBuilder(
		iana.EllipticCurveEd25519,
		nil,
		[]byte{0x02},
	).Build()
	assert.Equal(
		t,
		[]cose.Param{
			{
				Label: cose.LabelInt(int64(iana.OkpKeyParameterCrv)),
				Value: cbor.Uint(uint64(iana.EllipticCurveEd25519)),
			},
			{
				Label: cose.LabelInt(int64(iana.OkpKeyParameterD)),
				Value: cbor.ByteString{0x02},
			},
		},
		privKey.Params,
	)
}

func TestOkpPubKeyBuilderFromEd25519(t *testing.T) {
	pubKey := ed25519.NewKeyFromSeed(
		make([]byte, ed25519.SeedSize),
	).Public().(ed25519.PublicKey)
	builder, err := cose.NewOkpPubKeyBuilderFromEd25519(pubKey)
	assert.NoError(t, err)
	key := builder.Build()
	assert.Equal(t, cose.Assigned(iana.KeyTypeOKP), key.Kty)
	assert.Equal(
		t,
		cose.Param{
			Label: cose.LabelInt(int64(iana.OkpKeyParameterX)),
			Value: cbor.ByteString(pubKey),
		},
		key.Params[1],
	)
}

func TestOkpPubKeyBuilderFromEd25519Invalid(t *testing.T) {
	// Wrong length
	_, err := cose.NewOkpPubKeyBuilderFromEd25519(make([]byte, 31))
	assert.ErrorContains(t, err, "invalid Ed25519 public key length")

	// Non-canonical point encoding
	_, err = cose.NewOkpPubKeyBuilderFromEd25519(
		bytes.Repeat([]byte{0xff}, 32),
	)
	assert.ErrorContains(t, err, "invalid Ed25519 public key")
}

func TestCoseKeyBuilderParam(t *testing.T) {
	key := cose.NewCoseKeyBuilder(iana.KeyTypeSymmetric).
		Param(-70000, cbor.Uint(1)).
		TextParam("foo", cbor.SimpleTrue).
		Build()
	assert.Equal(
		t,
		[]cose.Param{
			{Label: cose.LabelInt(-70000), Value: cbor.Uint(1)},
			{Label: cose.LabelText("foo"), Value: cbor.SimpleTrue},
		},
		key.Params,
	)
}

func TestCoseKeyBuilderParamPanics(t *testing.T) {
	// Common key parameters must go through their dedicated methods
	for _, label := range []int64{0, 1, 2, 3, 4, 5} {
		assert.Panics(t, func() {
			cose.NewCoseKeyBuilder(iana.KeyTypeSymmetric).
				Param(label, cbor.Uint(1))
		})
	}
	// Unassigned labels are fine
	assert.NotPanics(t, func() {
		cose.NewCoseKeyBuilder(iana.KeyTypeSymmetric).
			Param(6, cbor.Uint(1))
	})
}
