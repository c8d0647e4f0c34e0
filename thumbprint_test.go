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
	"crypto/sha256"
	"testing"

	cose "github.com/blinklabs-io/gocose"
	"github.com/blinklabs-io/gocose/cbor"
	"github.com/blinklabs-io/gocose/iana"
	"github.com/blinklabs-io/gocose/internal/test"

	"github.com/stretchr/testify/assert"
)

func TestThumbprintSymmetric(t *testing.T) {
	key := cose.NewSymmetricKeyBuilder([]byte("key")).Build()
	thumbprint, err := key.Thumbprint()
	assert.NoError(t, err)
	// SHA-256 over the canonical encoding {1: 4, -1: h'6b6579'}
	expected := sha256.Sum256(test.DecodeHexString("a2010420436b6579"))
	assert.Equal(t, expected[:], thumbprint)
}

func TestThumbprintIgnoresOptionalParams(t *testing.T) {
	baseKey := cose.NewEc2PubKeyBuilder(
		iana.EllipticCurveP256,
		[]byte{0x01, 0x02},
		[]byte{0x03, 0x04},
	).Build()
	decoratedKey := cose.NewEc2PubKeyBuilder(
		iana.EllipticCurveP256,
		[]byte{0x01, 0x02},
		[]byte{0x03, 0x04},
	).
		KeyID([]byte("abc")).
		Algorithm(iana.AlgorithmES256).
		AddKeyOp(iana.KeyOperationVerify).
		Param(-70000, cbor.Uint(1)).
		Build()

	baseThumbprint, err := baseKey.Thumbprint()
	assert.NoError(t, err)
	decoratedThumbprint, err := decoratedKey.Thumbprint()
	assert.NoError(t, err)
	assert.Equal(t, baseThumbprint, decoratedThumbprint)
}

func TestThumbprintDiffersByKeyMaterial(t *testing.T) {
	keyA := cose.NewSymmetricKeyBuilder([]byte("key-a")).Build()
	keyB := cose.NewSymmetricKeyBuilder([]byte("key-b")).Build()
	thumbprintA, err := keyA.Thumbprint()
	assert.NoError(t, err)
	thumbprintB, err := keyB.Thumbprint()
	assert.NoError(t, err)
	assert.NotEqual(t, thumbprintA, thumbprintB)
}

func TestThumbprintOkp(t *testing.T) {
	key := cose.NewOkpPubKeyBuilder(
		iana.EllipticCurveEd25519,
		[]byte{0x01, 0x02},
	).Build()
	thumbprint, err := key.Thumbprint()
	assert.NoError(t, err)
	assert.Len(t, thumbprint, sha256.Size)
}

func TestThumbprintErrors(t *testing.T) {
	// EC2 key without a y-coordinate
	key := cose.NewCoseKeyBuilder(iana.KeyTypeEC2).
		Param(
			int64(iana.Ec2KeyParameterCrv),
			cbor.Uint(uint64(iana.EllipticCurveP256)),
		).
		Param(int64(iana.Ec2KeyParameterX), cbor.ByteString{0x01}).
		Build()
	_, err := key.Thumbprint()
	assert.ErrorContains(t, err, "missing required parameter")

	// Key types without a thumbprint definition
	key = cose.NewCoseKeyBuilder(iana.KeyTypeWalnutDSA).Build()
	_, err = key.Thumbprint()
	assert.ErrorContains(t, err, "no thumbprint definition")

	// Unassigned key type
	key = cose.CoseKey{Kty: cose.UnregisteredInt[iana.KeyType](99)}
	_, err = key.Thumbprint()
	assert.ErrorContains(t, err, "no thumbprint definition")
}

func TestThumbprintParamShape(t *testing.T) {
	// A compressed EC2 key carries the y-coordinate as a bool, which has no
	// valid thumbprint form
	key := cose.NewEc2PubKeyBuilderYSign(
		iana.EllipticCurveP256,
		[]byte{0x01, 0x02},
		true,
	).Build()
	_, err := key.Thumbprint()
	assert.ErrorContains(t, err, "must be a bstr")

	// Curve identifier must be an integer
	key = cose.NewCoseKeyBuilder(iana.KeyTypeEC2).
		Param(int64(iana.Ec2KeyParameterCrv), cbor.ByteString{0x01}).
		Param(int64(iana.Ec2KeyParameterX), cbor.ByteString{0x01}).
		Param(int64(iana.Ec2KeyParameterY), cbor.ByteString{0x02}).
		Build()
	_, err = key.Thumbprint()
	assert.ErrorContains(t, err, "must be an int")
}
