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
	"crypto/ed25519"
	"fmt"
	"slices"

	"filippo.io/edwards25519"

	"github.com/blinklabs-io/gocose/cbor"
	"github.com/blinklabs-io/gocose/iana"
)

// CoseKeyBuilder assembles a CoseKey. The zero builder is not usable; start
// from one of the constructors.
type CoseKeyBuilder struct {
	key CoseKey
}

// NewCoseKeyBuilder returns a builder for a key of the given type
func NewCoseKeyBuilder(kty iana.KeyType) *CoseKeyBuilder {
	return &CoseKeyBuilder{
		key: CoseKey{
			Kty: Assigned(kty),
		},
	}
}

// NewSymmetricKeyBuilder returns a builder for a symmetric key holding the
// given key material
func NewSymmetricKeyBuilder(k []byte) *CoseKeyBuilder {
	builder := NewCoseKeyBuilder(iana.KeyTypeSymmetric)
	builder.addParam(
		int64(iana.SymmetricKeyParameterK),
		cbor.ByteString(k),
	)
	return builder
}

// NewEc2PubKeyBuilder returns a builder for an EC2 public key with both
// coordinates given explicitly
func NewEc2PubKeyBuilder(curve iana.EllipticCurve, x, y []byte) *CoseKeyBuilder {
	builder := NewCoseKeyBuilder(iana.KeyTypeEC2)
	builder.addParam(int64(iana.Ec2KeyParameterCrv), Assigned(curve).ToValue())
	builder.addParam(int64(iana.Ec2KeyParameterX), cbor.ByteString(x))
	builder.addParam(int64(iana.Ec2KeyParameterY), cbor.ByteString(y))
	return builder
}

// NewEc2PubKeyBuilderYSign returns a builder for an EC2 public key in
// compressed form, with the y-coordinate given as its sign bit
func NewEc2PubKeyBuilderYSign(
	curve iana.EllipticCurve,
	x []byte,
	ySign bool,
) *CoseKeyBuilder {
	builder := NewCoseKeyBuilder(iana.KeyTypeEC2)
	builder.addParam(int64(iana.Ec2KeyParameterCrv), Assigned(curve).ToValue())
	builder.addParam(int64(iana.Ec2KeyParameterX), cbor.ByteString(x))
	builder.addParam(int64(iana.Ec2KeyParameterY), cbor.Bool(ySign))
	return builder
}

// NewEc2PrivKeyBuilder returns a builder for an EC2 private key with its
// public coordinates
func NewEc2PrivKeyBuilder(
	curve iana.EllipticCurve,
	x, y, d []byte,
) *CoseKeyBuilder {
	builder := NewEc2PubKeyBuilder(curve, x, y)
	builder.addParam(int64(iana.Ec2KeyParameterD), cbor.ByteString(d))
	return builder
}

// NewOkpPubKeyBuilder returns a builder for an OKP public key
func NewOkpPubKeyBuilder(curve iana.EllipticCurve, x []byte) *CoseKeyBuilder {
	builder := NewCoseKeyBuilder(iana.KeyTypeOKP)
	builder.addParam(int64(iana.OkpKeyParameterCrv), Assigned(curve).ToValue())
	builder.addParam(int64(iana.OkpKeyParameterX), cbor.ByteString(x))
	return builder
}

// NewOkpPrivKeyBuilder returns a builder for an OKP private key. The public
// key may be empty when only the private scalar is held.
func NewOkpPrivKeyBuilder(
	curve iana.EllipticCurve,
	x, d []byte,
) *CoseKeyBuilder {
	builder := NewCoseKeyBuilder(iana.KeyTypeOKP)
	builder.addParam(int64(iana.OkpKeyParameterCrv), Assigned(curve).ToValue())
	if len(x) > 0 {
		builder.addParam(int64(iana.OkpKeyParameterX), cbor.ByteString(x))
	}
	builder.addParam(int64(iana.OkpKeyParameterD), cbor.ByteString(d))
	return builder
}

// NewOkpPubKeyBuilderFromEd25519 returns a builder for an OKP public key on
// the Ed25519 curve, rejecting byte strings that are not a canonical point
// encoding
func NewOkpPubKeyBuilderFromEd25519(pub []byte) (*CoseKeyBuilder, error) {
	if len(pub) != ed25519.PublicKeySize {
		return nil, fmt.Errorf(
			"invalid Ed25519 public key length: %d",
			len(pub),
		)
	}
	if _, err := new(edwards25519.Point).SetBytes(pub); err != nil {
		return nil, fmt.Errorf("invalid Ed25519 public key: %w", err)
	}
	return NewOkpPubKeyBuilder(iana.EllipticCurveEd25519, pub), nil
}

// KeyID sets the key identifier
func (b *CoseKeyBuilder) KeyID(kid []byte) *CoseKeyBuilder {
	b.key.KeyID = kid
	return b
}

// Algorithm sets the algorithm the key is restricted to
func (b *CoseKeyBuilder) Algorithm(alg iana.Algorithm) *CoseKeyBuilder {
	tmpAlg := Assigned(alg)
	b.key.Alg = &tmpAlg
	return b
}

// BaseIV sets the base initialization vector
func (b *CoseKeyBuilder) BaseIV(iv []byte) *CoseKeyBuilder {
	b.key.BaseIV = iv
	return b
}

// AddKeyOp adds a permitted key operation. Adding an operation already
// present is a no-op.
func (b *CoseKeyBuilder) AddKeyOp(op iana.KeyOperation) *CoseKeyBuilder {
	tmpOp := Assigned(op)
	if !slices.Contains(b.key.KeyOps, tmpOp) {
		b.key.KeyOps = append(b.key.KeyOps, tmpOp)
	}
	return b
}

// Param adds a key parameter with an integer label. The common key
// parameters have their own dedicated builder methods and struct fields;
// passing one of their labels here panics.
func (b *CoseKeyBuilder) Param(label int64, value cbor.Value) *CoseKeyBuilder {
	if iana.KeyParameter(label).Registered() {
		panic(fmt.Sprintf(
			"Param() used to set common key parameter %d",
			label,
		))
	}
	b.addParam(label, value)
	return b
}

// TextParam adds a key parameter with a text label
func (b *CoseKeyBuilder) TextParam(
	label string,
	value cbor.Value,
) *CoseKeyBuilder {
	b.key.Params = append(b.key.Params, Param{
		Label: LabelText(label),
		Value: value,
	})
	return b
}

func (b *CoseKeyBuilder) addParam(label int64, value cbor.Value) {
	b.key.Params = append(b.key.Params, Param{
		Label: LabelInt(label),
		Value: value,
	})
}

// Build returns the assembled key
func (b *CoseKeyBuilder) Build() CoseKey {
	return b.key
}
