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
	// RFC 9679 fixes SHA-256 as the hash for COSE key thumbprints
	"crypto/sha256"
	"fmt"

	"github.com/blinklabs-io/gocose/cbor"
	"github.com/blinklabs-io/gocose/iana"
)

// thumbprintParam is a required key type parameter for a thumbprint. Key
// material parameters must be byte strings; curve identifiers must be
// integers.
type thumbprintParam struct {
	label int64
	bstr  bool
}

// thumbprintParams lists the required key type parameters per RFC 9679
// section 3, in deterministic encoding order
var thumbprintParams = map[iana.KeyType][]thumbprintParam{
	iana.KeyTypeOKP: {
		{label: int64(iana.OkpKeyParameterCrv)},
		{label: int64(iana.OkpKeyParameterX), bstr: true},
	},
	iana.KeyTypeEC2: {
		{label: int64(iana.Ec2KeyParameterCrv)},
		{label: int64(iana.Ec2KeyParameterX), bstr: true},
		{label: int64(iana.Ec2KeyParameterY), bstr: true},
	},
	iana.KeyTypeRSA: {
		{label: int64(iana.RsaKeyParameterN), bstr: true},
		{label: int64(iana.RsaKeyParameterE), bstr: true},
	},
	iana.KeyTypeSymmetric: {
		{label: int64(iana.SymmetricKeyParameterK), bstr: true},
	},
}

// Thumbprint computes the RFC 9679 COSE key thumbprint: the SHA-256 digest
// of the deterministic CBOR encoding of the key's required parameters. All
// optional parameters (kid, alg, key_ops, Base IV, extensions) are excluded,
// so equivalent keys produce the same thumbprint.
func (k CoseKey) Thumbprint() ([]byte, error) {
	kty, ok := k.Kty.Assigned()
	if !ok {
		return nil, fmt.Errorf("no thumbprint definition for key type %s", k.Kty)
	}
	required, ok := thumbprintParams[kty]
	if !ok {
		return nil, fmt.Errorf("no thumbprint definition for key type %s", kty)
	}
	m := cbor.Map{
		{Key: keyLabelKty, Value: k.Kty.ToValue()},
	}
	for _, param := range required {
		v, ok := k.lookupParam(param.label)
		if !ok {
			return nil, fmt.Errorf(
				"missing required parameter %d for %s key thumbprint",
				param.label,
				kty,
			)
		}
		if param.bstr {
			if _, ok := v.(cbor.ByteString); !ok {
				return nil, fmt.Errorf(
					"parameter %d for %s key thumbprint must be a bstr, got %s",
					param.label,
					kty,
					cbor.TypeName(v),
				)
			}
		} else {
			switch v.(type) {
			case cbor.Uint, cbor.NegInt:
			default:
				return nil, fmt.Errorf(
					"parameter %d for %s key thumbprint must be an int, got %s",
					param.label,
					kty,
					cbor.TypeName(v),
				)
			}
		}
		m = append(m, cbor.Pair{
			Key:   cbor.Int(param.label),
			Value: v,
		})
	}
	data, err := m.MarshalCBOR()
	if err != nil {
		return nil, err
	}
	digest := sha256.Sum256(data)
	return digest[:], nil
}

func (k CoseKey) lookupParam(label int64) (cbor.Value, bool) {
	want := LabelInt(label)
	for _, param := range k.Params {
		if param.Label == want {
			return param.Value, true
		}
	}
	return nil, false
}
