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
	"slices"

	"github.com/blinklabs-io/gocose/cbor"
	"github.com/blinklabs-io/gocose/iana"
)

// CBOR map keys for the common key parameters
var (
	keyLabelKty    = cbor.Uint(iana.KeyParameterKty)
	keyLabelKid    = cbor.Uint(iana.KeyParameterKid)
	keyLabelAlg    = cbor.Uint(iana.KeyParameterAlg)
	keyLabelKeyOps = cbor.Uint(iana.KeyParameterKeyOps)
	keyLabelBaseIv = cbor.Uint(iana.KeyParameterBaseIv)
)

// Param is a single key parameter outside the common set, kept in wire order
type Param struct {
	Label Label
	Value cbor.Value
}

// CoseKey is a COSE_Key structure from RFC 8152 section 7:
//
//	COSE_Key = {
//	    1 => tstr / int,          ; kty
//	    ? 2 => bstr,              ; kid
//	    ? 3 => tstr / int,        ; alg
//	    ? 4 => [+ (tstr / int) ], ; key_ops
//	    ? 5 => bstr,              ; Base IV
//	    * label => values
//	}
//
// Only kty is mandatory. Key-type specific parameters (negative labels) and
// any other extension parameters live in Params, preserving the order they
// appeared on the wire.
type CoseKey struct {
	Kty    KeyType
	KeyID  []byte
	Alg    *Algorithm
	KeyOps []KeyOperation
	BaseIV []byte
	Params []Param
}

// NewCoseKeyFromCbor parses the provided CBOR data into a COSE_Key
func NewCoseKeyFromCbor(data []byte) (*CoseKey, error) {
	var key CoseKey
	if _, err := cbor.Decode(data, &key); err != nil {
		return nil, fmt.Errorf("decode COSE_Key: %w", err)
	}
	return &key, nil
}

// CoseKeyFromValue builds a CoseKey from a decoded CBOR map. Unregistered
// values are retained; a common parameter with the wrong shape fails
// immediately.
func CoseKeyFromValue(v cbor.Value) (CoseKey, error) {
	m, ok := v.(cbor.Map)
	if !ok {
		return CoseKey{}, NewUnexpectedTypeError(v, "map")
	}
	var key CoseKey
	for _, entry := range m {
		label, err := LabelFromValue(entry.Key)
		if err != nil {
			return CoseKey{}, err
		}
		switch label {
		case LabelInt(int64(iana.KeyParameterKty)):
			key.Kty, err = RegisteredLabelFromValue[iana.KeyType](entry.Value)
			if err != nil {
				return CoseKey{}, err
			}
		case LabelInt(int64(iana.KeyParameterKid)):
			key.KeyID, err = decodeKeyBytes(entry.Value)
			if err != nil {
				return CoseKey{}, err
			}
		case LabelInt(int64(iana.KeyParameterAlg)):
			alg, err := RegisteredLabelFromValue[iana.Algorithm](entry.Value)
			if err != nil {
				return CoseKey{}, err
			}
			key.Alg = &alg
		case LabelInt(int64(iana.KeyParameterKeyOps)):
			key.KeyOps, err = decodeKeyOps(entry.Value)
			if err != nil {
				return CoseKey{}, err
			}
		case LabelInt(int64(iana.KeyParameterBaseIv)):
			key.BaseIV, err = decodeKeyBytes(entry.Value)
			if err != nil {
				return CoseKey{}, err
			}
		default:
			key.Params = append(key.Params, Param{
				Label: label,
				Value: entry.Value,
			})
		}
	}
	// kty is the only mandatory parameter
	if key.Kty == Assigned(iana.KeyTypeReserved) {
		return CoseKey{}, UnexpectedTypeError{
			Got:  "no kty label",
			Want: "mandatory kty label",
		}
	}
	return key, nil
}

func decodeKeyBytes(v cbor.Value) ([]byte, error) {
	b, ok := v.(cbor.ByteString)
	if !ok {
		return nil, NewUnexpectedTypeError(v, "bstr")
	}
	if len(b) == 0 {
		return nil, UnexpectedTypeError{
			Got:  "empty bstr",
			Want: "non-empty bstr",
		}
	}
	return []byte(b), nil
}

func decodeKeyOps(v cbor.Value) ([]KeyOperation, error) {
	arr, ok := v.(cbor.Array)
	if !ok {
		return nil, NewUnexpectedTypeError(v, "array")
	}
	if len(arr) == 0 {
		return nil, UnexpectedTypeError{
			Got:  "empty array",
			Want: "non-empty array",
		}
	}
	ops := make([]KeyOperation, 0, len(arr))
	for _, item := range arr {
		op, err := RegisteredLabelFromValue[iana.KeyOperation](item)
		if err != nil {
			return nil, err
		}
		if slices.Contains(ops, op) {
			return nil, UnexpectedTypeError{
				Got:  "repeated array entry",
				Want: "unique array label",
			}
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// ToValue returns the CBOR form of the key. The common parameters are
// emitted in canonical label order, then the extension parameters in the
// order they are held.
func (k CoseKey) ToValue() cbor.Value {
	m := cbor.Map{
		{Key: keyLabelKty, Value: k.Kty.ToValue()},
	}
	if len(k.KeyID) > 0 {
		m = append(m, cbor.Pair{
			Key:   keyLabelKid,
			Value: cbor.ByteString(k.KeyID),
		})
	}
	if k.Alg != nil {
		m = append(m, cbor.Pair{
			Key:   keyLabelAlg,
			Value: k.Alg.ToValue(),
		})
	}
	if len(k.KeyOps) > 0 {
		ops := make(cbor.Array, 0, len(k.KeyOps))
		for _, op := range k.KeyOps {
			ops = append(ops, op.ToValue())
		}
		m = append(m, cbor.Pair{
			Key:   keyLabelKeyOps,
			Value: ops,
		})
	}
	if len(k.BaseIV) > 0 {
		m = append(m, cbor.Pair{
			Key:   keyLabelBaseIv,
			Value: cbor.ByteString(k.BaseIV),
		})
	}
	for _, param := range k.Params {
		m = append(m, cbor.Pair{
			Key:   param.Label.ToValue(),
			Value: param.Value,
		})
	}
	return m
}

func (k CoseKey) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(k.ToValue())
}

func (k *CoseKey) UnmarshalCBOR(data []byte) error {
	v, err := cbor.DecodeValue(data)
	if err != nil {
		return err
	}
	tmpKey, err := CoseKeyFromValue(v)
	if err != nil {
		return err
	}
	*k = tmpKey
	return nil
}

// CoseKeySet is a COSE_KeySet: an array of COSE_Key structures
type CoseKeySet []CoseKey

// NewCoseKeySetFromCbor parses the provided CBOR data into a COSE_KeySet
func NewCoseKeySetFromCbor(data []byte) (CoseKeySet, error) {
	var keySet CoseKeySet
	if _, err := cbor.Decode(data, &keySet); err != nil {
		return nil, fmt.Errorf("decode COSE_KeySet: %w", err)
	}
	return keySet, nil
}

// CoseKeySetFromValue builds a CoseKeySet from a decoded CBOR array
func CoseKeySetFromValue(v cbor.Value) (CoseKeySet, error) {
	arr, ok := v.(cbor.Array)
	if !ok {
		return nil, NewUnexpectedTypeError(v, "array")
	}
	keySet := make(CoseKeySet, 0, len(arr))
	for _, item := range arr {
		key, err := CoseKeyFromValue(item)
		if err != nil {
			return nil, err
		}
		keySet = append(keySet, key)
	}
	return keySet, nil
}

// ToValue returns the CBOR form of the key set
func (s CoseKeySet) ToValue() cbor.Value {
	arr := make(cbor.Array, 0, len(s))
	for _, key := range s {
		arr = append(arr, key.ToValue())
	}
	return arr
}

func (s CoseKeySet) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(s.ToValue())
}

func (s *CoseKeySet) UnmarshalCBOR(data []byte) error {
	v, err := cbor.DecodeValue(data)
	if err != nil {
		return err
	}
	tmpKeySet, err := CoseKeySetFromValue(v)
	if err != nil {
		return err
	}
	*s = tmpKeySet
	return nil
}
