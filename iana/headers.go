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

package iana

// HeaderParameter is a value from the "COSE Header Parameters" registry
type HeaderParameter int64

const (
	// Reserved
	HeaderParameterReserved HeaderParameter = 0
	// Cryptographic algorithm to use (int / tstr)
	HeaderParameterAlg HeaderParameter = 1
	// Critical headers to be understood ([+ label])
	HeaderParameterCrit HeaderParameter = 2
	// Content type of the payload (tstr / uint)
	HeaderParameterContentType HeaderParameter = 3
	// Key identifier (bstr)
	HeaderParameterKid HeaderParameter = 4
	// Full initialization vector (bstr)
	HeaderParameterIv HeaderParameter = 5
	// Partial initialization vector (bstr)
	HeaderParameterPartialIv HeaderParameter = 6
	// CBOR-encoded signature structure
	HeaderParameterCounterSignature HeaderParameter = 7
	// Counter signature with implied signer and headers (bstr)
	HeaderParameterCounterSignature0 HeaderParameter = 9
	// Identifies the context for the key identifier (bstr)
	HeaderParameterKidContext HeaderParameter = 10
	// An unordered bag of X.509 certificates
	HeaderParameterX5Bag HeaderParameter = 32
	// An ordered chain of X.509 certificates
	HeaderParameterX5Chain HeaderParameter = 33
	// Hash of an X.509 certificate
	HeaderParameterX5T HeaderParameter = 34
	// URI pointing to an X.509 certificate
	HeaderParameterX5U HeaderParameter = 35
	// Challenge nonce (bstr)
	HeaderParameterCuphNonce HeaderParameter = 256
	// Public key (array)
	HeaderParameterCuphOwnerPubKey HeaderParameter = 257
)

// Integer values for COSE header parameters below this value are reserved
// for private use
const HeaderParameterPrivateUseMax int64 = -65536

// HeaderParameterIsPrivate returns true when the given value falls in the
// private use range of the header parameter registry
func HeaderParameterIsPrivate(i int64) bool {
	return i < HeaderParameterPrivateUseMax
}

var headerParameterRegistry = registry{
	int64(HeaderParameterReserved):          "Reserved",
	int64(HeaderParameterAlg):               "alg",
	int64(HeaderParameterCrit):              "crit",
	int64(HeaderParameterContentType):       "content type",
	int64(HeaderParameterKid):               "kid",
	int64(HeaderParameterIv):                "IV",
	int64(HeaderParameterPartialIv):         "Partial IV",
	int64(HeaderParameterCounterSignature):  "counter signature",
	int64(HeaderParameterCounterSignature0): "CounterSignature0",
	int64(HeaderParameterKidContext):        "kid context",
	int64(HeaderParameterX5Bag):             "x5bag",
	int64(HeaderParameterX5Chain):           "x5chain",
	int64(HeaderParameterX5T):               "x5t",
	int64(HeaderParameterX5U):               "x5u",
	int64(HeaderParameterCuphNonce):         "CUPHNonce",
	int64(HeaderParameterCuphOwnerPubKey):   "CUPHOwnerPubKey",
}

// HeaderParameterFromInt returns the HeaderParameter assigned to the given
// value
func HeaderParameterFromInt(i int64) (HeaderParameter, bool) {
	if !headerParameterRegistry.contains(i) {
		return 0, false
	}
	return HeaderParameter(i), true
}

// Registered returns true when the value is assigned in the registry
func (h HeaderParameter) Registered() bool {
	return headerParameterRegistry.contains(int64(h))
}

func (h HeaderParameter) String() string {
	return headerParameterRegistry.name(int64(h), "HeaderParameter")
}

// HeaderAlgorithmParameter is a value from the "COSE Header Algorithm
// Parameters" registry
type HeaderAlgorithmParameter int64

const (
	// Party V other provided information (bstr)
	HeaderAlgorithmParameterPartyVOther HeaderAlgorithmParameter = -26
	// Party V provided nonce (bstr / int)
	HeaderAlgorithmParameterPartyVNonce HeaderAlgorithmParameter = -25
	// Party V identity information (bstr)
	HeaderAlgorithmParameterPartyVIdentity HeaderAlgorithmParameter = -24
	// Party U other provided information (bstr)
	HeaderAlgorithmParameterPartyUOther HeaderAlgorithmParameter = -23
	// Party U provided nonce (bstr / int)
	HeaderAlgorithmParameterPartyUNonce HeaderAlgorithmParameter = -22
	// Party U identity information (bstr)
	HeaderAlgorithmParameterPartyUIdentity HeaderAlgorithmParameter = -21
	// Random salt (bstr)
	HeaderAlgorithmParameterSalt HeaderAlgorithmParameter = -20
	// Static public key identifier for the sender (bstr)
	HeaderAlgorithmParameterStaticKeyID HeaderAlgorithmParameter = -3
	// Static public key for the sender (COSE_Key)
	HeaderAlgorithmParameterStaticKey HeaderAlgorithmParameter = -2
	// Ephemeral public key for the sender (COSE_Key)
	HeaderAlgorithmParameterEphemeralKey HeaderAlgorithmParameter = -1
)

var headerAlgorithmParameterRegistry = registry{
	int64(HeaderAlgorithmParameterPartyVOther):    "PartyV other",
	int64(HeaderAlgorithmParameterPartyVNonce):    "PartyV nonce",
	int64(HeaderAlgorithmParameterPartyVIdentity): "PartyV identity",
	int64(HeaderAlgorithmParameterPartyUOther):    "PartyU other",
	int64(HeaderAlgorithmParameterPartyUNonce):    "PartyU nonce",
	int64(HeaderAlgorithmParameterPartyUIdentity): "PartyU identity",
	int64(HeaderAlgorithmParameterSalt):           "salt",
	int64(HeaderAlgorithmParameterStaticKeyID):    "static kid",
	int64(HeaderAlgorithmParameterStaticKey):      "static key",
	int64(HeaderAlgorithmParameterEphemeralKey):   "ephemeral key",
}

// HeaderAlgorithmParameterFromInt returns the HeaderAlgorithmParameter
// assigned to the given value
func HeaderAlgorithmParameterFromInt(i int64) (HeaderAlgorithmParameter, bool) {
	if !headerAlgorithmParameterRegistry.contains(i) {
		return 0, false
	}
	return HeaderAlgorithmParameter(i), true
}

// Registered returns true when the value is assigned in the registry
func (h HeaderAlgorithmParameter) Registered() bool {
	return headerAlgorithmParameterRegistry.contains(int64(h))
}

func (h HeaderAlgorithmParameter) String() string {
	return headerAlgorithmParameterRegistry.name(int64(h), "HeaderAlgorithmParameter")
}
