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

// KeyType is a value from the "COSE Key Types" registry
type KeyType int64

const (
	// This value is reserved
	KeyTypeReserved KeyType = 0
	// Octet Key Pair
	KeyTypeOKP KeyType = 1
	// Elliptic curve keys w/ x- and y-coordinate pair
	KeyTypeEC2 KeyType = 2
	// RSA key
	KeyTypeRSA KeyType = 3
	// Symmetric keys
	KeyTypeSymmetric KeyType = 4
	// Public key for HSS/LMS hash-based digital signature
	KeyTypeHSSLMS KeyType = 5
	// WalnutDSA public key
	KeyTypeWalnutDSA KeyType = 6
)

var keyTypeRegistry = registry{
	int64(KeyTypeReserved):  "Reserved",
	int64(KeyTypeOKP):       "OKP",
	int64(KeyTypeEC2):       "EC2",
	int64(KeyTypeRSA):       "RSA",
	int64(KeyTypeSymmetric): "Symmetric",
	int64(KeyTypeHSSLMS):    "HSS-LMS",
	int64(KeyTypeWalnutDSA): "WalnutDSA",
}

// KeyTypeFromInt returns the KeyType assigned to the given value
func KeyTypeFromInt(i int64) (KeyType, bool) {
	if !keyTypeRegistry.contains(i) {
		return 0, false
	}
	return KeyType(i), true
}

// Registered returns true when the value is assigned in the registry
func (k KeyType) Registered() bool {
	return keyTypeRegistry.contains(int64(k))
}

func (k KeyType) String() string {
	return keyTypeRegistry.name(int64(k), "KeyType")
}

// KeyOperation is a value from the key operations table of RFC 8152
// section 7.1
type KeyOperation int64

const (
	// Key is used to create signatures. Requires private key fields.
	KeyOperationSign KeyOperation = 1
	// Key is used for verification of signatures
	KeyOperationVerify KeyOperation = 2
	// Key is used for key transport encryption
	KeyOperationEncrypt KeyOperation = 3
	// Key is used for key transport decryption. Requires private key fields.
	KeyOperationDecrypt KeyOperation = 4
	// Key is used for key wrap encryption
	KeyOperationWrapKey KeyOperation = 5
	// Key is used for key wrap decryption. Requires private key fields.
	KeyOperationUnwrapKey KeyOperation = 6
	// Key is used for deriving keys. Requires private key fields.
	KeyOperationDeriveKey KeyOperation = 7
	// Key is used for deriving bits not to be used as a key. Requires
	// private key fields.
	KeyOperationDeriveBits KeyOperation = 8
	// Key is used for creating MACs
	KeyOperationMacCreate KeyOperation = 9
	// Key is used for validating MACs
	KeyOperationMacVerify KeyOperation = 10
)

var keyOperationRegistry = registry{
	int64(KeyOperationSign):       "sign",
	int64(KeyOperationVerify):     "verify",
	int64(KeyOperationEncrypt):    "encrypt",
	int64(KeyOperationDecrypt):    "decrypt",
	int64(KeyOperationWrapKey):    "wrap key",
	int64(KeyOperationUnwrapKey):  "unwrap key",
	int64(KeyOperationDeriveKey):  "derive key",
	int64(KeyOperationDeriveBits): "derive bits",
	int64(KeyOperationMacCreate):  "MAC create",
	int64(KeyOperationMacVerify):  "MAC verify",
}

// KeyOperationFromInt returns the KeyOperation assigned to the given value
func KeyOperationFromInt(i int64) (KeyOperation, bool) {
	if !keyOperationRegistry.contains(i) {
		return 0, false
	}
	return KeyOperation(i), true
}

// Registered returns true when the value is assigned in the registry
func (k KeyOperation) Registered() bool {
	return keyOperationRegistry.contains(int64(k))
}

func (k KeyOperation) String() string {
	return keyOperationRegistry.name(int64(k), "KeyOperation")
}

// EllipticCurve is a value from the "COSE Elliptic Curves" registry
type EllipticCurve int64

const (
	EllipticCurveReserved EllipticCurve = 0
	// EC2: NIST P-256, also known as secp256r1
	EllipticCurveP256 EllipticCurve = 1
	// EC2: NIST P-384, also known as secp384r1
	EllipticCurveP384 EllipticCurve = 2
	// EC2: NIST P-521, also known as secp521r1
	EllipticCurveP521 EllipticCurve = 3
	// OKP: X25519 for use w/ ECDH only
	EllipticCurveX25519 EllipticCurve = 4
	// OKP: X448 for use w/ ECDH only
	EllipticCurveX448 EllipticCurve = 5
	// OKP: Ed25519 for use w/ EdDSA only
	EllipticCurveEd25519 EllipticCurve = 6
	// OKP: Ed448 for use w/ EdDSA only
	EllipticCurveEd448 EllipticCurve = 7
	// EC2: SECG secp256k1 curve
	EllipticCurveSecp256k1 EllipticCurve = 8
)

// Integer values for COSE elliptic curves below this value are reserved for
// private use
const EllipticCurvePrivateUseMax int64 = -65536

// EllipticCurveIsPrivate returns true when the given value falls in the
// private use range of the elliptic curve registry
func EllipticCurveIsPrivate(i int64) bool {
	return i < EllipticCurvePrivateUseMax
}

var ellipticCurveRegistry = registry{
	int64(EllipticCurveReserved):  "Reserved",
	int64(EllipticCurveP256):      "P-256",
	int64(EllipticCurveP384):      "P-384",
	int64(EllipticCurveP521):      "P-521",
	int64(EllipticCurveX25519):    "X25519",
	int64(EllipticCurveX448):      "X448",
	int64(EllipticCurveEd25519):   "Ed25519",
	int64(EllipticCurveEd448):     "Ed448",
	int64(EllipticCurveSecp256k1): "secp256k1",
}

// EllipticCurveFromInt returns the EllipticCurve assigned to the given value
func EllipticCurveFromInt(i int64) (EllipticCurve, bool) {
	if !ellipticCurveRegistry.contains(i) {
		return 0, false
	}
	return EllipticCurve(i), true
}

// Registered returns true when the value is assigned in the registry
func (e EllipticCurve) Registered() bool {
	return ellipticCurveRegistry.contains(int64(e))
}

func (e EllipticCurve) String() string {
	return ellipticCurveRegistry.name(int64(e), "EllipticCurve")
}

// KeyParameter is a value from the "COSE Key Common Parameters" registry
type KeyParameter int64

const (
	// Reserved value
	KeyParameterReserved KeyParameter = 0
	// Identification of the key type (tstr / int)
	KeyParameterKty KeyParameter = 1
	// Key identification value - match to kid in message (bstr)
	KeyParameterKid KeyParameter = 2
	// Key usage restriction to this algorithm (tstr / int)
	KeyParameterAlg KeyParameter = 3
	// Restrict set of permissible operations ([+ (tstr / int)])
	KeyParameterKeyOps KeyParameter = 4
	// Base IV to be XORed with partial IVs (bstr)
	KeyParameterBaseIv KeyParameter = 5
)

var keyParameterRegistry = registry{
	int64(KeyParameterReserved): "Reserved",
	int64(KeyParameterKty):      "kty",
	int64(KeyParameterKid):      "kid",
	int64(KeyParameterAlg):      "alg",
	int64(KeyParameterKeyOps):   "key_ops",
	int64(KeyParameterBaseIv):   "Base IV",
}

// KeyParameterFromInt returns the KeyParameter assigned to the given value
func KeyParameterFromInt(i int64) (KeyParameter, bool) {
	if !keyParameterRegistry.contains(i) {
		return 0, false
	}
	return KeyParameter(i), true
}

// Registered returns true when the value is assigned in the registry
func (k KeyParameter) Registered() bool {
	return keyParameterRegistry.contains(int64(k))
}

func (k KeyParameter) String() string {
	return keyParameterRegistry.name(int64(k), "KeyParameter")
}

// OkpKeyParameter is a value from the "COSE Key Type Parameters" registry
// for keys of type KeyTypeOKP
type OkpKeyParameter int64

const (
	// EC identifier, taken from the "COSE Elliptic Curves" registry
	// (tstr / int)
	OkpKeyParameterCrv OkpKeyParameter = -1
	// Public key (bstr)
	OkpKeyParameterX OkpKeyParameter = -2
	// Private key (bstr)
	OkpKeyParameterD OkpKeyParameter = -4
)

var okpKeyParameterRegistry = registry{
	int64(OkpKeyParameterCrv): "crv",
	int64(OkpKeyParameterX):   "x",
	int64(OkpKeyParameterD):   "d",
}

// OkpKeyParameterFromInt returns the OkpKeyParameter assigned to the given
// value
func OkpKeyParameterFromInt(i int64) (OkpKeyParameter, bool) {
	if !okpKeyParameterRegistry.contains(i) {
		return 0, false
	}
	return OkpKeyParameter(i), true
}

// Registered returns true when the value is assigned in the registry
func (p OkpKeyParameter) Registered() bool {
	return okpKeyParameterRegistry.contains(int64(p))
}

func (p OkpKeyParameter) String() string {
	return okpKeyParameterRegistry.name(int64(p), "OkpKeyParameter")
}

// Ec2KeyParameter is a value from the "COSE Key Type Parameters" registry
// for keys of type KeyTypeEC2
type Ec2KeyParameter int64

const (
	// EC identifier, taken from the "COSE Elliptic Curves" registry
	// (tstr / int)
	Ec2KeyParameterCrv Ec2KeyParameter = -1
	// x-coordinate (bstr)
	Ec2KeyParameterX Ec2KeyParameter = -2
	// y-coordinate (bstr / bool)
	Ec2KeyParameterY Ec2KeyParameter = -3
	// Private key (bstr)
	Ec2KeyParameterD Ec2KeyParameter = -4
)

var ec2KeyParameterRegistry = registry{
	int64(Ec2KeyParameterCrv): "crv",
	int64(Ec2KeyParameterX):   "x",
	int64(Ec2KeyParameterY):   "y",
	int64(Ec2KeyParameterD):   "d",
}

// Ec2KeyParameterFromInt returns the Ec2KeyParameter assigned to the given
// value
func Ec2KeyParameterFromInt(i int64) (Ec2KeyParameter, bool) {
	if !ec2KeyParameterRegistry.contains(i) {
		return 0, false
	}
	return Ec2KeyParameter(i), true
}

// Registered returns true when the value is assigned in the registry
func (p Ec2KeyParameter) Registered() bool {
	return ec2KeyParameterRegistry.contains(int64(p))
}

func (p Ec2KeyParameter) String() string {
	return ec2KeyParameterRegistry.name(int64(p), "Ec2KeyParameter")
}

// RsaKeyParameter is a value from the "COSE Key Type Parameters" registry
// for keys of type KeyTypeRSA
type RsaKeyParameter int64

const (
	// The RSA modulus n (bstr)
	RsaKeyParameterN RsaKeyParameter = -1
	// The RSA public exponent e (bstr)
	RsaKeyParameterE RsaKeyParameter = -2
	// The RSA private exponent d (bstr)
	RsaKeyParameterD RsaKeyParameter = -3
	// The prime factor p of n (bstr)
	RsaKeyParameterP RsaKeyParameter = -4
	// The prime factor q of n (bstr)
	RsaKeyParameterQ RsaKeyParameter = -5
	// dP is d mod (p - 1) (bstr)
	RsaKeyParameterDP RsaKeyParameter = -6
	// dQ is d mod (q - 1) (bstr)
	RsaKeyParameterDQ RsaKeyParameter = -7
	// qInv is the CRT coefficient q^(-1) mod p (bstr)
	RsaKeyParameterQInv RsaKeyParameter = -8
	// Other prime infos, an array
	RsaKeyParameterOther RsaKeyParameter = -9
	// A prime factor r_i of n, where i >= 3 (bstr)
	RsaKeyParameterRI RsaKeyParameter = -10
	// d_i = d mod (r_i - 1) (bstr)
	RsaKeyParameterDI RsaKeyParameter = -11
	// The CRT coefficient t_i = (r_1 * r_2 * ... * r_(i-1))^(-1) mod r_i
	// (bstr)
	RsaKeyParameterTI RsaKeyParameter = -12
)

var rsaKeyParameterRegistry = registry{
	int64(RsaKeyParameterN):     "n",
	int64(RsaKeyParameterE):     "e",
	int64(RsaKeyParameterD):     "d",
	int64(RsaKeyParameterP):     "p",
	int64(RsaKeyParameterQ):     "q",
	int64(RsaKeyParameterDP):    "dP",
	int64(RsaKeyParameterDQ):    "dQ",
	int64(RsaKeyParameterQInv):  "qInv",
	int64(RsaKeyParameterOther): "other",
	int64(RsaKeyParameterRI):    "r_i",
	int64(RsaKeyParameterDI):    "d_i",
	int64(RsaKeyParameterTI):    "t_i",
}

// RsaKeyParameterFromInt returns the RsaKeyParameter assigned to the given
// value
func RsaKeyParameterFromInt(i int64) (RsaKeyParameter, bool) {
	if !rsaKeyParameterRegistry.contains(i) {
		return 0, false
	}
	return RsaKeyParameter(i), true
}

// Registered returns true when the value is assigned in the registry
func (p RsaKeyParameter) Registered() bool {
	return rsaKeyParameterRegistry.contains(int64(p))
}

func (p RsaKeyParameter) String() string {
	return rsaKeyParameterRegistry.name(int64(p), "RsaKeyParameter")
}

// SymmetricKeyParameter is a value from the "COSE Key Type Parameters"
// registry for keys of type KeyTypeSymmetric
type SymmetricKeyParameter int64

const (
	// Key value (bstr)
	SymmetricKeyParameterK SymmetricKeyParameter = -1
)

var symmetricKeyParameterRegistry = registry{
	int64(SymmetricKeyParameterK): "k",
}

// SymmetricKeyParameterFromInt returns the SymmetricKeyParameter assigned to
// the given value
func SymmetricKeyParameterFromInt(i int64) (SymmetricKeyParameter, bool) {
	if !symmetricKeyParameterRegistry.contains(i) {
		return 0, false
	}
	return SymmetricKeyParameter(i), true
}

// Registered returns true when the value is assigned in the registry
func (p SymmetricKeyParameter) Registered() bool {
	return symmetricKeyParameterRegistry.contains(int64(p))
}

func (p SymmetricKeyParameter) String() string {
	return symmetricKeyParameterRegistry.name(int64(p), "SymmetricKeyParameter")
}

// HssLmsKeyParameter is a value from the "COSE Key Type Parameters" registry
// for keys of type KeyTypeHSSLMS
type HssLmsKeyParameter int64

const (
	// Public key for HSS/LMS hash-based digital signature (bstr)
	HssLmsKeyParameterPub HssLmsKeyParameter = -1
)

var hssLmsKeyParameterRegistry = registry{
	int64(HssLmsKeyParameterPub): "pub",
}

// HssLmsKeyParameterFromInt returns the HssLmsKeyParameter assigned to the
// given value
func HssLmsKeyParameterFromInt(i int64) (HssLmsKeyParameter, bool) {
	if !hssLmsKeyParameterRegistry.contains(i) {
		return 0, false
	}
	return HssLmsKeyParameter(i), true
}

// Registered returns true when the value is assigned in the registry
func (p HssLmsKeyParameter) Registered() bool {
	return hssLmsKeyParameterRegistry.contains(int64(p))
}

func (p HssLmsKeyParameter) String() string {
	return hssLmsKeyParameterRegistry.name(int64(p), "HssLmsKeyParameter")
}

// WalnutDsaKeyParameter is a value from the "COSE Key Type Parameters"
// registry for keys of type KeyTypeWalnutDSA
type WalnutDsaKeyParameter int64

const (
	// Group and matrix (NxN) size (uint)
	WalnutDsaKeyParameterN WalnutDsaKeyParameter = -1
	// Finite field F_q (uint)
	WalnutDsaKeyParameterQ WalnutDsaKeyParameter = -2
	// List of T-values, entries in F_q (array of uint)
	WalnutDsaKeyParameterTValues WalnutDsaKeyParameter = -3
	// NxN matrix of entries in F_q in column-major form (array of array
	// of uint)
	WalnutDsaKeyParameterMatrix1 WalnutDsaKeyParameter = -4
	// Permutation associated with matrix 1 (array of uint)
	WalnutDsaKeyParameterPermutation1 WalnutDsaKeyParameter = -5
	// NxN matrix of entries in F_q in column-major form (array of array
	// of uint)
	WalnutDsaKeyParameterMatrix2 WalnutDsaKeyParameter = -6
)

var walnutDsaKeyParameterRegistry = registry{
	int64(WalnutDsaKeyParameterN):            "N",
	int64(WalnutDsaKeyParameterQ):            "q",
	int64(WalnutDsaKeyParameterTValues):      "t-values",
	int64(WalnutDsaKeyParameterMatrix1):      "matrix 1",
	int64(WalnutDsaKeyParameterPermutation1): "permutation 1",
	int64(WalnutDsaKeyParameterMatrix2):      "matrix 2",
}

// WalnutDsaKeyParameterFromInt returns the WalnutDsaKeyParameter assigned to
// the given value
func WalnutDsaKeyParameterFromInt(i int64) (WalnutDsaKeyParameter, bool) {
	if !walnutDsaKeyParameterRegistry.contains(i) {
		return 0, false
	}
	return WalnutDsaKeyParameter(i), true
}

// Registered returns true when the value is assigned in the registry
func (p WalnutDsaKeyParameter) Registered() bool {
	return walnutDsaKeyParameterRegistry.contains(int64(p))
}

func (p WalnutDsaKeyParameter) String() string {
	return walnutDsaKeyParameterRegistry.name(int64(p), "WalnutDsaKeyParameter")
}
