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

// Algorithm is a value from the "COSE Algorithms" registry
type Algorithm int64

const (
	// RSASSA-PKCS1-v1_5 using SHA-1
	AlgorithmRS1 Algorithm = -65535
	// WalnutDSA signature
	AlgorithmWalnutDSA Algorithm = -260
	// RSASSA-PKCS1-v1_5 using SHA-512
	AlgorithmRS512 Algorithm = -259
	// RSASSA-PKCS1-v1_5 using SHA-384
	AlgorithmRS384 Algorithm = -258
	// RSASSA-PKCS1-v1_5 using SHA-256
	AlgorithmRS256 Algorithm = -257
	// ECDSA using secp256k1 curve and SHA-256
	AlgorithmES256K Algorithm = -47
	// HSS/LMS hash-based digital signature
	AlgorithmHSSLMS Algorithm = -46
	// SHAKE-256 512-bit hash value
	AlgorithmSHAKE256 Algorithm = -45
	// SHA-2 512-bit hash
	AlgorithmSHA512 Algorithm = -44
	// SHA-2 384-bit hash
	AlgorithmSHA384 Algorithm = -43
	// RSAES-OAEP w/ SHA-512
	AlgorithmRSAESOAEPSHA512 Algorithm = -42
	// RSAES-OAEP w/ SHA-256
	AlgorithmRSAESOAEPSHA256 Algorithm = -41
	// RSAES-OAEP w/ SHA-1
	AlgorithmRSAESOAEPRFC8017Default Algorithm = -40
	// RSASSA-PSS w/ SHA-512
	AlgorithmPS512 Algorithm = -39
	// RSASSA-PSS w/ SHA-384
	AlgorithmPS384 Algorithm = -38
	// RSASSA-PSS w/ SHA-256
	AlgorithmPS256 Algorithm = -37
	// ECDSA w/ SHA-512
	AlgorithmES512 Algorithm = -36
	// ECDSA w/ SHA-384
	AlgorithmES384 Algorithm = -35
	// ECDH SS w/ Concat KDF and AES Key Wrap w/ 256-bit key
	AlgorithmECDHSSA256KW Algorithm = -34
	// ECDH SS w/ Concat KDF and AES Key Wrap w/ 192-bit key
	AlgorithmECDHSSA192KW Algorithm = -33
	// ECDH SS w/ Concat KDF and AES Key Wrap w/ 128-bit key
	AlgorithmECDHSSA128KW Algorithm = -32
	// ECDH ES w/ Concat KDF and AES Key Wrap w/ 256-bit key
	AlgorithmECDHESA256KW Algorithm = -31
	// ECDH ES w/ Concat KDF and AES Key Wrap w/ 192-bit key
	AlgorithmECDHESA192KW Algorithm = -30
	// ECDH ES w/ Concat KDF and AES Key Wrap w/ 128-bit key
	AlgorithmECDHESA128KW Algorithm = -29
	// ECDH SS w/ HKDF - generate key directly
	AlgorithmECDHSSHKDF512 Algorithm = -28
	// ECDH SS w/ HKDF - generate key directly
	AlgorithmECDHSSHKDF256 Algorithm = -27
	// ECDH ES w/ HKDF - generate key directly
	AlgorithmECDHESHKDF512 Algorithm = -26
	// ECDH ES w/ HKDF - generate key directly
	AlgorithmECDHESHKDF256 Algorithm = -25
	// SHAKE-128 256-bit hash value
	AlgorithmSHAKE128 Algorithm = -18
	// SHA-2 512-bit hash truncated to 256 bits
	AlgorithmSHA512_256 Algorithm = -17
	// SHA-2 256-bit hash
	AlgorithmSHA256 Algorithm = -16
	// SHA-2 256-bit hash truncated to 64 bits
	AlgorithmSHA256_64 Algorithm = -15
	// SHA-1 hash
	AlgorithmSHA1 Algorithm = -14
	// Shared secret w/ AES-MAC 256-bit key
	AlgorithmDirectHKDFAES256 Algorithm = -13
	// Shared secret w/ AES-MAC 128-bit key
	AlgorithmDirectHKDFAES128 Algorithm = -12
	// Shared secret w/ HKDF and SHA-512
	AlgorithmDirectHKDFSHA512 Algorithm = -11
	// Shared secret w/ HKDF and SHA-256
	AlgorithmDirectHKDFSHA256 Algorithm = -10
	// EdDSA
	AlgorithmEdDSA Algorithm = -8
	// ECDSA w/ SHA-256
	AlgorithmES256 Algorithm = -7
	// Direct use of CEK
	AlgorithmDirect Algorithm = -6
	// AES Key Wrap w/ 256-bit key
	AlgorithmA256KW Algorithm = -5
	// AES Key Wrap w/ 192-bit key
	AlgorithmA192KW Algorithm = -4
	// AES Key Wrap w/ 128-bit key
	AlgorithmA128KW Algorithm = -3
	// AES-GCM mode w/ 128-bit key, 128-bit tag
	AlgorithmA128GCM Algorithm = 1
	// AES-GCM mode w/ 192-bit key, 128-bit tag
	AlgorithmA192GCM Algorithm = 2
	// AES-GCM mode w/ 256-bit key, 128-bit tag
	AlgorithmA256GCM Algorithm = 3
	// HMAC w/ SHA-256 truncated to 64 bits
	AlgorithmHMAC256_64 Algorithm = 4
	// HMAC w/ SHA-256
	AlgorithmHMAC256_256 Algorithm = 5
	// HMAC w/ SHA-384
	AlgorithmHMAC384_384 Algorithm = 6
	// HMAC w/ SHA-512
	AlgorithmHMAC512_512 Algorithm = 7
	// AES-CCM mode 128-bit key, 64-bit tag, 13-byte nonce
	AlgorithmAESCCM16_64_128 Algorithm = 10
	// AES-CCM mode 256-bit key, 64-bit tag, 13-byte nonce
	AlgorithmAESCCM16_64_256 Algorithm = 11
	// AES-CCM mode 128-bit key, 64-bit tag, 7-byte nonce
	AlgorithmAESCCM64_64_128 Algorithm = 12
	// AES-CCM mode 256-bit key, 64-bit tag, 7-byte nonce
	AlgorithmAESCCM64_64_256 Algorithm = 13
	// AES-MAC 128-bit key, 64-bit tag
	AlgorithmAESMAC128_64 Algorithm = 14
	// AES-MAC 256-bit key, 64-bit tag
	AlgorithmAESMAC256_64 Algorithm = 15
	// ChaCha20/Poly1305 w/ 256-bit key, 128-bit tag
	AlgorithmChaCha20Poly1305 Algorithm = 24
	// AES-MAC 128-bit key, 128-bit tag
	AlgorithmAESMAC128_128 Algorithm = 25
	// AES-MAC 256-bit key, 128-bit tag
	AlgorithmAESMAC256_128 Algorithm = 26
	// AES-CCM mode 128-bit key, 128-bit tag, 13-byte nonce
	AlgorithmAESCCM16_128_128 Algorithm = 30
	// AES-CCM mode 256-bit key, 128-bit tag, 13-byte nonce
	AlgorithmAESCCM16_128_256 Algorithm = 31
	// AES-CCM mode 128-bit key, 128-bit tag, 7-byte nonce
	AlgorithmAESCCM64_128_128 Algorithm = 32
	// AES-CCM mode 256-bit key, 128-bit tag, 7-byte nonce
	AlgorithmAESCCM64_128_256 Algorithm = 33
	// For doing IV generation for symmetric algorithms
	AlgorithmIVGeneration Algorithm = 34
)

// Integer values for COSE algorithms below this value are reserved for
// private use
const AlgorithmPrivateUseMax int64 = -65536

// AlgorithmIsPrivate returns true when the given value falls in the private
// use range of the algorithm registry
func AlgorithmIsPrivate(i int64) bool {
	return i < AlgorithmPrivateUseMax
}

var algorithmRegistry = registry{
	int64(AlgorithmRS1):                      "RS1",
	int64(AlgorithmWalnutDSA):                "WalnutDSA",
	int64(AlgorithmRS512):                    "RS512",
	int64(AlgorithmRS384):                    "RS384",
	int64(AlgorithmRS256):                    "RS256",
	int64(AlgorithmES256K):                   "ES256K",
	int64(AlgorithmHSSLMS):                   "HSS-LMS",
	int64(AlgorithmSHAKE256):                 "SHAKE256",
	int64(AlgorithmSHA512):                   "SHA-512",
	int64(AlgorithmSHA384):                   "SHA-384",
	int64(AlgorithmRSAESOAEPSHA512):          "RSAES-OAEP w/ SHA-512",
	int64(AlgorithmRSAESOAEPSHA256):          "RSAES-OAEP w/ SHA-256",
	int64(AlgorithmRSAESOAEPRFC8017Default):  "RSAES-OAEP w/ RFC 8017 default parameters",
	int64(AlgorithmPS512):                    "PS512",
	int64(AlgorithmPS384):                    "PS384",
	int64(AlgorithmPS256):                    "PS256",
	int64(AlgorithmES512):                    "ES512",
	int64(AlgorithmES384):                    "ES384",
	int64(AlgorithmECDHSSA256KW):             "ECDH-SS + A256KW",
	int64(AlgorithmECDHSSA192KW):             "ECDH-SS + A192KW",
	int64(AlgorithmECDHSSA128KW):             "ECDH-SS + A128KW",
	int64(AlgorithmECDHESA256KW):             "ECDH-ES + A256KW",
	int64(AlgorithmECDHESA192KW):             "ECDH-ES + A192KW",
	int64(AlgorithmECDHESA128KW):             "ECDH-ES + A128KW",
	int64(AlgorithmECDHSSHKDF512):            "ECDH-SS + HKDF-512",
	int64(AlgorithmECDHSSHKDF256):            "ECDH-SS + HKDF-256",
	int64(AlgorithmECDHESHKDF512):            "ECDH-ES + HKDF-512",
	int64(AlgorithmECDHESHKDF256):            "ECDH-ES + HKDF-256",
	int64(AlgorithmSHAKE128):                 "SHAKE128",
	int64(AlgorithmSHA512_256):               "SHA-512/256",
	int64(AlgorithmSHA256):                   "SHA-256",
	int64(AlgorithmSHA256_64):                "SHA-256/64",
	int64(AlgorithmSHA1):                     "SHA-1",
	int64(AlgorithmDirectHKDFAES256):         "direct+HKDF-AES-256",
	int64(AlgorithmDirectHKDFAES128):         "direct+HKDF-AES-128",
	int64(AlgorithmDirectHKDFSHA512):         "direct+HKDF-SHA-512",
	int64(AlgorithmDirectHKDFSHA256):         "direct+HKDF-SHA-256",
	int64(AlgorithmEdDSA):                    "EdDSA",
	int64(AlgorithmES256):                    "ES256",
	int64(AlgorithmDirect):                   "direct",
	int64(AlgorithmA256KW):                   "A256KW",
	int64(AlgorithmA192KW):                   "A192KW",
	int64(AlgorithmA128KW):                   "A128KW",
	int64(AlgorithmA128GCM):                  "A128GCM",
	int64(AlgorithmA192GCM):                  "A192GCM",
	int64(AlgorithmA256GCM):                  "A256GCM",
	int64(AlgorithmHMAC256_64):               "HMAC 256/64",
	int64(AlgorithmHMAC256_256):              "HMAC 256/256",
	int64(AlgorithmHMAC384_384):              "HMAC 384/384",
	int64(AlgorithmHMAC512_512):              "HMAC 512/512",
	int64(AlgorithmAESCCM16_64_128):          "AES-CCM-16-64-128",
	int64(AlgorithmAESCCM16_64_256):          "AES-CCM-16-64-256",
	int64(AlgorithmAESCCM64_64_128):          "AES-CCM-64-64-128",
	int64(AlgorithmAESCCM64_64_256):          "AES-CCM-64-64-256",
	int64(AlgorithmAESMAC128_64):             "AES-MAC 128/64",
	int64(AlgorithmAESMAC256_64):             "AES-MAC 256/64",
	int64(AlgorithmChaCha20Poly1305):         "ChaCha20/Poly1305",
	int64(AlgorithmAESMAC128_128):            "AES-MAC 128/128",
	int64(AlgorithmAESMAC256_128):            "AES-MAC 256/128",
	int64(AlgorithmAESCCM16_128_128):         "AES-CCM-16-128-128",
	int64(AlgorithmAESCCM16_128_256):         "AES-CCM-16-128-256",
	int64(AlgorithmAESCCM64_128_128):         "AES-CCM-64-128-128",
	int64(AlgorithmAESCCM64_128_256):         "AES-CCM-64-128-256",
	int64(AlgorithmIVGeneration):             "IV-GENERATION",
}

// AlgorithmFromInt returns the Algorithm assigned to the given value
func AlgorithmFromInt(i int64) (Algorithm, bool) {
	if !algorithmRegistry.contains(i) {
		return 0, false
	}
	return Algorithm(i), true
}

// Registered returns true when the value is assigned in the registry
func (a Algorithm) Registered() bool {
	return algorithmRegistry.contains(int64(a))
}

func (a Algorithm) String() string {
	return algorithmRegistry.name(int64(a), "Algorithm")
}
