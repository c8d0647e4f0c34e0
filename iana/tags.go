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

// CborTag is a CBOR tag value for a COSE structure, from the "CBOR Tags"
// registry
type CborTag int64

const (
	// COSE Single Recipient Encrypted Data Object
	CborTagCoseEncrypt0 CborTag = 16
	// COSE MAC w/o Recipients Object
	CborTagCoseMac0 CborTag = 17
	// COSE Single Signer Data Object
	CborTagCoseSign1 CborTag = 18
	// CBOR Web Token (CWT)
	CborTagCwt CborTag = 61
	// COSE Encrypted Data Object
	CborTagCoseEncrypt CborTag = 96
	// COSE MACed Data Object
	CborTagCoseMac CborTag = 97
	// COSE Signed Data Object
	CborTagCoseSign CborTag = 98
)

var cborTagRegistry = registry{
	int64(CborTagCoseEncrypt0): "COSE_Encrypt0",
	int64(CborTagCoseMac0):     "COSE_Mac0",
	int64(CborTagCoseSign1):    "COSE_Sign1",
	int64(CborTagCwt):          "CWT",
	int64(CborTagCoseEncrypt):  "COSE_Encrypt",
	int64(CborTagCoseMac):      "COSE_Mac",
	int64(CborTagCoseSign):     "COSE_Sign",
}

// CborTagFromInt returns the CborTag assigned to the given value
func CborTagFromInt(i int64) (CborTag, bool) {
	if !cborTagRegistry.contains(i) {
		return 0, false
	}
	return CborTag(i), true
}

// Registered returns true when the value is assigned in the registry
func (t CborTag) Registered() bool {
	return cborTagRegistry.contains(int64(t))
}

func (t CborTag) String() string {
	return cborTagRegistry.name(int64(t), "CborTag")
}

// CoapContentFormat is a value from the CoAP "Content-Formats" registry
type CoapContentFormat int64

const (
	// text/plain; charset=utf-8
	CoapContentFormatTextPlainUtf8 CoapContentFormat = 0
	// application/cose; cose-type="cose-encrypt0"
	CoapContentFormatCoseEncrypt0 CoapContentFormat = 16
	// application/cose; cose-type="cose-mac0"
	CoapContentFormatCoseMac0 CoapContentFormat = 17
	// application/cose; cose-type="cose-sign1"
	CoapContentFormatCoseSign1 CoapContentFormat = 18
	// application/link-format
	CoapContentFormatLinkFormat CoapContentFormat = 40
	// application/xml
	CoapContentFormatXml CoapContentFormat = 41
	// application/octet-stream
	CoapContentFormatOctetStream CoapContentFormat = 42
	// application/exi
	CoapContentFormatExi CoapContentFormat = 47
	// application/json
	CoapContentFormatJson CoapContentFormat = 50
	// application/json-patch+json
	CoapContentFormatJsonPatchJson CoapContentFormat = 51
	// application/merge-patch+json
	CoapContentFormatMergePatchJson CoapContentFormat = 52
	// application/cbor
	CoapContentFormatCbor CoapContentFormat = 60
	// application/cwt
	CoapContentFormatCwt CoapContentFormat = 61
	// application/multipart-core
	CoapContentFormatMultipartCore CoapContentFormat = 62
	// application/cbor-seq
	CoapContentFormatCborSeq CoapContentFormat = 63
	// application/cose; cose-type="cose-encrypt"
	CoapContentFormatCoseEncrypt CoapContentFormat = 96
	// application/cose; cose-type="cose-mac"
	CoapContentFormatCoseMac CoapContentFormat = 97
	// application/cose; cose-type="cose-sign"
	CoapContentFormatCoseSign CoapContentFormat = 98
	// application/cose-key
	CoapContentFormatCoseKey CoapContentFormat = 101
	// application/cose-key-set
	CoapContentFormatCoseKeySet CoapContentFormat = 102
	// application/senml+json
	CoapContentFormatSenmlJson CoapContentFormat = 110
	// application/sensml+json
	CoapContentFormatSensmlJson CoapContentFormat = 111
	// application/senml+cbor
	CoapContentFormatSenmlCbor CoapContentFormat = 112
	// application/sensml+cbor
	CoapContentFormatSensmlCbor CoapContentFormat = 113
	// application/senml-exi
	CoapContentFormatSenmlExi CoapContentFormat = 114
	// application/sensml-exi
	CoapContentFormatSensmlExi CoapContentFormat = 115
	// application/coap-group+json
	CoapContentFormatCoapGroupJson CoapContentFormat = 256
	// application/dots+cbor
	CoapContentFormatDotsCbor CoapContentFormat = 271
	// application/pkcs7-mime; smime-type=server-generated-key
	CoapContentFormatPkcs7MimeServerGeneratedKey CoapContentFormat = 280
	// application/pkcs7-mime; smime-type=certs-only
	CoapContentFormatPkcs7MimeCertsOnly CoapContentFormat = 281
	// application/pkcs7-mime; smime-type=CMC-Request
	CoapContentFormatPkcs7MimeCmcRequest CoapContentFormat = 282
	// application/pkcs7-mime; smime-type=CMC-Response
	CoapContentFormatPkcs7MimeCmcResponse CoapContentFormat = 283
	// application/pkcs8
	CoapContentFormatPkcs8 CoapContentFormat = 284
	// application/csrattrs
	CoapContentFormatCsrattrs CoapContentFormat = 285
	// application/pkcs10
	CoapContentFormatPkcs10 CoapContentFormat = 286
	// application/pkix-cert
	CoapContentFormatPkixCert CoapContentFormat = 287
	// application/senml+xml
	CoapContentFormatSenmlXml CoapContentFormat = 310
	// application/sensml+xml
	CoapContentFormatSensmlXml CoapContentFormat = 311
	// application/senml-etch+json
	CoapContentFormatSenmlEtchJson CoapContentFormat = 320
	// application/senml-etch+cbor
	CoapContentFormatSenmlEtchCbor CoapContentFormat = 322
	// application/td+json
	CoapContentFormatTdJson CoapContentFormat = 432
	// application/vnd.ocf+cbor
	CoapContentFormatVndOcfCbor CoapContentFormat = 10000
	// application/oscore
	CoapContentFormatOscore CoapContentFormat = 10001
	// application/json deflate
	CoapContentFormatJsonDeflate CoapContentFormat = 11050
	// application/cbor deflate
	CoapContentFormatCborDeflate CoapContentFormat = 11060
	// application/vnd.oma.lwm2m+tlv
	CoapContentFormatVndOmaLwm2mTlv CoapContentFormat = 11542
	// application/vnd.oma.lwm2m+json
	CoapContentFormatVndOmaLwm2mJson CoapContentFormat = 11543
	// application/vnd.oma.lwm2m+cbor
	CoapContentFormatVndOmaLwm2mCbor CoapContentFormat = 11544
)

var coapContentFormatRegistry = registry{
	int64(CoapContentFormatTextPlainUtf8):                "text/plain; charset=utf-8",
	int64(CoapContentFormatCoseEncrypt0):                 `application/cose; cose-type="cose-encrypt0"`,
	int64(CoapContentFormatCoseMac0):                     `application/cose; cose-type="cose-mac0"`,
	int64(CoapContentFormatCoseSign1):                    `application/cose; cose-type="cose-sign1"`,
	int64(CoapContentFormatLinkFormat):                   "application/link-format",
	int64(CoapContentFormatXml):                          "application/xml",
	int64(CoapContentFormatOctetStream):                  "application/octet-stream",
	int64(CoapContentFormatExi):                          "application/exi",
	int64(CoapContentFormatJson):                         "application/json",
	int64(CoapContentFormatJsonPatchJson):                "application/json-patch+json",
	int64(CoapContentFormatMergePatchJson):               "application/merge-patch+json",
	int64(CoapContentFormatCbor):                         "application/cbor",
	int64(CoapContentFormatCwt):                          "application/cwt",
	int64(CoapContentFormatMultipartCore):                "application/multipart-core",
	int64(CoapContentFormatCborSeq):                      "application/cbor-seq",
	int64(CoapContentFormatCoseEncrypt):                  `application/cose; cose-type="cose-encrypt"`,
	int64(CoapContentFormatCoseMac):                      `application/cose; cose-type="cose-mac"`,
	int64(CoapContentFormatCoseSign):                     `application/cose; cose-type="cose-sign"`,
	int64(CoapContentFormatCoseKey):                      "application/cose-key",
	int64(CoapContentFormatCoseKeySet):                   "application/cose-key-set",
	int64(CoapContentFormatSenmlJson):                    "application/senml+json",
	int64(CoapContentFormatSensmlJson):                   "application/sensml+json",
	int64(CoapContentFormatSenmlCbor):                    "application/senml+cbor",
	int64(CoapContentFormatSensmlCbor):                   "application/sensml+cbor",
	int64(CoapContentFormatSenmlExi):                     "application/senml-exi",
	int64(CoapContentFormatSensmlExi):                    "application/sensml-exi",
	int64(CoapContentFormatCoapGroupJson):                "application/coap-group+json",
	int64(CoapContentFormatDotsCbor):                     "application/dots+cbor",
	int64(CoapContentFormatPkcs7MimeServerGeneratedKey):  "application/pkcs7-mime; smime-type=server-generated-key",
	int64(CoapContentFormatPkcs7MimeCertsOnly):           "application/pkcs7-mime; smime-type=certs-only",
	int64(CoapContentFormatPkcs7MimeCmcRequest):          "application/pkcs7-mime; smime-type=CMC-Request",
	int64(CoapContentFormatPkcs7MimeCmcResponse):         "application/pkcs7-mime; smime-type=CMC-Response",
	int64(CoapContentFormatPkcs8):                        "application/pkcs8",
	int64(CoapContentFormatCsrattrs):                     "application/csrattrs",
	int64(CoapContentFormatPkcs10):                       "application/pkcs10",
	int64(CoapContentFormatPkixCert):                     "application/pkix-cert",
	int64(CoapContentFormatSenmlXml):                     "application/senml+xml",
	int64(CoapContentFormatSensmlXml):                    "application/sensml+xml",
	int64(CoapContentFormatSenmlEtchJson):                "application/senml-etch+json",
	int64(CoapContentFormatSenmlEtchCbor):                "application/senml-etch+cbor",
	int64(CoapContentFormatTdJson):                       "application/td+json",
	int64(CoapContentFormatVndOcfCbor):                   "application/vnd.ocf+cbor",
	int64(CoapContentFormatOscore):                       "application/oscore",
	int64(CoapContentFormatJsonDeflate):                  "application/json deflate",
	int64(CoapContentFormatCborDeflate):                  "application/cbor deflate",
	int64(CoapContentFormatVndOmaLwm2mTlv):               "application/vnd.oma.lwm2m+tlv",
	int64(CoapContentFormatVndOmaLwm2mJson):              "application/vnd.oma.lwm2m+json",
	int64(CoapContentFormatVndOmaLwm2mCbor):              "application/vnd.oma.lwm2m+cbor",
}

// CoapContentFormatFromInt returns the CoapContentFormat assigned to the
// given value
func CoapContentFormatFromInt(i int64) (CoapContentFormat, bool) {
	if !coapContentFormatRegistry.contains(i) {
		return 0, false
	}
	return CoapContentFormat(i), true
}

// Registered returns true when the value is assigned in the registry
func (c CoapContentFormat) Registered() bool {
	return coapContentFormatRegistry.contains(int64(c))
}

func (c CoapContentFormat) String() string {
	return coapContentFormatRegistry.name(int64(c), "CoapContentFormat")
}
