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

// Package cose implements the COSE_Key and COSE_KeySet structures from
// RFC 8152, together with the extensible label model shared by COSE
// structures.
//
// Keys round-trip through CBOR without loss: decoding accepts values the
// IANA registries do not list, extension parameters keep their wire order,
// and re-encoding a decoded key reproduces the common parameters in the
// canonical label order (kty, kid, alg, key_ops, Base IV) followed by the
// extension parameters as they appeared.
//
// Decoding is strict about the shape of the common parameters and fails on
// the first violation; it never rejects a key merely because a value is
// unregistered.
package cose
