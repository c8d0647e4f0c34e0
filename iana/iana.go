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

// Package iana defines the IANA-registered values used by COSE structures.
//
// Each registry is a fixed table of assigned integer values reproduced from
// the upstream registry; there is no dynamic registration. Values are not
// validated at construction time: an integer outside a registry simply does
// not resolve to an assigned value, which callers handle through the
// RegisteredLabel wrapper in the parent package.
//
// Sources:
//   - https://www.iana.org/assignments/cose/cose.xhtml
//   - https://www.iana.org/assignments/cbor-tags/cbor-tags.xhtml
//   - https://www.iana.org/assignments/core-parameters/core-parameters.xhtml#content-formats
package iana

import (
	"fmt"
)

// registry is the assignment table for a single IANA registry, mapping each
// assigned value to its registered name
type registry map[int64]string

func (r registry) contains(i int64) bool {
	_, ok := r[i]
	return ok
}

func (r registry) name(i int64, typeName string) string {
	if name, ok := r[i]; ok {
		return name
	}
	return fmt.Sprintf("%s(%d)", typeName, i)
}
