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

	"github.com/blinklabs-io/gocose/cbor"
)

// UnexpectedTypeError is returned when a decoded CBOR item does not have the
// shape a COSE structure requires at that position
type UnexpectedTypeError struct {
	Got  string
	Want string
}

func (e UnexpectedTypeError) Error() string {
	return fmt.Sprintf("unexpected type: got %s, want %s", e.Got, e.Want)
}

// NewUnexpectedTypeError builds an UnexpectedTypeError from the CBOR kind of
// the offending value
func NewUnexpectedTypeError(v cbor.Value, want string) UnexpectedTypeError {
	return UnexpectedTypeError{
		Got:  cbor.TypeName(v),
		Want: want,
	}
}
