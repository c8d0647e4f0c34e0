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

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	cose "github.com/blinklabs-io/gocose"
	"github.com/blinklabs-io/gocose/cbor"
	"github.com/blinklabs-io/gocose/iana"
)

type keyInspectFlags struct {
	flagset *flag.FlagSet
	hexData string
	file    string
	keySet  bool
}

func main() {
	f := keyInspectFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(&f.hexData, "hex", "", "hex-encoded COSE key data")
	f.flagset.StringVar(&f.file, "file", "", "path to file with raw COSE key data")
	f.flagset.BoolVar(&f.keySet, "set", false, "treat input as a COSE_KeySet")
	if err := f.flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("ERROR: failed to parse commandline: %s\n", err)
		os.Exit(1)
	}
	data, err := readInput(&f)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if f.keySet {
		keySet, err := cose.NewCoseKeySetFromCbor(data)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("COSE_KeySet with %d key(s)\n", len(keySet))
		for idx, key := range keySet {
			fmt.Printf("\nKey %d:\n", idx)
			printKey(key)
		}
		return
	}
	key, err := cose.NewCoseKeyFromCbor(data)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	printKey(*key)
}

func readInput(f *keyInspectFlags) ([]byte, error) {
	switch {
	case f.hexData != "":
		data, err := hex.DecodeString(strings.TrimSpace(f.hexData))
		if err != nil {
			return nil, fmt.Errorf("failed to decode hex: %w", err)
		}
		return data, nil
	case f.file != "":
		data, err := os.ReadFile(f.file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("no input: provide -hex or -file")
	}
}

func printKey(key cose.CoseKey) {
	fmt.Printf("  kty: %s\n", key.Kty)
	if len(key.KeyID) > 0 {
		fmt.Printf("  kid: %x\n", key.KeyID)
	}
	if key.Alg != nil {
		fmt.Printf("  alg: %s", key.Alg)
		if algValue, ok := key.Alg.Int(); ok && iana.AlgorithmIsPrivate(algValue) {
			fmt.Printf(" (private use)")
		}
		fmt.Printf("\n")
	}
	if len(key.KeyOps) > 0 {
		opNames := make([]string, 0, len(key.KeyOps))
		for _, op := range key.KeyOps {
			opNames = append(opNames, op.String())
		}
		fmt.Printf("  key_ops: %s\n", strings.Join(opNames, ", "))
	}
	if len(key.BaseIV) > 0 {
		fmt.Printf("  base IV: %x\n", key.BaseIV)
	}
	for _, param := range key.Params {
		fmt.Printf("  param %s: %s\n", param.Label, describeValue(param.Value))
	}
	if thumbprint, err := key.Thumbprint(); err == nil {
		fmt.Printf("  thumbprint: %x\n", thumbprint)
	}
}

func describeValue(v cbor.Value) string {
	switch tv := v.(type) {
	case cbor.Uint:
		return fmt.Sprintf("%d", uint64(tv))
	case cbor.NegInt:
		return fmt.Sprintf("%d", int64(tv))
	case cbor.ByteString:
		return fmt.Sprintf("h'%x' (%d bytes)", []byte(tv), len(tv))
	case cbor.TextString:
		return fmt.Sprintf("%q", string(tv))
	case cbor.Array:
		return fmt.Sprintf("array with %d item(s)", len(tv))
	case cbor.Map:
		return fmt.Sprintf("map with %d entry(s)", len(tv))
	case cbor.Simple:
		switch tv {
		case cbor.SimpleFalse:
			return "false"
		case cbor.SimpleTrue:
			return "true"
		case cbor.SimpleNull:
			return "null"
		case cbor.SimpleUndefined:
			return "undefined"
		default:
			return fmt.Sprintf("simple(%d)", uint8(tv))
		}
	case cbor.Float:
		return fmt.Sprintf("%g", float64(tv))
	case cbor.Tag:
		return fmt.Sprintf("tag %d: %s", tv.Number, describeValue(tv.Content))
	default:
		return cbor.TypeName(v)
	}
}
