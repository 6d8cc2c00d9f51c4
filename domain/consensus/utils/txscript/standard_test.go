// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error. This is only provided for the hard-coded constants so
// errors in the source code can be detected. It will only (and must only) be
// called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

const (
	uncompressedPubKeyHex = "0411db93e1dcdb8a016b49840f8c53bc1eb68a382e97b1482ecad7b148a6909a5cb2e0eaddf" +
		"b84ccf9744464f82e160bfa9b8b64f9d4c03f999b8643f656b412a3"
	compressedPubKeyHex = "02c08f3de8ee2de9be7bd770f4c10eb0d6ff1dd81ee96eedd3a9d4aeaf86695e80"
	pubKeyHashHex       = "ad06dd6ddee55cbca9a9e3713bd7587509a30564"
)

func TestExtractScriptPubKeyData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		class ScriptClass
		data  []byte
		// script is hex encoded
		script string
	}{
		{
			name:   "standard p2pkh",
			script: "76a914" + pubKeyHashHex + "88ac",
			class:  PubKeyHashTy,
			data:   hexToBytes(pubKeyHashHex),
		},
		{
			name:   "p2pk with uncompressed pubkey",
			script: "41" + uncompressedPubKeyHex + "ac",
			class:  PubKeyTy,
			data:   hexToBytes(uncompressedPubKeyHex),
		},
		{
			name:   "p2pk with compressed pubkey",
			script: "21" + compressedPubKeyHex + "ac",
			class:  PubKeyTy,
			data:   hexToBytes(compressedPubKeyHex),
		},
		{
			name:   "p2pk with uncompressed pk missing OP_CHECKSIG",
			script: "41" + uncompressedPubKeyHex,
			class:  NonStandardTy,
		},
		{
			name:   "p2pk with a malformed pubkey prefix",
			script: "21" + "05" + compressedPubKeyHex[2:] + "ac",
			class:  NonStandardTy,
		},
		{
			name:   "p2pk with a push length that doesn't match",
			script: "41" + compressedPubKeyHex + "ac",
			class:  NonStandardTy,
		},
		{
			name:   "p2pkh with a short hash",
			script: "76a913" + pubKeyHashHex[2:] + "88ac",
			class:  NonStandardTy,
		},
		{
			name:   "p2pkh missing OP_EQUALVERIFY",
			script: "76a914" + pubKeyHashHex + "87ac",
			class:  NonStandardTy,
		},
		{
			name:   "p2sh",
			script: "a91463bcc565f9e68ee0189dd5cc67f1b0e5f02f45cb87",
			class:  NonStandardTy,
		},
		{
			name:   "empty script",
			script: "",
			class:  NonStandardTy,
		},
	}

	for _, test := range tests {
		class, data := ExtractScriptPubKeyData(hexToBytes(test.script))
		if class != test.class {
			t.Errorf("%s: expected class %s, got %s", test.name, test.class, class)
			continue
		}
		if !bytes.Equal(data, test.data) {
			t.Errorf("%s: expected data %x, got %x", test.name, test.data, data)
		}
		if GetScriptClass(hexToBytes(test.script)) != test.class {
			t.Errorf("%s: GetScriptClass disagrees with ExtractScriptPubKeyData", test.name)
		}
	}
}

func TestPayToPubKeyScript(t *testing.T) {
	t.Parallel()

	for _, pubKeyHex := range []string{compressedPubKeyHex, uncompressedPubKeyHex} {
		pubKey := hexToBytes(pubKeyHex)
		script, err := PayToPubKeyScript(pubKey)
		if err != nil {
			t.Fatalf("TestPayToPubKeyScript: unexpected error: %s", err)
		}
		class, data := ExtractScriptPubKeyData(script)
		if class != PubKeyTy || !bytes.Equal(data, pubKey) {
			t.Fatalf("TestPayToPubKeyScript: script %x classified as %s with data %x", script, class, data)
		}
	}

	_, err := PayToPubKeyScript(hexToBytes(pubKeyHashHex))
	if err == nil {
		t.Fatalf("TestPayToPubKeyScript: expected an error for a 20 byte key")
	}
}

func TestPayToPubKeyHashScript(t *testing.T) {
	t.Parallel()

	script, err := PayToPubKeyHashScript(hexToBytes(pubKeyHashHex))
	if err != nil {
		t.Fatalf("TestPayToPubKeyHashScript: unexpected error: %s", err)
	}
	expected := hexToBytes("76a914" + pubKeyHashHex + "88ac")
	if !bytes.Equal(script, expected) {
		t.Fatalf("TestPayToPubKeyHashScript: got %x, want %x", script, expected)
	}

	_, err = PayToPubKeyHashScript([]byte{1, 2, 3})
	if err == nil {
		t.Fatalf("TestPayToPubKeyHashScript: expected an error for a short hash")
	}
}

// TestStringifyClass ensures the script class string returns the expected
// string for each script class.
func TestStringifyClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		class    ScriptClass
		stringed string
	}{
		{name: "nonstandardty", class: NonStandardTy, stringed: "nonstandard"},
		{name: "pubkey", class: PubKeyTy, stringed: "pubkey"},
		{name: "pubkeyhash", class: PubKeyHashTy, stringed: "pubkeyhash"},
		{name: "broken", class: ScriptClass(255), stringed: "Invalid"},
	}

	for _, test := range tests {
		typeString := test.class.String()
		if typeString != test.stringed {
			t.Errorf("%s: got %#q, want %#q", test.name,
				typeString, test.stringed)
		}
	}
}
