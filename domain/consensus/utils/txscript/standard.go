// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/pkg/errors"
)

// ScriptClass is an enumeration for the list of standard types of script.
type ScriptClass byte

// Classes of script payment known about in the blockchain.
const (
	NonStandardTy ScriptClass = iota // None of the recognized forms.
	PubKeyTy                         // Pay pubkey.
	PubKeyHashTy                     // Pay pubkey hash.
)

// scriptClassToName houses the human-readable strings which describe each
// script class.
var scriptClassToName = []string{
	NonStandardTy: "nonstandard",
	PubKeyTy:      "pubkey",
	PubKeyHashTy:  "pubkeyhash",
}

// String implements the Stringer interface by returning the name of
// the enum script class. If the enum is invalid then "Invalid" will be
// returned.
func (t ScriptClass) String() string {
	if int(t) >= len(scriptClassToName) {
		return "Invalid"
	}
	return scriptClassToName[t]
}

// isPubKey returns whether data has the shape of a serialized secp256k1
// public key.
func isPubKey(data []byte) bool {
	switch len(data) {
	case compressedPubKeyLen:
		return data[0] == pubKeyCompressedEven || data[0] == pubKeyCompressedOdd
	case uncompressedPubKeyLen:
		return data[0] == pubKeyUncompressed
	}
	return false
}

// extractPubKey returns the public key of a pay-to-pubkey script:
// <pubkey> OP_CHECKSIG
func extractPubKey(script []byte) []byte {
	if len(script) != compressedPubKeyLen+2 && len(script) != uncompressedPubKeyLen+2 {
		return nil
	}
	pushLen := int(script[0])
	if pushLen != OpData33 && pushLen != OpData65 {
		return nil
	}
	if len(script) != pushLen+2 || script[len(script)-1] != OpCheckSig {
		return nil
	}
	pubKey := script[1 : 1+pushLen]
	if !isPubKey(pubKey) {
		return nil
	}
	return pubKey
}

// extractPubKeyHash returns the hash of a pay-to-pubkey-hash script:
// OP_DUP OP_HASH160 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG
func extractPubKeyHash(script []byte) []byte {
	if len(script) == 25 &&
		script[0] == OpDup &&
		script[1] == OpHash160 &&
		script[2] == OpData20 &&
		script[23] == OpEqualVerify &&
		script[24] == OpCheckSig {

		return script[3:23]
	}
	return nil
}

// ExtractScriptPubKeyData classifies script and returns the data it commits
// to: the serialized public key for PubKeyTy and the 20-byte key hash for
// PubKeyHashTy. NonStandardTy comes with nil data. The returned slice
// aliases script.
func ExtractScriptPubKeyData(script []byte) (ScriptClass, []byte) {
	if pubKey := extractPubKey(script); pubKey != nil {
		return PubKeyTy, pubKey
	}
	if pubKeyHash := extractPubKeyHash(script); pubKeyHash != nil {
		return PubKeyHashTy, pubKeyHash
	}
	return NonStandardTy, nil
}

// GetScriptClass returns the class of the script passed.
//
// NonStandardTy will be returned when the script does not parse.
func GetScriptClass(script []byte) ScriptClass {
	class, _ := ExtractScriptPubKeyData(script)
	return class
}

// PayToPubKeyScript creates a new script to pay a transaction output to the
// given serialized public key.
func PayToPubKeyScript(serializedPubKey []byte) ([]byte, error) {
	if !isPubKey(serializedPubKey) {
		return nil, errors.Errorf("%x is not a serialized public key", serializedPubKey)
	}
	script := make([]byte, 0, len(serializedPubKey)+2)
	script = append(script, byte(len(serializedPubKey)))
	script = append(script, serializedPubKey...)
	return append(script, OpCheckSig), nil
}

// PayToPubKeyHashScript creates a new script to pay a transaction output to
// a 20-byte pubkey hash.
func PayToPubKeyHashScript(pubKeyHash []byte) ([]byte, error) {
	if len(pubKeyHash) != pubKeyHashLen {
		return nil, errors.Errorf("pubkey hash must be %d bytes, got %d", pubKeyHashLen, len(pubKeyHash))
	}
	script := make([]byte, 0, 25)
	script = append(script, OpDup, OpHash160, OpData20)
	script = append(script, pubKeyHash...)
	return append(script, OpEqualVerify, OpCheckSig), nil
}
