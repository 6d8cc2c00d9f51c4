// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// These are the opcodes the standard script templates are built from.
const (
	OpData20      = 0x14 // 20
	OpData33      = 0x21 // 33
	OpData65      = 0x41 // 65
	OpDup         = 0x76 // 118
	OpEqualVerify = 0x88 // 136
	OpHash160     = 0xa9 // 169
	OpCheckSig    = 0xac // 172
)

const (
	compressedPubKeyLen   = 33
	uncompressedPubKeyLen = 65
	pubKeyHashLen         = 20

	pubKeyCompressedEven = 0x02
	pubKeyCompressedOdd  = 0x03
	pubKeyUncompressed   = 0x04
)
