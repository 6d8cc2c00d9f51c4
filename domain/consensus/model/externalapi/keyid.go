package externalapi

import "encoding/hex"

// KeyIDSize is the size of a KeyID in bytes
const KeyIDSize = 20

// KeyID identifies a signing key by the Hash160 of its serialized public key
type KeyID [KeyIDSize]byte

func (id KeyID) String() string {
	return hex.EncodeToString(id[:])
}
