package hashes

import (
	"github.com/btcsuite/btcutil"
	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
)

// KeyIDFromPublicKey returns the KeyID of a serialized public key, which is
// RIPEMD160(SHA256(serializedPublicKey)).
func KeyIDFromPublicKey(serializedPublicKey []byte) externalapi.KeyID {
	var keyID externalapi.KeyID
	copy(keyID[:], btcutil.Hash160(serializedPublicKey))
	return keyID
}
