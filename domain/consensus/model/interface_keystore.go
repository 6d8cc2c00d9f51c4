package model

import (
	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
)

// Keystore holds the signing keys of a block producer
type Keystore interface {
	HasKey(keyID externalapi.KeyID) bool
	GetKey(keyID externalapi.KeyID) (*secp256k1.ECDSAPrivateKey, bool)
}
