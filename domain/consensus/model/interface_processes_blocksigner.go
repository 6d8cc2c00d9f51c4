package model

import (
	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
)

// BlockSigner signs blocks on the producer side and checks block
// signatures on the validator side
type BlockSigner interface {
	SignerIdentity(output *externalapi.DomainTransactionOutput) (externalapi.KeyID, error)
	SignBlock(block *externalapi.DomainBlock) error
	SignBlockWithKey(block *externalapi.DomainBlock, key *secp256k1.ECDSAPrivateKey) error
	CheckBlockSignature(block *externalapi.DomainBlock) error
}
