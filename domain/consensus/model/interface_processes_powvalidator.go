package model

import (
	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
)

// ProofOfWorkValidator checks the proof a block carries against its target
type ProofOfWorkValidator interface {
	CheckProofOfWork(hash *externalapi.DomainHash, bits uint32) error
	CheckMemoryHardProof(header *externalapi.DomainBlockHeader) error
	CheckHeaderProof(header *externalapi.DomainBlockHeader) error
}
