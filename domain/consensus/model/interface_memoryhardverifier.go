package model

import (
	"math/big"

	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
)

// MemoryHardVerifier runs the memory-hard proof algorithm over a header
// and reports whether the proof holds, along with the hash it computed.
type MemoryHardVerifier interface {
	VerifyMemoryHardProof(nonce uint32, header *externalapi.DomainBlockHeader,
		powLimit *big.Int) (verified bool, computedHash externalapi.DomainHash)
}

// VerifierFunc implements MemoryHardVerifier with a closure.
type VerifierFunc func(nonce uint32, header *externalapi.DomainBlockHeader,
	powLimit *big.Int) (bool, externalapi.DomainHash)

// VerifyMemoryHardProof implements MemoryHardVerifier by returning the result
// of calling the closure.
func (vf VerifierFunc) VerifyMemoryHardProof(nonce uint32, header *externalapi.DomainBlockHeader,
	powLimit *big.Int) (bool, externalapi.DomainHash) {

	return vf(nonce, header, powLimit)
}
