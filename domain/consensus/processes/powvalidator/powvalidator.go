package powvalidator

import (
	"github.com/kaspanet/hybridgate/domain/chaincfg"
	"github.com/kaspanet/hybridgate/domain/consensus/model"
	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
	"github.com/kaspanet/hybridgate/domain/consensus/ruleerrors"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/difficulty"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/hashes"
	"github.com/pkg/errors"
)

// powValidator checks the proofs blocks carry against their targets
type powValidator struct {
	params   *chaincfg.Params
	verifier model.MemoryHardVerifier
}

// New instantiates a new ProofOfWorkValidator. verifier runs the memory-hard
// proof algorithm; it may be nil on networks without memory-hard blocks, in
// which case every memory-hard proof is rejected.
func New(params *chaincfg.Params, verifier model.MemoryHardVerifier) model.ProofOfWorkValidator {
	return &powValidator{
		params:   params,
		verifier: verifier,
	}
}

// CheckProofOfWork ensures bits encode a valid target no higher than the pow
// limit, and that hash, as a 256-bit number, is not above that target.
func (v *powValidator) CheckProofOfWork(hash *externalapi.DomainHash, bits uint32) error {
	target, isNegative, isOverflow := difficulty.CompactToBigWithFlags(bits)
	if isNegative {
		return errors.Wrapf(ruleerrors.ErrInvalidTargetEncoding, "bits %08x encode a negative target", bits)
	}
	if isOverflow {
		return errors.Wrapf(ruleerrors.ErrInvalidTargetEncoding, "bits %08x overflow 256 bits", bits)
	}
	if target.Sign() == 0 {
		return errors.Wrapf(ruleerrors.ErrInvalidTargetEncoding, "bits %08x encode a zero target", bits)
	}
	if target.Cmp(v.params.PowLimit) > 0 {
		return errors.Wrapf(ruleerrors.ErrInvalidTargetEncoding, "block target difficulty of %064x is "+
			"higher than max of %064x", target, v.params.PowLimit)
	}

	hashNum := hashes.ToBig(hash)
	if hashNum.Cmp(target) > 0 {
		return errors.Wrapf(ruleerrors.ErrTargetNotMet, "block hash of %064x is higher than "+
			"expected max of %064x", hashNum, target)
	}
	return nil
}

// CheckMemoryHardProof verifies the memory-hard proof of header. Headers whose
// proof type doesn't call for one pass trivially.
func (v *powValidator) CheckMemoryHardProof(header *externalapi.DomainBlockHeader) error {
	if !header.ProofType.RequiresMemoryHardProof() {
		return nil
	}

	proof := header.MemoryHardProof
	if proof == nil || len(proof.HashData) == 0 {
		return errors.Wrapf(ruleerrors.ErrMissingProofData, "memory-hard block at height %d carries "+
			"no proof data", header.Height)
	}
	if v.verifier == nil {
		return errors.Wrapf(ruleerrors.ErrProofMismatch, "network %s has no memory-hard proof verifier",
			v.params.Name)
	}

	verified, computedHash := v.verifier.VerifyMemoryHardProof(header.Nonce, header, v.params.PowLimit)
	if !verified {
		return errors.Wrapf(ruleerrors.ErrProofMismatch, "memory-hard proof of block at height %d "+
			"doesn't verify", header.Height)
	}
	if computedHash != proof.HashValue {
		return errors.Wrapf(ruleerrors.ErrProofMismatch, "memory-hard proof of block at height %d "+
			"computes to %s but claims %s", header.Height, computedHash, proof.HashValue)
	}

	log.Tracef("Memory-hard proof of block at height %d verified to %s", header.Height, computedHash)
	return nil
}

// CheckHeaderProof runs the proof checks header's proof type calls for.
// Memory-hard blocks are held to their claimed memory-hard hash, other work
// blocks to their header hash. Stake blocks carry no hash-based proof.
func (v *powValidator) CheckHeaderProof(header *externalapi.DomainBlockHeader) error {
	switch {
	case !header.ProofType.IsValid():
		return errors.Wrapf(ruleerrors.ErrInvalidProofType, "block at height %d has proof type %d",
			header.Height, header.ProofType)

	case header.ProofType.IsProofOfStake():
		return nil

	case header.ProofType.RequiresMemoryHardProof():
		err := v.CheckMemoryHardProof(header)
		if err != nil {
			return err
		}
		return v.CheckProofOfWork(&header.MemoryHardProof.HashValue, header.Bits)

	default:
		return v.CheckProofOfWork(consensushashing.HeaderHash(header), header.Bits)
	}
}
