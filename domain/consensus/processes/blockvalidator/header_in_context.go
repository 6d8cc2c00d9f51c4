package blockvalidator

import (
	"github.com/kaspanet/hybridgate/domain/consensus/model"
	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
	"github.com/kaspanet/hybridgate/domain/consensus/ruleerrors"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/consensushashing"
	"github.com/pkg/errors"
)

func (v *blockValidator) validateHeaderInContext(chain model.ChainView, header *externalapi.DomainBlockHeader) error {
	if !header.ProofType.IsValid() {
		return errors.Wrapf(ruleerrors.ErrInvalidProofType, "block at height %d has proof type %d",
			header.Height, header.ProofType)
	}

	err := checkParent(chain, header)
	if err != nil {
		return err
	}

	return v.checkDifficulty(chain, header)
}

// checkParent ensures header builds directly on the tip of chain. The first
// block of an empty chain must be at height 0.
func checkParent(chain model.ChainView, header *externalapi.DomainBlockHeader) error {
	tip, ok := chain.Tip()
	if !ok {
		if header.Height != 0 {
			return errors.Wrapf(ruleerrors.ErrInvalidAncestor, "the chain is empty but the block is "+
				"at height %d", header.Height)
		}
		return nil
	}

	if header.Height != tip.Height+1 {
		return errors.Wrapf(ruleerrors.ErrInvalidAncestor, "block is at height %d but the tip is at "+
			"height %d", header.Height, tip.Height)
	}
	tipHash := consensushashing.HeaderHash(tip)
	if header.PrevBlockHash != *tipHash {
		return errors.Wrapf(ruleerrors.ErrInvalidAncestor, "block builds on %s but the tip is %s",
			header.PrevBlockHash, tipHash)
	}
	return nil
}

// checkDifficulty ensures the bits of header are the ones the difficulty
// rules require for the next block of chain
func (v *blockValidator) checkDifficulty(chain model.ChainView, header *externalapi.DomainBlockHeader) error {
	expectedBits, err := v.difficultyManager.RequiredDifficulty(chain, header.Timestamp,
		header.ProofType.IsProofOfStake())
	if err != nil {
		return err
	}
	if header.Bits != expectedBits {
		return errors.Wrapf(ruleerrors.ErrUnexpectedDifficulty, "block difficulty of %08x is not the "+
			"expected value of %08x", header.Bits, expectedBits)
	}
	return nil
}
