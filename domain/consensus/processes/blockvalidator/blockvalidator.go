package blockvalidator

import (
	"github.com/kaspanet/hybridgate/domain/chaincfg"
	"github.com/kaspanet/hybridgate/domain/consensus/model"
	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/hybridgate/infrastructure/logger"
	"github.com/pkg/errors"
)

// blockValidator runs every consensus check a candidate block has to pass
// before it may extend a chain
type blockValidator struct {
	params *chaincfg.Params

	difficultyManager model.DifficultyManager
	powValidator      model.ProofOfWorkValidator
	blockSigner       model.BlockSigner
}

// New instantiates a new BlockValidator
func New(params *chaincfg.Params,
	difficultyManager model.DifficultyManager,
	powValidator model.ProofOfWorkValidator,
	blockSigner model.BlockSigner) model.BlockValidator {

	return &blockValidator{
		params:            params,
		difficultyManager: difficultyManager,
		powValidator:      powValidator,
		blockSigner:       blockSigner,
	}
}

// ValidateBlock checks that block extends the tip of chain, that its bits
// are the ones the difficulty rules require, and that its proof and
// signature hold. The checks run in that order and the first failure is
// returned.
func (v *blockValidator) ValidateBlock(chain model.ChainView, block *externalapi.DomainBlock) (err error) {
	defer func() { recordValidation(err) }()

	if block == nil || block.Header == nil {
		return errors.New("block has no header")
	}
	header := block.Header
	blockHash := consensushashing.BlockHash(block)
	onEnd := logger.LogAndMeasureExecutionTime(log, "ValidateBlock")
	defer onEnd()

	err = v.validateHeaderInContext(chain, header)
	if err != nil {
		log.Debugf("Block %s at height %d failed context validation: %s", blockHash, header.Height, err)
		return err
	}

	err = v.powValidator.CheckHeaderProof(header)
	if err != nil {
		log.Debugf("Block %s at height %d failed proof validation: %s", blockHash, header.Height, err)
		return err
	}

	err = v.blockSigner.CheckBlockSignature(block)
	if err != nil {
		log.Debugf("Block %s at height %d failed signature validation: %s", blockHash, header.Height, err)
		return err
	}

	log.Debugf("Block %s at height %d (%s) is valid on %s", blockHash, header.Height, header.ProofType,
		v.params.Name)
	return nil
}
