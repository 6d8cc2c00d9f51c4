package difficultymanager

import (
	"math/big"

	"github.com/kaspanet/hybridgate/domain/chaincfg"
	"github.com/kaspanet/hybridgate/domain/consensus/model"
	"github.com/kaspanet/hybridgate/domain/consensus/ruleerrors"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/difficulty"
	"github.com/pkg/errors"
)

// difficultyManager resolves the difficulty bits the next block on a chain
// must carry. It holds no state besides its params.
type difficultyManager struct {
	params *chaincfg.Params

	// paramsErr is the result of validating params. Params are immutable,
	// so they are validated once.
	paramsErr error
}

// New instantiates a new DifficultyManager. Invalid params are reported by
// every call to RequiredDifficulty.
func New(params *chaincfg.Params) model.DifficultyManager {
	return &difficultyManager{
		params:    params,
		paramsErr: params.Validate(),
	}
}

// RequiredDifficulty returns the difficulty bits required for a block on top
// of chain's tip, timestamped candidateTime. It only fails with a
// ruleerrors.ConfigError when the params are not usable.
func (dm *difficultyManager) RequiredDifficulty(chain model.ChainView, candidateTime int64,
	isProofOfStake bool) (uint32, error) {

	if dm.paramsErr != nil {
		return 0, dm.paramsErr
	}

	tip, ok := chain.Tip()
	if !ok {
		return dm.params.PowLimitBits, nil
	}

	// Special rule for regtest: we never retarget.
	if dm.params.PowNoRetargeting {
		return tip.Bits, nil
	}

	var bits uint32
	var insufficientHistory bool
	switch dm.params.DifficultyAlgorithm {
	case chaincfg.DifficultyAlgorithmLegacy:
		bits, insufficientHistory = dm.legacyRequiredDifficulty(chain, tip, candidateTime)
	case chaincfg.DifficultyAlgorithmDarkGravityWaveV3:
		bits, insufficientHistory = dm.darkGravityWave(chain, tip, isProofOfStake)
	case chaincfg.DifficultyAlgorithmZawyLWMA:
		bits, insufficientHistory = dm.lwma(chain, tip, candidateTime)
	default:
		return 0, errors.Wrapf(ruleerrors.ErrUnknownDifficultyAlgorithm, "network %s selects "+
			"difficulty algorithm %d", dm.params.Name, dm.params.DifficultyAlgorithm)
	}

	if insufficientHistory {
		log.Debugf("Not enough history for %s above height %d, using the pow limit",
			dm.params.DifficultyAlgorithm, tip.Height)
	}
	log.Tracef("Required difficulty above height %d (stake: %t) is %08x",
		tip.Height, isProofOfStake, bits)
	return bits, nil
}

// targetFromBits decodes bits into the magnitude of its target
func targetFromBits(bits uint32) *big.Int {
	target, _, _ := difficulty.CompactToBigWithFlags(bits)
	return target
}

// capAtPowLimit encodes target, or the pow limit if target is above it
func (dm *difficultyManager) capAtPowLimit(target *big.Int) uint32 {
	if target.Cmp(dm.params.PowLimit) > 0 {
		return dm.params.PowLimitBits
	}
	return difficulty.BigToCompact(target)
}
