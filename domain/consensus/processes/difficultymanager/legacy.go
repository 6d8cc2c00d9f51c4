package difficultymanager

import (
	"math/big"

	"github.com/kaspanet/hybridgate/domain/consensus/model"
	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/chainview"
)

// legacyRequiredDifficulty keeps the tip's bits inside a retarget interval
// and retargets over the whole interval on its boundaries.
func (dm *difficultyManager) legacyRequiredDifficulty(chain model.ChainView,
	tip *externalapi.DomainBlockHeader, candidateTime int64) (bits uint32, insufficientHistory bool) {

	interval := dm.params.DifficultyAdjustmentInterval()
	if interval == 0 {
		return dm.params.PowLimitBits, true
	}

	nextHeight := tip.Height + 1
	if nextHeight%interval != 0 {
		if dm.params.PowAllowMinDifficultyBlocks {
			// A block more than twice the target spacing after the tip
			// may be mined at minimum difficulty.
			if candidateTime > tip.Timestamp+dm.params.PowTargetSpacing*2 {
				return dm.params.PowLimitBits, false
			}
			return dm.lastNonMinimumDifficultyBits(chain, tip, interval), false
		}
		return tip.Bits, false
	}

	firstBlock, ok := chainview.RelativeAncestor(chain, tip, interval-1)
	if !ok {
		return dm.params.PowLimitBits, true
	}
	return dm.CalculateNextWorkRequired(tip, firstBlock.Timestamp), false
}

// lastNonMinimumDifficultyBits returns the bits of the most recent block that
// wasn't mined under the minimum difficulty rule, stopping at interval
// boundaries.
func (dm *difficultyManager) lastNonMinimumDifficultyBits(chain model.ChainView,
	tip *externalapi.DomainBlockHeader, interval uint64) uint32 {

	current := tip
	for current.Height%interval != 0 && current.Bits == dm.params.PowLimitBits {
		parent, ok := chainview.RelativeAncestor(chain, current, 1)
		if !ok {
			break
		}
		current = parent
	}
	return current.Bits
}

// CalculateNextWorkRequired retargets prev's bits by how long the interval
// that started at firstBlockTime took, limited to a factor of 4 either way.
func (dm *difficultyManager) CalculateNextWorkRequired(prev *externalapi.DomainBlockHeader,
	firstBlockTime int64) uint32 {

	if dm.params.PowNoRetargeting {
		return prev.Bits
	}

	targetTimespan := dm.params.PowTargetTimespan
	if targetTimespan <= 0 {
		log.Warnf("Network %s has a non positive target timespan, using the pow limit", dm.params.Name)
		return dm.params.PowLimitBits
	}

	// Limit adjustment step
	actualTimespan := prev.Timestamp - firstBlockTime
	if actualTimespan < targetTimespan/4 {
		actualTimespan = targetTimespan / 4
	}
	if actualTimespan > targetTimespan*4 {
		actualTimespan = targetTimespan * 4
	}

	// Retarget
	newTarget := targetFromBits(prev.Bits)
	newTarget.Mul(newTarget, big.NewInt(actualTimespan))
	newTarget.Div(newTarget, big.NewInt(targetTimespan))

	return dm.capAtPowLimit(newTarget)
}
