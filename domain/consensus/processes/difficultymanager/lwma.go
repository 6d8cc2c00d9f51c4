package difficultymanager

import (
	"math/big"

	"github.com/kaspanet/hybridgate/domain/consensus/model"
	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
)

const (
	// lwmaMaxSolvetimeFactor caps a single solvetime at this many target
	// spacings.
	lwmaMaxSolvetimeFactor = 6

	// lwmaStaleTipFactor is how many target spacings may pass after the tip
	// before a min-difficulty block is allowed.
	lwmaStaleTipFactor = 2 * 10

	// lwmaSolvetimeFloorDivisor bounds the weighted solvetime sum from below
	// by N*k/lwmaSolvetimeFloorDivisor.
	lwmaSolvetimeFloorDivisor = 10
)

// lwma implements Zawy's linearly weighted moving average over the last
// ZawyLWMAAveragingWindow blocks. Recent solvetimes weigh more. It looks at
// every block regardless of its proof type.
func (dm *difficultyManager) lwma(chain model.ChainView, tip *externalapi.DomainBlockHeader,
	candidateTime int64) (bits uint32, insufficientHistory bool) {

	spacing := dm.params.PowTargetSpacing
	if dm.params.PowAllowMinDifficultyBlocks && candidateTime > tip.Timestamp+lwmaStaleTipFactor*spacing {
		return dm.params.PowLimitBits, false
	}

	window := dm.params.ZawyLWMAAveragingWindow
	height := tip.Height + 1
	if window == 0 || height <= window {
		return dm.params.PowLimitBits, true
	}

	n := int64(window)
	k := (n + 1) * spacing / 2
	targetDivisor := big.NewInt(k * n * n)

	sumTarget := new(big.Int)
	weightedSolvetimes := int64(0)
	weight := int64(0)

	for i := height - window; i < height; i++ {
		block, ok := chain.Ancestor(tip, i)
		if !ok {
			return dm.params.PowLimitBits, true
		}
		blockParent, ok := chain.Ancestor(tip, i-1)
		if !ok {
			return dm.params.PowLimitBits, true
		}

		solvetime := block.Timestamp - blockParent.Timestamp
		if solvetime > lwmaMaxSolvetimeFactor*spacing {
			solvetime = lwmaMaxSolvetimeFactor * spacing
		}

		weight++
		weightedSolvetimes += solvetime * weight

		// The target sum is divided by k*N^2 here rather than at the end
		// to keep it small.
		target := targetFromBits(block.Bits)
		sumTarget.Add(sumTarget, target.Div(target, targetDivisor))
	}

	// Keep the weighted solvetime sum reasonable in case of strange
	// solvetimes.
	if floor := n * k / lwmaSolvetimeFloorDivisor; weightedSolvetimes < floor {
		weightedSolvetimes = floor
	}

	nextTarget := sumTarget.Mul(sumTarget, big.NewInt(weightedSolvetimes))
	return dm.capAtPowLimit(nextTarget), false
}
