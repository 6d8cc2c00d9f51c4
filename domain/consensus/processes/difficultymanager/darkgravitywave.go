package difficultymanager

import (
	"math/big"

	"github.com/kaspanet/hybridgate/domain/consensus/model"
	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/chainview"
)

// darkGravityWavePastBlocks is the number of blocks of the requested proof
// type DarkGravityWave averages over.
const darkGravityWavePastBlocks = 15

// darkGravityWave implements DarkGravityWave v3. Work and stake blocks keep
// separate difficulty histories, so only ancestors whose proof type matches
// isProofOfStake are averaged. The actual timespan runs from the most recent
// matching block to the oldest one in the window.
func (dm *difficultyManager) darkGravityWave(chain model.ChainView, tip *externalapi.DomainBlockHeader,
	isProofOfStake bool) (bits uint32, insufficientHistory bool) {

	var lastMatch, oldestMatch *externalapi.DomainBlockHeader
	pastTargetAverage := new(big.Int)
	count := int64(0)

	current := tip
	for count < darkGravityWavePastBlocks {
		if current.ProofType.IsProofOfStake() == isProofOfStake {
			if lastMatch == nil {
				lastMatch = current
			}
			oldestMatch = current

			// pastTargetAverage = (pastTargetAverage * count + target) / (count + 1)
			pastTargetAverage.Mul(pastTargetAverage, big.NewInt(count))
			pastTargetAverage.Add(pastTargetAverage, targetFromBits(current.Bits))
			pastTargetAverage.Div(pastTargetAverage, big.NewInt(count+1))
			count++
			if count == darkGravityWavePastBlocks {
				break
			}
		}

		parent, ok := chainview.RelativeAncestor(chain, current, 1)
		if !ok {
			// Ran out of blocks. This includes a chain with no block of
			// the requested proof type at all.
			return dm.params.PowLimitBits, true
		}
		current = parent
	}

	actualTimespan := lastMatch.Timestamp - oldestMatch.Timestamp
	targetTimespan := darkGravityWavePastBlocks * dm.params.PowTargetSpacing

	if actualTimespan < targetTimespan/3 {
		actualTimespan = targetTimespan / 3
	}
	if actualTimespan > targetTimespan*3 {
		actualTimespan = targetTimespan * 3
	}

	// Retarget
	newTarget := pastTargetAverage
	newTarget.Mul(newTarget, big.NewInt(actualTimespan))
	newTarget.Div(newTarget, big.NewInt(targetTimespan))

	return dm.capAtPowLimit(newTarget), false
}
