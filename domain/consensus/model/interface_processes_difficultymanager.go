package model

import "github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"

// DifficultyManager provides a method to resolve the
// difficulty value of a block
type DifficultyManager interface {
	RequiredDifficulty(chain ChainView, candidateTime int64, isProofOfStake bool) (uint32, error)
	CalculateNextWorkRequired(prev *externalapi.DomainBlockHeader, firstBlockTime int64) uint32
}
