package model

import (
	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
)

// BlockValidator runs the full gate over a candidate block: its difficulty
// bits, its proof and its signature
type BlockValidator interface {
	ValidateBlock(chain ChainView, block *externalapi.DomainBlock) error
}
