package model

import "github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"

// HeaderStore persists a single chain of headers by height
type HeaderStore interface {
	Put(header *externalapi.DomainBlockHeader) error
	Get(height uint64) (*externalapi.DomainBlockHeader, error)
	TipHeight() (height uint64, ok bool, err error)
	Snapshot() (ChainView, error)
}
