package model

import "github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"

// ChainView is a read-only view over the ancestors of a chain tip. A
// ChainView must not change while a call that received it is running.
type ChainView interface {
	// Tip returns the header the next block builds on, or false if the
	// view is empty.
	Tip() (*externalapi.DomainBlockHeader, bool)

	// Ancestor returns the ancestor of header at the given height. It
	// returns false if height is above header's height or the block is
	// not part of the view.
	Ancestor(header *externalapi.DomainBlockHeader, height uint64) (*externalapi.DomainBlockHeader, bool)
}
