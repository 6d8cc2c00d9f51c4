package chainview

import (
	"github.com/kaspanet/hybridgate/domain/consensus/model"
	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/consensushashing"
	"github.com/pkg/errors"
)

// SliceView is an immutable model.ChainView over a contiguous run of headers,
// ordered from the lowest height to the tip. The first header need not be
// genesis: ancestors below it are reported as missing.
type SliceView struct {
	headers []*externalapi.DomainBlockHeader
}

var _ model.ChainView = (*SliceView)(nil)

// New returns a SliceView over headers. Every header must be one height above
// the previous one and link to its hash. The headers are cloned, so the
// caller may keep modifying its slice.
func New(headers []*externalapi.DomainBlockHeader) (*SliceView, error) {
	clones := make([]*externalapi.DomainBlockHeader, len(headers))
	for i, header := range headers {
		if header == nil {
			return nil, errors.Errorf("header #%d is nil", i)
		}
		if i > 0 {
			previous := headers[i-1]
			if header.Height != previous.Height+1 {
				return nil, errors.Errorf("header #%d has height %d but follows height %d",
					i, header.Height, previous.Height)
			}
			previousHash := consensushashing.HeaderHash(previous)
			if header.PrevBlockHash != *previousHash {
				return nil, errors.Errorf("header #%d at height %d points to %s instead of %s",
					i, header.Height, header.PrevBlockHash, previousHash)
			}
		}
		clones[i] = header.Clone()
	}
	return &SliceView{headers: clones}, nil
}

// Tip returns the highest header of the view
func (v *SliceView) Tip() (*externalapi.DomainBlockHeader, bool) {
	if len(v.headers) == 0 {
		return nil, false
	}
	return v.headers[len(v.headers)-1], true
}

// Len returns the number of headers in the view
func (v *SliceView) Len() int {
	return len(v.headers)
}

// Headers returns the headers of the view from the lowest height to the tip.
// The returned slice must not be modified.
func (v *SliceView) Headers() []*externalapi.DomainBlockHeader {
	return v.headers
}

// Ancestor returns the ancestor of header at height
func (v *SliceView) Ancestor(header *externalapi.DomainBlockHeader, height uint64) (
	*externalapi.DomainBlockHeader, bool) {

	if header == nil || height > header.Height || !v.contains(header) {
		return nil, false
	}
	return v.atHeight(height)
}

func (v *SliceView) atHeight(height uint64) (*externalapi.DomainBlockHeader, bool) {
	if len(v.headers) == 0 {
		return nil, false
	}
	base := v.headers[0].Height
	if height < base || height-base >= uint64(len(v.headers)) {
		return nil, false
	}
	return v.headers[height-base], true
}

func (v *SliceView) contains(header *externalapi.DomainBlockHeader) bool {
	inView, ok := v.atHeight(header.Height)
	if !ok {
		return false
	}
	return inView == header || inView.Equal(header)
}

// Append returns a new view with header on top of v's tip. v itself is left
// unchanged.
func (v *SliceView) Append(header *externalapi.DomainBlockHeader) (*SliceView, error) {
	tip, ok := v.Tip()
	if !ok {
		return New([]*externalapi.DomainBlockHeader{header})
	}
	if header == nil {
		return nil, errors.New("cannot append a nil header")
	}
	if header.Height != tip.Height+1 {
		return nil, errors.Errorf("header has height %d but the tip is at height %d", header.Height, tip.Height)
	}
	tipHash := consensushashing.HeaderHash(tip)
	if header.PrevBlockHash != *tipHash {
		return nil, errors.Errorf("header at height %d points to %s instead of the tip %s",
			header.Height, header.PrevBlockHash, tipHash)
	}

	headers := make([]*externalapi.DomainBlockHeader, 0, len(v.headers)+1)
	headers = append(headers, v.headers...)
	headers = append(headers, header.Clone())
	return &SliceView{headers: headers}, nil
}

// RelativeAncestor returns the ancestor of header distance blocks back, or
// false if that would be below genesis or outside the view.
func RelativeAncestor(chain model.ChainView, header *externalapi.DomainBlockHeader, distance uint64) (
	*externalapi.DomainBlockHeader, bool) {

	if header == nil || distance > header.Height {
		return nil, false
	}
	return chain.Ancestor(header, header.Height-distance)
}
