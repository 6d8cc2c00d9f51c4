package testutils

import (
	"testing"

	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/chainview"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/consensushashing"
)

// ChainBuilder builds a linked chain of headers starting at height 0
type ChainBuilder struct {
	t       testing.TB
	headers []*externalapi.DomainBlockHeader
}

// NewChainBuilder returns an empty ChainBuilder
func NewChainBuilder(t testing.TB) *ChainBuilder {
	return &ChainBuilder{t: t}
}

// NextHeader returns a header on top of the current tip without adding it
// to the chain.
func (b *ChainBuilder) NextHeader(timestamp int64, bits uint32,
	proofType externalapi.ProofType) *externalapi.DomainBlockHeader {

	header := &externalapi.DomainBlockHeader{
		Version:   1,
		Timestamp: timestamp,
		Bits:      bits,
		ProofType: proofType,
	}
	if len(b.headers) > 0 {
		tip := b.headers[len(b.headers)-1]
		header.PrevBlockHash = *consensushashing.HeaderHash(tip)
		header.Height = tip.Height + 1
	}
	return header
}

// Add appends a header to the chain and returns it
func (b *ChainBuilder) Add(timestamp int64, bits uint32,
	proofType externalapi.ProofType) *externalapi.DomainBlockHeader {

	header := b.NextHeader(timestamp, bits, proofType)
	b.headers = append(b.headers, header)
	return header
}

// AddN appends count headers spaced spacing seconds after the tip, or after
// startTime if the chain is empty.
func (b *ChainBuilder) AddN(count int, startTime int64, spacing int64, bits uint32,
	proofType externalapi.ProofType) {

	timestamp := startTime
	if tip := b.Tip(); tip != nil {
		timestamp = tip.Timestamp + spacing
	}
	for i := 0; i < count; i++ {
		b.Add(timestamp, bits, proofType)
		timestamp += spacing
	}
}

// Tip returns the last header added, or nil if the chain is empty
func (b *ChainBuilder) Tip() *externalapi.DomainBlockHeader {
	if len(b.headers) == 0 {
		return nil
	}
	return b.headers[len(b.headers)-1]
}

// Headers returns the headers added so far
func (b *ChainBuilder) Headers() []*externalapi.DomainBlockHeader {
	return b.headers
}

// View returns a chain view over the headers added so far
func (b *ChainBuilder) View() *chainview.SliceView {
	view, err := chainview.New(b.headers)
	if err != nil {
		b.t.Fatalf("chainview.New: %+v", err)
	}
	return view
}
