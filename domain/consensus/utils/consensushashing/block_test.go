package consensushashing

import (
	"testing"

	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
)

func TestHeaderHash(t *testing.T) {
	header := &externalapi.DomainBlockHeader{
		Version:   1,
		Timestamp: 1600000000,
		Bits:      0x207fffff,
		Height:    1,
		ProofType: externalapi.ProofTypeStake,
	}
	unsignedHash := HeaderHash(header)

	header.Signature = []byte{1, 2, 3, 4}
	if !HeaderHash(header).Equal(unsignedHash) {
		t.Fatalf("signing a header must not change its hash")
	}

	header.Nonce++
	if HeaderHash(header).Equal(unsignedHash) {
		t.Fatalf("changing the nonce must change the hash")
	}

	block := &externalapi.DomainBlock{Header: header}
	if !BlockHash(block).Equal(HeaderHash(header)) {
		t.Fatalf("BlockHash should be the hash of the block's header")
	}
}
