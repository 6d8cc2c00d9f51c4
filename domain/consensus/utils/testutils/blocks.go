package testutils

import (
	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
)

// NewWorkBlock returns a block on top of header whose coinbase pays to each
// of the given scripts, in order.
func NewWorkBlock(header *externalapi.DomainBlockHeader, coinbaseScripts ...[]byte) *externalapi.DomainBlock {
	coinbase := &externalapi.DomainTransaction{Version: 1}
	for _, script := range coinbaseScripts {
		coinbase.Outputs = append(coinbase.Outputs, &externalapi.DomainTransactionOutput{
			Value:           50,
			ScriptPublicKey: script,
		})
	}
	return &externalapi.DomainBlock{
		Header:       header,
		Transactions: []*externalapi.DomainTransaction{coinbase},
	}
}

// NewStakeBlock returns a block on top of header with an empty coinbase and a
// coinstake transaction whose second output pays to stakeScript. The first
// output of a coinstake is empty.
func NewStakeBlock(header *externalapi.DomainBlockHeader, stakeScript []byte) *externalapi.DomainBlock {
	coinbase := &externalapi.DomainTransaction{
		Version: 1,
		Outputs: []*externalapi.DomainTransactionOutput{{}},
	}
	coinstake := &externalapi.DomainTransaction{
		Version: 1,
		Inputs: []*externalapi.DomainTransactionInput{{
			PreviousOutpoint: externalapi.DomainOutpoint{Index: 0},
		}},
		Outputs: []*externalapi.DomainTransactionOutput{
			{},
			{Value: 100, ScriptPublicKey: stakeScript},
		},
	}
	return &externalapi.DomainBlock{
		Header:       header,
		Transactions: []*externalapi.DomainTransaction{coinbase, coinstake},
	}
}
