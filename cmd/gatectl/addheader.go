package main

import (
	"fmt"
	"io"

	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
	"github.com/kaspanet/hybridgate/domain/consensus/processes/difficultymanager"
	"github.com/kaspanet/hybridgate/domain/consensus/ruleerrors"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/hybridgate/infrastructure/config"
	"github.com/pkg/errors"
)

func addHeader(cfg *config.Config, conf *addHeaderConfig, out io.Writer) error {
	bits, err := parseBits(conf.Bits)
	if err != nil {
		return err
	}
	proofType, ok := externalapi.ProofTypeFromString(conf.ProofType)
	if !ok {
		return errors.Errorf("unknown proof type '%s'", conf.ProofType)
	}

	store, closeStore, err := openHeaderStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	chain, err := store.Snapshot()
	if err != nil {
		return err
	}

	header := &externalapi.DomainBlockHeader{
		Version:   1,
		Timestamp: conf.Time,
		Bits:      bits,
		Nonce:     conf.Nonce,
		Height:    conf.Height,
		ProofType: proofType,
	}
	if conf.Prev != "" {
		prev, err := externalapi.NewDomainHashFromString(conf.Prev)
		if err != nil {
			return err
		}
		header.PrevBlockHash = *prev
	} else if tip, ok := chain.Tip(); ok {
		header.PrevBlockHash = *consensushashing.HeaderHash(tip)
	}

	requiredBits, err := difficultymanager.New(cfg.NetParams()).
		RequiredDifficulty(chain, header.Timestamp, proofType.IsProofOfStake())
	if err != nil {
		return err
	}
	if requiredBits != bits {
		return errors.Wrapf(ruleerrors.ErrUnexpectedDifficulty, "header at height %d has bits %08x "+
			"but %08x are required", header.Height, bits, requiredBits)
	}

	err = store.Put(header)
	if err != nil {
		return err
	}

	log.Infof("Stored %s header %s at height %d", proofType, consensushashing.HeaderHash(header), header.Height)
	fmt.Fprintf(out, "%s\n", consensushashing.HeaderHash(header))
	return nil
}
