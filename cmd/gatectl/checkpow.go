package main

import (
	"fmt"
	"io"

	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
	"github.com/kaspanet/hybridgate/domain/consensus/processes/powvalidator"
	"github.com/kaspanet/hybridgate/infrastructure/config"
)

func checkPow(cfg *config.Config, conf *checkPowConfig, out io.Writer) error {
	hash, err := externalapi.NewDomainHashFromString(conf.Hash)
	if err != nil {
		return err
	}
	bits, err := parseBits(conf.Bits)
	if err != nil {
		return err
	}

	err = powvalidator.New(cfg.NetParams(), nil).CheckProofOfWork(hash, bits)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Hash %s meets target %08x\n", hash, bits)
	return nil
}
