package main

import (
	"fmt"
	"io"
	"time"

	"github.com/kaspanet/hybridgate/domain/consensus/processes/difficultymanager"
	"github.com/kaspanet/hybridgate/infrastructure/config"
)

func nextBits(cfg *config.Config, conf *nextBitsConfig, out io.Writer) error {
	store, closeStore, err := openHeaderStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	chain, err := store.Snapshot()
	if err != nil {
		return err
	}

	candidateTime := conf.Time
	if candidateTime == 0 {
		candidateTime = time.Now().Unix()
	}

	bits, err := difficultymanager.New(cfg.NetParams()).RequiredDifficulty(chain, candidateTime, conf.Stake)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%08x\n", bits)
	return nil
}
