package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kaspanet/hybridgate/domain/consensus/datastructures/headerstore"
	"github.com/kaspanet/hybridgate/domain/consensus/model"
	"github.com/kaspanet/hybridgate/infrastructure/config"
	"github.com/kaspanet/hybridgate/infrastructure/db/database/ldb"
	"github.com/pkg/errors"
)

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

// parseBits parses compact target bits written in hex, with or without a
// 0x prefix.
func parseBits(bitsString string) (uint32, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(bitsString, "0x"), "0X")
	bits, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid bits '%s'", bitsString)
	}
	return uint32(bits), nil
}

// openHeaderStore opens the header database of the active network. The
// returned function closes it.
func openHeaderStore(cfg *config.Config) (model.HeaderStore, func(), error) {
	db, err := ldb.NewLevelDB(cfg.DBPath(), cfg.DBCacheMiB)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		err := db.Close()
		if err != nil {
			log.Errorf("Error closing the header database: %s", err)
		}
	}

	store, err := headerstore.New(db)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	return store, closeDB, nil
}
