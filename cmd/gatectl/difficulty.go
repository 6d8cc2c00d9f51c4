package main

import (
	"fmt"
	"io"

	"github.com/kaspanet/hybridgate/domain/consensus/utils/difficulty"
	"github.com/pkg/errors"
)

func showDifficulty(conf *difficultyConfig, out io.Writer) error {
	bits, err := parseBits(conf.Bits)
	if err != nil {
		return err
	}

	target, isNegative, isOverflow := difficulty.CompactToBigWithFlags(bits)
	if isNegative || isOverflow {
		return errors.Errorf("bits %08x don't encode a valid target", bits)
	}

	fmt.Fprintf(out, "Target:     %064x\n", target)
	fmt.Fprintf(out, "Difficulty: %f\n", difficulty.Ratio(bits))
	fmt.Fprintf(out, "Work:       %s\n", difficulty.CalcWork(bits))
	return nil
}
