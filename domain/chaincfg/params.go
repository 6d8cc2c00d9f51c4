package chaincfg

import (
	"math/big"

	"github.com/kaspanet/hybridgate/domain/consensus/ruleerrors"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/difficulty"
	"github.com/pkg/errors"
)

// These variables are the chain proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int. It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a block can have for
	// the main network. It is the value 2^236 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// testnetPowLimit is the highest proof of work value a block can have
	// for the test network. It is the value 2^252 - 1.
	testnetPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 252), bigOne)

	// regtestPowLimit is the highest proof of work value a block can have
	// for the regression test network. It is the value 2^255 - 1.
	regtestPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	// simnetPowLimit is the highest proof of work value a block can have
	// for the simulation test network. It is the value 2^255 - 1.
	simnetPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

const (
	targetSpacing  = 60
	targetTimespan = 60 * 60
	lwmaWindow     = 45
)

// Params defines a network by its consensus parameters. Params are
// immutable once constructed and are shared between concurrent validations.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// PowLimit defines the highest allowed proof of work target for a
	// block as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work target for a
	// block in compact form.
	PowLimitBits uint32

	// PowTargetSpacing is the desired amount of seconds between blocks.
	PowTargetSpacing int64

	// PowTargetTimespan is the amount of seconds covered by one legacy
	// retarget interval.
	PowTargetTimespan int64

	// ZawyLWMAAveragingWindow is the number of blocks the LWMA algorithm
	// averages over.
	ZawyLWMAAveragingWindow uint64

	// PowAllowMinDifficultyBlocks allows a block to use PowLimitBits once
	// the tip has gone stale.
	PowAllowMinDifficultyBlocks bool

	// PowNoRetargeting keeps every block at its parent's bits.
	PowNoRetargeting bool

	// DifficultyAlgorithm selects how the next required bits are computed.
	DifficultyAlgorithm DifficultyAlgorithm
}

// DifficultyAdjustmentInterval is the number of blocks between legacy
// retargets.
func (p *Params) DifficultyAdjustmentInterval() uint64 {
	if p.PowTargetSpacing <= 0 {
		return 0
	}
	return uint64(p.PowTargetTimespan / p.PowTargetSpacing)
}

// Validate returns a ruleerrors.ConfigError describing the first problem
// found in p, or nil if p is usable.
func (p *Params) Validate() error {
	if p.PowLimit == nil || p.PowLimit.Sign() <= 0 {
		return errors.Wrapf(ruleerrors.ErrInvalidParams, "network %s: pow limit must be positive", p.Name)
	}
	if p.PowLimit.BitLen() > 256 {
		return errors.Wrapf(ruleerrors.ErrInvalidParams, "network %s: pow limit exceeds 256 bits", p.Name)
	}
	if difficulty.BigToCompact(p.PowLimit) != p.PowLimitBits {
		return errors.Wrapf(ruleerrors.ErrInvalidParams, "network %s: pow limit bits %08x don't encode "+
			"the pow limit (expected %08x)", p.Name, p.PowLimitBits, difficulty.BigToCompact(p.PowLimit))
	}
	if p.PowTargetSpacing <= 0 {
		return errors.Wrapf(ruleerrors.ErrInvalidParams, "network %s: target spacing must be positive", p.Name)
	}

	if p.PowNoRetargeting {
		return nil
	}

	switch p.DifficultyAlgorithm {
	case DifficultyAlgorithmNone:
		return errors.Wrapf(ruleerrors.ErrNoDifficultyAlgorithm, "network %s", p.Name)
	case DifficultyAlgorithmLegacy:
		if p.PowTargetTimespan < p.PowTargetSpacing {
			return errors.Wrapf(ruleerrors.ErrInvalidParams, "network %s: target timespan %d is shorter "+
				"than the target spacing %d", p.Name, p.PowTargetTimespan, p.PowTargetSpacing)
		}
	case DifficultyAlgorithmDarkGravityWaveV3:
	case DifficultyAlgorithmZawyLWMA:
		if p.ZawyLWMAAveragingWindow == 0 {
			return errors.Wrapf(ruleerrors.ErrInvalidParams, "network %s: LWMA averaging window must "+
				"be positive", p.Name)
		}
	default:
		return errors.Wrapf(ruleerrors.ErrUnknownDifficultyAlgorithm, "network %s: %s",
			p.Name, p.DifficultyAlgorithm)
	}

	return nil
}

// Clone returns a copy of p that can be modified without affecting p.
func (p *Params) Clone() *Params {
	clone := *p
	if p.PowLimit != nil {
		clone.PowLimit = new(big.Int).Set(p.PowLimit)
	}
	return &clone
}

// MainnetParams defines the network parameters for the main network.
var MainnetParams = Params{
	Name:                        "mainnet",
	PowLimit:                    mainPowLimit,
	PowLimitBits:                0x1e0fffff,
	PowTargetSpacing:            targetSpacing,
	PowTargetTimespan:           targetTimespan,
	ZawyLWMAAveragingWindow:     lwmaWindow,
	PowAllowMinDifficultyBlocks: false,
	PowNoRetargeting:            false,
	DifficultyAlgorithm:         DifficultyAlgorithmDarkGravityWaveV3,
}

// TestnetParams defines the network parameters for the test network.
var TestnetParams = Params{
	Name:                        "testnet",
	PowLimit:                    testnetPowLimit,
	PowLimitBits:                0x200fffff,
	PowTargetSpacing:            targetSpacing,
	PowTargetTimespan:           targetTimespan,
	ZawyLWMAAveragingWindow:     lwmaWindow,
	PowAllowMinDifficultyBlocks: true,
	PowNoRetargeting:            false,
	DifficultyAlgorithm:         DifficultyAlgorithmZawyLWMA,
}

// RegtestParams defines the network parameters for the regression test
// network.
var RegtestParams = Params{
	Name:                        "regtest",
	PowLimit:                    regtestPowLimit,
	PowLimitBits:                0x207fffff,
	PowTargetSpacing:            targetSpacing,
	PowTargetTimespan:           targetTimespan,
	ZawyLWMAAveragingWindow:     lwmaWindow,
	PowAllowMinDifficultyBlocks: true,
	PowNoRetargeting:            true,
	DifficultyAlgorithm:         DifficultyAlgorithmNone,
}

// SimnetParams defines the network parameters for the simulation test
// network.
var SimnetParams = Params{
	Name:                        "simnet",
	PowLimit:                    simnetPowLimit,
	PowLimitBits:                0x207fffff,
	PowTargetSpacing:            targetSpacing,
	PowTargetTimespan:           targetTimespan,
	ZawyLWMAAveragingWindow:     lwmaWindow,
	PowAllowMinDifficultyBlocks: false,
	PowNoRetargeting:            false,
	DifficultyAlgorithm:         DifficultyAlgorithmLegacy,
}
