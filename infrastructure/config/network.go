package config

import (
	"fmt"
	"math/big"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/hybridgate/domain/chaincfg"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/difficulty"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet             bool   `long:"testnet" description:"Use the test network" envconfig:"TESTNET"`
	Regtest             bool   `long:"regtest" description:"Use the regression test network" envconfig:"REGTEST"`
	Simnet              bool   `long:"simnet" description:"Use the simulation test network" envconfig:"SIMNET"`
	OverrideParamsFile  string `long:"override-params-file" description:"Overrides network params from a YAML file (not allowed on mainnet)" envconfig:"OVERRIDE_PARAMS_FILE"`
	DifficultyAlgorithm string `long:"difficulty-algorithm" description:"Overrides the difficulty algorithm of the network {legacy, dgw3, lwma}" envconfig:"DIFFICULTY_ALGORITHM"`

	ActiveNetParams *chaincfg.Params `ignored:"true"`
}

type overrideParamsConfig struct {
	PowLimit                    *string `yaml:"powLimit"`
	PowTargetSpacing            *int64  `yaml:"powTargetSpacing"`
	PowTargetTimespan           *int64  `yaml:"powTargetTimespan"`
	ZawyLWMAAveragingWindow     *uint64 `yaml:"zawyLWMAAveragingWindow"`
	PowAllowMinDifficultyBlocks *bool   `yaml:"powAllowMinDifficultyBlocks"`
	PowNoRetargeting            *bool   `yaml:"powNoRetargeting"`
	DifficultyAlgorithm         *string `yaml:"difficultyAlgorithm"`
}

// ResolveNetwork parses the network command line argument and sets ActiveNetParams accordingly.
// It returns error if more than one network was selected, or if the resulting params are not
// usable, nil otherwise.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	// Default value is main-net.
	activeNetParams := &chaincfg.MainnetParams
	// Multiple networks can't be selected simultaneously.
	numNets := 0
	if networkFlags.Testnet {
		numNets++
		activeNetParams = &chaincfg.TestnetParams
	}
	if networkFlags.Regtest {
		numNets++
		activeNetParams = &chaincfg.RegtestParams
	}
	if networkFlags.Simnet {
		numNets++
		activeNetParams = &chaincfg.SimnetParams
	}
	if numNets > 1 {
		message := "Multiple networks parameters (testnet, regtest, simnet) cannot be used " +
			"together. Please choose only one network"
		err := errors.New(message)
		if parser != nil {
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
		}
		return err
	}

	// The predefined params are shared, so overrides go to a copy
	networkFlags.ActiveNetParams = activeNetParams.Clone()

	err := networkFlags.overrideParams()
	if err != nil {
		return err
	}

	if networkFlags.DifficultyAlgorithm != "" {
		algorithm, err := chaincfg.DifficultyAlgorithmFromString(networkFlags.DifficultyAlgorithm)
		if err != nil {
			return err
		}
		networkFlags.ActiveNetParams.DifficultyAlgorithm = algorithm
	}

	return networkFlags.ActiveNetParams.Validate()
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *chaincfg.Params {
	return networkFlags.ActiveNetParams
}

func (networkFlags *NetworkFlags) overrideParams() error {
	if networkFlags.OverrideParamsFile == "" {
		return nil
	}

	if networkFlags.ActiveNetParams.Name == chaincfg.MainnetParams.Name {
		return errors.Errorf("override-params-file is not allowed on mainnet")
	}

	overrideParamsBytes, err := os.ReadFile(networkFlags.OverrideParamsFile)
	if err != nil {
		return errors.Wrap(err, "error reading override params file")
	}

	config := &overrideParamsConfig{}
	err = yaml.UnmarshalStrict(overrideParamsBytes, config)
	if err != nil {
		return errors.Wrap(err, "error parsing override params file")
	}

	return config.apply(networkFlags.ActiveNetParams)
}

func (config *overrideParamsConfig) apply(params *chaincfg.Params) error {
	if config.PowLimit != nil {
		powLimit, ok := new(big.Int).SetString(*config.PowLimit, 16)
		if !ok {
			return errors.Errorf("couldn't convert %s to big int", *config.PowLimit)
		}
		params.PowLimit = powLimit
		params.PowLimitBits = difficulty.BigToCompact(powLimit)
	}

	if config.PowTargetSpacing != nil {
		params.PowTargetSpacing = *config.PowTargetSpacing
	}

	if config.PowTargetTimespan != nil {
		params.PowTargetTimespan = *config.PowTargetTimespan
	}

	if config.ZawyLWMAAveragingWindow != nil {
		params.ZawyLWMAAveragingWindow = *config.ZawyLWMAAveragingWindow
	}

	if config.PowAllowMinDifficultyBlocks != nil {
		params.PowAllowMinDifficultyBlocks = *config.PowAllowMinDifficultyBlocks
	}

	if config.PowNoRetargeting != nil {
		params.PowNoRetargeting = *config.PowNoRetargeting
	}

	if config.DifficultyAlgorithm != nil {
		algorithm, err := chaincfg.DifficultyAlgorithmFromString(*config.DifficultyAlgorithm)
		if err != nil {
			return err
		}
		params.DifficultyAlgorithm = algorithm
	}

	return nil
}
