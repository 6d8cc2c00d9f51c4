package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/hybridgate/infrastructure/config"
	"github.com/pkg/errors"
)

const (
	addHeaderSubCmd  = "addheader"
	nextBitsSubCmd   = "nextbits"
	checkPowSubCmd   = "checkpow"
	difficultySubCmd = "difficulty"
	genKeySubCmd     = "genkey"
)

type addHeaderConfig struct {
	Height    uint64 `long:"height" description:"Height of the header" required:"true"`
	Bits      string `long:"bits" description:"Compact target of the header (hex)" required:"true"`
	Time      int64  `long:"time" description:"Timestamp of the header in unix seconds" required:"true"`
	ProofType string `long:"prooftype" description:"Proof type of the header {work, memoryhardwork, stake}" default:"work"`
	Prev      string `long:"prev" description:"Hash of the parent header. Defaults to the stored tip"`
	Nonce     uint32 `long:"nonce" description:"Nonce of the header"`
}

type nextBitsConfig struct {
	Stake bool  `long:"stake" description:"Compute the bits of a proof-of-stake block"`
	Time  int64 `long:"time" description:"Timestamp of the candidate block in unix seconds. Defaults to now"`
}

type checkPowConfig struct {
	Hash string `long:"hash" description:"The hash to check" required:"true"`
	Bits string `long:"bits" description:"Compact target the hash has to meet (hex)" required:"true"`
}

type difficultyConfig struct {
	Bits string `long:"bits" description:"Compact target (hex)" required:"true"`
}

type genKeyConfig struct {
	Mnemonic     string `long:"mnemonic" description:"BIP-39 mnemonic to derive the key from. A new one is created if omitted"`
	NoPassphrase bool   `long:"no-passphrase" description:"Don't prompt for a mnemonic passphrase"`
}

// parseCommandLine loads the shared config from the environment and the
// command line, and returns the active sub-command with its config.
func parseCommandLine() (subCommand string, cfg *config.Config, subConfig interface{}) {
	cfg = config.DefaultConfig()
	err := cfg.ApplyEnvironment()
	if err != nil {
		printErrorAndExit(err)
	}

	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	addHeaderConf := &addHeaderConfig{}
	parser.AddCommand(addHeaderSubCmd, "Appends a header to the header store",
		"Appends a header on top of the stored tip after checking its bits", addHeaderConf)

	nextBitsConf := &nextBitsConfig{}
	parser.AddCommand(nextBitsSubCmd, "Shows the bits the next block must carry",
		"Shows the bits a block on top of the stored tip must carry", nextBitsConf)

	checkPowConf := &checkPowConfig{}
	parser.AddCommand(checkPowSubCmd, "Checks a hash against a compact target",
		"Checks that a hash is not above the target encoded by the given bits", checkPowConf)

	difficultyConf := &difficultyConfig{}
	parser.AddCommand(difficultySubCmd, "Decodes compact target bits",
		"Shows the target, difficulty ratio and work of the given bits", difficultyConf)

	genKeyConf := &genKeyConfig{}
	parser.AddCommand(genKeySubCmd, "Derives a block signing key",
		"Derives a block signing key from a BIP-39 mnemonic and shows its script and key ID", genKeyConf)

	_, err = parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	err = cfg.Resolve(parser)
	if err != nil {
		printErrorAndExit(err)
	}

	switch parser.Command.Active.Name {
	case addHeaderSubCmd:
		subConfig = addHeaderConf
	case nextBitsSubCmd:
		subConfig = nextBitsConf
	case checkPowSubCmd:
		subConfig = checkPowConf
	case difficultySubCmd:
		subConfig = difficultyConf
	case genKeySubCmd:
		subConfig = genKeyConf
	}

	return parser.Command.Active.Name, cfg, subConfig
}
