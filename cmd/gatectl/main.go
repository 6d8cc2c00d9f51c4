package main

import (
	"os"

	"github.com/kaspanet/hybridgate/infrastructure/logger"
	"github.com/pkg/errors"
)

func main() {
	subCmd, cfg, subConfig := parseCommandLine()

	err := cfg.InitLogs()
	if err != nil {
		printErrorAndExit(err)
	}
	defer logger.BackendLog.Close()

	out := os.Stdout
	switch subCmd {
	case addHeaderSubCmd:
		err = addHeader(cfg, subConfig.(*addHeaderConfig), out)
	case nextBitsSubCmd:
		err = nextBits(cfg, subConfig.(*nextBitsConfig), out)
	case checkPowSubCmd:
		err = checkPow(cfg, subConfig.(*checkPowConfig), out)
	case difficultySubCmd:
		err = showDifficulty(subConfig.(*difficultyConfig), out)
	case genKeySubCmd:
		err = genKey(subConfig.(*genKeyConfig), out)
	default:
		err = errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}

	if err != nil {
		logger.BackendLog.Close()
		printErrorAndExit(err)
	}
}
