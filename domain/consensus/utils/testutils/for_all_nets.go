package testutils

import (
	"testing"

	"github.com/kaspanet/hybridgate/domain/chaincfg"
)

// ForAllNets runs the passed testFunc with all available networks. Each run
// gets its own copy of the params, so testFunc may modify them.
func ForAllNets(t *testing.T, testFunc func(*testing.T, *chaincfg.Params)) {
	allParams := []*chaincfg.Params{
		&chaincfg.MainnetParams,
		&chaincfg.TestnetParams,
		&chaincfg.RegtestParams,
		&chaincfg.SimnetParams,
	}

	for _, params := range allParams {
		params := params.Clone()
		t.Run(params.Name, func(t *testing.T) {
			t.Parallel()
			t.Logf("Running test for %s", params.Name)
			testFunc(t, params)
		})
	}
}
