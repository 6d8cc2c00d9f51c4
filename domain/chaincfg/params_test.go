package chaincfg

import (
	"testing"

	"github.com/kaspanet/hybridgate/domain/consensus/ruleerrors"
	"github.com/pkg/errors"
)

func TestPredefinedParamsValidate(t *testing.T) {
	for _, params := range []*Params{&MainnetParams, &TestnetParams, &RegtestParams, &SimnetParams} {
		err := params.Validate()
		if err != nil {
			t.Errorf("TestPredefinedParamsValidate: %s: unexpected error: %s", params.Name, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		modify        func(p *Params)
		expectedError error
	}{
		{
			name:          "nil pow limit",
			modify:        func(p *Params) { p.PowLimit = nil },
			expectedError: ruleerrors.ErrInvalidParams,
		},
		{
			name:          "pow limit bits don't match",
			modify:        func(p *Params) { p.PowLimitBits = 0x1d00ffff },
			expectedError: ruleerrors.ErrInvalidParams,
		},
		{
			name:          "zero spacing",
			modify:        func(p *Params) { p.PowTargetSpacing = 0 },
			expectedError: ruleerrors.ErrInvalidParams,
		},
		{
			name:          "no algorithm",
			modify:        func(p *Params) { p.DifficultyAlgorithm = DifficultyAlgorithmNone },
			expectedError: ruleerrors.ErrNoDifficultyAlgorithm,
		},
		{
			name:          "unknown algorithm",
			modify:        func(p *Params) { p.DifficultyAlgorithm = 42 },
			expectedError: ruleerrors.ErrUnknownDifficultyAlgorithm,
		},
		{
			name: "lwma without a window",
			modify: func(p *Params) {
				p.DifficultyAlgorithm = DifficultyAlgorithmZawyLWMA
				p.ZawyLWMAAveragingWindow = 0
			},
			expectedError: ruleerrors.ErrInvalidParams,
		},
		{
			name: "legacy timespan shorter than spacing",
			modify: func(p *Params) {
				p.DifficultyAlgorithm = DifficultyAlgorithmLegacy
				p.PowTargetTimespan = p.PowTargetSpacing - 1
			},
			expectedError: ruleerrors.ErrInvalidParams,
		},
		{
			name: "no retargeting needs no algorithm",
			modify: func(p *Params) {
				p.PowNoRetargeting = true
				p.DifficultyAlgorithm = DifficultyAlgorithmNone
			},
			expectedError: nil,
		},
	}

	for _, test := range tests {
		params := MainnetParams.Clone()
		test.modify(params)
		err := params.Validate()
		if test.expectedError == nil {
			if err != nil {
				t.Errorf("TestValidate: %s: unexpected error: %s", test.name, err)
			}
			continue
		}
		if !errors.Is(err, test.expectedError) {
			t.Errorf("TestValidate: %s: expected %s, got: %v", test.name, test.expectedError, err)
			continue
		}
		if !ruleerrors.IsConfigError(err) {
			t.Errorf("TestValidate: %s: expected a config error, got: %v", test.name, err)
		}
	}
}

func TestCloneDoesNotShareLimit(t *testing.T) {
	clone := MainnetParams.Clone()
	clone.PowLimit.SetInt64(1)
	if MainnetParams.PowLimit.Cmp(clone.PowLimit) == 0 {
		t.Fatalf("TestCloneDoesNotShareLimit: modifying the clone modified MainnetParams")
	}
}

func TestDifficultyAdjustmentInterval(t *testing.T) {
	if interval := MainnetParams.DifficultyAdjustmentInterval(); interval != 60 {
		t.Fatalf("TestDifficultyAdjustmentInterval: expected 60, got %d", interval)
	}
}

func TestDifficultyAlgorithmFromString(t *testing.T) {
	tests := []struct {
		name          string
		expected      DifficultyAlgorithm
		expectedError bool
	}{
		{"legacy", DifficultyAlgorithmLegacy, false},
		{"DGW3", DifficultyAlgorithmDarkGravityWaveV3, false},
		{" lwma ", DifficultyAlgorithmZawyLWMA, false},
		{"none", DifficultyAlgorithmNone, false},
		{"sha256", DifficultyAlgorithmNone, true},
	}

	for _, test := range tests {
		algorithm, err := DifficultyAlgorithmFromString(test.name)
		if (err != nil) != test.expectedError {
			t.Errorf("TestDifficultyAlgorithmFromString: %s: expected error status %t, got: %v",
				test.name, test.expectedError, err)
		}
		if algorithm != test.expected {
			t.Errorf("TestDifficultyAlgorithmFromString: %s: expected %s, got %s",
				test.name, test.expected, algorithm)
		}
		if algorithm.String() == "unknown" {
			t.Errorf("TestDifficultyAlgorithmFromString: %s: parsed an unnamed algorithm", test.name)
		}
	}
	if DifficultyAlgorithm(42).String() != "unknown" {
		t.Errorf("TestDifficultyAlgorithmFromString: expected unknown algorithms to print as unknown")
	}
}
