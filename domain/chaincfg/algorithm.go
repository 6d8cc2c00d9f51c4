package chaincfg

import (
	"strings"

	"github.com/kaspanet/hybridgate/domain/consensus/ruleerrors"
	"github.com/pkg/errors"
)

// DifficultyAlgorithm selects the retargeting algorithm of a network
type DifficultyAlgorithm uint8

// The difficulty algorithms a network can select. The zero value selects
// nothing and is only valid together with PowNoRetargeting.
const (
	DifficultyAlgorithmNone DifficultyAlgorithm = iota
	DifficultyAlgorithmLegacy
	DifficultyAlgorithmDarkGravityWaveV3
	DifficultyAlgorithmZawyLWMA
)

var difficultyAlgorithmStrings = map[DifficultyAlgorithm]string{
	DifficultyAlgorithmNone:              "none",
	DifficultyAlgorithmLegacy:            "legacy",
	DifficultyAlgorithmDarkGravityWaveV3: "dgw3",
	DifficultyAlgorithmZawyLWMA:          "lwma",
}

func (a DifficultyAlgorithm) String() string {
	if s, ok := difficultyAlgorithmStrings[a]; ok {
		return s
	}
	return "unknown"
}

// DifficultyAlgorithmFromString parses the name printed by
// DifficultyAlgorithm.String. Names are case insensitive.
func DifficultyAlgorithmFromString(name string) (DifficultyAlgorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for algorithm, algorithmName := range difficultyAlgorithmStrings {
		if algorithmName == name {
			return algorithm, nil
		}
	}
	return DifficultyAlgorithmNone, errors.Wrapf(ruleerrors.ErrUnknownDifficultyAlgorithm, "%q", name)
}
