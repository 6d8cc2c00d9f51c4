package ruleerrors

import "github.com/pkg/errors"

// These constants identify configuration mistakes. They are fatal for the
// operator and must never be treated as a block rejection.
var (
	// ErrNoDifficultyAlgorithm indicates the consensus parameters select no
	// difficulty algorithm while retargeting is enabled.
	ErrNoDifficultyAlgorithm = newConfigError("ErrNoDifficultyAlgorithm")

	// ErrUnknownDifficultyAlgorithm indicates the consensus parameters select
	// an algorithm this node doesn't implement.
	ErrUnknownDifficultyAlgorithm = newConfigError("ErrUnknownDifficultyAlgorithm")

	// ErrInvalidParams indicates the consensus parameters are contradictory
	// or out of range.
	ErrInvalidParams = newConfigError("ErrInvalidParams")
)

// ConfigError identifies an invalid consensus configuration.
type ConfigError struct {
	message string
}

// Error satisfies the error interface and prints human-readable errors.
func (e ConfigError) Error() string {
	return e.message
}

func newConfigError(message string) ConfigError {
	return ConfigError{message: message}
}

// IsConfigError returns true if err wraps a ConfigError
func IsConfigError(err error) bool {
	var configErr ConfigError
	return errors.As(err, &configErr)
}
