package ruleerrors

import (
	"github.com/pkg/errors"
)

// These constants are used to identify a specific RuleError.
var (
	// ErrInvalidTargetEncoding indicates the compact bits decode to a
	// negative, zero or overflowing target, or to a target above the
	// network's proof of work limit.
	ErrInvalidTargetEncoding = newRuleError("ErrInvalidTargetEncoding")

	// ErrTargetNotMet indicates the proof hash is above the claimed target.
	ErrTargetNotMet = newRuleError("ErrTargetNotMet")

	// ErrMissingProofData indicates a memory-hard block carries no
	// memory-hard proof payload.
	ErrMissingProofData = newRuleError("ErrMissingProofData")

	// ErrProofMismatch indicates the memory-hard proof did not verify, or
	// verified to a hash other than the one the header claims.
	ErrProofMismatch = newRuleError("ErrProofMismatch")

	// ErrUnexpectedDifficulty indicates specified bits do not align with
	// the expected value calculated by the difficulty rules.
	ErrUnexpectedDifficulty = newRuleError("ErrUnexpectedDifficulty")

	// ErrInvalidAncestor indicates the block does not extend the tip of the
	// chain it is validated against.
	ErrInvalidAncestor = newRuleError("ErrInvalidAncestor")

	// ErrInvalidProofType indicates the header's proof type tag is unknown.
	ErrInvalidProofType = newRuleError("ErrInvalidProofType")

	// ErrUnsupportedScript indicates a script public key is neither
	// pay-to-pubkey nor pay-to-pubkey-hash.
	ErrUnsupportedScript = newRuleError("ErrUnsupportedScript")

	// ErrNoSignableOutput indicates no output of the block designates a
	// signer.
	ErrNoSignableOutput = newRuleError("ErrNoSignableOutput")

	// ErrKeyNotFound indicates the keystore doesn't hold the designated
	// signer's key.
	ErrKeyNotFound = newRuleError("ErrKeyNotFound")

	// ErrSigningFailed indicates the signing operation itself failed.
	ErrSigningFailed = newRuleError("ErrSigningFailed")

	// ErrUnexpectedSignature indicates a proof of work block carries a
	// signature.
	ErrUnexpectedSignature = newRuleError("ErrUnexpectedSignature")

	// ErrMissingSignature indicates a block that must be signed isn't.
	ErrMissingSignature = newRuleError("ErrMissingSignature")

	// ErrInvalidPubkey indicates no usable public key could be extracted
	// from the stake output.
	ErrInvalidPubkey = newRuleError("ErrInvalidPubkey")

	// ErrSignatureInvalid indicates the block signature doesn't verify
	// against the header hash.
	ErrSignatureInvalid = newRuleError("ErrSignatureInvalid")
)

// RuleError identifies a rule violation. It is used to indicate that
// processing of a block failed due to one of the many validation
// rules. The caller can use errors.As to determine if a failure was
// specifically due to a rule violation.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

// Name returns the identifier of the rule that was violated
func (e RuleError) Name() string {
	return e.message
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}

// RuleName returns the name of the RuleError wrapped by err, or false if err
// is not a rule violation.
func RuleName(err error) (string, bool) {
	var ruleErr RuleError
	if !errors.As(err, &ruleErr) {
		return "", false
	}
	return ruleErr.message, true
}
