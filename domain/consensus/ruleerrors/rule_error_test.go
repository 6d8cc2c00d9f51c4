package ruleerrors

import (
	"testing"

	"github.com/pkg/errors"
)

func TestWrappedRuleError(t *testing.T) {
	outer := errors.Wrapf(ErrTargetNotMet, "block hash %s is higher than target %x", "00ff", 0x1d00ffff)
	expectedOuterErr := "block hash 00ff is higher than target 1d00ffff: ErrTargetNotMet"

	if !errors.Is(outer, ErrTargetNotMet) {
		t.Fatal("TestWrappedRuleError: Outer should be ErrTargetNotMet")
	}
	if errors.Is(outer, ErrProofMismatch) {
		t.Fatal("TestWrappedRuleError: Outer should not be ErrProofMismatch")
	}

	rule := &RuleError{}
	if !errors.As(outer, rule) {
		t.Fatal("TestWrappedRuleError: Outer should contain RuleError in it")
	}
	if rule.message != "ErrTargetNotMet" {
		t.Fatalf("TestWrappedRuleError: Expected message = 'ErrTargetNotMet', found: '%s'", rule.message)
	}

	if outer.Error() != expectedOuterErr {
		t.Fatalf("TestWrappedRuleError: Expected %s. found: %s", expectedOuterErr, outer.Error())
	}
}

func TestRuleName(t *testing.T) {
	name, ok := RuleName(errors.Wrap(ErrSignatureInvalid, "bad"))
	if !ok {
		t.Fatal("TestRuleName: expected a rule error")
	}
	if name != "ErrSignatureInvalid" {
		t.Fatalf("TestRuleName: Expected ErrSignatureInvalid, found: %s", name)
	}

	_, ok = RuleName(errors.New("not a rule"))
	if ok {
		t.Fatal("TestRuleName: a plain error is not a rule error")
	}

	_, ok = RuleName(errors.WithStack(ErrNoDifficultyAlgorithm))
	if ok {
		t.Fatal("TestRuleName: a config error is not a rule error")
	}
}

func TestConfigError(t *testing.T) {
	err := errors.Wrapf(ErrInvalidParams, "spacing must be positive")
	if !IsConfigError(err) {
		t.Fatal("TestConfigError: expected ErrInvalidParams to be a config error")
	}
	if !errors.Is(err, ErrInvalidParams) {
		t.Fatal("TestConfigError: expected errors.Is to match ErrInvalidParams")
	}
	if IsConfigError(ErrTargetNotMet) {
		t.Fatal("TestConfigError: rule errors are not config errors")
	}
}
