package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	err := &Error{Code: "UNKNOWN_STRATEGY", Message: "unknown strategy"}
	want := "[UNKNOWN_STRATEGY] unknown strategy"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestError_WithCause(t *testing.T) {
	cause := fmt.Errorf("no strategy named %q", "bogus")
	err := WrapError(ErrUnknownStrategy, cause)

	if !errors.Is(err, ErrUnknownStrategy) {
		t.Error("wrapped error should match its base via errors.Is")
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
}

func TestError_IsDistinguishesCodes(t *testing.T) {
	if errors.Is(ErrInsufficientFunds, ErrInsufficientShares) {
		t.Error("errors with different codes should not match")
	}
}
