package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrValidationError(t *testing.T) {
	err := &ErrValidation{Field: "user_id", Message: "is required"}
	if got, want := err.Error(), "user_id: is required"; got != want {
		t.Fatalf("unexpected error string: got %q want %q", got, want)
	}
}

func TestErrUpstreamUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := &ErrUpstream{Store: "holdings", Err: cause}
	if got, want := err.Error(), "holdings store unavailable: connection refused"; got != want {
		t.Fatalf("unexpected error string: got %q want %q", got, want)
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected ErrUpstream to unwrap to its cause")
	}
}
