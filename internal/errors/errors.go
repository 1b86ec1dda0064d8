package errors

import "errors"

// ErrConflict signals that a concurrent writer won the race on the
// (user_id, date) uniqueness constraint. Callers resolve it by re-applying
// the upsert, not by surfacing it.
var ErrConflict = errors.New("concurrent write conflict")

type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}

// ErrUpstream wraps a transport-level failure from one of the backing
// stores (holdings, prices, snapshots).
type ErrUpstream struct {
	Store string
	Err   error
}

func (e *ErrUpstream) Error() string {
	return e.Store + " store unavailable: " + e.Err.Error()
}

func (e *ErrUpstream) Unwrap() error {
	return e.Err
}
