package event

import (
	"errors"
	"fmt"
)

// ErrListenerFailed is the sentinel matched by every listener failure.
var ErrListenerFailed = errors.New("morph: listener failed")

// ListenerError wraps an error returned by an upgrade listener. It is
// reported by Emit after the whole listener set has settled; by then the
// upgrade it belongs to is already committed.
type ListenerError struct {
	Listener int   // registration index of the failing listener
	Version  int64 // version the upgrade advanced to
	Err      error // error the listener returned
}

// Error returns the error string.
func (e *ListenerError) Error() string {
	return fmt.Sprintf("morph: listener %d failed for version %d: %v", e.Listener, e.Version, e.Err)
}

// Unwrap returns the underlying error.
func (e *ListenerError) Unwrap() error {
	return e.Err
}

// Is reports whether the target matches the sentinel error for ListenerError.
func (e *ListenerError) Is(target error) bool {
	return target == ErrListenerFailed
}

// NewListenerError returns a new ListenerError for the listener at the given
// registration index.
func NewListenerError(listener int, version int64, err error) *ListenerError {
	return &ListenerError{Listener: listener, Version: version, Err: err}
}

// IsListenerError reports whether the error is a ListenerError.
func IsListenerError(err error) bool {
	var e *ListenerError
	return errors.As(err, &e)
}
