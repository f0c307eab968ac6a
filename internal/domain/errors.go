package domain

import "errors"

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// ErrRejected marks a client-class collaborator failure (malformed
	// request, auth failure). Retrying the same input cannot succeed.
	ErrRejected = errors.New("rejected by collaborator")

	// ErrUnavailable marks a transient collaborator failure (5xx, timeout,
	// connection refused). Safe to retry with backoff.
	ErrUnavailable = errors.New("collaborator unavailable")
)

// IsFatal reports whether err must not be retried. The queue worker is the
// single place that consults this: fatal events are logged and dropped,
// everything else is retried up to the attempt limit.
func IsFatal(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrRejected)
}
