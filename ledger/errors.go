// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import "errors"

var (
	// ErrUnauthenticated means CastVote or HasVoted was invoked without a
	// resolved identity. Callers should have failed before getting here.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrAlreadyVoted means a vote record already exists for this
	// identity's current period. Terminal for the attempt; retrying is a
	// no-op.
	ErrAlreadyVoted = errors.New("already voted this period")

	// ErrCandidateNotFound means the referenced candidate does not exist.
	// No state was changed.
	ErrCandidateNotFound = errors.New("candidate not found")
)

// TransientError wraps a store failure (contention, connectivity,
// transaction timeout). The whole cast is all-or-nothing, so the caller may
// retry the call safely; the ledger key makes the retry idempotent.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return "transient store failure: " + e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is a retryable store failure. Every other
// error from this package is a terminal outcome for the attempt.
func IsTransient(err error) bool {
	var t *TransientError
	return errors.As(err, &t)
}
