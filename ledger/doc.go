// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger enforces the one correctness invariant of K-Voter: for a
given identity and voting period, at most one vote record ever exists, and
its creation and the candidate counter increment happen atomically.

# Casting

	svc := ledger.New(conn, ledger.PolicyAccountDaily)
	receipt, err := svc.CastVote(ctx, ident, candidateID, time.Now())

CastVote runs check, increment, and insert in a single transaction. The
UNIQUE index on vote_record.ledger_key backstops the in-transaction check,
so concurrent duplicates can never double-increment: one commits, the rest
surface ErrAlreadyVoted.

# Errors

All outcomes are returned as values, never panics, and the package does no
logging:

  - ErrUnauthenticated: no resolved identity was supplied
  - ErrCandidateNotFound: the candidate does not exist; nothing changed
  - ErrAlreadyVoted: a record exists for this period; nothing changed
  - TransientError: store failure; the call is safe to retry as-is

# Periods

A Policy derives ledger keys. PolicyAccount keys by identity id (one vote
ever); PolicyAccountDaily appends the UTC date (one vote per day), matching
the original app's "<uid>_<YYYY-MM-DD>" vote document ids.

# Reads

HasVoted is an advisory existence check for the UI. It is deliberately not
part of any cast path: check-then-act outside the transaction is racy and
is never relied on for correctness.
*/
package ledger
