// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/ziado0/kvoter-app/db"
	"github.com/ziado0/kvoter-app/models"
)

// Service is the vote ledger. It owns the only code path that writes the
// candidate counters or the vote_record table; both are mutated together
// inside one transaction or not at all.
type Service struct {
	conn   *sql.DB
	policy Policy
}

func New(conn *sql.DB, policy Policy) *Service {
	return &Service{conn: conn, policy: policy}
}

// Policy returns the period policy the service was configured with.
func (s *Service) Policy() Policy {
	return s.policy
}

// CastVote records one vote by ident for candidateID at instant now.
//
// The existing-record check, the counter increment, and the record insert
// all run inside one transaction. Two concurrent casts for the same ledger
// key resolve as exactly one success and the rest ErrAlreadyVoted: the
// loser either sees the committed record at the check, or trips the UNIQUE
// index on ledger_key at insert and rolls back, increment included.
func (s *Service) CastVote(ctx context.Context, ident models.Identity, candidateID string, now time.Time) (*models.VoteReceipt, error) {
	if ident.ID == "" {
		return nil, ErrUnauthenticated
	}

	key := s.policy.Key(ident.ID, now)

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, &TransientError{Err: err}
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM vote_record WHERE ledger_key = $1)
	`, key).Scan(&exists)
	if err != nil {
		return nil, &TransientError{Err: err}
	}
	if exists {
		return nil, ErrAlreadyVoted
	}

	// Increment guarded by rows-affected: a candidate deleted between the
	// UI load and the submit resolves here, inside the transaction.
	res, err := tx.ExecContext(ctx, `
		UPDATE candidate SET vote_count = vote_count + 1 WHERE id = $1
	`, candidateID)
	if err != nil {
		return nil, &TransientError{Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, &TransientError{Err: err}
	}
	if affected == 0 {
		return nil, ErrCandidateNotFound
	}

	var name string
	var newCount int
	err = tx.QueryRowContext(ctx, `
		SELECT name, vote_count FROM candidate WHERE id = $1
	`, candidateID).Scan(&name, &newCount)
	if err != nil {
		return nil, &TransientError{Err: err}
	}

	castAt := now.UTC()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO vote_record (id, ledger_key, identity_id, email, display_name, candidate_id, candidate_name, cast_at, vote_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, uuid.NewString(), key, ident.ID, ident.Email, ident.DisplayName, candidateID, name, castAt, VoteDate(now))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrAlreadyVoted
		}
		return nil, &TransientError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrAlreadyVoted
		}
		return nil, &TransientError{Err: err}
	}

	return &models.VoteReceipt{
		CandidateID:   candidateID,
		CandidateName: name,
		NewVoteCount:  newCount,
		LedgerKey:     key,
		CastAt:        castAt,
	}, nil
}

// HasVoted reports whether a vote record exists for ident's current period.
// Advisory only: the UI uses it to pre-disable the vote button. The
// authoritative check is the one inside CastVote; a read here followed by a
// cast is not a reservation.
func (s *Service) HasVoted(ctx context.Context, ident models.Identity, now time.Time) (bool, error) {
	if ident.ID == "" {
		return false, ErrUnauthenticated
	}

	var exists bool
	err := s.conn.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM vote_record WHERE ledger_key = $1)
	`, s.policy.Key(ident.ID, now)).Scan(&exists)
	if err != nil {
		return false, &TransientError{Err: err}
	}

	return exists, nil
}
