// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import (
	"context"
	"time"
)

// VoteCast is emitted after a vote commits. Downstream consumers (the
// realtime leaderboard feed, analytics) subscribe to the topic; delivery to
// end clients is outside this server.
type VoteCast struct {
	LedgerKey     string    `json:"ledger_key"`
	IdentityID    string    `json:"identity_id"`
	CandidateID   string    `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	NewVoteCount  int       `json:"new_vote_count"`
	CastAt        time.Time `json:"cast_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event VoteCast) error
	Close() error
}

// NopPublisher drops events. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event VoteCast) error { return nil }

func (NopPublisher) Close() error { return nil }
