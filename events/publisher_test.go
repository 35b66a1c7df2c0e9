// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestNopPublisher(t *testing.T) {
	var pub Publisher = NopPublisher{}

	if err := pub.Publish(context.Background(), VoteCast{}); err != nil {
		t.Errorf("Expected nop publish to succeed, got %v", err)
	}
	if err := pub.Close(); err != nil {
		t.Errorf("Expected nop close to succeed, got %v", err)
	}
}

func TestVoteCastJSON(t *testing.T) {
	event := VoteCast{
		LedgerKey:     "user-1_2024-01-01",
		IdentityID:    "user-1",
		CandidateID:   "c1",
		CandidateName: "Starlight",
		NewVoteCount:  4,
		CastAt:        time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	b, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	// Field names are the wire contract with downstream consumers
	for _, field := range []string{"ledger_key", "identity_id", "candidate_id", "candidate_name", "new_vote_count", "cast_at"} {
		if _, ok := decoded[field]; !ok {
			t.Errorf("Expected field %q in event payload", field)
		}
	}
}

func TestKafkaPublisherLifecycle(t *testing.T) {
	// Construction must not dial; Close on an unused writer is clean
	pub := NewKafkaPublisher([]string{"localhost:9092"}, "kvoter.votes")
	if pub == nil {
		t.Fatal("Expected a publisher")
	}
	if err := pub.Close(); err != nil {
		t.Errorf("Expected clean close, got %v", err)
	}
}
