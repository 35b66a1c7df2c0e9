// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ziado0/kvoter-app/testutil"
)

// TestConcurrentSameIdentity verifies the uniqueness property: N
// simultaneous casts for the same (identity, period) yield exactly one
// success and N-1 ErrAlreadyVoted, and the counter moves by exactly 1.
func TestConcurrentSameIdentity(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	svc := New(conn, PolicyAccountDaily)
	candidateID := testutil.CreateTestCandidate(t, conn, "Starlight", 0)
	ident := testutil.TestIdentity("user-1")
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	numAttempts := 10
	var successCount, duplicateCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := svc.CastVote(context.Background(), ident, candidateID, now)
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, ErrAlreadyVoted):
				duplicateCount.Add(1)
			default:
				t.Errorf("Unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 success, got %d", successCount.Load())
	}
	if int(duplicateCount.Load()) != numAttempts-1 {
		t.Errorf("Expected %d ErrAlreadyVoted, got %d", numAttempts-1, duplicateCount.Load())
	}

	if got := countVotes(t, conn, candidateID); got != 1 {
		t.Errorf("Expected vote count 1, got %d (double increment)", got)
	}
	if got := countRecords(t, conn); got != 1 {
		t.Errorf("Expected 1 vote record, got %d", got)
	}
}

// TestConcurrentDistinctIdentities verifies that concurrency control does
// not lose votes from different identities.
func TestConcurrentDistinctIdentities(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	svc := New(conn, PolicyAccountDaily)
	candidateID := testutil.CreateTestCandidate(t, conn, "Starlight", 0)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	numVoters := 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			ident := testutil.TestIdentity("voter-" + strconv.Itoa(n))
			if _, err := svc.CastVote(context.Background(), ident, candidateID, now); err != nil {
				t.Errorf("Voter %d failed: %v", n, err)
				return
			}
			successCount.Add(1)
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successes, got %d", numVoters, successCount.Load())
	}
	if got := countVotes(t, conn, candidateID); got != numVoters {
		t.Errorf("Expected vote count %d, got %d", numVoters, got)
	}
	if got := countRecords(t, conn); got != numVoters {
		t.Errorf("Expected %d vote records, got %d", numVoters, got)
	}
}
