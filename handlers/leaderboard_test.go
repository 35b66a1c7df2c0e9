// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/ziado0/kvoter-app/leaderboard"
	"github.com/ziado0/kvoter-app/models"
	"github.com/ziado0/kvoter-app/testutil"
)

// stubCache serves a canned snapshot and records writes
type stubCache struct {
	snap *models.LeaderboardSnapshot
	sets []models.LeaderboardSnapshot
}

func (s *stubCache) Get(ctx context.Context) (*models.LeaderboardSnapshot, error) {
	return s.snap, nil
}

func (s *stubCache) Set(ctx context.Context, snap models.LeaderboardSnapshot) error {
	s.sets = append(s.sets, snap)
	return nil
}

func (s *stubCache) Close() error { return nil }

func TestLeaderboard(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	testutil.CreateTestCandidate(t, conn, "Aurora", 10)
	testutil.CreateTestCandidate(t, conn, "Bluebird", 30)
	testutil.CreateTestCandidate(t, conn, "Comet", 55)
	testutil.CreateTestCandidate(t, conn, "Drift", 5)

	handler := NewLeaderboardHandler(conn, leaderboard.NopCache{})

	w := httptest.NewRecorder()
	handler.Get(w, testutil.MakeRequest("GET", "/leaderboard", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var snap models.LeaderboardSnapshot
	testutil.AssertJSON(t, w, &snap)

	if snap.TotalVotes != 100 {
		t.Errorf("Expected total 100, got %d", snap.TotalVotes)
	}
	if len(snap.Entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(snap.Entries))
	}

	top := snap.Entries[0]
	if top.Name != "Comet" || top.Rank != 1 || top.Percentage != 55 {
		t.Errorf("Unexpected leader: %+v", top)
	}
	if snap.Entries[1].Percentage != 30 || snap.Entries[2].Percentage != 10 || snap.Entries[3].Percentage != 5 {
		t.Errorf("Unexpected percentages: %+v", snap.Entries)
	}

	// Pyramid: winner alone, the next two, then the rest
	if len(snap.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(snap.Rows))
	}
	if len(snap.Rows[0]) != 1 || snap.Rows[0][0].Name != "Comet" {
		t.Errorf("Unexpected top row: %+v", snap.Rows[0])
	}
	if len(snap.Rows[1]) != 2 {
		t.Errorf("Expected 2 entries in the middle row, got %d", len(snap.Rows[1]))
	}
	if len(snap.Rows[2]) != 1 || snap.Rows[2][0].Name != "Drift" {
		t.Errorf("Unexpected bottom row: %+v", snap.Rows[2])
	}
}

func TestLeaderboardEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewLeaderboardHandler(conn, leaderboard.NopCache{})

	w := httptest.NewRecorder()
	handler.Get(w, testutil.MakeRequest("GET", "/leaderboard", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var snap models.LeaderboardSnapshot
	testutil.AssertJSON(t, w, &snap)
	if snap.TotalVotes != 0 || len(snap.Entries) != 0 {
		t.Errorf("Expected empty snapshot, got %+v", snap)
	}
}

func TestLeaderboardServesCachedSnapshot(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	// The database disagrees with the cache; the cache wins inside its TTL
	testutil.CreateTestCandidate(t, conn, "Aurora", 10)

	cache := &stubCache{snap: &models.LeaderboardSnapshot{
		TotalVotes: 42,
		Entries: []models.LeaderboardEntry{
			{CandidateID: "cached", Name: "Cached", VoteCount: 42, Percentage: 100, Rank: 1},
		},
	}}
	handler := NewLeaderboardHandler(conn, cache)

	w := httptest.NewRecorder()
	handler.Get(w, testutil.MakeRequest("GET", "/leaderboard", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var snap models.LeaderboardSnapshot
	testutil.AssertJSON(t, w, &snap)
	if snap.TotalVotes != 42 || snap.Entries[0].Name != "Cached" {
		t.Errorf("Expected the cached snapshot, got %+v", snap)
	}
	if len(cache.sets) != 0 {
		t.Errorf("Expected no cache write on a hit, got %d", len(cache.sets))
	}
}

func TestLeaderboardWritesCacheOnMiss(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	testutil.CreateTestCandidate(t, conn, "Aurora", 10)

	cache := &stubCache{}
	handler := NewLeaderboardHandler(conn, cache)

	w := httptest.NewRecorder()
	handler.Get(w, testutil.MakeRequest("GET", "/leaderboard", nil, nil))
	testutil.AssertStatus(t, w, 200)

	if len(cache.sets) != 1 {
		t.Fatalf("Expected 1 cache write, got %d", len(cache.sets))
	}
	if cache.sets[0].TotalVotes != 10 {
		t.Errorf("Expected the computed snapshot to be cached, got %+v", cache.sets[0])
	}
}
