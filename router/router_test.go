// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ziado0/kvoter-app/events"
	"github.com/ziado0/kvoter-app/leaderboard"
	"github.com/ziado0/kvoter-app/ledger"
	"github.com/ziado0/kvoter-app/metrics"
	"github.com/ziado0/kvoter-app/models"
	"github.com/ziado0/kvoter-app/testutil"
)

func newTestRouter(t *testing.T) (*http.ServeMux, func()) {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	mux := NewRouter(Deps{
		DB:        conn,
		Cfg:       cfg,
		Ledger:    ledger.New(conn, ledger.PolicyAccountDaily),
		Cache:     leaderboard.NopCache{},
		Publisher: events.NopPublisher{},
		Metrics:   metrics.New(prometheus.NewRegistry()),
	})

	return mux, func() { conn.Close() }
}

func TestHealthEndpoint(t *testing.T) {
	mux, cleanup := newTestRouter(t)
	defer cleanup()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/health", nil, nil))

	testutil.AssertStatus(t, w, 200)
	if w.Body.String() != "OK" {
		t.Errorf("Expected OK, got %s", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux, cleanup := newTestRouter(t)
	defer cleanup()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/", nil, nil))

	testutil.AssertStatus(t, w, 200)
	if w.Body.String() != "kvoter API v1" {
		t.Errorf("Unexpected root body: %s", w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	mux, cleanup := newTestRouter(t)
	defer cleanup()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/metrics", nil, nil))

	testutil.AssertStatus(t, w, 200)
}

func TestVoteRouteRequiresAuth(t *testing.T) {
	mux, cleanup := newTestRouter(t)
	defer cleanup()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/votes",
		models.CastVoteRequest{CandidateID: "c1"}, nil))

	testutil.AssertStatus(t, w, 401)
}

func TestVoteRouteMethodNotAllowed(t *testing.T) {
	mux, cleanup := newTestRouter(t)
	defer cleanup()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("DELETE", "/votes", nil, nil))

	testutil.AssertStatus(t, w, 405)
}

func TestLeaderboardRoute(t *testing.T) {
	mux, cleanup := newTestRouter(t)
	defer cleanup()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/leaderboard", nil, nil))

	testutil.AssertStatus(t, w, 200)

	var snap models.LeaderboardSnapshot
	testutil.AssertJSON(t, w, &snap)
	if snap.TotalVotes != 0 {
		t.Errorf("Expected empty leaderboard, got %+v", snap)
	}
}

func TestCandidatesRoute(t *testing.T) {
	mux, cleanup := newTestRouter(t)
	defer cleanup()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/candidates", nil, nil))

	testutil.AssertStatus(t, w, 200)
}
