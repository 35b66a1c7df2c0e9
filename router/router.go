// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ziado0/kvoter-app/cliparse"
	"github.com/ziado0/kvoter-app/events"
	"github.com/ziado0/kvoter-app/handlers"
	"github.com/ziado0/kvoter-app/leaderboard"
	"github.com/ziado0/kvoter-app/ledger"
	"github.com/ziado0/kvoter-app/metrics"
	"github.com/ziado0/kvoter-app/middleware"
)

// Deps carries everything the routes need. main wires the real
// collaborators; tests substitute nops and in-memory stores.
type Deps struct {
	DB        *sql.DB
	Cfg       cliparse.Config
	Ledger    *ledger.Service
	Cache     leaderboard.Cache
	Publisher events.Publisher
	Metrics   *metrics.VoteMetrics
}

func NewRouter(deps Deps) *http.ServeMux {
	mux := http.NewServeMux()

	voteHandler := handlers.NewVoteHandler(deps.Ledger, deps.Cfg, deps.Publisher, deps.Metrics)
	candidateHandler := handlers.NewCandidateHandler(deps.DB, deps.Cfg)
	leaderboardHandler := handlers.NewLeaderboardHandler(deps.DB, deps.Cache)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting (authenticated)
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.Cast))
	mux.HandleFunc("GET /votes/me", middleware.WithLogging(voteHandler.MyVote))

	// Leaderboard (public)
	mux.HandleFunc("GET /leaderboard", middleware.WithLogging(leaderboardHandler.Get))
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.List))

	// Seeding (admin)
	mux.HandleFunc("POST /candidates", middleware.WithLogging(candidateHandler.Create))

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", promhttp.Handler())

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("kvoter API v1"))
	})

	return mux
}
