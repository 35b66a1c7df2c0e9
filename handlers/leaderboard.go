// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/ziado0/kvoter-app/leaderboard"
	"github.com/ziado0/kvoter-app/middleware"
)

type LeaderboardHandler struct {
	db    *sql.DB
	cache leaderboard.Cache
}

func NewLeaderboardHandler(db *sql.DB, cache leaderboard.Cache) *LeaderboardHandler {
	return &LeaderboardHandler{db: db, cache: cache}
}

// Get handles GET /leaderboard
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	if snap, err := h.cache.Get(r.Context()); err != nil {
		slog.Warn("leaderboard cache read failed", "error", err)
	} else if snap != nil {
		middleware.JSONResponse(w, http.StatusOK, snap)
		return
	}

	candidates, err := leaderboard.LoadCandidates(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to load candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	snap := leaderboard.Compute(candidates, time.Now())

	if err := h.cache.Set(r.Context(), snap); err != nil {
		slog.Warn("leaderboard cache write failed", "error", err)
	}

	middleware.JSONResponse(w, http.StatusOK, snap)
}
