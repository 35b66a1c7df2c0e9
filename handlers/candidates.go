// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ziado0/kvoter-app/auth"
	"github.com/ziado0/kvoter-app/cliparse"
	"github.com/ziado0/kvoter-app/leaderboard"
	"github.com/ziado0/kvoter-app/middleware"
	"github.com/ziado0/kvoter-app/models"
)

type CandidateHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCandidateHandler(db *sql.DB, cfg cliparse.Config) *CandidateHandler {
	return &CandidateHandler{db: db, cfg: cfg}
}

// List handles GET /candidates
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	candidates, err := leaderboard.LoadCandidates(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to load candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if candidates == nil {
		candidates = []models.Candidate{}
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// Create handles POST /candidates. Candidates are seeded out-of-band by an
// operator; votes are the only other writer of this table.
func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	var req models.CreateCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if len(req.Name) > 100 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name must be at most 100 characters")
		return
	}

	candidateID := uuid.NewString()
	_, err := h.db.ExecContext(r.Context(), `
		INSERT INTO candidate (id, name, image_url, vote_count, created_at)
		VALUES ($1, $2, $3, 0, $4)
	`, candidateID, req.Name, req.ImageURL, time.Now().UTC())
	if err != nil {
		slog.Error("failed to insert candidate", "error", err, "name", req.Name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create candidate")
		return
	}

	slog.Info("candidate created", "candidate_id", candidateID, "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateCandidateResponse{
		CandidateID: candidateID,
	})
}
