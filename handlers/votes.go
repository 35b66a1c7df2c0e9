// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ziado0/kvoter-app/auth"
	"github.com/ziado0/kvoter-app/cliparse"
	"github.com/ziado0/kvoter-app/events"
	"github.com/ziado0/kvoter-app/ledger"
	"github.com/ziado0/kvoter-app/metrics"
	"github.com/ziado0/kvoter-app/middleware"
	"github.com/ziado0/kvoter-app/models"
)

type VoteHandler struct {
	svc *ledger.Service
	cfg cliparse.Config
	pub events.Publisher
	vm  *metrics.VoteMetrics
}

func NewVoteHandler(svc *ledger.Service, cfg cliparse.Config, pub events.Publisher, vm *metrics.VoteMetrics) *VoteHandler {
	return &VoteHandler{svc: svc, cfg: cfg, pub: pub, vm: vm}
}

// Cast handles POST /votes
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ident, err := auth.VerifyIdentityToken(r.Header.Get("X-Identity-Token"), h.cfg.IdentityTokenSecret)
	if err != nil {
		h.vm.Observe(models.OutcomeUnauthenticated, time.Since(start))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Valid X-Identity-Token header required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.CandidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_id is required")
		return
	}

	receipt, err := h.svc.CastVote(r.Context(), ident, req.CandidateID, time.Now())
	if err != nil {
		h.castError(w, r, ident, req.CandidateID, start, err)
		return
	}

	h.vm.Observe(models.OutcomeAccepted, time.Since(start))

	// Best-effort: the vote is committed, the event stream must not undo it
	if err := h.pub.Publish(r.Context(), events.VoteCast{
		LedgerKey:     receipt.LedgerKey,
		IdentityID:    ident.ID,
		CandidateID:   receipt.CandidateID,
		CandidateName: receipt.CandidateName,
		NewVoteCount:  receipt.NewVoteCount,
		CastAt:        receipt.CastAt,
	}); err != nil {
		slog.Warn("failed to publish vote event", "error", err, "ledger_key", receipt.LedgerKey)
	}

	slog.Info("vote cast",
		"identity_id", ident.ID,
		"candidate_id", receipt.CandidateID,
		"new_vote_count", receipt.NewVoteCount,
		"remote", middleware.GetClientIP(r),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		CandidateID:  receipt.CandidateID,
		NewVoteCount: receipt.NewVoteCount,
	})
}

func (h *VoteHandler) castError(w http.ResponseWriter, r *http.Request, ident models.Identity, candidateID string, start time.Time, err error) {
	switch {
	case errors.Is(err, ledger.ErrAlreadyVoted):
		h.vm.Observe(models.OutcomeAlreadyVoted, time.Since(start))
		middleware.ErrorResponse(w, http.StatusConflict, "You have already voted this period")
	case errors.Is(err, ledger.ErrCandidateNotFound):
		h.vm.Observe(models.OutcomeCandidateNotFound, time.Since(start))
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
	case errors.Is(err, ledger.ErrUnauthenticated):
		h.vm.Observe(models.OutcomeUnauthenticated, time.Since(start))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
	case ledger.IsTransient(err):
		h.vm.Observe(models.OutcomeTransient, time.Since(start))
		slog.Error("transient failure casting vote", "error", err, "identity_id", ident.ID, "candidate_id", candidateID)
		w.Header().Set("Retry-After", "1")
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Temporary failure, please retry")
	default:
		slog.Error("failed to cast vote", "error", err, "identity_id", ident.ID, "candidate_id", candidateID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
	}
}

// MyVote handles GET /votes/me
func (h *VoteHandler) MyVote(w http.ResponseWriter, r *http.Request) {
	ident, err := auth.VerifyIdentityToken(r.Header.Get("X-Identity-Token"), h.cfg.IdentityTokenSecret)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Valid X-Identity-Token header required")
		return
	}

	voted, err := h.svc.HasVoted(r.Context(), ident, time.Now())
	if err != nil {
		slog.Error("failed to check vote status", "error", err, "identity_id", ident.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HasVotedResponse{Voted: voted})
}
