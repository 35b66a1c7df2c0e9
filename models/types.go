package models

import "time"

// Period policy constants
const (
	PolicyAccount      = "account"
	PolicyAccountDaily = "account-daily"
)

// Vote outcome constants, used as metrics labels and in logs
const (
	OutcomeAccepted          = "accepted"
	OutcomeAlreadyVoted      = "already_voted"
	OutcomeCandidateNotFound = "candidate_not_found"
	OutcomeUnauthenticated   = "unauthenticated"
	OutcomeTransient         = "transient"
)

// Request types

type CastVoteRequest struct {
	CandidateID string `json:"candidate_id"`
}

type CreateCandidateRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// Response types

type CastVoteResponse struct {
	CandidateID  string `json:"candidate_id"`
	NewVoteCount int    `json:"new_vote_count"`
}

type HasVotedResponse struct {
	Voted bool `json:"voted"`
}

type CreateCandidateResponse struct {
	CandidateID string `json:"candidate_id"`
}

// Domain types

// Identity is the authenticated caller as resolved from the identity
// provider's token. The server only ever reads it as a credential.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

type Candidate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	VoteCount int       `json:"vote_count"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteRecord is one ledger entry. At most one exists per ledger key, ever.
// Records are created once by a successful vote and never mutated or deleted.
type VoteRecord struct {
	ID            string    `json:"id"`
	LedgerKey     string    `json:"ledger_key"`
	IdentityID    string    `json:"identity_id"`
	Email         string    `json:"-"` // Never expose in JSON
	DisplayName   string    `json:"display_name"`
	CandidateID   string    `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	CastAt        time.Time `json:"cast_at"`
	VoteDate      string    `json:"vote_date"`
}

// VoteReceipt is returned by a successful cast.
type VoteReceipt struct {
	CandidateID   string
	CandidateName string
	NewVoteCount  int
	LedgerKey     string
	CastAt        time.Time
}

// Leaderboard types

type LeaderboardEntry struct {
	CandidateID string  `json:"candidate_id"`
	Name        string  `json:"name"`
	ImageURL    string  `json:"image_url"`
	VoteCount   int     `json:"vote_count"`
	Percentage  float64 `json:"percentage"`
	Rank        int     `json:"rank"` // 1-indexed ranking
}

type LeaderboardSnapshot struct {
	TotalVotes int                  `json:"total_votes"`
	Entries    []LeaderboardEntry   `json:"entries"`
	Rows       [][]LeaderboardEntry `json:"rows"`
	ComputedAt time.Time            `json:"computed_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
