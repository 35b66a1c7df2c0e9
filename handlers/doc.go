// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the K-Voter API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - VoteHandler: Vote casting and has-voted checks (the ledger's HTTP face)
  - CandidateHandler: Candidate listing and admin seeding
  - LeaderboardHandler: Ranked snapshot with percentages and pyramid rows

# Voting Flow

Authenticated users vote at most once per period:

	POST /votes     → Cast (X-Identity-Token; 201, or 409 if already voted)
	GET  /votes/me  → MyVote ({"voted": bool}, advisory for the UI)

Cast maps the ledger taxonomy onto status codes: 401 unauthenticated,
404 unknown candidate, 409 already voted, 503 + Retry-After on transient
store failures (those are the only ones worth retrying).

# Leaderboard

	GET /leaderboard → ranked entries, percentages, pyramid rows
	GET /candidates  → raw candidate list

# Seeding

	POST /candidates → Create (X-Admin-Key required)
*/
package handlers
