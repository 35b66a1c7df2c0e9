// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

	GET  /health       Health check
	POST /votes        Cast a vote (X-Identity-Token)
	GET  /votes/me     Has the caller voted this period
	GET  /leaderboard  Ranked snapshot with percentages and pyramid rows
	GET  /candidates   Raw candidate list
	POST /candidates   Seed a candidate (X-Admin-Key)
	GET  /metrics      Prometheus scrape endpoint

NewRouter takes a Deps struct so tests can substitute in-memory stores and
nop collaborators for Kafka and Redis.
*/
package router
