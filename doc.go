// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the K-Voter API server.

K-Voter is a single-page voting app: authenticated users see a pyramid
leaderboard of candidates with live tallies and may cast at most one vote
per period. This server owns the candidate store and the vote ledger; the
one-vote-per-identity-per-period invariant is enforced inside a single
database transaction backed by a unique ledger-key index.

# Starting the Server

	DATABASE_URL=kvoter.db ADMIN_KEY=... IDENTITY_TOKEN_SECRET=... go run .

Or with flags:

	go run . -p 8090 -d kvoter.db -t sqlite

A .env file is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite path or postgres connection string
  - ADMIN_KEY (--admin-key): Secret for candidate seeding
  - IDENTITY_TOKEN_SECRET (--identity-secret): Shared secret with the
    identity provider

Optional settings:

  - PORT (-p): Server port (default: 8090)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - PERIOD_POLICY (--period-policy): account or account-daily
  - KAFKA_BROKERS, KAFKA_TOPIC: vote event stream
  - REDIS_URL, CACHE_TTL_SECONDS: leaderboard cache

# Architecture

The server uses a handler-based architecture with dependency injection:

  - ledger: The vote ledger core (cast transaction, period keys)
  - leaderboard: Ranked snapshot, percentages, pyramid rows, Redis cache
  - events: VoteCast stream to Kafka for realtime consumers
  - handlers: HTTP request handlers (votes, candidates, leaderboard)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - auth: Identity token and admin key verification
  - metrics: Prometheus counters for the vote path
  - db: Connection selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
