// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with
environment variable fallbacks.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

Required:

  - DATABASE_URL (-d): sqlite path or postgres connection string
  - ADMIN_KEY (--admin-key): Secret gating candidate seeding
  - IDENTITY_TOKEN_SECRET (--identity-secret): Shared HMAC secret with the
    identity provider

Optional:

  - PORT (-p): Server port (default: 8090)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - PERIOD_POLICY (--period-policy): account or account-daily
    (default: account-daily)
  - KAFKA_BROKERS (--kafka-brokers): enables the vote event stream
  - KAFKA_TOPIC (--kafka-topic): default kvoter.votes
  - REDIS_URL (--redis-url): enables the leaderboard cache
  - CACHE_TTL_SECONDS (--cache-ttl): default 2

Unrecognized database types and period policies are rejected here so the
rest of the code never sees them.
*/
package cliparse
