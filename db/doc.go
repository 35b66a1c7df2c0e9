// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Opening a Connection

Open selects the driver from the configured database type:

	conn, err := db.Open("sqlite", "kvoter.db")
	conn, err := db.Open("postgres", "postgres://...")

SQLite (mattn/go-sqlite3) is the default and what the test suite runs
against; PostgreSQL (lib/pq) is for deployments. All queries in this
codebase use $N placeholders in strict left-to-right order, which both
drivers bind positionally.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - candidate: Leaderboard entries with a monotonically non-decreasing
    vote_count
  - vote_record: The vote ledger; one immutable row per ledger key

The UNIQUE index on vote_record.ledger_key is the concurrency backstop for
the one-vote-per-identity-per-period invariant. IsUniqueViolation
recognizes the violation error from both drivers.
*/
package db
