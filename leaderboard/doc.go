// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package leaderboard derives the ranked view the UI renders.

Compute is a pure function over a live candidate snapshot:

	snap := leaderboard.Compute(candidates, time.Now())

Entries come back sorted by vote count descending with 1-indexed ranks and
percentages of the snapshot total (all zero when no votes exist). Rows
reproduces the pyramid layout: top candidate alone, next two, then the
rest.

An optional Redis-backed Cache keeps the computed snapshot for a couple of
seconds to absorb read bursts. The cache is strictly a derived view; vote
correctness never depends on it.
*/
package leaderboard
