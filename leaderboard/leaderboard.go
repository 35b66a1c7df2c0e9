// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package leaderboard

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/ziado0/kvoter-app/models"
)

// Percentage computes a candidate's share of the total vote, in percent.
// Zero when no votes have been cast at all.
func Percentage(voteCount, totalVotes int) float64 {
	if totalVotes <= 0 {
		return 0
	}
	return float64(voteCount) / float64(totalVotes) * 100
}

// Compute builds a leaderboard snapshot from a live set of candidates:
// sorted by vote count descending, ranked from 1, with percentages derived
// from the snapshot's own total.
func Compute(candidates []models.Candidate, now time.Time) models.LeaderboardSnapshot {
	total := 0
	for _, c := range candidates {
		total += c.VoteCount
	}

	sorted := make([]models.Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].VoteCount != sorted[j].VoteCount {
			return sorted[i].VoteCount > sorted[j].VoteCount
		}
		return sorted[i].Name < sorted[j].Name
	})

	entries := make([]models.LeaderboardEntry, 0, len(sorted))
	for i, c := range sorted {
		entries = append(entries, models.LeaderboardEntry{
			CandidateID: c.ID,
			Name:        c.Name,
			ImageURL:    c.ImageURL,
			VoteCount:   c.VoteCount,
			Percentage:  Percentage(c.VoteCount, total),
			Rank:        i + 1,
		})
	}

	return models.LeaderboardSnapshot{
		TotalVotes: total,
		Entries:    entries,
		Rows:       PyramidRows(entries),
		ComputedAt: now.UTC(),
	}
}

// PyramidRows groups ranked entries into the UI's pyramid layout: the
// leader alone on top, the next two below, everyone else on the bottom row.
func PyramidRows(entries []models.LeaderboardEntry) [][]models.LeaderboardEntry {
	rows := make([][]models.LeaderboardEntry, 0, 3)
	bounds := []int{1, 3}

	start := 0
	for _, end := range bounds {
		if end > len(entries) {
			end = len(entries)
		}
		if start < end {
			rows = append(rows, entries[start:end])
		}
		start = end
	}
	if start < len(entries) {
		rows = append(rows, entries[start:])
	}

	return rows
}

// LoadCandidates reads the current candidate set, highest vote count first.
func LoadCandidates(ctx context.Context, conn *sql.DB) ([]models.Candidate, error) {
	rows, err := conn.QueryContext(ctx, `
		SELECT id, name, image_url, vote_count FROM candidate
		ORDER BY vote_count DESC, name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	var candidates []models.Candidate
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.ImageURL, &c.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}

	return candidates, nil
}
