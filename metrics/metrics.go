// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// VoteMetrics tracks cast outcomes and latency. Outcome labels come from
// the models.Outcome* constants.
type VoteMetrics struct {
	VotesTotal       *prometheus.CounterVec
	CastVoteDuration prometheus.Histogram
}

// New registers the vote metrics with reg. main passes the default
// registerer; tests pass a fresh prometheus.NewRegistry so repeated
// construction doesn't collide.
func New(reg prometheus.Registerer) *VoteMetrics {
	return &VoteMetrics{
		VotesTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "kvoter_votes_total",
			Help: "Vote cast attempts by outcome.",
		}, []string{"outcome"}),
		CastVoteDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "kvoter_cast_vote_duration_seconds",
			Help:    "Latency of the cast-vote transaction, end to end.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Observe records one cast attempt.
func (m *VoteMetrics) Observe(outcome string, d time.Duration) {
	m.VotesTotal.WithLabelValues(outcome).Inc()
	m.CastVoteDuration.Observe(d.Seconds())
}
