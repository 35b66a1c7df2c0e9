// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus instrumentation for the vote path:
// a counter of cast attempts by outcome and a latency histogram. Scraped
// from GET /metrics.
package metrics
