// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"fmt"
	"time"

	"github.com/ziado0/kvoter-app/models"
)

// Policy controls how long a voting period lasts, and with it how ledger
// keys are derived.
type Policy string

const (
	// PolicyAccount allows one vote per identity for all time.
	PolicyAccount = Policy(models.PolicyAccount)

	// PolicyAccountDaily allows one vote per identity per UTC calendar
	// day. This is the default.
	PolicyAccountDaily = Policy(models.PolicyAccountDaily)
)

// ParsePolicy converts a config string into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case models.PolicyAccount:
		return PolicyAccount, nil
	case models.PolicyAccountDaily, "":
		return PolicyAccountDaily, nil
	default:
		return "", fmt.Errorf("unsupported period policy %q", s)
	}
}

// Key derives the ledger key for an identity at a given instant. The key is
// the uniqueness boundary: at most one vote record may ever exist per key.
// Under the daily policy the key is "<identity>_<YYYY-MM-DD>" with the date
// taken in UTC, so the period boundary is UTC midnight everywhere.
func (p Policy) Key(identityID string, now time.Time) string {
	if p == PolicyAccount {
		return identityID
	}
	return identityID + "_" + VoteDate(now)
}

// VoteDate renders the UTC calendar day of a timestamp as YYYY-MM-DD.
func VoteDate(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}
