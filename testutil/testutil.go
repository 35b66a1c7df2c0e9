// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ziado0/kvoter-app/auth"
	"github.com/ziado0/kvoter-app/cliparse"
	"github.com/ziado0/kvoter-app/db"
	"github.com/ziado0/kvoter-app/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. The pool is pinned to one connection: in-memory SQLite databases
// are per-connection, and a single connection also serializes concurrent
// transactions the way a production database would queue row locks.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:                8090,
		DatabaseURL:         ":memory:",
		DatabaseType:        "sqlite",
		PeriodPolicy:        models.PolicyAccountDaily,
		AdminKey:            "test-admin-key",
		IdentityTokenSecret: "test-identity-secret",
		KafkaTopic:          "kvoter.votes",
		CacheTTL:            2 * time.Second,
	}
}

// CreateTestCandidate inserts a candidate and returns its ID
func CreateTestCandidate(t *testing.T, conn *sql.DB, name string, voteCount int) string {
	t.Helper()

	candidateID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO candidate (id, name, image_url, vote_count, created_at)
		VALUES ($1, $2, '', $3, $4)
	`, candidateID, name, voteCount, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}

	return candidateID
}

// TestIdentity returns a deterministic identity for the given user id
func TestIdentity(id string) models.Identity {
	return models.Identity{
		ID:          id,
		Email:       id + "@example.com",
		DisplayName: "Voter " + id,
	}
}

// SignTestToken mints an identity token valid under GetTestConfig
func SignTestToken(t *testing.T, ident models.Identity) string {
	t.Helper()

	token, err := auth.SignIdentityToken(ident, GetTestConfig().IdentityTokenSecret)
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}

	return token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
