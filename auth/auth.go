// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ziado0/kvoter-app/models"
)

var (
	ErrInvalidAdminKey      = errors.New("invalid admin key")
	ErrInvalidIdentityToken = errors.New("invalid identity token")
)

// ValidateAdminKey checks the provided admin key against the configured one
// in constant time.
func ValidateAdminKey(provided, configured string) error {
	if provided == "" || !hmac.Equal([]byte(provided), []byte(configured)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// SignIdentityToken mints an identity token for the given identity. In
// production the identity provider holds the shared secret and does this on
// its side; the server only verifies. Kept here so tests and local tooling
// can produce valid credentials.
func SignIdentityToken(ident models.Identity, secret string) (string, error) {
	if ident.ID == "" {
		return "", ErrInvalidIdentityToken
	}

	payload, err := json.Marshal(ident)
	if err != nil {
		return "", err
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + signature(encoded, secret), nil
}

// VerifyIdentityToken checks the token's HMAC and returns the identity it
// carries. Any malformed or tampered token fails with
// ErrInvalidIdentityToken; callers treat that as unauthenticated.
func VerifyIdentityToken(token, secret string) (models.Identity, error) {
	encoded, mac, ok := strings.Cut(token, ".")
	if !ok || encoded == "" || mac == "" {
		return models.Identity{}, ErrInvalidIdentityToken
	}

	if !hmac.Equal([]byte(mac), []byte(signature(encoded, secret))) {
		return models.Identity{}, ErrInvalidIdentityToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return models.Identity{}, ErrInvalidIdentityToken
	}

	var ident models.Identity
	if err := json.Unmarshal(payload, &ident); err != nil {
		return models.Identity{}, ErrInvalidIdentityToken
	}
	if ident.ID == "" {
		return models.Identity{}, ErrInvalidIdentityToken
	}

	return ident, nil
}

func signature(payload, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}
