// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth verifies the credentials the server accepts.

# Identity Tokens

The external identity provider shares a secret with this server and mints
tokens of the form

	base64url(JSON{id, email, display_name}) + "." + base64url(HMAC-SHA256)

VerifyIdentityToken resolves a token to a models.Identity:

	ident, err := auth.VerifyIdentityToken(r.Header.Get("X-Identity-Token"), secret)

A missing, malformed, or tampered token fails with ErrInvalidIdentityToken
and the request is treated as unauthenticated. SignIdentityToken exists for
tests and local tooling; in production only the provider signs.

# Admin Keys

Candidate seeding is gated by a single configured admin key, compared in
constant time:

	err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKey)
*/
package auth
