// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

  - WithLogging: request start/completion logging via slog
  - JSONResponse / ErrorResponse: consistent JSON output
  - ParseJSONBody: request body decoding
  - CORS: cross-origin support for the single-page UI, including the
    X-Identity-Token and X-Admin-Key headers
  - GetClientIP: client address extraction behind proxies
*/
package middleware
