// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the ClownGPT backend.
package api

import (
	"errors"
	"fmt"
	"net/http"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// TransportError wraps a network-level failure: the server was unreachable
// or the connection broke before a status line arrived.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return "server unreachable: " + e.Cause.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// RequestError represents a non-success HTTP status. Body carries the
// best-effort response text for display near the failed action.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, http.StatusText(e.Status))
}

// IsAuthFailure reports whether err is a RequestError carrying an
// authorization failure. Such a failure during workspace reload means the
// stored credential is no longer valid and the session must be torn down.
func IsAuthFailure(err error) bool {
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		return false
	}
	return reqErr.Status == http.StatusUnauthorized || reqErr.Status == http.StatusForbidden
}
