// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the ClownGPT backend.
//
// All server communication goes through this single gateway. The client
// attaches the session credential as a bearer token, serializes request
// bodies as JSON, and normalizes failures into two error types:
// *TransportError for network failures and *RequestError for non-success
// HTTP statuses.
//
// The gateway does not retry, cache, or deduplicate requests; every call is
// independent.
package api
