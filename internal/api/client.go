// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the ClownGPT backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/clowngpt-tui/internal/logger"
	"github.com/jeranaias/clowngpt-tui/internal/session"
)

// Configuration constants for the ClownGPT API client.
const (
	// DefaultBaseURL is the default backend address for local development.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeout bounds every non-streaming request.
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize caps response bodies to prevent memory exhaustion.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the gateway client.
type ClientConfig struct {
	// BaseURL is the backend base URL (default: http://localhost:8000)
	BaseURL string

	// Timeout for requests (default: 30s)
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client is the single chokepoint for ClownGPT server calls.
//
// The session store is injected at construction; whenever it holds a
// credential the client attaches it as a bearer token, and anonymous
// endpoints (login, register) simply run before a credential exists.
//
// The Client is safe for concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	sessions   *session.Store
}

// NewClient creates a gateway client with default configuration.
func NewClient(sessions *session.Store) *Client {
	return NewClientWithConfig(sessions, DefaultConfig())
}

// NewClientWithConfig creates a gateway client with custom configuration.
func NewClientWithConfig(sessions *session.Store, config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		config:   config,
		sessions: sessions,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// CORE REQUEST
// =============================================================================

// Request performs one HTTP call against the backend.
//
// body, when non-nil, is serialized as JSON; the request always declares a
// JSON content type. A non-2xx status yields a *RequestError with the status
// and best-effort body text; network failures yield a *TransportError. On
// success the response is decoded per its declared content type into the
// JSON or text variant of Decoded.
func (c *Client) Request(ctx context.Context, method, path string, body interface{}) (Decoded, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			// A body that cannot be serialized is a caller bug, not a
			// network failure.
			return Decoded{}, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	url := strings.TrimRight(c.config.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return Decoded{}, &TransportError{Cause: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.sessions.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Decoded{}, &TransportError{Cause: err}
	}
	defer resp.Body.Close()

	logger.L().Debug("api request", "method", method, "path", path, "status", resp.StatusCode)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return Decoded{}, &TransportError{Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Decoded{}, &RequestError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(raw)),
		}
	}

	if isJSONContentType(resp.Header.Get("Content-Type")) {
		return DecodedJSON(json.RawMessage(raw)), nil
	}
	return DecodedText(string(raw)), nil
}

// get performs a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	dec, err := c.Request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return dec.Unmarshal(out)
}

// send performs a request with a JSON body and decodes the JSON response
// into out. out may be nil to discard the response.
func (c *Client) send(ctx context.Context, method, path string, body, out interface{}) error {
	dec, err := c.Request(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return dec.Unmarshal(out)
}
