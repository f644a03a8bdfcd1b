// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the ClownGPT backend.
package api

import (
	"encoding/json"
	"mime"
	"strings"
)

// =============================================================================
// RESPONSE VARIANT
// =============================================================================

// Decoded is the result of a successful request: either structured JSON or
// raw text, chosen by the response's declared content type. The variant is
// explicit so callers never guess at what the body holds.
type Decoded struct {
	json json.RawMessage
	text string
}

// DecodedJSON wraps a raw JSON body.
func DecodedJSON(raw json.RawMessage) Decoded {
	return Decoded{json: raw}
}

// DecodedText wraps a plain text body.
func DecodedText(s string) Decoded {
	return Decoded{text: s}
}

// IsJSON reports whether the response carried a JSON body.
func (d Decoded) IsJSON() bool {
	return d.json != nil
}

// JSON returns the raw JSON body, or nil for a text response.
func (d Decoded) JSON() json.RawMessage {
	return d.json
}

// Text returns the text body, or the raw JSON as a string for a JSON
// response.
func (d Decoded) Text() string {
	if d.json != nil {
		return string(d.json)
	}
	return d.text
}

// Unmarshal decodes a JSON response into out. Calling it on a text response
// is an error.
func (d Decoded) Unmarshal(out interface{}) error {
	if d.json == nil {
		return &RequestError{Status: 0, Body: "response is not JSON"}
	}
	return json.Unmarshal(d.json, out)
}

// isJSONContentType is the explicit predicate deciding how a response body
// is decoded.
func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, "application/json")
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
