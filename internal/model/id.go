// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures exchanged with the ClownGPT
// backend.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// =============================================================================
// CANONICAL IDENTIFIER
// =============================================================================

// ID is the canonical identifier type for server-side entities.
//
// The backend is inconsistent about identifier encodings: model ids arrive as
// JSON numbers while chat and project ids arrive as UUID strings. ID
// normalizes both to a string at the decode boundary so equality works
// everywhere without ad-hoc stringify-then-compare.
type ID string

// String returns the identifier as a plain string.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty (unset or JSON null).
func (id ID) IsZero() bool {
	return id == ""
}

// UnmarshalJSON accepts a JSON string, a JSON number, or null.
// Numbers keep their literal form ("42" stays "42", never "42.0").
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid id string: %w", err)
		}
		*id = ID(s)
		return nil
	}

	// Numeric id: preserve the literal to avoid float formatting artifacts.
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON emits the identifier as a JSON string, or null when empty.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(string(id))
}
