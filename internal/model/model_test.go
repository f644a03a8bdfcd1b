// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures exchanged with the ClownGPT
// backend.
package model

import (
	"encoding/json"
	"testing"
)

// =============================================================================
// ID TESTS
// =============================================================================

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ID
	}{
		{"uuid string", `"3f2b9a10-6f4c-4b5e-9f2a-1c8d7e6f5a4b"`, "3f2b9a10-6f4c-4b5e-9f2a-1c8d7e6f5a4b"},
		{"numeric", `42`, "42"},
		{"numeric string", `"42"`, "42"},
		{"null", `null`, ""},
		{"empty string", `""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			if err := json.Unmarshal([]byte(tt.input), &id); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.input, err)
			}
			if id != tt.want {
				t.Errorf("id = %q, want %q", id, tt.want)
			}
		})
	}
}

func TestID_NumericAndStringCompareEqual(t *testing.T) {
	var a, b ID
	if err := json.Unmarshal([]byte(`7`), &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`"7"`), &b); err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("numeric 7 (%q) != string \"7\" (%q)", a, b)
	}
}

func TestID_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(ID("abc"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"abc"` {
		t.Errorf("marshal = %s, want \"abc\"", data)
	}

	data, err = json.Marshal(ID(""))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "null" {
		t.Errorf("marshal empty = %s, want null", data)
	}
}

// =============================================================================
// CHAT TESTS
// =============================================================================

func TestChat_ProjectMembership(t *testing.T) {
	unassigned := Chat{ID: "c1"}
	if !unassigned.Unassigned() {
		t.Error("chat with no project should be unassigned")
	}
	if unassigned.InProject("p1") {
		t.Error("unassigned chat should not match any project")
	}

	assigned := Chat{ID: "c2", ProjectID: "p1"}
	if assigned.Unassigned() {
		t.Error("chat with project should not be unassigned")
	}
	if !assigned.InProject("p1") {
		t.Error("chat should match its own project")
	}
	if assigned.InProject("p2") {
		t.Error("chat should not match another project")
	}
}

func TestChat_DecodeNullProjectID(t *testing.T) {
	raw := `{"id":"c1","title":"New chat","model_name":"clown 1.3","project_id":null}`
	var c Chat
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !c.Unassigned() {
		t.Errorf("project_id null should decode as unassigned, got %q", c.ProjectID)
	}
}

// =============================================================================
// PLAN TESTS
// =============================================================================

func TestPlan_Valid(t *testing.T) {
	for _, p := range Plans {
		if !p.Valid() {
			t.Errorf("%q should be valid", p)
		}
	}
	if Plan("platinum").Valid() {
		t.Error("unknown plan should be invalid")
	}
	if Plan("").Valid() {
		t.Error("empty plan should be invalid")
	}
}
