// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package workspace maintains the client's in-memory view of the server.
package workspace

import "github.com/jeranaias/clowngpt-tui/internal/model"

// =============================================================================
// SNAPSHOT
// =============================================================================

// Snapshot is one complete, immutable view of the workspace. Readers always
// hold either the previous complete snapshot or the next one, never a
// half-updated mix; Reload replaces the whole value on success.
type Snapshot struct {
	Profile  model.Profile
	Models   []model.Model
	Projects []model.Project
	Chats    []model.Chat
	Plan     model.Plan
}

// =============================================================================
// DERIVED VIEWS
// =============================================================================

// ChatsWithoutProject returns the chats not assigned to any project, in
// snapshot order.
func (s *Snapshot) ChatsWithoutProject() []model.Chat {
	out := make([]model.Chat, 0, len(s.Chats))
	for _, c := range s.Chats {
		if c.Unassigned() {
			out = append(out, c)
		}
	}
	return out
}

// ChatsForProject returns the chats assigned to the given project, in
// snapshot order.
func (s *Snapshot) ChatsForProject(projectID model.ID) []model.Chat {
	out := make([]model.Chat, 0, len(s.Chats))
	for _, c := range s.Chats {
		if c.InProject(projectID) {
			out = append(out, c)
		}
	}
	return out
}

// ProjectChatCount returns how many chats belong to the given project.
func (s *Snapshot) ProjectChatCount(projectID model.ID) int {
	n := 0
	for _, c := range s.Chats {
		if c.InProject(projectID) {
			n++
		}
	}
	return n
}

// Project looks up a project by id.
func (s *Snapshot) Project(id model.ID) (model.Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return model.Project{}, false
}

// Chat looks up a chat by id.
func (s *Snapshot) Chat(id model.ID) (model.Chat, bool) {
	for _, c := range s.Chats {
		if c.ID == id {
			return c, true
		}
	}
	return model.Chat{}, false
}

// DefaultModel returns the first catalog entry, the default selection when
// the user has not chosen a model.
func (s *Snapshot) DefaultModel() (model.Model, bool) {
	if len(s.Models) == 0 {
		return model.Model{}, false
	}
	return s.Models[0], true
}
