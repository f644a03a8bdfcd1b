// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures exchanged with the ClownGPT
// backend.
package model

import "time"

// DefaultChatTitle is the title given to a chat before it is auto-titled
// from its first message.
const DefaultChatTitle = "New chat"

// =============================================================================
// PROFILE
// =============================================================================

// Profile is the authenticated user's identity as reported by the server.
// Read-only from the client's perspective.
type Profile struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// =============================================================================
// MODEL CATALOG
// =============================================================================

// Model is one selectable backend model from the catalog.
type Model struct {
	ID            ID     `json:"id"`
	Name          string `json:"name"`
	IsActive      bool   `json:"is_active"`
	ContextWindow int    `json:"context_window"`
}

// =============================================================================
// PROJECT
// =============================================================================

// Project groups related chats. The client reads projects and counts
// membership; creation goes through the gateway, edits are server-side.
type Project struct {
	ID             ID        `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Visibility     string    `json:"visibility"`
	OwnerUserID    ID        `json:"owner_user_id"`
	OrganizationID ID        `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// =============================================================================
// CHAT
// =============================================================================

// Chat is a persisted conversation. A draft conversation has no Chat value;
// it exists only in the controller until the first message is sent.
type Chat struct {
	ID        ID        `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Pinned    bool      `json:"pinned"`
	ModelID   ID        `json:"model_id"`
	ModelName string    `json:"model_name"`
	ProjectID ID        `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Unassigned reports whether the chat belongs to no project.
func (c Chat) Unassigned() bool {
	return c.ProjectID.IsZero()
}

// InProject reports whether the chat belongs to the given project.
func (c Chat) InProject(projectID ID) bool {
	return !c.ProjectID.IsZero() && c.ProjectID == projectID
}

// =============================================================================
// MESSAGE
// =============================================================================

// SenderType identifies who produced a message.
type SenderType string

const (
	SenderUser      SenderType = "user"
	SenderAssistant SenderType = "assistant"
)

// Message is one entry in a chat transcript. Append-only per chat; ordering
// is server-assigned and the client never reorders.
type Message struct {
	ID           ID         `json:"id"`
	ChatID       ID         `json:"chat_id"`
	SenderType   SenderType `json:"sender_type"`
	SenderUserID ID         `json:"sender_user_id"`
	Content      string     `json:"content"`
	CreatedAt    time.Time  `json:"created_at"`
}

// IsUser reports whether the message was sent by the user.
func (m Message) IsUser() bool {
	return m.SenderType == SenderUser
}

// =============================================================================
// PLAN
// =============================================================================

// Plan is the organization's billing plan name.
type Plan string

const (
	PlanFree       Plan = "free"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

// Plans lists the selectable plans in display order.
var Plans = []Plan{PlanFree, PlanPro, PlanEnterprise}

// Valid reports whether the plan is one of the known plan names.
func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanPro, PlanEnterprise:
		return true
	}
	return false
}
