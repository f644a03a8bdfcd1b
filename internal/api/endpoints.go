// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the ClownGPT backend.
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jeranaias/clowngpt-tui/internal/model"
)

// MessageFetchLimit bounds how many messages are hydrated when a chat is
// opened. The transcript is not paginated beyond this.
const MessageFetchLimit = 200

// =============================================================================
// REQUEST / RESPONSE PAYLOADS
// =============================================================================

// TokenResponse is the body returned by login and register.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the registration form payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProjectCreate is the payload for creating a project.
type ProjectCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Visibility  string `json:"visibility"`
}

// ChatCreate is the payload for creating a chat.
type ChatCreate struct {
	Title     string   `json:"title"`
	ModelName string   `json:"model_name"`
	ProjectID model.ID `json:"project_id"`
}

// ChatUpdate is the payload for patching a chat. Nil fields are omitted, so
// a title patch never clobbers the model and vice versa.
type ChatUpdate struct {
	Title     *string `json:"title,omitempty"`
	ModelName *string `json:"model_name,omitempty"`
}

// MessageCreate is the payload for appending a message to a chat.
type MessageCreate struct {
	Content string `json:"content"`
}

// PlanPayload is the body for both plan retrieval and plan updates.
type PlanPayload struct {
	Plan model.Plan `json:"plan"`
}

// =============================================================================
// AUTH
// =============================================================================

// Login exchanges credentials for a bearer token. Anonymous endpoint; the
// caller stores the returned token in the session store.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp TokenResponse
	err := c.send(ctx, http.MethodPost, "/api/auth/login", LoginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Register creates an account and returns a bearer token. Anonymous
// endpoint.
func (c *Client) Register(ctx context.Context, username, email, password string) (string, error) {
	var resp TokenResponse
	err := c.send(ctx, http.MethodPost, "/api/auth/register", RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (model.Profile, error) {
	var p model.Profile
	err := c.get(ctx, "/api/auth/me", &p)
	return p, err
}

// =============================================================================
// MODELS
// =============================================================================

// ListModels fetches the catalog of selectable backend models, in server
// order. The first entry is the default selection.
func (c *Client) ListModels(ctx context.Context) ([]model.Model, error) {
	var models []model.Model
	err := c.get(ctx, "/api/models", &models)
	return models, err
}

// =============================================================================
// PROJECTS
// =============================================================================

// ListProjects fetches the user's projects, most recently updated first.
func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := c.get(ctx, "/api/projects", &projects)
	return projects, err
}

// CreateProject creates a project and returns the persisted record.
func (c *Client) CreateProject(ctx context.Context, req ProjectCreate) (model.Project, error) {
	var p model.Project
	err := c.send(ctx, http.MethodPost, "/api/projects", req, &p)
	return p, err
}

// =============================================================================
// CHATS
// =============================================================================

// ListChats fetches the user's chats, most recently updated first.
func (c *Client) ListChats(ctx context.Context) ([]model.Chat, error) {
	var chats []model.Chat
	err := c.get(ctx, "/api/chats", &chats)
	return chats, err
}

// CreateChat creates a chat and returns the persisted record with its
// server-assigned id.
func (c *Client) CreateChat(ctx context.Context, req ChatCreate) (model.Chat, error) {
	var chat model.Chat
	err := c.send(ctx, http.MethodPost, "/api/chats", req, &chat)
	return chat, err
}

// UpdateChat patches a chat's title and/or model and returns the updated
// record.
func (c *Client) UpdateChat(ctx context.Context, id model.ID, req ChatUpdate) (model.Chat, error) {
	var chat model.Chat
	err := c.send(ctx, http.MethodPatch, "/api/chats/"+url.PathEscape(id.String()), req, &chat)
	return chat, err
}

// =============================================================================
// MESSAGES
// =============================================================================

// ListMessages fetches up to MessageFetchLimit messages for a chat, in
// server-assigned order. The client never reorders them.
func (c *Client) ListMessages(ctx context.Context, chatID model.ID) ([]model.Message, error) {
	var messages []model.Message
	path := fmt.Sprintf("/api/chats/%s/messages?limit=%d", url.PathEscape(chatID.String()), MessageFetchLimit)
	err := c.get(ctx, path, &messages)
	return messages, err
}

// CreateMessage appends a user message to a chat. The server may return
// more than one created message (the user message plus a synthesized
// assistant reply); all are returned in response order.
func (c *Client) CreateMessage(ctx context.Context, chatID model.ID, content string) ([]model.Message, error) {
	var messages []model.Message
	path := "/api/chats/" + url.PathEscape(chatID.String()) + "/messages"
	err := c.send(ctx, http.MethodPost, path, MessageCreate{Content: content}, &messages)
	return messages, err
}

// =============================================================================
// PLAN
// =============================================================================

// GetPlan fetches the organization's current plan.
func (c *Client) GetPlan(ctx context.Context) (model.Plan, error) {
	var resp PlanPayload
	err := c.get(ctx, "/api/org/plan", &resp)
	return resp.Plan, err
}

// UpdatePlan switches the organization's plan and returns the stored value.
func (c *Client) UpdatePlan(ctx context.Context, plan model.Plan) (model.Plan, error) {
	var resp PlanPayload
	err := c.send(ctx, http.MethodPost, "/api/org/plan", PlanPayload{Plan: plan}, &resp)
	return resp.Plan, err
}

// =============================================================================
// HEALTH
// =============================================================================

// Health checks that the backend is reachable. Anonymous endpoint.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.Request(ctx, http.MethodGet, "/health", nil)
	return err
}
