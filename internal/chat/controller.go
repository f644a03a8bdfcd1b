// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat drives one open conversation through its lifecycle.
package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/jeranaias/clowngpt-tui/internal/api"
	"github.com/jeranaias/clowngpt-tui/internal/model"
	"github.com/jeranaias/clowngpt-tui/internal/workspace"
)

// ErrChatMissing is returned for operations against a conversation that
// resolved to NotFound.
var ErrChatMissing = errors.New("chat not found")

// =============================================================================
// CONTROLLER STATE
// =============================================================================

// State is the lifecycle phase of the open conversation.
type State int

const (
	StateDraft     State = iota // Local only, nothing persisted yet
	StateLoading                // Resolving an existing id
	StatePersisted              // Bound to a server-side chat
	StateNotFound               // Id unknown to the server; terminal
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateDraft:
		return "draft"
	case StateLoading:
		return "loading"
	case StatePersisted:
		return "persisted"
	case StateNotFound:
		return "not-found"
	}
	return "unknown"
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller owns one open conversation: its draft-or-persisted phase, the
// selected model, and the message buffer. Everything it learns from the
// server goes through the gateway, and every mutation is followed by a
// workspace reload so the snapshot stays consistent.
//
// Controller is not safe for concurrent use; it belongs to a single UI flow.
type Controller struct {
	client    *api.Client
	workspace *workspace.Manager

	state       State
	chatID      model.ID
	title       string
	modelName   string
	projectHint model.ID
	messages    []model.Message
}

// NewDraft opens a fresh conversation. The model selection is seeded from
// the catalog's first entry, falling back to fallbackModel when the catalog
// is empty; projectHint (optional) links the chat to a project once it is
// created.
func NewDraft(client *api.Client, ws *workspace.Manager, projectHint model.ID, fallbackModel string) *Controller {
	c := &Controller{
		client:      client,
		workspace:   ws,
		state:       StateDraft,
		title:       model.DefaultChatTitle,
		modelName:   fallbackModel,
		projectHint: projectHint,
	}
	if snap := ws.Snapshot(); snap != nil {
		if def, ok := snap.DefaultModel(); ok {
			c.modelName = def.Name
		}
	}
	return c
}

// Open resolves an existing chat id against the workspace snapshot and
// hydrates its transcript.
//
// An id missing from the chat list resolves to NotFound with an empty
// buffer; no further fetches are attempted for that conversation. A
// transcript fetch failure also degrades to NotFound rather than failing
// the open.
func Open(ctx context.Context, client *api.Client, ws *workspace.Manager, chatID model.ID) *Controller {
	c := &Controller{
		client:    client,
		workspace: ws,
		state:     StateLoading,
		chatID:    chatID,
	}

	snap := ws.Snapshot()
	if snap == nil {
		var err error
		if snap, err = ws.Reload(ctx); err != nil {
			c.state = StateNotFound
			return c
		}
	}

	found, ok := snap.Chat(chatID)
	if !ok {
		c.state = StateNotFound
		return c
	}

	c.title = found.Title
	c.modelName = found.ModelName
	if c.modelName == "" {
		if def, ok := snap.DefaultModel(); ok {
			c.modelName = def.Name
		}
	}

	msgs, err := client.ListMessages(ctx, chatID)
	if err != nil {
		c.state = StateNotFound
		c.messages = nil
		return c
	}

	c.state = StatePersisted
	c.messages = msgs
	return c
}

// State returns the conversation's lifecycle phase.
func (c *Controller) State() State { return c.state }

// ChatID returns the server-assigned id, empty while the conversation is a
// draft. After the first send the UI uses this to replace its location, so
// a reopen addresses the persisted chat instead of minting another draft.
func (c *Controller) ChatID() model.ID { return c.chatID }

// Title returns the conversation's current title.
func (c *Controller) Title() string { return c.title }

// ModelName returns the currently selected model.
func (c *Controller) ModelName() string { return c.modelName }

// ProjectID returns the project the conversation belongs to, or the draft's
// project hint.
func (c *Controller) ProjectID() model.ID {
	if c.state == StatePersisted {
		if snap := c.workspace.Snapshot(); snap != nil {
			if chat, ok := snap.Chat(c.chatID); ok {
				return chat.ProjectID
			}
		}
	}
	return c.projectHint
}

// Messages returns the transcript buffer in server order.
func (c *Controller) Messages() []model.Message { return c.messages }

// =============================================================================
// SENDING
// =============================================================================

// Send submits one user message.
//
// On a draft this first persists the chat (default title, selected model,
// project hint) and rebinds the controller to the new id. The server's
// created messages - the user message plus any synthesized assistant reply -
// are appended to the buffer in response order. The first send on a chat
// still carrying the default title derives a real title from the text; a
// failure to patch the title is swallowed and the local title updated
// regardless, because the conversation must not fail over cosmetics.
func (c *Controller) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	switch c.state {
	case StateNotFound, StateLoading:
		return ErrChatMissing
	}

	if c.state == StateDraft {
		if err := c.persistDraft(ctx); err != nil {
			return err
		}
	}

	wasUntitled := c.title == model.DefaultChatTitle

	created, err := c.client.CreateMessage(ctx, c.chatID, text)
	if err != nil {
		return err
	}
	c.messages = append(c.messages, created...)

	if wasUntitled {
		c.retitle(ctx, text)
	}

	_, err = c.workspace.Reload(ctx)
	return err
}

// persistDraft creates the server-side chat for a draft and rebinds the
// controller to its id. Transitioning to Persisted before the reload makes
// the send idempotent: even with a slow reload there is exactly one chat.
func (c *Controller) persistDraft(ctx context.Context) error {
	created, err := c.client.CreateChat(ctx, api.ChatCreate{
		Title:     model.DefaultChatTitle,
		ModelName: c.modelName,
		ProjectID: c.projectHint,
	})
	if err != nil {
		return err
	}

	c.state = StatePersisted
	c.chatID = created.ID
	c.title = created.Title

	_, err = c.workspace.Reload(ctx)
	return err
}

// retitle derives a title from the first sent text and patches it
// server-side, updating the local title optimistically either way.
func (c *Controller) retitle(ctx context.Context, text string) {
	title := AutoTitle(text)
	if title == model.DefaultChatTitle {
		return
	}

	// Title patch failures are cosmetic; swallow them.
	_, _ = c.client.UpdateChat(ctx, c.chatID, api.ChatUpdate{Title: &title})
	c.title = title
}

// =============================================================================
// MODEL REASSIGNMENT
// =============================================================================

// SetModel switches the conversation's model. On a persisted chat the
// change is patched immediately and the workspace reloaded; on a draft only
// the local selection changes, since nothing exists server-side yet.
func (c *Controller) SetModel(ctx context.Context, name string) error {
	switch c.state {
	case StateNotFound, StateLoading:
		return ErrChatMissing
	case StateDraft:
		c.modelName = name
		return nil
	}

	if _, err := c.client.UpdateChat(ctx, c.chatID, api.ChatUpdate{ModelName: &name}); err != nil {
		return err
	}
	c.modelName = name

	_, err := c.workspace.Reload(ctx)
	return err
}
