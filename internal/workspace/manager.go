// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package workspace maintains the client's in-memory view of the server.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jeranaias/clowngpt-tui/internal/api"
	"github.com/jeranaias/clowngpt-tui/internal/logger"
	"github.com/jeranaias/clowngpt-tui/internal/model"
)

// ErrProfileUnavailable marks a reload that failed before establishing the
// user's identity. A snapshot requires a valid identity, so callers treat
// this as the session being invalid: clear the credential and return to
// login, whatever the underlying cause.
var ErrProfileUnavailable = errors.New("load profile")

// =============================================================================
// MANAGER
// =============================================================================

// Manager owns the authoritative workspace snapshot for the active session.
//
// Concurrent reloads are neither deduplicated nor cancelled, but each reload
// carries a sequence number taken when it starts, and a completion whose
// sequence is below the last applied one is discarded. A slow reload that
// finishes after a newer one can therefore never roll the snapshot back.
type Manager struct {
	client *api.Client

	mu         sync.Mutex
	current    *Snapshot
	appliedSeq uint64

	nextSeq atomic.Uint64
}

// NewManager creates a workspace manager over the given gateway client. The
// snapshot is empty until the first successful Reload.
func NewManager(client *api.Client) *Manager {
	return &Manager{client: client}
}

// Snapshot returns the most recently published snapshot, or nil before the
// first successful reload. The returned value is never mutated.
func (m *Manager) Snapshot() *Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Reload re-fetches profile, models, projects, chats, and plan, and
// publishes them as one new snapshot.
//
// Profile, models, projects, and chats are fetched sequentially and any
// failure fails the whole reload: a snapshot without a valid identity or a
// complete chat list is worse than the previous one. The plan fetch is
// best-effort and falls back to "free"; plan retrieval must never block
// workspace availability.
//
// On success Reload returns the snapshot it published, or the newer one
// already in place when this reload lost the race.
func (m *Manager) Reload(ctx context.Context) (*Snapshot, error) {
	seq := m.nextSeq.Add(1)

	profile, err := m.client.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProfileUnavailable, err)
	}

	models, err := m.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("load models: %w", err)
	}

	projects, err := m.client.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}

	chats, err := m.client.ListChats(ctx)
	if err != nil {
		return nil, fmt.Errorf("load chats: %w", err)
	}

	plan, err := m.client.GetPlan(ctx)
	if err != nil || !plan.Valid() {
		plan = model.PlanFree
	}

	return m.publish(seq, &Snapshot{
		Profile:  profile,
		Models:   models,
		Projects: projects,
		Chats:    chats,
		Plan:     plan,
	}), nil
}

// publish installs snap as the current snapshot unless a reload with a
// higher sequence number already completed, in which case the newer snapshot
// stays and is returned.
func (m *Manager) publish(seq uint64, snap *Snapshot) *Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if seq < m.appliedSeq {
		logger.L().Debug("discarding stale workspace reload", "seq", seq, "applied", m.appliedSeq)
		return m.current
	}
	m.appliedSeq = seq
	m.current = snap
	return snap
}
