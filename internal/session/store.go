// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the bearer credential for the active ClownGPT
// session.
package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jeranaias/clowngpt-tui/internal/util"
)

// credentialFile is the fixed storage key for the persisted credential,
// relative to the user's home directory.
const credentialFile = ".clowngpt/credentials"

// =============================================================================
// SESSION STORE
// =============================================================================

// Store holds the bearer credential for the active session.
//
// The credential is read from disk once at construction and kept in memory;
// SetToken and Clear write through to disk. All methods are safe for
// concurrent use.
type Store struct {
	mu    sync.Mutex
	path  string
	token string
}

// NewStore creates a session store backed by the default credential path
// under the user's home directory, loading any persisted credential.
func NewStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewStoreWithPath(filepath.Join(home, credentialFile))
}

// NewStoreWithPath creates a session store backed by a custom credential
// path. A missing file means no credential; any other read error is
// returned.
func NewStoreWithPath(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	s.token = strings.TrimSpace(string(data))
	return s, nil
}

// Token returns the current credential, or the empty string when there is
// none.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken stores the credential and persists it to disk. The credential
// file is written with owner-only permissions.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = strings.TrimSpace(token)
	return util.AtomicWriteFile(s.path, []byte(s.token+"\n"), 0600)
}

// Clear removes the credential from memory and disk. A missing credential
// file is not an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// IsAuthenticated reports whether a credential is present. It says nothing
// about whether the server still accepts it.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}
