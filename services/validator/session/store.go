// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package session

import "sync"

// Store is an in-memory session store for the HTTP surface.
//
// Sessions are inserted only after they reach a terminal state, so
// readers never observe a session that another goroutine is still
// mutating. Durable persistence is intentionally out of scope.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*ValidationSession
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*ValidationSession)}
}

// Put inserts a terminal session.
func (s *Store) Put(sess *ValidationSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

// Get returns the session with the given ID.
func (s *Store) Get(id string) (*ValidationSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Len returns the number of stored sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
