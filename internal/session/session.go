// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the authenticated identity for the lifetime of the
// process.
//
// The [Store] is created once at application start and injected into every
// component that needs the current user; there is deliberately no package
// level state. Sessions are never persisted: every process start begins with
// an empty store.
package session

import (
	"errors"
	"sync"

	"github.com/MKhiriev/go-chat-client/models"
)

// ErrNoSession is returned by [Store.Get] when no identity has been
// installed yet (or after a logout). Callers must treat it as "not logged
// in", never as a transport failure.
var ErrNoSession = errors.New("no active session")

// Store is the single holder of the current identity. The login flow is the
// only writer; everything else reads. Reads from the realtime goroutine make
// the mutex necessary even though all UI mutation happens on one thread.
type Store struct {
	mu   sync.RWMutex
	user *models.User
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{}
}

// Set installs user as the current identity, replacing any previous one.
// The change is immediately visible to all readers.
func (s *Store) Set(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

// Clear removes the current identity. Used by the logout flow.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// Get returns a copy of the current identity, or [ErrNoSession] when the
// store is empty.
func (s *Store) Get() (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, ErrNoSession
	}
	return *s.user, nil
}

// Active reports whether an identity is currently installed.
func (s *Store) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}
