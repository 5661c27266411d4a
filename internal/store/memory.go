// internal/store/memory.go
//
// In-memory registry of live game sessions.
// The hub keeps every session it has opened here so that navigating away from
// a game and back resumes it instead of starting over.
//
// Characteristics:
//   - Stores sessions keyed by their ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits; nothing is written to disk.
//   - Get and Delete return ErrNotFound for unknown IDs.

package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("store: session not found")

// Session is anything with a stable identifier.
type Session interface {
	ID() string
}

// Store defines the registry interface for sessions of type S.
type Store[S Session] interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s S) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (S, error)

	// Delete removes a session by ID.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory[S Session] struct {
	mu       sync.RWMutex // guards sessions map
	sessions map[string]S // keyed by S.ID()
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore[S Session]() Store[S] {
	return &memory[S]{sessions: make(map[string]S)}
}

// Save adds or updates the session in the map.
func (m *memory[S]) Save(ctx context.Context, s S) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = s
	return nil
}

// Get looks up a session by ID.
func (m *memory[S]) Get(ctx context.Context, id string) (S, error) {
	var zero S
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return zero, ErrNotFound
}

// Delete removes a session by ID.
func (m *memory[S]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}
