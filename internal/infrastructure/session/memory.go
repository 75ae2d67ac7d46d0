package session

import (
	"context"
	"sync"
	"time"

	"github.com/smsportal/console-gateway/internal/core/ports"
)

// MemoryBackend keeps session entries in process memory. Entries are lost on
// restart; it backs tests and single-instance development setups.
type MemoryBackend struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{sessions: make(map[string]map[string]string)}
}

// ForSession returns the store of one browser session.
func (b *MemoryBackend) ForSession(sessionID string) ports.SessionStore {
	return &memoryStore{backend: b, sessionID: sessionID}
}

// Clear drops every entry of a browser session.
func (b *MemoryBackend) Clear(_ context.Context, sessionID string) error {
	defer observe(BackendMemory, "clear", time.Now(), nil)

	b.mu.Lock()
	delete(b.sessions, sessionID)
	b.mu.Unlock()
	return nil
}

type memoryStore struct {
	backend   *MemoryBackend
	sessionID string
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	defer observe(BackendMemory, "get", time.Now(), nil)

	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()
	v, ok := s.backend.sessions[s.sessionID][key]
	return v, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	defer observe(BackendMemory, "set", time.Now(), nil)

	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	entries, ok := s.backend.sessions[s.sessionID]
	if !ok {
		entries = make(map[string]string)
		s.backend.sessions[s.sessionID] = entries
	}
	entries[key] = value
	return nil
}

func (s *memoryStore) Remove(_ context.Context, key string) error {
	defer observe(BackendMemory, "remove", time.Now(), nil)

	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	entries, ok := s.backend.sessions[s.sessionID]
	if !ok {
		return nil
	}
	delete(entries, key)
	if len(entries) == 0 {
		delete(s.backend.sessions, s.sessionID)
	}
	return nil
}
