package service

import (
	"context"
	"errors"
	"sync"

	"github.com/smsportal/console-gateway/internal/core/domain"
	"github.com/smsportal/console-gateway/internal/core/ports"
)

var errStoreDown = errors.New("store down")

type stubStore struct {
	entries map[string]string
	getErr  map[string]error
	setErr  error
	sets    int
}

func newStubStore(entries map[string]string) *stubStore {
	if entries == nil {
		entries = make(map[string]string)
	}
	return &stubStore{entries: entries, getErr: make(map[string]error)}
}

func (s *stubStore) Get(_ context.Context, key string) (string, bool, error) {
	if err := s.getErr[key]; err != nil {
		return "", false, err
	}
	v, ok := s.entries[key]
	return v, ok, nil
}

func (s *stubStore) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.sets++
	s.entries[key] = value
	return nil
}

func (s *stubStore) Remove(_ context.Context, key string) error {
	delete(s.entries, key)
	return nil
}

type stubFactory struct {
	stores map[string]*stubStore
}

func (f *stubFactory) ForSession(id string) ports.SessionStore {
	if s, ok := f.stores[id]; ok {
		return s
	}
	s := newStubStore(nil)
	f.stores[id] = s
	return s
}

func (f *stubFactory) Clear(_ context.Context, id string) error {
	delete(f.stores, id)
	return nil
}

type stubProvider struct {
	status domain.AuthStatus
	err    error
}

func (p stubProvider) Status(context.Context, string) (domain.AuthStatus, error) {
	return p.status, p.err
}

type stubRecorder struct {
	mu        sync.Mutex
	decisions []domain.AuthorizationDecision
}

func (r *stubRecorder) Enqueue(d domain.AuthorizationDecision) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decisions = append(r.decisions, d)
}

type stubDecisionRepo struct {
	inserted []domain.AuthorizationDecision
	err      error
}

func (r *stubDecisionRepo) InsertDecision(_ context.Context, d *domain.AuthorizationDecision) error {
	if r.err != nil {
		return r.err
	}
	r.inserted = append(r.inserted, *d)
	return nil
}

type stubDedup struct {
	seen     map[string]bool
	checkErr error
	marked   int
}

func newStubDedup() *stubDedup { return &stubDedup{seen: make(map[string]bool)} }

func dedupKey(d domain.AuthorizationDecision) string {
	return d.SessionID + "|" + string(d.State) + "|" + d.Route
}

func (s *stubDedup) IsDuplicate(_ context.Context, d domain.AuthorizationDecision) (bool, error) {
	if s.checkErr != nil {
		return false, s.checkErr
	}
	return s.seen[dedupKey(d)], nil
}

func (s *stubDedup) Mark(_ context.Context, d domain.AuthorizationDecision) error {
	s.marked++
	s.seen[dedupKey(d)] = true
	return nil
}
