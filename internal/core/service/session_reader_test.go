package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/smsportal/console-gateway/internal/core/domain"
)

func TestSessionReader_Token_PrefersAuthToken(t *testing.T) {
	store := newStubStore(map[string]string{
		domain.KeyAuthToken:   "A",
		domain.KeyUserSession: `{"message":{"token":"B"}}`,
	})
	r := NewSessionReader(store, zerolog.Nop())

	tok, ok := r.Token(context.Background())
	if !ok || tok != "A" {
		t.Fatalf("Token() = %q, %v; want A", tok, ok)
	}
	if store.sets != 0 {
		t.Fatalf("expected no write-back, got %d sets", store.sets)
	}
}

func TestSessionReader_Token_RecoversFromUserSession(t *testing.T) {
	store := newStubStore(map[string]string{
		domain.KeyUserSession: `{"message":{"token":"S"}}`,
	})
	r := NewSessionReader(store, zerolog.Nop())

	tok, ok := r.Token(context.Background())
	if !ok || tok != "S" {
		t.Fatalf("Token() = %q, %v; want S", tok, ok)
	}
	if store.entries[domain.KeyAuthToken] != "S" {
		t.Fatalf("recovered token not cached, entries=%v", store.entries)
	}

	// Second read is served from the cached key.
	if tok, _ := r.Token(context.Background()); tok != "S" {
		t.Fatalf("second Token() = %q", tok)
	}
	if store.sets != 1 {
		t.Fatalf("expected a single write-back, got %d", store.sets)
	}
}

func TestSessionReader_Token_EmptyAuthTokenFallsBack(t *testing.T) {
	store := newStubStore(map[string]string{
		domain.KeyAuthToken:   "",
		domain.KeyUserSession: `{"message":{"token":"S"}}`,
	})
	tok, ok := NewSessionReader(store, zerolog.Nop()).Token(context.Background())
	if !ok || tok != "S" {
		t.Fatalf("Token() = %q, %v; want S", tok, ok)
	}
}

func TestSessionReader_Token_Absent(t *testing.T) {
	cases := map[string]map[string]string{
		"empty store":       nil,
		"malformed session": {domain.KeyUserSession: "{"},
		"no message token":  {domain.KeyUserSession: `{"data":{"username":"x"}}`},
		"empty token":       {domain.KeyUserSession: `{"message":{"token":""}}`},
		"non-string token":  {domain.KeyUserSession: `{"message":{"token":7}}`},
	}
	for name, entries := range cases {
		t.Run(name, func(t *testing.T) {
			store := newStubStore(entries)
			tok, ok := NewSessionReader(store, zerolog.Nop()).Token(context.Background())
			if ok || tok != "" {
				t.Fatalf("Token() = %q, %v; want absent", tok, ok)
			}
			if _, cached := store.entries[domain.KeyAuthToken]; cached {
				t.Fatalf("nothing should be cached")
			}
		})
	}
}

func TestSessionReader_Token_NoStore(t *testing.T) {
	if tok, ok := NewSessionReader(nil, zerolog.Nop()).Token(context.Background()); ok || tok != "" {
		t.Fatalf("Token() = %q, %v; want absent", tok, ok)
	}
}

func TestSessionReader_Token_StoreErrorsReadAsAbsent(t *testing.T) {
	store := newStubStore(map[string]string{domain.KeyUserSession: `{"message":{"token":"S"}}`})
	store.getErr[domain.KeyAuthToken] = errStoreDown

	if _, ok := NewSessionReader(store, zerolog.Nop()).Token(context.Background()); ok {
		t.Fatalf("expected no token when the store fails")
	}
}

func TestSessionReader_Token_WriteBackFailureIgnored(t *testing.T) {
	store := newStubStore(map[string]string{domain.KeyUserSession: `{"message":{"token":"S"}}`})
	store.setErr = errStoreDown

	tok, ok := NewSessionReader(store, zerolog.Nop()).Token(context.Background())
	if !ok || tok != "S" {
		t.Fatalf("Token() = %q, %v; want S", tok, ok)
	}
}

func TestSessionReader_Snapshot(t *testing.T) {
	store := newStubStore(map[string]string{
		domain.KeyAuthToken:   "T",
		domain.KeyUserSession: `{"data":{"role":4,"username":"Jane","avatar":"a.png"}}`,
	})

	snap, err := NewSessionReader(store, zerolog.Nop()).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}
	if snap.Token == nil || *snap.Token != "T" {
		t.Fatalf("unexpected token %v", snap.Token)
	}
	if snap.RoleID.Number() != 4 {
		t.Fatalf("unexpected role %v", snap.RoleID.Raw())
	}
	if snap.DisplayName == nil || *snap.DisplayName != "Jane" {
		t.Fatalf("unexpected display name %v", snap.DisplayName)
	}
	if snap.AvatarURL == nil || *snap.AvatarURL != "a.png" {
		t.Fatalf("unexpected avatar %v", snap.AvatarURL)
	}
}

func TestSessionReader_Snapshot_NoFallback(t *testing.T) {
	store := newStubStore(map[string]string{domain.KeyUserSession: `{"message":{"token":"S"}}`})

	snap, err := NewSessionReader(store, zerolog.Nop()).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}
	if snap.Token != nil {
		t.Fatalf("Snapshot must not recover the token, got %q", *snap.Token)
	}
	if store.sets != 0 {
		t.Fatalf("Snapshot must not write")
	}
}

func TestSessionReader_Snapshot_Empty(t *testing.T) {
	snap, err := NewSessionReader(newStubStore(nil), zerolog.Nop()).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}
	if snap.Token != nil || snap.User != nil || snap.DisplayName != nil || snap.AvatarURL != nil || snap.RoleID.Present() {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestSessionReader_Snapshot_Errors(t *testing.T) {
	malformed := newStubStore(map[string]string{domain.KeyUserSession: "not json"})
	if _, err := NewSessionReader(malformed, zerolog.Nop()).Snapshot(context.Background()); !errors.Is(err, domain.ErrMalformedSession) {
		t.Fatalf("expected ErrMalformedSession, got %v", err)
	}

	if _, err := NewSessionReader(nil, zerolog.Nop()).Snapshot(context.Background()); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}

	failing := newStubStore(nil)
	failing.getErr[domain.KeyUserSession] = errStoreDown
	if _, err := NewSessionReader(failing, zerolog.Nop()).Snapshot(context.Background()); !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error, got %v", err)
	}
}
