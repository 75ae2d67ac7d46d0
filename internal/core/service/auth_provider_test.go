package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/smsportal/console-gateway/internal/core/domain"
)

func signedToken(t *testing.T, secret string, method jwt.SigningMethod, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(method, jwt.MapClaims{"sub": "42", "exp": exp.Unix()})
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func newFactory(id string, entries map[string]string) *stubFactory {
	return &stubFactory{stores: map[string]*stubStore{id: newStubStore(entries)}}
}

func TestSessionAuthProvider_Checking(t *testing.T) {
	f := newFactory("sid", map[string]string{
		domain.KeyAuthChecking: "1",
		domain.KeyAuthToken:    "T",
	})
	status, err := NewSessionAuthProvider(f, "", zerolog.Nop()).Status(context.Background(), "sid")
	if err != nil {
		t.Fatalf("Status error: %v", err)
	}
	if !status.Checking || status.Authenticated {
		t.Fatalf("unexpected status %+v", status)
	}
}

func TestSessionAuthProvider_SignedIn(t *testing.T) {
	f := newFactory("sid", map[string]string{
		domain.KeyUserSession: `{"message":{"token":"S","client":{"account_type":"root"}}}`,
	})
	status, err := NewSessionAuthProvider(f, "", zerolog.Nop()).Status(context.Background(), "sid")
	if err != nil {
		t.Fatalf("Status error: %v", err)
	}
	if !status.Authenticated || status.Token != "S" {
		t.Fatalf("unexpected status %+v", status)
	}
	if c := status.User.Client(); c == nil || c.AccountType != "root" {
		t.Fatalf("unexpected client %+v", c)
	}
	if f.stores["sid"].entries[domain.KeyAuthToken] != "S" {
		t.Fatalf("recovered token should be cached")
	}
}

func TestSessionAuthProvider_SignedOut(t *testing.T) {
	cases := map[string]map[string]string{
		"empty":             nil,
		"empty checking":    {domain.KeyAuthChecking: ""},
		"malformed session": {domain.KeyUserSession: "{"},
		"user without token": {
			domain.KeyUserSession: `{"data":{"username":"x"}}`,
		},
	}
	for name, entries := range cases {
		t.Run(name, func(t *testing.T) {
			status, err := NewSessionAuthProvider(newFactory("sid", entries), "", zerolog.Nop()).Status(context.Background(), "sid")
			if err != nil {
				t.Fatalf("Status error: %v", err)
			}
			if status.Authenticated || status.Checking {
				t.Fatalf("unexpected status %+v", status)
			}
		})
	}
}

func TestSessionAuthProvider_JWTValidation(t *testing.T) {
	const secret = "s3cret"
	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{"valid", signedToken(t, secret, jwt.SigningMethodHS256, time.Now().Add(time.Hour)), true},
		{"expired", signedToken(t, secret, jwt.SigningMethodHS256, time.Now().Add(-time.Hour)), false},
		{"wrong secret", signedToken(t, "other", jwt.SigningMethodHS256, time.Now().Add(time.Hour)), false},
		{"wrong algorithm", signedToken(t, secret, jwt.SigningMethodHS512, time.Now().Add(time.Hour)), false},
		{"opaque", "not-a-jwt", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFactory("sid", map[string]string{domain.KeyAuthToken: tc.token})
			status, err := NewSessionAuthProvider(f, secret, zerolog.Nop()).Status(context.Background(), "sid")
			if err != nil {
				t.Fatalf("Status error: %v", err)
			}
			if status.Authenticated != tc.want {
				t.Fatalf("Authenticated = %v, want %v", status.Authenticated, tc.want)
			}
		})
	}
}

func TestSessionAuthProvider_StoreError(t *testing.T) {
	f := newFactory("sid", nil)
	f.stores["sid"].getErr[domain.KeyAuthChecking] = errStoreDown

	if _, err := NewSessionAuthProvider(f, "", zerolog.Nop()).Status(context.Background(), "sid"); !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error, got %v", err)
	}
}
