package service

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/smsportal/console-gateway/internal/core/domain"
	"github.com/smsportal/console-gateway/internal/core/ports"
)

// SessionAuthProvider derives the auth status of a browser session from its
// stored entries.
type SessionAuthProvider struct {
	stores    ports.SessionStoreFactory
	jwtSecret string
	log       zerolog.Logger
}

// NewSessionAuthProvider returns a provider over stores. When jwtSecret is
// empty any non-empty token counts as signed in; otherwise the token must be
// a valid HS256 JWT signed with jwtSecret.
func NewSessionAuthProvider(stores ports.SessionStoreFactory, jwtSecret string, log zerolog.Logger) *SessionAuthProvider {
	return &SessionAuthProvider{stores: stores, jwtSecret: jwtSecret, log: log}
}

// Status never fails on missing or malformed identity data; only store
// errors are returned.
func (p *SessionAuthProvider) Status(ctx context.Context, sessionID string) (domain.AuthStatus, error) {
	store := p.stores.ForSession(sessionID)

	checking, ok, err := store.Get(ctx, domain.KeyAuthChecking)
	if err != nil {
		return domain.AuthStatus{}, fmt.Errorf("auth status: %w", err)
	}
	if ok && checking != "" {
		return domain.AuthStatus{Checking: true}, nil
	}

	reader := NewSessionReader(store, p.log)
	token, hasToken := reader.Token(ctx)

	raw, _, err := store.Get(ctx, domain.KeyUserSession)
	if err != nil {
		return domain.AuthStatus{}, fmt.Errorf("auth status: %w", err)
	}
	user, err := domain.DecodeUserSession(raw)
	if err != nil {
		p.log.Debug().Err(err).Str("session_id", sessionID).Msg("treating malformed user session as signed out")
		user = nil
	}

	return domain.AuthStatus{
		Authenticated: hasToken && p.tokenValid(token),
		User:          user,
		Token:         token,
	}, nil
}

func (p *SessionAuthProvider) tokenValid(token string) bool {
	if p.jwtSecret == "" {
		return true
	}
	tkn, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(p.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		p.log.Debug().Err(err).Msg("stored token rejected")
		return false
	}
	return true
}
