package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/smsportal/console-gateway/internal/pkg/metrics"
	"github.com/smsportal/console-gateway/internal/core/domain"
	"github.com/smsportal/console-gateway/internal/core/ports"
)

// SessionReader reads typed session values out of one browser's store.
type SessionReader struct {
	store ports.SessionStore
	log   zerolog.Logger
}

// NewSessionReader returns a reader over store. A nil store means there is
// no persistence medium; Token then always reports no token.
func NewSessionReader(store ports.SessionStore, log zerolog.Logger) *SessionReader {
	return &SessionReader{store: store, log: log}
}

// Token returns the auth token. It prefers "authToken" and falls back to
// message.token inside "user-session", caching the recovered token under
// "authToken". It never fails: any problem reads as "no token".
func (r *SessionReader) Token(ctx context.Context) (string, bool) {
	if r.store == nil {
		return "", false
	}

	tok, ok, err := r.store.Get(ctx, domain.KeyAuthToken)
	if err != nil {
		r.log.Warn().Err(err).Msg("read auth token failed")
		return "", false
	}
	if ok && tok != "" {
		return tok, true
	}

	raw, ok, err := r.store.Get(ctx, domain.KeyUserSession)
	if err != nil {
		r.log.Warn().Err(err).Msg("read user session failed")
		return "", false
	}
	if !ok {
		return "", false
	}

	user, err := domain.DecodeUserSession(raw)
	if err != nil {
		r.log.Debug().Err(err).Msg("ignoring malformed user session while reading token")
		return "", false
	}
	tok, ok = user.Token()
	if !ok {
		return "", false
	}

	if err := r.store.Set(ctx, domain.KeyAuthToken, tok); err != nil {
		r.log.Warn().Err(err).Msg("failed to cache recovered auth token")
	} else {
		metrics.TokenRecoveriesTotal.Inc()
	}
	return tok, true
}

// Snapshot reads the token and user session as stored, without the token
// fallback. A corrupted "user-session" is reported as ErrMalformedSession
// so the caller can decide to clear the store.
func (r *SessionReader) Snapshot(ctx context.Context) (*domain.AuthSnapshot, error) {
	if r.store == nil {
		return nil, fmt.Errorf("session snapshot: %w", domain.ErrStoreUnavailable)
	}

	var token *string
	tok, ok, err := r.store.Get(ctx, domain.KeyAuthToken)
	if err != nil {
		return nil, fmt.Errorf("session snapshot: read token: %w", err)
	}
	if ok {
		token = &tok
	}

	raw, _, err := r.store.Get(ctx, domain.KeyUserSession)
	if err != nil {
		return nil, fmt.Errorf("session snapshot: read user session: %w", err)
	}
	user, err := domain.DecodeUserSession(raw)
	if err != nil {
		return nil, fmt.Errorf("session snapshot: %w", err)
	}

	return domain.NewAuthSnapshot(token, user), nil
}
