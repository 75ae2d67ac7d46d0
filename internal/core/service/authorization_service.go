package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/smsportal/console-gateway/internal/pkg/metrics"
	"github.com/smsportal/console-gateway/internal/core/domain"
	"github.com/smsportal/console-gateway/internal/core/ports"
)

// DecisionRecorder queues gate decisions for auditing.
type DecisionRecorder interface {
	Enqueue(decision domain.AuthorizationDecision)
}

type authorizationService struct {
	provider ports.AuthProvider
	policy   domain.RoutePolicy
	recorder DecisionRecorder
	log      zerolog.Logger
	now      func() time.Time
}

// NewAuthorizationService returns an AuthorizationService. recorder may be
// nil, in which case denials are not audited.
func NewAuthorizationService(
	provider ports.AuthProvider,
	policy domain.RoutePolicy,
	recorder DecisionRecorder,
	log zerolog.Logger,
) ports.AuthorizationService {
	return &authorizationService{
		provider: provider,
		policy:   policy,
		recorder: recorder,
		log:      log,
		now:      time.Now,
	}
}

// Authorize reads the session's auth status and runs the route gate.
func (s *authorizationService) Authorize(ctx context.Context, in ports.AuthorizeInput) (*ports.AuthorizationResult, error) {
	status, err := s.provider.Status(ctx, in.SessionID)
	if err != nil {
		return nil, fmt.Errorf("authorize %s: %w", in.Route, err)
	}

	state := domain.Authorize(domain.GateInput{AuthStatus: status, Route: in.Route}, s.policy)
	metrics.GateDecisionsTotal.WithLabelValues(string(state)).Inc()

	s.log.Debug().
		Str("session_id", in.SessionID).
		Str("route", in.Route).
		Str("state", string(state)).
		Msg("route gate evaluated")

	if state == domain.StateUnauthorized && s.recorder != nil {
		s.recorder.Enqueue(s.decision(in, status, state))
	}

	return &ports.AuthorizationResult{State: state, Status: status}, nil
}

func (s *authorizationService) decision(in ports.AuthorizeInput, status domain.AuthStatus, state domain.AuthorizationState) domain.AuthorizationDecision {
	d := domain.AuthorizationDecision{
		SessionID:        in.SessionID,
		Route:            in.Route,
		State:            state,
		Authenticated:    status.Authenticated,
		TokenFingerprint: TokenFingerprint(status.Token),
		DecidedAt:        s.now().UTC(),
	}
	if client := status.User.Client(); client != nil {
		d.AccountType = client.AccountType
	}
	return d
}
