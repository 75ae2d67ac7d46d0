package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/smsportal/console-gateway/internal/pkg/metrics"
	"github.com/smsportal/console-gateway/internal/core/domain"
	"github.com/smsportal/console-gateway/internal/core/ports"
)

// DecisionDedup suppresses repeated identical decisions within a window (Redis).
type DecisionDedup interface {
	IsDuplicate(ctx context.Context, d domain.AuthorizationDecision) (bool, error)
	Mark(ctx context.Context, d domain.AuthorizationDecision) error
}

type auditService struct {
	repo  ports.DecisionRepository
	dedup DecisionDedup
	log   zerolog.Logger
}

// NewAuditService returns an AuditService. dedup may be nil.
func NewAuditService(repo ports.DecisionRepository, dedup DecisionDedup, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, dedup: dedup, log: log}
}

// Record de-duplicates and persists a single gate decision.
func (s *auditService) Record(ctx context.Context, d domain.AuthorizationDecision) error {
	// 1. Repeated denials of the same route are stored once per window.
	if s.dedup != nil {
		isDup, err := s.dedup.IsDuplicate(ctx, d)
		if err != nil {
			s.log.Warn().Err(err).Str("session_id", d.SessionID).Msg("decision dedup check failed, recording anyway")
		} else if isDup {
			metrics.AuditDedupTotal.WithLabelValues("hit").Inc()
			return nil
		}
		metrics.AuditDedupTotal.WithLabelValues("miss").Inc()
	}

	// 2. Persist.
	if err := s.repo.InsertDecision(ctx, &d); err != nil {
		metrics.AuditErrorsTotal.Inc()
		return fmt.Errorf("record decision: %w", err)
	}

	// 3. Mark after a successful write so a failed insert is retried next time.
	if s.dedup != nil {
		if err := s.dedup.Mark(ctx, d); err != nil {
			s.log.Warn().Err(err).Str("session_id", d.SessionID).Msg("failed to set decision dedup key")
		}
	}

	s.log.Info().
		Str("session_id", d.SessionID).
		Str("route", d.Route).
		Str("state", string(d.State)).
		Msg("gate decision recorded")
	return nil
}
