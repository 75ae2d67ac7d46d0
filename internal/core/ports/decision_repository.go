package ports

import (
	"context"

	"github.com/smsportal/console-gateway/internal/core/domain"
)

// DecisionRepository persists gate decisions for later review.
type DecisionRepository interface {
	InsertDecision(ctx context.Context, decision *domain.AuthorizationDecision) error
}

// AuditService records gate decisions.
type AuditService interface {
	Record(ctx context.Context, decision domain.AuthorizationDecision) error
}
