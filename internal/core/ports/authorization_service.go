package ports

import (
	"context"

	"github.com/smsportal/console-gateway/internal/core/domain"
)

// AuthorizeInput identifies the browser session and the route being opened.
type AuthorizeInput struct {
	SessionID string
	Route     string
}

// AuthorizationResult is the gate outcome plus the identity it was based on.
type AuthorizationResult struct {
	State  domain.AuthorizationState
	Status domain.AuthStatus
}

// AuthorizationService decides whether a route may render.
type AuthorizationService interface {
	Authorize(ctx context.Context, input AuthorizeInput) (*AuthorizationResult, error)
}
