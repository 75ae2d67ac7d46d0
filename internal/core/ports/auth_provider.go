package ports

import (
	"context"

	"github.com/smsportal/console-gateway/internal/core/domain"
)

// AuthProvider reports the authentication state of a browser session.
type AuthProvider interface {
	Status(ctx context.Context, sessionID string) (domain.AuthStatus, error)
}
