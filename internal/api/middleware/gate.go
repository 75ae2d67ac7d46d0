package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smsportal/console-gateway/internal/core/domain"
	"github.com/smsportal/console-gateway/internal/core/ports"
)

// AuthStatusKey is the echo context key holding the domain.AuthStatus of an
// authorized request.
const AuthStatusKey = "auth_status"

type checkingResponse struct {
	State domain.AuthorizationState `json:"state"`
}

// Gate runs the route gate for every request it wraps:
//   - checking: 202 {"state":"checking"} with Retry-After, the client retries.
//   - unauthorized: the router's own 404, so a forbidden route looks exactly
//     like one that does not exist.
//   - authorized: the next handler runs with the auth status in context.
func Gate(authz ports.AuthorizationService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID, _ := c.Get(SessionIDKey).(string)

			res, err := authz.Authorize(c.Request().Context(), ports.AuthorizeInput{
				SessionID: sessionID,
				Route:     c.Request().URL.Path,
			})
			if err != nil {
				return err
			}

			switch res.State {
			case domain.StateChecking:
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusAccepted, checkingResponse{State: res.State})
			case domain.StateAuthorized:
				c.Set(AuthStatusKey, res.Status)
				return next(c)
			default:
				return echo.ErrNotFound
			}
		}
	}
}
