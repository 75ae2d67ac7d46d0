package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smsportal/console-gateway/internal/api/middleware"
	"github.com/smsportal/console-gateway/internal/core/domain"
)

// ctxSessionID extracts the browser session id injected by the
// BrowserSession middleware. Its absence means the middleware did not run.
func ctxSessionID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.SessionIDKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing browser session")
	}
	return id, nil
}

// ctxAuthStatus extracts the auth status the Gate middleware stored for an
// authorized request.
func ctxAuthStatus(c echo.Context) (domain.AuthStatus, bool) {
	status, ok := c.Get(middleware.AuthStatusKey).(domain.AuthStatus)
	return status, ok
}

// optionalQuery distinguishes "?name=" (present, empty) from a missing parameter.
func optionalQuery(c echo.Context, name string) *string {
	values := c.QueryParams()
	if !values.Has(name) {
		return nil
	}
	v := values.Get(name)
	return &v
}
