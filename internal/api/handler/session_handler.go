package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smsportal/console-gateway/internal/core/ports"
	"github.com/smsportal/console-gateway/internal/core/service"
)

// SessionHandler exposes a browser session's store entries.
type SessionHandler struct {
	stores ports.SessionStoreFactory
	log    zerolog.Logger
}

func NewSessionHandler(stores ports.SessionStoreFactory, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{stores: stores, log: log}
}

func (h *SessionHandler) reader(c echo.Context) (*service.SessionReader, error) {
	id, err := ctxSessionID(c)
	if err != nil {
		return nil, err
	}
	return service.NewSessionReader(h.stores.ForSession(id), h.log), nil
}

// Token handles GET /v1/session/token.
//
// @Summary      Read the auth token
// @Description  Falls back to message.token in the stored user session and caches it.
// @Tags         session
// @Produce      json
// @Success      200  {object}  tokenResponse
// @Router       /v1/session/token [get]
func (h *SessionHandler) Token(c echo.Context) error {
	r, err := h.reader(c)
	if err != nil {
		return err
	}
	var resp tokenResponse
	if tok, ok := r.Token(c.Request().Context()); ok {
		resp.Token = &tok
	}
	return c.JSON(http.StatusOK, resp)
}

// Snapshot handles GET /v1/session/snapshot.
//
// @Summary      Read the stored identity
// @Tags         session
// @Produce      json
// @Success      200  {object}  domain.AuthSnapshot
// @Failure      409  {object}  map[string]string  "stored user session is corrupted"
// @Router       /v1/session/snapshot [get]
func (h *SessionHandler) Snapshot(c echo.Context) error {
	r, err := h.reader(c)
	if err != nil {
		return err
	}
	snap, err := r.Snapshot(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snap)
}

// PutEntry handles PUT /v1/session/entries/:key.
//
// @Summary      Write a session entry
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        key   path      string           true  "authToken, user-session or auth-checking"
// @Param        body  body      putEntryRequest  true  "Entry value"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/session/entries/{key} [put]
func (h *SessionHandler) PutEntry(c echo.Context) error {
	id, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	var req putEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.stores.ForSession(id).Set(c.Request().Context(), req.Key, req.Value); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteEntry handles DELETE /v1/session/entries/:key.
//
// @Summary      Remove a session entry
// @Tags         session
// @Param        key  path  string  true  "authToken, user-session or auth-checking"
// @Success      204
// @Failure      422  {object}  map[string]string
// @Router       /v1/session/entries/{key} [delete]
func (h *SessionHandler) DeleteEntry(c echo.Context) error {
	id, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	var req entryPath
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.stores.ForSession(id).Remove(c.Request().Context(), req.Key); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Clear handles DELETE /v1/session, the recovery path after a 409 snapshot.
//
// @Summary      Clear the browser session
// @Tags         session
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /v1/session [delete]
func (h *SessionHandler) Clear(c echo.Context) error {
	id, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	if err := h.stores.Clear(c.Request().Context(), id); err != nil {
		return err
	}
	h.log.Info().Str("session_id", id).Msg("browser session cleared")
	return c.JSON(http.StatusOK, messageResponse{Message: "session cleared"})
}
