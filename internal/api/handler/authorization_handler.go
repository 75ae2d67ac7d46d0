package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smsportal/console-gateway/internal/core/domain"
	"github.com/smsportal/console-gateway/internal/core/ports"
)

// AuthorizationHandler lets the dashboard ask the gate about a route before
// rendering it.
type AuthorizationHandler struct {
	authz ports.AuthorizationService
}

func NewAuthorizationHandler(authz ports.AuthorizationService) *AuthorizationHandler {
	return &AuthorizationHandler{authz: authz}
}

type authorizationRequest struct {
	Route string `query:"route" validate:"required,route"`
}

type authorizationResponse struct {
	Route string                    `json:"route"`
	State domain.AuthorizationState `json:"state"`
}

// Check handles GET /v1/authorization?route=.
//
// @Summary      Gate state for a dashboard route
// @Description  One of checking (show a loader), authorized (render), unauthorized (render not-found).
// @Tags         authorization
// @Produce      json
// @Param        route  query     string  true  "Dashboard route, e.g. /admin/clients"
// @Success      200    {object}  authorizationResponse
// @Failure      422    {object}  map[string]string
// @Router       /v1/authorization [get]
func (h *AuthorizationHandler) Check(c echo.Context) error {
	id, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	var req authorizationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.authz.Authorize(c.Request().Context(), ports.AuthorizeInput{SessionID: id, Route: req.Route})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authorizationResponse{Route: req.Route, State: res.State})
}
