package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smsportal/console-gateway/internal/core/domain"
)

// IdentityHandler serves the derived avatar values used across the dashboard.
type IdentityHandler struct{}

func NewIdentityHandler() *IdentityHandler {
	return &IdentityHandler{}
}

type superAdminResponse struct {
	SuperAdmin bool `json:"super_admin"`
}

// Derive handles GET /v1/identity?name=.
//
// @Summary      Avatar initials and color for a display name
// @Tags         identity
// @Produce      json
// @Param        name  query     string  false  "Display name"
// @Success      200   {object}  domain.DerivedIdentity
// @Router       /v1/identity [get]
func (h *IdentityHandler) Derive(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.DeriveIdentity(optionalQuery(c, "name")))
}

// SuperAdmin handles POST /v1/identity/super-admin.
//
// @Summary      Whether a client record belongs to the platform owner
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Client  true  "Client record"
// @Success      200   {object}  superAdminResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/identity/super-admin [post]
func (h *IdentityHandler) SuperAdmin(c echo.Context) error {
	var client domain.Client
	if err := c.Bind(&client); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.JSON(http.StatusOK, superAdminResponse{SuperAdmin: domain.IsSuperAdmin(&client)})
}
