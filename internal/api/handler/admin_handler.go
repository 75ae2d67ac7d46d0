package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smsportal/console-gateway/internal/core/domain"
)

// AdminHandler serves the header data of gated admin pages.
type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

type adminShellResponse struct {
	Route       string                 `json:"route"`
	DisplayName *string                `json:"display_name"`
	AvatarURL   *string                `json:"avatar_url"`
	RoleID      domain.Value           `json:"role_id"`
	SuperAdmin  bool                   `json:"super_admin"`
	Identity    domain.DerivedIdentity `json:"identity"`
}

// Shell handles GET /admin/* behind the Gate middleware.
//
// @Summary      Header data for an admin page
// @Tags         admin
// @Produce      json
// @Success      200  {object}  adminShellResponse
// @Success      202  {object}  map[string]string  "auth still loading"
// @Failure      404  {object}  map[string]string
// @Router       /admin/{route} [get]
func (h *AdminHandler) Shell(c echo.Context) error {
	status, ok := ctxAuthStatus(c)
	if !ok {
		return echo.ErrNotFound
	}

	snap := domain.NewAuthSnapshot(nil, status.User)
	return c.JSON(http.StatusOK, adminShellResponse{
		Route:       c.Request().URL.Path,
		DisplayName: snap.DisplayName,
		AvatarURL:   snap.AvatarURL,
		RoleID:      snap.RoleID,
		SuperAdmin:  domain.IsSuperAdmin(status.User.Client()),
		Identity:    domain.DeriveIdentity(snap.DisplayName),
	})
}
