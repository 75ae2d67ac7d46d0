package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smsportal/console-gateway/internal/core/domain"
)

// CountryHandler serves flag and name lookups for country codes.
type CountryHandler struct{}

func NewCountryHandler() *CountryHandler {
	return &CountryHandler{}
}

// Lookup handles GET /v1/countries/:code and GET /v1/countries.
//
// @Summary      Flag and display name for a country code
// @Tags         countries
// @Produce      json
// @Param        code  path      string  true   "ISO 3166-1 alpha-2 code, any case"
// @Param        name  query     string  false  "Display name that overrides the lookup"
// @Success      200   {object}  domain.CountryLookupResult
// @Router       /v1/countries/{code} [get]
func (h *CountryHandler) Lookup(c echo.Context) error {
	// An empty segment ("/v1/countries/") reads as no code at all.
	var code *string
	if v := c.Param("code"); v != "" {
		code = &v
	}

	var override *domain.CountryOverride
	if name := optionalQuery(c, "name"); name != nil {
		override = &domain.CountryOverride{Name: *name}
	}

	return c.JSON(http.StatusOK, domain.LookupCountry(code, override))
}
