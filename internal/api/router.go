package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/smsportal/console-gateway/internal/api/handler"
	"github.com/smsportal/console-gateway/internal/api/middleware"
	"github.com/smsportal/console-gateway/internal/core/ports"

	_ "github.com/smsportal/console-gateway/docs"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Stores       ports.SessionStoreFactory
	Authz        ports.AuthorizationService
	Readiness    []handler.ReadinessCheck
	Log          zerolog.Logger
	CookieName   string
	SecureCookie bool

	// Registerer and Gatherer back the request metrics and /metrics.
	// Nil means the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "console",
		Registerer: deps.Registerer,
	}))
	e.Use(requestLogger(deps.Log))

	// --- Health probes and tooling (no session) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Readiness...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: deps.Gatherer,
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Stateless lookups ---
	identityHandler := handler.NewIdentityHandler()
	countryHandler := handler.NewCountryHandler()

	v1 := e.Group("/v1")
	v1.GET("/identity", identityHandler.Derive)
	v1.POST("/identity/super-admin", identityHandler.SuperAdmin)
	v1.GET("/countries", countryHandler.Lookup)
	v1.GET("/countries/:code", countryHandler.Lookup)

	// --- Browser-session routes ---
	browser := middleware.BrowserSession(deps.CookieName, deps.SecureCookie)
	sessionHandler := handler.NewSessionHandler(deps.Stores, deps.Log)
	authzHandler := handler.NewAuthorizationHandler(deps.Authz)

	sess := v1.Group("/session", browser)
	sess.GET("/token", sessionHandler.Token)
	sess.GET("/snapshot", sessionHandler.Snapshot)
	sess.PUT("/entries/:key", sessionHandler.PutEntry)
	sess.DELETE("/entries/:key", sessionHandler.DeleteEntry)
	sess.DELETE("", sessionHandler.Clear)

	v1.GET("/authorization", authzHandler.Check, browser)

	// --- Gated admin pages ---
	adminHandler := handler.NewAdminHandler()
	admin := e.Group("/admin", browser, middleware.Gate(deps.Authz))
	admin.GET("", adminHandler.Shell)
	admin.GET("/*", adminHandler.Shell)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
