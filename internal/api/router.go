package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/winner-security/shift-scheduler/docs"
	"github.com/winner-security/shift-scheduler/internal/api/handler"
	"github.com/winner-security/shift-scheduler/internal/api/middleware"
	"github.com/winner-security/shift-scheduler/internal/core/domain"
	"github.com/winner-security/shift-scheduler/internal/core/guard"
	"github.com/winner-security/shift-scheduler/internal/core/ports"
	"github.com/winner-security/shift-scheduler/internal/infrastructure/http/handlers"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	AuthService     ports.AuthService
	ShiftService    ports.ShiftService
	ApprovalService ports.ApprovalService
	// Stores checked by the readiness probe, keyed by display name.
	Stores       map[string]ports.Pinger
	SecureCookie bool
	// Registerer receives the HTTP request metrics; defaults to the global
	// Prometheus registry.
	Registerer prometheus.Registerer
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(httpMetrics(deps.Registerer))
	e.Use(middleware.Resolve(deps.AuthService, deps.Log))

	authHandler := handler.NewAuthHandler(deps.AuthService, deps.SecureCookie)
	shiftHandler := handler.NewShiftHandler(deps.ShiftService)
	adminHandler := handler.NewAdminHandler(deps.ShiftService, deps.ApprovalService)
	viewHandler := handler.NewViewHandler(deps.ShiftService, deps.ApprovalService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, middleware.RequireSession())
	e.GET("/auth/session", authHandler.Session)

	// --- Worker routes ---
	me := e.Group("/v1/me", middleware.RequireRole(domain.RoleWorker))
	me.GET("/shifts", shiftHandler.List)
	me.POST("/shifts", shiftHandler.Request)

	// --- Admin routes ---
	admin := e.Group("/v1/admin", middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/shifts/pending", adminHandler.Pending)
	admin.GET("/calendar", adminHandler.Calendar)
	admin.GET("/hours", adminHandler.Hours)
	admin.GET("/workers", adminHandler.Workers)
	admin.POST("/shifts", adminHandler.Assign)
	admin.POST("/shifts/:id/approve", adminHandler.Approve)
	admin.POST("/shifts/:id/reject", adminHandler.Reject)

	// --- Page routes (navigation guard) ---
	e.GET(guard.IndexPath, viewHandler.Index, middleware.ViewGuard(guard.Index))
	e.GET(guard.LoginPath, viewHandler.Login, middleware.ViewGuard(guard.Login))
	e.GET(guard.WorkerHome, viewHandler.WorkerDashboard, middleware.ViewGuard(middleware.ProtectView(domain.RoleWorker)))
	e.GET(guard.AdminHome, viewHandler.AdminDashboard, middleware.ViewGuard(middleware.ProtectView(domain.RoleAdmin)))

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Stores)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

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
			if v.Error != nil || v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

func httpMetrics(reg prometheus.Registerer) echo.MiddlewareFunc {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "scheduler",
		Registerer: reg,
	})
}
