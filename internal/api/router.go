package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/healthtrack/healthtrack-api/internal/api/handler"
	"github.com/healthtrack/healthtrack-api/internal/api/middleware"
	"github.com/healthtrack/healthtrack-api/internal/core/domain"
	"github.com/healthtrack/healthtrack-api/internal/core/service"
	"github.com/healthtrack/healthtrack-api/internal/infrastructure/config"
	"github.com/healthtrack/healthtrack-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("healthtrack"))

	// --- Dependencies ---
	patientRepo := postgres.NewPatientRepository(pool)
	practitionerRepo := postgres.NewPractitionerRepository(pool)
	resolver := service.NewPrincipalResolver(patientRepo, practitionerRepo)
	issuer := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(resolver, patientRepo, practitionerRepo, issuer, log)
	userService := service.NewUserService(patientRepo, practitionerRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	authMiddleware := middleware.Auth(issuer)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.GET("/roles", authHandler.Roles)

	// --- User routes ---
	user := e.Group("/api/user")
	user.GET("/profile", userHandler.Profile, authMiddleware,
		middleware.RequireKind(domain.KindPatient, domain.KindPractitioner))
	user.GET("/check-username", userHandler.CheckUsername)
	user.GET("/check-health-id", userHandler.CheckHealthID)
	user.GET("/check-phone", userHandler.CheckPhone)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
