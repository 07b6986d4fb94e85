package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/prana-g/livestock-api/internal/api/handler"
	"github.com/prana-g/livestock-api/internal/api/middleware"
	"github.com/prana-g/livestock-api/internal/core/ports"
	"github.com/prana-g/livestock-api/internal/core/service"
	redisinfra "github.com/prana-g/livestock-api/internal/infrastructure/db/redis"
	"github.com/prana-g/livestock-api/internal/infrastructure/inference"
	"github.com/prana-g/livestock-api/internal/infrastructure/queue"
	"github.com/prana-g/livestock-api/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the alert dispatcher, whose worker lifecycle is owned by
// the caller.
func NewRouter(cfg *config.Config, store ports.Store, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		MaxAge:       600,
	}))
	e.Use(echoprometheus.NewMiddleware("pranag"))

	// --- Dependencies ---
	limiter := redisinfra.NewSignInLimiter(rdb, cfg.SignInMaxAttempts)
	authService := service.NewAuthService(store, limiter, cfg.TokenSecret, 24*time.Hour, log)
	cattleService := service.NewCattleService(store, log)
	alertService := service.NewAlertService(store, log)
	profileService := service.NewProfileService(store, log)

	dispatcher := queue.NewDispatcher(cfg.AlertWorkers, alertService, redisinfra.NewAlertDedup(rdb), log)
	scanService := service.NewScanService(store, inference.NewMockAnalyzer(), dispatcher, cfg.AlertThreshold, log)

	authHandler := handler.NewAuthHandler(authService)
	cattleHandler := handler.NewCattleHandler(cattleService)
	scanHandler := handler.NewScanHandler(scanService)
	alertHandler := handler.NewAlertHandler(alertService)
	profileHandler := handler.NewProfileHandler(profileService)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(store, rdb).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes (token optional or absent) ---
	v1 := e.Group("/v1")
	v1.POST("/auth/signin", authHandler.SignIn)
	v1.GET("/auth/session", authHandler.Session)

	// --- Resource routes (bearer token required) ---
	authed := v1.Group("", middleware.VerifyAuth(cfg.TokenSecret))
	authed.GET("/cattle", cattleHandler.List)
	authed.POST("/cattle", cattleHandler.Create)
	authed.PUT("/cattle/:id", cattleHandler.Update)
	authed.DELETE("/cattle/:id", cattleHandler.Delete)

	authed.GET("/scans", scanHandler.List)
	authed.POST("/scans", scanHandler.Create)

	authed.GET("/alerts", alertHandler.List)
	authed.POST("/alerts", alertHandler.Create)
	authed.PUT("/alerts/:id/read", alertHandler.MarkRead)

	authed.GET("/profile", profileHandler.Get)
	authed.PUT("/profile", profileHandler.Update)

	return e, dispatcher
}
