package main

import (
	"wallet-service/internal/config"
	"wallet-service/internal/handlers"
	"wallet-service/internal/middleware"
	"wallet-service/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routeDeps struct {
	tokenService services.TokenServiceInterface
	metrics      services.MetricsRecorderInterface
	wallet       *handlers.WalletHandler
	transactions *handlers.TransactionHandler
	health       *handlers.HealthCheckHandler
	// dev is nil outside development
	dev *handlers.DevHandler
}

func newServer(cfg *config.Config, reg prometheus.Registerer, rateLimiter *middleware.IPRateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(reg)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit("1M"))
	e.Use(rateLimiter.Middleware())

	return e
}

func registerRoutes(e *echo.Echo, deps routeDeps) {
	e.GET("/health", deps.health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	auth := middleware.RequireAuth(deps.tokenService, deps.metrics)

	wallet := api.Group("/wallet/sessions", auth)
	wallet.POST("", deps.wallet.CreateSession)
	wallet.GET("/:id", deps.wallet.GetSession)
	wallet.POST("/:id/actions", deps.wallet.DispatchAction)
	wallet.POST("/:id/load-more", deps.wallet.LoadMore)
	wallet.DELETE("/:id", deps.wallet.CloseSession)

	api.GET("/transactions", deps.transactions.ListTransactions, auth)
	api.GET("/transactions/:id", deps.transactions.GetTransaction, auth)
	api.GET("/categories", deps.transactions.ListCategories, auth)

	if deps.dev != nil {
		dev := api.Group("/dev")
		dev.POST("/token", deps.dev.IssueToken)
		dev.POST("/seed", deps.dev.SeedWallet, auth)
	}
}
