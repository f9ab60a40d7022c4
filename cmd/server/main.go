package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-service/internal/config"
	"wallet-service/internal/database"
	"wallet-service/internal/handlers"
	"wallet-service/internal/middleware"
	"wallet-service/internal/repositories"
	"wallet-service/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

// @title Wallet Service API
// @version 1.0
// @description Filter and paginate wallet transactions through server-side view sessions.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg))

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err.Error())
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Server.SlogLevel()}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func run(cfg *config.Config) error {
	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	defer sqlDB.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	transactionRepo := repositories.NewTransactionRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	tokenService := services.NewTokenService(&cfg.JWT)

	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfigFrom(cfg.CircuitBreaker))
	fetcher := services.NewTransactionPageFetcher(transactionRepo, breaker, metrics)
	sessionService := services.NewWalletSessionService(
		fetcher,
		services.NewWalletLogger(slog.Default()),
		metrics,
		services.WalletSessionConfigFrom(cfg.Wallet),
	)
	sessionService.StartSweeper(ctx)
	defer sessionService.Shutdown()

	rateLimiter := middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	rateLimiter.StartCleanup(ctx)

	e := newServer(cfg, prometheus.DefaultRegisterer, rateLimiter)
	registerRoutes(e, routeDeps{
		tokenService: tokenService,
		metrics:      metrics,
		wallet:       handlers.NewWalletHandler(sessionService),
		transactions: handlers.NewTransactionHandler(
			services.NewTransactionQueryService(transactionRepo, categoryRepo, metrics),
			cfg.Wallet.PageSize,
		),
		health: handlers.NewHealthCheckHandler(db, sessionService, breaker),
		dev: devHandlerFor(cfg, handlers.NewDevHandler(
			transactionRepo,
			services.NewTransactionGenerator(),
			tokenService,
			metrics,
		)),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           e,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listening",
			"event_type", "server_started",
			"addr", srv.Addr,
			"environment", cfg.Server.Environment,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down", "event_type", "server_stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func devHandlerFor(cfg *config.Config, h *handlers.DevHandler) *handlers.DevHandler {
	if !cfg.IsDevelopment() {
		return nil
	}
	return h
}
