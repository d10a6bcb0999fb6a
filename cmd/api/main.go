package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apostaguard/platform/internal/app"
	"github.com/apostaguard/platform/internal/auth"
	"github.com/apostaguard/platform/internal/guard"
	"github.com/apostaguard/platform/internal/infra"
	"github.com/apostaguard/platform/internal/repository"
	"github.com/apostaguard/platform/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load config (.env is optional)
	_ = godotenv.Load()
	cfg, err := infra.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("resolve timezone: %w", err)
	}

	jwtExpiry, err := time.ParseDuration(cfg.JWTExpiry)
	if err != nil {
		return fmt.Errorf("parse JWT expiry: %w", err)
	}
	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, jwtExpiry)

	// Repositories
	var (
		wagerRepo     repository.WagerRepository
		limitRepo     repository.LimitRepository
		exclusionRepo repository.ExclusionRepository
		userRepo      repository.AuthUserRepository
		healthCheck   func(ctx context.Context) error
		pool          *pgxpool.Pool
	)

	switch cfg.StoreBackend {
	case "postgres":
		if err := infra.RunMigrations(cfg.DSN(), logger); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		pool, err = infra.NewPostgresPool(ctx, cfg)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()
		logger.Info("connected to postgres")

		wagerRepo = repository.NewPgWagerRepository(pool)
		limitRepo = repository.NewPgLimitRepository(pool)
		exclusionRepo = repository.NewPgExclusionRepository(pool)
		userRepo = repository.NewPgAuthUserRepository(pool)
		healthCheck = func(ctx context.Context) error { return infra.HealthCheck(ctx, pool) }
	default:
		store := repository.NewMemoryStore()
		wagerRepo = store
		limitRepo = store
		exclusionRepo = store.Exclusions()
		userRepo = store.Users()
		logger.Info("using in-memory store", "note", "state resets on restart")
	}

	// Domain event publisher (no-op unless KAFKA_ENABLED)
	publisher := infra.NewEventPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaEnabled, logger)
	defer publisher.Close()

	// Services
	bettingSvc := service.NewBettingService(wagerRepo, limitRepo, exclusionRepo, publisher, logger, loc)
	authSvc := service.NewAuthService(userRepo, jwtMgr, publisher)

	// Seeded demo account
	if cfg.DemoEmail != "" {
		if err := authSvc.SeedAccount(ctx, cfg.DemoEmail, cfg.DemoPassword); err != nil {
			return fmt.Errorf("seed demo account: %w", err)
		}
		logger.Info("demo account ready", "email", cfg.DemoEmail)
	}

	r := app.NewRouter(app.RouterDeps{
		Betting:     bettingSvc,
		Auth:        authSvc,
		JWTMgr:      jwtMgr,
		Logger:      logger,
		HealthCheck: healthCheck,
		AuthLimiter: guard.NewRateLimiter(10, time.Minute),
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		logger.Info("api server starting", "addr", addr, "backend", cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
