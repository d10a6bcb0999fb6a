package app

import (
	"context"
	"log/slog"

	"github.com/apostaguard/platform/internal/auth"
	"github.com/apostaguard/platform/internal/guard"
	"github.com/apostaguard/platform/internal/handler"
	"github.com/apostaguard/platform/internal/service"
	"github.com/go-chi/chi/v5"
)

// RouterDeps holds all dependencies needed by NewRouter.
type RouterDeps struct {
	Betting     *service.BettingService
	Auth        *service.AuthService
	JWTMgr      *auth.JWTManager
	Logger      *slog.Logger
	HealthCheck func(ctx context.Context) error // nil for the memory backend
	AuthLimiter *guard.RateLimiter
}

// NewRouter assembles the chi.Router with all routes and middleware.
func NewRouter(deps RouterDeps) chi.Router {
	authHandler := handler.NewAuthHandler(deps.Auth)
	betsHandler := handler.NewBetsHandler(deps.Betting)
	limitsHandler := handler.NewLimitsHandler(deps.Betting)
	exclusionHandler := handler.NewExclusionHandler(deps.Betting)
	reportsHandler := handler.NewReportsHandler(deps.Betting)

	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(handler.Recovery(deps.Logger))
	r.Use(handler.RequestID)
	r.Use(handler.RequestLogger(deps.Logger))
	r.Use(handler.CORS)
	r.Use(handler.JSONContentType)

	// Health (no auth)
	r.Get("/health", handler.HealthHandler(deps.HealthCheck))

	// Auth routes (no auth, rate limited)
	r.Route("/auth", func(r chi.Router) {
		if deps.AuthLimiter != nil {
			r.Use(handler.RateLimit(deps.AuthLimiter))
		}
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Owner-authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(auth.Authenticate(deps.JWTMgr))

		r.Get("/limits", limitsHandler.GetLimits)
		r.Put("/limits", limitsHandler.UpdateLimits)

		r.Post("/bets", betsHandler.PlaceBet)
		r.Post("/self-exclusion", exclusionHandler.SelfExclude)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/month", reportsHandler.MonthlyReport)
			r.Get("/export.csv", reportsHandler.ExportCSV)
		})
	})

	return r
}
