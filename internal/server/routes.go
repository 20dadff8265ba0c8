package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"leadsearch/internal/db"
	"leadsearch/internal/handlers"
	"leadsearch/internal/middleware"
	"leadsearch/internal/search"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB, svc *search.Service) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(database)

	// Initialize handlers
	searchHandler := handlers.NewSearchHandler(svc, s.Cfg)
	probeHandler := handlers.NewProbeHandler(database)

	// Auth routes - OIDC is always required for frontend access
	if s.Cfg.OIDCIssuer == "" {
		log.Fatal("OIDC_ISSUER is required. All agents must be authenticated.")
	}

	authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg, database)
	if err != nil {
		return err
	}

	s.App.Get("/auth/login", authHandler.Login)
	s.App.Get("/auth/callback", authHandler.Callback)
	s.App.Get("/auth/logout", authHandler.Logout)

	// Login page
	s.App.Get("/login", func(c fiber.Ctx) error {
		return c.Render("login", handlers.MergeBranding(fiber.Map{}, s.Cfg))
	})

	// Search page
	s.App.Get("/", func(c fiber.Ctx) error {
		return c.Redirect().To("/leads/search")
	})
	s.App.Get("/leads/search", authMiddleware.RequireAgent, searchHandler.Index)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}
