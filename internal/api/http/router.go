package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/radarclientes/radar-service/internal/api/http/handlers"
	"github.com/radarclientes/radar-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Business       *handlers.BusinessHandler
	Leads          *handlers.LeadsHandler
	Campaigns      *handlers.CampaignsHandler
	LandingPages   *handlers.LandingPagesHandler
	Public         *handlers.PublicHandler
	Insights       *handlers.InsightsHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes under the /api prefix.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/", cfg.Health.Root)
	api.Get("/health", cfg.Health.Live)
	api.Get("/health/ready", cfg.Health.Ready)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	// Public landing pages stay outside the auth middleware.
	api.Get("/p/:slug", cfg.Public.GetPage)
	api.Post("/p/:slug/lead", cfg.Public.CaptureLead)

	protected := api.Group("", cfg.AuthMiddleware.Handle)

	protected.Post("/business", cfg.Business.Create)
	protected.Get("/business", cfg.Business.Get)
	protected.Put("/business", cfg.Business.Update)

	protected.Post("/leads", cfg.Leads.Create)
	protected.Get("/leads", cfg.Leads.List)
	protected.Put("/leads/:id/status", cfg.Leads.UpdateStatus)
	protected.Delete("/leads/:id", cfg.Leads.Delete)

	protected.Post("/campaigns", cfg.Campaigns.Create)
	protected.Get("/campaigns", cfg.Campaigns.List)

	protected.Post("/landing-pages", cfg.LandingPages.Create)
	protected.Get("/landing-pages", cfg.LandingPages.List)

	protected.Post("/insights/market", cfg.Insights.Market)
	protected.Post("/insights/strategy", cfg.Insights.Strategy)
	protected.Get("/insights/history", cfg.Insights.History)

	protected.Get("/reports/dashboard", cfg.Reports.Dashboard)
	protected.Post("/reports/generate", cfg.Reports.Generate)
	protected.Get("/reports/history", cfg.Reports.History)
}
