package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/radarclientes/radar-service/internal/ai"
	httptransport "github.com/radarclientes/radar-service/internal/api/http"
	"github.com/radarclientes/radar-service/internal/api/http/handlers"
	"github.com/radarclientes/radar-service/internal/auth"
	"github.com/radarclientes/radar-service/internal/config"
	"github.com/radarclientes/radar-service/internal/events"
	"github.com/radarclientes/radar-service/internal/observability"
	"github.com/radarclientes/radar-service/internal/persistence"
	"github.com/radarclientes/radar-service/internal/repository"
	"github.com/radarclientes/radar-service/internal/service"
	"github.com/radarclientes/radar-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	generator, err := ai.NewGeminiGenerator(ctx, cfg.AI, logger)
	if err != nil {
		logger.Fatal("failed to init gemini client", zap.Error(err))
	}
	if generator == nil {
		logger.Warn("GEMINI_API_KEY not provided; AI generation disabled")
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	businessRepo := repository.NewBusinessRepository(pool)
	leadRepo := repository.NewLeadRepository(pool)
	campaignRepo := repository.NewCampaignRepository(pool)
	pageRepo := repository.NewLandingPageRepository(pool)
	insightRepo := repository.NewInsightRepository(pool)
	reportRepo := repository.NewReportRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo)
	businessService := service.NewBusinessService(businessRepo, dispatcher)
	leadService := service.NewLeadService(leadRepo, businessService, dispatcher)
	campaignService := service.NewCampaignService(campaignRepo, businessService)
	pageService := service.NewLandingPageService(pageRepo, businessService, leadService, redis)

	var gen ai.Generator
	if generator != nil {
		gen = generator
	}
	insightService := service.NewInsightService(insightRepo, businessService, gen, redis, cfg.AI, logger)
	reportService := service.NewReportService(leadRepo, campaignRepo, pageRepo, reportRepo, businessService, insightService, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Business:       handlers.NewBusinessHandler(businessService),
		Leads:          handlers.NewLeadsHandler(leadService),
		Campaigns:      handlers.NewCampaignsHandler(campaignService),
		LandingPages:   handlers.NewLandingPagesHandler(pageService),
		Public:         handlers.NewPublicHandler(pageService),
		Insights:       handlers.NewInsightsHandler(insightService),
		Reports:        handlers.NewReportsHandler(reportService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
