package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vis-sol/offerflow/docs"
	"github.com/vis-sol/offerflow/internal/archive"
	"github.com/vis-sol/offerflow/internal/config"
	"github.com/vis-sol/offerflow/internal/database"
	"github.com/vis-sol/offerflow/internal/http/handler"
	"github.com/vis-sol/offerflow/internal/http/middleware"
	"github.com/vis-sol/offerflow/internal/http/router"
	"github.com/vis-sol/offerflow/internal/jobs"
	"github.com/vis-sol/offerflow/internal/logger"
	"github.com/vis-sol/offerflow/internal/render"
	"github.com/vis-sol/offerflow/internal/repository"
	"github.com/vis-sol/offerflow/internal/service"
	"github.com/vis-sol/offerflow/internal/storage"
	"go.uber.org/zap"
)

// @title OfferFlow API
// @version 1.0
// @description Offer lifecycle and pricing API for VIS-SOL

// @contact.name VIS-SOL
// @contact.email biuro@vis-sol.pl

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.App.Port)

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite deployments have no goose pipeline; auto-migrate keeps the
	// schema current. PostgreSQL schemas come from cmd/migrate.
	if cfg.Database.Driver == "sqlite" {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	archiveStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	renderer, err := render.NewRenderer(&cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}

	// Initialize repositories
	offerRepo := repository.NewOfferRepository(db)
	eventRepo := repository.NewEventRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	// Initialize services
	exporter := archive.NewExporter(archiveStorage, log)
	offerService := service.NewOfferService(offerRepo, eventRepo, renderer, exporter, &cfg.Issuer, log)
	dashboardService := service.NewDashboardService(offerRepo, log)
	catalogService := service.NewCatalogService(catalogRepo, log)

	if err := catalogService.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("failed to seed service catalog: %w", err)
	}

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	offerHandler := handler.NewOfferHandler(offerService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)
	catalogHandler := handler.NewCatalogHandler(catalogService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		rateLimiter,
		offerHandler,
		dashboardHandler,
		catalogHandler,
	)

	// Start scheduler for the expiry sweep when enabled
	var scheduler *jobs.Scheduler
	if cfg.Jobs.ExpiryEnabled {
		scheduler = jobs.NewScheduler(log)
		if err := jobs.RegisterExpiryJob(
			scheduler,
			offerService,
			log,
			cfg.Jobs.ExpirySchedule,
			jobs.DefaultExpiryTimeout,
		); err != nil {
			log.Error("Failed to register expiry job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with expiry sweep",
				zap.String("cron_expr", cfg.Jobs.ExpirySchedule),
			)
		}
	} else {
		log.Info("Automatic offer expiry disabled")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
