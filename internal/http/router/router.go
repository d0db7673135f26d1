package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vis-sol/offerflow/internal/config"
	"github.com/vis-sol/offerflow/internal/database"
	"github.com/vis-sol/offerflow/internal/http/handler"
	"github.com/vis-sol/offerflow/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/vis-sol/offerflow/docs" // Import generated swagger docs
)

type Router struct {
	cfg              *config.Config
	logger           *zap.Logger
	db               *gorm.DB
	rateLimiter      *middleware.RateLimiter
	offerHandler     *handler.OfferHandler
	dashboardHandler *handler.DashboardHandler
	catalogHandler   *handler.CatalogHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	rateLimiter *middleware.RateLimiter,
	offerHandler *handler.OfferHandler,
	dashboardHandler *handler.DashboardHandler,
	catalogHandler *handler.CatalogHandler,
) *Router {
	return &Router{
		cfg:              cfg,
		logger:           logger,
		db:               db,
		rateLimiter:      rateLimiter,
		offerHandler:     offerHandler,
		dashboardHandler: dashboardHandler,
		catalogHandler:   catalogHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.Limit)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
		})
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Offers
		r.Route("/offers", func(r chi.Router) {
			r.Get("/", rt.offerHandler.List)
			r.Post("/", rt.offerHandler.Create)
			r.Get("/{id}", rt.offerHandler.GetByID)
			r.Delete("/{id}", rt.offerHandler.Delete)

			// Lifecycle endpoints
			r.Patch("/{id}/status", rt.offerHandler.UpdateStatus)
			r.Get("/{id}/document", rt.offerHandler.Document)
			r.Post("/{id}/send", rt.offerHandler.Send)
		})

		// Dashboard
		r.Get("/dashboard/stats", rt.dashboardHandler.Stats)

		// Service catalog
		r.Get("/services", rt.catalogHandler.List)
	})

	return r
}
