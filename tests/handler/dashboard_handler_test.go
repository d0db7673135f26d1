package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vis-sol/offerflow/internal/domain"
	"github.com/vis-sol/offerflow/internal/http/handler"
	"github.com/vis-sol/offerflow/internal/repository"
	"github.com/vis-sol/offerflow/internal/service"
	"github.com/vis-sol/offerflow/tests/testutil"
	"go.uber.org/zap"
)

func TestDashboardHandler_Stats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	dashboardService := service.NewDashboardService(repository.NewOfferRepository(db), logger)
	h := handler.NewDashboardHandler(dashboardService, logger)

	r := chi.NewRouter()
	r.Get("/api/v1/dashboard/stats", h.Stats)

	testutil.CreateTestOffer(t, db, 1, "Alfa", "Projekt A", domain.OfferStatusActive)
	testutil.CreateTestOffer(t, db, 2, "Beta", "Projekt B", domain.OfferStatusAccepted)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var stats domain.OfferStatsDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 1, stats.Accepted)
	assert.InDelta(t, 4800, stats.TotalValue, 1e-9)
	assert.InDelta(t, 2400, stats.AcceptedValue, 1e-9)
}

func TestCatalogHandler_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	catalogService := service.NewCatalogService(repository.NewCatalogRepository(db), logger)
	require.NoError(t, catalogService.SeedDefaults(context.Background()))
	h := handler.NewCatalogHandler(catalogService, logger)

	r := chi.NewRouter()
	r.Get("/api/v1/services", h.List)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var services []domain.CatalogServiceDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &services))
	assert.Len(t, services, 10)
	assert.Equal(t, "Projekt i realizacja strony WWW", services[0].Name)
}
