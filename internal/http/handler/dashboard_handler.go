package handler

import (
	"net/http"

	"github.com/vis-sol/offerflow/internal/service"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// @Summary Dashboard statistics
// @Description Returns per-status offer counts and monetary totals.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.OfferStatsDTO
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		h.logger.Error("failed to compute dashboard stats", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to compute dashboard statistics")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
