package handler

import (
	"net/http"

	"github.com/vis-sol/offerflow/internal/service"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

func NewCatalogHandler(catalogService *service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// @Summary List catalog services
// @Description Returns the service catalog with default hourly rates, used to prefill offer line items.
// @Tags Services
// @Produce json
// @Success 200 {array} domain.CatalogServiceDTO
// @Router /services [get]
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list catalog services", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list services")
		return
	}

	respondJSON(w, http.StatusOK, services)
}
