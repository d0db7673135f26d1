package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vis-sol/offerflow/internal/domain"
	"github.com/vis-sol/offerflow/internal/service"
	"go.uber.org/zap"
)

type OfferHandler struct {
	offerService *service.OfferService
	logger       *zap.Logger
}

func NewOfferHandler(offerService *service.OfferService, logger *zap.Logger) *OfferHandler {
	return &OfferHandler{
		offerService: offerService,
		logger:       logger,
	}
}

// @Summary List offers
// @Description Returns all offers newest first, optionally narrowed by status and a search query.
// @Description The query matches client name, offer number and project name, case-insensitively.
// @Tags Offers
// @Produce json
// @Param status query string false "Status filter" Enums(all, active, accepted, rejected, expired, archived) default(all)
// @Param q query string false "Search query"
// @Success 200 {array} domain.OfferDTO
// @Failure 400 {object} domain.APIError
// @Router /offers [get]
func (h *OfferHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	query := r.URL.Query().Get("q")

	offers, err := h.offerService.List(r.Context(), status, query)
	if err != nil {
		if errors.Is(err, service.ErrUnknownStatus) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to list offers", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list offers")
		return
	}

	respondJSON(w, http.StatusOK, offers)
}

// @Summary Create offer
// @Description Creates a new offer. The amount is computed from the line items,
// @Description the number is assigned server-side and validity is 14 days from creation.
// @Tags Offers
// @Accept json
// @Produce json
// @Param request body domain.CreateOfferRequest true "Offer data"
// @Success 201 {object} domain.OfferDTO
// @Failure 400 {object} domain.APIError
// @Router /offers [post]
func (h *OfferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	offer, err := h.offerService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create offer", zap.Error(err))
		h.handleOfferError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/offers/%d", offer.ID))
	respondJSON(w, http.StatusCreated, offer)
}

// @Summary Get offer
// @Tags Offers
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} domain.OfferDTO
// @Failure 404 {object} domain.APIError
// @Router /offers/{id} [get]
func (h *OfferHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseOfferID(w, r)
	if !ok {
		return
	}

	offer, err := h.offerService.GetByID(r.Context(), id)
	if err != nil {
		if !errors.Is(err, service.ErrOfferNotFound) {
			h.logger.Error("failed to get offer", zap.Error(err), zap.Uint("offer_id", id))
		}
		h.handleOfferError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, offer)
}

// @Summary Delete offer
// @Description Permanently deletes an offer with its line items.
// @Tags Offers
// @Param id path int true "Offer ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /offers/{id} [delete]
func (h *OfferHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseOfferID(w, r)
	if !ok {
		return
	}

	if err := h.offerService.Delete(r.Context(), id); err != nil {
		if !errors.Is(err, service.ErrOfferNotFound) {
			h.logger.Error("failed to delete offer", zap.Error(err), zap.Uint("offer_id", id))
		}
		h.handleOfferError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// parseOfferID reads the id path parameter, writing a 400 response on failure
func parseOfferID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid offer ID: must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// handleOfferError maps service errors to HTTP responses
func (h *OfferHandler) handleOfferError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrOfferNotFound):
		respondWithError(w, http.StatusNotFound, "Offer not found")
	case errors.Is(err, service.ErrUnknownStatus):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrValidation):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
