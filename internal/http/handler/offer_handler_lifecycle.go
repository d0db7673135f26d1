package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vis-sol/offerflow/internal/domain"
	"github.com/vis-sol/offerflow/internal/service"
	"go.uber.org/zap"
)

// @Summary Update offer status
// @Description Moves an offer to a new lifecycle status. Archiving an offer
// @Description additionally exports its rendered document to the archive store.
// @Tags Offers
// @Accept json
// @Produce json
// @Param id path int true "Offer ID"
// @Param request body domain.UpdateStatusRequest true "New status"
// @Success 200 {object} domain.OfferDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /offers/{id}/status [patch]
func (h *OfferHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseOfferID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	offer, err := h.offerService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		if !errors.Is(err, service.ErrOfferNotFound) && !errors.Is(err, service.ErrUnknownStatus) {
			h.logger.Error("failed to update offer status", zap.Error(err), zap.Uint("offer_id", id))
		}
		h.handleOfferError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, offer)
}

// @Summary Get offer document
// @Description Renders the printable HTML document for an offer.
// @Tags Offers
// @Produce html
// @Param id path int true "Offer ID"
// @Success 200 {string} string "HTML document"
// @Failure 404 {object} domain.APIError
// @Router /offers/{id}/document [get]
func (h *OfferHandler) Document(w http.ResponseWriter, r *http.Request) {
	id, ok := parseOfferID(w, r)
	if !ok {
		return
	}

	document, err := h.offerService.RenderDocument(r.Context(), id)
	if err != nil {
		if !errors.Is(err, service.ErrOfferNotFound) {
			h.logger.Error("failed to render offer document", zap.Error(err), zap.Uint("offer_id", id))
		}
		h.handleOfferError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(document)
}

// @Summary Request offer email send
// @Description Records the intent to email the offer to its client. Falls back
// @Description to the configured default recipient when the client has no email.
// @Tags Offers
// @Produce json
// @Param id path int true "Offer ID"
// @Success 202 {object} domain.EmailRequestDTO
// @Failure 404 {object} domain.APIError
// @Router /offers/{id}/send [post]
func (h *OfferHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, ok := parseOfferID(w, r)
	if !ok {
		return
	}

	intent, err := h.offerService.RequestEmailSend(r.Context(), id)
	if err != nil {
		if !errors.Is(err, service.ErrOfferNotFound) {
			h.logger.Error("failed to record email request", zap.Error(err), zap.Uint("offer_id", id))
		}
		h.handleOfferError(w, err)
		return
	}

	respondJSON(w, http.StatusAccepted, intent)
}
