package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vis-sol/offerflow/internal/domain"
	"github.com/vis-sol/offerflow/internal/mapper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UpdateStatus moves an offer to a new lifecycle status. Today every
// transition between known statuses is permitted; the transition table in
// the domain package is the single place to tighten if that changes.
// Archiving additionally renders the print document and hands it to the
// archive notifier together with a snapshot of the offer.
func (s *OfferService) UpdateStatus(ctx context.Context, id uint, newStatus string) (*domain.OfferDTO, error) {
	status := domain.OfferStatus(newStatus)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, newStatus)
	}

	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}

	previous := offer.Status
	if !domain.CanTransition(previous, status) {
		return nil, fmt.Errorf("%w: cannot move %s from %s to %s",
			ErrValidation, offer.Number, previous, status)
	}

	if err := s.offerRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to update offer status: %w", err)
	}
	offer.Status = status

	s.recordEvent(ctx, offer, domain.EventStatusChanged,
		fmt.Sprintf("Status oferty %s zmieniony: %s -> %s", offer.Number, previous, status))

	s.logger.Info("offer status updated",
		zap.Uint("id", id),
		zap.String("number", offer.Number),
		zap.String("from", string(previous)),
		zap.String("to", string(status)),
	)

	if status == domain.OfferStatusArchived && previous != domain.OfferStatusArchived {
		s.archiveOffer(ctx, offer)
	}

	dto := mapper.ToOfferDTO(offer)
	return &dto, nil
}

// RenderDocument produces the printable HTML document for an offer.
func (s *OfferService) RenderDocument(ctx context.Context, id uint) ([]byte, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}

	document, err := s.renderer.Render(offer, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to render offer document: %w", err)
	}
	return document, nil
}

// RequestEmailSend records the intent to email an offer to its client.
// When the offer has no client email the issuer fallback address is used.
// No mail is sent here; downstream tooling consumes the event log.
func (s *OfferService) RequestEmailSend(ctx context.Context, id uint) (*domain.EmailRequestDTO, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}

	recipient := offer.ClientEmail
	if recipient == "" {
		recipient = s.issuer.FallbackEmail
	}

	s.recordEvent(ctx, offer, domain.EventEmailRequested,
		fmt.Sprintf("Wysyłka oferty %s do %s", offer.Number, recipient))

	s.logger.Info("offer email requested",
		zap.Uint("id", id),
		zap.String("number", offer.Number),
		zap.String("recipient", recipient),
	)

	return &domain.EmailRequestDTO{
		Number:    offer.Number,
		Recipient: recipient,
	}, nil
}

// ExpireOverdue marks every active offer whose validity window has passed
// as expired. Returns the number of offers transitioned.
func (s *OfferService) ExpireOverdue(ctx context.Context) (int, error) {
	cutoff := s.now()
	offers, err := s.offerRepo.ListExpirable(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list expirable offers: %w", err)
	}

	expired := 0
	for i := range offers {
		offer := &offers[i]
		if err := s.offerRepo.UpdateStatus(ctx, offer.ID, domain.OfferStatusExpired); err != nil {
			s.logger.Error("failed to expire offer",
				zap.String("number", offer.Number),
				zap.Error(err))
			continue
		}
		s.recordEvent(ctx, offer, domain.EventStatusChanged,
			fmt.Sprintf("Status oferty %s zmieniony: %s -> %s",
				offer.Number, offer.Status, domain.OfferStatusExpired))
		expired++
	}

	return expired, nil
}

// archiveOffer renders the document and emits the archive signal. Archive
// export failures do not roll back the status change; they are logged and
// the offer stays archived.
func (s *OfferService) archiveOffer(ctx context.Context, offer *domain.Offer) {
	if s.archiver == nil {
		return
	}

	document, err := s.renderer.Render(offer, s.now())
	if err != nil {
		s.logger.Error("failed to render archive document",
			zap.String("number", offer.Number),
			zap.Error(err))
		return
	}

	if err := s.archiver.OfferArchived(ctx, offer.Snapshot(), document); err != nil {
		s.logger.Error("failed to export archived offer",
			zap.String("number", offer.Number),
			zap.Error(err))
		return
	}

	s.recordEvent(ctx, offer, domain.EventArchiveExported,
		fmt.Sprintf("Dokument oferty %s wyeksportowany do archiwum", offer.Number))
}
