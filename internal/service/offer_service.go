package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vis-sol/offerflow/internal/archive"
	"github.com/vis-sol/offerflow/internal/config"
	"github.com/vis-sol/offerflow/internal/domain"
	"github.com/vis-sol/offerflow/internal/mapper"
	"github.com/vis-sol/offerflow/internal/pricing"
	"github.com/vis-sol/offerflow/internal/render"
	"github.com/vis-sol/offerflow/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OfferService struct {
	offerRepo *repository.OfferRepository
	eventRepo *repository.EventRepository
	renderer  *render.Renderer
	archiver  archive.Notifier
	issuer    *config.IssuerConfig
	logger    *zap.Logger
	now       func() time.Time
}

func NewOfferService(
	offerRepo *repository.OfferRepository,
	eventRepo *repository.EventRepository,
	renderer *render.Renderer,
	archiver archive.Notifier,
	issuer *config.IssuerConfig,
	logger *zap.Logger,
) *OfferService {
	return &OfferService{
		offerRepo: offerRepo,
		eventRepo: eventRepo,
		renderer:  renderer,
		archiver:  archiver,
		issuer:    issuer,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SetClock overrides the service clock. Used by tests to pin creation dates.
func (s *OfferService) SetClock(now func() time.Time) {
	s.now = now
}

// Create validates the draft and persists a new offer. The amount is
// computed from the items, the validity window is fixed at 14 days and the
// status always starts as active. Validation happens before any mutation.
func (s *OfferService) Create(ctx context.Context, req *domain.CreateOfferRequest) (*domain.OfferDTO, error) {
	if err := validateDraft(req); err != nil {
		return nil, err
	}

	items := make([]domain.LineItem, len(req.Items))
	for i, itemReq := range req.Items {
		items[i] = domain.LineItem{
			Name:      strings.TrimSpace(itemReq.Name),
			Quantity:  itemReq.Quantity,
			UnitPrice: itemReq.UnitPrice,
		}
	}

	createdAt := s.now()
	offer := &domain.Offer{
		ClientName:          strings.TrimSpace(req.ClientName),
		ClientContactPerson: strings.TrimSpace(req.ClientContactPerson),
		ClientEmail:         strings.TrimSpace(req.ClientEmail),
		ClientPhone:         strings.TrimSpace(req.ClientPhone),
		ProjectName:         strings.TrimSpace(req.ProjectName),
		Amount:              pricing.CalculateTotal(items),
		Status:              domain.OfferStatusActive,
		CreatedAt:           createdAt,
		ValidUntil:          createdAt.AddDate(0, 0, domain.ValidityDays),
		Items:               items,
	}

	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}

	s.recordEvent(ctx, offer, domain.EventOfferCreated,
		fmt.Sprintf("Oferta %s utworzona dla klienta %s", offer.Number, offer.ClientName))

	s.logger.Info("offer created",
		zap.Uint("id", offer.ID),
		zap.String("number", offer.Number),
		zap.String("client", offer.ClientName),
		zap.Float64("amount", offer.Amount),
	)

	dto := mapper.ToOfferDTO(offer)
	return &dto, nil
}

// GetByID retrieves an offer with its items
func (s *OfferService) GetByID(ctx context.Context, id uint) (*domain.OfferDTO, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}

	dto := mapper.ToOfferDTO(offer)
	return &dto, nil
}

// List returns all offers newest-created first, narrowed by the status
// filter ("all" bypasses it) and the case-insensitive search query.
func (s *OfferService) List(ctx context.Context, statusFilter string, query string) ([]domain.OfferDTO, error) {
	if statusFilter == "" {
		statusFilter = domain.StatusFilterAll
	}
	if statusFilter != domain.StatusFilterAll && !domain.OfferStatus(statusFilter).IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, statusFilter)
	}

	offers, err := s.offerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	filtered := domain.FilterOffers(offers, statusFilter, query)
	return mapper.ToOfferDTOs(filtered), nil
}

// Delete removes an offer permanently. Any confirmation step belongs to the
// caller; deletion here is unconditional.
func (s *OfferService) Delete(ctx context.Context, id uint) error {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOfferNotFound
		}
		return fmt.Errorf("failed to get offer: %w", err)
	}

	if err := s.offerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOfferNotFound
		}
		return fmt.Errorf("failed to delete offer: %w", err)
	}

	s.logger.Info("offer deleted",
		zap.Uint("id", id),
		zap.String("number", offer.Number),
	)

	return nil
}

// validateDraft enforces the creation rules beyond struct tags: required
// fields must be non-blank after trimming, the item list non-empty, every
// item named, quantities positive and prices non-negative.
func validateDraft(req *domain.CreateOfferRequest) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrValidation)
	}
	if strings.TrimSpace(req.ProjectName) == "" {
		return fmt.Errorf("%w: projectName is required", ErrValidation)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrValidation)
	}
	for i, item := range req.Items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("%w: item %d has a blank name", ErrValidation, i+1)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d must have a positive quantity", ErrValidation, i+1)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("%w: item %d must have a non-negative unit price", ErrValidation, i+1)
		}
	}
	return nil
}

// recordEvent appends to the offer event log. Event log failures are logged
// but never fail the triggering operation.
func (s *OfferService) recordEvent(ctx context.Context, offer *domain.Offer, eventType domain.OfferEventType, body string) {
	event := &domain.OfferEvent{
		OfferID:    offer.ID,
		Number:     offer.Number,
		Type:       eventType,
		Body:       body,
		OccurredAt: s.now(),
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		s.logger.Warn("failed to record offer event",
			zap.String("number", offer.Number),
			zap.String("type", string(eventType)),
			zap.Error(err))
	}
}
