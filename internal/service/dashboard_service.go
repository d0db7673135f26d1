package service

import (
	"context"
	"fmt"

	"github.com/vis-sol/offerflow/internal/domain"
	"github.com/vis-sol/offerflow/internal/repository"
	"go.uber.org/zap"
)

type DashboardService struct {
	offerRepo *repository.OfferRepository
	logger    *zap.Logger
}

func NewDashboardService(offerRepo *repository.OfferRepository, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		offerRepo: offerRepo,
		logger:    logger,
	}
}

// Stats aggregates per-status counts and the monetary totals shown on the
// dashboard. AcceptedValue sums accepted offers only.
func (s *DashboardService) Stats(ctx context.Context) (*domain.OfferStatsDTO, error) {
	offers, err := s.offerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	stats := &domain.OfferStatsDTO{}
	for _, offer := range offers {
		stats.Total++
		stats.TotalValue += offer.Amount

		switch offer.Status {
		case domain.OfferStatusActive:
			stats.Active++
		case domain.OfferStatusAccepted:
			stats.Accepted++
			stats.AcceptedValue += offer.Amount
		case domain.OfferStatusRejected:
			stats.Rejected++
		case domain.OfferStatusExpired:
			stats.Expired++
		case domain.OfferStatusArchived:
			stats.Archived++
		}
	}

	return stats, nil
}
