package service

import (
	"context"
	"fmt"

	"github.com/vis-sol/offerflow/internal/domain"
	"github.com/vis-sol/offerflow/internal/mapper"
	"github.com/vis-sol/offerflow/internal/repository"
	"go.uber.org/zap"
)

// defaultCatalog is the issuer's standard service list with default hourly
// net rates. Seeded at startup; existing rows keep their id and get the
// current default price.
var defaultCatalog = []domain.CatalogService{
	{Name: "Projekt i realizacja strony WWW", DefaultPrice: 60},
	{Name: "Aplikacja webowa (React/Node.js)", DefaultPrice: 80},
	{Name: "E-commerce z panelem admin", DefaultPrice: 70},
	{Name: "System CMS dedykowany", DefaultPrice: 75},
	{Name: "Aplikacja mobilna iOS/Android", DefaultPrice: 90},
	{Name: "Integracja API zewnętrznych", DefaultPrice: 70},
	{Name: "Optymalizacja SEO", DefaultPrice: 60},
	{Name: "Audyt bezpieczeństwa", DefaultPrice: 90},
	{Name: "Konsultacja IT/architektura", DefaultPrice: 60},
	{Name: "Wsparcie techniczne miesięczne", DefaultPrice: 100},
}

type CatalogService struct {
	catalogRepo *repository.CatalogRepository
	logger      *zap.Logger
}

func NewCatalogService(catalogRepo *repository.CatalogRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// List returns the service catalog used to prefill offer line items.
func (s *CatalogService) List(ctx context.Context) ([]domain.CatalogServiceDTO, error) {
	services, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog services: %w", err)
	}

	dtos := make([]domain.CatalogServiceDTO, len(services))
	for i, svc := range services {
		dtos[i] = mapper.ToCatalogServiceDTO(&svc)
	}
	return dtos, nil
}

// SeedDefaults upserts the standard catalog. Safe to run on every startup.
func (s *CatalogService) SeedDefaults(ctx context.Context) error {
	if err := s.catalogRepo.Seed(ctx, defaultCatalog); err != nil {
		return fmt.Errorf("failed to seed service catalog: %w", err)
	}
	s.logger.Info("service catalog seeded", zap.Int("services", len(defaultCatalog)))
	return nil
}
