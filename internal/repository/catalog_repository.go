package repository

import (
	"context"

	"github.com/vis-sol/offerflow/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogRepository stores the predefined service catalog used to prefill
// line items in the offer form.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) List(ctx context.Context) ([]domain.CatalogService, error) {
	var services []domain.CatalogService
	err := r.db.WithContext(ctx).Order("id ASC").Find(&services).Error
	return services, err
}

// Seed inserts the default catalog entries, updating prices for names that
// already exist. Safe to run on every startup.
func (r *CatalogRepository) Seed(ctx context.Context, services []domain.CatalogService) error {
	if len(services) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"default_price"}),
		}).
		Create(&services).Error
}
