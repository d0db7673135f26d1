package repository

import (
	"context"
	"time"

	"github.com/vis-sol/offerflow/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

// Create persists a new offer together with its items. The numeric id is
// allocated inside the transaction as max(existing ids, 0) + 1 and the
// display number is derived from it, so ids stay monotonic and numbers
// unique even across concurrent creations.
func (r *OfferRepository) Create(ctx context.Context, offer *domain.Offer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxID uint
		query := tx.Model(&domain.Offer{}).Select("COALESCE(MAX(id), 0)")
		// SQLite serializes writers on its own and rejects FOR UPDATE
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := query.Scan(&maxID).Error; err != nil {
			return err
		}

		offer.ID = maxID + 1
		offer.Number = domain.FormatOfferNumber(offer.ID, offer.CreatedAt.Year())
		for i := range offer.Items {
			offer.Items[i].Position = i
		}

		return tx.Create(offer).Error
	})
}

func (r *OfferRepository) GetByID(ctx context.Context, id uint) (*domain.Offer, error) {
	var offer domain.Offer
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&offer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

// UpdateStatus replaces the status of the matching offer. Only the status
// column is touched; every other field is immutable after creation.
func (r *OfferRepository) UpdateStatus(ctx context.Context, id uint, status domain.OfferStatus) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Offer{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the offer and its items permanently.
func (r *OfferRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&domain.Offer{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		// SQLite does not enforce the cascade when run without foreign keys
		return tx.Delete(&domain.LineItem{}, "offer_id = ?", id).Error
	})
}

// List returns all offers with their items, newest-created first.
func (r *OfferRepository) List(ctx context.Context) ([]domain.Offer, error) {
	var offers []domain.Offer
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Order("id DESC").
		Find(&offers).Error
	return offers, err
}

// Count returns the number of stored offers
func (r *OfferRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Offer{}).Count(&count).Error
	return count, err
}

// ListExpirable returns active offers whose validity date lies strictly
// before the given cutoff. Used by the expiry sweep.
func (r *OfferRepository) ListExpirable(ctx context.Context, cutoff time.Time) ([]domain.Offer, error) {
	var offers []domain.Offer
	err := r.db.WithContext(ctx).
		Where("status = ? AND valid_until < ?", domain.OfferStatusActive, cutoff).
		Order("id ASC").
		Find(&offers).Error
	return offers, err
}
