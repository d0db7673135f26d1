package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vis-sol/offerflow/internal/domain"
	"gorm.io/gorm"
)

// EventRepository stores the offer event log: creation, status changes,
// archive exports and email-send requests.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.OfferEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(event).Error
}

// ListByOffer returns the events recorded for an offer, oldest first.
func (r *EventRepository) ListByOffer(ctx context.Context, offerID uint) ([]domain.OfferEvent, error) {
	var events []domain.OfferEvent
	err := r.db.WithContext(ctx).
		Where("offer_id = ?", offerID).
		Order("occurred_at ASC").
		Find(&events).Error
	return events, err
}
