package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vis-sol/offerflow/internal/domain"
	"github.com/vis-sol/offerflow/internal/repository"
	"github.com/vis-sol/offerflow/tests/testutil"
)

func TestEventRepository_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewEventRepository(db)
	ctx := context.Background()

	t.Run("fills defaults for id and timestamp", func(t *testing.T) {
		event := &domain.OfferEvent{
			OfferID: 1,
			Number:  "OF/001/2025",
			Type:    domain.EventOfferCreated,
			Body:    "Oferta OF/001/2025 utworzona",
		}
		require.NoError(t, repo.Create(ctx, event))
		assert.NotEqual(t, uuid.Nil, event.ID)
		assert.False(t, event.OccurredAt.IsZero())
	})

	t.Run("keeps a provided id and timestamp", func(t *testing.T) {
		id := uuid.New()
		at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		event := &domain.OfferEvent{
			ID:         id,
			OfferID:    1,
			Number:     "OF/001/2025",
			Type:       domain.EventStatusChanged,
			OccurredAt: at,
		}
		require.NoError(t, repo.Create(ctx, event))
		assert.Equal(t, id, event.ID)
		assert.Equal(t, at, event.OccurredAt)
	})
}

func TestEventRepository_ListByOffer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewEventRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	for i, eventType := range []domain.OfferEventType{
		domain.EventOfferCreated,
		domain.EventStatusChanged,
		domain.EventArchiveExported,
	} {
		require.NoError(t, repo.Create(ctx, &domain.OfferEvent{
			OfferID:    1,
			Number:     "OF/001/2025",
			Type:       eventType,
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Create(ctx, &domain.OfferEvent{
		OfferID: 2,
		Number:  "OF/002/2025",
		Type:    domain.EventOfferCreated,
	}))

	events, err := repo.ListByOffer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, domain.EventOfferCreated, events[0].Type)
	assert.Equal(t, domain.EventStatusChanged, events[1].Type)
	assert.Equal(t, domain.EventArchiveExported, events[2].Type)
}
