package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vis-sol/offerflow/internal/domain"
	"github.com/vis-sol/offerflow/internal/repository"
	"github.com/vis-sol/offerflow/internal/service"
	"github.com/vis-sol/offerflow/tests/testutil"
	"go.uber.org/zap"
)

func TestDashboardService_Stats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewDashboardService(repository.NewOfferRepository(db), zap.NewNop())
	ctx := context.Background()

	t.Run("empty database yields zero stats", func(t *testing.T) {
		stats, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.Total)
		assert.Zero(t, stats.TotalValue)
		assert.Zero(t, stats.AcceptedValue)
	})

	// each fixture offer is worth 2400
	testutil.CreateTestOffer(t, db, 1, "Alfa", "Projekt A", domain.OfferStatusActive)
	testutil.CreateTestOffer(t, db, 2, "Beta", "Projekt B", domain.OfferStatusAccepted)
	testutil.CreateTestOffer(t, db, 3, "Gamma", "Projekt C", domain.OfferStatusAccepted)
	testutil.CreateTestOffer(t, db, 4, "Delta", "Projekt D", domain.OfferStatusRejected)
	testutil.CreateTestOffer(t, db, 5, "Epsilon", "Projekt E", domain.OfferStatusArchived)

	t.Run("aggregates counts and values per status", func(t *testing.T) {
		stats, err := svc.Stats(ctx)
		require.NoError(t, err)

		assert.Equal(t, 5, stats.Total)
		assert.Equal(t, 1, stats.Active)
		assert.Equal(t, 2, stats.Accepted)
		assert.Equal(t, 1, stats.Rejected)
		assert.Equal(t, 0, stats.Expired)
		assert.Equal(t, 1, stats.Archived)
		assert.InDelta(t, 12000, stats.TotalValue, 1e-9)
		assert.InDelta(t, 4800, stats.AcceptedValue, 1e-9)
	})
}
