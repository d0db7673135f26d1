package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vis-sol/offerflow/internal/domain"
	"github.com/vis-sol/offerflow/internal/repository"
	"github.com/vis-sol/offerflow/tests/testutil"
)

func TestCatalogRepository_Seed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCatalogRepository(db)
	ctx := context.Background()

	entries := []domain.CatalogService{
		{Name: "Optymalizacja SEO", DefaultPrice: 60},
		{Name: "Audyt bezpieczeństwa", DefaultPrice: 90},
	}

	t.Run("inserts new entries", func(t *testing.T) {
		require.NoError(t, repo.Seed(ctx, entries))

		services, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, services, 2)
		assert.Equal(t, "Optymalizacja SEO", services[0].Name)
	})

	t.Run("reseeding updates prices without duplicating", func(t *testing.T) {
		updated := []domain.CatalogService{
			{Name: "Optymalizacja SEO", DefaultPrice: 75},
		}
		require.NoError(t, repo.Seed(ctx, updated))

		services, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, services, 2)
		assert.InDelta(t, 75, services[0].DefaultPrice, 1e-9)
	})

	t.Run("empty seed is a no-op", func(t *testing.T) {
		require.NoError(t, repo.Seed(ctx, nil))
	})
}
