package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vis-sol/offerflow/internal/repository"
	"github.com/vis-sol/offerflow/internal/service"
	"github.com/vis-sol/offerflow/tests/testutil"
	"go.uber.org/zap"
)

func TestCatalogService_SeedDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewCatalogService(repository.NewCatalogRepository(db), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx))

	services, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, services, 10)

	byName := make(map[string]float64, len(services))
	for _, s := range services {
		byName[s.Name] = s.DefaultPrice
	}
	assert.InDelta(t, 60, byName["Projekt i realizacja strony WWW"], 1e-9)
	assert.InDelta(t, 90, byName["Aplikacja mobilna iOS/Android"], 1e-9)
	assert.InDelta(t, 100, byName["Wsparcie techniczne miesięczne"], 1e-9)

	t.Run("seeding twice keeps the catalog stable", func(t *testing.T) {
		require.NoError(t, svc.SeedDefaults(ctx))

		services, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, services, 10)
	})
}
