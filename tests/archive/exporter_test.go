package archive_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vis-sol/offerflow/internal/archive"
	"github.com/vis-sol/offerflow/internal/domain"
	"github.com/vis-sol/offerflow/internal/storage"
	"go.uber.org/zap"
)

func TestDocumentPath(t *testing.T) {
	assert.Equal(t, "OF-001-2025.html", archive.DocumentPath("OF/001/2025"))
	assert.Equal(t, "OF-042-2024.html", archive.DocumentPath("OF/042/2024"))
}

func TestExporter_OfferArchived(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	exporter := archive.NewExporter(store, zap.NewNop())
	ctx := context.Background()

	snapshot := domain.ArchiveSnapshot{
		Number:     "OF/001/2025",
		ClientName: "Alfa Sp. z o.o.",
		Amount:     2400,
		CreatedAt:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	document := []byte("<html><body>RAZEM: 2400.00 PLN</body></html>")

	require.NoError(t, exporter.OfferArchived(ctx, snapshot, document))

	t.Run("document lands under the derived path", func(t *testing.T) {
		reader, err := store.Download(ctx, "OF-001-2025.html")
		require.NoError(t, err)
		defer reader.Close()

		stored, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.Equal(t, document, stored)
	})

	t.Run("re-export overwrites the previous document", func(t *testing.T) {
		updated := []byte("<html><body>updated</body></html>")
		require.NoError(t, exporter.OfferArchived(ctx, snapshot, updated))

		reader, err := store.Download(ctx, "OF-001-2025.html")
		require.NoError(t, err)
		defer reader.Close()

		stored, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.Equal(t, updated, stored)
	})
}
