// Package archive receives the archival signal the core emits when an offer
// enters the archived status. The exporter here stores the rendered document
// in the configured document store; the core itself never performs storage.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/vis-sol/offerflow/internal/domain"
	"github.com/vis-sol/offerflow/internal/storage"
	"go.uber.org/zap"
)

// Notifier is notified when an offer is archived. It receives the offer's
// immutable snapshot and its rendered printable document.
type Notifier interface {
	OfferArchived(ctx context.Context, snapshot domain.ArchiveSnapshot, document []byte) error
}

// Exporter implements Notifier by exporting the rendered document to the
// archived-document store for long-term storage.
type Exporter struct {
	store  storage.Storage
	logger *zap.Logger
}

func NewExporter(store storage.Storage, logger *zap.Logger) *Exporter {
	return &Exporter{store: store, logger: logger}
}

// OfferArchived stores the document under a path derived from the offer
// number, e.g. "OF-001-2025.html".
func (e *Exporter) OfferArchived(ctx context.Context, snapshot domain.ArchiveSnapshot, document []byte) error {
	path := DocumentPath(snapshot.Number)

	size, err := e.store.Upload(ctx, path, "text/html; charset=utf-8", bytes.NewReader(document))
	if err != nil {
		return fmt.Errorf("failed to export archived offer %s: %w", snapshot.Number, err)
	}

	e.logger.Info("archived offer exported",
		zap.String("number", snapshot.Number),
		zap.String("client", snapshot.ClientName),
		zap.Float64("amount", snapshot.Amount),
		zap.String("path", path),
		zap.Int64("size", size),
	)

	return nil
}

// DocumentPath derives the storage path for an offer number. Slashes in the
// number are not valid in blob or file names.
func DocumentPath(number string) string {
	return strings.ReplaceAll(number, "/", "-") + ".html"
}
