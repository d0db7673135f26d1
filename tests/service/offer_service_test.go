package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vis-sol/offerflow/internal/archive"
	"github.com/vis-sol/offerflow/internal/config"
	"github.com/vis-sol/offerflow/internal/domain"
	"github.com/vis-sol/offerflow/internal/render"
	"github.com/vis-sol/offerflow/internal/repository"
	"github.com/vis-sol/offerflow/internal/service"
	"github.com/vis-sol/offerflow/tests/testutil"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// recordingArchiver captures archive signals for assertions
type recordingArchiver struct {
	snapshots []domain.ArchiveSnapshot
	documents [][]byte
}

func (a *recordingArchiver) OfferArchived(ctx context.Context, snapshot domain.ArchiveSnapshot, document []byte) error {
	a.snapshots = append(a.snapshots, snapshot)
	a.documents = append(a.documents, document)
	return nil
}

var _ archive.Notifier = (*recordingArchiver)(nil)

func testIssuer() *config.IssuerConfig {
	return &config.IssuerConfig{
		CompanyName:   "VIS-SOL",
		Tagline:       "Dedykowane rozwiązania IT",
		Email:         "biuro@vis-sol.pl",
		Phone:         "783 864 780",
		Website:       "vis-sol.prv.pl",
		FallbackEmail: "klient@firma.pl",
	}
}

type serviceFixture struct {
	svc       *service.OfferService
	db        *gorm.DB
	eventRepo *repository.EventRepository
	archiver  *recordingArchiver
}

func setupOfferService(t *testing.T) *serviceFixture {
	db := testutil.SetupTestDB(t)

	offerRepo := repository.NewOfferRepository(db)
	eventRepo := repository.NewEventRepository(db)
	renderer, err := render.NewRenderer(testIssuer())
	require.NoError(t, err)
	archiver := &recordingArchiver{}

	svc := service.NewOfferService(offerRepo, eventRepo, renderer, archiver, testIssuer(), zap.NewNop())
	svc.SetClock(func() time.Time {
		return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	})

	return &serviceFixture{svc: svc, db: db, eventRepo: eventRepo, archiver: archiver}
}

func validDraft() *domain.CreateOfferRequest {
	return &domain.CreateOfferRequest{
		ClientName:  "Alfa Sp. z o.o.",
		ClientEmail: "kontakt@alfa.pl",
		ProjectName: "Sklep internetowy",
		Items: []domain.LineItemRequest{
			{Name: "Projekt i realizacja strony WWW", Quantity: 20, UnitPrice: 60},
			{Name: "Optymalizacja SEO", Quantity: 20, UnitPrice: 60},
		},
	}
}

func TestOfferService_Create(t *testing.T) {
	f := setupOfferService(t)
	ctx := context.Background()

	t.Run("creates offer with derived fields", func(t *testing.T) {
		dto, err := f.svc.Create(ctx, validDraft())
		require.NoError(t, err)

		assert.Equal(t, uint(1), dto.ID)
		assert.Equal(t, "OF/001/2025", dto.Number)
		assert.Equal(t, domain.OfferStatusActive, dto.Status)
		assert.Equal(t, "Aktywna", dto.StatusLabel)
		assert.InDelta(t, 2400, dto.Amount, 1e-9)
		assert.Equal(t, "2025-03-10", dto.CreatedAt)
		assert.Equal(t, "2025-03-24", dto.ValidUntil)
		require.Len(t, dto.Items, 2)
		assert.InDelta(t, 1200, dto.Items[0].LineTotal, 1e-9)
	})

	t.Run("records a creation event", func(t *testing.T) {
		events, err := f.eventRepo.ListByOffer(ctx, 1)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, domain.EventOfferCreated, events[0].Type)
		assert.Equal(t, "OF/001/2025", events[0].Number)
	})

	t.Run("trims whitespace from text fields", func(t *testing.T) {
		draft := validDraft()
		draft.ClientName = "  Beta Solutions  "
		draft.ProjectName = " Portal klienta "

		dto, err := f.svc.Create(ctx, draft)
		require.NoError(t, err)
		assert.Equal(t, "Beta Solutions", dto.ClientName)
		assert.Equal(t, "Portal klienta", dto.ProjectName)
	})
}

func TestOfferService_Create_Validation(t *testing.T) {
	f := setupOfferService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*domain.CreateOfferRequest)
	}{
		{"blank client name", func(r *domain.CreateOfferRequest) { r.ClientName = "   " }},
		{"blank project name", func(r *domain.CreateOfferRequest) { r.ProjectName = "" }},
		{"no items", func(r *domain.CreateOfferRequest) { r.Items = nil }},
		{"blank item name", func(r *domain.CreateOfferRequest) { r.Items[0].Name = "  " }},
		{"zero quantity", func(r *domain.CreateOfferRequest) { r.Items[0].Quantity = 0 }},
		{"negative quantity", func(r *domain.CreateOfferRequest) { r.Items[0].Quantity = -5 }},
		{"negative unit price", func(r *domain.CreateOfferRequest) { r.Items[0].UnitPrice = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(draft)

			_, err := f.svc.Create(ctx, draft)
			assert.ErrorIs(t, err, service.ErrValidation)
		})
	}

	t.Run("nothing is persisted on validation failure", func(t *testing.T) {
		var count int64
		require.NoError(t, f.db.Model(&domain.Offer{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestOfferService_List(t *testing.T) {
	f := setupOfferService(t)
	ctx := context.Background()

	testutil.CreateTestOffer(t, f.db, 1, "Alfa Sp. z o.o.", "Sklep internetowy", domain.OfferStatusActive)
	testutil.CreateTestOffer(t, f.db, 2, "Beta Solutions", "Portal klienta", domain.OfferStatusAccepted)

	t.Run("empty filter defaults to all", func(t *testing.T) {
		offers, err := f.svc.List(ctx, "", "")
		require.NoError(t, err)
		assert.Len(t, offers, 2)
	})

	t.Run("status narrows the result", func(t *testing.T) {
		offers, err := f.svc.List(ctx, "accepted", "")
		require.NoError(t, err)
		require.Len(t, offers, 1)
		assert.Equal(t, "Beta Solutions", offers[0].ClientName)
	})

	t.Run("query matches case-insensitively", func(t *testing.T) {
		offers, err := f.svc.List(ctx, "all", "ALFA")
		require.NoError(t, err)
		require.Len(t, offers, 1)
		assert.Equal(t, uint(1), offers[0].ID)
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		_, err := f.svc.List(ctx, "draft", "")
		assert.ErrorIs(t, err, service.ErrUnknownStatus)
	})
}

func TestOfferService_UpdateStatus(t *testing.T) {
	f := setupOfferService(t)
	ctx := context.Background()

	testutil.CreateTestOffer(t, f.db, 1, "Alfa Sp. z o.o.", "Sklep internetowy", domain.OfferStatusActive)

	t.Run("moves known statuses freely", func(t *testing.T) {
		dto, err := f.svc.UpdateStatus(ctx, 1, "accepted")
		require.NoError(t, err)
		assert.Equal(t, domain.OfferStatusAccepted, dto.Status)

		// restoring an expired offer to active is permitted
		_, err = f.svc.UpdateStatus(ctx, 1, "expired")
		require.NoError(t, err)
		dto, err = f.svc.UpdateStatus(ctx, 1, "active")
		require.NoError(t, err)
		assert.Equal(t, domain.OfferStatusActive, dto.Status)
	})

	t.Run("records status change events", func(t *testing.T) {
		events, err := f.eventRepo.ListByOffer(ctx, 1)
		require.NoError(t, err)
		require.Len(t, events, 3)
		for _, event := range events {
			assert.Equal(t, domain.EventStatusChanged, event.Type)
		}
	})

	t.Run("unknown status is rejected before any lookup", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(ctx, 1, "draft")
		assert.ErrorIs(t, err, service.ErrUnknownStatus)

		_, err = f.svc.UpdateStatus(ctx, 999, "draft")
		assert.ErrorIs(t, err, service.ErrUnknownStatus)
	})

	t.Run("unknown offer yields not found", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(ctx, 999, "accepted")
		assert.ErrorIs(t, err, service.ErrOfferNotFound)
	})
}

func TestOfferService_Archive(t *testing.T) {
	f := setupOfferService(t)
	ctx := context.Background()

	offer := testutil.CreateTestOffer(t, f.db, 1, "Alfa Sp. z o.o.", "Sklep internetowy", domain.OfferStatusActive)

	dto, err := f.svc.UpdateStatus(ctx, 1, "archived")
	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusArchived, dto.Status)

	t.Run("emits the archive signal with a snapshot", func(t *testing.T) {
		require.Len(t, f.archiver.snapshots, 1)
		snapshot := f.archiver.snapshots[0]
		assert.Equal(t, offer.Number, snapshot.Number)
		assert.Equal(t, offer.ClientName, snapshot.ClientName)
		assert.InDelta(t, offer.Amount, snapshot.Amount, 1e-9)
		assert.True(t, snapshot.CreatedAt.Equal(offer.CreatedAt))
	})

	t.Run("the exported document reproduces the stored amount", func(t *testing.T) {
		require.Len(t, f.archiver.documents, 1)
		assert.Contains(t, string(f.archiver.documents[0]), "2400.00 PLN")
	})

	t.Run("records an archive export event", func(t *testing.T) {
		events, err := f.eventRepo.ListByOffer(ctx, 1)
		require.NoError(t, err)

		var exported int
		for _, event := range events {
			if event.Type == domain.EventArchiveExported {
				exported++
			}
		}
		assert.Equal(t, 1, exported)
	})

	t.Run("re-archiving does not export twice", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(ctx, 1, "archived")
		require.NoError(t, err)
		assert.Len(t, f.archiver.snapshots, 1)
	})
}

func TestOfferService_Delete(t *testing.T) {
	f := setupOfferService(t)
	ctx := context.Background()

	testutil.CreateTestOffer(t, f.db, 1, "Alfa Sp. z o.o.", "Sklep internetowy", domain.OfferStatusActive)

	t.Run("removes the offer", func(t *testing.T) {
		require.NoError(t, f.svc.Delete(ctx, 1))
		_, err := f.svc.GetByID(ctx, 1)
		assert.ErrorIs(t, err, service.ErrOfferNotFound)
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		err := f.svc.Delete(ctx, 999)
		assert.ErrorIs(t, err, service.ErrOfferNotFound)
	})
}

func TestOfferService_RequestEmailSend(t *testing.T) {
	f := setupOfferService(t)
	ctx := context.Background()

	withEmail := testutil.CreateTestOffer(t, f.db, 1, "Alfa Sp. z o.o.", "Sklep internetowy", domain.OfferStatusActive)
	require.NoError(t, f.db.Model(withEmail).Update("client_email", "kontakt@alfa.pl").Error)
	testutil.CreateTestOffer(t, f.db, 2, "Beta Solutions", "Portal klienta", domain.OfferStatusActive)

	t.Run("uses the client email when present", func(t *testing.T) {
		intent, err := f.svc.RequestEmailSend(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "OF/001/2025", intent.Number)
		assert.Equal(t, "kontakt@alfa.pl", intent.Recipient)
	})

	t.Run("falls back to the configured default recipient", func(t *testing.T) {
		intent, err := f.svc.RequestEmailSend(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "klient@firma.pl", intent.Recipient)
	})

	t.Run("records an email request event", func(t *testing.T) {
		events, err := f.eventRepo.ListByOffer(ctx, 1)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, domain.EventEmailRequested, events[0].Type)
	})

	t.Run("unknown offer yields not found", func(t *testing.T) {
		_, err := f.svc.RequestEmailSend(ctx, 999)
		assert.ErrorIs(t, err, service.ErrOfferNotFound)
	})
}

func TestOfferService_ExpireOverdue(t *testing.T) {
	f := setupOfferService(t)
	ctx := context.Background()

	// fixture offers are valid until 2025-03-24
	testutil.CreateTestOffer(t, f.db, 1, "Alfa", "Projekt A", domain.OfferStatusActive)
	testutil.CreateTestOffer(t, f.db, 2, "Beta", "Projekt B", domain.OfferStatusAccepted)

	t.Run("nothing to expire inside the validity window", func(t *testing.T) {
		expired, err := f.svc.ExpireOverdue(ctx)
		require.NoError(t, err)
		assert.Zero(t, expired)
	})

	t.Run("expires active offers past their validity date", func(t *testing.T) {
		f.svc.SetClock(func() time.Time {
			return time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
		})

		expired, err := f.svc.ExpireOverdue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, expired)

		dto, err := f.svc.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.OfferStatusExpired, dto.Status)

		// accepted offers are untouched
		dto, err = f.svc.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, domain.OfferStatusAccepted, dto.Status)
	})
}
