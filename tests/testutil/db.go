package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vis-sol/offerflow/internal/database"
	"github.com/vis-sol/offerflow/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database with the full schema.
// Each test gets an isolated database; no external services are required.
func SetupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err, "Failed to open in-memory test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second connection would see a separate empty :memory: database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db), "Failed to migrate test database")

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// CreateTestOffer inserts an offer with two line items directly, bypassing
// the repository id allocation. The caller picks the id and status.
func CreateTestOffer(t *testing.T, db *gorm.DB, id uint, clientName, projectName string, status domain.OfferStatus) *domain.Offer {
	createdAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	offer := &domain.Offer{
		ID:          id,
		Number:      domain.FormatOfferNumber(id, createdAt.Year()),
		ClientName:  clientName,
		ProjectName: projectName,
		Amount:      2400,
		Status:      status,
		CreatedAt:   createdAt,
		ValidUntil:  createdAt.AddDate(0, 0, domain.ValidityDays),
		Items: []domain.LineItem{
			{Position: 0, Name: "Projekt i realizacja strony WWW", Quantity: 20, UnitPrice: 60},
			{Position: 1, Name: "Optymalizacja SEO", Quantity: 20, UnitPrice: 60},
		},
	}
	require.NoError(t, db.Create(offer).Error)
	return offer
}
