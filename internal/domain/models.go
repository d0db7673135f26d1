package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Offer represents a commercial offer (quotation) issued to a client.
// Only Status mutates after creation; Amount is always derived from Items
// and is never set independently.
type Offer struct {
	ID                  uint        `gorm:"primaryKey;autoIncrement:false"`
	Number              string      `gorm:"type:varchar(20);not null;uniqueIndex"`
	ClientName          string      `gorm:"type:varchar(200);not null;index"`
	ClientContactPerson string      `gorm:"type:varchar(200);column:client_contact_person"`
	ClientEmail         string      `gorm:"type:varchar(255);column:client_email"`
	ClientPhone         string      `gorm:"type:varchar(50);column:client_phone"`
	ProjectName         string      `gorm:"type:varchar(200);not null;index"`
	Amount              float64     `gorm:"type:decimal(15,2);not null"`
	Status              OfferStatus `gorm:"type:varchar(50);not null;default:'active';index"`
	CreatedAt           time.Time   `gorm:"not null"`
	ValidUntil          time.Time   `gorm:"not null;column:valid_until"`
	Items               []LineItem  `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
}

// ValidityDays is the fixed offer validity window: ValidUntil = CreatedAt + 14 days.
const ValidityDays = 14

// FormatOfferNumber derives the display number from an offer id and its
// creation year. The format is a fixed external contract: OF/NNN/YYYY.
func FormatOfferNumber(id uint, year int) string {
	return fmt.Sprintf("OF/%03d/%d", id, year)
}

// LineItem represents one billable unit within an offer: a service name,
// a number of hours and a net hourly rate.
type LineItem struct {
	ID        uint    `gorm:"primaryKey"`
	OfferID   uint    `gorm:"not null;index"`
	Position  int     `gorm:"not null"`
	Name      string  `gorm:"type:varchar(200);not null"`
	Quantity  float64 `gorm:"type:decimal(10,2);not null"`
	UnitPrice float64 `gorm:"type:decimal(15,2);not null;column:unit_price"`
}

// LineTotal returns quantity x unit price for this item.
func (i LineItem) LineTotal() float64 {
	return i.Quantity * i.UnitPrice
}

// ArchiveSnapshot carries the immutable fields handed to the archive
// collaborator when an offer enters the archived status.
type ArchiveSnapshot struct {
	Number     string    `json:"number"`
	ClientName string    `json:"clientName"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Snapshot returns the archival snapshot of the offer.
func (o *Offer) Snapshot() ArchiveSnapshot {
	return ArchiveSnapshot{
		Number:     o.Number,
		ClientName: o.ClientName,
		Amount:     o.Amount,
		CreatedAt:  o.CreatedAt,
	}
}

// OfferEventType represents the type of a recorded offer event
type OfferEventType string

const (
	EventOfferCreated    OfferEventType = "offer_created"
	EventStatusChanged   OfferEventType = "status_changed"
	EventArchiveExported OfferEventType = "archive_exported"
	EventEmailRequested  OfferEventType = "email_requested"
)

// OfferEvent is a log entry recorded against an offer: creation, status
// changes, archive exports and email-send requests.
type OfferEvent struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key"`
	OfferID    uint           `gorm:"not null;index;column:offer_id"`
	Number     string         `gorm:"type:varchar(20);not null"`
	Type       OfferEventType `gorm:"type:varchar(50);not null;index"`
	Body       string         `gorm:"type:varchar(2000)"`
	OccurredAt time.Time      `gorm:"not null;column:occurred_at"`
}

// CatalogService is a predefined service offered to clients, with its
// default net hourly rate. Used by the UI to prefill line items.
type CatalogService struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"type:varchar(200);not null;uniqueIndex"`
	DefaultPrice float64 `gorm:"type:decimal(15,2);not null;column:default_price"`
}

// TableName returns the table name for CatalogService
func (CatalogService) TableName() string {
	return "catalog_services"
}
