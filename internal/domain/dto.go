package domain

// LineItemRequest is one line item in an offer draft
type LineItemRequest struct {
	Name      string  `json:"name" validate:"required,max=200"`
	Quantity  float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
}

// CreateOfferRequest is the draft collected by the UI for offer creation.
// The amount is never part of the draft; it is derived from the items.
type CreateOfferRequest struct {
	ClientName          string            `json:"clientName" validate:"required,max=200"`
	ClientContactPerson string            `json:"clientContactPerson" validate:"max=200"`
	ClientEmail         string            `json:"clientEmail" validate:"omitempty,email,max=255"`
	ClientPhone         string            `json:"clientPhone" validate:"max=50"`
	ProjectName         string            `json:"projectName" validate:"required,max=200"`
	Items               []LineItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateStatusRequest carries a requested status transition
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// LineItemDTO is the API representation of a line item
type LineItemDTO struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

// OfferDTO is the API representation of an offer
type OfferDTO struct {
	ID                  uint          `json:"id"`
	Number              string        `json:"number"`
	ClientName          string        `json:"clientName"`
	ClientContactPerson string        `json:"clientContactPerson,omitempty"`
	ClientEmail         string        `json:"clientEmail,omitempty"`
	ClientPhone         string        `json:"clientPhone,omitempty"`
	ProjectName         string        `json:"projectName"`
	Amount              float64       `json:"amount"`
	Status              OfferStatus   `json:"status"`
	StatusLabel         string        `json:"statusLabel"`
	CreatedAt           string        `json:"createdAt"`
	ValidUntil          string        `json:"validUntil"`
	Items               []LineItemDTO `json:"items"`
}

// OfferStatsDTO holds dashboard statistics over all offers
type OfferStatsDTO struct {
	Total         int     `json:"total"`
	Active        int     `json:"active"`
	Accepted      int     `json:"accepted"`
	Rejected      int     `json:"rejected"`
	Expired       int     `json:"expired"`
	Archived      int     `json:"archived"`
	TotalValue    float64 `json:"totalValue"`
	AcceptedValue float64 `json:"acceptedValue"`
}

// CatalogServiceDTO is the API representation of a catalog entry
type CatalogServiceDTO struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	DefaultPrice float64 `json:"defaultPrice"`
}

// EmailRequestDTO reports a recorded email-send intent
type EmailRequestDTO struct {
	Number    string `json:"number"`
	Recipient string `json:"recipient"`
}
