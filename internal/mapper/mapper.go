package mapper

import (
	"github.com/vis-sol/offerflow/internal/domain"
)

// dateLayout is the wire format for offer dates (date-only, no time part)
const dateLayout = "2006-01-02"

// ToOfferDTO converts an Offer to its API representation
func ToOfferDTO(offer *domain.Offer) domain.OfferDTO {
	items := make([]domain.LineItemDTO, len(offer.Items))
	for i, item := range offer.Items {
		items[i] = ToLineItemDTO(&item)
	}

	return domain.OfferDTO{
		ID:                  offer.ID,
		Number:              offer.Number,
		ClientName:          offer.ClientName,
		ClientContactPerson: offer.ClientContactPerson,
		ClientEmail:         offer.ClientEmail,
		ClientPhone:         offer.ClientPhone,
		ProjectName:         offer.ProjectName,
		Amount:              offer.Amount,
		Status:              offer.Status,
		StatusLabel:         offer.Status.Label(),
		CreatedAt:           offer.CreatedAt.Format(dateLayout),
		ValidUntil:          offer.ValidUntil.Format(dateLayout),
		Items:               items,
	}
}

// ToLineItemDTO converts a LineItem to its API representation
func ToLineItemDTO(item *domain.LineItem) domain.LineItemDTO {
	return domain.LineItemDTO{
		Name:      item.Name,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		LineTotal: item.LineTotal(),
	}
}

// ToOfferDTOs converts a slice of offers, preserving order
func ToOfferDTOs(offers []domain.Offer) []domain.OfferDTO {
	dtos := make([]domain.OfferDTO, len(offers))
	for i := range offers {
		dtos[i] = ToOfferDTO(&offers[i])
	}
	return dtos
}

// ToCatalogServiceDTO converts a CatalogService to its API representation
func ToCatalogServiceDTO(service *domain.CatalogService) domain.CatalogServiceDTO {
	return domain.CatalogServiceDTO{
		ID:           service.ID,
		Name:         service.Name,
		DefaultPrice: service.DefaultPrice,
	}
}
