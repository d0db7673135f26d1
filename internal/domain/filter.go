package domain

import "strings"

// StatusFilterAll bypasses status filtering in FilterOffers.
const StatusFilterAll = "all"

// FilterOffers returns the offers matching both the status filter and the
// search query. statusFilter is "all" or one of the status enum values.
// The query is matched case-insensitively as a substring of the client name,
// the offer number or the project name; an empty query matches everything.
// Input order is preserved and the input slice is never mutated.
func FilterOffers(offers []Offer, statusFilter string, query string) []Offer {
	q := strings.ToLower(query)

	filtered := make([]Offer, 0, len(offers))
	for _, offer := range offers {
		if statusFilter != StatusFilterAll && string(offer.Status) != statusFilter {
			continue
		}
		if q != "" && !matchesQuery(&offer, q) {
			continue
		}
		filtered = append(filtered, offer)
	}
	return filtered
}

func matchesQuery(offer *Offer, q string) bool {
	return strings.Contains(strings.ToLower(offer.ClientName), q) ||
		strings.Contains(strings.ToLower(offer.Number), q) ||
		strings.Contains(strings.ToLower(offer.ProjectName), q)
}
