package domain

// OfferStatus represents the lifecycle state of an offer
type OfferStatus string

const (
	OfferStatusActive   OfferStatus = "active"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusRejected OfferStatus = "rejected"
	OfferStatusExpired  OfferStatus = "expired"
	OfferStatusArchived OfferStatus = "archived"
)

// AllStatuses lists every lifecycle state in display order.
var AllStatuses = []OfferStatus{
	OfferStatusActive,
	OfferStatusAccepted,
	OfferStatusRejected,
	OfferStatusExpired,
	OfferStatusArchived,
}

// IsValid checks if the OfferStatus is a valid enum value
func (s OfferStatus) IsValid() bool {
	switch s {
	case OfferStatusActive, OfferStatusAccepted, OfferStatusRejected, OfferStatusExpired, OfferStatusArchived:
		return true
	}
	return false
}

// statusLabels maps each status to its printable (Polish) label.
var statusLabels = map[OfferStatus]string{
	OfferStatusActive:   "Aktywna",
	OfferStatusAccepted: "Zaakceptowana",
	OfferStatusRejected: "Odrzucona",
	OfferStatusExpired:  "Przedawniona",
	OfferStatusArchived: "Zarchiwizowana",
}

// Label returns the printable label for the status.
func (s OfferStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// statusTransitions is the transition table for the offer state machine.
// Every pair is currently permitted, including moving an archived offer back
// to any other state. Restricting a transition is a single entry change here.
var statusTransitions = map[OfferStatus]map[OfferStatus]bool{
	OfferStatusActive:   {OfferStatusActive: true, OfferStatusAccepted: true, OfferStatusRejected: true, OfferStatusExpired: true, OfferStatusArchived: true},
	OfferStatusAccepted: {OfferStatusActive: true, OfferStatusAccepted: true, OfferStatusRejected: true, OfferStatusExpired: true, OfferStatusArchived: true},
	OfferStatusRejected: {OfferStatusActive: true, OfferStatusAccepted: true, OfferStatusRejected: true, OfferStatusExpired: true, OfferStatusArchived: true},
	OfferStatusExpired:  {OfferStatusActive: true, OfferStatusAccepted: true, OfferStatusRejected: true, OfferStatusExpired: true, OfferStatusArchived: true},
	OfferStatusArchived: {OfferStatusActive: true, OfferStatusAccepted: true, OfferStatusRejected: true, OfferStatusExpired: true, OfferStatusArchived: true},
}

// CanTransition reports whether moving from one status to another is allowed.
// Both statuses must be valid enum values.
func CanTransition(from, to OfferStatus) bool {
	targets, ok := statusTransitions[from]
	if !ok {
		return false
	}
	return targets[to]
}
