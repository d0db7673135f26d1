// Package pricing implements the monetary computation rules for offers.
// All functions are pure; totals are accumulated at full float64 precision
// and rounded to two decimals only when formatted for presentation.
package pricing

import (
	"fmt"

	"github.com/vis-sol/offerflow/internal/domain"
)

// Currency is the suffix appended to formatted amounts.
const Currency = "PLN"

// CalculateTotal returns the sum of quantity x unit price across the items.
// An empty slice yields 0.
func CalculateTotal(items []domain.LineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Quantity * item.UnitPrice
	}
	return total
}

// TotalHours returns the sum of item quantities. Used by the document
// renderer to parameterize the estimated-effort clause.
func TotalHours(items []domain.LineItem) float64 {
	hours := 0.0
	for _, item := range items {
		hours += item.Quantity
	}
	return hours
}

// FormatAmount renders a monetary value with exactly two decimal places and
// the currency suffix, e.g. "2400.00 PLN".
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f %s", amount, Currency)
}
