package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vis-sol/offerflow/internal/domain"
	"github.com/vis-sol/offerflow/internal/pricing"
)

func TestCalculateTotal(t *testing.T) {
	t.Run("sums quantity times unit price", func(t *testing.T) {
		items := []domain.LineItem{
			{Name: "Projekt i realizacja strony WWW", Quantity: 20, UnitPrice: 60},
			{Name: "Optymalizacja SEO", Quantity: 20, UnitPrice: 60},
		}
		assert.InDelta(t, 2400, pricing.CalculateTotal(items), 1e-9)
	})

	t.Run("single item", func(t *testing.T) {
		items := []domain.LineItem{
			{Name: "Konsultacja IT/architektura", Quantity: 2.5, UnitPrice: 60},
		}
		assert.InDelta(t, 150, pricing.CalculateTotal(items), 1e-9)
	})

	t.Run("empty list totals zero", func(t *testing.T) {
		assert.Zero(t, pricing.CalculateTotal(nil))
		assert.Zero(t, pricing.CalculateTotal([]domain.LineItem{}))
	})

	t.Run("zero-price items contribute nothing", func(t *testing.T) {
		items := []domain.LineItem{
			{Name: "Wsparcie techniczne miesięczne", Quantity: 10, UnitPrice: 0},
			{Name: "Audyt bezpieczeństwa", Quantity: 1, UnitPrice: 90},
		}
		assert.InDelta(t, 90, pricing.CalculateTotal(items), 1e-9)
	})
}

func TestTotalHours(t *testing.T) {
	items := []domain.LineItem{
		{Quantity: 20, UnitPrice: 60},
		{Quantity: 12.5, UnitPrice: 80},
	}
	assert.InDelta(t, 32.5, pricing.TotalHours(items), 1e-9)
	assert.Zero(t, pricing.TotalHours(nil))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "2400.00 PLN", pricing.FormatAmount(2400))
	assert.Equal(t, "150.50 PLN", pricing.FormatAmount(150.5))
	assert.Equal(t, "0.00 PLN", pricing.FormatAmount(0))
}
