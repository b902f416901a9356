package billing_test

import (
	"testing"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/utils/billing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPriceItem(t *testing.T) {
	tests := []struct {
		name         string
		quantity     string
		unitPrice    string
		taxRate      string
		discountRate string
		wantTax      string
		wantDiscount string
		wantTotal    string
	}{
		{
			name:     "no tax no discount is exactly quantity times price",
			quantity: "3", unitPrice: "45.50", taxRate: "0", discountRate: "0",
			wantTax: "0", wantDiscount: "0", wantTotal: "136.50",
		},
		{
			name:     "18 percent GST",
			quantity: "2", unitPrice: "100", taxRate: "18", discountRate: "0",
			wantTax: "36", wantDiscount: "0", wantTotal: "236",
		},
		{
			name:     "tax and discount together",
			quantity: "10", unitPrice: "99.99", taxRate: "18", discountRate: "5",
			wantTax: "179.982", wantDiscount: "49.995", wantTotal: "1129.887",
		},
		{
			name:     "zero quantity computes without error",
			quantity: "0", unitPrice: "250", taxRate: "18", discountRate: "10",
			wantTax: "0", wantDiscount: "0", wantTotal: "0",
		},
		{
			name:     "zero price computes without error",
			quantity: "5", unitPrice: "0", taxRate: "12", discountRate: "0",
			wantTax: "0", wantDiscount: "0", wantTotal: "0",
		},
		{
			name:     "fractional quantity",
			quantity: "2.5", unitPrice: "40", taxRate: "0", discountRate: "10",
			wantTax: "0", wantDiscount: "10", wantTotal: "90",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := billing.PriceItem(dec(tt.quantity), dec(tt.unitPrice), dec(tt.taxRate), dec(tt.discountRate))
			assert.True(t, dec(tt.wantTax).Equal(got.TaxAmount), "tax: want %s got %s", tt.wantTax, got.TaxAmount)
			assert.True(t, dec(tt.wantDiscount).Equal(got.DiscountAmount), "discount: want %s got %s", tt.wantDiscount, got.DiscountAmount)
			assert.True(t, dec(tt.wantTotal).Equal(got.TotalAmount), "total: want %s got %s", tt.wantTotal, got.TotalAmount)
		})
	}
}

func TestPriceItem_NoFloatDrift(t *testing.T) {
	// 0.1 + 0.2 style inputs must sum exactly in decimal arithmetic.
	got := billing.PriceItem(dec("3"), dec("0.10"), dec("0"), dec("0"))
	assert.True(t, dec("0.30").Equal(got.TotalAmount), "got %s", got.TotalAmount)
}

func TestPriceItems_Totals(t *testing.T) {
	items := []domain.InvoiceItem{
		{Quantity: dec("1"), UnitPrice: dec("100.00"), TaxRate: dec("0"), DiscountRate: dec("0")},
		{Quantity: dec("2"), UnitPrice: dec("125.25"), TaxRate: dec("0"), DiscountRate: dec("0")},
		{Quantity: dec("1"), UnitPrice: dec("0"), TaxRate: dec("18"), DiscountRate: dec("5")},
	}

	totals := billing.PriceItems(items)

	assert.True(t, dec("350.50").Equal(totals.Subtotal), "subtotal %s", totals.Subtotal)
	assert.True(t, decimal.Zero.Equal(totals.TaxAmount))
	assert.True(t, decimal.Zero.Equal(totals.DiscountAmount))
	assert.True(t, dec("350.50").Equal(totals.TotalAmount), "total %s", totals.TotalAmount)

	// Derived amounts are written back onto the items.
	assert.True(t, dec("100.00").Equal(items[0].TotalAmount))
	assert.True(t, dec("250.50").Equal(items[1].TotalAmount))
	assert.True(t, decimal.Zero.Equal(items[2].TotalAmount))
}

func TestPriceItems_OrderInvariant(t *testing.T) {
	forward := []domain.InvoiceItem{
		{Quantity: dec("3"), UnitPrice: dec("19.99"), TaxRate: dec("18"), DiscountRate: dec("0")},
		{Quantity: dec("1"), UnitPrice: dec("4500"), TaxRate: dec("28"), DiscountRate: dec("10")},
		{Quantity: dec("12"), UnitPrice: dec("7.25"), TaxRate: dec("5"), DiscountRate: dec("2")},
	}
	reversed := []domain.InvoiceItem{forward[2], forward[1], forward[0]}

	a := billing.PriceItems(forward)
	b := billing.PriceItems(reversed)

	assert.True(t, a.Subtotal.Equal(b.Subtotal))
	assert.True(t, a.TaxAmount.Equal(b.TaxAmount))
	assert.True(t, a.DiscountAmount.Equal(b.DiscountAmount))
	assert.True(t, a.TotalAmount.Equal(b.TotalAmount))
}

func TestPriceItems_EmptyListIsAllZeros(t *testing.T) {
	totals := billing.PriceItems(nil)
	assert.True(t, decimal.Zero.Equal(totals.Subtotal))
	assert.True(t, decimal.Zero.Equal(totals.TaxAmount))
	assert.True(t, decimal.Zero.Equal(totals.DiscountAmount))
	assert.True(t, decimal.Zero.Equal(totals.TotalAmount))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "Rs. 0.00"},
		{"42.5", "Rs. 42.50"},
		{"1234.567", "Rs. 1,234.57"},
		{"1234567.89", "Rs. 1,234,567.89"},
		{"-250", "Rs. -250.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, billing.FormatCurrency(dec(tt.in)))
	}
}

func TestPriceItems_GrandTotalMatchesItemContributions(t *testing.T) {
	items := []domain.InvoiceItem{
		{Quantity: dec("2"), UnitPrice: dec("150"), TaxRate: dec("18"), DiscountRate: dec("0")},
		{Quantity: dec("1"), UnitPrice: dec("80"), TaxRate: dec("12"), DiscountRate: dec("25")},
	}

	totals := billing.PriceItems(items)

	require.Len(t, items, 2)
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.TotalAmount)
	}
	assert.True(t, sum.Equal(totals.TotalAmount), "items sum %s, grand total %s", sum, totals.TotalAmount)
}
