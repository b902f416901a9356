package billing

import (
	"fmt"
	"strings"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ItemAmounts holds the derived monetary values for a single line item.
type ItemAmounts struct {
	Subtotal       decimal.Decimal // quantity * unit price
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
}

// PriceItem computes the derived amounts for one line item:
//
//	tax      = quantity * unitPrice * (taxRate / 100)
//	discount = quantity * unitPrice * (discountRate / 100)
//	total    = quantity * unitPrice + tax - discount
//
// All arithmetic is exact decimal; rounding to currency precision happens only
// at serialization boundaries. Zero quantity or price is valid input here;
// validation belongs to the caller, pricing only computes.
func PriceItem(quantity, unitPrice, taxRate, discountRate decimal.Decimal) ItemAmounts {
	subtotal := quantity.Mul(unitPrice)
	tax := subtotal.Mul(taxRate.Div(oneHundred))
	discount := subtotal.Mul(discountRate.Div(oneHundred))
	return ItemAmounts{
		Subtotal:       subtotal,
		TaxAmount:      tax,
		DiscountAmount: discount,
		TotalAmount:    subtotal.Add(tax).Sub(discount),
	}
}

// InvoiceTotals is the aggregate of all line item contributions.
type InvoiceTotals struct {
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal // subtotal + tax - discount
}

// PriceItems fills in the derived amounts on each item in place and returns
// the invoice totals. The sum is commutative, so item order does not affect
// the result, and an empty item list legitimately yields all-zero totals.
func PriceItems(items []domain.InvoiceItem) InvoiceTotals {
	totals := InvoiceTotals{
		Subtotal:       decimal.Zero,
		TaxAmount:      decimal.Zero,
		DiscountAmount: decimal.Zero,
		TotalAmount:    decimal.Zero,
	}
	for i := range items {
		amounts := PriceItem(items[i].Quantity, items[i].UnitPrice, items[i].TaxRate, items[i].DiscountRate)
		items[i].TaxAmount = amounts.TaxAmount
		items[i].DiscountAmount = amounts.DiscountAmount
		items[i].TotalAmount = amounts.TotalAmount

		totals.Subtotal = totals.Subtotal.Add(amounts.Subtotal)
		totals.TaxAmount = totals.TaxAmount.Add(amounts.TaxAmount)
		totals.DiscountAmount = totals.DiscountAmount.Add(amounts.DiscountAmount)
	}
	totals.TotalAmount = totals.Subtotal.Add(totals.TaxAmount).Sub(totals.DiscountAmount)
	return totals
}

// FormatCurrency renders an amount as INR for display: "Rs. 1,234.50".
// The currency and locale are fixed configuration, not an i18n layer.
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	whole, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("Rs. %s%s.%s", sign, b.String(), frac)
}
