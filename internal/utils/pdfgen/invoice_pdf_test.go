package pdfgen_test

import (
	"testing"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/utils/pdfgen"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBusiness() pdfgen.BusinessInfo {
	return pdfgen.BusinessInfo{
		Name:    "Garuda Electricals & Hardwares",
		Address: "Gandhigramam, Karur - 639004",
		Phone:   "919489114403",
		Email:   "garudaelectrical@gmail.com",
		GSTIN:   "33BLPPS4603G1Z0",
	}
}

func sampleInvoice() domain.Invoice {
	due := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	return domain.Invoice{
		InvoiceNumber:   "GEH-2025-00042",
		InvoiceDate:     time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		DueDate:         &due,
		Subtotal:        decimal.RequireFromString("1500.00"),
		TaxAmount:       decimal.RequireFromString("270.00"),
		DiscountAmount:  decimal.RequireFromString("75.00"),
		TotalAmount:     decimal.RequireFromString("1695.00"),
		PaymentStatus:   domain.PaymentPending,
		Notes:           "Delivery within 3 working days.",
		CustomerName:    "Ravi Kumar",
		CustomerPhone:   "9876543210",
		CustomerAddress: "12 Main Road, Karur",
		CustomerGST:     "33AAAAA0000A1Z5",
		Items: []domain.InvoiceItem{
			{
				ProductName: "MCB 16A",
				Quantity:    decimal.NewFromInt(3),
				Unit:        "piece",
				UnitPrice:   decimal.RequireFromString("500.00"),
				TaxRate:     decimal.RequireFromString("18"),
				TotalAmount: decimal.RequireFromString("1695.00"),
			},
		},
	}
}

func TestRenderInvoice(t *testing.T) {
	generatedAt := time.Date(2025, time.June, 1, 14, 30, 0, 0, time.UTC)

	out, err := pdfgen.RenderInvoice(sampleInvoice(), sampleBusiness(), generatedAt)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	// A syntactically valid PDF starts with a version marker and ends with EOF.
	assert.Equal(t, "%PDF", string(out[:4]))
	assert.Contains(t, string(out[len(out)-32:]), "%%EOF")
}

func TestRenderInvoice_OptionalFieldsAbsent(t *testing.T) {
	inv := sampleInvoice()
	inv.DueDate = nil
	inv.Notes = ""
	inv.CustomerAddress = ""
	inv.CustomerGST = ""

	out, err := pdfgen.RenderInvoice(inv, sampleBusiness(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderInvoice_ManyItemsPaginates(t *testing.T) {
	inv := sampleInvoice()
	inv.Items = nil
	for i := 0; i < 60; i++ {
		inv.Items = append(inv.Items, domain.InvoiceItem{
			ProductName: "Copper Wire 1.5 sqmm",
			Quantity:    decimal.NewFromInt(int64(i + 1)),
			Unit:        "meter",
			UnitPrice:   decimal.RequireFromString("28.50"),
			TaxRate:     decimal.RequireFromString("18"),
			TotalAmount: decimal.RequireFromString("33.63"),
		})
	}

	out, err := pdfgen.RenderInvoice(inv, sampleBusiness(), time.Now())
	require.NoError(t, err)

	// 60 rows cannot fit a single A4 page; the document must still be valid.
	assert.Greater(t, len(out), 4096)
	assert.Equal(t, "%PDF", string(out[:4]))
}
