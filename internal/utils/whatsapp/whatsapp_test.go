package whatsapp_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/utils/whatsapp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"98765 43210", "919876543210"},
		{"9876543210", "919876543210"},
		{"919876543210", "919876543210"}, // already prefixed, not doubled
		{"+91 98765-43210", "919876543210"},
		{"+1 415 555 0100", "14155550100"}, // non-local length left as-is
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, whatsapp.NormalizePhone(tt.in))
		})
	}
}

func TestLink_MessageRoundTrips(t *testing.T) {
	message := "Offer: cables & switches at 10% off? Yes!"
	link := whatsapp.Link("9876543210", message)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/919876543210", u.Path)

	// Decoding the query parameter must reproduce the exact original text.
	assert.Equal(t, message, u.Query().Get("text"))
}

func TestProductEnquiryLink(t *testing.T) {
	biz := whatsapp.BusinessInfo{Name: "Garuda Electricals & Hardwares", Phone: "919489114403"}

	link := whatsapp.ProductEnquiryLink(biz, "Ceiling Fan", "Crompton")
	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "/919489114403", u.Path)

	text := u.Query().Get("text")
	assert.Contains(t, text, "Ceiling Fan (Crompton)")
	assert.Contains(t, text, "Garuda Electricals & Hardwares")

	// Brand is omitted cleanly when absent.
	noBrand := whatsapp.ProductEnquiryLink(biz, "Ceiling Fan", "")
	u, err = url.Parse(noBrand)
	require.NoError(t, err)
	assert.NotContains(t, u.Query().Get("text"), "(")
}

func TestInvoiceShareLink(t *testing.T) {
	biz := whatsapp.BusinessInfo{
		Name:    "Garuda Electricals & Hardwares",
		Address: "Gandhigramam, Karur",
		Phone:   "919489114403",
	}
	inv := domain.Invoice{
		InvoiceNumber: "GEH-2025-00042",
		InvoiceDate:   time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		Subtotal:      decimal.RequireFromString("1500.00"),
		TaxAmount:     decimal.RequireFromString("270.00"),
		TotalAmount:   decimal.RequireFromString("1770.00"),
		CustomerName:  "Ravi",
		CustomerPhone: "98765 43210",
		Items: []domain.InvoiceItem{
			{ProductName: "MCB 16A", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.RequireFromString("500.00"), TotalAmount: decimal.RequireFromString("1770.00")},
		},
	}

	link := whatsapp.InvoiceShareLink(biz, inv)
	require.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "GEH-2025-00042")
	assert.Contains(t, text, "Dear Ravi")
	assert.Contains(t, text, "1. MCB 16A")
	assert.Contains(t, text, "Rs. 1,770.00")
}
