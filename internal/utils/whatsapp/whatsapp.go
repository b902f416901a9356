// Package whatsapp builds WhatsApp click-to-chat deep links. It only
// constructs URL strings; delivery happens when the user opens the link, so
// there is no network effect, retry, or send confirmation here.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/utils/billing"
)

const (
	baseURL     = "https://wa.me/"
	countryCode = "91" // India; local numbers are 10 digits
)

// BusinessInfo carries the business identity fields used in message templates.
// The values are pass-through configuration, not read from the environment here.
type BusinessInfo struct {
	Name    string
	Address string
	Phone   string
}

// NormalizePhone strips a phone number down to digits and prefixes the country
// code when a bare 10-digit local number is supplied. Numbers that already
// carry the country code are left unchanged (never double-prefixed).
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 10 {
		return countryCode + digits
	}
	return digits
}

// Link builds a click-to-chat URL for the given phone and pre-filled message.
// The message is percent-encoded so it round-trips through the text query
// parameter exactly.
func Link(phone, message string) string {
	return fmt.Sprintf("%s%s?text=%s", baseURL, NormalizePhone(phone), url.QueryEscape(message))
}

// ProductEnquiryLink builds a link that opens a chat with the business,
// pre-filled with an enquiry about the given product.
func ProductEnquiryLink(business BusinessInfo, productName, productBrand string) string {
	brand := ""
	if productBrand != "" {
		brand = fmt.Sprintf(" (%s)", productBrand)
	}
	message := fmt.Sprintf(`Hi! I'm interested in the following product from %s:

Product: %s%s

Please provide more details about:
- Price
- Availability
- Delivery options

Thank you!`, business.Name, productName, brand)
	return Link(business.Phone, message)
}

// InvoiceShareLink builds a link that opens a chat with the customer,
// pre-filled with the invoice summary and itemized purchases.
func InvoiceShareLink(business BusinessInfo, inv domain.Invoice) string {
	var items strings.Builder
	for i, item := range inv.Items {
		fmt.Fprintf(&items, "\n%d. %s - Qty: %s x %s = %s",
			i+1,
			item.ProductName,
			item.Quantity.String(),
			billing.FormatCurrency(item.UnitPrice),
			billing.FormatCurrency(item.TotalAmount),
		)
	}

	customerName := inv.CustomerName
	if customerName == "" {
		customerName = "Customer"
	}

	message := fmt.Sprintf(`Dear %s,

Thank you for your purchase at *%s*!

*Invoice:* #%s
*Date:* %s

*Items Purchased:*%s

*Subtotal:* %s
*Tax:* %s
*Total Amount:* %s

For any queries, contact us at %s.

Best regards,
*%s*
%s`,
		customerName,
		business.Name,
		inv.InvoiceNumber,
		inv.InvoiceDate.Format("02-01-2006"),
		items.String(),
		billing.FormatCurrency(inv.Subtotal),
		billing.FormatCurrency(inv.TaxAmount),
		billing.FormatCurrency(inv.TotalAmount),
		business.Phone,
		business.Name,
		business.Address,
	)

	return Link(inv.CustomerPhone, message)
}
