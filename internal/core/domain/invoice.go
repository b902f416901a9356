package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the informal document status of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceIssued    InvoiceStatus = "issued"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// PaymentStatus tracks whether an invoice has been settled.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

// InvoiceItem is one priced line within an invoice. Items are immutable once
// the invoice is created; the derived amounts are computed at creation time
// and never edited independently.
type InvoiceItem struct {
	ItemID       string          `json:"itemID"` // Primary Key (UUID)
	InvoiceID    string          `json:"invoiceID"`
	ProductID    *string         `json:"productID,omitempty"` // Optional catalog reference
	ProductName  string          `json:"productName"`
	Description  string          `json:"description,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TaxRate      decimal.Decimal `json:"taxRate"`      // Percent
	DiscountRate decimal.Decimal `json:"discountRate"` // Percent

	// Derived amounts, computed by the billing core.
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`

	CreatedAt time.Time `json:"createdAt"`
}

// Invoice represents a tax invoice. Totals are always the sum of the current
// items' contributions, recomputed whenever items are created.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"` // Primary Key (UUID)
	InvoiceNumber  string          `json:"invoiceNumber"`
	CustomerID     string          `json:"customerID"`
	InvoiceDate    time.Time       `json:"invoiceDate"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Status         InvoiceStatus   `json:"status"`
	PaymentStatus  PaymentStatus   `json:"paymentStatus"`
	Notes          string          `json:"notes,omitempty"`
	CreatedBy      string          `json:"createdBy"` // UserID reference
	AuditFields

	Items []InvoiceItem `json:"items,omitempty"`

	// Customer snapshot, resolved by reference at read time so customer edits
	// retroactively change historical invoice displays.
	CustomerName    string `json:"customerName,omitempty"`
	CustomerPhone   string `json:"customerPhone,omitempty"`
	CustomerAddress string `json:"customerAddress,omitempty"`
	CustomerGST     string `json:"customerGST,omitempty"`
}
