package repositories

import (
	"context"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
)

// InvoiceFilter narrows an invoice listing. Zero values mean "no constraint".
type InvoiceFilter struct {
	Status        string
	PaymentStatus string
	CustomerID    string
	FromDate      *time.Time // Inclusive lower bound on invoice date
	ToDate        *time.Time // Inclusive upper bound on invoice date
	Limit         int
	Offset        int
}

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves one invoice with its items in insertion
	// order and the customer snapshot resolved.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoices retrieves a filtered page of invoices, newest first, with
	// customer names resolved and the total match count. Items are not loaded.
	FindInvoices(ctx context.Context, filter InvoiceFilter) ([]domain.Invoice, int64, error)

	// FindLatestInvoiceNumber returns the invoice number of the most
	// recently created invoice, or apperrors.ErrNotFound when none exist.
	FindLatestInvoiceNumber(ctx context.Context) (string, error)

	// FindRecentInvoices retrieves the newest invoices with customer names
	// resolved. Items are not loaded.
	FindRecentInvoices(ctx context.Context, limit int) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoiceWithItems persists the invoice and all of its items in one
	// transaction. Either everything lands or nothing does.
	SaveInvoiceWithItems(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice updates invoice metadata. Items and totals are never
	// touched here.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdatePaymentStatus patches just the payment status.
	UpdatePaymentStatus(ctx context.Context, invoiceID string, status domain.PaymentStatus, updatedAt time.Time) error

	// DeleteInvoice removes the invoice and its items, items first.
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
