package services

import (
	"context"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	// ListInvoices retrieves a filtered page of invoices with the total count.
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, int64, error)

	// GetInvoiceByID retrieves one invoice with its items and customer
	// snapshot.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// RenderInvoicePDF renders the invoice as a PDF and returns the bytes
	// with the download filename.
	RenderInvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error)

	// WhatsAppLink builds a share link carrying the invoice summary,
	// addressed to the customer's phone.
	WhatsAppLink(ctx context.Context, invoiceID string) (string, error)
}

// InvoiceWriterSvc defines write operations for invoices
type InvoiceWriterSvc interface {
	// CreateInvoice numbers the invoice, prices its items and persists
	// everything in one transaction.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, createdBy string) (*domain.Invoice, error)

	// UpdateInvoice applies metadata changes. Totals and items never change.
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)

	// UpdatePaymentStatus patches the payment status.
	UpdatePaymentStatus(ctx context.Context, invoiceID string, status domain.PaymentStatus) (*domain.Invoice, error)

	// DeleteInvoice removes the invoice and its items.
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// InvoiceSvcFacade combines all invoice service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
