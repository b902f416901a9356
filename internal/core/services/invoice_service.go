package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/apperrors"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portsrepo "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/repositories"
	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/utils/billing"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/utils/pdfgen"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/utils/whatsapp"
	"github.com/google/uuid"
)

// InvoiceBusinessInfo is the business identity printed on PDFs and used in
// WhatsApp share messages.
type InvoiceBusinessInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
	GSTIN   string
}

type invoiceService struct {
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	customerRepo portsrepo.CustomerReader
	business     InvoiceBusinessInfo
	prefix       string
}

// NewInvoiceService creates the invoice service. prefix is the invoice number
// prefix, e.g. "GEH".
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, customerRepo portsrepo.CustomerReader, business InvoiceBusinessInfo, prefix string) portssvc.InvoiceSvcFacade {
	if prefix == "" {
		prefix = billing.DefaultInvoicePrefix
	}
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		business:     business,
		prefix:       prefix,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, int64, error) {
	filter := portsrepo.InvoiceFilter{
		Status:        params.Status,
		PaymentStatus: params.PaymentStatus,
		CustomerID:    params.CustomerID,
		Limit:         params.Limit,
		Offset:        params.Offset,
	}
	if params.FromDate != "" {
		from, err := time.Parse("2006-01-02", params.FromDate)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid from_date: %w", apperrors.ErrValidation)
		}
		filter.FromDate = &from
	}
	if params.ToDate != "" {
		to, err := time.Parse("2006-01-02", params.ToDate)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid to_date: %w", apperrors.ErrValidation)
		}
		filter.ToDate = &to
	}
	return s.invoiceRepo.FindInvoices(ctx, filter)
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

// nextInvoiceNumber derives the next number from the most recent invoice. A
// prior number that no longer parses is surfaced as a data integrity error,
// never silently restarted from 1.
func (s *invoiceService) nextInvoiceNumber(ctx context.Context, now time.Time) (string, error) {
	lastSeq := 0
	latest, err := s.invoiceRepo.FindLatestInvoiceNumber(ctx)
	switch {
	case err == nil:
		parsed, perr := billing.ParseInvoiceNumber(latest)
		if perr != nil {
			return "", fmt.Errorf("cannot derive next invoice number: %w", perr)
		}
		lastSeq = parsed.Sequence
	case errors.Is(err, apperrors.ErrNotFound):
		// First invoice ever.
	default:
		return "", fmt.Errorf("failed to load latest invoice number: %w", err)
	}
	return billing.NextInvoiceNumber(s.prefix, lastSeq, now).String(), nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, createdBy string) (*domain.Invoice, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer %s for invoice: %w", req.CustomerID, err)
	}

	now := time.Now()
	number, err := s.nextInvoiceNumber(ctx, now)
	if err != nil {
		return nil, err
	}

	invoiceID := uuid.NewString()
	items := make([]domain.InvoiceItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.InvoiceItem{
			ItemID:       uuid.NewString(),
			InvoiceID:    invoiceID,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Description:  it.Description,
			Quantity:     it.Quantity,
			Unit:         it.Unit,
			UnitPrice:    it.UnitPrice,
			TaxRate:      it.TaxRate,
			DiscountRate: it.DiscountRate,
			CreatedAt:    now,
		}
	}
	totals := billing.PriceItems(items)

	invoiceDate := now
	if req.InvoiceDate != nil {
		invoiceDate = *req.InvoiceDate
	}

	invoice := domain.Invoice{
		InvoiceID:      invoiceID,
		InvoiceNumber:  number,
		CustomerID:     customer.CustomerID,
		InvoiceDate:    invoiceDate,
		DueDate:        req.DueDate,
		Subtotal:       totals.Subtotal,
		TaxAmount:      totals.TaxAmount,
		DiscountAmount: totals.DiscountAmount,
		TotalAmount:    totals.TotalAmount,
		Status:         domain.InvoiceIssued,
		PaymentStatus:  domain.PaymentPending,
		Notes:          req.Notes,
		CreatedBy:      createdBy,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
		Items: items,
	}

	if err := s.invoiceRepo.SaveInvoiceWithItems(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	invoice.CustomerName = customer.Name
	invoice.CustomerPhone = customer.Phone
	invoice.CustomerAddress = customer.Address
	invoice.CustomerGST = customer.GSTNumber
	return &invoice, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice %s for update: %w", invoiceID, err)
	}

	if req.CustomerID != nil && *req.CustomerID != invoice.CustomerID {
		if _, err := s.customerRepo.FindCustomerByID(ctx, *req.CustomerID); err != nil {
			return nil, fmt.Errorf("failed to load customer %s for invoice update: %w", *req.CustomerID, err)
		}
		invoice.CustomerID = *req.CustomerID
	}
	if req.InvoiceDate != nil {
		invoice.InvoiceDate = *req.InvoiceDate
	}
	if req.DueDate != nil {
		invoice.DueDate = req.DueDate
	}
	if req.Status != nil {
		invoice.Status = *req.Status
	}
	if req.PaymentStatus != nil {
		invoice.PaymentStatus = *req.PaymentStatus
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	invoice.LastUpdatedAt = time.Now()

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice %s: %w", invoiceID, err)
	}
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

func (s *invoiceService) UpdatePaymentStatus(ctx context.Context, invoiceID string, status domain.PaymentStatus) (*domain.Invoice, error) {
	if err := s.invoiceRepo.UpdatePaymentStatus(ctx, invoiceID, status, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to update payment status of invoice %s: %w", invoiceID, err)
	}
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	return s.invoiceRepo.DeleteInvoice(ctx, invoiceID)
}

func (s *invoiceService) RenderInvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load invoice %s for PDF: %w", invoiceID, err)
	}

	pdfBytes, err := pdfgen.RenderInvoice(*invoice, pdfgen.BusinessInfo{
		Name:    s.business.Name,
		Address: s.business.Address,
		Phone:   s.business.Phone,
		Email:   s.business.Email,
		GSTIN:   s.business.GSTIN,
	}, time.Now())
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("Invoice-%s.pdf", invoice.InvoiceNumber)
	return pdfBytes, filename, nil
}

func (s *invoiceService) WhatsAppLink(ctx context.Context, invoiceID string) (string, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return "", fmt.Errorf("failed to load invoice %s for WhatsApp link: %w", invoiceID, err)
	}
	if invoice.CustomerPhone == "" {
		return "", fmt.Errorf("customer has no phone number: %w", apperrors.ErrValidation)
	}

	return whatsapp.InvoiceShareLink(whatsapp.BusinessInfo{
		Name:    s.business.Name,
		Address: s.business.Address,
		Phone:   s.business.Phone,
	}, *invoice), nil
}
