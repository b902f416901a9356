package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/apperrors"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portsrepo "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/repositories"
	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoices(ctx context.Context, filter portsrepo.InvoiceFilter) ([]domain.Invoice, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Get(1).(int64), args.Error(2)
}

func (m *MockInvoiceRepository) FindLatestInvoiceNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockInvoiceRepository) FindRecentInvoices(ctx context.Context, limit int) ([]domain.Invoice, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoiceWithItems(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdatePaymentStatus(ctx context.Context, invoiceID string, status domain.PaymentStatus, updatedAt time.Time) error {
	args := m.Called(ctx, invoiceID, status, updatedAt)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

// --- Mock CustomerReader ---
type MockCustomerReader struct {
	mock.Mock
}

func (m *MockCustomerReader) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerReader) FindCustomers(ctx context.Context, search string, limit, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerReader) FindCustomersWithStats(ctx context.Context, limit, offset int) ([]domain.CustomerWithStats, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerWithStats), args.Error(1)
}

// --- Test Suite ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockInvoiceRepository
	mockCustomers *MockCustomerReader
	service       portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.mockCustomers = new(MockCustomerReader)
	suite.service = services.NewInvoiceService(suite.mockRepo, suite.mockCustomers, services.InvoiceBusinessInfo{
		Name:  "Garuda Electricals & Hardwares",
		Phone: "919489114403",
	}, "GEH")
}

func (suite *InvoiceServiceTestSuite) testCustomer() *domain.Customer {
	return &domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       "Ravi Kumar",
		Phone:      "9876543210",
		Address:    "12 Main Road, Karur",
	}
}

// --- Test Cases ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_FirstInvoiceStartsSequence() {
	ctx := context.Background()
	customer := suite.testCustomer()
	req := dto.CreateInvoiceRequest{
		CustomerID: customer.CustomerID,
		Items: []dto.CreateInvoiceItemRequest{
			{ProductName: "MCB 16A", Quantity: decimal.NewFromInt(1), Unit: "pcs", UnitPrice: decimal.NewFromInt(250)},
		},
	}

	suite.mockCustomers.On("FindCustomerByID", ctx, customer.CustomerID).Return(customer, nil).Once()
	suite.mockRepo.On("FindLatestInvoiceNumber", ctx).Return("", apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveInvoiceWithItems", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	expectedNumber := "GEH-" + time.Now().Format("2006") + "-00001"
	suite.Equal(expectedNumber, invoice.InvoiceNumber)
	suite.Equal(domain.InvoiceIssued, invoice.Status)
	suite.Equal(domain.PaymentPending, invoice.PaymentStatus)
	suite.Equal(customer.Name, invoice.CustomerName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_IncrementsLatestNumber() {
	ctx := context.Background()
	customer := suite.testCustomer()
	req := dto.CreateInvoiceRequest{
		CustomerID: customer.CustomerID,
		Items: []dto.CreateInvoiceItemRequest{
			{ProductName: "Wire Roll", Quantity: decimal.NewFromInt(3), Unit: "roll", UnitPrice: decimal.NewFromInt(1200)},
		},
	}

	suite.mockCustomers.On("FindCustomerByID", ctx, customer.CustomerID).Return(customer, nil).Once()
	suite.mockRepo.On("FindLatestInvoiceNumber", ctx).Return("GEH-2023-00042", nil).Once()
	suite.mockRepo.On("SaveInvoiceWithItems", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	// The sequence continues across years; only the year segment moves.
	expectedNumber := "GEH-" + time.Now().Format("2006") + "-00043"
	suite.Equal(expectedNumber, invoice.InvoiceNumber)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_MalformedLatestNumberFails() {
	ctx := context.Background()
	customer := suite.testCustomer()
	req := dto.CreateInvoiceRequest{
		CustomerID: customer.CustomerID,
		Items: []dto.CreateInvoiceItemRequest{
			{ProductName: "Switch", Quantity: decimal.NewFromInt(1), Unit: "pcs", UnitPrice: decimal.NewFromInt(80)},
		},
	}

	suite.mockCustomers.On("FindCustomerByID", ctx, customer.CustomerID).Return(customer, nil).Once()
	suite.mockRepo.On("FindLatestInvoiceNumber", ctx).Return("INV/garbled/12", nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrDataIntegrity)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvoiceWithItems", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ComputesTotals() {
	ctx := context.Background()
	customer := suite.testCustomer()
	req := dto.CreateInvoiceRequest{
		CustomerID: customer.CustomerID,
		Items: []dto.CreateInvoiceItemRequest{
			{
				ProductName:  "Ceiling Fan",
				Quantity:     decimal.NewFromInt(2),
				Unit:         "pcs",
				UnitPrice:    decimal.NewFromInt(100),
				TaxRate:      decimal.NewFromInt(18),
				DiscountRate: decimal.NewFromInt(10),
			},
		},
	}

	suite.mockCustomers.On("FindCustomerByID", ctx, customer.CustomerID).Return(customer, nil).Once()
	suite.mockRepo.On("FindLatestInvoiceNumber", ctx).Return("", apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveInvoiceWithItems", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Subtotal.Equal(decimal.NewFromInt(200)) &&
			inv.TaxAmount.Equal(decimal.NewFromInt(36)) &&
			inv.DiscountAmount.Equal(decimal.NewFromInt(20)) &&
			inv.TotalAmount.Equal(decimal.NewFromInt(216))
	})).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(invoice.TotalAmount.Equal(decimal.NewFromInt(216)))
	suite.Len(invoice.Items, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnknownCustomer() {
	ctx := context.Background()
	customerID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		CustomerID: customerID,
		Items: []dto.CreateInvoiceItemRequest{
			{ProductName: "Bulb", Quantity: decimal.NewFromInt(1), Unit: "pcs", UnitPrice: decimal.NewFromInt(50)},
		},
	}

	suite.mockCustomers.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvoiceWithItems", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_InvalidFromDate() {
	ctx := context.Background()

	invoices, total, err := suite.service.ListInvoices(ctx, dto.ListInvoicesParams{FromDate: "23-08-2026"})

	suite.Require().Error(err)
	suite.Nil(invoices)
	suite.Zero(total)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindInvoices", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdatePaymentStatus_RefetchesInvoice() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	updated := &domain.Invoice{InvoiceID: invoiceID, PaymentStatus: domain.PaymentPaid}

	suite.mockRepo.On("UpdatePaymentStatus", ctx, invoiceID, domain.PaymentPaid, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID).Return(updated, nil).Once()

	invoice, err := suite.service.UpdatePaymentStatus(ctx, invoiceID, domain.PaymentPaid)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPaid, invoice.PaymentStatus)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestWhatsAppLink_RequiresCustomerPhone() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	invoice := &domain.Invoice{InvoiceID: invoiceID, InvoiceNumber: "GEH-2026-00007"}

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID).Return(invoice, nil).Once()

	link, err := suite.service.WhatsAppLink(ctx, invoiceID)

	suite.Require().Error(err)
	suite.Empty(link)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestWhatsAppLink_Success() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	invoice := &domain.Invoice{
		InvoiceID:     invoiceID,
		InvoiceNumber: "GEH-2026-00007",
		CustomerName:  "Ravi Kumar",
		CustomerPhone: "9876543210",
		TotalAmount:   decimal.NewFromInt(500),
	}

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID).Return(invoice, nil).Once()

	link, err := suite.service.WhatsAppLink(ctx, invoiceID)

	suite.Require().NoError(err)
	suite.Contains(link, "https://wa.me/919876543210")
	suite.Contains(link, "GEH-2026-00007")
}

func (suite *InvoiceServiceTestSuite) TestRenderInvoicePDF_FilenameFromNumber() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	invoice := &domain.Invoice{
		InvoiceID:     invoiceID,
		InvoiceNumber: "GEH-2026-00021",
		CustomerName:  "Ravi Kumar",
		InvoiceDate:   time.Now(),
		Items: []domain.InvoiceItem{
			{ProductName: "MCB 16A", Quantity: decimal.NewFromInt(1), Unit: "pcs", UnitPrice: decimal.NewFromInt(250), TotalAmount: decimal.NewFromInt(250)},
		},
	}

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID).Return(invoice, nil).Once()

	pdfBytes, filename, err := suite.service.RenderInvoicePDF(ctx, invoiceID)

	suite.Require().NoError(err)
	suite.Equal("Invoice-GEH-2026-00021.pdf", filename)
	suite.True(len(pdfBytes) > 4)
	suite.Equal("%PDF", string(pdfBytes[:4]))
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_RepoError() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockRepo.On("DeleteInvoice", ctx, invoiceID).Return(expectedErr).Once()

	err := suite.service.DeleteInvoice(ctx, invoiceID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
