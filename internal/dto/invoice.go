package dto

import (
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceItemRequest is one line item within an invoice creation
// request. Derived amounts are never accepted from the client.
type CreateInvoiceItemRequest struct {
	ProductID    *string         `json:"productID"` // Optional catalog reference
	ProductName  string          `json:"productName" binding:"required"`
	Description  string          `json:"description"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	Unit         string          `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unitPrice" binding:"required"`
	TaxRate      decimal.Decimal `json:"taxRate"`      // Percent, zero when omitted
	DiscountRate decimal.Decimal `json:"discountRate"` // Percent, zero when omitted
}

// CreateInvoiceRequest defines the data needed to create a new invoice.
type CreateInvoiceRequest struct {
	CustomerID  string                     `json:"customerID" binding:"required"`
	InvoiceDate *time.Time                 `json:"invoiceDate"` // Defaults to today
	DueDate     *time.Time                 `json:"dueDate"`
	Notes       string                     `json:"notes"`
	Items       []CreateInvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest defines the metadata allowed for updating an invoice.
// Totals and items are derived at creation and never accepted here.
type UpdateInvoiceRequest struct {
	CustomerID    *string               `json:"customerID"`
	InvoiceDate   *time.Time            `json:"invoiceDate"`
	DueDate       *time.Time            `json:"dueDate"`
	Status        *domain.InvoiceStatus `json:"status" binding:"omitempty,oneof=draft issued cancelled"`
	PaymentStatus *domain.PaymentStatus `json:"paymentStatus" binding:"omitempty,oneof=pending paid cancelled"`
	Notes         *string               `json:"notes"`
}

// UpdatePaymentStatusRequest patches just the payment status.
type UpdatePaymentStatusRequest struct {
	PaymentStatus domain.PaymentStatus `json:"paymentStatus" binding:"required,oneof=pending paid cancelled"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Status        string `form:"status" binding:"omitempty,oneof=draft issued cancelled"`
	PaymentStatus string `form:"payment_status" binding:"omitempty,oneof=pending paid cancelled"`
	CustomerID    string `form:"customer_id"`
	FromDate      string `form:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate        string `form:"to_date" binding:"omitempty,datetime=2006-01-02"`
	Limit         int    `form:"limit,default=20" binding:"omitempty,gte=1,lte=100"`
	Offset        int    `form:"offset,default=0" binding:"omitempty,gte=0"`
}

// InvoiceItemResponse defines the data returned for one invoice line item.
type InvoiceItemResponse struct {
	ItemID         string          `json:"itemID"`
	ProductID      *string         `json:"productID,omitempty"`
	ProductName    string          `json:"productName"`
	Description    string          `json:"description,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	TaxRate        decimal.Decimal `json:"taxRate"`
	DiscountRate   decimal.Decimal `json:"discountRate"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID       string                `json:"invoiceID"`
	InvoiceNumber   string                `json:"invoiceNumber"`
	CustomerID      string                `json:"customerID"`
	InvoiceDate     time.Time             `json:"invoiceDate"`
	DueDate         *time.Time            `json:"dueDate,omitempty"`
	Subtotal        decimal.Decimal       `json:"subtotal"`
	TaxAmount       decimal.Decimal       `json:"taxAmount"`
	DiscountAmount  decimal.Decimal       `json:"discountAmount"`
	TotalAmount     decimal.Decimal       `json:"totalAmount"`
	Status          domain.InvoiceStatus  `json:"status"`
	PaymentStatus   domain.PaymentStatus  `json:"paymentStatus"`
	Notes           string                `json:"notes,omitempty"`
	CustomerName    string                `json:"customerName,omitempty"`
	CustomerPhone   string                `json:"customerPhone,omitempty"`
	CustomerAddress string                `json:"customerAddress,omitempty"`
	CustomerGST     string                `json:"customerGST,omitempty"`
	Items           []InvoiceItemResponse `json:"items,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	LastUpdatedAt   time.Time             `json:"lastUpdatedAt"`
}

// ListInvoicesResponse wraps the invoice list with its paging window.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// ToInvoiceItemResponse converts a domain.InvoiceItem to its DTO
func ToInvoiceItemResponse(item *domain.InvoiceItem) InvoiceItemResponse {
	return InvoiceItemResponse{
		ItemID:         item.ItemID,
		ProductID:      item.ProductID,
		ProductName:    item.ProductName,
		Description:    item.Description,
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		UnitPrice:      item.UnitPrice,
		TaxRate:        item.TaxRate,
		DiscountRate:   item.DiscountRate,
		TaxAmount:      item.TaxAmount,
		DiscountAmount: item.DiscountAmount,
		TotalAmount:    item.TotalAmount,
	}
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = ToInvoiceItemResponse(&item)
	}
	return InvoiceResponse{
		InvoiceID:       inv.InvoiceID,
		InvoiceNumber:   inv.InvoiceNumber,
		CustomerID:      inv.CustomerID,
		InvoiceDate:     inv.InvoiceDate,
		DueDate:         inv.DueDate,
		Subtotal:        inv.Subtotal,
		TaxAmount:       inv.TaxAmount,
		DiscountAmount:  inv.DiscountAmount,
		TotalAmount:     inv.TotalAmount,
		Status:          inv.Status,
		PaymentStatus:   inv.PaymentStatus,
		Notes:           inv.Notes,
		CustomerName:    inv.CustomerName,
		CustomerPhone:   inv.CustomerPhone,
		CustomerAddress: inv.CustomerAddress,
		CustomerGST:     inv.CustomerGST,
		Items:           items,
		CreatedAt:       inv.CreatedAt,
		LastUpdatedAt:   inv.LastUpdatedAt,
	}
}

// ToListInvoiceResponse converts a slice of domain.Invoice to DTOs
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(&inv)
	}
	return res
}
