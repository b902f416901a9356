package dto

import (
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the data needed to create a new customer.
type CreateCustomerRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	GSTNumber string `json:"gstNumber"`
	Notes     string `json:"notes"`
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCustomerRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Pincode   *string `json:"pincode"`
	GSTNumber *string `json:"gstNumber"`
	Notes     *string `json:"notes"`
	IsActive  *bool   `json:"isActive"`
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	Search string `form:"search"`
	Limit  int    `form:"limit,default=50" binding:"omitempty,gte=1,lte=200"`
	Offset int    `form:"offset,default=0" binding:"omitempty,gte=0"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID    string    `json:"customerID"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	City          string    `json:"city,omitempty"`
	State         string    `json:"state,omitempty"`
	Pincode       string    `json:"pincode,omitempty"`
	GSTNumber     string    `json:"gstNumber,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// CustomerWithStatsResponse is a customer plus billing aggregates.
type CustomerWithStatsResponse struct {
	CustomerResponse
	InvoiceCount int64           `json:"invoiceCount"`
	TotalBilled  decimal.Decimal `json:"totalBilled"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(cust *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:    cust.CustomerID,
		Name:          cust.Name,
		Phone:         cust.Phone,
		Email:         cust.Email,
		Address:       cust.Address,
		City:          cust.City,
		State:         cust.State,
		Pincode:       cust.Pincode,
		GSTNumber:     cust.GSTNumber,
		Notes:         cust.Notes,
		IsActive:      cust.IsActive,
		CreatedAt:     cust.CreatedAt,
		LastUpdatedAt: cust.LastUpdatedAt,
	}
}

// ToListCustomerWithStatsResponse converts customers with billing aggregates to DTOs
func ToListCustomerWithStatsResponse(customers []domain.CustomerWithStats) []CustomerWithStatsResponse {
	res := make([]CustomerWithStatsResponse, len(customers))
	for i, cust := range customers {
		res[i] = CustomerWithStatsResponse{
			CustomerResponse: ToCustomerResponse(&cust.Customer),
			InvoiceCount:     cust.InvoiceCount,
			TotalBilled:      cust.TotalBilled,
		}
	}
	return res
}

// ToListCustomerResponse converts a slice of domain.Customer to DTOs
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, cust := range customers {
		res[i] = ToCustomerResponse(&cust)
	}
	return res
}
