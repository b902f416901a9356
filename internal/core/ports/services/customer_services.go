package services

import (
	"context"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
)

// CustomerReaderSvc defines read operations for customers
type CustomerReaderSvc interface {
	// ListCustomers retrieves a page of customers, optionally searched by
	// name or phone.
	ListCustomers(ctx context.Context, search string, limit, offset int) ([]domain.Customer, error)

	// ListCustomersWithStats retrieves customers with billing aggregates.
	ListCustomersWithStats(ctx context.Context, limit, offset int) ([]domain.CustomerWithStats, error)

	// GetCustomerByID retrieves a customer by ID.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
}

// CustomerWriterSvc defines write operations for customers
type CustomerWriterSvc interface {
	// CreateCustomer creates a new customer.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)

	// UpdateCustomer applies the provided fields to an existing customer.
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)

	// DeleteCustomer removes a customer.
	DeleteCustomer(ctx context.Context, customerID string) error
}

// CustomerSvcFacade combines all customer service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
