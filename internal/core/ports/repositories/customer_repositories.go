package repositories

import (
	"context"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a specific customer by their ID.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomers retrieves a page of customers, optionally filtered by a
	// search term over name and phone.
	FindCustomers(ctx context.Context, search string, limit, offset int) ([]domain.Customer, error)

	// FindCustomersWithStats retrieves customers with their invoice count
	// and total billed amount.
	FindCustomersWithStats(ctx context.Context, limit, offset int) ([]domain.CustomerWithStats, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer updates an existing customer.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// DeleteCustomer removes a customer.
	DeleteCustomer(ctx context.Context, customerID string) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
