package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/domain"
	portsrepo "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/repositories"
	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
	"github.com/google/uuid"
)

type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates the customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) ListCustomers(ctx context.Context, search string, limit, offset int) ([]domain.Customer, error) {
	return s.customerRepo.FindCustomers(ctx, search, limit, offset)
}

func (s *customerService) ListCustomersWithStats(ctx context.Context, limit, offset int) ([]domain.CustomerWithStats, error) {
	return s.customerRepo.FindCustomersWithStats(ctx, limit, offset)
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	now := time.Now()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		Pincode:    req.Pincode,
		GSTNumber:  req.GSTNumber,
		Notes:      req.Notes,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer %s for update: %w", customerID, err)
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.City != nil {
		customer.City = *req.City
	}
	if req.State != nil {
		customer.State = *req.State
	}
	if req.Pincode != nil {
		customer.Pincode = *req.Pincode
	}
	if req.GSTNumber != nil {
		customer.GSTNumber = *req.GSTNumber
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}
	customer.LastUpdatedAt = time.Now()

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		return nil, fmt.Errorf("failed to update customer %s: %w", customerID, err)
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	return s.customerRepo.DeleteCustomer(ctx, customerID)
}
