package service

import (
	"context"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/entity"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/repository"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/apperror"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerService handles customer registry operations. Customers are
// created implicitly during billing; this service only reads and prunes.
type CustomerService struct {
	customerRepo repository.CustomerRepository
	billRepo     repository.BillRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, billRepo repository.BillRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, billRepo: billRepo}
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with pagination and optional search
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	params.Validate()
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(customers,
		pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// DeleteCustomer removes a customer, refusing while bills still reference
// them
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return err
	}

	refs, err := s.billRepo.CountByCustomer(ctx, customer.ID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apperror.NewReferencedError("Customer is referenced by existing bills")
	}

	return s.customerRepo.Delete(ctx, customer.ID)
}
