package service

import (
	"context"
	"strings"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/entity"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/repository"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/apperror"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/pagination"
	"github.com/google/uuid"
)

// SupplierService handles supplier registry operations
type SupplierService struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// SupplierInput represents the fields used to create or update a supplier
type SupplierInput struct {
	Name          string
	ContactPerson *string
	ContactNo     *string
	Email         *string
	Address       *string
}

func (in *SupplierInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return apperror.NewBadRequestError("Supplier name is required")
	}
	return nil
}

// CreateSupplier creates a new supplier
func (s *SupplierService) CreateSupplier(ctx context.Context, input *SupplierInput) (*entity.Supplier, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	supplier := &entity.Supplier{
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		ContactNo:     input.ContactNo,
		Email:         input.Email,
		Address:       input.Address,
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplier retrieves a supplier by ID
func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// ListSuppliers lists suppliers with pagination and optional search
func (s *SupplierService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Supplier], error) {
	params.Validate()
	suppliers, total, err := s.supplierRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(suppliers,
		pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateSupplier updates a supplier's fields
func (s *SupplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, input *SupplierInput) (*entity.Supplier, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	supplier, err := s.GetSupplier(ctx, id)
	if err != nil {
		return nil, err
	}

	supplier.Name = input.Name
	supplier.ContactPerson = input.ContactPerson
	supplier.ContactNo = input.ContactNo
	supplier.Email = input.Email
	supplier.Address = input.Address
	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier removes a supplier, refusing while products still
// reference it
func (s *SupplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.GetSupplier(ctx, id)
	if err != nil {
		return err
	}

	refs, err := s.supplierRepo.CountProducts(ctx, supplier.ID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apperror.NewReferencedError("Supplier is referenced by existing products")
	}

	return s.supplierRepo.Delete(ctx, supplier.ID)
}
