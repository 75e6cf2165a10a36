package service

import (
	"context"
	"strings"
	"time"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/entity"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/enum"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/repository"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/apperror"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/money"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/pagination"
	"github.com/google/uuid"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo  repository.ProductRepository
	billRepo     repository.BillRepository
	supplierRepo repository.SupplierRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	billRepo repository.BillRepository,
	supplierRepo repository.SupplierRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		billRepo:     billRepo,
		supplierRepo: supplierRepo,
	}
}

// ProductInput represents the fields used to create or update a product
type ProductInput struct {
	Name              string
	Brand             string
	Category          string
	Unit              string
	CostPrice         money.Cents
	SellingPrice      money.Cents
	QuantityInStock   int
	LowStockThreshold int
	ExpiryDate        *time.Time
	SupplierID        *uuid.UUID
}

func (in *ProductInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Brand = strings.TrimSpace(in.Brand)
	if in.Name == "" {
		return apperror.NewBadRequestError("Product name is required")
	}
	if in.CostPrice <= 0 || in.SellingPrice <= 0 {
		return apperror.NewBadRequestError("Prices must be positive")
	}
	if in.QuantityInStock < 0 {
		return apperror.NewBadRequestError("Quantity in stock must not be negative")
	}
	if in.LowStockThreshold < 0 {
		return apperror.NewBadRequestError("Low stock threshold must not be negative")
	}
	return nil
}

func (s *ProductService) checkSupplier(ctx context.Context, supplierID *uuid.UUID) error {
	if supplierID == nil {
		return nil
	}
	supplier, err := s.supplierRepo.GetByID(ctx, *supplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}
	return nil
}

// CreateProduct creates a product, with a create-or-reactivate policy on
// the (name, brand) natural key: an active duplicate is a conflict, an
// inactive one is brought back with the submitted fields.
func (s *ProductService) CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if err := s.checkSupplier(ctx, input.SupplierID); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.GetByNameAndBrand(ctx, input.Name, input.Brand)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.IsActive() {
			return nil, apperror.NewConflictError("Product with this name and brand already exists")
		}
		// Reactivate in place rather than violating the natural key
		applyProductInput(existing, input)
		existing.Status = enum.ProductStatusActive
		if err := s.productRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	product := &entity.Product{Status: enum.ProductStatusActive}
	applyProductInput(product, input)
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func applyProductInput(product *entity.Product, input *ProductInput) {
	product.Name = input.Name
	product.Brand = input.Brand
	product.Category = input.Category
	product.Unit = input.Unit
	product.CostPrice = input.CostPrice
	product.SellingPrice = input.SellingPrice
	product.QuantityInStock = input.QuantityInStock
	product.LowStockThreshold = input.LowStockThreshold
	product.ExpiryDate = input.ExpiryDate
	product.SupplierID = input.SupplierID
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(products,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// UpdateProduct updates a product's fields
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if err := s.checkSupplier(ctx, input.SupplierID); err != nil {
		return nil, err
	}

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	// Renaming onto another product's natural key is a conflict
	if product.Name != input.Name || product.Brand != input.Brand {
		existing, err := s.productRepo.GetByNameAndBrand(ctx, input.Name, input.Brand)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, apperror.NewConflictError("Product with this name and brand already exists")
		}
	}

	applyProductInput(product, input)
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeactivateProduct flips a product to inactive so it disappears from
// sale without touching sales history
func (s *ProductService) DeactivateProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Status = enum.ProductStatusInactive
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product, refusing while bill lines still
// reference it
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	refs, err := s.billRepo.CountItemsByProduct(ctx, product.ID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apperror.NewReferencedError("Product is referenced by existing bills; deactivate it instead")
	}

	return s.productRepo.Delete(ctx, product.ID)
}

// RestockProduct atomically adds stock to a product
func (s *ProductService) RestockProduct(ctx context.Context, id uuid.UUID, quantity int) (*entity.Product, error) {
	if quantity <= 0 {
		return nil, apperror.NewBadRequestError("Restock quantity must be positive")
	}
	if _, err := s.GetProduct(ctx, id); err != nil {
		return nil, err
	}
	if err := s.productRepo.AtomicIncrementQuantity(ctx, id, quantity); err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, id)
}

// GetLowStockProducts lists active products at or below their threshold
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}
