package repository

import (
	"context"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/entity"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/pagination"
	"github.com/google/uuid"
)

// BillingTx exposes the data operations available inside a single
// bill-creation transaction. Every call sees the same uncommitted state;
// if the callback returns an error the whole transaction rolls back.
type BillingTx interface {
	// GetProductForSale loads a sellable product, or nil when it does not
	// exist or is inactive
	GetProductForSale(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// DecrementStock atomically subtracts stock. Returns (false, nil) when
	// the product has fewer units than requested; no row is changed then.
	DecrementStock(ctx context.Context, productID uuid.UUID, amount int) (bool, error)
	GetCustomerByContactNo(ctx context.Context, contactNo string) (*entity.Customer, error)
	CreateCustomer(ctx context.Context, customer *entity.Customer) error
	CreateBill(ctx context.Context, bill *entity.Bill) error
	CreateBillItems(ctx context.Context, items []entity.BillItem) error
}

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	// CreateInTransaction runs fn inside one database transaction so that
	// bill, items, stock decrements and customer creation commit or roll
	// back as a unit
	CreateInTransaction(ctx context.Context, fn func(tx BillingTx) error) error
	// GetByID loads a bill with its customer and items (product preloaded)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Bill, int64, error)
	// CountItemsByProduct returns how many bill lines reference the product
	CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
	// CountByCustomer returns how many bills reference the customer
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
	// ClearHistory deletes all bill items, bills and customers in one
	// transaction. Products and stock levels are untouched.
	ClearHistory(ctx context.Context) error
}
