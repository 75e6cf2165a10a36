package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/entity"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/repository"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/apperror"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/money"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/pagination"
	"github.com/google/uuid"
)

// BillingService handles bill creation and retrieval
type BillingService struct {
	billRepo repository.BillRepository
}

// NewBillingService creates a new billing service
func NewBillingService(billRepo repository.BillRepository) *BillingService {
	return &BillingService{billRepo: billRepo}
}

// BillItemInput represents one line of a bill to be created
type BillItemInput struct {
	ProductID    uuid.UUID
	QuantitySold int
}

// CreateBillInput represents the create bill input. CustomerName and
// CustomerMobile are both optional; leaving them empty records a walk-in
// sale with no customer attached.
type CreateBillInput struct {
	CustomerName       string
	CustomerMobile     string
	DiscountPercentage float64
	TaxPercentage      float64
	Items              []BillItemInput
}

// CreateBill creates a bill atomically: customer resolution, price
// snapshots, stock decrements and the bill rows all commit in one
// transaction or not at all.
func (s *BillingService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	if len(input.Items) == 0 {
		return nil, apperror.ErrEmptyCart
	}
	for _, item := range input.Items {
		if item.QuantitySold <= 0 {
			return nil, apperror.NewBadRequestError(
				fmt.Sprintf("Quantity for product %s must be positive", item.ProductID))
		}
	}
	if input.DiscountPercentage < 0 || input.DiscountPercentage > 100 {
		return nil, apperror.NewBadRequestError("Discount percentage must be between 0 and 100")
	}
	if input.TaxPercentage < 0 {
		return nil, apperror.NewBadRequestError("Tax percentage must not be negative")
	}

	var billID uuid.UUID
	err := s.billRepo.CreateInTransaction(ctx, func(tx repository.BillingTx) error {
		customerID, err := resolveCustomer(ctx, tx, input.CustomerName, input.CustomerMobile)
		if err != nil {
			return err
		}

		var subTotal money.Cents
		items := make([]entity.BillItem, 0, len(input.Items))

		for _, line := range input.Items {
			product, err := tx.GetProductForSale(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return apperror.NewAppError(404, apperror.KindProductNotFound,
					fmt.Sprintf("Product %s not found", line.ProductID))
			}

			ok, err := tx.DecrementStock(ctx, product.ID, line.QuantitySold)
			if err != nil {
				return err
			}
			if !ok {
				return apperror.NewAppError(400, apperror.KindInsufficientStock,
					fmt.Sprintf("Insufficient stock for %s: available %d, requested %d",
						product.Name, product.QuantityInStock, line.QuantitySold))
			}

			// Snapshot the selling price so later price edits never change
			// this bill
			lineTotal := product.SellingPrice.Mul(line.QuantitySold)
			subTotal += lineTotal
			items = append(items, entity.BillItem{
				ProductID:    product.ID,
				QuantitySold: line.QuantitySold,
				PricePerUnit: product.SellingPrice,
				TotalPrice:   lineTotal,
			})
		}

		totals := ComputeTotals(subTotal, input.DiscountPercentage, input.TaxPercentage)

		bill := &entity.Bill{
			CustomerID:         customerID,
			BillDate:           time.Now(),
			SubTotal:           subTotal,
			DiscountPercentage: input.DiscountPercentage,
			DiscountAmount:     totals.DiscountAmount,
			TaxPercentage:      input.TaxPercentage,
			TaxAmount:          totals.TaxAmount,
			NetAmount:          totals.NetAmount,
		}
		if err := tx.CreateBill(ctx, bill); err != nil {
			return err
		}

		for i := range items {
			items[i].BillID = bill.ID
		}
		if err := tx.CreateBillItems(ctx, items); err != nil {
			return err
		}

		billID = bill.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.billRepo.GetByID(ctx, billID)
}

// resolveCustomer finds or creates the customer for a bill inside the
// bill transaction. A phone match always wins, and a differing name on
// the request does not overwrite the stored name. With no phone match the
// customer is created only when a name was given; otherwise the sale is
// recorded as walk-in.
func resolveCustomer(ctx context.Context, tx repository.BillingTx, name, mobile string) (*uuid.UUID, error) {
	name = strings.TrimSpace(name)
	mobile = strings.TrimSpace(mobile)

	if mobile != "" {
		existing, err := tx.GetCustomerByContactNo(ctx, mobile)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return &existing.ID, nil
		}
	}

	if name == "" {
		return nil, nil
	}

	customer := &entity.Customer{Name: name}
	if mobile != "" {
		customer.ContactNo = &mobile
	}
	if err := tx.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return &customer.ID, nil
}

// GetBill retrieves a bill with its customer and line items
func (s *BillingService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills lists bills newest first with the customer preloaded
func (s *BillingService) ListBills(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Bill], error) {
	params.Validate()
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(bills,
		pagination.NewPagination(params.Page, params.PerPage, total)), nil
}
