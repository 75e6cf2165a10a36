package repository

import (
	"context"
	"errors"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/entity"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/enum"
	domainRepo "github.com/Darshan-Dhanvate/grocerease-api/internal/domain/repository"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

// billingTx wraps a gorm transaction handle so the service layer can run
// the bill-creation steps without knowing about gorm.
type billingTx struct {
	tx *gorm.DB
}

func (r *billRepository) CreateInTransaction(ctx context.Context, fn func(tx domainRepo.BillingTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&billingTx{tx: tx})
	})
}

func (t *billingTx) GetProductForSale(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := t.tx.WithContext(ctx).
		First(&product, "id = ? AND status = ?", id, enum.ProductStatusActive).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

// DecrementStock relies on a conditional UPDATE so two concurrent sales of
// the same product cannot both succeed past the remaining quantity.
func (t *billingTx) DecrementStock(ctx context.Context, productID uuid.UUID, amount int) (bool, error) {
	result := t.tx.WithContext(ctx).Model(&entity.Product{}).
		Where("id = ? AND quantity_in_stock >= ?", productID, amount).
		Update("quantity_in_stock", gorm.Expr("quantity_in_stock - ?", amount))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (t *billingTx) GetCustomerByContactNo(ctx context.Context, contactNo string) (*entity.Customer, error) {
	var customer entity.Customer
	err := t.tx.WithContext(ctx).First(&customer, "contact_no = ?", contactNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (t *billingTx) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	return t.tx.WithContext(ctx).Create(customer).Error
}

func (t *billingTx) CreateBill(ctx context.Context, bill *entity.Bill) error {
	return t.tx.WithContext(ctx).Omit("Customer", "Items").Create(bill).Error
}

func (t *billingTx) CreateBillItems(ctx context.Context, items []entity.BillItem) error {
	return t.tx.WithContext(ctx).Omit("Bill", "Product").Create(&items).Error
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Bill{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Customer").
		Order("bill_date DESC").
		Find(&bills).Error

	return bills, total, err
}

func (r *billRepository) CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.BillItem{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}

func (r *billRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	return count, err
}

// ClearHistory hard-deletes all sales history. Items go first so no row
// ever points at a missing bill, even if the transaction is interrupted.
func (r *billRepository) ClearHistory(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(&entity.BillItem{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(&entity.Bill{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(&entity.Customer{}).Error
	})
}
