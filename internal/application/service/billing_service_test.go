package service

import (
	"context"
	"testing"
	"time"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/entity"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/enum"
	infra "github.com/Darshan-Dhanvate/grocerease-api/internal/infrastructure/repository"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/apperror"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/money"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProduct(t *testing.T, db *gorm.DB, name string, price money.Cents, stock int) *entity.Product {
	t.Helper()
	product := &entity.Product{
		Name:            name,
		Category:        "Grocery",
		Unit:            "pcs",
		CostPrice:       price / 2,
		SellingPrice:    price,
		QuantityInStock: stock,
		Status:          enum.ProductStatusActive,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestCreateBillWalkIn(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewBillingService(infra.NewBillRepository(db))

	rice := seedProduct(t, db, "Basmati Rice", 10000, 20) // 100.00
	oil := seedProduct(t, db, "Sunflower Oil", 5000, 10)  // 50.00

	bill, err := svc.CreateBill(ctx, &CreateBillInput{
		DiscountPercentage: 10,
		TaxPercentage:      5,
		Items: []BillItemInput{
			{ProductID: rice.ID, QuantitySold: 2},
			{ProductID: oil.ID, QuantitySold: 2},
		},
	})
	require.NoError(t, err)

	assert.Nil(t, bill.CustomerID, "walk-in sale should have no customer")
	assert.Equal(t, money.Cents(30000), bill.SubTotal)
	assert.Equal(t, money.Cents(3000), bill.DiscountAmount)
	assert.Equal(t, money.Cents(1350), bill.TaxAmount)
	assert.Equal(t, money.Cents(28350), bill.NetAmount)
	require.Len(t, bill.Items, 2)

	var gotRice, gotOil entity.Product
	require.NoError(t, db.First(&gotRice, "id = ?", rice.ID).Error)
	require.NoError(t, db.First(&gotOil, "id = ?", oil.ID).Error)
	assert.Equal(t, 18, gotRice.QuantityInStock)
	assert.Equal(t, 8, gotOil.QuantityInStock)
}

func TestCreateBillEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillingService(infra.NewBillRepository(db))

	_, err := svc.CreateBill(context.Background(), &CreateBillInput{})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindEmptyCart))
}

func TestCreateBillValidation(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewBillingService(infra.NewBillRepository(db))
	product := seedProduct(t, db, "Sugar", 4000, 10)

	_, err := svc.CreateBill(ctx, &CreateBillInput{
		Items: []BillItemInput{{ProductID: product.ID, QuantitySold: 0}},
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = svc.CreateBill(ctx, &CreateBillInput{
		DiscountPercentage: 120,
		Items:              []BillItemInput{{ProductID: product.ID, QuantitySold: 1}},
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = svc.CreateBill(ctx, &CreateBillInput{
		TaxPercentage: -1,
		Items:         []BillItemInput{{ProductID: product.ID, QuantitySold: 1}},
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestCreateBillUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillingService(infra.NewBillRepository(db))

	_, err := svc.CreateBill(context.Background(), &CreateBillInput{
		Items: []BillItemInput{{ProductID: uuid.New(), QuantitySold: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindProductNotFound))
}

func TestCreateBillInactiveProductRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillingService(infra.NewBillRepository(db))

	product := seedProduct(t, db, "Old Stock Tea", 2000, 5)
	require.NoError(t, db.Model(product).Update("status", enum.ProductStatusInactive).Error)

	_, err := svc.CreateBill(context.Background(), &CreateBillInput{
		Items: []BillItemInput{{ProductID: product.ID, QuantitySold: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindProductNotFound))
}

func TestCreateBillInsufficientStockRollsBack(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewBillingService(infra.NewBillRepository(db))

	rice := seedProduct(t, db, "Basmati Rice", 10000, 20)
	oil := seedProduct(t, db, "Sunflower Oil", 5000, 1)

	_, err := svc.CreateBill(ctx, &CreateBillInput{
		CustomerName:   "Asha",
		CustomerMobile: "9876543210",
		Items: []BillItemInput{
			{ProductID: rice.ID, QuantitySold: 2},
			{ProductID: oil.ID, QuantitySold: 5},
		},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInsufficientStock))

	// Nothing from the failed bill may survive: no stock change on the
	// first line, no bill rows, no implicitly created customer.
	var gotRice entity.Product
	require.NoError(t, db.First(&gotRice, "id = ?", rice.ID).Error)
	assert.Equal(t, 20, gotRice.QuantityInStock)

	var bills, items, customers int64
	require.NoError(t, db.Model(&entity.Bill{}).Count(&bills).Error)
	require.NoError(t, db.Model(&entity.BillItem{}).Count(&items).Error)
	require.NoError(t, db.Model(&entity.Customer{}).Count(&customers).Error)
	assert.Zero(t, bills)
	assert.Zero(t, items)
	assert.Zero(t, customers)
}

func TestCreateBillOversellOnSecondSale(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewBillingService(infra.NewBillRepository(db))

	product := seedProduct(t, db, "Milk", 3000, 3)

	_, err := svc.CreateBill(ctx, &CreateBillInput{
		Items: []BillItemInput{{ProductID: product.ID, QuantitySold: 2}},
	})
	require.NoError(t, err)

	_, err = svc.CreateBill(ctx, &CreateBillInput{
		Items: []BillItemInput{{ProductID: product.ID, QuantitySold: 2}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInsufficientStock))

	var got entity.Product
	require.NoError(t, db.First(&got, "id = ?", product.ID).Error)
	assert.Equal(t, 1, got.QuantityInStock, "only the committed sale decrements stock")
}

func TestCreateBillCreatesCustomer(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewBillingService(infra.NewBillRepository(db))
	product := seedProduct(t, db, "Bread", 4500, 10)

	bill, err := svc.CreateBill(ctx, &CreateBillInput{
		CustomerName:   "Ravi Kumar",
		CustomerMobile: "9876543210",
		Items:          []BillItemInput{{ProductID: product.ID, QuantitySold: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, bill.CustomerID)

	var customer entity.Customer
	require.NoError(t, db.First(&customer, "id = ?", *bill.CustomerID).Error)
	assert.Equal(t, "Ravi Kumar", customer.Name)
	require.NotNil(t, customer.ContactNo)
	assert.Equal(t, "9876543210", *customer.ContactNo)
}

func TestCreateBillReusesCustomerByMobile(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewBillingService(infra.NewBillRepository(db))
	product := seedProduct(t, db, "Bread", 4500, 10)

	mobile := "9876543210"
	existing := &entity.Customer{Name: "Ravi Kumar", ContactNo: &mobile}
	require.NoError(t, db.Create(existing).Error)

	// Same mobile with a different spelling of the name reuses the record
	// and leaves the stored name alone.
	bill, err := svc.CreateBill(ctx, &CreateBillInput{
		CustomerName:   "R. Kumar",
		CustomerMobile: mobile,
		Items:          []BillItemInput{{ProductID: product.ID, QuantitySold: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, bill.CustomerID)
	assert.Equal(t, existing.ID, *bill.CustomerID)

	var got entity.Customer
	require.NoError(t, db.First(&got, "id = ?", existing.ID).Error)
	assert.Equal(t, "Ravi Kumar", got.Name)

	var customers int64
	require.NoError(t, db.Model(&entity.Customer{}).Count(&customers).Error)
	assert.EqualValues(t, 1, customers)
}

func TestCreateBillMobileOnlyWithoutMatchIsWalkIn(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillingService(infra.NewBillRepository(db))
	product := seedProduct(t, db, "Bread", 4500, 10)

	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
		CustomerMobile: "9000000000",
		Items:          []BillItemInput{{ProductID: product.ID, QuantitySold: 1}},
	})
	require.NoError(t, err)
	assert.Nil(t, bill.CustomerID)
}

func TestBillPriceSnapshotSurvivesPriceChange(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	billRepo := infra.NewBillRepository(db)
	svc := NewBillingService(billRepo)
	product := seedProduct(t, db, "Ghee", 60000, 5)

	bill, err := svc.CreateBill(ctx, &CreateBillInput{
		Items: []BillItemInput{{ProductID: product.ID, QuantitySold: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(product).Update("selling_price", money.Cents(75000)).Error)

	got, err := svc.GetBill(ctx, bill.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, money.Cents(60000), got.Items[0].PricePerUnit)
	assert.Equal(t, money.Cents(60000), got.NetAmount)
}

func TestGetBillNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillingService(infra.NewBillRepository(db))

	_, err := svc.GetBill(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestListBillsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewBillingService(infra.NewBillRepository(db))
	product := seedProduct(t, db, "Bread", 4500, 10)

	first, err := svc.CreateBill(ctx, &CreateBillInput{
		Items: []BillItemInput{{ProductID: product.ID, QuantitySold: 1}},
	})
	require.NoError(t, err)
	second, err := svc.CreateBill(ctx, &CreateBillInput{
		Items: []BillItemInput{{ProductID: product.ID, QuantitySold: 2}},
	})
	require.NoError(t, err)

	// Force distinct order even when both bills land in the same instant
	require.NoError(t, db.Model(&entity.Bill{}).Where("id = ?", second.ID).
		Update("bill_date", time.Now().Add(time.Hour)).Error)

	result, err := svc.ListBills(ctx, &pagination.PaginationParams{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, second.ID, result.Items[0].ID)
	assert.Equal(t, first.ID, result.Items[1].ID)
	assert.EqualValues(t, 2, result.Pagination.Total)
}

func TestClearHistory(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	billRepo := infra.NewBillRepository(db)
	billing := NewBillingService(billRepo)
	admin := NewAdminService(billRepo)
	product := seedProduct(t, db, "Bread", 4500, 10)

	_, err := billing.CreateBill(ctx, &CreateBillInput{
		CustomerName:   "Asha",
		CustomerMobile: "9876543210",
		Items:          []BillItemInput{{ProductID: product.ID, QuantitySold: 3}},
	})
	require.NoError(t, err)

	require.NoError(t, admin.ClearHistory(ctx))

	var bills, items, customers, products int64
	require.NoError(t, db.Unscoped().Model(&entity.Bill{}).Count(&bills).Error)
	require.NoError(t, db.Unscoped().Model(&entity.BillItem{}).Count(&items).Error)
	require.NoError(t, db.Unscoped().Model(&entity.Customer{}).Count(&customers).Error)
	require.NoError(t, db.Model(&entity.Product{}).Count(&products).Error)
	assert.Zero(t, bills)
	assert.Zero(t, items)
	assert.Zero(t, customers)
	assert.EqualValues(t, 1, products, "catalog survives a history wipe")

	// Stock levels are untouched
	var got entity.Product
	require.NoError(t, db.First(&got, "id = ?", product.ID).Error)
	assert.Equal(t, 7, got.QuantityInStock)
}
