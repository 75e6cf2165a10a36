package service

import (
	"context"
	"testing"
	"time"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/entity"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/enum"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/repository"
	infra "github.com/Darshan-Dhanvate/grocerease-api/internal/infrastructure/repository"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/apperror"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductService(db *gorm.DB) *ProductService {
	return NewProductService(
		infra.NewProductRepository(db),
		infra.NewBillRepository(db),
		infra.NewSupplierRepository(db),
	)
}

func validProductInput() *ProductInput {
	return &ProductInput{
		Name:              "Basmati Rice",
		Brand:             "India Gate",
		Category:          "Grocery",
		Unit:              "kg",
		CostPrice:         8000,
		SellingPrice:      10000,
		QuantityInStock:   50,
		LowStockThreshold: 10,
	}
}

func TestCreateProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)

	product, err := svc.CreateProduct(context.Background(), validProductInput())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, enum.ProductStatusActive, product.Status)
	assert.Equal(t, 50, product.QuantityInStock)
}

func TestCreateProductValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)
	ctx := context.Background()

	input := validProductInput()
	input.Name = "   "
	_, err := svc.CreateProduct(ctx, input)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	input = validProductInput()
	input.SellingPrice = 0
	_, err = svc.CreateProduct(ctx, input)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	input = validProductInput()
	input.QuantityInStock = -1
	_, err = svc.CreateProduct(ctx, input)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestCreateProductUnknownSupplier(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)

	input := validProductInput()
	badID := uuid.New()
	input.SupplierID = &badID
	_, err := svc.CreateProduct(context.Background(), input)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestCreateProductActiveDuplicateConflicts(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, validProductInput())
	require.NoError(t, err)

	_, err = svc.CreateProduct(ctx, validProductInput())
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindDuplicate))
}

func TestCreateProductReactivatesInactive(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)
	ctx := context.Background()

	original, err := svc.CreateProduct(ctx, validProductInput())
	require.NoError(t, err)
	_, err = svc.DeactivateProduct(ctx, original.ID)
	require.NoError(t, err)

	input := validProductInput()
	input.SellingPrice = 12000
	input.QuantityInStock = 30

	revived, err := svc.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, original.ID, revived.ID, "same row comes back, not a new one")
	assert.Equal(t, enum.ProductStatusActive, revived.Status)
	assert.EqualValues(t, 12000, revived.SellingPrice)
	assert.Equal(t, 30, revived.QuantityInStock)

	var count int64
	require.NoError(t, db.Model(&entity.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateProductRenameConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, validProductInput())
	require.NoError(t, err)

	other := validProductInput()
	other.Name = "Sona Masoori Rice"
	created, err := svc.CreateProduct(ctx, other)
	require.NoError(t, err)

	rename := validProductInput()
	_, err = svc.UpdateProduct(ctx, created.ID, rename)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindDuplicate))
}

func TestUpdateProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, validProductInput())
	require.NoError(t, err)

	input := validProductInput()
	input.SellingPrice = 11000
	input.LowStockThreshold = 5

	updated, err := svc.UpdateProduct(ctx, product.ID, input)
	require.NoError(t, err)
	assert.EqualValues(t, 11000, updated.SellingPrice)
	assert.Equal(t, 5, updated.LowStockThreshold)
}

func TestDeleteProductBlockedByBills(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)
	billing := NewBillingService(infra.NewBillRepository(db))
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, validProductInput())
	require.NoError(t, err)

	_, err = billing.CreateBill(ctx, &CreateBillInput{
		Items: []BillItemInput{{ProductID: product.ID, QuantitySold: 1}},
	})
	require.NoError(t, err)

	err = svc.DeleteProduct(ctx, product.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindReferenced))

	// Still present and still sellable
	got, err := svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive())
}

func TestDeleteProductWithoutReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, validProductInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, product.ID))

	_, err = svc.GetProduct(ctx, product.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestRestockProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, validProductInput())
	require.NoError(t, err)

	restocked, err := svc.RestockProduct(ctx, product.ID, 25)
	require.NoError(t, err)
	assert.Equal(t, 75, restocked.QuantityInStock)

	_, err = svc.RestockProduct(ctx, product.ID, 0)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = svc.RestockProduct(ctx, uuid.New(), 10)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestListProductsSearchAndFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, validProductInput())
	require.NoError(t, err)

	oil := validProductInput()
	oil.Name = "Sunflower Oil"
	oil.Brand = "Fortune"
	oil.Category = "Oils"
	_, err = svc.CreateProduct(ctx, oil)
	require.NoError(t, err)

	result, err := svc.ListProducts(ctx, &repository.ProductFilterParams{Search: "rice"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Basmati Rice", result.Items[0].Name)

	result, err = svc.ListProducts(ctx, &repository.ProductFilterParams{Category: "Oils"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Sunflower Oil", result.Items[0].Name)

	result, err = svc.ListProducts(ctx, &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 1},
	})
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.EqualValues(t, 2, result.Pagination.Total)
	assert.True(t, result.Pagination.HasNext)
}

func TestGetLowStockProducts(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)
	ctx := context.Background()

	low := validProductInput()
	low.QuantityInStock = 3
	low.LowStockThreshold = 10
	_, err := svc.CreateProduct(ctx, low)
	require.NoError(t, err)

	fine := validProductInput()
	fine.Name = "Wheat Flour"
	fine.QuantityInStock = 100
	_, err = svc.CreateProduct(ctx, fine)
	require.NoError(t, err)

	products, err := svc.GetLowStockProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Basmati Rice", products[0].Name)
}

func TestExpiryDatePersists(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)
	ctx := context.Background()

	expiry := time.Now().AddDate(0, 1, 0).Truncate(time.Second)
	input := validProductInput()
	input.ExpiryDate = &expiry

	product, err := svc.CreateProduct(ctx, input)
	require.NoError(t, err)

	got, err := svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ExpiryDate)
	assert.WithinDuration(t, expiry, *got.ExpiryDate, time.Second)
}
