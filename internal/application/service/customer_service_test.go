package service

import (
	"context"
	"testing"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/entity"
	infra "github.com/Darshan-Dhanvate/grocerease-api/internal/infrastructure/repository"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/apperror"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCustomerNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCustomerService(infra.NewCustomerRepository(db), infra.NewBillRepository(db))

	_, err := svc.GetCustomer(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestDeleteCustomerBlockedByBills(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewCustomerService(infra.NewCustomerRepository(db), infra.NewBillRepository(db))
	billing := NewBillingService(infra.NewBillRepository(db))

	product := seedProduct(t, db, "Bread", 4500, 10)
	bill, err := billing.CreateBill(ctx, &CreateBillInput{
		CustomerName:   "Asha",
		CustomerMobile: "9876543210",
		Items:          []BillItemInput{{ProductID: product.ID, QuantitySold: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, bill.CustomerID)

	err = svc.DeleteCustomer(ctx, *bill.CustomerID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindReferenced))
}

func TestDeleteCustomerWithoutBills(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewCustomerService(infra.NewCustomerRepository(db), infra.NewBillRepository(db))

	customer := &entity.Customer{Name: "Asha"}
	require.NoError(t, db.Create(customer).Error)

	require.NoError(t, svc.DeleteCustomer(ctx, customer.ID))

	_, err := svc.GetCustomer(ctx, customer.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestListCustomersSearch(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewCustomerService(infra.NewCustomerRepository(db), infra.NewBillRepository(db))

	mobile := "9876543210"
	require.NoError(t, db.Create(&entity.Customer{Name: "Ravi Kumar", ContactNo: &mobile}).Error)
	require.NoError(t, db.Create(&entity.Customer{Name: "Asha Patel"}).Error)

	result, err := svc.ListCustomers(ctx, &pagination.PaginationParams{Page: 1, PerPage: 10}, "ravi")
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Ravi Kumar", result.Items[0].Name)

	result, err = svc.ListCustomers(ctx, &pagination.PaginationParams{Page: 1, PerPage: 10}, "")
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.EqualValues(t, 2, result.Pagination.Total)
}
