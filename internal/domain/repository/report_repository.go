package repository

import (
	"context"
	"time"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/entity"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/money"
	"github.com/google/uuid"
)

// SalesSummary aggregates bills within a time window
type SalesSummary struct {
	TotalBills int64       `json:"total_bills"`
	TotalSales money.Cents `json:"total_sales"`
}

// TopProduct is one row of the top-products-by-revenue report
type TopProduct struct {
	ProductID    uuid.UUID   `json:"product_id"`
	Name         string      `json:"name"`
	QuantitySold int64       `json:"quantity_sold"`
	Revenue      money.Cents `json:"revenue"`
}

// ReportRepository defines the read-only aggregation queries behind the
// reporting endpoints. Time bounds are computed by the caller so the SQL
// stays portable across databases.
type ReportRepository interface {
	SalesSummary(ctx context.Context, from, to time.Time) (*SalesSummary, error)
	LowStockProducts(ctx context.Context) ([]entity.Product, error)
	ExpiringProducts(ctx context.Context, from, to time.Time) ([]entity.Product, error)
	TopProducts(ctx context.Context, limit int) ([]TopProduct, error)
}
