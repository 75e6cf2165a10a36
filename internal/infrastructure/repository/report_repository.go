package repository

import (
	"context"
	"time"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/entity"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/enum"
	domainRepo "github.com/Darshan-Dhanvate/grocerease-api/internal/domain/repository"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/money"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

// Time bounds come in as arguments instead of database date functions, so
// the same SQL runs on postgres and sqlite.
func (r *reportRepository) SalesSummary(ctx context.Context, from, to time.Time) (*domainRepo.SalesSummary, error) {
	var row struct {
		TotalBills int64
		TotalSales int64
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) as total_bills,
			COALESCE(SUM(net_amount), 0) as total_sales
		FROM bills
		WHERE bill_date >= ? AND bill_date < ? AND deleted_at IS NULL
	`, from, to).Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &domainRepo.SalesSummary{
		TotalBills: row.TotalBills,
		TotalSales: money.Cents(row.TotalSales),
	}, nil
}

func (r *reportRepository) LowStockProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Where("quantity_in_stock <= low_stock_threshold AND status = ?", enum.ProductStatusActive).
		Order("quantity_in_stock ASC").
		Find(&products).Error
	return products, err
}

func (r *reportRepository) ExpiringProducts(ctx context.Context, from, to time.Time) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Where("expiry_date IS NOT NULL AND expiry_date >= ? AND expiry_date < ? AND status = ?",
			from, to, enum.ProductStatusActive).
		Order("expiry_date ASC").
		Find(&products).Error
	return products, err
}

func (r *reportRepository) TopProducts(ctx context.Context, limit int) ([]domainRepo.TopProduct, error) {
	var rows []struct {
		ProductID    uuid.UUID
		Name         string
		QuantitySold int64
		Revenue      int64
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id as product_id,
			p.name as name,
			COALESCE(SUM(bi.quantity_sold), 0) as quantity_sold,
			COALESCE(SUM(bi.total_price), 0) as revenue
		FROM bill_items bi
		JOIN products p ON p.id = bi.product_id
		WHERE bi.deleted_at IS NULL
		GROUP BY p.id, p.name
		ORDER BY revenue DESC
		LIMIT ?
	`, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]domainRepo.TopProduct, 0, len(rows))
	for _, row := range rows {
		results = append(results, domainRepo.TopProduct{
			ProductID:    row.ProductID,
			Name:         row.Name,
			QuantitySold: row.QuantitySold,
			Revenue:      money.Cents(row.Revenue),
		})
	}
	return results, nil
}
