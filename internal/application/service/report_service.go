package service

import (
	"context"
	"time"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/entity"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/repository"
)

const (
	defaultTopProductsLimit = 5
	maxTopProductsLimit     = 50
	expiryWindowDays        = 30
)

// ReportService handles read-only sales and stock reporting
type ReportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// DailySales aggregates the bills of one calendar day in the server's
// local timezone. The bounds are computed here rather than with database
// date functions so the query runs unchanged on any backend.
func (s *ReportService) DailySales(ctx context.Context, day time.Time) (*repository.SalesSummary, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	return s.reportRepo.SalesSummary(ctx, start, end)
}

// LowStockProducts lists active products at or below their threshold
func (s *ReportService) LowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.reportRepo.LowStockProducts(ctx)
}

// ExpiringProducts lists active products whose expiry date falls within
// the next 30 days
func (s *ReportService) ExpiringProducts(ctx context.Context) ([]entity.Product, error) {
	now := time.Now()
	return s.reportRepo.ExpiringProducts(ctx, now, now.AddDate(0, 0, expiryWindowDays))
}

// TopProducts lists the best-selling products by revenue
func (s *ReportService) TopProducts(ctx context.Context, limit int) ([]repository.TopProduct, error) {
	if limit <= 0 {
		limit = defaultTopProductsLimit
	}
	if limit > maxTopProductsLimit {
		limit = maxTopProductsLimit
	}
	return s.reportRepo.TopProducts(ctx, limit)
}
