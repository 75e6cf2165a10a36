package service

import (
	"context"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/repository"
)

// AdminService handles destructive maintenance operations
type AdminService struct {
	billRepo repository.BillRepository
}

// NewAdminService creates a new admin service
func NewAdminService(billRepo repository.BillRepository) *AdminService {
	return &AdminService{billRepo: billRepo}
}

// ClearHistory wipes all bills, bill items and customers in one
// transaction. The product catalog and current stock levels survive.
func (s *AdminService) ClearHistory(ctx context.Context) error {
	return s.billRepo.ClearHistory(ctx)
}
