package service

import (
	"testing"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/entity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory sqlite database and migrates
// the full schema. A single connection keeps the memory database alive
// for the whole test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Supplier{},
		&entity.Product{},
		&entity.Customer{},
		&entity.Bill{},
		&entity.BillItem{},
		&entity.IdempotencyKey{},
	)
	require.NoError(t, err)

	return db
}
