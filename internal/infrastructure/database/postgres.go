package database

import (
	"fmt"
	"log"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/config"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/entity"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/enum"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Supplier{},
		&entity.Product{},
		&entity.Customer{},
		&entity.Bill{},
		&entity.BillItem{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the bootstrap admin account when one is
// configured and no user with that email exists yet.
func SeedDefaultData(db *gorm.DB, adminCfg *config.AdminConfig) error {
	if adminCfg.Email == "" || adminCfg.Password == "" {
		return nil
	}

	var existing entity.User
	if err := db.Where("email = ?", adminCfg.Email).First(&existing).Error; err == nil {
		log.Printf("Admin user already exists: %s", adminCfg.Email)
		return nil
	}

	hashedPassword, err := utils.HashPassword(adminCfg.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	name := adminCfg.Name
	if name == "" {
		name = "Admin"
	}

	admin := entity.User{
		Name:     name,
		Email:    adminCfg.Email,
		Password: hashedPassword,
		Role:     enum.UserRoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Admin user created: %s", adminCfg.Email)
	return nil
}
