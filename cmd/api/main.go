package main

import (
	"log"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/application/service"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/config"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/infrastructure/database"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/infrastructure/repository"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/presentation/http/handler"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/presentation/http/routes"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the bootstrap admin account
	if err := database.SeedDefaultData(db, &cfg.Admin); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	billRepo := repository.NewBillRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo, billRepo, supplierRepo)
	billingService := service.NewBillingService(billRepo)
	customerService := service.NewCustomerService(customerRepo, billRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	reportService := service.NewReportService(reportRepo)
	adminService := service.NewAdminService(billRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Product:  handler.NewProductHandler(productService),
		Billing:  handler.NewBillingHandler(billingService),
		Customer: handler.NewCustomerHandler(customerService),
		Supplier: handler.NewSupplierHandler(supplierService),
		Report:   handler.NewReportHandler(reportService),
		Admin:    handler.NewAdminHandler(adminService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "5000"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
