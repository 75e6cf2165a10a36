package routes

import (
	"time"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/config"
	domainRepo "github.com/Darshan-Dhanvate/grocerease-api/internal/domain/repository"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/presentation/http/handler"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/presentation/http/middleware"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Billing  *handler.BillingHandler
	Customer *handler.CustomerHandler
	Supplier *handler.SupplierHandler
	Report   *handler.ReportHandler
	Admin    *handler.AdminHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	auth := middleware.AuthMiddleware(deps.JWTManager)
	adminOnly := middleware.RequireRole("admin")
	staff := middleware.RequireRole("admin", "cashier")

	rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	idempotency := middleware.IdempotencyRequired(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/signup", h.Auth.Signup)
			authGroup.POST("/login", h.Auth.Login)
			authGroup.POST("/refresh", h.Auth.Refresh)
		}

		// Read-only catalog and billing views stay open for the store
		// dashboard
		v1.GET("/products", h.Product.List)
		v1.GET("/products/:id", h.Product.Get)
		v1.GET("/suppliers", h.Supplier.List)
		v1.GET("/suppliers/:id", h.Supplier.Get)
		v1.GET("/billing", h.Billing.List)
		v1.GET("/billing/:id", h.Billing.Get)

		// Authenticated routes
		protected := v1.Group("")
		protected.Use(auth)
		protected.Use(rateLimiter.Middleware())

		protected.GET("/auth/me", h.Auth.Me)

		// Bill creation is open to any staff role but requires an
		// idempotency key
		protected.POST("/billing", staff, idempotency, h.Billing.Create)

		// Admin-only writes
		admin := protected.Group("")
		admin.Use(adminOnly)
		{
			admin.POST("/products", h.Product.Create)
			admin.PUT("/products/:id", h.Product.Update)
			admin.PATCH("/products/:id/deactivate", h.Product.Deactivate)
			admin.POST("/products/:id/restock", h.Product.Restock)
			admin.DELETE("/products/:id", h.Product.Delete)

			admin.POST("/suppliers", h.Supplier.Create)
			admin.PUT("/suppliers/:id", h.Supplier.Update)
			admin.DELETE("/suppliers/:id", h.Supplier.Delete)

			admin.GET("/customers", h.Customer.List)
			admin.GET("/customers/:id", h.Customer.Get)
			admin.DELETE("/customers/:id", h.Customer.Delete)

			admin.GET("/reports/sales/daily", h.Report.DailySales)
			admin.GET("/reports/stock/low", h.Report.LowStock)
			admin.GET("/reports/stock/expiring", h.Report.Expiring)
			admin.GET("/reports/products/top", h.Report.TopProducts)

			admin.DELETE("/admin/clear-history", h.Admin.ClearHistory)
		}
	}

	return router
}
