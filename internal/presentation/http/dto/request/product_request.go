package request

import (
	"time"

	"github.com/google/uuid"
)

// ProductRequest represents a product creation or update request. Prices
// arrive as decimals and are converted to cents at the handler boundary.
type ProductRequest struct {
	Name              string     `json:"name" binding:"required,min=1,max=255"`
	Brand             string     `json:"brand" binding:"omitempty,max=255"`
	Category          string     `json:"category" binding:"omitempty,max=255"`
	Unit              string     `json:"unit" binding:"omitempty,max=50"`
	CostPrice         float64    `json:"cost_price" binding:"required,gt=0"`
	SellingPrice      float64    `json:"selling_price" binding:"required,gt=0"`
	QuantityInStock   int        `json:"quantity_in_stock" binding:"min=0"`
	LowStockThreshold int        `json:"low_stock_threshold" binding:"min=0"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	SupplierID        *uuid.UUID `json:"supplier_id"`
}

// RestockRequest represents a stock addition request
type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	Status    string `form:"status" binding:"omitempty,oneof=active inactive"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
