package entity

import (
	"encoding/json"
	"time"

	"github.com/Darshan-Dhanvate/grocerease-api/internal/domain/enum"
	"github.com/Darshan-Dhanvate/grocerease-api/pkg/money"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a product in the inventory
type Product struct {
	ID                uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Name              string             `gorm:"size:255;not null;index:idx_products_name_brand,unique,where:deleted_at IS NULL" json:"name"`
	Brand             string             `gorm:"size:255;not null;default:'';index:idx_products_name_brand,unique,where:deleted_at IS NULL" json:"brand"`
	Category          string             `gorm:"size:255" json:"category"`
	Unit              string             `gorm:"size:50" json:"unit"`
	CostPrice         money.Cents        `gorm:"not null" json:"cost_price"`
	SellingPrice      money.Cents        `gorm:"not null" json:"selling_price"`
	QuantityInStock   int                `gorm:"not null;default:0" json:"quantity_in_stock"`
	LowStockThreshold int                `gorm:"not null;default:10" json:"low_stock_threshold"`
	ExpiryDate        *time.Time         `json:"expiry_date,omitempty"`
	Status            enum.ProductStatus `gorm:"size:20;default:'active'" json:"status"`
	SupplierID        *uuid.UUID         `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	DeletedAt         gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsActive reports whether the product is sellable
func (p *Product) IsActive() bool {
	return p.Status == enum.ProductStatusActive
}

// IsLowStock reports whether the stock level is at or below the threshold
func (p *Product) IsLowStock() bool {
	return p.QuantityInStock <= p.LowStockThreshold
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		CostPrice    float64 `json:"cost_price"`
		SellingPrice float64 `json:"selling_price"`
	}{
		Alias:        Alias(p),
		CostPrice:    p.CostPrice.Decimal(),
		SellingPrice: p.SellingPrice.Decimal(),
	})
}
