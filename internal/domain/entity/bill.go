package entity

import (
	"encoding/json"
	"time"

	"github.com/Darshan-Dhanvate/grocerease-api/pkg/money"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill represents a completed sale. Bills are immutable after creation;
// the only way they disappear is the admin clear-history operation.
type Bill struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID         *uuid.UUID     `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	BillDate           time.Time      `gorm:"not null;index" json:"bill_date"`
	SubTotal           money.Cents    `gorm:"not null" json:"sub_total"`
	DiscountPercentage float64        `gorm:"not null;default:0" json:"discount_percentage"`
	DiscountAmount     money.Cents    `gorm:"not null;default:0" json:"discount_amount"`
	TaxPercentage      float64        `gorm:"not null;default:0" json:"tax_percentage"`
	TaxAmount          money.Cents    `gorm:"not null;default:0" json:"tax_amount"`
	NetAmount          money.Cents    `gorm:"not null" json:"net_amount"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (b Bill) MarshalJSON() ([]byte, error) {
	type Alias Bill
	return json.Marshal(&struct {
		Alias
		SubTotal       float64 `json:"sub_total"`
		DiscountAmount float64 `json:"discount_amount"`
		TaxAmount      float64 `json:"tax_amount"`
		NetAmount      float64 `json:"net_amount"`
	}{
		Alias:          Alias(b),
		SubTotal:       b.SubTotal.Decimal(),
		DiscountAmount: b.DiscountAmount.Decimal(),
		TaxAmount:      b.TaxAmount.Decimal(),
		NetAmount:      b.NetAmount.Decimal(),
	})
}

// BillItem represents a line item on a bill. PricePerUnit is a snapshot of
// the product's selling price at sale time, so later price edits never
// rewrite sales history.
type BillItem struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BillID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"bill_id"`
	ProductID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	QuantitySold int            `gorm:"not null" json:"quantity_sold"`
	PricePerUnit money.Cents    `gorm:"not null" json:"price_per_unit"`
	TotalPrice   money.Cents    `gorm:"not null" json:"total_price"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Bill    Bill     `gorm:"foreignKey:BillID" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill item
func (bi *BillItem) BeforeCreate(tx *gorm.DB) error {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (bi BillItem) MarshalJSON() ([]byte, error) {
	type Alias BillItem
	return json.Marshal(&struct {
		Alias
		PricePerUnit float64 `json:"price_per_unit"`
		TotalPrice   float64 `json:"total_price"`
	}{
		Alias:        Alias(bi),
		PricePerUnit: bi.PricePerUnit.Decimal(),
		TotalPrice:   bi.TotalPrice.Decimal(),
	})
}
