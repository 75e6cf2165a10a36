package request

import "github.com/google/uuid"

// BillItemRequest represents one line of a bill creation request
type BillItemRequest struct {
	ProductID    uuid.UUID `json:"product_id" binding:"required"`
	QuantitySold int       `json:"quantity_sold" binding:"required,gt=0"`
}

// CreateBillRequest represents a bill creation request. Customer fields
// are optional; omitting both records a walk-in sale.
type CreateBillRequest struct {
	CustomerName       string            `json:"customer_name" binding:"omitempty,max=255"`
	CustomerMobile     string            `json:"customer_mobile" binding:"omitempty,max=50"`
	DiscountPercentage float64           `json:"discount_percentage" binding:"min=0,max=100"`
	TaxPercentage      float64           `json:"tax_percentage" binding:"min=0"`
	Items              []BillItemRequest `json:"items" binding:"required,dive"`
}
