package request

// SupplierRequest represents a supplier creation or update request
type SupplierRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=255"`
	ContactPerson *string `json:"contact_person" binding:"omitempty,max=255"`
	ContactNo     *string `json:"contact_no" binding:"omitempty,max=50"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Address       *string `json:"address"`
}
