package handler

import (
	"github.com/Darshan-Dhanvate/grocerease-api/internal/application/service"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/presentation/http/dto/request"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// BillingHandler handles billing HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Create handles bill creation
func (h *BillingHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateBillInput{
		CustomerName:       req.CustomerName,
		CustomerMobile:     req.CustomerMobile,
		DiscountPercentage: req.DiscountPercentage,
		TaxPercentage:      req.TaxPercentage,
		Items:              make([]service.BillItemInput, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.BillItemInput{
			ProductID:    item.ProductID,
			QuantitySold: item.QuantitySold,
		})
	}

	bill, err := h.billingService.CreateBill(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", bill)
}

// Get handles retrieving a single bill
func (h *BillingHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// List handles listing bills
func (h *BillingHandler) List(c *gin.Context) {
	result, err := h.billingService.ListBills(c.Request.Context(), paginationFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}
