package handler

import (
	"github.com/Darshan-Dhanvate/grocerease-api/internal/application/service"
	"github.com/Darshan-Dhanvate/grocerease-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles destructive maintenance HTTP requests
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ClearHistory wipes all bills, bill items and customers
func (h *AdminHandler) ClearHistory(c *gin.Context) {
	if err := h.adminService.ClearHistory(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales history cleared successfully", nil)
}
