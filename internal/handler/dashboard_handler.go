package handler

import (
	"net/http"
	"strconv"

	"github.com/brightforge/erp/internal/service"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc         *service.DashboardService
	employeeSvc *service.EmployeeService
}

func NewDashboardHandler(svc *service.DashboardService, employeeSvc *service.EmployeeService) *DashboardHandler {
	return &DashboardHandler{svc: svc, employeeSvc: employeeSvc}
}

func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.svc.Overview()
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, overview)
}

func (h *DashboardHandler) SalesByCustomer(c *gin.Context) {
	rows, err := h.svc.SalesByCustomer()
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, rows)
}

func (h *DashboardHandler) TopSellingProducts(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			Fail(c, http.StatusBadRequest, "Limit must be a positive integer")
			return
		}
		limit = v
	}
	rows, err := h.svc.TopSellingProducts(limit)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, rows)
}

func (h *DashboardHandler) EmployeesByDepartment(c *gin.Context) {
	rows, err := h.employeeSvc.DepartmentSummary()
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, rows)
}
