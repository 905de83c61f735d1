package handler

import (
	"net/http"

	"github.com/brightforge/erp/internal/service"
	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	svc *service.EmployeeService
}

func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.svc.List()
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, employees)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	employee, err := h.svc.GetByID(id)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, employee)
}

func (h *EmployeeHandler) ListByDepartment(c *gin.Context) {
	employees, err := h.svc.ListByDepartment(c.Param("department"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, employees)
}

func (h *EmployeeHandler) DepartmentSummary(c *gin.Context) {
	summary, err := h.svc.DepartmentSummary()
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, summary)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req service.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "First name, last name, department and salary are required")
		return
	}
	employee, err := h.svc.Create(req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, employee)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var req service.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "First name, last name, department and salary are required")
		return
	}
	employee, err := h.svc.Update(id, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, employee)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, gin.H{"message": "Employee deleted"})
}
