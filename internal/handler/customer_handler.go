package handler

import (
	"net/http"

	"github.com/brightforge/erp/internal/service"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	svc *service.CustomerService
}

func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.svc.List()
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	customer, err := h.svc.GetByID(id)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req service.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "First name, last name and a valid email are required")
		return
	}
	customer, err := h.svc.Create(req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var req service.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "First name, last name and a valid email are required")
		return
	}
	customer, err := h.svc.Update(id, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, gin.H{"message": "Customer deleted"})
}

func (h *CustomerHandler) ListOrders(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	orders, err := h.svc.ListOrders(id)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, orders)
}
