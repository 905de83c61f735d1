package handler

import (
	"net/http"

	"github.com/brightforge/erp/internal/service"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.svc.List()
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	detail, err := h.svc.GetByID(id)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, detail)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Customer ID and at least one item are required")
		return
	}
	result, err := h.svc.Create(req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, result)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Status is required")
		return
	}
	if err := h.svc.UpdateStatus(id, req.Status); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, gin.H{"order_id": id, "status": req.Status})
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, gin.H{"message": "Order deleted and stock restored"})
}
