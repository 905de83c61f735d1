package handler

import (
	"net/http"

	"github.com/brightforge/erp/internal/service"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	svc *service.PaymentService
}

func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.svc.List()
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, payments)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	payment, err := h.svc.GetByID(id)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, payment)
}

func (h *PaymentHandler) ListByOrder(c *gin.Context) {
	orderID, ok := ParseID(c, "orderId")
	if !ok {
		return
	}
	payments, err := h.svc.ListByOrder(orderID)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, payments)
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req service.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Order ID, payment method and amount are required")
		return
	}
	payment, err := h.svc.Create(req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, payment)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var req service.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Payment date, payment method and amount are required")
		return
	}
	payment, err := h.svc.Update(id, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, payment)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, gin.H{"message": "Payment deleted"})
}
