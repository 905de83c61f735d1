package handler

import (
	"net/http"

	"github.com/brightforge/erp/internal/service"
	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	svc *service.InvoiceService
}

func NewInvoiceHandler(svc *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.svc.List()
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, invoices)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
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

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req service.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Order ID is required")
		return
	}
	invoice, err := h.svc.Create(req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, invoice)
}

type updateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var req updateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Status is required")
		return
	}
	invoice, err := h.svc.UpdateStatus(id, req.Status)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, invoice)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, gin.H{"message": "Invoice deleted"})
}
