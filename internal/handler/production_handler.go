package handler

import (
	"net/http"

	"github.com/brightforge/erp/internal/service"
	"github.com/gin-gonic/gin"
)

type ProductionHandler struct {
	svc *service.ProductionService
}

func NewProductionHandler(svc *service.ProductionService) *ProductionHandler {
	return &ProductionHandler{svc: svc}
}

func (h *ProductionHandler) List(c *gin.Context) {
	records, err := h.svc.List()
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, records)
}

func (h *ProductionHandler) Get(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	record, err := h.svc.GetByID(id)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, record)
}

func (h *ProductionHandler) ListByProduct(c *gin.Context) {
	productID, ok := ParseID(c, "productId")
	if !ok {
		return
	}
	records, err := h.svc.ListByProduct(productID)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, records)
}

func (h *ProductionHandler) Create(c *gin.Context) {
	var req service.CreateProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Product ID, a positive quantity and status are required")
		return
	}
	record, err := h.svc.Create(req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, record)
}

func (h *ProductionHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Production date, a positive quantity and status are required")
		return
	}
	record, err := h.svc.Update(id, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, record)
}

func (h *ProductionHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, gin.H{"message": "Production record deleted"})
}
