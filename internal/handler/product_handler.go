package handler

import (
	"net/http"
	"strconv"

	"github.com/brightforge/erp/internal/service"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	svc *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.svc.List()
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	product, err := h.svc.GetByID(id)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Product name and price are required")
		return
	}
	product, err := h.svc.Create(req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Product name and price are required")
		return
	}
	product, err := h.svc.Update(id, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, gin.H{"message": "Product deleted"})
}

func (h *ProductHandler) ListByCategory(c *gin.Context) {
	products, err := h.svc.ListByCategory(c.Param("category"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, products)
}

// ListLowStock accepts an optional threshold query, defaulting to the
// dashboard threshold.
func (h *ProductHandler) ListLowStock(c *gin.Context) {
	threshold := 0
	if raw := c.Query("threshold"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			Fail(c, http.StatusBadRequest, "Threshold must be a positive integer")
			return
		}
		threshold = v
	}
	products, err := h.svc.ListLowStock(threshold)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, products)
}
