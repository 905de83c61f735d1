package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/brightforge/erp/internal/service"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every HTTP handler.
type Handlers struct {
	Auth       *AuthHandler
	Customer   *CustomerHandler
	Product    *ProductHandler
	Order      *OrderHandler
	Employee   *EmployeeHandler
	Supplier   *SupplierHandler
	Payment    *PaymentHandler
	Invoice    *InvoiceHandler
	Production *ProductionHandler
	Dashboard  *DashboardHandler
	Report     *ReportHandler
}

func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.Auth),
		Customer:   NewCustomerHandler(svc.Customer),
		Product:    NewProductHandler(svc.Product),
		Order:      NewOrderHandler(svc.Order),
		Employee:   NewEmployeeHandler(svc.Employee),
		Supplier:   NewSupplierHandler(svc.Supplier),
		Payment:    NewPaymentHandler(svc.Payment),
		Invoice:    NewInvoiceHandler(svc.Invoice),
		Production: NewProductionHandler(svc.Production),
		Dashboard:  NewDashboardHandler(svc.Dashboard, svc.Employee),
		Report:     NewReportHandler(svc.Report),
	}
}

// Response is the uniform envelope: status plus data on success, status plus
// message on error.
type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Status: "success", Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Status: "success", Data: data})
}

func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Status: "error", Message: message})
}

// RespondError maps typed service errors to HTTP statuses; anything
// unrecognized becomes a generic 500 so internals never leak.
func RespondError(c *gin.Context, err error) {
	var (
		validation *service.ValidationError
		notFound   *service.NotFoundError
		state      *service.InvalidStateError
		stock      *service.InsufficientStockError
	)
	switch {
	case errors.As(err, &validation):
		Fail(c, http.StatusBadRequest, validation.Error())
	case errors.As(err, &notFound):
		Fail(c, http.StatusNotFound, notFound.Error())
	case errors.As(err, &state):
		Fail(c, http.StatusBadRequest, state.Error())
	case errors.As(err, &stock):
		Fail(c, http.StatusBadRequest, stock.Error())
	default:
		Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}

// ParseID reads a numeric path parameter; 0 with false means it was invalid
// and a 400 has already been written.
func ParseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		Fail(c, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}
