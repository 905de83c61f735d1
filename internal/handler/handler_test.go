package handler

import (
	"testing"
	"time"

	"github.com/brightforge/erp/internal/config"
	"github.com/brightforge/erp/internal/repository"
	"github.com/brightforge/erp/internal/service"
	"github.com/brightforge/erp/internal/testutil"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// setupServer wires the full API against an isolated test schema and returns
// the router plus the raw DB handle for seeding and assertions.
func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	cfg := &config.Config{}
	cfg.JWT.Secret = testutil.JWTSecret
	cfg.JWT.Expiry = time.Hour

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, db, nil, cfg)
	h := NewHandlers(services)

	router := testutil.SetupRouter()

	auth := router.Group("/api/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/register", h.Auth.Register)
	auth.POST("/logout", h.Auth.Logout)
	auth.GET("/check", h.Auth.Check)

	api := testutil.AuthGroup(router, "/api")

	customers := api.Group("/customers")
	customers.GET("", h.Customer.List)
	customers.POST("", h.Customer.Create)
	customers.GET("/:id", h.Customer.Get)
	customers.PUT("/:id", h.Customer.Update)
	customers.DELETE("/:id", h.Customer.Delete)
	customers.GET("/:id/orders", h.Customer.ListOrders)

	products := api.Group("/products")
	products.GET("", h.Product.List)
	products.POST("", h.Product.Create)
	products.GET("/stock/low", h.Product.ListLowStock)
	products.GET("/category/:category", h.Product.ListByCategory)
	products.GET("/:id", h.Product.Get)
	products.PUT("/:id", h.Product.Update)
	products.DELETE("/:id", h.Product.Delete)

	orders := api.Group("/orders")
	orders.GET("", h.Order.List)
	orders.POST("", h.Order.Create)
	orders.GET("/export", h.Report.ExportOrders)
	orders.GET("/:id", h.Order.Get)
	orders.PATCH("/:id/status", h.Order.UpdateStatus)
	orders.DELETE("/:id", h.Order.Delete)

	employees := api.Group("/employees")
	employees.GET("", h.Employee.List)
	employees.POST("", h.Employee.Create)
	employees.GET("/summary/departments", h.Employee.DepartmentSummary)
	employees.GET("/department/:department", h.Employee.ListByDepartment)
	employees.GET("/:id", h.Employee.Get)
	employees.PUT("/:id", h.Employee.Update)
	employees.DELETE("/:id", h.Employee.Delete)

	suppliers := api.Group("/suppliers")
	suppliers.GET("", h.Supplier.List)
	suppliers.POST("", h.Supplier.Create)
	suppliers.GET("/:id", h.Supplier.Get)
	suppliers.PUT("/:id", h.Supplier.Update)
	suppliers.DELETE("/:id", h.Supplier.Delete)

	payments := api.Group("/payments")
	payments.GET("", h.Payment.List)
	payments.POST("", h.Payment.Create)
	payments.GET("/order/:orderId", h.Payment.ListByOrder)
	payments.GET("/:id", h.Payment.Get)
	payments.PUT("/:id", h.Payment.Update)
	payments.DELETE("/:id", h.Payment.Delete)

	invoices := api.Group("/invoices")
	invoices.GET("", h.Invoice.List)
	invoices.POST("", h.Invoice.Create)
	invoices.GET("/:id", h.Invoice.Get)
	invoices.PATCH("/:id/status", h.Invoice.UpdateStatus)
	invoices.DELETE("/:id", h.Invoice.Delete)

	production := api.Group("/production")
	production.GET("", h.Production.List)
	production.POST("", h.Production.Create)
	production.GET("/product/:productId", h.Production.ListByProduct)
	production.GET("/:id", h.Production.Get)
	production.PUT("/:id", h.Production.Update)
	production.DELETE("/:id", h.Production.Delete)

	dashboard := api.Group("/dashboard")
	dashboard.GET("", h.Dashboard.Overview)
	dashboard.GET("/sales/customers", h.Dashboard.SalesByCustomer)
	dashboard.GET("/products/top-selling", h.Dashboard.TopSellingProducts)
	dashboard.GET("/employees/departments", h.Dashboard.EmployeesByDepartment)

	return router, db
}
