package service

import (
	"github.com/brightforge/erp/internal/config"
	"github.com/brightforge/erp/internal/repository"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Services bundles every service behind the HTTP layer.
type Services struct {
	Auth       *AuthService
	Customer   *CustomerService
	Product    *ProductService
	Order      *OrderService
	Employee   *EmployeeService
	Supplier   *SupplierService
	Payment    *PaymentService
	Invoice    *InvoiceService
	Production *ProductionService
	Dashboard  *DashboardService
	Report     *ReportService
}

func NewServices(repos *repository.Repositories, db *gorm.DB, rdb *redis.Client, cfg *config.Config) *Services {
	return &Services{
		Auth:       NewAuthService(repos.User, rdb, cfg),
		Customer:   NewCustomerService(repos.Customer),
		Product:    NewProductService(repos.Product),
		Order:      NewOrderService(repos.Order, db),
		Employee:   NewEmployeeService(repos.Employee),
		Supplier:   NewSupplierService(repos.Supplier),
		Payment:    NewPaymentService(repos.Payment, db),
		Invoice:    NewInvoiceService(repos.Invoice, repos.Order, repos.Payment),
		Production: NewProductionService(repos.Production, db),
		Dashboard:  NewDashboardService(repos.Dashboard),
		Report:     NewReportService(repos.Order),
	}
}
