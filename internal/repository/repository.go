package repository

import "gorm.io/gorm"

// Repositories bundles every data-access object behind one constructor.
type Repositories struct {
	User       *UserRepository
	Customer   *CustomerRepository
	Product    *ProductRepository
	Order      *OrderRepository
	Payment    *PaymentRepository
	Invoice    *InvoiceRepository
	Production *ProductionRepository
	Employee   *EmployeeRepository
	Supplier   *SupplierRepository
	Dashboard  *DashboardRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Customer:   NewCustomerRepository(db),
		Product:    NewProductRepository(db),
		Order:      NewOrderRepository(db),
		Payment:    NewPaymentRepository(db),
		Invoice:    NewInvoiceRepository(db),
		Production: NewProductionRepository(db),
		Employee:   NewEmployeeRepository(db),
		Supplier:   NewSupplierRepository(db),
		Dashboard:  NewDashboardRepository(db),
	}
}
