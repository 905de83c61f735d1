package repository

import (
	"github.com/brightforge/erp/internal/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LowStockThreshold is the stock level under which a product counts as low
// stock on the dashboard.
const LowStockThreshold = 10

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Counts holds the headline record counts.
type Counts struct {
	Orders    int64 `json:"orders"`
	Customers int64 `json:"customers"`
	Products  int64 `json:"products"`
	Employees int64 `json:"employees"`
	Suppliers int64 `json:"suppliers"`
	LowStock  int64 `json:"low_stock"`
}

func (r *DashboardRepository) GetCounts() (*Counts, error) {
	var c Counts
	models := []struct {
		model interface{}
		dst   *int64
	}{
		{&entity.Order{}, &c.Orders},
		{&entity.Customer{}, &c.Customers},
		{&entity.Product{}, &c.Products},
		{&entity.Employee{}, &c.Employees},
		{&entity.Supplier{}, &c.Suppliers},
	}
	for _, m := range models {
		if err := r.db.Model(m.model).Count(m.dst).Error; err != nil {
			return nil, err
		}
	}
	err := r.db.Model(&entity.Product{}).
		Where("stock_quantity < ?", LowStockThreshold).Count(&c.LowStock).Error
	return &c, err
}

func (r *DashboardRepository) TotalRevenue() (decimal.Decimal, error) {
	var result struct{ Total decimal.Decimal }
	err := r.db.Raw(`SELECT COALESCE(SUM(amount), 0) AS total FROM orders`).Scan(&result).Error
	return result.Total, err
}

func (r *DashboardRepository) RecentOrders(limit int) ([]OrderListRow, error) {
	var rows []OrderListRow
	err := r.db.Raw(`
		SELECT o.id AS order_id, o.customer_id, o.order_date, o.amount, o.status,
		       c.first_name, c.last_name,
		       COUNT(oi.id) AS item_count
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
		LEFT JOIN order_items oi ON o.id = oi.order_id
		GROUP BY o.id, c.first_name, c.last_name
		ORDER BY o.order_date DESC, o.id DESC
		LIMIT ?
	`, limit).Scan(&rows).Error
	return rows, err
}

// MonthlyRevenue is the order total for one calendar month.
type MonthlyRevenue struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

func (r *DashboardRepository) MonthlyRevenue() ([]MonthlyRevenue, error) {
	var rows []MonthlyRevenue
	err := r.db.Raw(`
		SELECT to_char(order_date, 'YYYY-MM') AS month,
		       SUM(amount) AS total
		FROM orders
		WHERE order_date >= CURRENT_DATE - INTERVAL '1 year'
		GROUP BY to_char(order_date, 'YYYY-MM')
		ORDER BY month
	`).Scan(&rows).Error
	return rows, err
}

// CategoryCount is the number of products in one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

func (r *DashboardRepository) ProductsByCategory() ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.Raw(`
		SELECT category, COUNT(*) AS count
		FROM products
		GROUP BY category
		ORDER BY count DESC
	`).Scan(&rows).Error
	return rows, err
}

// CustomerSales aggregates order count and spend per customer.
type CustomerSales struct {
	CustomerID uint            `json:"customer_id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	OrderCount int             `json:"order_count"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

func (r *DashboardRepository) SalesByCustomer() ([]CustomerSales, error) {
	var rows []CustomerSales
	err := r.db.Raw(`
		SELECT c.id AS customer_id, c.first_name, c.last_name,
		       COUNT(o.id) AS order_count,
		       COALESCE(SUM(o.amount), 0) AS total_spent
		FROM customers c
		LEFT JOIN orders o ON c.id = o.customer_id
		GROUP BY c.id, c.first_name, c.last_name
		ORDER BY total_spent DESC
	`).Scan(&rows).Error
	return rows, err
}

// TopProduct aggregates sold quantity and revenue per product.
type TopProduct struct {
	ProductID     uint            `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	TotalQuantity int             `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

func (r *DashboardRepository) TopSellingProducts(limit int) ([]TopProduct, error) {
	var rows []TopProduct
	err := r.db.Raw(`
		SELECT p.id AS product_id, p.product_name, p.category, p.price,
		       SUM(oi.quantity) AS total_quantity,
		       SUM(oi.quantity * p.price) AS total_revenue
		FROM products p
		JOIN order_items oi ON p.id = oi.product_id
		GROUP BY p.id, p.product_name, p.category, p.price
		ORDER BY total_quantity DESC
		LIMIT ?
	`, limit).Scan(&rows).Error
	return rows, err
}
