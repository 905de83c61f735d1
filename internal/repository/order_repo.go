package repository

import (
	"time"

	"github.com/brightforge/erp/internal/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// OrderListRow is one row of the orders ledger: the order plus the customer
// name and the number of lines.
type OrderListRow struct {
	OrderID    uint            `json:"order_id"`
	CustomerID uint            `json:"customer_id"`
	OrderDate  time.Time       `json:"order_date"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	ItemCount  int             `json:"item_count"`
}

func (r *OrderRepository) List() ([]OrderListRow, error) {
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
	`).Scan(&rows).Error
	return rows, err
}

func (r *OrderRepository) GetByID(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.db.Preload("Customer").Preload("Items").Preload("Items.Product").
		Where("id = ?", id).First(&o).Error
	return &o, err
}

func (r *OrderRepository) ListAllWithCustomer() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.Preload("Customer").Order("order_date DESC, id DESC").Find(&orders).Error
	return orders, err
}

// DB exposes the underlying handle for transactional use.
func (r *OrderRepository) DB() *gorm.DB {
	return r.db
}
