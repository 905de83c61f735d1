package repository

import (
	"time"

	"github.com/brightforge/erp/internal/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// InvoiceListRow is an invoice joined with its customer and order date.
type InvoiceListRow struct {
	InvoiceID   uint            `json:"invoice_id"`
	OrderID     uint            `json:"order_id"`
	CustomerID  uint            `json:"customer_id"`
	Amount      decimal.Decimal `json:"amount"`
	InvoiceDate time.Time       `json:"invoice_date"`
	Status      string          `json:"status"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	OrderDate   *time.Time      `json:"order_date"`
}

// List keeps invoices visible even after their order is gone; the order date
// is null for those rows.
func (r *InvoiceRepository) List() ([]InvoiceListRow, error) {
	var rows []InvoiceListRow
	err := r.db.Raw(`
		SELECT i.id AS invoice_id, i.order_id, i.customer_id, i.amount, i.invoice_date, i.status,
		       c.first_name, c.last_name, o.order_date
		FROM invoices i
		JOIN customers c ON i.customer_id = c.id
		LEFT JOIN orders o ON i.order_id = o.id
		ORDER BY i.invoice_date DESC, i.id DESC
	`).Scan(&rows).Error
	return rows, err
}

func (r *InvoiceRepository) Create(inv *entity.Invoice) error {
	return r.db.Create(inv).Error
}

func (r *InvoiceRepository) GetByID(id uint) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.db.Where("id = ?", id).First(&inv).Error
	return &inv, err
}

func (r *InvoiceRepository) GetByOrderID(orderID uint) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.db.Where("order_id = ?", orderID).First(&inv).Error
	return &inv, err
}

func (r *InvoiceRepository) ExistsForOrder(orderID uint) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Invoice{}).Where("order_id = ?", orderID).Count(&count).Error
	return count > 0, err
}

func (r *InvoiceRepository) Update(inv *entity.Invoice) error {
	return r.db.Save(inv).Error
}

func (r *InvoiceRepository) Delete(id uint) error {
	return r.db.Where("id = ?", id).Delete(&entity.Invoice{}).Error
}
