package repository

import (
	"time"

	"github.com/brightforge/erp/internal/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// PaymentListRow is a payment joined with its order's customer.
type PaymentListRow struct {
	PaymentID     uint            `json:"payment_id"`
	OrderID       uint            `json:"order_id"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	CustomerID    uint            `json:"customer_id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
}

func (r *PaymentRepository) List() ([]PaymentListRow, error) {
	var rows []PaymentListRow
	err := r.db.Raw(`
		SELECT p.id AS payment_id, p.order_id, p.payment_date, p.payment_method, p.amount,
		       o.customer_id, c.first_name, c.last_name
		FROM payments p
		JOIN orders o ON p.order_id = o.id
		JOIN customers c ON o.customer_id = c.id
		ORDER BY p.payment_date DESC, p.id DESC
	`).Scan(&rows).Error
	return rows, err
}

// PaymentDetailRow adds the order date and amount plus the customer email.
type PaymentDetailRow struct {
	PaymentListRow
	OrderDate   time.Time       `json:"order_date"`
	OrderAmount decimal.Decimal `json:"order_amount"`
	Email       string          `json:"email"`
}

func (r *PaymentRepository) GetDetail(id uint) (*PaymentDetailRow, error) {
	var row PaymentDetailRow
	res := r.db.Raw(`
		SELECT p.id AS payment_id, p.order_id, p.payment_date, p.payment_method, p.amount,
		       o.customer_id, o.order_date, o.amount AS order_amount,
		       c.first_name, c.last_name, c.email
		FROM payments p
		JOIN orders o ON p.order_id = o.id
		JOIN customers c ON o.customer_id = c.id
		WHERE p.id = ?
	`, id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *PaymentRepository) GetByID(id uint) (*entity.Payment, error) {
	var p entity.Payment
	err := r.db.Where("id = ?", id).First(&p).Error
	return &p, err
}

func (r *PaymentRepository) Update(p *entity.Payment) error {
	return r.db.Save(p).Error
}

func (r *PaymentRepository) Delete(id uint) error {
	return r.db.Where("id = ?", id).Delete(&entity.Payment{}).Error
}

func (r *PaymentRepository) ListByOrder(orderID uint) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.Where("order_id = ?", orderID).Order("payment_date DESC").Find(&payments).Error
	return payments, err
}

// DB exposes the underlying handle for transactional use.
func (r *PaymentRepository) DB() *gorm.DB {
	return r.db
}
