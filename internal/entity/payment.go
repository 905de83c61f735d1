package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records money received against an order. An order may carry any
// number of payments.
type Payment struct {
	ID            uint            `json:"payment_id" gorm:"primaryKey;autoIncrement"`
	OrderID       uint            `json:"order_id" gorm:"not null;index"`
	PaymentDate   time.Time       `json:"payment_date" gorm:"type:date;not null"`
	PaymentMethod string          `json:"payment_method" gorm:"size:50;not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Order *Order `json:"order,omitempty" gorm:"foreignKey:OrderID"`
}

func (Payment) TableName() string {
	return "payments"
}
