package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus values. Any status may move to any other; only membership in
// this set is validated.
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCanceled   = "Canceled"
)

// OrderStatuses is the closed set accepted by the status endpoint.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

// ValidOrderStatus reports whether s is one of the five order statuses.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Order is a customer purchase. Amount is frozen at creation time from the
// item quantities and the product prices in effect then; it is never
// recomputed.
type Order struct {
	ID         uint            `json:"order_id" gorm:"primaryKey;autoIncrement"`
	CustomerID uint            `json:"customer_id" gorm:"not null;index"`
	OrderDate  time.Time       `json:"order_date" gorm:"type:date;not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Status     string          `json:"status" gorm:"size:20;not null;default:Pending"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	Customer *Customer   `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Items    []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order. Rows are immutable once written and are
// removed only when the parent order is deleted.
type OrderItem struct {
	ID        uint      `json:"item_id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint      `json:"order_id" gorm:"not null;index"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
