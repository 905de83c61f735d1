package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus values.
const (
	InvoiceStatusGenerated = "generated"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

// InvoiceStatuses is the closed set accepted by the status endpoint.
var InvoiceStatuses = []string{
	InvoiceStatusGenerated,
	InvoiceStatusPaid,
	InvoiceStatusCancelled,
}

// ValidInvoiceStatus reports whether s is a known invoice status.
func ValidInvoiceStatus(s string) bool {
	for _, v := range InvoiceStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Invoice is a billing document snapshotting the order amount at generation
// time. The unique index on OrderID backs the one-invoice-per-order rule in
// addition to the application-level existence check.
type Invoice struct {
	ID          uint            `json:"invoice_id" gorm:"primaryKey;autoIncrement"`
	OrderID     uint            `json:"order_id" gorm:"not null;uniqueIndex"`
	CustomerID  uint            `json:"customer_id" gorm:"not null;index"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	InvoiceDate time.Time       `json:"invoice_date" gorm:"not null"`
	Status      string          `json:"status" gorm:"size:20;not null;default:generated"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Invoice) TableName() string {
	return "invoices"
}
