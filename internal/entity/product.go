package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item with a unit price and an on-hand stock count.
// StockQuantity is mutated only by order creation/deletion and by production
// records entering or leaving the Completed status.
type Product struct {
	ID            uint            `json:"product_id" gorm:"primaryKey;autoIncrement"`
	ProductName   string          `json:"product_name" gorm:"size:200;not null"`
	Category      string          `json:"category" gorm:"size:100;not null"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	StockQuantity int             `json:"stock_quantity" gorm:"not null;default:0"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
