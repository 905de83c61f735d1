package entity

import (
	"time"
)

// Supplier is a standalone vendor record with no cross-entity rules.
type Supplier struct {
	ID           uint      `json:"supplier_id" gorm:"primaryKey;autoIncrement"`
	SupplierName string    `json:"supplier_name" gorm:"size:200;not null"`
	ContactName  string    `json:"contact_name" gorm:"size:100;not null"`
	Phone        string    `json:"phone" gorm:"size:20;not null"`
	Email        string    `json:"email" gorm:"size:100;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
