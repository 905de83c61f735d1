package entity

import (
	"time"
)

// Customer is a buyer that orders reference.
type Customer struct {
	ID        uint      `json:"customer_id" gorm:"primaryKey;autoIncrement"`
	FirstName string    `json:"first_name" gorm:"size:100;not null"`
	LastName  string    `json:"last_name" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"size:100;not null"`
	Phone     string    `json:"phone" gorm:"size:20;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}
