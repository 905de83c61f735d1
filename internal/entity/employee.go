package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a standalone staff record with no cross-entity rules.
type Employee struct {
	ID         uint            `json:"employee_id" gorm:"primaryKey;autoIncrement"`
	FirstName  string          `json:"first_name" gorm:"size:100;not null"`
	LastName   string          `json:"last_name" gorm:"size:100;not null"`
	Department string          `json:"department" gorm:"size:100;not null"`
	Salary     decimal.Decimal `json:"salary" gorm:"type:decimal(12,2);not null"`
	HireDate   time.Time       `json:"hire_date" gorm:"type:date;not null"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
