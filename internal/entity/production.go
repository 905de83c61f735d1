package entity

import (
	"time"
)

// ProductionStatus values. Only Completed affects stock.
const (
	ProductionStatusPending    = "Pending"
	ProductionStatusInProgress = "In Progress"
	ProductionStatusCompleted  = "Completed"
)

// ProductionStatuses is the closed set accepted on create and update.
var ProductionStatuses = []string{
	ProductionStatusPending,
	ProductionStatusInProgress,
	ProductionStatusCompleted,
}

// ValidProductionStatus reports whether s is a known production status.
func ValidProductionStatus(s string) bool {
	for _, v := range ProductionStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Production is a manufacturing log entry for a product. While its status is
// Completed its quantity is counted into the product stock; edits and deletes
// that move it out of Completed reverse that contribution.
type Production struct {
	ID               uint      `json:"production_id" gorm:"primaryKey;autoIncrement"`
	ProductID        uint      `json:"product_id" gorm:"not null;index"`
	ProductionDate   time.Time `json:"production_date" gorm:"type:date;not null"`
	QuantityProduced int       `json:"quantity_produced" gorm:"not null"`
	Status           string    `json:"status" gorm:"size:20;not null;default:Pending"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (Production) TableName() string {
	return "production"
}
