package entity

import "gorm.io/gorm"

// AutoMigrate migrates all ERP tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Customer{},
		&Product{},
		&Order{},
		&OrderItem{},
		&Payment{},
		&Invoice{},
		&Production{},
		&Employee{},
		&Supplier{},
	)
}
