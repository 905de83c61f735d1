package repository

import (
	"github.com/brightforge/erp/internal/entity"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(c *entity.Customer) error {
	return r.db.Create(c).Error
}

func (r *CustomerRepository) GetByID(id uint) (*entity.Customer, error) {
	var c entity.Customer
	err := r.db.Where("id = ?", id).First(&c).Error
	return &c, err
}

func (r *CustomerRepository) Update(c *entity.Customer) error {
	return r.db.Save(c).Error
}

func (r *CustomerRepository) Delete(id uint) error {
	return r.db.Where("id = ?", id).Delete(&entity.Customer{}).Error
}

func (r *CustomerRepository) List() ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.db.Order("id").Find(&customers).Error
	return customers, err
}

// CountOrders returns how many orders reference the customer. Used to guard
// deletion.
func (r *CustomerRepository) CountOrders(customerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Order{}).Where("customer_id = ?", customerID).Count(&count).Error
	return count, err
}

func (r *CustomerRepository) ListOrders(customerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.Where("customer_id = ?", customerID).Order("order_date DESC").Find(&orders).Error
	return orders, err
}
