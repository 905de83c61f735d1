package repository

import (
	"github.com/brightforge/erp/internal/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.db.Create(p).Error
}

func (r *ProductRepository) GetByID(id uint) (*entity.Product, error) {
	var p entity.Product
	err := r.db.Where("id = ?", id).First(&p).Error
	return &p, err
}

func (r *ProductRepository) Update(p *entity.Product) error {
	return r.db.Save(p).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.db.Where("id = ?", id).Delete(&entity.Product{}).Error
}

func (r *ProductRepository) List() ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.Order("product_name").Find(&products).Error
	return products, err
}

func (r *ProductRepository) ListByCategory(category string) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.Where("category = ?", category).Order("product_name").Find(&products).Error
	return products, err
}

func (r *ProductRepository) ListLowStock(threshold int) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.Where("stock_quantity < ?", threshold).Order("stock_quantity").Find(&products).Error
	return products, err
}

// CountOrderItems returns how many order lines reference the product. Used to
// guard deletion.
func (r *ProductRepository) CountOrderItems(productID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.OrderItem{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}

// CountProduction returns how many production records reference the product.
// Used to guard deletion.
func (r *ProductRepository) CountProduction(productID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Production{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}
