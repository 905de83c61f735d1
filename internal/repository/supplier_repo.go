package repository

import (
	"github.com/brightforge/erp/internal/entity"
	"gorm.io/gorm"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) Create(s *entity.Supplier) error {
	return r.db.Create(s).Error
}

func (r *SupplierRepository) GetByID(id uint) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.db.Where("id = ?", id).First(&s).Error
	return &s, err
}

func (r *SupplierRepository) Update(s *entity.Supplier) error {
	return r.db.Save(s).Error
}

func (r *SupplierRepository) Delete(id uint) error {
	return r.db.Where("id = ?", id).Delete(&entity.Supplier{}).Error
}

func (r *SupplierRepository) List() ([]entity.Supplier, error) {
	var suppliers []entity.Supplier
	err := r.db.Order("supplier_name").Find(&suppliers).Error
	return suppliers, err
}
