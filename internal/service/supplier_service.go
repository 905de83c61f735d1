package service

import (
	"errors"
	"fmt"

	"github.com/brightforge/erp/internal/entity"
	"github.com/brightforge/erp/internal/repository"
	"gorm.io/gorm"
)

type SupplierService struct {
	repo *repository.SupplierRepository
}

func NewSupplierService(repo *repository.SupplierRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

func (s *SupplierService) List() ([]entity.Supplier, error) {
	return s.repo.List()
}

func (s *SupplierService) GetByID(id uint) (*entity.Supplier, error) {
	supplier, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Supplier"}
		}
		return nil, err
	}
	return supplier, nil
}

type SupplierRequest struct {
	SupplierName string `json:"supplier_name" binding:"required"`
	ContactName  string `json:"contact_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

func (s *SupplierService) Create(req SupplierRequest) (*entity.Supplier, error) {
	supplier := &entity.Supplier{
		SupplierName: req.SupplierName,
		ContactName:  req.ContactName,
		Phone:        req.Phone,
		Email:        req.Email,
	}
	if err := s.repo.Create(supplier); err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	return supplier, nil
}

func (s *SupplierService) Update(id uint, req SupplierRequest) (*entity.Supplier, error) {
	supplier, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Supplier"}
		}
		return nil, err
	}

	supplier.SupplierName = req.SupplierName
	supplier.ContactName = req.ContactName
	supplier.Phone = req.Phone
	supplier.Email = req.Email
	if err := s.repo.Update(supplier); err != nil {
		return nil, fmt.Errorf("update supplier: %w", err)
	}
	return supplier, nil
}

func (s *SupplierService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Supplier"}
		}
		return err
	}
	return s.repo.Delete(id)
}
