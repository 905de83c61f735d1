package service

import (
	"errors"
	"fmt"

	"github.com/brightforge/erp/internal/entity"
	"github.com/brightforge/erp/internal/repository"
	"gorm.io/gorm"
)

type CustomerService struct {
	repo *repository.CustomerRepository
}

func NewCustomerService(repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) List() ([]entity.Customer, error) {
	return s.repo.List()
}

func (s *CustomerService) GetByID(id uint) (*entity.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Customer"}
		}
		return nil, err
	}
	return customer, nil
}

type CustomerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
}

func (s *CustomerService) Create(req CustomerRequest) (*entity.Customer, error) {
	customer := &entity.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.repo.Create(customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}

func (s *CustomerService) Update(id uint, req CustomerRequest) (*entity.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Customer"}
		}
		return nil, err
	}

	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.Email = req.Email
	customer.Phone = req.Phone
	if err := s.repo.Update(customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return customer, nil
}

// Delete refuses to remove a customer that still owns orders.
func (s *CustomerService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Customer"}
		}
		return err
	}

	count, err := s.repo.CountOrders(id)
	if err != nil {
		return fmt.Errorf("count customer orders: %w", err)
	}
	if count > 0 {
		return &InvalidStateError{Message: "Cannot delete customer with existing orders"}
	}
	return s.repo.Delete(id)
}

func (s *CustomerService) ListOrders(id uint) ([]entity.Order, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Customer"}
		}
		return nil, err
	}
	return s.repo.ListOrders(id)
}
