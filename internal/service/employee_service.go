package service

import (
	"errors"
	"fmt"

	"github.com/brightforge/erp/internal/entity"
	"github.com/brightforge/erp/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type EmployeeService struct {
	repo *repository.EmployeeRepository
}

func NewEmployeeService(repo *repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

func (s *EmployeeService) List() ([]entity.Employee, error) {
	return s.repo.List()
}

func (s *EmployeeService) GetByID(id uint) (*entity.Employee, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Employee"}
		}
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) ListByDepartment(department string) ([]entity.Employee, error) {
	return s.repo.ListByDepartment(department)
}

func (s *EmployeeService) DepartmentSummary() ([]repository.DepartmentSummary, error) {
	return s.repo.SummarizeDepartments()
}

type EmployeeRequest struct {
	FirstName  string          `json:"first_name" binding:"required"`
	LastName   string          `json:"last_name" binding:"required"`
	Department string          `json:"department" binding:"required"`
	Salary     decimal.Decimal `json:"salary" binding:"required"`
	HireDate   string          `json:"hire_date"`
}

func (s *EmployeeService) Create(req EmployeeRequest) (*entity.Employee, error) {
	if req.Salary.IsNegative() {
		return nil, &ValidationError{Message: "Salary cannot be negative"}
	}
	hireDate, err := parseDateOrToday(req.HireDate)
	if err != nil {
		return nil, &ValidationError{Message: "Hire date must be YYYY-MM-DD"}
	}

	employee := &entity.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
		Salary:     req.Salary,
		HireDate:   hireDate,
	}
	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	return employee, nil
}

func (s *EmployeeService) Update(id uint, req EmployeeRequest) (*entity.Employee, error) {
	if req.Salary.IsNegative() {
		return nil, &ValidationError{Message: "Salary cannot be negative"}
	}
	hireDate, err := parseDateOrToday(req.HireDate)
	if err != nil {
		return nil, &ValidationError{Message: "Hire date must be YYYY-MM-DD"}
	}

	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Employee"}
		}
		return nil, err
	}

	employee.FirstName = req.FirstName
	employee.LastName = req.LastName
	employee.Department = req.Department
	employee.Salary = req.Salary
	employee.HireDate = hireDate
	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return employee, nil
}

func (s *EmployeeService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Employee"}
		}
		return err
	}
	return s.repo.Delete(id)
}
