package repository

import (
	"github.com/brightforge/erp/internal/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(e *entity.Employee) error {
	return r.db.Create(e).Error
}

func (r *EmployeeRepository) GetByID(id uint) (*entity.Employee, error) {
	var e entity.Employee
	err := r.db.Where("id = ?", id).First(&e).Error
	return &e, err
}

func (r *EmployeeRepository) Update(e *entity.Employee) error {
	return r.db.Save(e).Error
}

func (r *EmployeeRepository) Delete(id uint) error {
	return r.db.Where("id = ?", id).Delete(&entity.Employee{}).Error
}

func (r *EmployeeRepository) List() ([]entity.Employee, error) {
	var employees []entity.Employee
	err := r.db.Order("department, last_name").Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) ListByDepartment(department string) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := r.db.Where("department = ?", department).Order("last_name").Find(&employees).Error
	return employees, err
}

// DepartmentSummary aggregates headcount and salary figures per department.
type DepartmentSummary struct {
	Department    string          `json:"department"`
	EmployeeCount int             `json:"employee_count"`
	MinSalary     decimal.Decimal `json:"min_salary"`
	MaxSalary     decimal.Decimal `json:"max_salary"`
	AverageSalary decimal.Decimal `json:"average_salary"`
	TotalSalary   decimal.Decimal `json:"total_salary"`
}

func (r *EmployeeRepository) SummarizeDepartments() ([]DepartmentSummary, error) {
	var rows []DepartmentSummary
	err := r.db.Raw(`
		SELECT department,
		       COUNT(*) AS employee_count,
		       MIN(salary) AS min_salary,
		       MAX(salary) AS max_salary,
		       AVG(salary) AS average_salary,
		       SUM(salary) AS total_salary
		FROM employees
		GROUP BY department
		ORDER BY employee_count DESC
	`).Scan(&rows).Error
	return rows, err
}
