package service

import (
	"errors"
	"fmt"

	"github.com/brightforge/erp/internal/entity"
	"github.com/brightforge/erp/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductService struct {
	repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) List() ([]entity.Product, error) {
	return s.repo.List()
}

func (s *ProductService) GetByID(id uint) (*entity.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Product"}
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) ListByCategory(category string) ([]entity.Product, error) {
	return s.repo.ListByCategory(category)
}

func (s *ProductService) ListLowStock(threshold int) ([]entity.Product, error) {
	if threshold <= 0 {
		threshold = repository.LowStockThreshold
	}
	return s.repo.ListLowStock(threshold)
}

type ProductRequest struct {
	ProductName   string          `json:"product_name" binding:"required"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	StockQuantity int             `json:"stock_quantity"`
}

func (s *ProductService) Create(req ProductRequest) (*entity.Product, error) {
	if req.Price.IsNegative() {
		return nil, &ValidationError{Message: "Price cannot be negative"}
	}
	if req.StockQuantity < 0 {
		return nil, &ValidationError{Message: "Stock quantity cannot be negative"}
	}

	product := &entity.Product{
		ProductName:   req.ProductName,
		Category:      req.Category,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (s *ProductService) Update(id uint, req ProductRequest) (*entity.Product, error) {
	if req.Price.IsNegative() {
		return nil, &ValidationError{Message: "Price cannot be negative"}
	}
	if req.StockQuantity < 0 {
		return nil, &ValidationError{Message: "Stock quantity cannot be negative"}
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Product"}
		}
		return nil, err
	}

	product.ProductName = req.ProductName
	product.Category = req.Category
	product.Price = req.Price
	product.StockQuantity = req.StockQuantity
	if err := s.repo.Update(product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

// Delete refuses to remove a product referenced by order lines or production
// records, keeping historical rows resolvable.
func (s *ProductService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Product"}
		}
		return err
	}

	orderRefs, err := s.repo.CountOrderItems(id)
	if err != nil {
		return fmt.Errorf("count order references: %w", err)
	}
	if orderRefs > 0 {
		return &InvalidStateError{Message: "Cannot delete product that appears in orders"}
	}

	productionRefs, err := s.repo.CountProduction(id)
	if err != nil {
		return fmt.Errorf("count production references: %w", err)
	}
	if productionRefs > 0 {
		return &InvalidStateError{Message: "Cannot delete product with production records"}
	}
	return s.repo.Delete(id)
}
