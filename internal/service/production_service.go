package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/brightforge/erp/internal/entity"
	"github.com/brightforge/erp/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductionService keeps product stock consistent with the net effect of
// production records in Completed status. Every mutation runs in one
// transaction with the product row locked, and no stock delta may drive the
// quantity below zero.
type ProductionService struct {
	repo *repository.ProductionRepository
	db   *gorm.DB
}

func NewProductionService(repo *repository.ProductionRepository, db *gorm.DB) *ProductionService {
	return &ProductionService{repo: repo, db: db}
}

func (s *ProductionService) List() ([]repository.ProductionListRow, error) {
	return s.repo.List()
}

func (s *ProductionService) GetByID(id uint) (*repository.ProductionDetailRow, error) {
	row, err := s.repo.GetDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Production record"}
		}
		return nil, err
	}
	return row, nil
}

func (s *ProductionService) ListByProduct(productID uint) ([]entity.Production, error) {
	return s.repo.ListByProduct(productID)
}

type CreateProductionRequest struct {
	ProductID        uint   `json:"product_id" binding:"required"`
	ProductionDate   string `json:"production_date"`
	QuantityProduced int    `json:"quantity_produced" binding:"required,gt=0"`
	Status           string `json:"status" binding:"required"`
}

// Create inserts the record and, when it is born Completed, adds the produced
// quantity to stock in the same transaction.
func (s *ProductionService) Create(req CreateProductionRequest) (*entity.Production, error) {
	if !entity.ValidProductionStatus(req.Status) {
		return nil, &ValidationError{
			Message: "Status must be one of: Pending, In Progress, Completed",
		}
	}

	date, err := parseDateOrToday(req.ProductionDate)
	if err != nil {
		return nil, &ValidationError{Message: "Production date must be YYYY-MM-DD"}
	}

	record := &entity.Production{
		ProductID:        req.ProductID,
		ProductionDate:   date,
		QuantityProduced: req.QuantityProduced,
		Status:           req.Status,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var product entity.Product
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", req.ProductID).First(&product).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Product"}
			}
			return fmt.Errorf("load product: %w", err)
		}

		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("create production record: %w", err)
		}

		if record.Status == entity.ProductionStatusCompleted {
			err := tx.Model(&entity.Product{}).Where("id = ?", product.ID).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", record.QuantityProduced)).Error
			if err != nil {
				return fmt.Errorf("add produced stock: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

type UpdateProductionRequest struct {
	ProductionDate   string `json:"production_date" binding:"required"`
	QuantityProduced int    `json:"quantity_produced" binding:"required,gt=0"`
	Status           string `json:"status" binding:"required"`
}

// Update applies the field changes and the stock delta implied by the status
// transition in one transaction:
//
//	not Completed -> Completed        +new quantity
//	Completed -> not Completed        -old quantity
//	Completed -> Completed, qty edit  +(new - old)
//	otherwise                         no stock change
//
// A delta that would take stock negative aborts the whole update.
func (s *ProductionService) Update(id uint, req UpdateProductionRequest) (*entity.Production, error) {
	if !entity.ValidProductionStatus(req.Status) {
		return nil, &ValidationError{
			Message: "Status must be one of: Pending, In Progress, Completed",
		}
	}

	date, err := time.Parse("2006-01-02", req.ProductionDate)
	if err != nil {
		return nil, &ValidationError{Message: "Production date must be YYYY-MM-DD"}
	}

	var updated *entity.Production
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var current entity.Production
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&current).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Production record"}
			}
			return fmt.Errorf("load production record: %w", err)
		}

		wasCompleted := current.Status == entity.ProductionStatusCompleted
		isCompleted := req.Status == entity.ProductionStatusCompleted

		var delta int
		switch {
		case !wasCompleted && isCompleted:
			delta = req.QuantityProduced
		case wasCompleted && !isCompleted:
			delta = -current.QuantityProduced
		case wasCompleted && isCompleted:
			delta = req.QuantityProduced - current.QuantityProduced
		}

		if delta != 0 {
			if err := applyStockDelta(tx, current.ProductID, delta); err != nil {
				return err
			}
		}

		current.ProductionDate = date
		current.QuantityProduced = req.QuantityProduced
		current.Status = req.Status
		if err := tx.Save(&current).Error; err != nil {
			return fmt.Errorf("update production record: %w", err)
		}
		updated = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the record; a Completed record gives its quantity back,
// aborting if that would leave the product with negative stock.
func (s *ProductionService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var record entity.Production
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&record).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Production record"}
			}
			return fmt.Errorf("load production record: %w", err)
		}

		if record.Status == entity.ProductionStatusCompleted {
			if err := applyStockDelta(tx, record.ProductID, -record.QuantityProduced); err != nil {
				var state *InvalidStateError
				if errors.As(err, &state) {
					return &InvalidStateError{
						Message: "Cannot delete production record. It would result in negative stock.",
					}
				}
				return err
			}
		}

		if err := tx.Where("id = ?", id).Delete(&entity.Production{}).Error; err != nil {
			return fmt.Errorf("delete production record: %w", err)
		}
		return nil
	})
}

// applyStockDelta adjusts the product stock under the caller's transaction,
// refusing any decrement that would cross zero. The product row must already
// be covered by the caller's lock scope or is locked here.
func applyStockDelta(tx *gorm.DB, productID uint, delta int) error {
	var product entity.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", productID).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Product"}
		}
		return fmt.Errorf("load product: %w", err)
	}

	if product.StockQuantity+delta < 0 {
		return &InvalidStateError{
			Message: fmt.Sprintf("Stock for product %s cannot go negative", product.ProductName),
		}
	}

	err = tx.Model(&entity.Product{}).Where("id = ?", productID).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", delta)).Error
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	return nil
}

// parseDateOrToday parses YYYY-MM-DD, defaulting to today when empty.
func parseDateOrToday(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", s)
}
