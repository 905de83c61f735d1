package service

import (
	"errors"
	"fmt"

	"github.com/brightforge/erp/internal/entity"
	"github.com/brightforge/erp/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentService struct {
	repo *repository.PaymentRepository
	db   *gorm.DB
}

func NewPaymentService(repo *repository.PaymentRepository, db *gorm.DB) *PaymentService {
	return &PaymentService{repo: repo, db: db}
}

func (s *PaymentService) List() ([]repository.PaymentListRow, error) {
	return s.repo.List()
}

func (s *PaymentService) GetByID(id uint) (*repository.PaymentDetailRow, error) {
	row, err := s.repo.GetDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Payment"}
		}
		return nil, err
	}
	return row, nil
}

func (s *PaymentService) ListByOrder(orderID uint) ([]entity.Payment, error) {
	return s.repo.ListByOrder(orderID)
}

type CreatePaymentRequest struct {
	OrderID       uint            `json:"order_id" binding:"required"`
	PaymentDate   string          `json:"payment_date"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
}

// Create records the payment and, when the order already carries an invoice,
// flips that invoice to paid in the same transaction.
func (s *PaymentService) Create(req CreatePaymentRequest) (*entity.Payment, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, &ValidationError{Message: "Payment amount must be greater than zero"}
	}

	date, err := parseDateOrToday(req.PaymentDate)
	if err != nil {
		return nil, &ValidationError{Message: "Payment date must be YYYY-MM-DD"}
	}

	payment := &entity.Payment{
		OrderID:       req.OrderID,
		PaymentDate:   date,
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var order entity.Order
		if err := tx.Where("id = ?", req.OrderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Order"}
			}
			return fmt.Errorf("load order: %w", err)
		}

		if err := tx.Create(payment).Error; err != nil {
			return fmt.Errorf("create payment: %w", err)
		}

		err := tx.Model(&entity.Invoice{}).Where("order_id = ?", req.OrderID).
			Update("status", entity.InvoiceStatusPaid).Error
		if err != nil {
			return fmt.Errorf("mark invoice paid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

type UpdatePaymentRequest struct {
	PaymentDate   string          `json:"payment_date" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
}

func (s *PaymentService) Update(id uint, req UpdatePaymentRequest) (*entity.Payment, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, &ValidationError{Message: "Payment amount must be greater than zero"}
	}

	date, err := parseDateOrToday(req.PaymentDate)
	if err != nil {
		return nil, &ValidationError{Message: "Payment date must be YYYY-MM-DD"}
	}

	payment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Payment"}
		}
		return nil, err
	}

	payment.PaymentDate = date
	payment.PaymentMethod = req.PaymentMethod
	payment.Amount = req.Amount
	if err := s.repo.Update(payment); err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}
	return payment, nil
}

func (s *PaymentService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Payment"}
		}
		return err
	}
	return s.repo.Delete(id)
}
