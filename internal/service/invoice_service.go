package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/brightforge/erp/internal/entity"
	"github.com/brightforge/erp/internal/repository"
	"gorm.io/gorm"
)

type InvoiceService struct {
	repo        *repository.InvoiceRepository
	orderRepo   *repository.OrderRepository
	paymentRepo *repository.PaymentRepository
}

func NewInvoiceService(repo *repository.InvoiceRepository, orderRepo *repository.OrderRepository, paymentRepo *repository.PaymentRepository) *InvoiceService {
	return &InvoiceService{repo: repo, orderRepo: orderRepo, paymentRepo: paymentRepo}
}

func (s *InvoiceService) List() ([]repository.InvoiceListRow, error) {
	return s.repo.List()
}

// InvoiceDetail is an invoice with the underlying order lines and payments.
type InvoiceDetail struct {
	Invoice  *entity.Invoice    `json:"invoice"`
	Items    []entity.OrderItem `json:"items"`
	Payments []entity.Payment   `json:"payments"`
}

func (s *InvoiceService) GetByID(id uint) (*InvoiceDetail, error) {
	invoice, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Invoice"}
		}
		return nil, err
	}

	// The order may have been deleted after the invoice was generated; the
	// invoice still renders with whatever lines remain.
	var items []entity.OrderItem
	order, err := s.orderRepo.GetByID(invoice.OrderID)
	if err == nil {
		items = order.Items
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByOrder(invoice.OrderID)
	if err != nil {
		return nil, err
	}

	return &InvoiceDetail{Invoice: invoice, Items: items, Payments: payments}, nil
}

type CreateInvoiceRequest struct {
	OrderID uint `json:"order_id" binding:"required"`
}

// Create generates the one invoice an order may carry, snapshotting the order
// amount at generation time.
func (s *InvoiceService) Create(req CreateInvoiceRequest) (*entity.Invoice, error) {
	order, err := s.orderRepo.GetByID(req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Order"}
		}
		return nil, err
	}

	exists, err := s.repo.ExistsForOrder(req.OrderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &InvalidStateError{Message: "Invoice already exists for this order"}
	}

	invoice := &entity.Invoice{
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		Amount:      order.Amount,
		InvoiceDate: time.Now(),
		Status:      entity.InvoiceStatusGenerated,
	}
	// The unique index on order_id backs the existence check above; a lost
	// race surfaces here as a constraint violation.
	if err := s.repo.Create(invoice); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return invoice, nil
}

func (s *InvoiceService) UpdateStatus(id uint, status string) (*entity.Invoice, error) {
	if !entity.ValidInvoiceStatus(status) {
		return nil, &ValidationError{
			Message: "Status must be one of: generated, paid, cancelled",
		}
	}

	invoice, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Invoice"}
		}
		return nil, err
	}

	invoice.Status = status
	if err := s.repo.Update(invoice); err != nil {
		return nil, fmt.Errorf("update invoice status: %w", err)
	}
	return invoice, nil
}

func (s *InvoiceService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Invoice"}
		}
		return err
	}
	return s.repo.Delete(id)
}
