package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/brightforge/erp/internal/entity"
	"github.com/brightforge/erp/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderService owns the order lifecycle: atomic creation across orders,
// order_items and products, pending-only deletion with restock, and the
// permissive status update.
type OrderService struct {
	repo *repository.OrderRepository
	db   *gorm.DB
}

func NewOrderService(repo *repository.OrderRepository, db *gorm.DB) *OrderService {
	return &OrderService{repo: repo, db: db}
}

func (s *OrderService) List() ([]repository.OrderListRow, error) {
	return s.repo.List()
}

// OrderDetail is an order with its lines and payments.
type OrderDetail struct {
	Order    *entity.Order      `json:"order"`
	Items    []entity.OrderItem `json:"items"`
	Payments []entity.Payment   `json:"payments"`
}

func (s *OrderService) GetByID(id uint) (*OrderDetail, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Order"}
		}
		return nil, err
	}
	var payments []entity.Payment
	if err := s.db.Where("order_id = ?", id).Find(&payments).Error; err != nil {
		return nil, err
	}
	detail := &OrderDetail{Order: order, Items: order.Items, Payments: payments}
	order.Items = nil
	return detail, nil
}

type CreateOrderItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	CustomerID uint              `json:"customer_id" binding:"required"`
	Items      []CreateOrderItem `json:"items" binding:"required,min=1,dive"`
}

// CreateOrderResult echoes the committed order head.
type CreateOrderResult struct {
	OrderID    uint            `json:"order_id"`
	CustomerID uint            `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Items      int             `json:"items"`
}

// Create inserts the order, its items, and the stock decrements in one
// transaction. Product rows are read under FOR UPDATE so two concurrent
// orders cannot jointly overcommit the same stock. The order amount is the
// sum of quantity x unit price at insertion time and is never recomputed.
func (s *OrderService) Create(req CreateOrderRequest) (*CreateOrderResult, error) {
	if len(req.Items) == 0 {
		return nil, &ValidationError{Message: "Customer ID and at least one item are required"}
	}

	var result *CreateOrderResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var customer entity.Customer
		if err := tx.Where("id = ?", req.CustomerID).First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Customer"}
			}
			return fmt.Errorf("load customer: %w", err)
		}

		order := &entity.Order{
			CustomerID: req.CustomerID,
			OrderDate:  time.Now(),
			Amount:     decimal.Zero,
			Status:     entity.OrderStatusPending,
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		total := decimal.Zero
		for _, item := range req.Items {
			if item.ProductID == 0 || item.Quantity <= 0 {
				return &ValidationError{Message: "Product ID and quantity are required for each item"}
			}

			var product entity.Product
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", item.ProductID).First(&product).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NotFoundError{Resource: fmt.Sprintf("Product with ID %d", item.ProductID)}
				}
				return fmt.Errorf("load product: %w", err)
			}

			if product.StockQuantity < item.Quantity {
				return &InsufficientStockError{
					ProductName: product.ProductName,
					Available:   product.StockQuantity,
				}
			}

			line := &entity.OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  item.Quantity,
			}
			if err := tx.Create(line).Error; err != nil {
				return fmt.Errorf("create order item: %w", err)
			}

			err = tx.Model(&entity.Product{}).Where("id = ?", product.ID).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity)).Error
			if err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}

			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		if err := tx.Model(&entity.Order{}).Where("id = ?", order.ID).
			Update("amount", total).Error; err != nil {
			return fmt.Errorf("update order amount: %w", err)
		}

		result = &CreateOrderResult{
			OrderID:    order.ID,
			CustomerID: req.CustomerID,
			Amount:     total,
			Items:      len(req.Items),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateStatus is a pure field update. Any of the five statuses may move to
// any other; no stock or invoice side effects.
func (s *OrderService) UpdateStatus(id uint, status string) error {
	if !entity.ValidOrderStatus(status) {
		return &ValidationError{
			Message: "Status must be one of: Pending, Processing, Shipped, Delivered, Canceled",
		}
	}
	res := s.db.Model(&entity.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Resource: "Order"}
	}
	return nil
}

// Delete removes a pending order together with its items and payments and
// puts every item quantity back on stock, all in one transaction. Invoices
// are left alone; an already generated invoice stays on record.
func (s *OrderService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var order entity.Order
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Order"}
			}
			return fmt.Errorf("load order: %w", err)
		}

		if order.Status != entity.OrderStatusPending {
			return &InvalidStateError{Message: "Only pending orders can be deleted"}
		}

		var items []entity.OrderItem
		if err := tx.Where("order_id = ?", id).Find(&items).Error; err != nil {
			return fmt.Errorf("load order items: %w", err)
		}

		for _, item := range items {
			err := tx.Model(&entity.Product{}).Where("id = ?", item.ProductID).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", item.Quantity)).Error
			if err != nil {
				return fmt.Errorf("restore stock: %w", err)
			}
		}

		if err := tx.Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
			return fmt.Errorf("delete order items: %w", err)
		}
		if err := tx.Where("order_id = ?", id).Delete(&entity.Payment{}).Error; err != nil {
			return fmt.Errorf("delete payments: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&entity.Order{}).Error; err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return nil
	})
}
