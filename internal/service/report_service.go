package service

import (
	"fmt"

	"github.com/brightforge/erp/internal/repository"
	"github.com/xuri/excelize/v2"
)

// ReportService renders store data into downloadable workbooks.
type ReportService struct {
	orderRepo *repository.OrderRepository
}

func NewReportService(orderRepo *repository.OrderRepository) *ReportService {
	return &ReportService{orderRepo: orderRepo}
}

// BuildOrdersWorkbook writes every order into an xlsx sheet named Orders.
// The caller owns the returned file and must Close it.
func (s *ReportService) BuildOrdersWorkbook() (*excelize.File, error) {
	orders, err := s.orderRepo.ListAllWithCustomer()
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Orders"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	headers := []string{"Order ID", "Customer", "Order Date", "Amount", "Status", "Items"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, order := range orders {
		customer := ""
		if order.Customer != nil {
			customer = order.Customer.FirstName + " " + order.Customer.LastName
		}
		values := []interface{}{
			order.ID,
			customer,
			order.OrderDate.Format("2006-01-02"),
			order.Amount.InexactFloat64(),
			order.Status,
			len(order.Items),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
