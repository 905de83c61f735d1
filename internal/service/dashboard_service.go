package service

import (
	"fmt"

	"github.com/brightforge/erp/internal/repository"
	"github.com/shopspring/decimal"
)

type DashboardService struct {
	repo *repository.DashboardRepository
}

func NewDashboardService(repo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// Overview is the landing-page summary block.
type Overview struct {
	Counts          repository.Counts           `json:"counts"`
	TotalRevenue    decimal.Decimal             `json:"total_revenue"`
	RecentOrders    []repository.OrderListRow   `json:"recent_orders"`
	MonthlyRevenue  []repository.MonthlyRevenue `json:"monthly_revenue"`
	ProductsByGroup []repository.CategoryCount  `json:"products_by_category"`
}

func (s *DashboardService) Overview() (*Overview, error) {
	counts, err := s.repo.GetCounts()
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}

	revenue, err := s.repo.TotalRevenue()
	if err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}

	recent, err := s.repo.RecentOrders(5)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}

	monthly, err := s.repo.MonthlyRevenue()
	if err != nil {
		return nil, fmt.Errorf("monthly revenue: %w", err)
	}

	byCategory, err := s.repo.ProductsByCategory()
	if err != nil {
		return nil, fmt.Errorf("products by category: %w", err)
	}

	return &Overview{
		Counts:          *counts,
		TotalRevenue:    revenue,
		RecentOrders:    recent,
		MonthlyRevenue:  monthly,
		ProductsByGroup: byCategory,
	}, nil
}

func (s *DashboardService) SalesByCustomer() ([]repository.CustomerSales, error) {
	return s.repo.SalesByCustomer()
}

func (s *DashboardService) TopSellingProducts(limit int) ([]repository.TopProduct, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.repo.TopSellingProducts(limit)
}
