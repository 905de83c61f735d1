package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/brightforge/erp/internal/entity"
	"github.com/brightforge/erp/internal/testutil"
	"github.com/shopspring/decimal"
)

func TestDashboardOverview(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	customer := testutil.SeedCustomer(t, db, "Ada", "Lovelace", "ada@example.com")
	testutil.SeedProduct(t, db, "Scarce", "10.00", 2)
	testutil.SeedProduct(t, db, "Plenty", "10.00", 50)
	testutil.SeedOrder(t, db, customer.ID, "100.00", entity.OrderStatusPending)
	testutil.SeedOrder(t, db, customer.ID, "50.00", entity.OrderStatusShipped)

	w := testutil.DoRequest(router, "GET", "/api/dashboard", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})

	counts := data["counts"].(map[string]interface{})
	if counts["orders"].(float64) != 2 {
		t.Errorf("Expected 2 orders, got %v", counts["orders"])
	}
	if counts["customers"].(float64) != 1 {
		t.Errorf("Expected 1 customer, got %v", counts["customers"])
	}
	if counts["low_stock"].(float64) != 1 {
		t.Errorf("Expected 1 low stock product, got %v", counts["low_stock"])
	}

	revenue, err := decimal.NewFromString(data["total_revenue"].(string))
	if err != nil {
		t.Fatalf("Bad total_revenue %v: %v", data["total_revenue"], err)
	}
	if !revenue.Equal(decimal.RequireFromString("150.00")) {
		t.Errorf("Expected total revenue 150.00, got %s", revenue)
	}

	recent := data["recent_orders"].([]interface{})
	if len(recent) != 2 {
		t.Errorf("Expected 2 recent orders, got %d", len(recent))
	}
}

func TestDashboardSalesByCustomer(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	big := testutil.SeedCustomer(t, db, "Big", "Spender", "big@example.com")
	small := testutil.SeedCustomer(t, db, "Small", "Order", "small@example.com")
	testutil.SeedOrder(t, db, big.ID, "900.00", entity.OrderStatusDelivered)
	testutil.SeedOrder(t, db, small.ID, "10.00", entity.OrderStatusDelivered)

	w := testutil.DoRequest(router, "GET", "/api/dashboard/sales/customers", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	rows := resp["data"].([]interface{})
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	first := rows[0].(map[string]interface{})
	if first["first_name"] != "Big" {
		t.Errorf("Expected biggest spender first, got %v", first["first_name"])
	}
}

func TestDashboardTopSellingProducts(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	customer := testutil.SeedCustomer(t, db, "Ada", "Lovelace", "ada@example.com")
	hot := testutil.SeedProduct(t, db, "Hot Item", "10.00", 100)
	cold := testutil.SeedProduct(t, db, "Cold Item", "10.00", 100)

	w := testutil.DoRequest(router, "POST", "/api/orders", map[string]interface{}{
		"customer_id": customer.ID,
		"items": []map[string]interface{}{
			{"product_id": hot.ID, "quantity": 9},
			{"product_id": cold.ID, "quantity": 1},
		},
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", "/api/dashboard/products/top-selling?limit=1", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	rows := resp["data"].([]interface{})
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	top := rows[0].(map[string]interface{})
	if top["product_name"] != "Hot Item" {
		t.Errorf("Expected Hot Item on top, got %v", top["product_name"])
	}
}

func TestDashboardEmployeesByDepartment(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	for _, e := range []entity.Employee{
		{FirstName: "A", LastName: "One", Department: "Sales", Salary: decimal.RequireFromString("3000"), HireDate: time.Now()},
		{FirstName: "B", LastName: "Two", Department: "Sales", Salary: decimal.RequireFromString("5000"), HireDate: time.Now()},
		{FirstName: "C", LastName: "Three", Department: "Ops", Salary: decimal.RequireFromString("4000"), HireDate: time.Now()},
	} {
		if err := db.Create(&e).Error; err != nil {
			t.Fatalf("Failed to seed employee: %v", err)
		}
	}

	w := testutil.DoRequest(router, "GET", "/api/dashboard/employees/departments", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	rows := resp["data"].([]interface{})
	if len(rows) != 2 {
		t.Fatalf("Expected 2 departments, got %d", len(rows))
	}
	sales := rows[0].(map[string]interface{})
	if sales["department"] != "Sales" {
		t.Errorf("Expected Sales first by headcount, got %v", sales["department"])
	}
	if sales["employee_count"].(float64) != 2 {
		t.Errorf("Expected 2 employees in Sales, got %v", sales["employee_count"])
	}
}
