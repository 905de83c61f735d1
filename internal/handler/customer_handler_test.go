package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/brightforge/erp/internal/entity"
	"github.com/brightforge/erp/internal/testutil"
)

func TestCustomerCRUD(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/customers", map[string]string{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
		"phone":      "555-0101",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var customer entity.Customer
	if err := db.Where("email = ?", "ada@example.com").First(&customer).Error; err != nil {
		t.Fatalf("Customer not persisted: %v", err)
	}

	w = testutil.DoRequest(router, "PUT", fmt.Sprintf("/api/customers/%d", customer.ID),
		map[string]string{
			"first_name": "Ada",
			"last_name":  "King",
			"email":      "ada@example.com",
		}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	db.First(&customer, customer.ID)
	if customer.LastName != "King" {
		t.Errorf("Expected last name King, got %s", customer.LastName)
	}

	w = testutil.DoRequest(router, "DELETE", fmt.Sprintf("/api/customers/%d", customer.ID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", fmt.Sprintf("/api/customers/%d", customer.ID), nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 after delete, got %d", w.Code)
	}
}

func TestCustomerCreateRejectsBadEmail(t *testing.T) {
	router, _ := setupServer(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/customers", map[string]string{
		"first_name": "Bad",
		"last_name":  "Email",
		"email":      "not-an-email",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCustomerDeleteBlockedByOrders(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	customer := testutil.SeedCustomer(t, db, "Bob", "Turner", "bob@example.com")
	testutil.SeedOrder(t, db, customer.ID, "10.00", entity.OrderStatusPending)

	w := testutil.DoRequest(router, "DELETE", fmt.Sprintf("/api/customers/%d", customer.ID), nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&entity.Customer{}).Where("id = ?", customer.ID).Count(&count)
	if count != 1 {
		t.Errorf("Expected customer to survive, got count %d", count)
	}
}

func TestCustomerListOrders(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	customer := testutil.SeedCustomer(t, db, "Cara", "Diaz", "cara@example.com")
	other := testutil.SeedCustomer(t, db, "Dan", "Moss", "dan@example.com")
	testutil.SeedOrder(t, db, customer.ID, "10.00", entity.OrderStatusPending)
	testutil.SeedOrder(t, db, customer.ID, "20.00", entity.OrderStatusShipped)
	testutil.SeedOrder(t, db, other.ID, "30.00", entity.OrderStatusPending)

	w := testutil.DoRequest(router, "GET", fmt.Sprintf("/api/customers/%d/orders", customer.ID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	orders := resp["data"].([]interface{})
	if len(orders) != 2 {
		t.Errorf("Expected 2 orders, got %d", len(orders))
	}

	w = testutil.DoRequest(router, "GET", "/api/customers/9999/orders", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 for missing customer, got %d", w.Code)
	}
}
