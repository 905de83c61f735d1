package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/brightforge/erp/internal/entity"
	"github.com/brightforge/erp/internal/testutil"
	"github.com/shopspring/decimal"
)

func TestOrderCreateComputesAmountAndDecrementsStock(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	customer := testutil.SeedCustomer(t, db, "Ada", "Lovelace", "ada@example.com")
	product := testutil.SeedProduct(t, db, "Widget", "10.50", 5)

	w := testutil.DoRequest(router, "POST", "/api/orders", map[string]interface{}{
		"customer_id": customer.ID,
		"items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 3},
		},
	}, token)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var order entity.Order
	if err := db.Where("customer_id = ?", customer.ID).First(&order).Error; err != nil {
		t.Fatalf("Order not persisted: %v", err)
	}
	want := decimal.RequireFromString("31.50")
	if !order.Amount.Equal(want) {
		t.Errorf("Expected amount 31.50, got %s", order.Amount)
	}
	if order.Status != entity.OrderStatusPending {
		t.Errorf("Expected status Pending, got %s", order.Status)
	}

	if got := testutil.Stock(t, db, product.ID); got != 2 {
		t.Errorf("Expected stock 2 after order, got %d", got)
	}

	var itemCount int64
	db.Model(&entity.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount)
	if itemCount != 1 {
		t.Errorf("Expected 1 order item, got %d", itemCount)
	}
}

func TestOrderCreateInsufficientStockRollsBack(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	customer := testutil.SeedCustomer(t, db, "Bob", "Turner", "bob@example.com")
	full := testutil.SeedProduct(t, db, "Gadget", "5.00", 10)
	scarce := testutil.SeedProduct(t, db, "Rare Part", "99.00", 1)

	w := testutil.DoRequest(router, "POST", "/api/orders", map[string]interface{}{
		"customer_id": customer.ID,
		"items": []map[string]interface{}{
			{"product_id": full.ID, "quantity": 4},
			{"product_id": scarce.ID, "quantity": 2},
		},
	}, token)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["status"] != "error" {
		t.Errorf("Expected error envelope, got %v", resp)
	}

	// The first item's decrement must have been rolled back with the order.
	if got := testutil.Stock(t, db, full.ID); got != 10 {
		t.Errorf("Expected stock 10 after rollback, got %d", got)
	}
	if got := testutil.Stock(t, db, scarce.ID); got != 1 {
		t.Errorf("Expected stock 1 after rollback, got %d", got)
	}

	var orderCount int64
	db.Model(&entity.Order{}).Count(&orderCount)
	if orderCount != 0 {
		t.Errorf("Expected no orders after rollback, got %d", orderCount)
	}
}

func TestOrderCreateUnknownCustomer(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	product := testutil.SeedProduct(t, db, "Widget", "10.00", 5)

	w := testutil.DoRequest(router, "POST", "/api/orders", map[string]interface{}{
		"customer_id": 9999,
		"items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 1},
		},
	}, token)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
	if got := testutil.Stock(t, db, product.ID); got != 5 {
		t.Errorf("Expected stock untouched, got %d", got)
	}
}

func TestOrderCreateRejectsEmptyItems(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	customer := testutil.SeedCustomer(t, db, "Eve", "Nelson", "eve@example.com")

	w := testutil.DoRequest(router, "POST", "/api/orders", map[string]interface{}{
		"customer_id": customer.ID,
		"items":       []map[string]interface{}{},
	}, token)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOrderDeleteRestoresStock(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	customer := testutil.SeedCustomer(t, db, "Cara", "Diaz", "cara@example.com")
	product := testutil.SeedProduct(t, db, "Widget", "10.00", 5)

	w := testutil.DoRequest(router, "POST", "/api/orders", map[string]interface{}{
		"customer_id": customer.ID,
		"items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 3},
		},
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var order entity.Order
	if err := db.Where("customer_id = ?", customer.ID).First(&order).Error; err != nil {
		t.Fatalf("Order not persisted: %v", err)
	}

	w = testutil.DoRequest(router, "DELETE", fmt.Sprintf("/api/orders/%d", order.ID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if got := testutil.Stock(t, db, product.ID); got != 5 {
		t.Errorf("Expected stock restored to 5, got %d", got)
	}

	var itemCount int64
	db.Model(&entity.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount)
	if itemCount != 0 {
		t.Errorf("Expected order items removed, got %d", itemCount)
	}
}

func TestOrderDeleteNonPendingRejected(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	customer := testutil.SeedCustomer(t, db, "Dan", "Moss", "dan@example.com")
	order := testutil.SeedOrder(t, db, customer.ID, "50.00", entity.OrderStatusShipped)

	w := testutil.DoRequest(router, "DELETE", fmt.Sprintf("/api/orders/%d", order.ID), nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&entity.Order{}).Where("id = ?", order.ID).Count(&count)
	if count != 1 {
		t.Errorf("Expected order to survive, got count %d", count)
	}
}

func TestOrderUpdateStatus(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	customer := testutil.SeedCustomer(t, db, "Fay", "Ortiz", "fay@example.com")
	order := testutil.SeedOrder(t, db, customer.ID, "20.00", entity.OrderStatusPending)

	w := testutil.DoRequest(router, "PATCH", fmt.Sprintf("/api/orders/%d/status", order.ID),
		map[string]string{"status": "Shipped"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated entity.Order
	db.First(&updated, order.ID)
	if updated.Status != entity.OrderStatusShipped {
		t.Errorf("Expected status Shipped, got %s", updated.Status)
	}

	w = testutil.DoRequest(router, "PATCH", fmt.Sprintf("/api/orders/%d/status", order.ID),
		map[string]string{"status": "Teleported"}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for unknown status, got %d", w.Code)
	}

	w = testutil.DoRequest(router, "PATCH", "/api/orders/9999/status",
		map[string]string{"status": "Shipped"}, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 for missing order, got %d", w.Code)
	}
}

func TestOrderGetIncludesItemsAndPayments(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	customer := testutil.SeedCustomer(t, db, "Gil", "Hahn", "gil@example.com")
	product := testutil.SeedProduct(t, db, "Widget", "10.00", 5)

	w := testutil.DoRequest(router, "POST", "/api/orders", map[string]interface{}{
		"customer_id": customer.ID,
		"items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 2},
		},
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var order entity.Order
	db.Where("customer_id = ?", customer.ID).First(&order)

	w = testutil.DoRequest(router, "POST", "/api/payments", map[string]interface{}{
		"order_id":       order.ID,
		"payment_method": "card",
		"amount":         "20.00",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 for payment, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", fmt.Sprintf("/api/orders/%d", order.ID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 1 {
		t.Errorf("Expected 1 item, got %d", len(items))
	}
	payments := data["payments"].([]interface{})
	if len(payments) != 1 {
		t.Errorf("Expected 1 payment, got %d", len(payments))
	}
}

func TestOrderRoutesRequireAuth(t *testing.T) {
	router, _ := setupServer(t)

	w := testutil.DoRequest(router, "GET", "/api/orders", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without token, got %d", w.Code)
	}
}
