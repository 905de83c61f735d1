package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/brightforge/erp/internal/entity"
	"github.com/brightforge/erp/internal/testutil"
)

func TestProductCRUD(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/products", map[string]interface{}{
		"product_name":   "Widget",
		"category":       "Hardware",
		"price":          "19.99",
		"stock_quantity": 25,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var product entity.Product
	if err := db.Where("product_name = ?", "Widget").First(&product).Error; err != nil {
		t.Fatalf("Product not persisted: %v", err)
	}
	if product.StockQuantity != 25 {
		t.Errorf("Expected stock 25, got %d", product.StockQuantity)
	}

	w = testutil.DoRequest(router, "PUT", fmt.Sprintf("/api/products/%d", product.ID),
		map[string]interface{}{
			"product_name":   "Widget Pro",
			"category":       "Hardware",
			"price":          "29.99",
			"stock_quantity": 30,
		}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "DELETE", fmt.Sprintf("/api/products/%d", product.ID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProductDeleteBlockedByOrderHistory(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	customer := testutil.SeedCustomer(t, db, "Ada", "Lovelace", "ada@example.com")
	product := testutil.SeedProduct(t, db, "Widget", "10.00", 5)

	w := testutil.DoRequest(router, "POST", "/api/orders", map[string]interface{}{
		"customer_id": customer.ID,
		"items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 1},
		},
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "DELETE", fmt.Sprintf("/api/products/%d", product.ID), nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProductDeleteBlockedByProductionHistory(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	product := testutil.SeedProduct(t, db, "Widget", "10.00", 5)
	seedProduction(t, db, product.ID, 3, entity.ProductionStatusPending)

	w := testutil.DoRequest(router, "DELETE", fmt.Sprintf("/api/products/%d", product.ID), nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProductListByCategory(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	a := testutil.SeedProduct(t, db, "Widget", "10.00", 5)
	db.Model(&entity.Product{}).Where("id = ?", a.ID).Update("category", "Hardware")
	b := testutil.SeedProduct(t, db, "Manual", "5.00", 5)
	db.Model(&entity.Product{}).Where("id = ?", b.ID).Update("category", "Books")

	w := testutil.DoRequest(router, "GET", "/api/products/category/Hardware", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	products := resp["data"].([]interface{})
	if len(products) != 1 {
		t.Errorf("Expected 1 product in Hardware, got %d", len(products))
	}
}

func TestProductLowStock(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	testutil.SeedProduct(t, db, "Scarce", "10.00", 2)
	testutil.SeedProduct(t, db, "Plenty", "10.00", 50)

	w := testutil.DoRequest(router, "GET", "/api/products/stock/low", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	products := resp["data"].([]interface{})
	if len(products) != 1 {
		t.Errorf("Expected 1 low stock product, got %d", len(products))
	}

	w = testutil.DoRequest(router, "GET", "/api/products/stock/low?threshold=100", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp = testutil.ParseResponse(w)
	products = resp["data"].([]interface{})
	if len(products) != 2 {
		t.Errorf("Expected 2 products under threshold 100, got %d", len(products))
	}

	w = testutil.DoRequest(router, "GET", "/api/products/stock/low?threshold=zero", nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for bad threshold, got %d", w.Code)
	}
}
