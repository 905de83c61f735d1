package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/brightforge/erp/internal/entity"
	"github.com/brightforge/erp/internal/testutil"
)

func TestSupplierCRUD(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/suppliers", map[string]string{
		"supplier_name": "Acme Parts",
		"contact_name":  "Jo Banks",
		"phone":         "555-0199",
		"email":         "jo@acme.example.com",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var supplier entity.Supplier
	if err := db.Where("supplier_name = ?", "Acme Parts").First(&supplier).Error; err != nil {
		t.Fatalf("Supplier not persisted: %v", err)
	}

	w = testutil.DoRequest(router, "PUT", fmt.Sprintf("/api/suppliers/%d", supplier.ID),
		map[string]string{
			"supplier_name": "Acme Industrial",
			"contact_name":  "Jo Banks",
		}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	db.First(&supplier, supplier.ID)
	if supplier.SupplierName != "Acme Industrial" {
		t.Errorf("Expected renamed supplier, got %s", supplier.SupplierName)
	}

	w = testutil.DoRequest(router, "DELETE", fmt.Sprintf("/api/suppliers/%d", supplier.ID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", fmt.Sprintf("/api/suppliers/%d", supplier.ID), nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 after delete, got %d", w.Code)
	}
}

func TestSupplierCreateRequiresName(t *testing.T) {
	router, _ := setupServer(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/suppliers", map[string]string{
		"contact_name": "No Name",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
