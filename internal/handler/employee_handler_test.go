package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/brightforge/erp/internal/entity"
	"github.com/brightforge/erp/internal/testutil"
)

func TestEmployeeCRUD(t *testing.T) {
	router, db := setupServer(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/employees", map[string]interface{}{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"department": "Engineering",
		"salary":     "5000.00",
		"hire_date":  "2024-03-01",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var employee entity.Employee
	if err := db.Where("last_name = ?", "Lovelace").First(&employee).Error; err != nil {
		t.Fatalf("Employee not persisted: %v", err)
	}

	w = testutil.DoRequest(router, "PUT", fmt.Sprintf("/api/employees/%d", employee.ID),
		map[string]interface{}{
			"first_name": "Ada",
			"last_name":  "Lovelace",
			"department": "Research",
			"salary":     "6000.00",
		}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	db.First(&employee, employee.ID)
	if employee.Department != "Research" {
		t.Errorf("Expected department Research, got %s", employee.Department)
	}

	w = testutil.DoRequest(router, "GET", "/api/employees/department/Research", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	rows := resp["data"].([]interface{})
	if len(rows) != 1 {
		t.Errorf("Expected 1 employee in Research, got %d", len(rows))
	}

	w = testutil.DoRequest(router, "DELETE", fmt.Sprintf("/api/employees/%d", employee.ID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestEmployeeCreateRejectsNegativeSalary(t *testing.T) {
	router, _ := setupServer(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/employees", map[string]interface{}{
		"first_name": "Bad",
		"last_name":  "Pay",
		"department": "Sales",
		"salary":     "-1.00",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
