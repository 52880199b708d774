package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, Timeout: 2 * time.Second})
}

func TestDepartments(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/departments" {
			t.Errorf("path = %s, want /api/departments", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"departments":[{"id":1,"name":"Shoes","product_count":5}]}`))
	}))

	departments, err := c.Departments(context.Background())
	if err != nil {
		t.Fatalf("Departments: %v", err)
	}
	if len(departments) != 1 {
		t.Fatalf("Departments len = %d, want 1", len(departments))
	}
	d := departments[0]
	if d.ID != 1 || d.Name != "Shoes" || d.ProductCount != 5 {
		t.Errorf("Departments[0] = %+v, want {1 Shoes 5}", d)
	}
}

func TestDepartments_Empty(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"departments":[]}`))
	}))

	departments, err := c.Departments(context.Background())
	if err != nil {
		t.Fatalf("Departments: %v", err)
	}
	if len(departments) != 0 {
		t.Errorf("Departments len = %d, want 0", len(departments))
	}
}

func TestDepartments_MissingKey(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	_, err := c.Departments(context.Background())
	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("Departments err = %v, want *APIError", err)
	}
	if ae.Kind != KindMalformed {
		t.Errorf("Kind = %v, want malformed", ae.Kind)
	}
}

func TestDepartment(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/departments/3" {
			t.Errorf("path = %s, want /api/departments/3", r.URL.Path)
		}
		w.Write([]byte(`{"id":3,"name":"Outerwear","product_count":12}`))
	}))

	d, err := c.Department(context.Background(), 3)
	if err != nil {
		t.Fatalf("Department: %v", err)
	}
	if d.ID != 3 || d.Name != "Outerwear" || d.ProductCount != 12 {
		t.Errorf("Department = %+v, want {3 Outerwear 12}", d)
	}
}

func TestDepartment_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":{"success":false,"error":"Department not found"}}`))
	}))

	_, err := c.Department(context.Background(), 99)
	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("Department err = %v, want *APIError", err)
	}
	if ae.Kind != KindHTTPStatus || ae.Status != http.StatusNotFound {
		t.Errorf("Kind=%v Status=%d, want http_status 404", ae.Kind, ae.Status)
	}
	if ae.Message != "Department not found" {
		t.Errorf("Message = %q, want Department not found", ae.Message)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound: want true")
	}
}

func TestDepartmentProducts(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/departments/2/products" {
			t.Errorf("path = %s, want /api/departments/2/products", r.URL.Path)
		}
		w.Write([]byte(`{"department":"Shoes","products":[{"id":7,"name":"Runner","retail_price":59.9}]}`))
	}))

	dp, err := c.DepartmentProducts(context.Background(), 2)
	if err != nil {
		t.Fatalf("DepartmentProducts: %v", err)
	}
	if dp.Department != "Shoes" {
		t.Errorf("Department = %q, want Shoes", dp.Department)
	}
	if len(dp.Products) != 1 || dp.Products[0].Name != "Runner" {
		t.Fatalf("Products = %+v, want one Runner", dp.Products)
	}
	if dp.Products[0].RetailPrice != 59.9 {
		t.Errorf("RetailPrice = %v, want 59.9", dp.Products[0].RetailPrice)
	}
}

func TestDepartmentProducts_Empty(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"department":"Shoes","products":[]}`))
	}))

	dp, err := c.DepartmentProducts(context.Background(), 2)
	if err != nil {
		t.Fatalf("DepartmentProducts: %v", err)
	}
	if len(dp.Products) != 0 {
		t.Errorf("Products len = %d, want 0", len(dp.Products))
	}
}

func TestProducts(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" {
			t.Errorf("path = %s, want /api/products", r.URL.Path)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page = %s, want 2", got)
		}
		if got := r.URL.Query().Get("limit"); got != "12" {
			t.Errorf("limit = %s, want 12", got)
		}
		w.Write([]byte(`{"success":true,"data":{"products":[{"id":1,"name":"A"},{"id":2,"name":"B"}],"pagination":{"current_page":2,"total_pages":5,"total_products":55,"has_next_page":true,"has_prev_page":true,"limit":12,"offset":12}}}`))
	}))

	page, err := c.Products(context.Background(), 2, 12)
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(page.Products) != 2 {
		t.Fatalf("Products len = %d, want 2", len(page.Products))
	}
	p := page.Pagination
	if p.CurrentPage != 2 || p.TotalPages != 5 || p.TotalProducts != 55 {
		t.Errorf("Pagination = %+v", p)
	}
	if !p.HasNextPage || !p.HasPrevPage {
		t.Errorf("HasNextPage=%v HasPrevPage=%v, want true true", p.HasNextPage, p.HasPrevPage)
	}
}

func TestProducts_PageNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":{"success":false,"error":"Page 99 not found. Total available pages: 3."}}`))
	}))

	_, err := c.Products(context.Background(), 99, 12)
	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("Products err = %v, want *APIError", err)
	}
	if ae.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", ae.Status)
	}
	if ae.Message != "Page 99 not found. Total available pages: 3." {
		t.Errorf("Message = %q", ae.Message)
	}
}

func TestProducts_SuccessFalse(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"backend degraded"}`))
	}))

	_, err := c.Products(context.Background(), 1, 12)
	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("Products err = %v, want *APIError", err)
	}
	if ae.Kind != KindHTTPStatus {
		t.Errorf("Kind = %v, want http_status", ae.Kind)
	}
	if ae.Message != "backend degraded" {
		t.Errorf("Message = %q, want backend degraded", ae.Message)
	}
}

func TestProduct(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products/42" {
			t.Errorf("path = %s, want /api/products/42", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"data":{"id":42,"name":"Parka","brand":"North","category":"Jackets","department":"Outerwear","sku":"PK-42","cost":40,"retail_price":99.5,"distribution_center_id":3}}`))
	}))

	p, err := c.Product(context.Background(), 42)
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	if p.ID != 42 || p.Name != "Parka" || p.Brand != "North" {
		t.Errorf("Product = %+v", p)
	}
	if p.RetailPrice != 99.5 || p.Cost != 40 || p.DistributionCenterID != 3 {
		t.Errorf("Product numerics = %+v", p)
	}
}

func TestProduct_StringNumerics(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":"8","name":"Belt","retail_price":"12.50","cost":""}}`))
	}))

	p, err := c.Product(context.Background(), 8)
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	if p.ID != 8 {
		t.Errorf("ID = %d, want 8", p.ID)
	}
	if p.RetailPrice != 12.5 {
		t.Errorf("RetailPrice = %v, want 12.5", p.RetailPrice)
	}
	if p.Cost != 0 {
		t.Errorf("Cost = %v, want 0", p.Cost)
	}
}

func TestProduct_MissingOptionals(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":9,"name":"Bare"}}`))
	}))

	p, err := c.Product(context.Background(), 9)
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	if p.RetailPrice != 0 {
		t.Errorf("RetailPrice = %v, want 0", p.RetailPrice)
	}
	if p.Brand != "" || p.SKU != "" {
		t.Errorf("optionals = %+v, want zero values", p)
	}
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path = %s, want /health", r.URL.Path)
		}
		w.Write([]byte(`{"status":"healthy","database":"connected","timestamp":"2024-05-01T10:00:00Z"}`))
	}))

	h, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if h.Status != "healthy" || h.Database != "connected" {
		t.Errorf("Health = %+v", h)
	}
}

func TestGet_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewClient(Config{BaseURL: srv.URL, Timeout: time.Second})

	_, err := c.Departments(context.Background())
	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if ae.Kind != KindNetwork {
		t.Errorf("Kind = %v, want network", ae.Kind)
	}
}

func TestGet_NonJSONBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway</html>`))
	}))

	_, err := c.Departments(context.Background())
	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if ae.Kind != KindMalformed {
		t.Errorf("Kind = %v, want malformed", ae.Kind)
	}
}

func TestGet_StatusWithoutBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.Departments(context.Background())
	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if ae.Status != http.StatusBadGateway {
		t.Errorf("Status = %d, want 502", ae.Status)
	}
	if ae.Message != "HTTP 502" {
		t.Errorf("Message = %q, want HTTP 502", ae.Message)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{})
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", c.BaseURL(), DefaultBaseURL)
	}
}
