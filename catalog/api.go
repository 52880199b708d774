package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Paths on the catalog backend. Everything except the health probe sits
// under /api.
const (
	pathDepartments = "/api/departments"
	pathProducts    = "/api/products"
	pathHealth      = "/health"
)

// Departments lists every department with its product count.
func (c *Client) Departments(ctx context.Context) ([]Department, error) {
	var body struct {
		Departments *[]interface{} `json:"departments"`
	}
	if err := c.get(ctx, pathDepartments, nil, &body); err != nil {
		return nil, err
	}
	if body.Departments == nil {
		return nil, &APIError{Kind: KindMalformed, Message: "department list missing from response"}
	}
	var departments []Department
	if err := decodeEntity(*body.Departments, &departments); err != nil {
		return nil, malformed("department list", err)
	}
	return departments, nil
}

// Department fetches a single department record.
func (c *Client) Department(ctx context.Context, id int) (Department, error) {
	var raw map[string]interface{}
	if err := c.get(ctx, fmt.Sprintf("%s/%d", pathDepartments, id), nil, &raw); err != nil {
		return Department{}, err
	}
	var d Department
	if err := decodeEntity(raw, &d); err != nil {
		return Department{}, malformed("department", err)
	}
	return d, nil
}

// DepartmentProducts fetches the product listing of one department.
func (c *Client) DepartmentProducts(ctx context.Context, id int) (DepartmentProducts, error) {
	var body struct {
		Department string         `json:"department"`
		Products   *[]interface{} `json:"products"`
	}
	if err := c.get(ctx, fmt.Sprintf("%s/%d/products", pathDepartments, id), nil, &body); err != nil {
		return DepartmentProducts{}, err
	}
	if body.Products == nil {
		return DepartmentProducts{}, &APIError{Kind: KindMalformed, Message: "product list missing from response"}
	}
	var products []Product
	if err := decodeEntity(*body.Products, &products); err != nil {
		return DepartmentProducts{}, malformed("product list", err)
	}
	return DepartmentProducts{Department: body.Department, Products: products}, nil
}

// Products fetches one page of the full product listing.
func (c *Client) Products(ctx context.Context, page, limit int) (ProductPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var body struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := c.get(ctx, pathProducts, query, &body); err != nil {
		return ProductPage{}, err
	}
	if body.Data == nil {
		return ProductPage{}, &APIError{Kind: KindMalformed, Message: "product page missing from response"}
	}
	if _, ok := body.Data["products"]; !ok {
		return ProductPage{}, &APIError{Kind: KindMalformed, Message: "product list missing from response"}
	}
	var pp ProductPage
	if err := decodeEntity(body.Data, &pp); err != nil {
		return ProductPage{}, malformed("product page", err)
	}
	return pp, nil
}

// Product fetches a single product record.
func (c *Client) Product(ctx context.Context, id int) (Product, error) {
	var body struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := c.get(ctx, fmt.Sprintf("%s/%d", pathProducts, id), nil, &body); err != nil {
		return Product{}, err
	}
	if body.Data == nil {
		return Product{}, &APIError{Kind: KindMalformed, Message: "product missing from response"}
	}
	var p Product
	if err := decodeEntity(body.Data, &p); err != nil {
		return Product{}, malformed("product", err)
	}
	return p, nil
}

// Health probes backend liveness.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	if err := c.get(ctx, pathHealth, nil, &h); err != nil {
		return Health{}, err
	}
	return h, nil
}
